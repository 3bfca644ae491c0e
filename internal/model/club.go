package model

import "time"

// Role represents a member's role within a club
type Role string

const (
	RoleOwner   Role = "owner"   // Singular, set at creation, never reassigned
	RoleOfficer Role = "officer" // Can manage club content and membership
	RoleMember  Role = "member"  // Default - can participate
)

// CanManage returns true if the role carries write/admin access
func (r Role) CanManage() bool {
	return r == RoleOwner || r == RoleOfficer
}

// IsValid returns true if the role is a recognized club role
func (r Role) IsValid() bool {
	switch r {
	case RoleOwner, RoleOfficer, RoleMember:
		return true
	default:
		return false
	}
}

// Membership is one entry in a club's membership ledger
type Membership struct {
	UserID   string    `json:"user_id"`
	Role     Role      `json:"role"`
	JoinedOn time.Time `json:"joined_on"`
}

// Club is the aggregate document: identity, membership ledger, and every
// club-scoped artifact collection. It is loaded and saved whole; Version
// is the optimistic-concurrency token compared on write.
type Club struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	CreatedBy   string `json:"created_by"`
	Version     int64  `json:"version"`

	// Membership ledger. Members and PendingInvitations are disjoint;
	// exactly one member holds RoleOwner.
	Members            []Membership `json:"members"`
	PendingInvitations []string     `json:"pending_invitations"`

	Announcements []Announcement `json:"announcements,omitempty"`
	Activities    []Activity     `json:"activities,omitempty"`
	Meetings      []Meeting      `json:"meetings,omitempty"`
	Polls         []Poll         `json:"polls,omitempty"`
	Resources     []Resource     `json:"resources,omitempty"`
	Events        []Event        `json:"events,omitempty"`
	Achievements  []Achievement  `json:"achievements,omitempty"`
	Feedback      []Feedback     `json:"feedback,omitempty"`
	Contacts      []Contact      `json:"contacts,omitempty"`

	CreatedOn time.Time `json:"created_on"`
	UpdatedOn time.Time `json:"updated_on"`
}

// RoleOf returns the role recorded for userID, or false if userID is not
// a member. Pure lookup, no side effect.
func (c *Club) RoleOf(userID string) (Role, bool) {
	for _, m := range c.Members {
		if m.UserID == userID {
			return m.Role, true
		}
	}
	return "", false
}

// IsMember returns true if userID appears in the membership ledger
func (c *Club) IsMember(userID string) bool {
	_, ok := c.RoleOf(userID)
	return ok
}

// IsInvited returns true if userID has a pending invitation
func (c *Club) IsInvited(userID string) bool {
	for _, id := range c.PendingInvitations {
		if id == userID {
			return true
		}
	}
	return false
}

// RemoveInvitation deletes userID from the pending set. Returns true if
// an entry was removed.
func (c *Club) RemoveInvitation(userID string) bool {
	for i, id := range c.PendingInvitations {
		if id == userID {
			c.PendingInvitations = append(c.PendingInvitations[:i], c.PendingInvitations[i+1:]...)
			return true
		}
	}
	return false
}

// RemoveMembership deletes userID's ledger entry. Returns true if an
// entry was removed. Callers enforce the owner-protection rule.
func (c *Club) RemoveMembership(userID string) bool {
	for i, m := range c.Members {
		if m.UserID == userID {
			c.Members = append(c.Members[:i], c.Members[i+1:]...)
			return true
		}
	}
	return false
}

// ClubSummary is the listing subset of a club (user dashboards, invitations)
type ClubSummary struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	MemberCount int    `json:"member_count"`
}

// Summary returns the listing subset of the club
func (c *Club) Summary() ClubSummary {
	return ClubSummary{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		MemberCount: len(c.Members),
	}
}

// Business constraints
const (
	MaxClubNameLength = 100
	MaxClubDescLength = 500
)

// CreateClubRequest represents a request to create a club
type CreateClubRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// UpdateClubRequest represents a request to update a club profile
type UpdateClubRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

// InviteRequest represents a request to invite a user to a club
type InviteRequest struct {
	UserID string `json:"user_id"`
}

// RespondInvitationRequest represents an accept/decline of a pending invitation
type RespondInvitationRequest struct {
	Accept bool `json:"accept"`
}
