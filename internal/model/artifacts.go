package model

import (
	"strings"
	"time"
)

// Announcement is a club-wide post by an officer or the owner
type Announcement struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Body     string    `json:"body"`
	PostedBy string    `json:"posted_by"`
	PostedOn time.Time `json:"posted_on"`
}

// AnnouncementView is an announcement with the author resolved for display
type AnnouncementView struct {
	Announcement
	Author *UserRef `json:"author,omitempty"`
}

// Activity is an entry in the club's activity log
type Activity struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Photos      []string  `json:"photos,omitempty"`
	Date        time.Time `json:"date"`
	LoggedBy    string    `json:"logged_by"`
}

// MeetingInviteStatus represents the state of a meeting invite
type MeetingInviteStatus string

const (
	MeetingInvitePending  MeetingInviteStatus = "pending"
	MeetingInviteAccepted MeetingInviteStatus = "accepted"
	MeetingInviteDeclined MeetingInviteStatus = "declined"
)

// MeetingInvite records one invited member for a meeting
type MeetingInvite struct {
	UserID string              `json:"user_id"`
	Status MeetingInviteStatus `json:"status"`
}

// Meeting is a scheduled club meeting with an invite/attendance list
type Meeting struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description,omitempty"`
	Date        time.Time       `json:"date"`
	Location    string          `json:"location,omitempty"`
	Invites     []MeetingInvite `json:"invites,omitempty"`
	Attendees   []string        `json:"attendees,omitempty"`
	CreatedBy   string          `json:"created_by"`
	CreatedOn   time.Time       `json:"created_on"`
}

// IsInvited returns true if userID is on the meeting's invite list
func (m *Meeting) IsInvited(userID string) bool {
	for _, inv := range m.Invites {
		if inv.UserID == userID {
			return true
		}
	}
	return false
}

// HasAttended returns true if userID already marked attendance
func (m *Meeting) HasAttended(userID string) bool {
	for _, id := range m.Attendees {
		if id == userID {
			return true
		}
	}
	return false
}

// PollOption is one choice in a poll, with the user ids that voted for it
type PollOption struct {
	ID    string   `json:"id"`
	Text  string   `json:"text"`
	Votes []string `json:"votes,omitempty"`
}

// Poll is a club poll. A user holds at most one active vote across all
// options; casting purges any prior vote first.
type Poll struct {
	ID        string       `json:"id"`
	Question  string       `json:"question"`
	Options   []PollOption `json:"options"`
	CreatedBy string       `json:"created_by"`
	CreatedOn time.Time    `json:"created_on"`
	ExpiresOn *time.Time   `json:"expires_on,omitempty"`
}

// PurgeVotes removes userID's vote from every option. Returns true if a
// vote was removed.
func (p *Poll) PurgeVotes(userID string) bool {
	purged := false
	for i := range p.Options {
		votes := p.Options[i].Votes
		for j, id := range votes {
			if id == userID {
				p.Options[i].Votes = append(votes[:j], votes[j+1:]...)
				purged = true
				break
			}
		}
	}
	return purged
}

// ResourceType distinguishes uploaded files from shared links
type ResourceType string

const (
	ResourceTypeFile ResourceType = "file"
	ResourceTypeLink ResourceType = "link"
)

// Resource is a shared club file or link. For files, URL is the stable
// retrieval path returned by the upload store.
type Resource struct {
	ID         string       `json:"id"`
	Type       ResourceType `json:"type"`
	Name       string       `json:"name"`
	URL        string       `json:"url"`
	UploadedBy string       `json:"uploaded_by"`
	UploadedOn time.Time    `json:"uploaded_on"`
}

// Volunteer records one event sign-up
type Volunteer struct {
	UserID     string    `json:"user_id"`
	SignedUpOn time.Time `json:"signed_up_on"`
}

// Event is a club event members may volunteer for
type Event struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description,omitempty"`
	Date        time.Time   `json:"date"`
	Location    string      `json:"location,omitempty"`
	Volunteers  []Volunteer `json:"volunteers,omitempty"`
	CreatedBy   string      `json:"created_by"`
	CreatedOn   time.Time   `json:"created_on"`
}

// HasVolunteer returns true if userID already signed up
func (e *Event) HasVolunteer(userID string) bool {
	for _, v := range e.Volunteers {
		if v.UserID == userID {
			return true
		}
	}
	return false
}

// Award records one achievement grant to a member
type Award struct {
	UserID    string    `json:"user_id"`
	AwardedBy string    `json:"awarded_by"`
	AwardedOn time.Time `json:"awarded_on"`
}

// Achievement is a club achievement with its award records embedded, so
// deleting the achievement cascades away every award.
type Achievement struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Awards      []Award   `json:"awards,omitempty"`
	CreatedOn   time.Time `json:"created_on"`
}

// IsAwardedTo returns true if userID already holds this achievement
func (a *Achievement) IsAwardedTo(userID string) bool {
	for _, aw := range a.Awards {
		if aw.UserID == userID {
			return true
		}
	}
	return false
}

// RemoveAward deletes userID's award record. Returns true if removed.
func (a *Achievement) RemoveAward(userID string) bool {
	for i, aw := range a.Awards {
		if aw.UserID == userID {
			a.Awards = append(a.Awards[:i], a.Awards[i+1:]...)
			return true
		}
	}
	return false
}

// Feedback is a member-submitted note to the club leadership
type Feedback struct {
	ID          string    `json:"id"`
	Message     string    `json:"message"`
	SubmittedBy string    `json:"submitted_by"`
	SubmittedOn time.Time `json:"submitted_on"`
}

// Contact is an entry in the club's contact directory. RoleLabel is
// free text ("Advisor", "Officer", "Admin", ...), not a ledger role.
type Contact struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	RoleLabel string    `json:"role"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	CreatedOn time.Time `json:"created_on"`
}

// VisibleToMembers returns true if a plain member may see this entry.
// The filter is content-based: only "admin" and "officer" labels are
// shown to non-managing members.
func (c *Contact) VisibleToMembers() bool {
	switch strings.ToLower(c.RoleLabel) {
	case "admin", "officer":
		return true
	default:
		return false
	}
}
