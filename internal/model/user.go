package model

import "time"

// AccountType represents the kind of account a user registered with
type AccountType string

const (
	AccountTypeStudent   AccountType = "student"    // Default - regular member
	AccountTypeClubAdmin AccountType = "club_admin" // May administer clubs
)

// IsValid returns true if the account type is recognized
func (a AccountType) IsValid() bool {
	return a == AccountTypeStudent || a == AccountTypeClubAdmin
}

// User represents a user account.
//
// The clubs_* fields are derived read caches refreshed through the
// repository's single write path. The Membership Ledger inside each club
// document is authoritative; these lists are never consulted for
// authorization.
type User struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	Email        string      `json:"email"`
	Hash         string      `json:"-"` // Never expose password hash
	AccountType  AccountType `json:"account_type"`
	ClubsCreated []string    `json:"clubs_created,omitempty"`
	ClubsJoined  []string    `json:"clubs_joined,omitempty"`
	ClubsInvited []string    `json:"clubs_invited,omitempty"`
	CreatedOn    time.Time   `json:"created_on"`
	UpdatedOn    time.Time   `json:"updated_on"`
}

// UserRef is the display subset of a user resolved into artifact listings
type UserRef struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Ref returns the display subset of the user
func (u *User) Ref() UserRef {
	return UserRef{ID: u.ID, Name: u.Name, Email: u.Email}
}
