package service

import (
	"context"
	"strings"
	"time"

	"github.com/forgo/clubsphere/internal/model"
	"github.com/google/uuid"
)

// ContactService manages the club's contact directory
type ContactService struct {
	clubRepo ClubRepository
}

// NewContactService creates a new contact service
func NewContactService(clubRepo ClubRepository) *ContactService {
	return &ContactService{clubRepo: clubRepo}
}

// CreateContactRequest represents a request to add a directory entry
type CreateContactRequest struct {
	Name      string `json:"name"`
	RoleLabel string `json:"role"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

// UpdateContactRequest represents a directory entry update. Only the
// listed fields may change; absent fields are left untouched.
type UpdateContactRequest struct {
	Name      *string `json:"name,omitempty"`
	RoleLabel *string `json:"role,omitempty"`
	Email     *string `json:"email,omitempty"`
	Phone     *string `json:"phone,omitempty"`
}

// Create adds a directory entry. Requires owner or officer.
func (s *ContactService) Create(ctx context.Context, userID, clubID string, req CreateContactRequest) (*model.Contact, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ErrContactNameRequired
	}

	club, err := loadClub(ctx, s.clubRepo, clubID)
	if err != nil {
		return nil, err
	}
	if err := authorizeManager(club, userID); err != nil {
		return nil, err
	}

	contact := model.Contact{
		ID:        uuid.NewString(),
		Name:      name,
		RoleLabel: strings.TrimSpace(req.RoleLabel),
		Email:     strings.TrimSpace(req.Email),
		Phone:     strings.TrimSpace(req.Phone),
		CreatedOn: time.Now().UTC(),
	}
	club.Contacts = append(club.Contacts, contact)

	if err := saveAggregate(ctx, s.clubRepo, club); err != nil {
		return nil, err
	}
	return &contact, nil
}

// List returns the directory entries the caller may see. Owners and
// officers see everything; plain members only see entries labelled
// admin or officer.
func (s *ContactService) List(ctx context.Context, userID, clubID string) ([]model.Contact, error) {
	club, err := loadClub(ctx, s.clubRepo, clubID)
	if err != nil {
		return nil, err
	}
	role, ok := club.RoleOf(userID)
	if !ok {
		return nil, ErrNotClubMember
	}

	if role.CanManage() {
		if club.Contacts == nil {
			return []model.Contact{}, nil
		}
		return club.Contacts, nil
	}

	visible := make([]model.Contact, 0, len(club.Contacts))
	for _, c := range club.Contacts {
		if c.VisibleToMembers() {
			visible = append(visible, c)
		}
	}
	return visible, nil
}

// Update edits a directory entry. Requires owner or officer.
func (s *ContactService) Update(ctx context.Context, userID, clubID, contactID string, req UpdateContactRequest) (*model.Contact, error) {
	club, err := loadClub(ctx, s.clubRepo, clubID)
	if err != nil {
		return nil, err
	}
	if err := authorizeManager(club, userID); err != nil {
		return nil, err
	}

	var contact *model.Contact
	for i := range club.Contacts {
		if club.Contacts[i].ID == contactID {
			contact = &club.Contacts[i]
			break
		}
	}
	if contact == nil {
		return nil, ErrContactNotFound
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, ErrContactNameRequired
		}
		contact.Name = name
	}
	if req.RoleLabel != nil {
		contact.RoleLabel = strings.TrimSpace(*req.RoleLabel)
	}
	if req.Email != nil {
		contact.Email = strings.TrimSpace(*req.Email)
	}
	if req.Phone != nil {
		contact.Phone = strings.TrimSpace(*req.Phone)
	}

	if err := saveAggregate(ctx, s.clubRepo, club); err != nil {
		return nil, err
	}
	return contact, nil
}

// Delete removes a directory entry. Requires owner or officer.
func (s *ContactService) Delete(ctx context.Context, userID, clubID, contactID string) error {
	club, err := loadClub(ctx, s.clubRepo, clubID)
	if err != nil {
		return err
	}
	if err := authorizeManager(club, userID); err != nil {
		return err
	}

	for i := range club.Contacts {
		if club.Contacts[i].ID == contactID {
			club.Contacts = append(club.Contacts[:i], club.Contacts[i+1:]...)
			return saveAggregate(ctx, s.clubRepo, club)
		}
	}
	return ErrContactNotFound
}
