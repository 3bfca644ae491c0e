package service

import (
	"context"
	"strings"
	"time"

	"github.com/forgo/clubsphere/internal/model"
	"github.com/google/uuid"
)

// EventService manages club events and volunteer sign-ups
type EventService struct {
	clubRepo ClubRepository
	userRepo UserRepository
}

// NewEventService creates a new event service
func NewEventService(clubRepo ClubRepository, userRepo UserRepository) *EventService {
	return &EventService{clubRepo: clubRepo, userRepo: userRepo}
}

// CreateEventRequest represents a request to create an event
type CreateEventRequest struct {
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Date        time.Time `json:"date"`
	Location    string    `json:"location,omitempty"`
}

// Create creates an event. Requires owner or officer.
func (s *EventService) Create(ctx context.Context, userID, clubID string, req CreateEventRequest) (*model.Event, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, ErrTitleRequired
	}

	club, err := loadClub(ctx, s.clubRepo, clubID)
	if err != nil {
		return nil, err
	}
	if err := authorizeManager(club, userID); err != nil {
		return nil, err
	}

	event := model.Event{
		ID:          uuid.NewString(),
		Title:       title,
		Description: strings.TrimSpace(req.Description),
		Date:        req.Date,
		Location:    strings.TrimSpace(req.Location),
		Volunteers:  []model.Volunteer{},
		CreatedBy:   userID,
		CreatedOn:   time.Now().UTC(),
	}
	club.Events = append(club.Events, event)

	if err := saveAggregate(ctx, s.clubRepo, club); err != nil {
		return nil, err
	}
	return &event, nil
}

// List returns the club's events. Requires membership.
func (s *EventService) List(ctx context.Context, userID, clubID string) ([]model.Event, error) {
	club, err := loadClub(ctx, s.clubRepo, clubID)
	if err != nil {
		return nil, err
	}
	if err := authorize(club, userID); err != nil {
		return nil, err
	}
	if club.Events == nil {
		return []model.Event{}, nil
	}
	return club.Events, nil
}

// Volunteer signs the caller up for an event. Requires membership;
// signing up twice is a conflict.
func (s *EventService) Volunteer(ctx context.Context, userID, clubID, eventID string) error {
	club, err := loadClub(ctx, s.clubRepo, clubID)
	if err != nil {
		return err
	}
	if err := authorize(club, userID); err != nil {
		return err
	}

	event := findEvent(club, eventID)
	if event == nil {
		return ErrEventNotFound
	}
	if event.HasVolunteer(userID) {
		return ErrAlreadySignedUp
	}

	event.Volunteers = append(event.Volunteers, model.Volunteer{
		UserID:     userID,
		SignedUpOn: time.Now().UTC(),
	})

	return saveAggregate(ctx, s.clubRepo, club)
}

// EventVolunteer pairs a sign-up record with the resolved volunteer
type EventVolunteer struct {
	model.Volunteer
	User *model.UserRef `json:"user,omitempty"`
}

// ListVolunteers returns an event's sign-ups with each volunteer
// resolved for display. Requires membership.
func (s *EventService) ListVolunteers(ctx context.Context, userID, clubID, eventID string) ([]EventVolunteer, error) {
	club, err := loadClub(ctx, s.clubRepo, clubID)
	if err != nil {
		return nil, err
	}
	if err := authorize(club, userID); err != nil {
		return nil, err
	}

	event := findEvent(club, eventID)
	if event == nil {
		return nil, ErrEventNotFound
	}

	ids := make([]string, 0, len(event.Volunteers))
	for _, v := range event.Volunteers {
		ids = append(ids, v.UserID)
	}
	refs, err := s.userRepo.ListRefsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	volunteers := make([]EventVolunteer, 0, len(event.Volunteers))
	for _, v := range event.Volunteers {
		ev := EventVolunteer{Volunteer: v}
		if ref, ok := refs[v.UserID]; ok {
			ev.User = &ref
		}
		volunteers = append(volunteers, ev)
	}
	return volunteers, nil
}

// Delete removes an event. Requires owner or officer.
func (s *EventService) Delete(ctx context.Context, userID, clubID, eventID string) error {
	club, err := loadClub(ctx, s.clubRepo, clubID)
	if err != nil {
		return err
	}
	if err := authorizeManager(club, userID); err != nil {
		return err
	}

	for i := range club.Events {
		if club.Events[i].ID == eventID {
			club.Events = append(club.Events[:i], club.Events[i+1:]...)
			return saveAggregate(ctx, s.clubRepo, club)
		}
	}
	return ErrEventNotFound
}

func findEvent(club *model.Club, eventID string) *model.Event {
	for i := range club.Events {
		if club.Events[i].ID == eventID {
			return &club.Events[i]
		}
	}
	return nil
}
