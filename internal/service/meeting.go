package service

import (
	"context"
	"strings"
	"time"

	"github.com/forgo/clubsphere/internal/model"
	"github.com/google/uuid"
)

// MeetingService manages club meetings and attendance
type MeetingService struct {
	clubRepo ClubRepository
}

// NewMeetingService creates a new meeting service
func NewMeetingService(clubRepo ClubRepository) *MeetingService {
	return &MeetingService{clubRepo: clubRepo}
}

// CreateMeetingRequest represents a request to schedule a meeting
type CreateMeetingRequest struct {
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Date        time.Time `json:"date"`
	Location    string    `json:"location,omitempty"`
	Invitees    []string  `json:"invitees,omitempty"`
}

// Create schedules a meeting. Requires owner or officer. Invitees that
// are not club members are dropped from the invite list.
func (s *MeetingService) Create(ctx context.Context, userID, clubID string, req CreateMeetingRequest) (*model.Meeting, error) {
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

	invites := make([]model.MeetingInvite, 0, len(req.Invitees))
	seen := make(map[string]bool, len(req.Invitees))
	for _, inviteeID := range req.Invitees {
		if seen[inviteeID] || !club.IsMember(inviteeID) {
			continue
		}
		seen[inviteeID] = true
		invites = append(invites, model.MeetingInvite{
			UserID: inviteeID,
			Status: model.MeetingInvitePending,
		})
	}

	meeting := model.Meeting{
		ID:          uuid.NewString(),
		Title:       title,
		Description: strings.TrimSpace(req.Description),
		Date:        req.Date,
		Location:    strings.TrimSpace(req.Location),
		Invites:     invites,
		Attendees:   []string{},
		CreatedBy:   userID,
		CreatedOn:   time.Now().UTC(),
	}
	club.Meetings = append(club.Meetings, meeting)

	if err := saveAggregate(ctx, s.clubRepo, club); err != nil {
		return nil, err
	}
	return &meeting, nil
}

// List returns the club's meetings. Requires membership.
func (s *MeetingService) List(ctx context.Context, userID, clubID string) ([]model.Meeting, error) {
	club, err := loadClub(ctx, s.clubRepo, clubID)
	if err != nil {
		return nil, err
	}
	if err := authorize(club, userID); err != nil {
		return nil, err
	}
	if club.Meetings == nil {
		return []model.Meeting{}, nil
	}
	return club.Meetings, nil
}

// MarkAttendance records the caller's own attendance at a meeting.
// Attendance is self-service only: the caller must be on the meeting's
// invite list, and marking twice is a conflict.
func (s *MeetingService) MarkAttendance(ctx context.Context, userID, clubID, meetingID string) error {
	club, err := loadClub(ctx, s.clubRepo, clubID)
	if err != nil {
		return err
	}
	if err := authorize(club, userID); err != nil {
		return err
	}

	var meeting *model.Meeting
	for i := range club.Meetings {
		if club.Meetings[i].ID == meetingID {
			meeting = &club.Meetings[i]
			break
		}
	}
	if meeting == nil {
		return ErrMeetingNotFound
	}

	if !meeting.IsInvited(userID) {
		return ErrNotInvitedToMeeting
	}
	if meeting.HasAttended(userID) {
		return ErrAttendanceAlreadySet
	}

	meeting.Attendees = append(meeting.Attendees, userID)
	for i := range meeting.Invites {
		if meeting.Invites[i].UserID == userID {
			meeting.Invites[i].Status = model.MeetingInviteAccepted
		}
	}

	return saveAggregate(ctx, s.clubRepo, club)
}
