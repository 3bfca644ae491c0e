package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/forgo/clubsphere/internal/model"
	"github.com/google/uuid"
)

// AnnouncementService manages club announcements
type AnnouncementService struct {
	clubRepo ClubRepository
	userRepo UserRepository
}

// NewAnnouncementService creates a new announcement service
func NewAnnouncementService(clubRepo ClubRepository, userRepo UserRepository) *AnnouncementService {
	return &AnnouncementService{clubRepo: clubRepo, userRepo: userRepo}
}

// CreateAnnouncementRequest represents a request to post an announcement
type CreateAnnouncementRequest struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// Create posts an announcement. Requires owner or officer.
func (s *AnnouncementService) Create(ctx context.Context, userID, clubID string, req CreateAnnouncementRequest) (*model.Announcement, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, ErrTitleRequired
	}
	body := strings.TrimSpace(req.Body)
	if body == "" {
		return nil, ErrContentRequired
	}

	club, err := loadClub(ctx, s.clubRepo, clubID)
	if err != nil {
		return nil, err
	}
	if err := authorizeManager(club, userID); err != nil {
		return nil, err
	}

	announcement := model.Announcement{
		ID:       uuid.NewString(),
		Title:    title,
		Body:     body,
		PostedBy: userID,
		PostedOn: time.Now().UTC(),
	}
	club.Announcements = append(club.Announcements, announcement)

	if err := saveAggregate(ctx, s.clubRepo, club); err != nil {
		return nil, err
	}
	return &announcement, nil
}

// List returns the club's announcements, newest first, with the author
// resolved for display. Requires membership.
func (s *AnnouncementService) List(ctx context.Context, userID, clubID string) ([]model.AnnouncementView, error) {
	club, err := loadClub(ctx, s.clubRepo, clubID)
	if err != nil {
		return nil, err
	}
	if err := authorize(club, userID); err != nil {
		return nil, err
	}

	authorIDs := make([]string, 0, len(club.Announcements))
	for _, a := range club.Announcements {
		authorIDs = append(authorIDs, a.PostedBy)
	}
	refs, err := s.userRepo.ListRefsByIDs(ctx, authorIDs)
	if err != nil {
		return nil, err
	}

	views := make([]model.AnnouncementView, 0, len(club.Announcements))
	for _, a := range club.Announcements {
		view := model.AnnouncementView{Announcement: a}
		if ref, ok := refs[a.PostedBy]; ok {
			view.Author = &ref
		}
		views = append(views, view)
	}
	sort.Slice(views, func(i, j int) bool {
		return views[i].PostedOn.After(views[j].PostedOn)
	})
	return views, nil
}
