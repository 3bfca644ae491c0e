package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/forgo/clubsphere/internal/model"
	"github.com/google/uuid"
)

// ActivityService manages the club's activity log
type ActivityService struct {
	clubRepo ClubRepository
}

// NewActivityService creates a new activity service
func NewActivityService(clubRepo ClubRepository) *ActivityService {
	return &ActivityService{clubRepo: clubRepo}
}

// CreateActivityRequest represents a request to log an activity
type CreateActivityRequest struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Photos      []string  `json:"photos,omitempty"`
	Date        time.Time `json:"date"`
}

// Create logs an activity. Requires owner or officer.
func (s *ActivityService) Create(ctx context.Context, userID, clubID string, req CreateActivityRequest) (*model.Activity, error) {
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

	date := req.Date
	if date.IsZero() {
		date = time.Now().UTC()
	}

	activity := model.Activity{
		ID:          uuid.NewString(),
		Title:       title,
		Description: strings.TrimSpace(req.Description),
		Photos:      req.Photos,
		Date:        date,
		LoggedBy:    userID,
	}
	club.Activities = append(club.Activities, activity)

	if err := saveAggregate(ctx, s.clubRepo, club); err != nil {
		return nil, err
	}
	return &activity, nil
}

// List returns the club's activity log, newest first. Requires membership.
func (s *ActivityService) List(ctx context.Context, userID, clubID string) ([]model.Activity, error) {
	club, err := loadClub(ctx, s.clubRepo, clubID)
	if err != nil {
		return nil, err
	}
	if err := authorize(club, userID); err != nil {
		return nil, err
	}

	activities := make([]model.Activity, len(club.Activities))
	copy(activities, club.Activities)
	sort.Slice(activities, func(i, j int) bool {
		return activities[i].Date.After(activities[j].Date)
	})
	return activities, nil
}
