package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/forgo/clubsphere/internal/model"
	"github.com/google/uuid"
)

// FeedbackService manages member feedback to the club leadership
type FeedbackService struct {
	clubRepo ClubRepository
	userRepo UserRepository
}

// NewFeedbackService creates a new feedback service
func NewFeedbackService(clubRepo ClubRepository, userRepo UserRepository) *FeedbackService {
	return &FeedbackService{clubRepo: clubRepo, userRepo: userRepo}
}

// Submit records feedback from any club member
func (s *FeedbackService) Submit(ctx context.Context, userID, clubID, message string) (*model.Feedback, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, ErrFeedbackRequired
	}

	club, err := loadClub(ctx, s.clubRepo, clubID)
	if err != nil {
		return nil, err
	}
	if err := authorize(club, userID); err != nil {
		return nil, err
	}

	feedback := model.Feedback{
		ID:          uuid.NewString(),
		Message:     message,
		SubmittedBy: userID,
		SubmittedOn: time.Now().UTC(),
	}
	club.Feedback = append(club.Feedback, feedback)

	if err := saveAggregate(ctx, s.clubRepo, club); err != nil {
		return nil, err
	}
	return &feedback, nil
}

// FeedbackView pairs feedback with the resolved submitter
type FeedbackView struct {
	model.Feedback
	Submitter *model.UserRef `json:"submitter,omitempty"`
}

// List returns the club's feedback, newest first, with submitters
// resolved for display. Requires membership.
func (s *FeedbackService) List(ctx context.Context, userID, clubID string) ([]FeedbackView, error) {
	club, err := loadClub(ctx, s.clubRepo, clubID)
	if err != nil {
		return nil, err
	}
	if err := authorize(club, userID); err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(club.Feedback))
	for _, f := range club.Feedback {
		ids = append(ids, f.SubmittedBy)
	}
	refs, err := s.userRepo.ListRefsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	views := make([]FeedbackView, 0, len(club.Feedback))
	for _, f := range club.Feedback {
		view := FeedbackView{Feedback: f}
		if ref, ok := refs[f.SubmittedBy]; ok {
			view.Submitter = &ref
		}
		views = append(views, view)
	}
	sort.Slice(views, func(i, j int) bool {
		return views[i].SubmittedOn.After(views[j].SubmittedOn)
	})
	return views, nil
}
