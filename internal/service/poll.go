package service

import (
	"context"
	"strings"
	"time"

	"github.com/forgo/clubsphere/internal/model"
	"github.com/google/uuid"
)

// PollService manages club polls and voting
type PollService struct {
	clubRepo ClubRepository
}

// NewPollService creates a new poll service
func NewPollService(clubRepo ClubRepository) *PollService {
	return &PollService{clubRepo: clubRepo}
}

// CreatePollRequest represents a request to open a poll
type CreatePollRequest struct {
	Question  string     `json:"question"`
	Options   []string   `json:"options"`
	ExpiresOn *time.Time `json:"expires_on,omitempty"`
}

// Create opens a poll. Requires owner or officer.
func (s *PollService) Create(ctx context.Context, userID, clubID string, req CreatePollRequest) (*model.Poll, error) {
	question := strings.TrimSpace(req.Question)
	if question == "" {
		return nil, ErrPollQuestionRequired
	}

	options := make([]model.PollOption, 0, len(req.Options))
	for _, text := range req.Options {
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		options = append(options, model.PollOption{
			ID:    uuid.NewString(),
			Text:  text,
			Votes: []string{},
		})
	}
	if len(options) < 2 {
		return nil, ErrPollOptionsRequired
	}

	club, err := loadClub(ctx, s.clubRepo, clubID)
	if err != nil {
		return nil, err
	}
	if err := authorizeManager(club, userID); err != nil {
		return nil, err
	}

	poll := model.Poll{
		ID:        uuid.NewString(),
		Question:  question,
		Options:   options,
		CreatedBy: userID,
		CreatedOn: time.Now().UTC(),
		ExpiresOn: req.ExpiresOn,
	}
	club.Polls = append(club.Polls, poll)

	if err := saveAggregate(ctx, s.clubRepo, club); err != nil {
		return nil, err
	}
	return &poll, nil
}

// List returns the club's polls. Requires membership.
func (s *PollService) List(ctx context.Context, userID, clubID string) ([]model.Poll, error) {
	club, err := loadClub(ctx, s.clubRepo, clubID)
	if err != nil {
		return nil, err
	}
	if err := authorize(club, userID); err != nil {
		return nil, err
	}
	if club.Polls == nil {
		return []model.Poll{}, nil
	}
	return club.Polls, nil
}

// Vote records the caller's vote for one option. Any prior vote by the
// caller on this poll is purged first, so a user holds at most one
// active vote per poll. Requires membership.
func (s *PollService) Vote(ctx context.Context, userID, clubID, pollID, optionID string) (*model.Poll, error) {
	club, err := loadClub(ctx, s.clubRepo, clubID)
	if err != nil {
		return nil, err
	}
	if err := authorize(club, userID); err != nil {
		return nil, err
	}

	poll := findPoll(club, pollID)
	if poll == nil {
		return nil, ErrPollNotFound
	}

	var option *model.PollOption
	for i := range poll.Options {
		if poll.Options[i].ID == optionID {
			option = &poll.Options[i]
			break
		}
	}
	if option == nil {
		return nil, ErrPollOptionNotFound
	}

	poll.PurgeVotes(userID)
	option.Votes = append(option.Votes, userID)

	if err := saveAggregate(ctx, s.clubRepo, club); err != nil {
		return nil, err
	}
	return poll, nil
}

// Delete removes a poll. Requires owner or officer.
func (s *PollService) Delete(ctx context.Context, userID, clubID, pollID string) error {
	club, err := loadClub(ctx, s.clubRepo, clubID)
	if err != nil {
		return err
	}
	if err := authorizeManager(club, userID); err != nil {
		return err
	}

	for i := range club.Polls {
		if club.Polls[i].ID == pollID {
			club.Polls = append(club.Polls[:i], club.Polls[i+1:]...)
			return saveAggregate(ctx, s.clubRepo, club)
		}
	}
	return ErrPollNotFound
}

// Edit is routed but deliberately unsupported; a poll's question and
// options are immutable once voting can start.
func (s *PollService) Edit(ctx context.Context, userID, clubID, pollID string) error {
	return ErrPollEditNotSupported
}

func findPoll(club *model.Club, pollID string) *model.Poll {
	for i := range club.Polls {
		if club.Polls[i].ID == pollID {
			return &club.Polls[i]
		}
	}
	return nil
}
