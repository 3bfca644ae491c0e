package service

import (
	"context"
	"strings"
	"time"

	"github.com/forgo/clubsphere/internal/model"
	"github.com/google/uuid"
)

// AchievementService manages club achievements and their awards
type AchievementService struct {
	clubRepo ClubRepository
}

// NewAchievementService creates a new achievement service
func NewAchievementService(clubRepo ClubRepository) *AchievementService {
	return &AchievementService{clubRepo: clubRepo}
}

// CreateAchievementRequest represents a request to define an achievement
type CreateAchievementRequest struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

// UpdateAchievementRequest represents an achievement profile update.
// Only title and description may change; award records are managed
// through Award and Revoke.
type UpdateAchievementRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
}

// Create defines an achievement. Requires owner or officer.
func (s *AchievementService) Create(ctx context.Context, userID, clubID string, req CreateAchievementRequest) (*model.Achievement, error) {
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

	achievement := model.Achievement{
		ID:          uuid.NewString(),
		Title:       title,
		Description: strings.TrimSpace(req.Description),
		Awards:      []model.Award{},
		CreatedOn:   time.Now().UTC(),
	}
	club.Achievements = append(club.Achievements, achievement)

	if err := saveAggregate(ctx, s.clubRepo, club); err != nil {
		return nil, err
	}
	return &achievement, nil
}

// List returns the club's achievements. Requires membership.
func (s *AchievementService) List(ctx context.Context, userID, clubID string) ([]model.Achievement, error) {
	club, err := loadClub(ctx, s.clubRepo, clubID)
	if err != nil {
		return nil, err
	}
	if err := authorize(club, userID); err != nil {
		return nil, err
	}
	if club.Achievements == nil {
		return []model.Achievement{}, nil
	}
	return club.Achievements, nil
}

// Update edits an achievement's title or description. Requires owner or
// officer.
func (s *AchievementService) Update(ctx context.Context, userID, clubID, achievementID string, req UpdateAchievementRequest) (*model.Achievement, error) {
	club, err := loadClub(ctx, s.clubRepo, clubID)
	if err != nil {
		return nil, err
	}
	if err := authorizeManager(club, userID); err != nil {
		return nil, err
	}

	achievement := findAchievement(club, achievementID)
	if achievement == nil {
		return nil, ErrAchievementNotFound
	}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return nil, ErrTitleRequired
		}
		achievement.Title = title
	}
	if req.Description != nil {
		achievement.Description = strings.TrimSpace(*req.Description)
	}

	if err := saveAggregate(ctx, s.clubRepo, club); err != nil {
		return nil, err
	}
	return achievement, nil
}

// Delete removes an achievement and, with it, every award record it
// carried. Requires owner or officer.
func (s *AchievementService) Delete(ctx context.Context, userID, clubID, achievementID string) error {
	club, err := loadClub(ctx, s.clubRepo, clubID)
	if err != nil {
		return err
	}
	if err := authorizeManager(club, userID); err != nil {
		return err
	}

	for i := range club.Achievements {
		if club.Achievements[i].ID == achievementID {
			club.Achievements = append(club.Achievements[:i], club.Achievements[i+1:]...)
			return saveAggregate(ctx, s.clubRepo, club)
		}
	}
	return ErrAchievementNotFound
}

// Award grants an achievement to a club member. Requires owner or
// officer; the target must be in the ledger and not already awarded.
func (s *AchievementService) Award(ctx context.Context, actorID, clubID, achievementID, targetID string) error {
	club, err := loadClub(ctx, s.clubRepo, clubID)
	if err != nil {
		return err
	}
	if err := authorizeManager(club, actorID); err != nil {
		return err
	}

	achievement := findAchievement(club, achievementID)
	if achievement == nil {
		return ErrAchievementNotFound
	}

	if !club.IsMember(targetID) {
		return ErrNotAMember
	}
	if achievement.IsAwardedTo(targetID) {
		return ErrAlreadyAwarded
	}

	achievement.Awards = append(achievement.Awards, model.Award{
		UserID:    targetID,
		AwardedBy: actorID,
		AwardedOn: time.Now().UTC(),
	})

	return saveAggregate(ctx, s.clubRepo, club)
}

// Revoke withdraws a previously granted award. Requires owner or officer.
func (s *AchievementService) Revoke(ctx context.Context, actorID, clubID, achievementID, targetID string) error {
	club, err := loadClub(ctx, s.clubRepo, clubID)
	if err != nil {
		return err
	}
	if err := authorizeManager(club, actorID); err != nil {
		return err
	}

	achievement := findAchievement(club, achievementID)
	if achievement == nil {
		return ErrAchievementNotFound
	}
	if !achievement.RemoveAward(targetID) {
		return ErrNotAwarded
	}

	return saveAggregate(ctx, s.clubRepo, club)
}

func findAchievement(club *model.Club, achievementID string) *model.Achievement {
	for i := range club.Achievements {
		if club.Achievements[i].ID == achievementID {
			return &club.Achievements[i]
		}
	}
	return nil
}
