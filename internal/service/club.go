package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/forgo/clubsphere/internal/database"
	"github.com/forgo/clubsphere/internal/model"
)

// ClubService owns the membership ledger: club creation, invitations,
// membership changes and the derived per-user club listings.
type ClubService struct {
	clubRepo ClubRepository
	userRepo UserRepository
	logger   *slog.Logger
}

// NewClubService creates a new club service
func NewClubService(clubRepo ClubRepository, userRepo UserRepository, logger *slog.Logger) *ClubService {
	return &ClubService{
		clubRepo: clubRepo,
		userRepo: userRepo,
		logger:   logger,
	}
}

// CreateClub creates a club with the creator as its sole owner
func (s *ClubService) CreateClub(ctx context.Context, userID string, req model.CreateClubRequest) (*model.Club, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ErrClubNameRequired
	}
	if len(name) > model.MaxClubNameLength {
		return nil, ErrClubNameTooLong
	}
	if len(req.Description) > model.MaxClubDescLength {
		return nil, ErrClubDescTooLong
	}

	club := &model.Club{
		Name:        name,
		Description: strings.TrimSpace(req.Description),
		CreatedBy:   userID,
		Members: []model.Membership{
			{UserID: userID, Role: model.RoleOwner, JoinedOn: time.Now().UTC()},
		},
		PendingInvitations: []string{},
	}

	created, err := s.clubRepo.Create(ctx, club)
	if err != nil {
		if errors.Is(err, database.ErrDuplicate) {
			return nil, ErrClubNameExists
		}
		return nil, err
	}

	s.refreshUserCache(ctx, created.ID, userID, s.userRepo.AddCreatedClub)
	s.refreshUserCache(ctx, created.ID, userID, s.userRepo.AddJoinedClub)

	return created, nil
}

// GetClub returns the club aggregate to one of its members
func (s *ClubService) GetClub(ctx context.Context, userID, clubID string) (*model.Club, error) {
	club, err := loadClub(ctx, s.clubRepo, clubID)
	if err != nil {
		return nil, err
	}
	if err := authorize(club, userID); err != nil {
		return nil, err
	}
	return club, nil
}

// ListClubs returns summaries of every club for discovery
func (s *ClubService) ListClubs(ctx context.Context) ([]model.ClubSummary, error) {
	return s.clubRepo.ListAllSummaries(ctx)
}

// EditClub updates a club's profile. Only name and description may
// change, and only an owner or officer may change them.
func (s *ClubService) EditClub(ctx context.Context, userID, clubID string, req model.UpdateClubRequest) (*model.Club, error) {
	club, err := loadClub(ctx, s.clubRepo, clubID)
	if err != nil {
		return nil, err
	}
	if err := authorizeManager(club, userID); err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, ErrClubNameRequired
		}
		if len(name) > model.MaxClubNameLength {
			return nil, ErrClubNameTooLong
		}
		if name != club.Name {
			existing, err := s.clubRepo.GetByName(ctx, name)
			if err != nil {
				return nil, err
			}
			if existing != nil {
				return nil, ErrClubNameExists
			}
		}
		club.Name = name
	}
	if req.Description != nil {
		desc := strings.TrimSpace(*req.Description)
		if len(desc) > model.MaxClubDescLength {
			return nil, ErrClubDescTooLong
		}
		club.Description = desc
	}

	if err := s.saveClub(ctx, club); err != nil {
		return nil, err
	}
	return club, nil
}

// Invite adds a pending invitation for targetID. The inviter must be an
// owner or officer; the target must exist and be neither a member nor
// already invited.
func (s *ClubService) Invite(ctx context.Context, inviterID, clubID, targetID string) error {
	club, err := loadClub(ctx, s.clubRepo, clubID)
	if err != nil {
		return err
	}
	if err := authorizeManager(club, inviterID); err != nil {
		return err
	}

	target, err := s.userRepo.GetByID(ctx, targetID)
	if err != nil {
		return err
	}
	if target == nil {
		return ErrUserNotFound
	}

	if club.IsMember(targetID) {
		return ErrAlreadyMember
	}
	if club.IsInvited(targetID) {
		return ErrAlreadyInvited
	}

	club.PendingInvitations = append(club.PendingInvitations, targetID)
	if err := s.saveClub(ctx, club); err != nil {
		return err
	}

	s.refreshUserCache(ctx, clubID, targetID, s.userRepo.AddInvitedClub)
	return nil
}

// RespondToInvitation resolves the caller's pending invitation. The
// pending entry is cleared whether the answer is accept or decline; on
// accept the caller joins the ledger as a plain member.
func (s *ClubService) RespondToInvitation(ctx context.Context, userID, clubID string, accept bool) error {
	club, err := loadClub(ctx, s.clubRepo, clubID)
	if err != nil {
		return err
	}

	if !club.RemoveInvitation(userID) {
		return ErrNoInvitationFound
	}

	if accept {
		club.Members = append(club.Members, model.Membership{
			UserID:   userID,
			Role:     model.RoleMember,
			JoinedOn: time.Now().UTC(),
		})
	}

	if err := s.saveClub(ctx, club); err != nil {
		return err
	}

	s.refreshUserCache(ctx, clubID, userID, s.userRepo.RemoveInvitedClub)
	if accept {
		s.refreshUserCache(ctx, clubID, userID, s.userRepo.AddJoinedClub)
	}
	return nil
}

// RemoveMember removes targetID from the ledger. The actor must be an
// owner or officer, and the owner can never be removed.
func (s *ClubService) RemoveMember(ctx context.Context, actorID, clubID, targetID string) error {
	club, err := loadClub(ctx, s.clubRepo, clubID)
	if err != nil {
		return err
	}
	if err := authorizeManager(club, actorID); err != nil {
		return err
	}

	role, ok := club.RoleOf(targetID)
	if !ok {
		return ErrNotAMember
	}
	if role == model.RoleOwner {
		return ErrCannotRemoveOwner
	}

	club.RemoveMembership(targetID)
	if err := s.saveClub(ctx, club); err != nil {
		return err
	}

	s.refreshUserCache(ctx, clubID, targetID, s.userRepo.RemoveJoinedClub)
	return nil
}

// ListMyClubs returns summaries of the clubs the user belongs to
func (s *ClubService) ListMyClubs(ctx context.Context, userID string) ([]model.ClubSummary, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return s.clubRepo.ListSummariesByIDs(ctx, user.ClubsJoined)
}

// ListInvitations returns summaries of clubs with a pending invitation
// for the user
func (s *ClubService) ListInvitations(ctx context.Context, userID string) ([]model.ClubSummary, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return s.clubRepo.ListSummariesByIDs(ctx, user.ClubsInvited)
}

// saveClub saves the aggregate and maps the version check failure
func (s *ClubService) saveClub(ctx context.Context, club *model.Club) error {
	return saveAggregate(ctx, s.clubRepo, club)
}

// refreshUserCache updates a derived clubs_* list. Cache refresh never
// fails the operation; the ledger already holds the truth.
func (s *ClubService) refreshUserCache(ctx context.Context, clubID, userID string, update func(context.Context, string, string) error) {
	if err := update(ctx, userID, clubID); err != nil {
		s.logger.Warn("club cache refresh failed",
			"club_id", clubID,
			"user_id", userID,
			"error", err,
		)
	}
}
