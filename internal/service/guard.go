package service

import (
	"context"
	"errors"

	"github.com/forgo/clubsphere/internal/database"
	"github.com/forgo/clubsphere/internal/model"
)

// ClubRepository defines the interface for club aggregate storage
type ClubRepository interface {
	Create(ctx context.Context, club *model.Club) (*model.Club, error)
	GetByID(ctx context.Context, clubID string) (*model.Club, error)
	GetByName(ctx context.Context, name string) (*model.Club, error)
	Save(ctx context.Context, club *model.Club) error
	ListSummariesByIDs(ctx context.Context, clubIDs []string) ([]model.ClubSummary, error)
	ListAllSummaries(ctx context.Context) ([]model.ClubSummary, error)
}

// UserRepository defines the interface for user storage
type UserRepository interface {
	Create(ctx context.Context, name, email, hash string, accountType model.AccountType) (*model.User, error)
	GetByID(ctx context.Context, userID string) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	ListRefsByIDs(ctx context.Context, userIDs []string) (map[string]model.UserRef, error)
	AddCreatedClub(ctx context.Context, userID, clubID string) error
	AddJoinedClub(ctx context.Context, userID, clubID string) error
	RemoveJoinedClub(ctx context.Context, userID, clubID string) error
	AddInvitedClub(ctx context.Context, userID, clubID string) error
	RemoveInvitedClub(ctx context.Context, userID, clubID string) error
}

// authorize checks userID's standing in the club's membership ledger.
// With no roles given, any member passes. With roles, the member's
// recorded role must be one of them. Non-members always fail with
// ErrNotClubMember; members lacking the role fail with ErrNotClubManager.
//
// Callers must pass a club loaded within the current request. A role
// read at login time or cached in middleware can be stale; the ledger
// on the fresh document is the only source of truth.
func authorize(club *model.Club, userID string, roles ...model.Role) error {
	role, ok := club.RoleOf(userID)
	if !ok {
		return ErrNotClubMember
	}
	if len(roles) == 0 {
		return nil
	}
	for _, allowed := range roles {
		if role == allowed {
			return nil
		}
	}
	return ErrNotClubManager
}

// authorizeManager is the common write gate: owner or officer
func authorizeManager(club *model.Club, userID string) error {
	return authorize(club, userID, model.RoleOwner, model.RoleOfficer)
}

// loadClub fetches the aggregate or maps its absence to ErrClubNotFound
func loadClub(ctx context.Context, repo ClubRepository, clubID string) (*model.Club, error) {
	club, err := repo.GetByID(ctx, clubID)
	if err != nil {
		return nil, err
	}
	if club == nil {
		return nil, ErrClubNotFound
	}
	return club, nil
}

// saveAggregate writes the aggregate back, mapping the storage-level
// version check failure to the service sentinel
func saveAggregate(ctx context.Context, repo ClubRepository, club *model.Club) error {
	err := repo.Save(ctx, club)
	if err == nil {
		return nil
	}
	if errors.Is(err, database.ErrConflict) {
		return ErrVersionConflict
	}
	if errors.Is(err, database.ErrNotFound) {
		return ErrClubNotFound
	}
	return err
}
