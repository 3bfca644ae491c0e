package repository

import (
	"context"
	"fmt"

	"github.com/forgo/clubsphere/internal/database"
	"github.com/forgo/clubsphere/internal/model"
)

// UserRepository handles user persistence, including the derived
// clubs_* caches. Every cache mutation goes through updateClubList so
// the allow-listed field names live in exactly one place.
type UserRepository struct {
	db database.Database
}

// NewUserRepository creates a new user repository
func NewUserRepository(db database.Database) *UserRepository {
	return &UserRepository{db: db}
}

// Create creates a new user with empty club caches
func (r *UserRepository) Create(ctx context.Context, name, email, hash string, accountType model.AccountType) (*model.User, error) {
	query := `
		CREATE user CONTENT {
			name: $name,
			email: $email,
			hash: $hash,
			account_type: $account_type,
			clubs_created: [],
			clubs_joined: [],
			clubs_invited: [],
			created_on: time::now(),
			updated_on: time::now()
		}
	`
	vars := map[string]interface{}{
		"name":         name,
		"email":        email,
		"hash":         hash,
		"account_type": string(accountType),
	}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if isUniqueConstraintError(err) {
			return nil, database.ErrDuplicate
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return parseUserResult(result)
}

// GetByID retrieves a user by ID. Returns nil if not found.
func (r *UserRepository) GetByID(ctx context.Context, userID string) (*model.User, error) {
	query := `SELECT * FROM type::record($id)`
	vars := map[string]interface{}{"id": userID}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if err == database.ErrNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return parseUserResult(result)
}

// GetByEmail retrieves a user by email. Returns nil if not found.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	query := `SELECT * FROM user WHERE email = $email LIMIT 1`
	vars := map[string]interface{}{"email": email}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if err == database.ErrNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return parseUserResult(result)
}

// ListRefsByIDs resolves user IDs to their display subset, preserving
// no particular order. Unknown IDs are silently skipped.
func (r *UserRepository) ListRefsByIDs(ctx context.Context, userIDs []string) (map[string]model.UserRef, error) {
	refs := make(map[string]model.UserRef, len(userIDs))
	if len(userIDs) == 0 {
		return refs, nil
	}

	query := `SELECT id, name, email FROM user WHERE id IN $ids`
	vars := map[string]interface{}{"ids": recordIDs(userIDs)}

	results, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	for _, data := range unwrapRecords(results) {
		var ref model.UserRef
		if err := decodeRecord(data, &ref); err != nil {
			continue
		}
		refs[ref.ID] = ref
	}
	return refs, nil
}

// Club cache fields. Only these may be touched by updateClubList.
const (
	fieldClubsCreated = "clubs_created"
	fieldClubsJoined  = "clubs_joined"
	fieldClubsInvited = "clubs_invited"
)

// AddCreatedClub records a club in the user's created cache
func (r *UserRepository) AddCreatedClub(ctx context.Context, userID, clubID string) error {
	return r.updateClubList(ctx, userID, fieldClubsCreated, clubID, true)
}

// AddJoinedClub records a club in the user's joined cache
func (r *UserRepository) AddJoinedClub(ctx context.Context, userID, clubID string) error {
	return r.updateClubList(ctx, userID, fieldClubsJoined, clubID, true)
}

// RemoveJoinedClub drops a club from the user's joined cache
func (r *UserRepository) RemoveJoinedClub(ctx context.Context, userID, clubID string) error {
	return r.updateClubList(ctx, userID, fieldClubsJoined, clubID, false)
}

// AddInvitedClub records a club in the user's invitation cache
func (r *UserRepository) AddInvitedClub(ctx context.Context, userID, clubID string) error {
	return r.updateClubList(ctx, userID, fieldClubsInvited, clubID, true)
}

// RemoveInvitedClub drops a club from the user's invitation cache
func (r *UserRepository) RemoveInvitedClub(ctx context.Context, userID, clubID string) error {
	return r.updateClubList(ctx, userID, fieldClubsInvited, clubID, false)
}

func (r *UserRepository) updateClubList(ctx context.Context, userID, field, clubID string, add bool) error {
	switch field {
	case fieldClubsCreated, fieldClubsJoined, fieldClubsInvited:
	default:
		return fmt.Errorf("field %q is not a club cache", field)
	}

	// Remove first on add so re-inviting or re-joining never duplicates
	// the entry.
	query := fmt.Sprintf(`UPDATE type::record($id) SET %s -= $club, updated_on = time::now()`, field)
	if add {
		query = fmt.Sprintf(`UPDATE type::record($id) SET %s -= $club, %s += $club, updated_on = time::now()`, field, field)
	}
	vars := map[string]interface{}{
		"id":   userID,
		"club": clubID,
	}

	if err := r.db.Execute(ctx, query, vars); err != nil {
		return fmt.Errorf("failed to update %s: %w", field, err)
	}
	return nil
}

// parseUserResult converts a database result into a User model
func parseUserResult(result interface{}) (*model.User, error) {
	data, err := unwrapRecord(result)
	if err != nil {
		return nil, err
	}

	// The hash is extracted by hand because the model never serializes it
	hash, _ := data["hash"].(string)

	var user model.User
	if err := decodeRecord(data, &user); err != nil {
		return nil, fmt.Errorf("failed to parse user: %w", err)
	}
	user.Hash = hash

	if user.ID == "" {
		return nil, fmt.Errorf("user record missing id")
	}
	return &user, nil
}

// recordIDs converts plain string IDs to the form usable in IN clauses
func recordIDs(ids []string) []interface{} {
	out := make([]interface{}, 0, len(ids))
	for _, id := range ids {
		out = append(out, id)
	}
	return out
}
