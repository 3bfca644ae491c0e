package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/forgo/clubsphere/internal/database"
	"github.com/forgo/clubsphere/internal/model"
)

// ClubRepository persists the club aggregate as a single document.
// Reads load the whole document; Save writes it back whole, guarded by
// the version token.
type ClubRepository struct {
	db database.Database
}

// NewClubRepository creates a new club repository
func NewClubRepository(db database.Database) *ClubRepository {
	return &ClubRepository{db: db}
}

// Create creates a new club document at version 1 with the creator as
// sole owner. Club names are unique.
func (r *ClubRepository) Create(ctx context.Context, club *model.Club) (*model.Club, error) {
	existing, err := r.GetByName(ctx, club.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, database.ErrDuplicate
	}

	now := time.Now().UTC()
	club.Version = 1
	club.CreatedOn = now
	club.UpdatedOn = now

	content, err := toDocument(club)
	if err != nil {
		return nil, fmt.Errorf("failed to encode club: %w", err)
	}

	query := `CREATE club CONTENT $content`
	vars := map[string]interface{}{"content": content}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if isUniqueConstraintError(err) {
			return nil, database.ErrDuplicate
		}
		return nil, fmt.Errorf("failed to create club: %w", err)
	}

	return parseClubResult(result)
}

// GetByID retrieves a club aggregate by ID. Returns nil if not found.
func (r *ClubRepository) GetByID(ctx context.Context, clubID string) (*model.Club, error) {
	query := `SELECT * FROM type::record($id)`
	vars := map[string]interface{}{"id": clubID}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if err == database.ErrNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get club: %w", err)
	}

	return parseClubResult(result)
}

// GetByName retrieves a club by its unique name. Returns nil if not found.
func (r *ClubRepository) GetByName(ctx context.Context, name string) (*model.Club, error) {
	query := `SELECT * FROM club WHERE name = $name LIMIT 1`
	vars := map[string]interface{}{"name": name}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if err == database.ErrNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get club by name: %w", err)
	}

	return parseClubResult(result)
}

// Save writes the whole aggregate back, but only if the stored version
// still matches the version the caller loaded. On success the stored
// version advances by one and club.Version is updated to match. A
// concurrent writer in between yields database.ErrConflict.
func (r *ClubRepository) Save(ctx context.Context, club *model.Club) error {
	loaded := club.Version
	club.Version = loaded + 1
	club.UpdatedOn = time.Now().UTC()

	content, err := toDocument(club)
	if err != nil {
		club.Version = loaded
		return fmt.Errorf("failed to encode club: %w", err)
	}

	query := `
		UPDATE type::record($id)
		CONTENT $content
		WHERE version = $expected
	`
	vars := map[string]interface{}{
		"id":       club.ID,
		"content":  content,
		"expected": loaded,
	}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		club.Version = loaded
		if err == database.ErrNotFound {
			// No row updated: either the club vanished or the version
			// moved underneath us. Distinguish by re-reading.
			current, getErr := r.GetByID(ctx, club.ID)
			if getErr != nil {
				return getErr
			}
			if current == nil {
				return database.ErrNotFound
			}
			return database.ErrConflict
		}
		return fmt.Errorf("failed to save club: %w", err)
	}

	saved, err := parseClubResult(result)
	if err != nil {
		club.Version = loaded
		return err
	}
	club.Version = saved.Version
	club.UpdatedOn = saved.UpdatedOn
	return nil
}

// ListAllSummaries returns listing summaries for every club, sorted by name
func (r *ClubRepository) ListAllSummaries(ctx context.Context) ([]model.ClubSummary, error) {
	query := `
		SELECT id, name, description, array::len(members) AS member_count
		FROM club ORDER BY name ASC
	`

	results, err := r.db.Query(ctx, query, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list clubs: %w", err)
	}

	summaries := make([]model.ClubSummary, 0)
	for _, data := range unwrapRecords(results) {
		var s model.ClubSummary
		if err := decodeRecord(data, &s); err != nil {
			continue
		}
		summaries = append(summaries, s)
	}
	return summaries, nil
}

// ListSummariesByIDs resolves club IDs to listing summaries. Unknown
// IDs are skipped, so a stale user cache never breaks a dashboard.
func (r *ClubRepository) ListSummariesByIDs(ctx context.Context, clubIDs []string) ([]model.ClubSummary, error) {
	if len(clubIDs) == 0 {
		return []model.ClubSummary{}, nil
	}

	query := `
		SELECT id, name, description, array::len(members) AS member_count
		FROM club WHERE id IN $ids
	`
	vars := map[string]interface{}{"ids": recordIDs(clubIDs)}

	results, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return nil, fmt.Errorf("failed to list clubs: %w", err)
	}

	summaries := make([]model.ClubSummary, 0, len(clubIDs))
	for _, data := range unwrapRecords(results) {
		var s model.ClubSummary
		if err := decodeRecord(data, &s); err != nil {
			continue
		}
		summaries = append(summaries, s)
	}
	return summaries, nil
}

// parseClubResult converts a database result into a Club aggregate
func parseClubResult(result interface{}) (*model.Club, error) {
	data, err := unwrapRecord(result)
	if err != nil {
		return nil, err
	}

	var club model.Club
	if err := decodeRecord(data, &club); err != nil {
		return nil, fmt.Errorf("failed to parse club: %w", err)
	}
	if club.ID == "" {
		return nil, fmt.Errorf("club record missing id")
	}
	return &club, nil
}
