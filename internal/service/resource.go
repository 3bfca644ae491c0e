package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/forgo/clubsphere/internal/model"
	"github.com/google/uuid"
)

// FileStore removes stored file blobs by their retrieval URL
type FileStore interface {
	Remove(url string) error
}

// ResourceService manages shared club files and links
type ResourceService struct {
	clubRepo ClubRepository
	files    FileStore
	logger   *slog.Logger
}

// NewResourceService creates a new resource service
func NewResourceService(clubRepo ClubRepository, files FileStore, logger *slog.Logger) *ResourceService {
	return &ResourceService{
		clubRepo: clubRepo,
		files:    files,
		logger:   logger,
	}
}

// CreateResourceRequest represents a request to share a resource. URL is
// either the stored path of an uploaded file or an external link.
type CreateResourceRequest struct {
	Type model.ResourceType `json:"type"`
	Name string             `json:"name"`
	URL  string             `json:"url"`
}

// Create shares a resource. Requires owner or officer.
func (s *ResourceService) Create(ctx context.Context, userID, clubID string, req CreateResourceRequest) (*model.Resource, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ErrResourceNameRequired
	}
	if req.URL == "" || (req.Type != model.ResourceTypeFile && req.Type != model.ResourceTypeLink) {
		return nil, ErrResourceTargetRequired
	}

	club, err := loadClub(ctx, s.clubRepo, clubID)
	if err != nil {
		return nil, err
	}
	if err := authorizeManager(club, userID); err != nil {
		return nil, err
	}

	resource := model.Resource{
		ID:         uuid.NewString(),
		Type:       req.Type,
		Name:       name,
		URL:        req.URL,
		UploadedBy: userID,
		UploadedOn: time.Now().UTC(),
	}
	club.Resources = append(club.Resources, resource)

	if err := saveAggregate(ctx, s.clubRepo, club); err != nil {
		return nil, err
	}
	return &resource, nil
}

// List returns the club's resources. Requires membership.
func (s *ResourceService) List(ctx context.Context, userID, clubID string) ([]model.Resource, error) {
	club, err := loadClub(ctx, s.clubRepo, clubID)
	if err != nil {
		return nil, err
	}
	if err := authorize(club, userID); err != nil {
		return nil, err
	}
	if club.Resources == nil {
		return []model.Resource{}, nil
	}
	return club.Resources, nil
}

// Delete removes a resource. Owners and officers may delete any entry;
// the uploader may always delete their own. For file resources the
// backing blob is removed best-effort after the ledger write: a blob
// removal failure is logged, never surfaced.
func (s *ResourceService) Delete(ctx context.Context, userID, clubID, resourceID string) error {
	club, err := loadClub(ctx, s.clubRepo, clubID)
	if err != nil {
		return err
	}
	if err := authorize(club, userID); err != nil {
		return err
	}

	idx := -1
	for i := range club.Resources {
		if club.Resources[i].ID == resourceID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return ErrResourceNotFound
	}

	resource := club.Resources[idx]
	if resource.UploadedBy != userID {
		if err := authorizeManager(club, userID); err != nil {
			return err
		}
	}

	club.Resources = append(club.Resources[:idx], club.Resources[idx+1:]...)
	if err := saveAggregate(ctx, s.clubRepo, club); err != nil {
		return err
	}

	if resource.Type == model.ResourceTypeFile {
		if err := s.files.Remove(resource.URL); err != nil {
			s.logger.Warn("resource blob removal failed",
				"club_id", clubID,
				"resource_id", resourceID,
				"url", resource.URL,
				"error", err,
			)
		}
	}
	return nil
}
