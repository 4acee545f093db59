// Package services implements the application logic of the video catalog
// shared by the command-line and form front-ends.
package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/vidkeeper/internal/common"
	"github.com/dmitrijs2005/vidkeeper/internal/models"
	"github.com/dmitrijs2005/vidkeeper/internal/repositories/videos"
)

// timeNow is the clock used for upload timestamps; replaced in tests.
var timeNow = time.Now

// CatalogService exposes the five catalog operations. All methods reload
// the catalog from the repository, so concurrent front-ends over the same
// repository always see the latest saved state.
type CatalogService interface {
	Upload(ctx context.Context, title, description, uploader string, tags []string) (*models.Video, error)
	List(ctx context.Context) ([]models.Video, error)
	Get(ctx context.Context, id int64) (*models.Video, error)
	Delete(ctx context.Context, id int64) error
	Search(ctx context.Context, query string) ([]models.Video, error)
}

type catalogService struct {
	repo videos.Repository
}

// NewCatalogService returns a CatalogService backed by the given repository.
func NewCatalogService(repo videos.Repository) CatalogService {
	return &catalogService{repo: repo}
}

// Upload validates and stores a new video record, returning it with its
// assigned id and timestamp. Validation runs before any storage access,
// so a rejected upload never reads or writes the catalog file.
func (s *catalogService) Upload(ctx context.Context, title, description, uploader string, tags []string) (*models.Video, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, fmt.Errorf("%w: title must not be empty", common.ErrorValidation)
	}

	records, err := s.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}

	if tags == nil {
		tags = []string{}
	}

	v := models.Video{
		ID:          videos.NextID(records),
		Title:       title,
		Description: description,
		Uploader:    uploader,
		Tags:        tags,
		UploadedAt:  timeNow().UTC(),
	}

	records = append(records, v)
	if err := s.repo.Save(ctx, records); err != nil {
		return nil, fmt.Errorf("saving catalog: %w", err)
	}

	return &v, nil
}

// List returns all records in upload order.
func (s *catalogService) List(ctx context.Context) ([]models.Video, error) {
	records, err := s.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}
	return records, nil
}

// Get returns the record with the given id, or common.ErrorNotFound.
func (s *catalogService) Get(ctx context.Context, id int64) (*models.Video, error) {
	records, err := s.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}

	for i := range records {
		if records[i].ID == id {
			return &records[i], nil
		}
	}
	return nil, fmt.Errorf("%w: video id=%d", common.ErrorNotFound, id)
}

// Delete removes the record with the given id, keeping the order of the
// remaining records. A missing id is common.ErrorNotFound and leaves the
// catalog untouched.
func (s *catalogService) Delete(ctx context.Context, id int64) error {
	records, err := s.repo.Load(ctx)
	if err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}

	idx := -1
	for i := range records {
		if records[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("%w: video id=%d", common.ErrorNotFound, id)
	}

	records = append(records[:idx], records[idx+1:]...)
	if err := s.repo.Save(ctx, records); err != nil {
		return fmt.Errorf("saving catalog: %w", err)
	}
	return nil
}

// Search returns the records matching query in upload order. An empty or
// blank query returns the whole catalog.
func (s *catalogService) Search(ctx context.Context, query string) ([]models.Video, error) {
	records, err := s.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}

	query = strings.TrimSpace(query)
	result := make([]models.Video, 0, len(records))
	for _, v := range records {
		if v.Matches(query) {
			result = append(result, v)
		}
	}
	return result, nil
}
