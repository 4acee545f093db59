package videos

import (
	"context"

	"github.com/dmitrijs2005/vidkeeper/internal/models"
)

// Repository describes load and store operations for the video catalog.
// Implementations keep the whole catalog as one unit; there are no
// per-record operations at this layer.
type Repository interface {
	// Load reads the complete catalog. A missing file is an empty
	// catalog, not an error.
	Load(ctx context.Context) ([]models.Video, error)

	// Save rewrites the complete catalog, replacing whatever was stored.
	Save(ctx context.Context, records []models.Video) error
}

// NextID returns the id to assign to the next uploaded video: one more
// than the highest existing id, or 1 for an empty catalog. Deleting the
// record with the highest id makes that id assignable again.
func NextID(records []models.Video) int64 {
	var maxID int64
	for _, v := range records {
		if v.ID > maxID {
			maxID = v.ID
		}
	}
	return maxID + 1
}
