package videos

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/vidkeeper/internal/common"
	"github.com/dmitrijs2005/vidkeeper/internal/filex"
	"github.com/dmitrijs2005/vidkeeper/internal/models"
	"github.com/google/uuid"
)

// JSONFileRepository implements Repository over a single JSON file.
type JSONFileRepository struct {
	path string
}

var _ Repository = (*JSONFileRepository)(nil)

// NewJSONFileRepository returns a repository bound to the given file path.
// The file does not have to exist yet.
func NewJSONFileRepository(path string) *JSONFileRepository {
	return &JSONFileRepository{path: path}
}

// Load reads and validates the catalog file. A missing file yields an
// empty catalog. Any parse or shape problem is common.ErrorStorageCorrupt;
// the file is left untouched for manual inspection.
func (r *JSONFileRepository) Load(ctx context.Context) ([]models.Video, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	b, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []models.Video{}, nil
		}
		return nil, fmt.Errorf("%w: read %s: %v", common.ErrorStorageCorrupt, r.path, err)
	}

	var records []models.Video
	if err := json.Unmarshal(b, &records); err != nil {
		return nil, fmt.Errorf("%w: parse %s: %v", common.ErrorStorageCorrupt, r.path, err)
	}
	if records == nil {
		// JSON null parses fine but is not a catalog.
		return nil, fmt.Errorf("%w: %s: expected a JSON array", common.ErrorStorageCorrupt, r.path)
	}

	seen := make(map[int64]struct{}, len(records))
	for i := range records {
		v := &records[i]
		if v.ID <= 0 {
			return nil, fmt.Errorf("%w: record %d: id must be positive, got %d", common.ErrorStorageCorrupt, i, v.ID)
		}
		if _, dup := seen[v.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate id %d", common.ErrorStorageCorrupt, v.ID)
		}
		seen[v.ID] = struct{}{}
		if strings.TrimSpace(v.Title) == "" {
			return nil, fmt.Errorf("%w: record id=%d: empty title", common.ErrorStorageCorrupt, v.ID)
		}
		if v.UploadedAt.IsZero() {
			return nil, fmt.Errorf("%w: record id=%d: missing uploaded_at", common.ErrorStorageCorrupt, v.ID)
		}
		if v.Tags == nil {
			v.Tags = []string{}
		}
	}

	return records, nil
}

// Save rewrites the catalog file with the given records. The write goes
// to a uuid-named temp file in the same directory first and is renamed
// over the target, so a crash mid-write never leaves a half-written
// catalog behind.
func (r *JSONFileRepository) Save(ctx context.Context, records []models.Video) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if records == nil {
		records = []models.Video{}
	}

	b, err := json.MarshalIndent(records, "", common.JSONIndent)
	if err != nil {
		return fmt.Errorf("%w: marshal catalog: %v", common.ErrorStorageWrite, err)
	}

	dir, err := filex.EnsureParentDir(r.path)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrorStorageWrite, err)
	}

	tmp := filepath.Join(dir, fmt.Sprintf("%s.%v.tmp", filepath.Base(r.path), uuid.New()))
	if err := os.WriteFile(tmp, b, 0o660); err != nil {
		return fmt.Errorf("%w: write %s: %v", common.ErrorStorageWrite, tmp, err)
	}

	if err := os.Rename(tmp, r.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("%w: rename %s: %v", common.ErrorStorageWrite, tmp, err)
	}

	return nil
}
