package videos

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dmitrijs2005/vidkeeper/internal/common"
	"github.com/dmitrijs2005/vidkeeper/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRepo(t *testing.T) (*JSONFileRepository, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "videos.json")
	return NewJSONFileRepository(path), path
}

func sampleVideos() []models.Video {
	return []models.Video{
		{
			ID:          1,
			Title:       "Morning Jazz Session",
			Description: "Live recording",
			Uploader:    "alice",
			Tags:        []string{"music", "jazz"},
			UploadedAt:  time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC),
		},
		{
			ID:         2,
			Title:      "Downhill Run",
			Uploader:   "bob",
			Tags:       []string{},
			UploadedAt: time.Date(2025, 6, 2, 18, 0, 0, 0, time.UTC),
		},
	}
}

func TestLoad_MissingFileReturnsEmptyCatalog(t *testing.T) {
	r, _ := testRepo(t)

	got, err := r.Load(context.Background())
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Empty(t, got)
}

func TestLoad_ReadsExistingRecords(t *testing.T) {
	r, path := testRepo(t)

	data := `[
  {
    "id": 1,
    "title": "Intro",
    "description": "first",
    "uploader": "alice",
    "tags": ["howto"],
    "uploaded_at": "2025-06-01T09:30:00Z"
  }
]`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o660))

	got, err := r.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)

	v := got[0]
	assert.Equal(t, int64(1), v.ID)
	assert.Equal(t, "Intro", v.Title)
	assert.Equal(t, "first", v.Description)
	assert.Equal(t, "alice", v.Uploader)
	assert.Equal(t, []string{"howto"}, v.Tags)
	assert.Equal(t, time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC), v.UploadedAt)
}

func TestLoad_NormalizesNullTags(t *testing.T) {
	r, path := testRepo(t)

	data := `[{"id": 1, "title": "Intro", "tags": null, "uploaded_at": "2025-06-01T09:30:00Z"}]`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o660))

	got, err := r.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.NotNil(t, got[0].Tags)
	require.Empty(t, got[0].Tags)
}

func TestLoad_CorruptFile(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"invalid json", `{"id": 1,`},
		{"empty file", ``},
		{"non-array", `{"id": 1}`},
		{"json null", `null`},
		{"non-positive id", `[{"id": 0, "title": "t", "uploaded_at": "2025-06-01T09:30:00Z"}]`},
		{"duplicate id", `[{"id": 1, "title": "a", "uploaded_at": "2025-06-01T09:30:00Z"},
		                  {"id": 1, "title": "b", "uploaded_at": "2025-06-01T09:30:00Z"}]`},
		{"empty title", `[{"id": 1, "title": "", "uploaded_at": "2025-06-01T09:30:00Z"}]`},
		{"whitespace title", `[{"id": 1, "title": "   ", "uploaded_at": "2025-06-01T09:30:00Z"}]`},
		{"missing uploaded_at", `[{"id": 1, "title": "t"}]`},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			r, path := testRepo(t)
			require.NoError(t, os.WriteFile(path, []byte(tt.data), 0o660))

			_, err := r.Load(context.Background())
			require.ErrorIs(t, err, common.ErrorStorageCorrupt)
		})
	}
}

func TestSave_RoundTrip(t *testing.T) {
	r, _ := testRepo(t)
	ctx := context.Background()

	want := sampleVideos()
	require.NoError(t, r.Save(ctx, want))

	got, err := r.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestSave_WritesIndentedArray(t *testing.T) {
	r, path := testRepo(t)

	require.NoError(t, r.Save(context.Background(), sampleVideos()))

	b, err := os.ReadFile(path)
	require.NoError(t, err)

	s := string(b)
	assert.True(t, len(s) > 0 && s[0] == '[', "catalog must be a JSON array")
	assert.Contains(t, s, "\n  {", "records must be indented with two spaces")
	assert.Contains(t, s, `"title": "Morning Jazz Session"`)
}

func TestSave_NilRecordsWriteEmptyArray(t *testing.T) {
	r, path := testRepo(t)

	require.NoError(t, r.Save(context.Background(), nil))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "[]", string(b))
}

func TestSave_OverwritesPreviousContent(t *testing.T) {
	r, _ := testRepo(t)
	ctx := context.Background()

	require.NoError(t, r.Save(ctx, sampleVideos()))
	require.NoError(t, r.Save(ctx, sampleVideos()[:1]))

	got, err := r.Load(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, int64(1), got[0].ID)
}

func TestSave_CreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "nested", "videos.json")
	r := NewJSONFileRepository(path)

	require.NoError(t, r.Save(context.Background(), sampleVideos()))

	_, err := os.Stat(path)
	require.NoError(t, err)
}

func TestSave_LeavesNoTempFilesBehind(t *testing.T) {
	r, path := testRepo(t)

	require.NoError(t, r.Save(context.Background(), sampleVideos()))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, filepath.Base(path), entries[0].Name())
}

func TestSave_WriteFailure(t *testing.T) {
	tmp := t.TempDir()
	// A regular file where the parent directory should be.
	require.NoError(t, os.WriteFile(filepath.Join(tmp, "blocked"), []byte("x"), 0o660))

	r := NewJSONFileRepository(filepath.Join(tmp, "blocked", "videos.json"))
	err := r.Save(context.Background(), sampleVideos())
	require.ErrorIs(t, err, common.ErrorStorageWrite)
}

func TestLoadSave_CancelledContext(t *testing.T) {
	r, _ := testRepo(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := r.Load(ctx)
	require.ErrorIs(t, err, context.Canceled)

	err = r.Save(ctx, sampleVideos())
	require.ErrorIs(t, err, context.Canceled)
}

func TestNextID(t *testing.T) {
	tests := []struct {
		name    string
		records []models.Video
		want    int64
	}{
		{"empty catalog", nil, 1},
		{"sequential ids", []models.Video{{ID: 1}, {ID: 2}, {ID: 3}}, 4},
		{"gaps do not matter", []models.Video{{ID: 5}, {ID: 2}}, 6},
		{"single record", []models.Video{{ID: 1}}, 2},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NextID(tt.records))
		})
	}
}
