package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/vidkeeper/internal/models"
)

// stubTerminal forces the terminal seams to report a tty of the given
// width for the duration of the test.
func stubTerminal(t *testing.T, width int) {
	t.Helper()
	origIsTerminal := isTerminal
	origTermSize := termSize
	isTerminal = func(fd int) bool { return true }
	termSize = func(fd int) (int, int, error) { return width, 24, nil }
	t.Cleanup(func() {
		isTerminal = origIsTerminal
		termSize = origTermSize
	})
}

func TestRenderList_EmptyCatalog(t *testing.T) {
	var buf bytes.Buffer

	renderList(&buf, nil)

	assert.Equal(t, "No videos uploaded yet.\n", buf.String())
}

func TestRenderList_FormatsRecords(t *testing.T) {
	var buf bytes.Buffer
	records := []models.Video{
		{ID: 1, Title: "Morning Jazz", Uploader: "alice", Tags: []string{"music", "jazz"},
			UploadedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)},
		{ID: 2, Title: "Baking Bread", Uploader: "bob",
			UploadedAt: time.Date(2025, 6, 2, 8, 30, 0, 0, time.UTC)},
	}

	renderList(&buf, records)

	want := "2 video(s):\n" +
		"[1] Morning Jazz (by alice) tags: music, jazz uploaded: 2025-06-01T12:00:00Z\n" +
		"[2] Baking Bread (by bob) tags: - uploaded: 2025-06-02T08:30:00Z\n"
	assert.Equal(t, want, buf.String())
}

func TestRenderList_TruncatesToTerminalWidth(t *testing.T) {
	stubTerminal(t, 30)

	f, err := os.Create(filepath.Join(t.TempDir(), "out"))
	require.NoError(t, err)
	defer f.Close()

	records := []models.Video{
		{ID: 1, Title: strings.Repeat("Morning Jazz ", 10), Uploader: "alice",
			UploadedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)},
	}
	renderList(f, records)

	content, err := os.ReadFile(f.Name())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(content), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "1 video(s):", lines[0])
	assert.Len(t, []rune(lines[1]), 30)
	assert.True(t, strings.HasSuffix(lines[1], "..."))
}

func TestRenderList_PipedOutputNotTruncated(t *testing.T) {
	// Even with a tty reported, a non-file writer means piped output.
	stubTerminal(t, 10)

	var buf bytes.Buffer
	records := []models.Video{
		{ID: 1, Title: "A title much longer than ten columns", Uploader: "alice",
			UploadedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)},
	}
	renderList(&buf, records)

	assert.Contains(t, buf.String(), "A title much longer than ten columns")
	assert.NotContains(t, buf.String(), "...")
}

func TestRenderSearchResults_Empty(t *testing.T) {
	var buf bytes.Buffer

	renderSearchResults(&buf, nil)

	assert.Equal(t, "No results\n", buf.String())
}

func TestRenderSearchResults_FormatsMatches(t *testing.T) {
	var buf bytes.Buffer
	records := []models.Video{
		{ID: 1, Title: "Morning Jazz", Uploader: "alice"},
		{ID: 3, Title: "Relaxing Music", Uploader: "carol"},
	}

	renderSearchResults(&buf, records)

	want := "2 result(s):\n[1] Morning Jazz by alice\n[3] Relaxing Music by carol\n"
	assert.Equal(t, want, buf.String())
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name  string
		s     string
		width int
		want  string
	}{
		{"no limit", "hello world", 0, "hello world"},
		{"shorter than width", "hello", 10, "hello"},
		{"exactly width", "hello", 5, "hello"},
		{"longer than width", "hello world", 8, "hello..."},
		{"tiny width keeps prefix", "hello", 3, "hel"},
		{"width two", "hello", 2, "he"},
		{"multibyte runes", "日本語のタイトルです", 5, "日本..."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, truncate(tt.s, tt.width))
		})
	}
}
