package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/dmitrijs2005/vidkeeper/internal/models"
	"golang.org/x/term"
)

// Test seams for terminal detection, so render tests do not need a tty.
var (
	isTerminal = term.IsTerminal
	termSize   = term.GetSize
)

// renderList writes the "N video(s):" listing. When w is a terminal the
// lines are truncated to its width so long titles do not wrap mid-row;
// piped output is never truncated and stays stable.
func renderList(w io.Writer, records []models.Video) {
	if len(records) == 0 {
		fmt.Fprintln(w, "No videos uploaded yet.")
		return
	}

	width := 0
	if f, ok := w.(*os.File); ok && isTerminal(int(f.Fd())) {
		if cols, _, err := termSize(int(f.Fd())); err == nil {
			width = cols
		}
	}

	fmt.Fprintf(w, "%d video(s):\n", len(records))
	for _, v := range records {
		tags := "-"
		if len(v.Tags) > 0 {
			tags = strings.Join(v.Tags, ", ")
		}
		line := fmt.Sprintf("[%d] %s (by %s) tags: %s uploaded: %s",
			v.ID, v.Title, v.Uploader, tags, v.UploadedAt.Format(time.RFC3339))
		fmt.Fprintln(w, truncate(line, width))
	}
}

// renderSearchResults writes the "N result(s):" listing.
func renderSearchResults(w io.Writer, records []models.Video) {
	if len(records) == 0 {
		fmt.Fprintln(w, "No results")
		return
	}

	fmt.Fprintf(w, "%d result(s):\n", len(records))
	for _, v := range records {
		fmt.Fprintf(w, "[%d] %s by %s\n", v.ID, v.Title, v.Uploader)
	}
}

// truncate shortens s to width runes with a trailing ellipsis.
// width <= 0 means no limit.
func truncate(s string, width int) string {
	if width <= 0 {
		return s
	}
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	if width <= 3 {
		return string(r[:width])
	}
	return string(r[:width-3]) + "..."
}
