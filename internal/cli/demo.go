package cli

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"
)

// demoUploadDelay spaces out the demo uploads so their timestamps differ;
// tests shrink it to keep the suite fast.
var demoUploadDelay = 100 * time.Millisecond

// demoSeed is the fixed set of records the demo uploads.
var demoSeed = []struct {
	title, description, uploader, tags string
}{
	{"My First Vlog", "Hello world vlog", "alice", "vlog,intro"},
	{"Baking Bread", "A complete beginner's loaf", "bob", "baking,howto"},
	{"Relaxing Music", "Lo-fi beats", "carol", "music,lofi"},
}

// runDemo resets the catalog file and walks through every operation with
// sample data, printing the same output the individual commands produce.
func (a *App) runDemo(ctx context.Context) error {
	if err := os.Remove(a.config.StoragePath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		a.reportError(err)
		return err
	}

	fmt.Fprintln(a.out, "Running demo: uploading 3 videos, listing, searching, viewing, deleting")
	for _, d := range demoSeed {
		cf := cmdFlags{title: d.title, description: d.description, uploader: d.uploader, tags: d.tags}
		if err := a.runUpload(ctx, cf); err != nil {
			return err
		}
		time.Sleep(demoUploadDelay)
	}

	fmt.Fprintln(a.out)
	if err := a.runList(ctx); err != nil {
		return err
	}

	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, "Search for 'music':")
	if err := a.runSearch(ctx, cmdFlags{query: "music"}); err != nil {
		return err
	}

	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, "View id=2:")
	if err := a.runView(ctx, cmdFlags{id: 2}); err != nil {
		return err
	}

	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, "Delete id=1:")
	if err := a.runDelete(ctx, cmdFlags{id: 1}); err != nil {
		return err
	}

	fmt.Fprintln(a.out)
	return a.runList(ctx)
}
