package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/vidkeeper/internal/common"
	"github.com/dmitrijs2005/vidkeeper/internal/models"
)

// runUpload validates the title, stores a new record, and confirms it.
func (a *App) runUpload(ctx context.Context, cf cmdFlags) error {
	if strings.TrimSpace(cf.title) == "" {
		fmt.Fprintln(a.errOut, "Error: -title is required for upload")
		return fmt.Errorf("%w: -title is required", common.ErrorValidation)
	}

	v, err := a.catalog.Upload(ctx, cf.title, cf.description, cf.uploader, models.ParseTags(cf.tags))
	if err != nil {
		a.reportError(err)
		return err
	}

	fmt.Fprintf(a.out, "Uploaded video: id=%d title='%s' uploader='%s'\n", v.ID, v.Title, v.Uploader)
	return nil
}
