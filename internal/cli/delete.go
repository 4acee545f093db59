package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/vidkeeper/internal/common"
)

// runDelete removes one record and confirms the removal.
func (a *App) runDelete(ctx context.Context, cf cmdFlags) error {
	if cf.id <= 0 {
		fmt.Fprintln(a.errOut, "Error: -id is required for delete")
		return fmt.Errorf("%w: -id is required", common.ErrorValidation)
	}

	if err := a.catalog.Delete(ctx, cf.id); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			fmt.Fprintf(a.errOut, "Video id=%d not found\n", cf.id)
		} else {
			a.reportError(err)
		}
		return err
	}

	fmt.Fprintf(a.out, "Deleted video id=%d\n", cf.id)
	return nil
}
