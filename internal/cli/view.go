package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/vidkeeper/internal/common"
)

// runView prints one record as indented JSON.
func (a *App) runView(ctx context.Context, cf cmdFlags) error {
	if cf.id <= 0 {
		fmt.Fprintln(a.errOut, "Error: -id is required for view")
		return fmt.Errorf("%w: -id is required", common.ErrorValidation)
	}

	v, err := a.catalog.Get(ctx, cf.id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			fmt.Fprintf(a.errOut, "Video id=%d not found\n", cf.id)
		} else {
			a.reportError(err)
		}
		return err
	}

	b, err := json.MarshalIndent(v, "", common.JSONIndent)
	if err != nil {
		a.reportError(err)
		return err
	}
	fmt.Fprintln(a.out, string(b))
	return nil
}
