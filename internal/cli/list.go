package cli

import "context"

// runList prints the whole catalog in upload order.
func (a *App) runList(ctx context.Context) error {
	records, err := a.catalog.List(ctx)
	if err != nil {
		a.reportError(err)
		return err
	}

	renderList(a.out, records)
	return nil
}
