package cli

import "context"

// runSearch prints the records matching -query. Without a query every
// record matches, so the full catalog is printed.
func (a *App) runSearch(ctx context.Context, cf cmdFlags) error {
	results, err := a.catalog.Search(ctx, cf.query)
	if err != nil {
		a.reportError(err)
		return err
	}

	renderSearchResults(a.out, results)
	return nil
}
