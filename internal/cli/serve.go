package cli

import (
	"context"

	"github.com/dmitrijs2005/vidkeeper/internal/logging"
	"github.com/dmitrijs2005/vidkeeper/internal/services"
	"github.com/dmitrijs2005/vidkeeper/internal/web"
)

type runnable interface {
	Run(ctx context.Context) error
}

// newWebServer is a construction seam so tests can substitute the server.
var newWebServer = func(addr string, catalog services.CatalogService, logger logging.Logger) runnable {
	return web.NewServer(addr, catalog, logger)
}

// runServe blocks running the form front-end until ctx is cancelled or
// the server fails.
func (a *App) runServe(ctx context.Context) error {
	a.logger.Info(ctx, "starting form front-end", "addr", a.config.ListenAddr, "catalog", a.config.StoragePath)

	srv := newWebServer(a.config.ListenAddr, a.catalog, a.logger)
	if err := srv.Run(ctx); err != nil {
		a.reportError(err)
		return err
	}
	return nil
}
