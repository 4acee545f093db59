package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/vidkeeper/internal/cli"
	"github.com/dmitrijs2005/vidkeeper/internal/config"
	"github.com/dmitrijs2005/vidkeeper/internal/logging"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	initSignalHandler(cancel)

	cfg := config.LoadConfig()
	logger := logging.NewTextLogger(os.Stderr, slog.LevelInfo)

	app := cli.NewApp(cfg, logger)
	os.Exit(app.Run(ctx, os.Args[1:]))
}

func initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}
