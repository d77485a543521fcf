package cmd

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/jywlabs/specgen/internal/config"
	"github.com/jywlabs/specgen/internal/logging"
	"github.com/jywlabs/specgen/internal/store"
)

// app holds what every data command needs: configuration, a logger and
// the document store.
type app struct {
	dir  string
	cfg  *config.Config
	log  *zap.Logger
	docs *store.Gateway
}

// openApp loads configuration from dir and opens the document store.
func openApp(ctx context.Context, dir string, verbose bool) (*app, error) {
	cfg, err := config.Load(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logging.New(logging.Options{
		Level:   cfg.Logging.Level,
		File:    cfg.Logging.File,
		Verbose: verbose,
	})
	if err != nil {
		return nil, err
	}

	s, err := store.Open(ctx, cfg.StoreConfig(), log.Named("store"))
	if err != nil {
		log.Error("failed to open document store", zap.String("driver", cfg.Storage.Driver), zap.Error(err))
		_ = log.Sync()
		return nil, fmt.Errorf("failed to open document store: %w", err)
	}

	return &app{
		dir:  dir,
		cfg:  cfg,
		log:  log,
		docs: store.NewGateway(s, log.Named("docs")),
	}, nil
}

// Close releases the store and flushes logs.
func (a *app) Close() {
	if err := a.docs.Close(); err != nil {
		a.log.Warn("failed to close document store", zap.Error(err))
	}
	_ = a.log.Sync()
}
