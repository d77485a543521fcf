package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/jywlabs/specgen/internal/retry"
)

// Driver names accepted by Open.
const (
	DriverSQLite   = "sqlite"
	DriverLibSQL   = "libsql"
	DriverPostgres = "postgres"
)

// Config selects and addresses a backend.
type Config struct {
	Driver    string
	Path      string // sqlite file
	URL       string // libsql or postgres
	AuthToken string // libsql
}

// Open connects to the configured backend and ensures the schema exists.
// Remote backends are pinged with backoff first.
func Open(ctx context.Context, cfg Config, log *zap.Logger) (Store, error) {
	if log == nil {
		log = zap.NewNop()
	}

	switch cfg.Driver {
	case DriverSQLite, "":
		if cfg.Path == "" {
			return nil, fmt.Errorf("sqlite store requires a path")
		}
		if err := os.MkdirAll(filepath.Dir(cfg.Path), 0755); err != nil {
			return nil, fmt.Errorf("failed to create store directory: %w", err)
		}
		s, err := OpenSQLite(ctx, cfg.Path)
		if err != nil {
			return nil, err
		}
		log.Debug("opened document store", zap.String("driver", DriverSQLite), zap.String("path", cfg.Path))
		return s, nil

	case DriverLibSQL:
		if cfg.URL == "" {
			return nil, fmt.Errorf("libsql store requires a url")
		}
		s, err := OpenLibSQL(ctx, cfg.URL, cfg.AuthToken)
		if err != nil {
			return nil, err
		}
		if err := warmUp(ctx, log, s.Ping, s.migrate); err != nil {
			s.Close()
			return nil, err
		}
		log.Debug("opened document store", zap.String("driver", DriverLibSQL))
		return s, nil

	case DriverPostgres:
		if cfg.URL == "" {
			return nil, fmt.Errorf("postgres store requires a url")
		}
		s, err := OpenPostgres(ctx, cfg.URL)
		if err != nil {
			return nil, err
		}
		if err := warmUp(ctx, log, s.Ping, s.migrate); err != nil {
			s.Close()
			return nil, err
		}
		log.Debug("opened document store", zap.String("driver", DriverPostgres))
		return s, nil

	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Driver)
	}
}

func warmUp(ctx context.Context, log *zap.Logger, ping, migrate func(context.Context) error) error {
	rcfg := retry.DefaultConfig()
	rcfg.Logger = log.Named("retry")
	if err := retry.Do(ctx, rcfg, ping); err != nil {
		return fmt.Errorf("failed to reach store: %w", err)
	}
	return migrate(ctx)
}
