package common

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SmritaPandey/OCR-admission-forms/gen/ent"
	"github.com/SmritaPandey/OCR-admission-forms/internal/repository"
)

// DBResult bundles an open client with its cleanup hook so CLI entry
// points can defer one call.
type DBResult struct {
	Client  *ent.Client
	Pool    *pgxpool.Pool
	Cleanup func()
}

// InitDatabase opens the configured backend. Postgres is used when DB_URL
// is set; otherwise a file-backed (or in-memory) SQLite database is opened
// and migrated, which is enough for single-operator batch runs.
func InitDatabase(ctx context.Context, cfg *Config, inmem bool, logger *slog.Logger) (*DBResult, error) {
	if logger == nil {
		logger = slog.Default()
	}

	if cfg.Database.DSN != "" && !inmem {
		entc, pool, err := repository.Open(ctx, repository.Config{
			DSN:              cfg.Database.DSN,
			MaxConns:         cfg.Database.MaxConns,
			MinConns:         cfg.Database.MinConns,
			MaxConnLifetime:  cfg.Database.MaxConnLifetime,
			MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
			DialTimeout:      cfg.Database.DialTimeout,
			StatementTimeout: cfg.Database.StatementTimeout,
		}, logger)
		if err != nil {
			return nil, err
		}
		if err := repository.HealthCheck(ctx, pool, cfg.Database.DialTimeout, logger); err != nil {
			repository.Close(entc, pool, logger)
			return nil, err
		}
		return &DBResult{
			Client:  entc,
			Pool:    pool,
			Cleanup: func() { repository.Close(entc, pool, logger) },
		}, nil
	}

	dsn := cfg.Database.SQLitePath + "?_pragma=foreign_keys(1)"
	if inmem {
		dsn = "file:admissions?mode=memory&cache=shared&_pragma=foreign_keys(1)"
	}
	entc, err := repository.OpenSQLite(dsn, logger)
	if err != nil {
		return nil, err
	}
	if err := entc.Schema.Create(ctx); err != nil {
		_ = entc.Close()
		return nil, err
	}
	return &DBResult{
		Client:  entc,
		Cleanup: func() { _ = entc.Close() },
	}, nil
}
