package db

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"appointment-assistant/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

func ConnectPostgres(ctx context.Context, cfg config.DBConfig) (*pgxpool.Pool, func(), error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.BuildDSN())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse database config: %w", err)
	}
	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = cfg.MaxConns
	}
	poolCfg.MaxConnLifetime = time.Hour

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Test the connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return pool, pool.Close, nil
}

func OpenSQLite(cfg config.DBConfig) (*sql.DB, func(), error) {
	db, err := sql.Open("sqlite3", cfg.BuildSQLiteDSN())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("failed to ping database: %w", err)
	}

	// An in-memory database lives and dies with its connection.
	if cfg.SQLitePath == ":memory:" {
		db.SetMaxOpenConns(1)
	} else {
		db.SetMaxOpenConns(int(max(cfg.MaxConns, 1)))
		db.SetConnMaxLifetime(time.Hour)
	}

	cleanup := func() {
		if err := db.Close(); err != nil {
			slog.Error("Error closing database", "error", err)
		}
	}

	return db, cleanup, nil
}
