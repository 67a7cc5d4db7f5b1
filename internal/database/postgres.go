// Package database implements the Postgres-backed record store and feedback
// persistence.
package database

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Connect opens a pgx connection pool and verifies connectivity.
func Connect(ctx context.Context, databaseURL string) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database URL: %w", err)
	}

	poolCfg.MaxConns = 25
	poolCfg.MaxConnLifetime = 5 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return pool, nil
}

// RunMigrations applies the startup DDL. Statements are idempotent.
func RunMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS menu_items (
			menu_id BIGSERIAL PRIMARY KEY,
			slug TEXT UNIQUE NOT NULL,
			name TEXT NOT NULL,
			category TEXT NOT NULL,
			price DOUBLE PRECISION NOT NULL,
			is_available BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_menu_items_slug ON menu_items(slug)`,
		`CREATE TABLE IF NOT EXISTS ingredients (
			ingredient_id BIGSERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			category TEXT NOT NULL,
			received_date DATE NOT NULL,
			expiry_date DATE NOT NULL,
			freshness_score DOUBLE PRECISION NOT NULL DEFAULT 100,
			risk_level TEXT NOT NULL DEFAULT 'Low',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS menu_ingredients (
			menu_id BIGINT NOT NULL REFERENCES menu_items(menu_id) ON DELETE CASCADE,
			ingredient_id BIGINT NOT NULL REFERENCES ingredients(ingredient_id) ON DELETE CASCADE,
			PRIMARY KEY (menu_id, ingredient_id)
		)`,
		`CREATE TABLE IF NOT EXISTS ingredient_events (
			event_id BIGSERIAL PRIMARY KEY,
			ingredient_id BIGINT NOT NULL REFERENCES ingredients(ingredient_id) ON DELETE CASCADE,
			event_type TEXT NOT NULL,
			event_value JSONB NOT NULL DEFAULT '{}'::jsonb,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_ingredient_events_latest
			ON ingredient_events(ingredient_id, created_at DESC, event_id DESC)`,
		`CREATE TABLE IF NOT EXISTS feedback_logs (
			id UUID PRIMARY KEY,
			menu_id BIGINT NOT NULL,
			feedback_text TEXT NOT NULL,
			sentiment DOUBLE PRECISION NOT NULL,
			tags TEXT[] NOT NULL DEFAULT '{}',
			confidence DOUBLE PRECISION NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_feedback_logs_menu ON feedback_logs(menu_id)`,
	}

	for _, migration := range migrations {
		if _, err := pool.Exec(ctx, migration); err != nil {
			return fmt.Errorf("failed to run migration: %w", err)
		}
	}

	slog.Info("Database migrations completed")
	return nil
}
