package database

import (
	"context"
	"database/sql"
	"fmt"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS inventory (
		id           SERIAL PRIMARY KEY,
		product_name TEXT NOT NULL,
		category     TEXT NOT NULL,
		price        NUMERIC(12,2) NOT NULL,
		sku          TEXT NOT NULL,
		supplier     TEXT,
		dimensions   TEXT,
		status       TEXT NOT NULL DEFAULT 'in_stock'
	)`,
	`CREATE TABLE IF NOT EXISTS usersdb (
		id         SERIAL PRIMARY KEY,
		username   TEXT NOT NULL UNIQUE,
		email      TEXT NOT NULL UNIQUE,
		password   TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
}

// Migrate creates the inventory and usersdb tables when they do not exist.
func Migrate(ctx context.Context, db *sql.DB) error {
	for i, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate step %d: %w", i+1, err)
		}
	}
	return nil
}
