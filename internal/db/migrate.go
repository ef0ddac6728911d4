package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// inventory_logs carries no foreign key on purpose: log rows are immutable
// snapshots and must survive deletion of the product they were written for.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS categories (
		id SERIAL PRIMARY KEY,
		name TEXT NOT NULL UNIQUE CHECK (name <> '')
	)`,
	`CREATE TABLE IF NOT EXISTS products (
		id SERIAL PRIMARY KEY,
		name TEXT NOT NULL CHECK (name <> ''),
		description TEXT,
		price NUMERIC(10,2) NOT NULL CHECK (price > 0),
		quantity INTEGER NOT NULL DEFAULT 0 CHECK (quantity >= 0),
		low_stock_threshold INTEGER NOT NULL DEFAULT 5 CHECK (low_stock_threshold >= 0),
		category_id INTEGER REFERENCES categories(id) ON DELETE SET NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS inventory_logs (
		id SERIAL PRIMARY KEY,
		product_id INTEGER NOT NULL,
		change_type TEXT NOT NULL CHECK (change_type IN ('restock', 'sale', 'adjustment')),
		quantity_change INTEGER NOT NULL,
		previous_quantity INTEGER NOT NULL,
		new_quantity INTEGER NOT NULL CHECK (new_quantity >= 0),
		notes TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS users (
		id SERIAL PRIMARY KEY,
		username TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		role TEXT NOT NULL DEFAULT 'user'
	)`,
}

// Migrate creates the schema if it does not exist yet. Statements are
// idempotent, so running at every startup is safe.
func Migrate(pool *sql.DB) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	for _, stmt := range schema {
		if _, err := pool.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}
	return nil
}
