package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// Initialize the Postgres schema used by the truck registry and the
// location table.
func InitPostgresSchema(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return errors.New("init postgres schema: DB is nil")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("init postgres schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	statements := []string{
		`
		CREATE TABLE IF NOT EXISTS trucks (
			fleet_id TEXT PRIMARY KEY,
			basket_total INTEGER NOT NULL DEFAULT 0,
			area TEXT NOT NULL,
			status TEXT NOT NULL,
			position INTEGER NOT NULL
		);
		`,
		`
		CREATE TABLE IF NOT EXISTS logistics_config (
			id SMALLINT PRIMARY KEY CHECK (id = 1),
			load_time_minutes DOUBLE PRECISION NOT NULL,
			offload_time_per_catch_minutes DOUBLE PRECISION NOT NULL,
			max_time_out_of_water_minutes DOUBLE PRECISION NOT NULL
		);
		`,
		`
		CREATE TABLE IF NOT EXISTS locations (
			name TEXT PRIMARY KEY,
			area TEXT NOT NULL,
			drop_off TEXT NOT NULL,
			travel_minutes INTEGER NOT NULL
		);
		`,
		`
		CREATE INDEX IF NOT EXISTS idx_trucks_area_status
		ON trucks(area, status);
		`,
	}

	for i, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init postgres schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init postgres schema: commit tx: %w", err)
	}

	return nil
}
