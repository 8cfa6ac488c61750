package repositories

import (
	"catch-logistics-service/internal/adapters/ingest"
	"catch-logistics-service/internal/domain"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Initialize the SQLite database schema.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createCatchesQuery := `
	CREATE TABLE IF NOT EXISTS catches (
		source TEXT NOT NULL,
		row_num INTEGER NOT NULL,
		type TEXT NOT NULL,
		boat TEXT NOT NULL,
		location TEXT NOT NULL,
		offload_date TEXT NOT NULL,
		offload_time TEXT NOT NULL,
		est_baskets TEXT NOT NULL DEFAULT '',
		PRIMARY KEY (source, row_num)
	);
	`

	createLocationsQuery := `
	CREATE TABLE IF NOT EXISTS locations (
        name TEXT PRIMARY KEY,
        area TEXT NOT NULL,
        drop_off TEXT NOT NULL,
        travel_minutes INTEGER NOT NULL
    );
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_catches_offload_date_location
    ON catches(offload_date, location);
	`

	statements := []string{
		createCatchesQuery,
		createLocationsQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

// Populate the catches table from a catch CSV export.
// Rows are keyed by file name; re-seeding the same file replaces all of its
// previous rows.
func SeedCatchesFromCSV(db *sql.DB, csvPath string) error {
	records, err := ingest.ReadCatchesCSVFile(csvPath)
	if err != nil {
		return fmt.Errorf("seed catches: %w", err)
	}

	return SeedCatches(db, filepath.Base(csvPath), records)
}

// Store catch records under the given source name, in input order,
// replacing whatever the source held before.
func SeedCatches(db *sql.DB, source string, records []domain.CatchRecord) error {
	if db == nil {
		return errors.New("seed catches: DB is nil")
	}

	source = strings.TrimSpace(source)
	if source == "" {
		return errors.New("seed catches: source must not be empty")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed catches: begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM catches WHERE source = ?;`, source); err != nil {
		return fmt.Errorf("seed catches: clear source=%q: %w", source, err)
	}

	query := `
	INSERT OR REPLACE INTO catches (
		source,
		row_num,
		type,
		boat,
		location,
		offload_date,
		offload_time,
		est_baskets
	)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?);
	`
	stmt, err := tx.Prepare(query)
	if err != nil {
		return fmt.Errorf("seed catches: prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, r := range records {
		if _, err := stmt.Exec(source, i+1, r.Type, r.Boat, r.Location, r.OffloadDate, r.OffloadTime, r.EstBaskets); err != nil {
			return fmt.Errorf("seed catches: insert source=%q row=%d: %w", source, i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed catches: commit tx: %w", err)
	}

	return nil
}
