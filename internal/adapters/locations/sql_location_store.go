package locations

import (
	"catch-logistics-service/internal/domain"
	"catch-logistics-service/internal/platform/obs"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

// SQLLocationStore is the Postgres variant of the location table.
type SQLLocationStore struct {
	DB *sql.DB
}

func NewSQLLocationStore(db *sql.DB) *SQLLocationStore {
	return &SQLLocationStore{DB: db}
}

// Fetch every stored location.
func (s *SQLLocationStore) ListLocations(ctx context.Context) (_ map[string]domain.LocationInfo, err error) {
	defer obs.Time(ctx, "locations.sql.ListLocations")(&err)

	if s.DB == nil {
		return nil, errors.New("location store: db is nil")
	}

	q := `
	SELECT name, area, drop_off, travel_minutes
    FROM locations;
	`

	rows, err := s.DB.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list locations: query locations table: %w", err)
	}
	defer rows.Close()

	out := make(map[string]domain.LocationInfo)
	for rows.Next() {
		var name string
		var info domain.LocationInfo
		if err := rows.Scan(&name, &info.Area, &info.DropOff, &info.TravelMinutes); err != nil {
			return nil, fmt.Errorf("list locations: scan rows: %w", err)
		}
		out[name] = info
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list locations: row iteration: %w", err)
	}

	return out, nil
}

// Store location rows, updating rows with the same name.
func (s *SQLLocationStore) PutMany(ctx context.Context, rows map[string]domain.LocationInfo) error {
	if s.DB == nil {
		return errors.New("location store: db is nil")
	}

	if len(rows) == 0 {
		return nil
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("insert locations: db begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
	INSERT INTO locations (name, area, drop_off, travel_minutes)
    VALUES ($1, $2, $3, $4)
	ON CONFLICT (name) DO UPDATE
	SET area = EXCLUDED.area,
		drop_off = EXCLUDED.drop_off,
		travel_minutes = EXCLUDED.travel_minutes;
	`)
	if err != nil {
		return fmt.Errorf("insert locations: db prepare: %w", err)
	}
	defer stmt.Close()

	for name, info := range rows {
		name = strings.TrimSpace(name)
		if name == "" {
			return fmt.Errorf("insert locations: empty location name")
		}

		if _, err := stmt.ExecContext(ctx, name, info.Area, info.DropOff, info.TravelMinutes); err != nil {
			return fmt.Errorf("insert locations name=%q: %w", name, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("insert locations commit: %w", err)
	}

	return nil
}
