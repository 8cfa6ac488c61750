package registry

import (
	"catch-logistics-service/internal/domain"
	"catch-logistics-service/internal/platform/obs"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

// SQLRegistry is a Postgres-backed truck registry.
// Truck order is kept in the position column because trip formation picks
// the first eligible truck.
type SQLRegistry struct {
	DB *sql.DB
}

func NewSQLRegistry(db *sql.DB) *SQLRegistry {
	return &SQLRegistry{DB: db}
}

// LoadFleet reads all trucks and the single logistics_config row.
func (s *SQLRegistry) LoadFleet(ctx context.Context) (_ *domain.Fleet, err error) {
	defer obs.Time(ctx, "registry.sql.LoadFleet")(&err)

	if s.DB == nil {
		return nil, errors.New("truck registry: db is nil")
	}

	q := `
	SELECT fleet_id, basket_total, area, status
    FROM trucks
    ORDER BY position, fleet_id;
	`

	rows, err := s.DB.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("load fleet: query trucks table: %w", err)
	}
	defer rows.Close()

	trucks := make([]domain.Truck, 0, 16)
	for rows.Next() {
		var t domain.Truck
		if err := rows.Scan(&t.FleetID, &t.Capacity, &t.Area, &t.Status); err != nil {
			return nil, fmt.Errorf("load fleet: scan trucks row: %w", err)
		}
		trucks = append(trucks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load fleet: trucks row iteration: %w", err)
	}

	var cfg domain.LogisticsConfig
	err = s.DB.QueryRowContext(ctx, `
	SELECT load_time_minutes, offload_time_per_catch_minutes, max_time_out_of_water_minutes
    FROM logistics_config
    WHERE id = 1;
	`).Scan(&cfg.LoadTimeMinutes, &cfg.OffloadTimePerCatchMinutes, &cfg.MaxTimeOutOfWaterMinutes)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errors.New("load fleet: logistics_config row is missing")
	}
	if err != nil {
		return nil, fmt.Errorf("load fleet: query logistics_config table: %w", err)
	}

	return &domain.Fleet{Trucks: trucks, Config: cfg}, nil
}

// SaveFleet replaces the stored fleet and logistics constants in one transaction.
func (s *SQLRegistry) SaveFleet(ctx context.Context, fleet *domain.Fleet) error {
	if s.DB == nil {
		return errors.New("truck registry: db is nil")
	}
	if fleet == nil {
		return errors.New("save fleet: fleet is nil")
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("save fleet: db begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM trucks;`); err != nil {
		return fmt.Errorf("save fleet: clear trucks: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
	INSERT INTO trucks (fleet_id, basket_total, area, status, position)
    VALUES ($1, $2, $3, $4, $5)
	ON CONFLICT (fleet_id) DO UPDATE
	SET basket_total = EXCLUDED.basket_total,
		area = EXCLUDED.area,
		status = EXCLUDED.status,
		position = EXCLUDED.position;
	`)
	if err != nil {
		return fmt.Errorf("save fleet: db prepare: %w", err)
	}
	defer stmt.Close()

	for i, t := range fleet.Trucks {
		if strings.TrimSpace(t.FleetID) == "" {
			return fmt.Errorf("save fleet: truck at index %d has empty FLEET", i+1)
		}

		if _, err := stmt.ExecContext(ctx, t.FleetID, t.Capacity, t.Area, t.Status, i); err != nil {
			return fmt.Errorf("save fleet: insert truck fleet_id=%q: %w", t.FleetID, err)
		}
	}

	_, err = tx.ExecContext(ctx, `
	INSERT INTO logistics_config (id, load_time_minutes, offload_time_per_catch_minutes, max_time_out_of_water_minutes)
    VALUES (1, $1, $2, $3)
	ON CONFLICT (id) DO UPDATE
	SET load_time_minutes = EXCLUDED.load_time_minutes,
		offload_time_per_catch_minutes = EXCLUDED.offload_time_per_catch_minutes,
		max_time_out_of_water_minutes = EXCLUDED.max_time_out_of_water_minutes;
	`, fleet.Config.LoadTimeMinutes, fleet.Config.OffloadTimePerCatchMinutes, fleet.Config.MaxTimeOutOfWaterMinutes)
	if err != nil {
		return fmt.Errorf("save fleet: upsert logistics_config: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("save fleet commit: %w", err)
	}

	return nil
}
