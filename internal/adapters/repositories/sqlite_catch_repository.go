package repositories

import (
	"catch-logistics-service/internal/domain"
	"catch-logistics-service/internal/platform/obs"
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// SQLite-backed implementation of the CatchRepository port.
type SqliteCatchRepository struct{ DB *sql.DB }

func NewSqliteCatchRepository(db *sql.DB) *SqliteCatchRepository {
	return &SqliteCatchRepository{DB: db}
}

// Return all catch records stored in the database, in seed order.
func (s *SqliteCatchRepository) ListCatches(ctx context.Context) (_ []domain.CatchRecord, err error) {
	defer obs.Time(ctx, "catches.sqlite.ListCatches")(&err)

	if s.DB == nil {
		return nil, errors.New("sqlite catch repository: DB is nil")
	}

	query := `
	SELECT
		type,
		boat,
		location,
		offload_date,
		offload_time,
		est_baskets
	FROM catches
	ORDER BY source, row_num;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list catches: query catches table: %w", err)
	}
	defer rows.Close()

	catches := make([]domain.CatchRecord, 0, 64)
	for rows.Next() {
		var c domain.CatchRecord
		err := rows.Scan(&c.Type, &c.Boat, &c.Location, &c.OffloadDate, &c.OffloadTime, &c.EstBaskets)
		if err != nil {
			return nil, fmt.Errorf("list catches: scan row: %w", err)
		}
		catches = append(catches, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list catches: row iteration: %w", err)
	}

	return catches, nil
}
