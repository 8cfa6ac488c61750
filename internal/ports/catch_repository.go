package ports

import (
	"catch-logistics-service/internal/domain"
	"context"
)

// Port: a boundary for retrieving raw catch records from a data source.
type CatchRepository interface {
	// Retrieve all catch records in input order.
	ListCatches(ctx context.Context) ([]domain.CatchRecord, error)
}
