package repositories

import (
	"catch-logistics-service/internal/domain"
	"context"
)

// In-memory CatchRepository over a fixed set of records, such as a CSV file
// read once by the command line tool.
type MemoryCatchRepository struct {
	records []domain.CatchRecord
}

func NewMemoryCatchRepository(records []domain.CatchRecord) *MemoryCatchRepository {
	cp := make([]domain.CatchRecord, len(records))
	copy(cp, records)
	return &MemoryCatchRepository{records: cp}
}

// Return a copy of the records so callers cannot alter the repository.
func (m *MemoryCatchRepository) ListCatches(ctx context.Context) ([]domain.CatchRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := make([]domain.CatchRecord, len(m.records))
	copy(out, m.records)
	return out, nil
}
