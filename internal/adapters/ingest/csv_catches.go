package ingest

import (
	"catch-logistics-service/internal/domain"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Column headers of the daily catch export.
const (
	colType        = "Type"
	colLocation    = "Location"
	colOffloadDate = "Offload Date"
	colOffloadTime = "Offload Time"
	colBoat        = "Boat"
	colEstBaskets  = "Est. Baskets"
)

// ReadCatchesCSV reads catch rows keyed by header name.
// Unknown columns are ignored and missing columns read as blank, so a file
// without "Est. Baskets" yields the default basket count downstream.
func ReadCatchesCSV(r io.Reader) ([]domain.CatchRecord, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return []domain.CatchRecord{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read catches csv: header: %w", err)
	}

	idx := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		if _, ok := idx[h]; !ok {
			idx[h] = i
		}
	}

	field := func(row []string, name string) string {
		i, ok := idx[name]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}

	records := make([]domain.CatchRecord, 0, 64)
	for line := 2; ; line++ {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read catches csv: line %d: %w", line, err)
		}

		records = append(records, domain.CatchRecord{
			Type:        field(row, colType),
			Location:    field(row, colLocation),
			OffloadDate: field(row, colOffloadDate),
			OffloadTime: field(row, colOffloadTime),
			Boat:        field(row, colBoat),
			EstBaskets:  field(row, colEstBaskets),
		})
	}

	return records, nil
}

// ReadCatchesCSVFile opens and reads a catch CSV file.
func ReadCatchesCSVFile(path string) ([]domain.CatchRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read catches csv: open %q: %w", path, err)
	}
	defer f.Close()

	records, err := ReadCatchesCSV(f)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", path, err)
	}

	return records, nil
}
