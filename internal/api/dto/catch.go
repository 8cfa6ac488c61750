package dto

import (
	"bytes"
	"catch-logistics-service/internal/domain"
	"encoding/json"
	"fmt"
)

type CatchRecord struct {
	Type        string     `json:"type"`
	Location    string     `json:"location"`
	OffloadDate string     `json:"offload_date"`
	OffloadTime string     `json:"offload_time"`
	Boat        string     `json:"boat"`
	EstBaskets  flexString `json:"est_baskets"`
}

type ListCatchesResponse struct {
	Catches []CatchRecord `json:"catches"`
}

func NewCatchRecord(r domain.CatchRecord) CatchRecord {
	return CatchRecord{
		Type:        r.Type,
		Location:    r.Location,
		OffloadDate: r.OffloadDate,
		OffloadTime: r.OffloadTime,
		Boat:        r.Boat,
		EstBaskets:  flexString(r.EstBaskets),
	}
}

func (c CatchRecord) ToDomain() domain.CatchRecord {
	return domain.CatchRecord{
		Type:        c.Type,
		Location:    c.Location,
		OffloadDate: c.OffloadDate,
		OffloadTime: c.OffloadTime,
		Boat:        c.Boat,
		EstBaskets:  string(c.EstBaskets),
	}
}

// flexString accepts a JSON string, number or null.
// Basket estimates come from spreadsheets and are sent either way.
type flexString string

func (f *flexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*f = ""
		return nil
	}

	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("expected string or number, got %s", string(b))
	}
	*f = flexString(n.String())
	return nil
}
