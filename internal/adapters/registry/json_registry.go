package registry

import (
	"bytes"
	"catch-logistics-service/internal/domain"
	"catch-logistics-service/internal/platform/obs"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
)

// JSONRegistry reads the fleet from a combined logistics file:
//
//	{"trucks": [...], "logistics_config": {...}}
//
// The file is read on every LoadFleet call so edits apply to the next run.
type JSONRegistry struct {
	Path string
}

func NewJSONRegistry(path string) *JSONRegistry {
	return &JSONRegistry{Path: path}
}

type truckJSON struct {
	Fleet       fleetID     `json:"FLEET"`
	BasketTotal basketTotal `json:"Basket Total"`
	Area        string      `json:"Area"`
	Status      string      `json:"Status"`
}

type logisticsConfigJSON struct {
	LoadTimeMinutes            *float64 `json:"load_time_minutes"`
	OffloadTimePerCatchMinutes *float64 `json:"offload_time_per_catch_minutes"`
	MaxTimeOutOfWaterMinutes   *float64 `json:"max_time_out_of_water_minutes"`
}

type fileJSON struct {
	Trucks          *[]truckJSON         `json:"trucks"`
	LogisticsConfig *logisticsConfigJSON `json:"logistics_config"`
}

// LoadFleet reads and validates the registry file. Any problem fails the
// whole load.
func (r *JSONRegistry) LoadFleet(ctx context.Context) (_ *domain.Fleet, err error) {
	defer obs.Time(ctx, "registry.json.LoadFleet")(&err)

	if strings.TrimSpace(r.Path) == "" {
		return nil, errors.New("load fleet: registry path is empty")
	}

	raw, err := os.ReadFile(r.Path)
	if err != nil {
		return nil, fmt.Errorf("load fleet: read %q: %w", r.Path, err)
	}

	fleet, err := ParseFleet(raw)
	if err != nil {
		return nil, fmt.Errorf("load fleet: %q: %w", r.Path, err)
	}

	return fleet, nil
}

// ParseFleet decodes a combined logistics document.
func ParseFleet(raw []byte) (*domain.Fleet, error) {
	var doc fileJSON
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse json: %w", err)
	}

	if doc.Trucks == nil {
		return nil, errors.New(`missing "trucks"`)
	}
	if doc.LogisticsConfig == nil {
		return nil, errors.New(`missing "logistics_config"`)
	}

	cfg, err := doc.LogisticsConfig.toDomain()
	if err != nil {
		return nil, err
	}

	trucks := make([]domain.Truck, 0, len(*doc.Trucks))
	for _, t := range *doc.Trucks {
		trucks = append(trucks, domain.Truck{
			FleetID:  string(t.Fleet),
			Capacity: int(t.BasketTotal),
			Area:     t.Area,
			Status:   t.Status,
		})
	}

	return &domain.Fleet{Trucks: trucks, Config: cfg}, nil
}

func (c *logisticsConfigJSON) toDomain() (domain.LogisticsConfig, error) {
	fields := []struct {
		name string
		v    *float64
	}{
		{"load_time_minutes", c.LoadTimeMinutes},
		{"offload_time_per_catch_minutes", c.OffloadTimePerCatchMinutes},
		{"max_time_out_of_water_minutes", c.MaxTimeOutOfWaterMinutes},
	}

	for _, f := range fields {
		if f.v == nil {
			return domain.LogisticsConfig{}, fmt.Errorf("logistics_config: missing %q", f.name)
		}
		if *f.v < 0 {
			return domain.LogisticsConfig{}, fmt.Errorf("logistics_config: %q must not be negative, got %v", f.name, *f.v)
		}
	}

	return domain.LogisticsConfig{
		LoadTimeMinutes:            *c.LoadTimeMinutes,
		OffloadTimePerCatchMinutes: *c.OffloadTimePerCatchMinutes,
		MaxTimeOutOfWaterMinutes:   *c.MaxTimeOutOfWaterMinutes,
	}, nil
}

// fleetID accepts a JSON string or number.
type fleetID string

func (f *fleetID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*f = ""
		return nil
	}

	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return fmt.Errorf("fleet id: %w", err)
		}
		*f = fleetID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("fleet id: %w", err)
	}
	*f = fleetID(n.String())
	return nil
}

// basketTotal coerces an int-like value. Falsy values (null, "", 0, false)
// become 0, fractions are truncated and text that is not a number is an error.
type basketTotal int

func (bt *basketTotal) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return fmt.Errorf("basket total: %w", err)
	}

	switch x := v.(type) {
	case nil:
		*bt = 0
	case bool:
		if x {
			*bt = 1
		} else {
			*bt = 0
		}
	case float64:
		*bt = basketTotal(math.Trunc(x))
	case string:
		s := strings.TrimSpace(x)
		if s == "" {
			*bt = 0
			return nil
		}
		if n, err := strconv.Atoi(s); err == nil {
			*bt = basketTotal(n)
			return nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return fmt.Errorf("basket total: invalid integer %q", x)
		}
		*bt = basketTotal(math.Trunc(f))
	default:
		return fmt.Errorf("basket total: unsupported value %s", string(b))
	}

	return nil
}
