package locations

import (
	"catch-logistics-service/internal/domain"
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

type locationSeed struct {
	Name          string `json:"name"`
	Area          string `json:"area"`
	DropOff       string `json:"drop_off_location"`
	TravelMinutes int    `json:"travel_minutes"`
}

// Read location rows from a JSON array file.
func ReadLocationsJSON(path string) (map[string]domain.LocationInfo, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read locations: read %q: %w", path, err)
	}

	var data []locationSeed
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("read locations: parse json: %w", err)
	}

	out := make(map[string]domain.LocationInfo, len(data))
	for i, item := range data {
		name := strings.TrimSpace(item.Name)
		if name == "" {
			return nil, fmt.Errorf("read locations: item at index %d: name cannot be empty", i+1)
		}
		if strings.TrimSpace(item.Area) == "" {
			return nil, fmt.Errorf("read locations: %q: area cannot be empty", name)
		}
		if item.TravelMinutes < 0 {
			return nil, fmt.Errorf("read locations: %q: travel_minutes must not be negative", name)
		}

		out[name] = domain.LocationInfo{
			Area:          strings.TrimSpace(item.Area),
			DropOff:       strings.TrimSpace(item.DropOff),
			TravelMinutes: item.TravelMinutes,
		}
	}

	return out, nil
}
