package services

import (
	"catch-logistics-service/internal/domain"
	"catch-logistics-service/internal/ports"
	"context"
	"fmt"
	"strings"
)

const unknownLocation = "Unknown"

// Travel time assumed for locations missing from the table.
const fallbackTravelMinutes = 90

// Landing ports served by the co-op. Keys are matched exactly after trimming.
var builtinLocations = map[string]domain.LocationInfo{
	"Lancelin":               {Area: "South", DropOff: "Fremantle/Welshpool", TravelMinutes: 90},
	"Leeman":                 {Area: "South", DropOff: "Fremantle/Welshpool", TravelMinutes: 110},
	"Dongara (Port Denison)": {Area: "North", DropOff: "Geraldton", TravelMinutes: 70},
	"Cervantes":              {Area: "South", DropOff: "Fremantle/Welshpool", TravelMinutes: 120},
	"Two Rocks":              {Area: "South", DropOff: "Fremantle/Welshpool", TravelMinutes: 60},
	"Freshwater":             {Area: "South", DropOff: "Fremantle/Welshpool", TravelMinutes: 30},
	"Jurien":                 {Area: "South", DropOff: "Fremantle/Welshpool", TravelMinutes: 160},
	"Mandurah":               {Area: "South", DropOff: "Fremantle/Welshpool", TravelMinutes: 75},
	"Ledge Point":            {Area: "South", DropOff: "Fremantle/Welshpool", TravelMinutes: 140},
	"Kalbarri":               {Area: "North", DropOff: "Geraldton", TravelMinutes: 160},
	"Wedge Island":           {Area: "South", DropOff: "Fremantle/Welshpool", TravelMinutes: 130},
	"Geraldton":              {Area: "North", DropOff: "Geraldton", TravelMinutes: 15},
	"Fremantle":              {Area: "South", DropOff: "Fremantle/Welshpool", TravelMinutes: 5},
}

// StaticLocationResolver is an immutable location table.
// It is safe for concurrent use.
type StaticLocationResolver struct {
	table map[string]domain.LocationInfo
}

// NewLocationResolver builds a resolver from the built-in ports plus overrides.
// Override rows replace built-in rows with the same (trimmed) name.
func NewLocationResolver(overrides map[string]domain.LocationInfo) *StaticLocationResolver {
	table := make(map[string]domain.LocationInfo, len(builtinLocations)+len(overrides))
	for name, info := range builtinLocations {
		table[name] = info
	}
	for name, info := range overrides {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		table[name] = info
	}

	return &StaticLocationResolver{table: table}
}

// LoadLocationResolver reads override rows once from src. A nil src gives the
// built-in table.
func LoadLocationResolver(ctx context.Context, src ports.LocationSource) (*StaticLocationResolver, error) {
	if src == nil {
		return NewLocationResolver(nil), nil
	}

	overrides, err := src.ListLocations(ctx)
	if err != nil {
		return nil, fmt.Errorf("load locations: %w", err)
	}

	return NewLocationResolver(overrides), nil
}

// Resolve returns the routing facts for a location. Unknown names resolve to
// area and drop-off "Unknown" with the fallback travel time.
func (r *StaticLocationResolver) Resolve(location string) domain.LocationInfo {
	if info, ok := r.table[strings.TrimSpace(location)]; ok {
		return info
	}

	return domain.LocationInfo{
		Area:          unknownLocation,
		DropOff:       unknownLocation,
		TravelMinutes: fallbackTravelMinutes,
	}
}

// Number of known locations.
func (r *StaticLocationResolver) Len() int { return len(r.table) }
