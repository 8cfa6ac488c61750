package ports

import (
	"catch-logistics-service/internal/domain"
	"context"
)

// Contract for resolving a landing location to its routing facts.
// Resolve never fails; unknown names map to a fallback.
type LocationResolver interface {
	Resolve(location string) domain.LocationInfo
}

// Source of location rows that extend or override the built-in table.
type LocationSource interface {
	ListLocations(ctx context.Context) (map[string]domain.LocationInfo, error)
}
