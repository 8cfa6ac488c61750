package ports

import (
	"catch-logistics-service/internal/domain"
	"context"
)

// Contract for loading the fleet and the day-level logistics constants.
// Implementations return an error rather than a partial fleet.
type TruckRegistry interface {
	LoadFleet(ctx context.Context) (*domain.Fleet, error)
}
