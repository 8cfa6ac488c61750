package services

import (
	"catch-logistics-service/internal/domain"
	"catch-logistics-service/internal/platform/obs"
	"catch-logistics-service/internal/ports"
	"context"
	"errors"
	"fmt"
	"log"
	"time"
)

type PlanScheduleRequest struct {
	// Records to schedule. When nil the repository is used.
	Catches []domain.CatchRecord
	// Schedule every offload day instead of only the most recent one.
	AllDays bool
	// Zone for string offload dates; UTC when nil.
	Location *time.Location
}

// PlanSchedule loads catches and the fleet, prepares the catch records and
// runs the trip scheduler.
//
// Registry and repository failures are returned; records with an unusable
// ready time are dropped and only logged.
func PlanSchedule(
	ctx context.Context,
	req PlanScheduleRequest,
	repo ports.CatchRepository,
	registry ports.TruckRegistry,
	locations ports.LocationResolver,
) (_ *domain.Schedule, err error) {
	defer obs.Time(ctx, "schedule.PlanSchedule")(&err)

	if registry == nil {
		return nil, errors.New("plan schedule: truck registry is nil")
	}
	if locations == nil {
		return nil, errors.New("plan schedule: location resolver is nil")
	}

	records := req.Catches
	if records == nil {
		if repo == nil {
			return nil, errors.New("plan schedule: no catches given and catch repository is nil")
		}

		records, err = repo.ListCatches(ctx)
		if err != nil {
			return nil, fmt.Errorf("plan schedule: list catches: %w", err)
		}
	}

	fleet, err := registry.LoadFleet(ctx)
	if err != nil {
		return nil, fmt.Errorf("plan schedule: load fleet: %w", err)
	}

	prepared := PrepareCatches(records, PrepareOptions{MostRecentDayOnly: !req.AllDays})
	events, dropped := NormalizeCatches(prepared, req.Location)
	if dropped > 0 {
		log.Printf("op=schedule.normalize dropped=%d reason=unparsable_ready_time", dropped)
	}

	active := fleet.Active()
	schedule := ScheduleCatches(events, active, fleet.Config, locations)

	log.Printf(
		"op=schedule.summary records=%d candidates=%d events=%d trucks=%d trips=%d unassigned=%d",
		len(records), len(prepared), len(events), len(active), len(schedule.Trips), len(schedule.Unassigned),
	)

	return schedule, nil
}
