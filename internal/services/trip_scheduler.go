package services

import (
	"catch-logistics-service/internal/domain"
	"catch-logistics-service/internal/ports"
	"slices"
	"time"
)

// ReasonNoTruck is recorded for catches that no active truck can seed.
const ReasonNoTruck = "No available truck matching area/capacity"

// locationGroup holds one location's events for one day, in processing order.
type locationGroup struct {
	location string
	events   []domain.CatchEvent
}

type dayGroup struct {
	date      time.Time
	locations []locationGroup
}

// ScheduleCatches forms delivery trips from normalized catch events.
//
// Events are grouped by offload day and location. Within a group the earliest
// unplaced catch seeds a trip on the first eligible truck, and later catches
// are added greedily while capacity and the out-of-water limit hold. The
// limit is always measured from the seed's load finish, so each added stop
// makes the check stricter.
//
// Selection is first-match, not cost based. Inputs are not modified.
func ScheduleCatches(
	events []domain.CatchEvent,
	trucks []domain.Truck,
	cfg domain.LogisticsConfig,
	locations ports.LocationResolver,
) *domain.Schedule {
	schedule := &domain.Schedule{
		Trips:      []domain.Trip{},
		Unassigned: []domain.Unassigned{},
		Config:     cfg,
	}

	for _, day := range partitionCatches(events) {
		for _, group := range day.locations {
			info := locations.Resolve(group.location)

			trips, unassigned := formTrips(day.date, group, info, trucks, cfg)
			schedule.Trips = append(schedule.Trips, trips...)
			schedule.Unassigned = append(schedule.Unassigned, unassigned...)
		}
	}

	return schedule
}

// partitionCatches groups events by calendar day then location.
// Days and locations are ascending; events within a location are stably
// sorted by ready time so equal times keep their input order.
func partitionCatches(events []domain.CatchEvent) []dayGroup {
	byDay := make(map[string]map[string][]domain.CatchEvent)
	dates := make(map[string]time.Time)

	for _, ev := range events {
		key := ev.ReadyTime.Format(dateLayout)
		if _, ok := byDay[key]; !ok {
			byDay[key] = make(map[string][]domain.CatchEvent)
			y, m, d := ev.ReadyTime.Date()
			dates[key] = time.Date(y, m, d, 0, 0, 0, 0, ev.ReadyTime.Location())
		}
		byDay[key][ev.Location] = append(byDay[key][ev.Location], ev)
	}

	dayKeys := make([]string, 0, len(byDay))
	for k := range byDay {
		dayKeys = append(dayKeys, k)
	}
	slices.Sort(dayKeys)

	out := make([]dayGroup, 0, len(dayKeys))
	for _, dk := range dayKeys {
		byLocation := byDay[dk]

		locKeys := make([]string, 0, len(byLocation))
		for k := range byLocation {
			locKeys = append(locKeys, k)
		}
		slices.Sort(locKeys)

		groups := make([]locationGroup, 0, len(locKeys))
		for _, lk := range locKeys {
			evs := byLocation[lk]
			slices.SortStableFunc(evs, func(a, b domain.CatchEvent) int {
				return a.ReadyTime.Compare(b.ReadyTime)
			})
			groups = append(groups, locationGroup{location: lk, events: evs})
		}

		out = append(out, dayGroup{date: dates[dk], locations: groups})
	}

	return out
}

// formTrips consumes one location group, seed by seed, until every event is
// either in a trip or unassigned.
func formTrips(
	date time.Time,
	group locationGroup,
	info domain.LocationInfo,
	trucks []domain.Truck,
	cfg domain.LogisticsConfig,
) ([]domain.Trip, []domain.Unassigned) {
	trips := []domain.Trip{}
	unassigned := []domain.Unassigned{}

	loadTime := minutes(cfg.LoadTimeMinutes)
	travel := minutes(float64(info.TravelMinutes))

	events := group.events
	i := 0
	for i < len(events) {
		seed := events[i]

		truck, ok := firstEligibleTruck(trucks, info.Area, seed.Baskets)
		if !ok {
			unassigned = append(unassigned, domain.Unassigned{
				Boat:     seed.Boat,
				Location: group.location,
				Reason:   ReasonNoTruck,
			})
			i++
			continue
		}

		// The anchor is fixed here and never recomputed as stops are added.
		anchor := seed.ReadyTime.Add(loadTime)
		used := seed.Baskets
		stops := []domain.Stop{{
			Boat:               seed.Boat,
			ReadyTime:          seed.ReadyTime,
			LoadFinish:         anchor,
			EarliestLoadFinish: anchor,
			Baskets:            seed.Baskets,
			OutOfWaterMinutes:  outOfWater(anchor, anchor, travel, 1, cfg).Minutes(),
		}}

		next := i + 1
		for next < len(events) {
			cand := events[next]
			if used+cand.Baskets > truck.Capacity {
				break
			}

			loadStart := stops[len(stops)-1].LoadFinish
			if cand.ReadyTime.After(loadStart) {
				loadStart = cand.ReadyTime
			}
			loadFinish := loadStart.Add(loadTime)

			elapsed := outOfWater(loadFinish, anchor, travel, len(stops)+1, cfg)
			if elapsed.Minutes() > cfg.MaxTimeOutOfWaterMinutes {
				break
			}

			stops = append(stops, domain.Stop{
				Boat:               cand.Boat,
				ReadyTime:          cand.ReadyTime,
				LoadFinish:         loadFinish,
				EarliestLoadFinish: anchor,
				Baskets:            cand.Baskets,
				OutOfWaterMinutes:  elapsed.Minutes(),
			})
			used += cand.Baskets
			next++
		}

		depart := stops[len(stops)-1].LoadFinish
		arrive := depart.Add(travel)
		trips = append(trips, domain.Trip{
			Date:           date,
			TruckID:        truck.FleetID,
			Location:       group.location,
			Area:           info.Area,
			DropOff:        info.DropOff,
			TravelMinutes:  info.TravelMinutes,
			DepartAt:       depart,
			ArriveDropAt:   arrive,
			FinalOffloadAt: arrive.Add(offloadTime(len(stops), cfg)),
			Stops:          stops,
		})

		i = next
	}

	return trips, unassigned
}

// firstEligibleTruck returns the first truck in registry order that can seed
// a trip of the given size in the given area.
func firstEligibleTruck(trucks []domain.Truck, area string, baskets int) (domain.Truck, bool) {
	for _, t := range trucks {
		if t.CanServe(area, baskets) {
			return t, true
		}
	}
	return domain.Truck{}, false
}

// outOfWater is the elapsed time from the trip anchor to the final offload of a
// trip whose last stop finishes loading at lastLoadFinish and holds n stops.
func outOfWater(lastLoadFinish, anchor time.Time, travel time.Duration, n int, cfg domain.LogisticsConfig) time.Duration {
	finalOffload := lastLoadFinish.Add(travel).Add(offloadTime(n, cfg))
	return finalOffload.Sub(anchor)
}

// Offload cost accrues per stop, not per basket.
func offloadTime(stops int, cfg domain.LogisticsConfig) time.Duration {
	return minutes(float64(stops) * cfg.OffloadTimePerCatchMinutes)
}

func minutes(m float64) time.Duration {
	return time.Duration(m * float64(time.Minute))
}
