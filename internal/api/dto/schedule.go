package dto

import (
	"catch-logistics-service/internal/domain"
	"catch-logistics-service/internal/services"
	"time"
)

type ScheduleRequest struct {
	// Omitted means the stored catches are scheduled.
	Catches []CatchRecord `json:"catches"`
	AllDays *bool         `json:"all_days"`
}

type StopResponse struct {
	Boat              string           `json:"boat"`
	ReadyTime         time.Time        `json:"ready_time"`
	LoadFinish        time.Time        `json:"load_finish"`
	Baskets           int              `json:"baskets"`
	OutOfWaterMinutes float64          `json:"out_of_water_minutes"`
	Freshness         domain.Freshness `json:"freshness"`
}

type TripResponse struct {
	Date               string           `json:"date"`
	TruckID            string           `json:"truck_id"`
	Location           string           `json:"location"`
	Area               string           `json:"area"`
	DropOff            string           `json:"drop_off_location"`
	TravelMinutes      int              `json:"travel_minutes"`
	ArrivePort         time.Time        `json:"arrive_port"`
	EarliestLoadFinish time.Time        `json:"earliest_load_finish"`
	DepartAt           time.Time        `json:"depart_at"`
	ArriveDropAt       time.Time        `json:"arrive_drop_at"`
	FinalOffloadAt     time.Time        `json:"final_offload_at"`
	Baskets            int              `json:"baskets"`
	OutOfWaterMinutes  float64          `json:"out_of_water_minutes"`
	Freshness          domain.Freshness `json:"freshness"`
	Stops              []StopResponse   `json:"stops"`
}

type UnassignedResponse struct {
	Boat     string `json:"boat"`
	Location string `json:"location"`
	Reason   string `json:"reason"`
}

type ScheduleResponse struct {
	Trips      []TripResponse       `json:"trips"`
	Unassigned []UnassignedResponse `json:"unassigned"`
}

// NewScheduleResponse flattens a schedule for JSON output and grades each
// trip and stop against the schedule's out-of-water limit.
func NewScheduleResponse(s *domain.Schedule) ScheduleResponse {
	maxMinutes := s.Config.MaxTimeOutOfWaterMinutes

	res := ScheduleResponse{
		Trips:      make([]TripResponse, 0, len(s.Trips)),
		Unassigned: make([]UnassignedResponse, 0, len(s.Unassigned)),
	}

	for i := range s.Trips {
		t := &s.Trips[i]

		stops := make([]StopResponse, 0, len(t.Stops))
		for _, st := range t.Stops {
			stops = append(stops, StopResponse{
				Boat:              st.Boat,
				ReadyTime:         st.ReadyTime,
				LoadFinish:        st.LoadFinish,
				Baskets:           st.Baskets,
				OutOfWaterMinutes: st.OutOfWaterMinutes,
				Freshness:         services.ClassifyFreshness(st.OutOfWaterMinutes, maxMinutes),
			})
		}

		oow := t.OutOfWaterMinutes()
		res.Trips = append(res.Trips, TripResponse{
			Date:               t.Date.Format("2006-01-02"),
			TruckID:            t.TruckID,
			Location:           t.Location,
			Area:               t.Area,
			DropOff:            t.DropOff,
			TravelMinutes:      t.TravelMinutes,
			ArrivePort:         t.ArrivePort(),
			EarliestLoadFinish: t.Stops[0].EarliestLoadFinish,
			DepartAt:           t.DepartAt,
			ArriveDropAt:       t.ArriveDropAt,
			FinalOffloadAt:     t.FinalOffloadAt,
			Baskets:            t.Baskets(),
			OutOfWaterMinutes:  oow,
			Freshness:          services.ClassifyFreshness(oow, maxMinutes),
			Stops:              stops,
		})
	}

	for _, u := range s.Unassigned {
		res.Unassigned = append(res.Unassigned, UnassignedResponse{
			Boat:     u.Boat,
			Location: u.Location,
			Reason:   u.Reason,
		})
	}

	return res
}
