package dto

import "catch-logistics-service/internal/domain"

type TruckResponse struct {
	FleetID  string `json:"fleet_id"`
	Capacity int    `json:"basket_total"`
	Area     string `json:"area"`
	Status   string `json:"status"`
}

type LogisticsConfigResponse struct {
	LoadTimeMinutes            float64 `json:"load_time_minutes"`
	OffloadTimePerCatchMinutes float64 `json:"offload_time_per_catch_minutes"`
	MaxTimeOutOfWaterMinutes   float64 `json:"max_time_out_of_water_minutes"`
}

type FleetResponse struct {
	Trucks          []TruckResponse         `json:"trucks"`
	LogisticsConfig LogisticsConfigResponse `json:"logistics_config"`
}

// NewFleetResponse lists only the trucks available for scheduling.
func NewFleetResponse(fleet *domain.Fleet) FleetResponse {
	active := fleet.Active()

	res := FleetResponse{
		Trucks: make([]TruckResponse, 0, len(active)),
		LogisticsConfig: LogisticsConfigResponse{
			LoadTimeMinutes:            fleet.Config.LoadTimeMinutes,
			OffloadTimePerCatchMinutes: fleet.Config.OffloadTimePerCatchMinutes,
			MaxTimeOutOfWaterMinutes:   fleet.Config.MaxTimeOutOfWaterMinutes,
		},
	}
	for _, t := range active {
		res.Trucks = append(res.Trucks, TruckResponse{
			FleetID:  t.FleetID,
			Capacity: t.Capacity,
			Area:     t.Area,
			Status:   t.Status,
		})
	}

	return res
}
