package domain

// Static routing facts for a landing location.
type LocationInfo struct {
	Area          string
	DropOff       string
	TravelMinutes int
}
