package services

import "catch-logistics-service/internal/domain"

// Minutes before the limit at which a trip is flagged.
const freshnessWarningWindow = 30

// ClassifyFreshness grades out-of-water minutes against the configured limit.
func ClassifyFreshness(outOfWaterMinutes, maxMinutes float64) domain.Freshness {
	switch {
	case outOfWaterMinutes >= maxMinutes:
		return domain.FreshnessExceeded
	case outOfWaterMinutes >= maxMinutes-freshnessWarningWindow:
		return domain.FreshnessWarning
	default:
		return domain.FreshnessOK
	}
}
