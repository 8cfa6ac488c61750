package services

import (
	"catch-logistics-service/internal/domain"
	"testing"
)

func TestClassifyFreshness(t *testing.T) {
	tests := []struct {
		minutes float64
		want    domain.Freshness
	}{
		{0, domain.FreshnessOK},
		{209.5, domain.FreshnessOK},
		{210, domain.FreshnessWarning},
		{239, domain.FreshnessWarning},
		{240, domain.FreshnessExceeded},
		{300, domain.FreshnessExceeded},
	}

	for _, tc := range tests {
		if got := ClassifyFreshness(tc.minutes, 240); got != tc.want {
			t.Errorf("ClassifyFreshness(%v, 240) = %s, want %s", tc.minutes, got, tc.want)
		}
	}
}
