package analytics

import (
	"github.com/nkeidar/babytrack/internal/types"
)

// HourlyPattern buckets raw event counts by hour of day. The two series are
// counted independently; there is no cross-referencing between them. All 24
// buckets are always present, hour equal to the slice index.
func HourlyPattern(feedings []types.Feeding, vomits []types.Vomit) []HourlyBucket {
	buckets := make([]HourlyBucket, 24)
	for h := range buckets {
		buckets[h].Hour = h
	}

	for i := range feedings {
		if h, err := types.HourOf(feedings[i].Time); err == nil {
			buckets[h].Feedings++
		}
	}
	for i := range vomits {
		if h, err := types.HourOf(vomits[i].Time); err == nil {
			buckets[h].Vomits++
		}
	}

	return buckets
}
