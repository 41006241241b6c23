package analytics

import (
	"time"

	"github.com/nkeidar/babytrack/internal/types"
)

const (
	// correlationWindowHours is the look-back window linking a feeding to a
	// subsequent vomit for both correlators.
	correlationWindowHours = 4

	// nearestWindowMinutes is the ceiling for the nearest-feeding gap
	// statistic (8 hours).
	nearestWindowMinutes = 480
)

// precedingFeedings returns every feeding whose instant falls at or before
// the vomit's instant and within maxHoursBack hours of it. Records whose
// date/time no longer parse are skipped; write-time validation keeps them
// out of the store in the first place.
func precedingFeedings(v *types.Vomit, feedings []types.Feeding, maxHoursBack int) []types.Feeding {
	vomitAt, err := v.At()
	if err != nil {
		return nil
	}

	window := time.Duration(maxHoursBack) * time.Hour
	var linked []types.Feeding
	for i := range feedings {
		feedingAt, err := feedings[i].At()
		if err != nil {
			continue
		}
		diff := vomitAt.Sub(feedingAt)
		if diff >= 0 && diff <= window {
			linked = append(linked, feedings[i])
		}
	}
	return linked
}

// nearestPrecedingFeeding returns the feeding with the smallest strictly
// positive gap before the vomit, at most maxMinutesBack minutes, or nil when
// no feeding qualifies. Ties keep the first-encountered feeding.
func nearestPrecedingFeeding(v *types.Vomit, feedings []types.Feeding, maxMinutesBack float64) (*types.Feeding, float64) {
	vomitAt, err := v.At()
	if err != nil {
		return nil, 0
	}

	var nearest *types.Feeding
	minGap := 0.0
	for i := range feedings {
		feedingAt, err := feedings[i].At()
		if err != nil {
			continue
		}
		gap := vomitAt.Sub(feedingAt).Minutes()
		if gap > 0 && gap <= maxMinutesBack && (nearest == nil || gap < minGap) {
			nearest = &feedings[i]
			minGap = gap
		}
	}
	return nearest, minGap
}
