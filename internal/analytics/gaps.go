package analytics

import (
	"math"

	"github.com/nkeidar/babytrack/internal/types"
)

// gapRanges is the fixed bucket order of the time-range distribution. Upper
// bounds are inclusive; the last bucket is open-ended.
var gapRanges = []struct {
	label      string
	maxMinutes float64
}{
	{"0-30 min", 30},
	{"30-60 min", 60},
	{"1-2 hr", 120},
	{"2-4 hr", 240},
	{"4+ hr", math.Inf(1)},
}

// GapStatistics finds, for each vomit, the nearest preceding feeding within
// 8 hours and summarizes the elapsed-time distribution. Vomits with no
// qualifying feeding are skipped. The distribution always carries all five
// buckets in fixed order, and the average is 0 when nothing qualified.
func GapStatistics(feedings []types.Feeding, vomits []types.Vomit) *TimeAnalysisResult {
	details := []GapRecord{}
	sum := 0.0

	for i := range vomits {
		feeding, gap := nearestPrecedingFeeding(&vomits[i], feedings, nearestWindowMinutes)
		if feeding == nil {
			continue
		}
		details = append(details, GapRecord{
			GapMinutes:  gap,
			Categories:  feeding.Categories,
			Description: feeding.Description,
			Severity:    vomits[i].Severity,
		})
		sum += gap
	}

	avg := 0
	if len(details) > 0 {
		avg = int(math.Round(sum / float64(len(details))))
	}

	distribution := make([]RangeBucket, len(gapRanges))
	for i, r := range gapRanges {
		distribution[i] = RangeBucket{Range: r.label}
	}
	for _, d := range details {
		for i, r := range gapRanges {
			if d.GapMinutes <= r.maxMinutes {
				distribution[i].Count++
				break
			}
		}
	}

	return &TimeAnalysisResult{
		AverageGapMinutes:     avg,
		TotalVomitsAnalyzed:   len(details),
		TimeRangeDistribution: distribution,
		Details:               details,
	}
}
