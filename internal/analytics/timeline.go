package analytics

import (
	"sort"
	"time"

	"github.com/nkeidar/babytrack/internal/types"
)

// BuildTimeline merges feedings and vomits into one reverse-chronological
// sequence for display. Ties on the combined instant keep the input order
// (feedings before vomits, each in store order). No truncation happens here;
// the caller decides how many events to show.
func BuildTimeline(feedings []types.Feeding, vomits []types.Vomit) []TimelineEvent {
	type sortable struct {
		event TimelineEvent
		at    time.Time
	}

	merged := make([]sortable, 0, len(feedings)+len(vomits))

	for i := range feedings {
		f := &feedings[i]
		at, err := f.At()
		if err != nil {
			continue
		}
		merged = append(merged, sortable{
			at: at,
			event: TimelineEvent{
				Type: EventFeeding,
				ID:   f.ID,
				Date: f.Date,
				Time: f.Time,
				Data: FeedingPayload{
					Description: f.Description,
					Categories:  f.Categories,
					Amount:      f.Amount,
				},
			},
		})
	}

	for i := range vomits {
		v := &vomits[i]
		at, err := v.At()
		if err != nil {
			continue
		}
		merged = append(merged, sortable{
			at: at,
			event: TimelineEvent{
				Type: EventVomit,
				ID:   v.ID,
				Date: v.Date,
				Time: v.Time,
				Data: VomitPayload{
					Severity: v.Severity,
					Notes:    v.Notes,
				},
			},
		})
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].at.After(merged[j].at)
	})

	events := make([]TimelineEvent, len(merged))
	for i, m := range merged {
		events[i] = m.event
	}
	return events
}
