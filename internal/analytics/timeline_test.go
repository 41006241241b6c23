package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nkeidar/babytrack/internal/types"
)

func TestBuildTimeline(t *testing.T) {
	t.Run("merges both kinds newest first", func(t *testing.T) {
		feedings := []types.Feeding{
			feeding("2024-01-01", "08:00", "breakfast", types.CategoryCarbs),
			feeding("2024-01-02", "12:00", "lunch", types.CategoryProtein),
		}
		vomits := []types.Vomit{
			vomit("2024-01-01", "10:00", types.SeverityMild),
		}

		events := BuildTimeline(feedings, vomits)
		require.Len(t, events, 3)

		assert.Equal(t, EventFeeding, events[0].Type)
		assert.Equal(t, "12:00", events[0].Time)
		assert.Equal(t, EventVomit, events[1].Type)
		assert.Equal(t, "10:00", events[1].Time)
		assert.Equal(t, EventFeeding, events[2].Type)
		assert.Equal(t, "08:00", events[2].Time)
	})

	t.Run("carries kind-specific payloads", func(t *testing.T) {
		feedings := []types.Feeding{
			{
				ID:          "f1",
				Date:        "2024-01-01",
				Time:        "08:00",
				Description: "bottle",
				Categories:  []types.Category{types.CategoryFormula},
				Amount:      "120ml",
			},
		}
		vomits := []types.Vomit{
			{
				ID:       "v1",
				Date:     "2024-01-01",
				Time:     "09:00",
				Severity: types.SeveritySevere,
				Notes:    "right after burping",
			},
		}

		events := BuildTimeline(feedings, vomits)
		require.Len(t, events, 2)

		vp, ok := events[0].Data.(VomitPayload)
		require.True(t, ok)
		assert.Equal(t, types.SeveritySevere, vp.Severity)
		assert.Equal(t, "right after burping", vp.Notes)

		fp, ok := events[1].Data.(FeedingPayload)
		require.True(t, ok)
		assert.Equal(t, "bottle", fp.Description)
		assert.Equal(t, "120ml", fp.Amount)
		assert.Equal(t, []types.Category{types.CategoryFormula}, fp.Categories)
	})

	t.Run("same-instant events keep feedings before vomits", func(t *testing.T) {
		feedings := []types.Feeding{
			feeding("2024-01-01", "08:00", "breakfast"),
		}
		vomits := []types.Vomit{
			vomit("2024-01-01", "08:00", types.SeverityMild),
		}

		events := BuildTimeline(feedings, vomits)
		require.Len(t, events, 2)
		assert.Equal(t, EventFeeding, events[0].Type)
		assert.Equal(t, EventVomit, events[1].Type)
	})

	t.Run("unparseable records are dropped", func(t *testing.T) {
		feedings := []types.Feeding{
			{ID: "bad", Date: "not-a-date", Time: "08:00", Categories: []types.Category{}},
			feeding("2024-01-01", "08:00", "breakfast"),
		}

		events := BuildTimeline(feedings, nil)
		require.Len(t, events, 1)
		assert.Equal(t, "breakfast", events[0].Data.(FeedingPayload).Description)
	})

	t.Run("empty input yields an empty, non-nil slice", func(t *testing.T) {
		events := BuildTimeline(nil, nil)
		assert.NotNil(t, events)
		assert.Empty(t, events)
	})
}
