package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nkeidar/babytrack/internal/types"
)

func TestHourlyPattern(t *testing.T) {
	t.Run("all 24 buckets are present even with no events", func(t *testing.T) {
		buckets := HourlyPattern(nil, nil)

		require.Len(t, buckets, 24)
		for h, b := range buckets {
			assert.Equal(t, h, b.Hour)
			assert.Equal(t, 0, b.Feedings)
			assert.Equal(t, 0, b.Vomits)
		}
	})

	t.Run("counts the two series independently", func(t *testing.T) {
		feedings := []types.Feeding{
			feeding("2024-01-01", "08:15", "breakfast"),
			feeding("2024-01-02", "08:45", "breakfast again"),
			feeding("2024-01-01", "23:00", "late bottle"),
		}
		vomits := []types.Vomit{
			vomit("2024-01-01", "08:30", types.SeverityMild),
			vomit("2024-01-01", "00:10", types.SeverityModerate),
		}

		buckets := HourlyPattern(feedings, vomits)

		assert.Equal(t, 2, buckets[8].Feedings)
		assert.Equal(t, 1, buckets[8].Vomits)
		assert.Equal(t, 1, buckets[23].Feedings)
		assert.Equal(t, 1, buckets[0].Vomits)
	})

	t.Run("events with malformed times are skipped", func(t *testing.T) {
		feedings := []types.Feeding{
			{ID: "bad", Date: "2024-01-01", Time: "not-a-time", Categories: []types.Category{}},
			feeding("2024-01-01", "12:00", "lunch"),
		}

		buckets := HourlyPattern(feedings, nil)

		total := 0
		for _, b := range buckets {
			total += b.Feedings
		}
		assert.Equal(t, 1, total)
		assert.Equal(t, 1, buckets[12].Feedings)
	})
}
