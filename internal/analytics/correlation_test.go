package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nkeidar/babytrack/internal/types"
)

func TestCorrelateCategories(t *testing.T) {
	t.Run("single feeding before a vomit reports full correlation", func(t *testing.T) {
		feedings := []types.Feeding{
			feeding("2024-01-01", "08:00", "chicken and rice", types.CategoryProtein, types.CategoryCarbs),
		}
		vomits := []types.Vomit{
			vomit("2024-01-01", "10:00", types.SeverityModerate),
		}

		entries := CorrelateCategories(feedings, vomits)
		require.Len(t, entries, 2)

		for _, e := range entries {
			assert.Equal(t, 1, e.TotalOccurrences)
			assert.Equal(t, 1, e.OccurrencesBeforeVomit)
			assert.Equal(t, 100, e.CorrelationPercent)
		}
		assert.Equal(t, types.CategoryProtein, entries[0].Category)
		assert.Equal(t, types.CategoryCarbs, entries[1].Category)
	})

	t.Run("categories with zero occurrences are suppressed", func(t *testing.T) {
		feedings := []types.Feeding{
			feeding("2024-01-01", "08:00", "banana", types.CategoryFruits),
		}

		entries := CorrelateCategories(feedings, nil)
		require.Len(t, entries, 1)
		assert.Equal(t, types.CategoryFruits, entries[0].Category)
		assert.Equal(t, 0, entries[0].CorrelationPercent)
	})

	t.Run("every qualifying feeding counts, not just the nearest", func(t *testing.T) {
		feedings := []types.Feeding{
			feeding("2024-01-01", "06:00", "eggs", types.CategoryProtein),
			feeding("2024-01-01", "09:30", "cheese", types.CategoryProtein),
		}
		vomits := []types.Vomit{
			vomit("2024-01-01", "10:00", types.SeverityModerate),
		}

		entries := CorrelateCategories(feedings, vomits)
		require.Len(t, entries, 1)
		assert.Equal(t, types.CategoryProtein, entries[0].Category)
		assert.Equal(t, 2, entries[0].TotalOccurrences)
		assert.Equal(t, 2, entries[0].OccurrencesBeforeVomit)
		assert.Equal(t, 100, entries[0].CorrelationPercent)
	})

	t.Run("feeding linked to multiple vomits counts once per vomit and is not clamped", func(t *testing.T) {
		feedings := []types.Feeding{
			feeding("2024-01-01", "08:00", "milk", types.CategoryDairy),
		}
		vomits := []types.Vomit{
			vomit("2024-01-01", "09:00", types.SeverityMild),
			vomit("2024-01-01", "11:00", types.SeveritySevere),
		}

		entries := CorrelateCategories(feedings, vomits)
		require.Len(t, entries, 1)
		assert.Equal(t, 1, entries[0].TotalOccurrences)
		assert.Equal(t, 2, entries[0].OccurrencesBeforeVomit)
		assert.Equal(t, 200, entries[0].CorrelationPercent)
	})

	t.Run("formula participates in the shared enumeration", func(t *testing.T) {
		feedings := []types.Feeding{
			feeding("2024-01-01", "08:00", "bottle", types.CategoryFormula),
		}
		vomits := []types.Vomit{
			vomit("2024-01-01", "08:30", types.SeverityMild),
		}

		entries := CorrelateCategories(feedings, vomits)
		require.Len(t, entries, 1)
		assert.Equal(t, types.CategoryFormula, entries[0].Category)
		assert.Equal(t, "Formula", entries[0].Label)
		assert.Equal(t, 100, entries[0].CorrelationPercent)
	})

	t.Run("no feedings yields an empty sequence", func(t *testing.T) {
		vomits := []types.Vomit{
			vomit("2024-01-01", "10:00", types.SeverityModerate),
		}

		entries := CorrelateCategories(nil, vomits)
		assert.Empty(t, entries)
	})

	t.Run("feeding outside the 4 hour window does not count as before-vomit", func(t *testing.T) {
		feedings := []types.Feeding{
			feeding("2024-01-01", "05:00", "early meal", types.CategoryVegetables),
		}
		vomits := []types.Vomit{
			vomit("2024-01-01", "10:00", types.SeverityModerate),
		}

		entries := CorrelateCategories(feedings, vomits)
		require.Len(t, entries, 1)
		assert.Equal(t, 1, entries[0].TotalOccurrences)
		assert.Equal(t, 0, entries[0].OccurrencesBeforeVomit)
		assert.Equal(t, 0, entries[0].CorrelationPercent)
	})
}

func TestCorrelateFoods(t *testing.T) {
	t.Run("foods seen fewer than twice are dropped", func(t *testing.T) {
		feedings := []types.Feeding{
			feeding("2024-01-01", "08:00", "oatmeal"),
			feeding("2024-01-02", "08:00", "oatmeal"),
			feeding("2024-01-02", "12:00", "one-off soup"),
		}

		entries := CorrelateFoods(feedings, nil)
		require.Len(t, entries, 1)
		assert.Equal(t, "oatmeal", entries[0].Food)
		assert.Equal(t, 2, entries[0].TotalOccurrences)
	})

	t.Run("descriptions are normalized by case and surrounding whitespace", func(t *testing.T) {
		feedings := []types.Feeding{
			feeding("2024-01-01", "08:00", "  Oatmeal "),
			feeding("2024-01-02", "08:00", "oatmeal"),
		}

		entries := CorrelateFoods(feedings, nil)
		require.Len(t, entries, 1)
		assert.Equal(t, "oatmeal", entries[0].Food)
		assert.Equal(t, 2, entries[0].TotalOccurrences)
	})

	t.Run("output is sorted descending by correlation percent", func(t *testing.T) {
		feedings := []types.Feeding{
			feeding("2024-01-01", "08:00", "safe food"),
			feeding("2024-01-02", "08:00", "safe food"),
			feeding("2024-01-03", "08:00", "risky food"),
			feeding("2024-01-04", "08:00", "risky food"),
		}
		vomits := []types.Vomit{
			vomit("2024-01-03", "09:00", types.SeverityModerate),
		}

		entries := CorrelateFoods(feedings, vomits)
		require.Len(t, entries, 2)
		assert.Equal(t, "risky food", entries[0].Food)
		assert.Equal(t, 50, entries[0].CorrelationPercent)
		assert.Equal(t, "safe food", entries[1].Food)
		assert.Equal(t, 0, entries[1].CorrelationPercent)
	})

	t.Run("no feedings yields an empty sequence", func(t *testing.T) {
		vomits := []types.Vomit{
			vomit("2024-01-01", "10:00", types.SeverityModerate),
		}

		entries := CorrelateFoods(nil, vomits)
		assert.Empty(t, entries)
	})
}
