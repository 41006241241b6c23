package analytics

import (
	"math"
	"sort"
	"strings"

	"github.com/nkeidar/babytrack/internal/types"
)

// CorrelateCategories aggregates, per category tag, total occurrences across
// the window against occurrences in feedings linked to a subsequent vomit by
// the 4-hour time join. A feeding with several tags contributes to each; a
// feeding linked to several vomits is counted once per vomit. Categories with
// zero total occurrences are suppressed. Output follows enum order; sorting
// is the caller's concern.
func CorrelateCategories(feedings []types.Feeding, vomits []types.Vomit) []CategoryEntry {
	totals := map[types.Category]int{}
	beforeVomit := map[types.Category]int{}

	for i := range feedings {
		for _, c := range feedings[i].Categories {
			totals[c]++
		}
	}

	for i := range vomits {
		for _, f := range precedingFeedings(&vomits[i], feedings, correlationWindowHours) {
			for _, c := range f.Categories {
				beforeVomit[c]++
			}
		}
	}

	entries := []CategoryEntry{}
	for _, c := range types.Categories() {
		total := totals[c]
		if total == 0 {
			continue
		}
		before := beforeVomit[c]
		entries = append(entries, CategoryEntry{
			Category:               c,
			Label:                  c.Label(),
			TotalOccurrences:       total,
			OccurrencesBeforeVomit: before,
			CorrelationPercent:     roundPercent(before, total),
		})
	}
	return entries
}

// CorrelateFoods runs the same aggregation keyed by normalized food
// description (lower-cased, surrounding whitespace trimmed). Foods seen
// fewer than twice are dropped; output is sorted descending by correlation
// percent.
func CorrelateFoods(feedings []types.Feeding, vomits []types.Vomit) []FoodEntry {
	totals := map[string]int{}
	beforeVomit := map[string]int{}
	var order []string // first-seen order keeps output deterministic across runs

	for i := range feedings {
		key := normalizeFood(feedings[i].Description)
		if totals[key] == 0 {
			order = append(order, key)
		}
		totals[key]++
	}

	for i := range vomits {
		for _, f := range precedingFeedings(&vomits[i], feedings, correlationWindowHours) {
			beforeVomit[normalizeFood(f.Description)]++
		}
	}

	entries := []FoodEntry{}
	for _, key := range order {
		total := totals[key]
		if total < 2 {
			continue
		}
		before := beforeVomit[key]
		entries = append(entries, FoodEntry{
			Food:                   key,
			TotalOccurrences:       total,
			OccurrencesBeforeVomit: before,
			CorrelationPercent:     roundPercent(before, total),
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].CorrelationPercent > entries[j].CorrelationPercent
	})
	return entries
}

func normalizeFood(description string) string {
	return strings.ToLower(strings.TrimSpace(description))
}

func roundPercent(part, total int) int {
	return int(math.Round(float64(part) / float64(total) * 100))
}
