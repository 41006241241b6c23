package analytics

import (
	"context"
	"sync"
	"time"

	"github.com/nkeidar/babytrack/internal/types"
)

const (
	// DefaultWindowDays scopes the correlation and time analyses.
	DefaultWindowDays = 30
	// DefaultTimelineDays scopes the daily timeline.
	DefaultTimelineDays = 7
)

// Store is the record-store contract the analyzer loads its window through.
// Both queries return records dated on or after the given ISO date.
type Store interface {
	FeedingsSince(ctx context.Context, date string) ([]types.Feeding, error)
	VomitsSince(ctx context.Context, date string) ([]types.Vomit, error)
}

// Analyzer computes the analytics query surface over a record store. Every
// operation is a pure read: it loads its own copy of the window and computes
// synchronously over in-memory slices, so identical store contents always
// produce identical output. Store failures propagate to the caller
// unchanged; no partial results are returned.
type Analyzer struct {
	store Store
	now   func() time.Time
}

// NewAnalyzer creates an analyzer over the given store.
func NewAnalyzer(store Store) *Analyzer {
	return &Analyzer{store: store, now: time.Now}
}

// windowStart returns the inclusive ISO start date of a trailing window.
func (a *Analyzer) windowStart(days int) string {
	return a.now().AddDate(0, 0, -days).Format(types.DateLayout)
}

func (a *Analyzer) load(ctx context.Context, days int) ([]types.Feeding, []types.Vomit, error) {
	start := a.windowStart(days)
	feedings, err := a.store.FeedingsSince(ctx, start)
	if err != nil {
		return nil, nil, err
	}
	vomits, err := a.store.VomitsSince(ctx, start)
	if err != nil {
		return nil, nil, err
	}
	return feedings, vomits, nil
}

// CategoryCorrelation reports per-category correlation entries for the
// trailing window.
func (a *Analyzer) CategoryCorrelation(ctx context.Context, days int) ([]CategoryEntry, error) {
	feedings, vomits, err := a.load(ctx, windowOrDefault(days, DefaultWindowDays))
	if err != nil {
		return nil, err
	}
	return CorrelateCategories(feedings, vomits), nil
}

// FoodAnalysis reports per-food correlation entries, sorted descending by
// correlation percent, for foods seen at least twice in the window.
func (a *Analyzer) FoodAnalysis(ctx context.Context, days int) ([]FoodEntry, error) {
	feedings, vomits, err := a.load(ctx, windowOrDefault(days, DefaultWindowDays))
	if err != nil {
		return nil, err
	}
	return CorrelateFoods(feedings, vomits), nil
}

// TimeAnalysis reports the feeding-to-vomit gap distribution for the window.
func (a *Analyzer) TimeAnalysis(ctx context.Context, days int) (*TimeAnalysisResult, error) {
	feedings, vomits, err := a.load(ctx, windowOrDefault(days, DefaultWindowDays))
	if err != nil {
		return nil, err
	}
	return GapStatistics(feedings, vomits), nil
}

// HourlyPattern reports the 24-bucket hour-of-day histogram for the window.
func (a *Analyzer) HourlyPattern(ctx context.Context, days int) ([]HourlyBucket, error) {
	feedings, vomits, err := a.load(ctx, windowOrDefault(days, DefaultWindowDays))
	if err != nil {
		return nil, err
	}
	return HourlyPattern(feedings, vomits), nil
}

// DailySummary reports the merged reverse-chronological timeline for the
// window (default 7 days).
func (a *Analyzer) DailySummary(ctx context.Context, days int) ([]TimelineEvent, error) {
	feedings, vomits, err := a.load(ctx, windowOrDefault(days, DefaultTimelineDays))
	if err != nil {
		return nil, err
	}
	return BuildTimeline(feedings, vomits), nil
}

// FullOverview loads one window snapshot and computes every analysis over
// it. The computations share no mutable state and are side-effect free, so
// they run concurrently over the same loaded record set.
func (a *Analyzer) FullOverview(ctx context.Context, days int) (*Overview, error) {
	days = windowOrDefault(days, DefaultWindowDays)
	feedings, vomits, err := a.load(ctx, days)
	if err != nil {
		return nil, err
	}

	overview := &Overview{Days: days}

	var wg sync.WaitGroup
	wg.Add(5)
	go func() {
		defer wg.Done()
		overview.CategoryCorrelation = CorrelateCategories(feedings, vomits)
	}()
	go func() {
		defer wg.Done()
		overview.FoodAnalysis = CorrelateFoods(feedings, vomits)
	}()
	go func() {
		defer wg.Done()
		overview.TimeAnalysis = GapStatistics(feedings, vomits)
	}()
	go func() {
		defer wg.Done()
		overview.HourlyPattern = HourlyPattern(feedings, vomits)
	}()
	go func() {
		defer wg.Done()
		overview.Timeline = BuildTimeline(feedings, vomits)
	}()
	wg.Wait()

	return overview, nil
}

func windowOrDefault(days, fallback int) int {
	if days <= 0 {
		return fallback
	}
	return days
}
