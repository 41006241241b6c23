package analytics

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nkeidar/babytrack/internal/types"
)

// fakeStore serves canned records and captures the requested window start.
type fakeStore struct {
	feedings []types.Feeding
	vomits   []types.Vomit
	err      error

	feedingsSinceDate string
	vomitsSinceDate   string
}

func (s *fakeStore) FeedingsSince(_ context.Context, date string) ([]types.Feeding, error) {
	s.feedingsSinceDate = date
	if s.err != nil {
		return nil, s.err
	}
	return s.feedings, nil
}

func (s *fakeStore) VomitsSince(_ context.Context, date string) ([]types.Vomit, error) {
	s.vomitsSinceDate = date
	if s.err != nil {
		return nil, s.err
	}
	return s.vomits, nil
}

func newTestAnalyzer(store Store, now time.Time) *Analyzer {
	a := NewAnalyzer(store)
	a.now = func() time.Time { return now }
	return a
}

func TestAnalyzerWindow(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

	t.Run("window start is the calendar date days back", func(t *testing.T) {
		store := &fakeStore{}
		a := newTestAnalyzer(store, now)

		_, err := a.CategoryCorrelation(context.Background(), 30)
		require.NoError(t, err)
		assert.Equal(t, "2024-02-14", store.feedingsSinceDate)
		assert.Equal(t, "2024-02-14", store.vomitsSinceDate)
	})

	t.Run("non-positive days falls back to the 30 day default", func(t *testing.T) {
		store := &fakeStore{}
		a := newTestAnalyzer(store, now)

		_, err := a.CategoryCorrelation(context.Background(), 0)
		require.NoError(t, err)
		assert.Equal(t, "2024-02-14", store.feedingsSinceDate)
	})

	t.Run("daily summary defaults to 7 days", func(t *testing.T) {
		store := &fakeStore{}
		a := newTestAnalyzer(store, now)

		_, err := a.DailySummary(context.Background(), -1)
		require.NoError(t, err)
		assert.Equal(t, "2024-03-08", store.feedingsSinceDate)
	})
}

func TestAnalyzerErrorPropagation(t *testing.T) {
	storeErr := errors.New("disk on fire")
	store := &fakeStore{err: storeErr}
	a := newTestAnalyzer(store, time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC))
	ctx := context.Background()

	_, err := a.CategoryCorrelation(ctx, 30)
	assert.ErrorIs(t, err, storeErr)

	_, err = a.FoodAnalysis(ctx, 30)
	assert.ErrorIs(t, err, storeErr)

	_, err = a.TimeAnalysis(ctx, 30)
	assert.ErrorIs(t, err, storeErr)

	_, err = a.HourlyPattern(ctx, 30)
	assert.ErrorIs(t, err, storeErr)

	_, err = a.DailySummary(ctx, 7)
	assert.ErrorIs(t, err, storeErr)

	_, err = a.FullOverview(ctx, 30)
	assert.ErrorIs(t, err, storeErr)
}

func TestAnalyzerIsIdempotent(t *testing.T) {
	store := &fakeStore{
		feedings: []types.Feeding{
			feeding("2024-03-10", "08:00", "Oatmeal", types.CategoryCarbs),
			feeding("2024-03-11", "08:00", "oatmeal", types.CategoryCarbs),
			feeding("2024-03-12", "12:00", "chicken", types.CategoryProtein),
		},
		vomits: []types.Vomit{
			vomit("2024-03-10", "09:00", types.SeverityMild),
			vomit("2024-03-12", "13:30", types.SeverityModerate),
		},
	}
	a := newTestAnalyzer(store, time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC))
	ctx := context.Background()

	first, err := a.FullOverview(ctx, 30)
	require.NoError(t, err)
	second, err := a.FullOverview(ctx, 30)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestFullOverviewMatchesIndividualAnalyses(t *testing.T) {
	store := &fakeStore{
		feedings: []types.Feeding{
			feeding("2024-03-10", "08:00", "oatmeal", types.CategoryCarbs),
			feeding("2024-03-11", "08:00", "oatmeal", types.CategoryCarbs),
			feeding("2024-03-12", "12:00", "chicken", types.CategoryProtein),
		},
		vomits: []types.Vomit{
			vomit("2024-03-10", "09:00", types.SeverityMild),
		},
	}
	a := newTestAnalyzer(store, time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC))
	ctx := context.Background()

	overview, err := a.FullOverview(ctx, 30)
	require.NoError(t, err)
	assert.Equal(t, 30, overview.Days)

	categories, err := a.CategoryCorrelation(ctx, 30)
	require.NoError(t, err)
	assert.Equal(t, categories, overview.CategoryCorrelation)

	foods, err := a.FoodAnalysis(ctx, 30)
	require.NoError(t, err)
	assert.Equal(t, foods, overview.FoodAnalysis)

	gaps, err := a.TimeAnalysis(ctx, 30)
	require.NoError(t, err)
	assert.Equal(t, gaps, overview.TimeAnalysis)

	hours, err := a.HourlyPattern(ctx, 30)
	require.NoError(t, err)
	assert.Equal(t, hours, overview.HourlyPattern)

	timeline, err := a.DailySummary(ctx, 30)
	require.NoError(t, err)
	assert.Equal(t, timeline, overview.Timeline)
}
