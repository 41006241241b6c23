package monitoring

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsCounters(t *testing.T) {
	m := NewMetrics()

	m.IncrementRequest()
	m.IncrementRequest()
	m.IncrementError()
	m.RecordRequestByStatus(200)
	m.RecordRequestByStatus(200)
	m.RecordRequestByStatus(404)
	m.IncrementAnalyticsQuery("category-correlation")
	m.IncrementAnalyticsQuery("category-correlation")
	m.IncrementAnalyticsQuery("overview")

	stats := m.GetStats()
	assert.Equal(t, int64(2), stats["request_count"])
	assert.Equal(t, int64(1), stats["error_count"])

	byStatus := stats["requests_by_status"].(map[int]int64)
	assert.Equal(t, int64(2), byStatus[200])
	assert.Equal(t, int64(1), byStatus[404])

	queries := stats["analytics_queries"].(map[string]int64)
	assert.Equal(t, int64(2), queries["category-correlation"])
	assert.Equal(t, int64(1), queries["overview"])
}

func TestMetricsResponseTimes(t *testing.T) {
	m := NewMetrics()

	t.Run("no samples omits percentile stats", func(t *testing.T) {
		stats := m.GetStats()
		assert.NotContains(t, stats, "response_time_p50_ms")
	})

	t.Run("reports percentiles over recorded samples", func(t *testing.T) {
		for _, d := range []time.Duration{10 * time.Millisecond, 20 * time.Millisecond, 90 * time.Millisecond} {
			m.RecordResponseTime(d)
		}

		stats := m.GetStats()
		assert.Equal(t, int64(20), stats["response_time_p50_ms"])
		assert.Equal(t, int64(90), stats["response_time_max_ms"])
	})

	t.Run("sample window is capped", func(t *testing.T) {
		for i := 0; i < 1500; i++ {
			m.RecordResponseTime(time.Millisecond)
		}

		m.ResponseTimesMutex.RLock()
		defer m.ResponseTimesMutex.RUnlock()
		require.LessOrEqual(t, len(m.ResponseTimes), 1000)
	})
}

func TestMetricsConcurrentAccess(t *testing.T) {
	m := NewMetrics()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				m.IncrementRequest()
				m.RecordRequestByStatus(200)
				m.IncrementAnalyticsQuery("overview")
				m.RecordResponseTime(time.Millisecond)
			}
		}()
	}
	wg.Wait()

	stats := m.GetStats()
	assert.Equal(t, int64(800), stats["request_count"])
}
