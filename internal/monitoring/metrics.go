package monitoring

import (
	"sort"
	"sync"
	"sync/atomic"
	"time"
)

// Metrics holds application metrics
type Metrics struct {
	RequestCount int64
	ErrorCount   int64
	StartTime    time.Time

	// Response time tracking for percentile stats
	ResponseTimes      []time.Duration
	ResponseTimesMutex sync.RWMutex

	// Status code tracking
	RequestCountByStatus map[int]int64
	StatusMutex          sync.RWMutex

	// Per-analysis counters
	AnalyticsQueries map[string]int64
	AnalyticsMutex   sync.RWMutex
}

// NewMetrics creates a new metrics instance
func NewMetrics() *Metrics {
	return &Metrics{
		StartTime:            time.Now(),
		ResponseTimes:        make([]time.Duration, 0, 1000),
		RequestCountByStatus: make(map[int]int64),
		AnalyticsQueries:     make(map[string]int64),
	}
}

// IncrementRequest increments the request count
func (m *Metrics) IncrementRequest() {
	atomic.AddInt64(&m.RequestCount, 1)
}

// IncrementError increments the error count
func (m *Metrics) IncrementError() {
	atomic.AddInt64(&m.ErrorCount, 1)
}

// IncrementAnalyticsQuery counts a run of one analysis type
func (m *Metrics) IncrementAnalyticsQuery(analysis string) {
	m.AnalyticsMutex.Lock()
	defer m.AnalyticsMutex.Unlock()
	m.AnalyticsQueries[analysis]++
}

// RecordResponseTime records a response time sample. The sample window is
// capped so long-running processes do not grow without bound.
func (m *Metrics) RecordResponseTime(duration time.Duration) {
	m.ResponseTimesMutex.Lock()
	defer m.ResponseTimesMutex.Unlock()

	m.ResponseTimes = append(m.ResponseTimes, duration)
	if len(m.ResponseTimes) > 1000 {
		m.ResponseTimes = m.ResponseTimes[len(m.ResponseTimes)-1000:]
	}
}

// RecordRequestByStatus tracks request counts per HTTP status code
func (m *Metrics) RecordRequestByStatus(statusCode int) {
	m.StatusMutex.Lock()
	defer m.StatusMutex.Unlock()
	m.RequestCountByStatus[statusCode]++
}

// GetStats returns a snapshot of current metrics
func (m *Metrics) GetStats() map[string]interface{} {
	stats := map[string]interface{}{
		"request_count":  atomic.LoadInt64(&m.RequestCount),
		"error_count":    atomic.LoadInt64(&m.ErrorCount),
		"uptime_seconds": time.Since(m.StartTime).Seconds(),
	}

	m.StatusMutex.RLock()
	byStatus := make(map[int]int64, len(m.RequestCountByStatus))
	for code, count := range m.RequestCountByStatus {
		byStatus[code] = count
	}
	m.StatusMutex.RUnlock()
	stats["requests_by_status"] = byStatus

	m.AnalyticsMutex.RLock()
	queries := make(map[string]int64, len(m.AnalyticsQueries))
	for name, count := range m.AnalyticsQueries {
		queries[name] = count
	}
	m.AnalyticsMutex.RUnlock()
	stats["analytics_queries"] = queries

	m.ResponseTimesMutex.RLock()
	samples := make([]time.Duration, len(m.ResponseTimes))
	copy(samples, m.ResponseTimes)
	m.ResponseTimesMutex.RUnlock()

	if len(samples) > 0 {
		sort.Slice(samples, func(i, j int) bool { return samples[i] < samples[j] })
		stats["response_time_p50_ms"] = samples[len(samples)/2].Milliseconds()
		stats["response_time_p95_ms"] = samples[len(samples)*95/100].Milliseconds()
		stats["response_time_max_ms"] = samples[len(samples)-1].Milliseconds()
	}

	return stats
}
