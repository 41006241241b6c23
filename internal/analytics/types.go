package analytics

import (
	"github.com/nkeidar/babytrack/internal/types"
)

// CategoryEntry reports how often a food category appeared in the window and
// how often it appeared in a feeding linked to a subsequent vomit.
// CorrelationPercent is a rounded ratio, not a statistical coefficient, and
// is deliberately not clamped: a feeding linked to several vomits counts
// once per vomit, so values above 100 are possible and meaningful.
type CategoryEntry struct {
	Category               types.Category `json:"category"`
	Label                  string         `json:"label"`
	TotalOccurrences       int            `json:"total_occurrences"`
	OccurrencesBeforeVomit int            `json:"occurrences_before_vomit"`
	CorrelationPercent     int            `json:"correlation_percent"`
}

// FoodEntry is the same correlation keyed by normalized free-text food
// description. Entries seen fewer than twice in the window are dropped.
type FoodEntry struct {
	Food                   string `json:"food"`
	TotalOccurrences       int    `json:"total_occurrences"`
	OccurrencesBeforeVomit int    `json:"occurrences_before_vomit"`
	CorrelationPercent     int    `json:"correlation_percent"`
}

// GapRecord captures the nearest preceding feeding for one vomit.
type GapRecord struct {
	GapMinutes  float64          `json:"gap_minutes"`
	Categories  []types.Category `json:"categories"`
	Description string           `json:"description"`
	Severity    types.Severity   `json:"severity"`
}

// RangeBucket is one named slot of the fixed gap distribution.
type RangeBucket struct {
	Range string `json:"range"`
	Count int    `json:"count"`
}

// TimeAnalysisResult summarizes the feeding-to-vomit gap distribution.
type TimeAnalysisResult struct {
	AverageGapMinutes     int           `json:"average_gap_minutes"`
	TotalVomitsAnalyzed   int           `json:"total_vomits_analyzed"`
	TimeRangeDistribution []RangeBucket `json:"time_range_distribution"`
	Details               []GapRecord   `json:"details"`
}

// HourlyBucket is one hour-of-day slot of the event histogram.
type HourlyBucket struct {
	Hour     int `json:"hour"`
	Feedings int `json:"feedings"`
	Vomits   int `json:"vomits"`
}

// Timeline event type tags.
const (
	EventFeeding = "feeding"
	EventVomit   = "vomit"
)

// FeedingPayload is the kind-specific data of a feeding timeline event.
type FeedingPayload struct {
	Description string           `json:"description"`
	Categories  []types.Category `json:"categories"`
	Amount      string           `json:"amount,omitempty"`
}

// VomitPayload is the kind-specific data of a vomit timeline event.
type VomitPayload struct {
	Severity types.Severity `json:"severity"`
	Notes    string         `json:"notes,omitempty"`
}

// TimelineEvent is the discriminated union rendered on the daily timeline.
// Data holds a FeedingPayload or VomitPayload depending on Type.
type TimelineEvent struct {
	Type string      `json:"type"`
	ID   string      `json:"id"`
	Date string      `json:"date"`
	Time string      `json:"time"`
	Data interface{} `json:"data"`
}

// Overview bundles all analyses computed from one shared window snapshot.
type Overview struct {
	Days                int                 `json:"days"`
	CategoryCorrelation []CategoryEntry     `json:"category_correlation"`
	FoodAnalysis        []FoodEntry         `json:"food_analysis"`
	TimeAnalysis        *TimeAnalysisResult `json:"time_analysis"`
	HourlyPattern       []HourlyBucket      `json:"hourly_pattern"`
	Timeline            []TimelineEvent     `json:"timeline"`
}
