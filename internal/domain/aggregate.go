package domain

import "time"

// BucketCount is one (time bucket, label) row from the aggregation query.
type BucketCount struct {
	Bucket        time.Time `db:"time_bucket"`
	Label         string    `db:"sentiment_label"`
	Count         int       `db:"count"`
	AvgConfidence float64   `db:"avg_confidence"`
}

// Distribution is the dashboard-facing sentiment breakdown over a
// trailing window.
type Distribution struct {
	TimeframeHours int                `json:"timeframe_hours"`
	Source         string             `json:"source"`
	Distribution   map[string]int     `json:"distribution"`
	Total          int                `json:"total"`
	Percentages    map[string]float64 `json:"percentages"`
	TopEmotions    map[string]int     `json:"top_emotions"`
	Cached         bool               `json:"cached"`
	CachedAt       string             `json:"cached_at"`
}

// TimeBucket is one calendar-aligned interval of an aggregate response.
type TimeBucket struct {
	Timestamp          time.Time `json:"timestamp"`
	PositiveCount      int       `json:"positive_count"`
	NegativeCount      int       `json:"negative_count"`
	NeutralCount       int       `json:"neutral_count"`
	TotalCount         int       `json:"total_count"`
	PositivePercentage float64   `json:"positive_percentage"`
	NegativePercentage float64   `json:"negative_percentage"`
	NeutralPercentage  float64   `json:"neutral_percentage"`
	AverageConfidence  float64   `json:"average_confidence"`
}

// AggregateSummary sums label counts across all buckets.
type AggregateSummary struct {
	TotalPosts    int `json:"total_posts"`
	PositiveTotal int `json:"positive_total"`
	NegativeTotal int `json:"negative_total"`
	NeutralTotal  int `json:"neutral_total"`
}

// Aggregate is a time-bucketed sentiment report.
type Aggregate struct {
	Period    string           `json:"period"`
	StartDate time.Time        `json:"start_date"`
	EndDate   time.Time        `json:"end_date"`
	Data      []TimeBucket     `json:"data"`
	Summary   AggregateSummary `json:"summary"`
}
