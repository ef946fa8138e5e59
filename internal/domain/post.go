package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Sentiment labels form a closed set; anything a model emits outside
// {positive, negative} is folded to neutral before it reaches storage.
const (
	SentimentPositive = "positive"
	SentimentNegative = "negative"
	SentimentNeutral  = "neutral"
)

// Post is a raw social-media post as published by the ingester.
// Re-ingestion of the same PostID refreshes IngestedAt only.
type Post struct {
	PostID     string    `db:"post_id"`
	Source     string    `db:"source"`
	Content    string    `db:"content"`
	Author     string    `db:"author"`
	CreatedAt  time.Time `db:"created_at"`
	IngestedAt time.Time `db:"ingested_at"`
}

// SentimentAnalysis is one classification result for a post. Rows are
// append-only; redelivery of a queue message may produce duplicates.
type SentimentAnalysis struct {
	ID              int64     `db:"id"`
	PostID          string    `db:"post_id"`
	ModelName       string    `db:"model_name"`
	SentimentLabel  string    `db:"sentiment_label"`
	ConfidenceScore float64   `db:"confidence_score"`
	Emotion         *string   `db:"emotion"`
	AnalyzedAt      time.Time `db:"analyzed_at"`
}

// SentimentAlert records one fired anomaly detection.
type SentimentAlert struct {
	ID             int64        `db:"id"`
	AlertType      string       `db:"alert_type"`
	ThresholdValue float64      `db:"threshold_value"`
	ActualValue    float64      `db:"actual_value"`
	WindowStart    time.Time    `db:"window_start"`
	WindowEnd      time.Time    `db:"window_end"`
	PostCount      int          `db:"post_count"`
	TriggeredAt    time.Time    `db:"triggered_at"`
	Details        AlertDetails `db:"details"`
}

// AlertDetails is the per-label count breakdown stored alongside an alert.
type AlertDetails struct {
	PositiveCount int `json:"positive_count"`
	NegativeCount int `json:"negative_count"`
	NeutralCount  int `json:"neutral_count"`
}

func (d AlertDetails) Value() (driver.Value, error) {
	return json.Marshal(d)
}

func (d *AlertDetails) Scan(src interface{}) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, d)
	case string:
		return json.Unmarshal([]byte(v), d)
	default:
		return fmt.Errorf("unsupported alert details type %T", src)
	}
}
