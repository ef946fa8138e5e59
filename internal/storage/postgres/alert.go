package postgres

import (
	"context"
	"strconv"

	"github.com/jmoiron/sqlx"

	"sentiment_pipeline/internal/domain"
)

type AlertStore struct {
	db *sqlx.DB
}

func NewAlertStore(db *sqlx.DB) *AlertStore {
	return &AlertStore{db: db}
}

// Insert appends one fired alert and returns its generated id.
func (s *AlertStore) Insert(ctx context.Context, alert *domain.SentimentAlert) (int64, error) {
	query := `
		INSERT INTO sentiment_alerts (alert_type, threshold_value, actual_value, window_start, window_end, post_count, triggered_at, details)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`

	exec := GetExecutor(ctx, s.db)
	var id int64
	err := exec.QueryRowxContext(ctx, query,
		alert.AlertType,
		alert.ThresholdValue,
		alert.ActualValue,
		alert.WindowStart,
		alert.WindowEnd,
		alert.PostCount,
		alert.TriggeredAt,
		alert.Details,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

// Recent returns the latest alerts, newest first.
func (s *AlertStore) Recent(ctx context.Context, limit int) ([]domain.SentimentAlert, error) {
	query := `
		SELECT id, alert_type, threshold_value, actual_value, window_start, window_end, post_count, triggered_at, details
		FROM sentiment_alerts
		ORDER BY triggered_at DESC
		LIMIT ` + strconv.Itoa(limit)

	var alerts []domain.SentimentAlert
	err := s.db.SelectContext(ctx, &alerts, query)
	return alerts, err
}
