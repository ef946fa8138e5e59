package postgres

import (
	"context"
	"strconv"
	"time"

	"github.com/jmoiron/sqlx"

	"sentiment_pipeline/internal/domain"
)

type AnalysisStore struct {
	db *sqlx.DB
}

func NewAnalysisStore(db *sqlx.DB) *AnalysisStore {
	return &AnalysisStore{db: db}
}

// Insert appends one analysis row. The table has no uniqueness
// constraint: redelivered messages produce duplicate rows on purpose.
func (s *AnalysisStore) Insert(ctx context.Context, analysis *domain.SentimentAnalysis) error {
	query := `
		INSERT INTO sentiment_analyses (post_id, model_name, sentiment_label, confidence_score, emotion, analyzed_at)
		VALUES ($1, $2, $3, $4, $5, NOW())`

	exec := GetExecutor(ctx, s.db)
	_, err := exec.ExecContext(ctx, query,
		analysis.PostID,
		analysis.ModelName,
		analysis.SentimentLabel,
		analysis.ConfidenceScore,
		analysis.Emotion,
	)
	return err
}

// CountsByLabelSince returns per-label analysis counts with analyzed_at
// at or after since, optionally filtered by post source.
func (s *AnalysisStore) CountsByLabelSince(ctx context.Context, since time.Time, source string) (map[string]int, error) {
	query := `
		SELECT sa.sentiment_label, COUNT(sa.id) AS count
		FROM sentiment_analyses sa
		JOIN posts p ON p.post_id = sa.post_id
		WHERE sa.analyzed_at >= $1`

	args := []interface{}{since}
	if source != "" {
		query += ` AND p.source = $2`
		args = append(args, source)
	}
	query += ` GROUP BY sa.sentiment_label`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var label string
		var count int
		if err := rows.Scan(&label, &count); err != nil {
			return nil, err
		}
		counts[label] = count
	}
	return counts, rows.Err()
}

// TopEmotionsSince returns the most frequent non-null emotions since
// the given time, at most limit of them.
func (s *AnalysisStore) TopEmotionsSince(ctx context.Context, since time.Time, source string, limit int) (map[string]int, error) {
	query := `
		SELECT sa.emotion, COUNT(sa.id) AS count
		FROM sentiment_analyses sa
		JOIN posts p ON p.post_id = sa.post_id
		WHERE sa.analyzed_at >= $1 AND sa.emotion IS NOT NULL`

	args := []interface{}{since}
	if source != "" {
		query += ` AND p.source = $2`
		args = append(args, source)
	}
	query += ` GROUP BY sa.emotion ORDER BY count DESC LIMIT ` + strconv.Itoa(limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	emotions := make(map[string]int)
	for rows.Next() {
		var emotion string
		var count int
		if err := rows.Scan(&emotion, &count); err != nil {
			return nil, err
		}
		emotions[emotion] = count
	}
	return emotions, rows.Err()
}

// BucketCounts groups analyses into calendar-aligned date_trunc buckets
// of the given period with per-label counts and mean confidence.
func (s *AnalysisStore) BucketCounts(ctx context.Context, period string, start, end time.Time, source string) ([]domain.BucketCount, error) {
	query := `
		SELECT date_trunc($1, sa.analyzed_at) AS time_bucket,
		       sa.sentiment_label,
		       COUNT(sa.id) AS count,
		       AVG(sa.confidence_score) AS avg_confidence
		FROM sentiment_analyses sa
		JOIN posts p ON p.post_id = sa.post_id
		WHERE sa.analyzed_at >= $2 AND sa.analyzed_at <= $3`

	args := []interface{}{period, start, end}
	if source != "" {
		query += ` AND p.source = $4`
		args = append(args, source)
	}
	query += ` GROUP BY time_bucket, sa.sentiment_label ORDER BY time_bucket`

	var buckets []domain.BucketCount
	err := s.db.SelectContext(ctx, &buckets, query, args...)
	return buckets, err
}
