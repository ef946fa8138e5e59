package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"sentiment_pipeline/internal/domain"
)

type Classifier interface {
	ClassifySentiment(ctx context.Context, text string) (domain.SentimentResult, error)
	ClassifyEmotion(ctx context.Context, text string) (domain.EmotionResult, error)
	ClassifyBatch(ctx context.Context, texts []string) ([]domain.SentimentResult, error)
}

type PostStore interface {
	Upsert(ctx context.Context, post *domain.Post) error
}

type AnalysisStore interface {
	Insert(ctx context.Context, analysis *domain.SentimentAnalysis) error
	CountsByLabelSince(ctx context.Context, since time.Time, source string) (map[string]int, error)
	TopEmotionsSince(ctx context.Context, since time.Time, source string, limit int) (map[string]int, error)
	BucketCounts(ctx context.Context, period string, start, end time.Time, source string) ([]domain.BucketCount, error)
}

type AlertStore interface {
	Insert(ctx context.Context, alert *domain.SentimentAlert) (int64, error)
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}
