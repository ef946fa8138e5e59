package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sort"
	"time"

	"sentiment_pipeline/internal/domain"
)

// ErrInvalidPeriod marks an aggregation granularity outside
// {minute, hour, day}.
var ErrInvalidPeriod = errors.New("invalid aggregation period")

const (
	cacheTTL        = 60 * time.Second
	topEmotionLimit = 5
)

// Aggregator computes time-bucketed sentiment statistics behind a
// read-through cache. The cache is advisory: any cache failure degrades
// to direct computation and is never surfaced to the caller.
type Aggregator struct {
	analyses AnalysisStore
	cache    Cache
	logger   *slog.Logger
}

func NewAggregator(analyses AnalysisStore, cache Cache, logger *slog.Logger) *Aggregator {
	return &Aggregator{
		analyses: analyses,
		cache:    cache,
		logger:   logger,
	}
}

// GetDistribution returns the sentiment breakdown over the trailing
// hours, optionally filtered by source platform.
func (a *Aggregator) GetDistribution(ctx context.Context, hours int, source string) (*domain.Distribution, error) {
	key := fmt.Sprintf("sentiment_cache:distribution:%d:%s", hours, orAll(source))

	if cached, ok := a.cacheGet(ctx, key); ok {
		var dist domain.Distribution
		if err := json.Unmarshal(cached, &dist); err == nil {
			dist.Cached = true
			return &dist, nil
		}
		a.logger.Warn("discarding undecodable cache entry", "key", key)
	}

	threshold := time.Now().UTC().Add(-time.Duration(hours) * time.Hour)

	counts, err := a.analyses.CountsByLabelSince(ctx, threshold, source)
	if err != nil {
		return nil, fmt.Errorf("count sentiment labels: %w", err)
	}
	topEmotions, err := a.analyses.TopEmotionsSince(ctx, threshold, source, topEmotionLimit)
	if err != nil {
		return nil, fmt.Errorf("count emotions: %w", err)
	}

	distribution := map[string]int{
		domain.SentimentPositive: counts[domain.SentimentPositive],
		domain.SentimentNegative: counts[domain.SentimentNegative],
		domain.SentimentNeutral:  counts[domain.SentimentNeutral],
	}
	total := distribution[domain.SentimentPositive] +
		distribution[domain.SentimentNegative] +
		distribution[domain.SentimentNeutral]

	resp := &domain.Distribution{
		TimeframeHours: hours,
		Source:         source,
		Distribution:   distribution,
		Total:          total,
		Percentages:    percentagesOf(distribution, total),
		TopEmotions:    topEmotions,
		Cached:         false,
		CachedAt:       time.Now().UTC().Format(time.RFC3339),
	}

	a.cacheSet(ctx, key, resp)
	return resp, nil
}

// GetAggregate buckets analyses into calendar-aligned intervals of the
// given period between start and end. Zero start defaults to 24 hours
// before end; zero end defaults to now.
func (a *Aggregator) GetAggregate(ctx context.Context, period string, start, end time.Time, source string) (*domain.Aggregate, error) {
	switch period {
	case "minute", "hour", "day":
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidPeriod, period)
	}

	if end.IsZero() {
		end = time.Now().UTC()
	}
	if start.IsZero() {
		start = end.Add(-24 * time.Hour)
	}

	key := fmt.Sprintf("sentiment_cache:aggregate:%s:%s:%s:%s",
		period, orAll(source), start.Format(time.RFC3339), end.Format(time.RFC3339))

	if cached, ok := a.cacheGet(ctx, key); ok {
		var agg domain.Aggregate
		if err := json.Unmarshal(cached, &agg); err == nil {
			return &agg, nil
		}
		a.logger.Warn("discarding undecodable cache entry", "key", key)
	}

	rows, err := a.analyses.BucketCounts(ctx, period, start, end, source)
	if err != nil {
		return nil, fmt.Errorf("bucket counts: %w", err)
	}

	data, summary := buildBuckets(rows)

	resp := &domain.Aggregate{
		Period:    period,
		StartDate: start,
		EndDate:   end,
		Data:      data,
		Summary:   summary,
	}

	a.cacheSet(ctx, key, resp)
	return resp, nil
}

type bucketAccumulator struct {
	positive        int
	negative        int
	neutral         int
	total           int
	confidenceSum   float64
	confidenceCount int
}

func buildBuckets(rows []domain.BucketCount) ([]domain.TimeBucket, domain.AggregateSummary) {
	accums := make(map[time.Time]*bucketAccumulator)
	for _, row := range rows {
		acc := accums[row.Bucket]
		if acc == nil {
			acc = &bucketAccumulator{}
			accums[row.Bucket] = acc
		}
		switch row.Label {
		case domain.SentimentPositive:
			acc.positive += row.Count
		case domain.SentimentNegative:
			acc.negative += row.Count
		case domain.SentimentNeutral:
			acc.neutral += row.Count
		}
		acc.total += row.Count
		acc.confidenceSum += row.AvgConfidence * float64(row.Count)
		acc.confidenceCount += row.Count
	}

	timestamps := make([]time.Time, 0, len(accums))
	for ts := range accums {
		timestamps = append(timestamps, ts)
	}
	sort.Slice(timestamps, func(i, j int) bool { return timestamps[i].Before(timestamps[j]) })

	var summary domain.AggregateSummary
	data := make([]domain.TimeBucket, 0, len(timestamps))
	for _, ts := range timestamps {
		acc := accums[ts]
		bucket := domain.TimeBucket{
			Timestamp:     ts,
			PositiveCount: acc.positive,
			NegativeCount: acc.negative,
			NeutralCount:  acc.neutral,
			TotalCount:    acc.total,
		}
		if acc.total > 0 {
			bucket.PositivePercentage = round2(float64(acc.positive) / float64(acc.total) * 100)
			bucket.NegativePercentage = round2(float64(acc.negative) / float64(acc.total) * 100)
			bucket.NeutralPercentage = round2(float64(acc.neutral) / float64(acc.total) * 100)
		}
		if acc.confidenceCount > 0 {
			bucket.AverageConfidence = round2(acc.confidenceSum / float64(acc.confidenceCount))
		}
		data = append(data, bucket)

		summary.TotalPosts += acc.total
		summary.PositiveTotal += acc.positive
		summary.NegativeTotal += acc.negative
		summary.NeutralTotal += acc.neutral
	}

	return data, summary
}

func (a *Aggregator) cacheGet(ctx context.Context, key string) ([]byte, bool) {
	if a.cache == nil {
		return nil, false
	}
	b, ok, err := a.cache.Get(ctx, key)
	if err != nil {
		a.logger.Warn("cache read failed", "key", key, "error", err)
		return nil, false
	}
	return b, ok
}

func (a *Aggregator) cacheSet(ctx context.Context, key string, value interface{}) {
	if a.cache == nil {
		return
	}
	b, err := json.Marshal(value)
	if err != nil {
		a.logger.Warn("cache encode failed", "key", key, "error", err)
		return
	}
	if err := a.cache.Set(ctx, key, b, cacheTTL); err != nil {
		a.logger.Warn("cache write failed", "key", key, "error", err)
	}
}

func percentagesOf(distribution map[string]int, total int) map[string]float64 {
	if total == 0 {
		return map[string]float64{
			domain.SentimentPositive: 0.0,
			domain.SentimentNegative: 0.0,
			domain.SentimentNeutral:  0.0,
		}
	}
	return map[string]float64{
		domain.SentimentPositive: round2(float64(distribution[domain.SentimentPositive]) / float64(total) * 100),
		domain.SentimentNegative: round2(float64(distribution[domain.SentimentNegative]) / float64(total) * 100),
		domain.SentimentNeutral:  round2(float64(distribution[domain.SentimentNeutral]) / float64(total) * 100),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func orAll(source string) string {
	if source == "" {
		return "all"
	}
	return source
}
