package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"sentiment_pipeline/internal/config"
	"sentiment_pipeline/internal/domain"
)

const (
	alertTypeHighNegativeRatio = "high_negative_ratio"

	// Stored in place of an unbounded ratio (nonzero negatives with
	// zero positives). Never literal infinity in persisted data.
	unboundedRatioSentinel = 999.99
)

// AlertEngine evaluates the negative/positive ratio over a sliding
// window and records anomalies.
type AlertEngine struct {
	analyses AnalysisStore
	alerts   AlertStore
	cfg      config.AlertConfig
	logger   *slog.Logger
}

func NewAlertEngine(analyses AnalysisStore, alerts AlertStore, cfg config.AlertConfig, logger *slog.Logger) *AlertEngine {
	return &AlertEngine{
		analyses: analyses,
		alerts:   alerts,
		cfg:      cfg,
		logger:   logger,
	}
}

// CheckThresholds evaluates the trailing window once. A nil alert with
// a nil error is the normal "nothing to report" outcome, including the
// insufficient-sample case.
func (e *AlertEngine) CheckThresholds(ctx context.Context) (*domain.SentimentAlert, error) {
	now := time.Now().UTC()
	windowStart := now.Add(-time.Duration(e.cfg.WindowMinutes) * time.Minute)

	counts, err := e.analyses.CountsByLabelSince(ctx, windowStart, "")
	if err != nil {
		return nil, fmt.Errorf("count window labels: %w", err)
	}

	positive := counts[domain.SentimentPositive]
	negative := counts[domain.SentimentNegative]
	neutral := counts[domain.SentimentNeutral]
	total := positive + negative + neutral

	if total < e.cfg.MinPosts {
		return nil, nil
	}

	var ratio float64
	if positive == 0 {
		if negative == 0 {
			return nil, nil
		}
		ratio = unboundedRatioSentinel
	} else {
		ratio = float64(negative) / float64(positive)
	}

	if ratio <= e.cfg.NegativeRatioThreshold {
		return nil, nil
	}

	return &domain.SentimentAlert{
		AlertType:      alertTypeHighNegativeRatio,
		ThresholdValue: e.cfg.NegativeRatioThreshold,
		ActualValue:    ratio,
		WindowStart:    windowStart,
		WindowEnd:      now,
		PostCount:      total,
		TriggeredAt:    now,
		Details: domain.AlertDetails{
			PositiveCount: positive,
			NegativeCount: negative,
			NeutralCount:  neutral,
		},
	}, nil
}

// SaveAlert persists a fired alert and returns its identifier.
func (e *AlertEngine) SaveAlert(ctx context.Context, alert *domain.SentimentAlert) (int64, error) {
	return e.alerts.Insert(ctx, alert)
}

// Run is the monitoring loop: evaluate, persist and log if fired, sleep
// the check interval, repeat. A failed cycle is logged and must never
// silence future checks; the loop ends only when ctx is cancelled.
func (e *AlertEngine) Run(ctx context.Context) error {
	e.logger.Info("alert monitoring started",
		"threshold", e.cfg.NegativeRatioThreshold,
		"window_minutes", e.cfg.WindowMinutes,
		"min_posts", e.cfg.MinPosts,
		"check_interval", e.cfg.CheckInterval,
	)

	ticker := time.NewTicker(e.cfg.CheckInterval)
	defer ticker.Stop()

	e.runCheck(ctx)

	for {
		select {
		case <-ctx.Done():
			e.logger.Info("alert monitoring stopped")
			return ctx.Err()
		case <-ticker.C:
			e.runCheck(ctx)
		}
	}
}

func (e *AlertEngine) runCheck(ctx context.Context) {
	alert, err := e.CheckThresholds(ctx)
	if err != nil {
		e.logger.Error("alert check failed", "error", err)
		return
	}
	if alert == nil {
		return
	}

	id, err := e.SaveAlert(ctx, alert)
	if err != nil {
		e.logger.Error("save alert failed", "error", err)
		return
	}

	e.logger.Warn("alert triggered",
		"alert_id", id,
		"alert_type", alert.AlertType,
		"ratio", alert.ActualValue,
		"threshold", alert.ThresholdValue,
		"positive", alert.Details.PositiveCount,
		"negative", alert.Details.NegativeCount,
		"neutral", alert.Details.NeutralCount,
		"post_count", alert.PostCount,
	)
}
