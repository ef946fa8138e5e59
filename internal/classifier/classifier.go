package classifier

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"sentiment_pipeline/internal/config"
	"sentiment_pipeline/internal/domain"
)

var (
	// ErrInvalidInput marks malformed caller arguments. Not retried.
	ErrInvalidInput = errors.New("invalid classifier input")
	// ErrUpstreamUnavailable marks a remote backend that cannot be
	// reached at all, e.g. a missing API credential.
	ErrUpstreamUnavailable = errors.New("classification backend unavailable")
)

const (
	// ModelNameNone is reported for degenerate inputs that never reach
	// a backend.
	ModelNameNone = "none"
	// ModelNameRuleBased is reported when the short-text emotion
	// shortcut answers without inference.
	ModelNameRuleBased = "rule-based"

	// Text shorter than this carries too little signal for reliable
	// emotion detection.
	minEmotionLength = 10
)

// EmotionVocabulary is the closed emotion label set. Order matters: the
// remote variant picks the first vocabulary term found in the model's
// free-text reply, so this sequence is part of the contract.
var EmotionVocabulary = []string{
	"joy", "sadness", "anger", "fear", "surprise", "disgust", "neutral",
}

// Classifier produces sentiment and emotion labels for a text.
type Classifier interface {
	ClassifySentiment(ctx context.Context, text string) (domain.SentimentResult, error)
	ClassifyEmotion(ctx context.Context, text string) (domain.EmotionResult, error)
	ClassifyBatch(ctx context.Context, texts []string) ([]domain.SentimentResult, error)
}

const (
	TypeLocal  = "local"
	TypeRemote = "remote"
)

// New selects a backend from the configured type tag.
func New(cfg config.ClassifierConfig, logger *slog.Logger) (Classifier, error) {
	switch cfg.Type {
	case TypeLocal:
		return NewLocal(cfg, logger), nil
	case TypeRemote:
		return NewRemote(cfg, logger), nil
	default:
		return nil, fmt.Errorf("%w: unknown classifier type %q", ErrInvalidInput, cfg.Type)
	}
}

// foldLabel collapses anything outside the positive/negative pair to
// neutral.
func foldLabel(label string) string {
	switch label {
	case domain.SentimentPositive, domain.SentimentNegative:
		return label
	default:
		return domain.SentimentNeutral
	}
}

func truncate(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit])
}
