package classifier

import (
	"context"
	"fmt"
	"log/slog"

	"sentiment_pipeline/internal/config"
	"sentiment_pipeline/internal/domain"
)

// Input longer than this is truncated before local inference.
const localInputLimit = 512

// Local runs the classification models in-process. Loading the models
// is cheap here, but callers still construct it lazily so workers that
// never receive traffic pay nothing.
type Local struct {
	sentiment          *lexiconModel
	emotion            *lexiconModel
	sentimentModelName string
	emotionModelName   string
	logger             *slog.Logger
}

func NewLocal(cfg config.ClassifierConfig, logger *slog.Logger) *Local {
	return &Local{
		sentiment:          defaultSentimentLexicon(),
		emotion:            defaultEmotionLexicon(),
		sentimentModelName: cfg.SentimentModel,
		emotionModelName:   cfg.EmotionModel,
		logger:             logger.With("classifier", TypeLocal),
	}
}

func (l *Local) ClassifySentiment(ctx context.Context, text string) (domain.SentimentResult, error) {
	if text == "" {
		return domain.SentimentResult{
			Label:      domain.SentimentNeutral,
			Confidence: 0.0,
			ModelName:  ModelNameNone,
		}, nil
	}

	label, score := l.sentiment.predict(truncate(text, localInputLimit))
	if label == "" {
		// No signal either way reads as neutral with an uninformative
		// probability.
		return domain.SentimentResult{
			Label:      domain.SentimentNeutral,
			Confidence: 0.5,
			ModelName:  l.sentimentModelName,
		}, nil
	}

	return domain.SentimentResult{
		Label:      foldLabel(label),
		Confidence: score,
		ModelName:  l.sentimentModelName,
	}, nil
}

func (l *Local) ClassifyEmotion(ctx context.Context, text string) (domain.EmotionResult, error) {
	if text == "" {
		return domain.EmotionResult{}, fmt.Errorf("%w: empty text", ErrInvalidInput)
	}
	if len([]rune(text)) < minEmotionLength {
		return domain.EmotionResult{
			Emotion:    domain.SentimentNeutral,
			Confidence: 1.0,
			ModelName:  ModelNameRuleBased,
		}, nil
	}

	emotion, score := l.emotion.predict(truncate(text, localInputLimit))
	if emotion == "" {
		emotion, score = "neutral", 0.5
	}

	return domain.EmotionResult{
		Emotion:    emotion,
		Confidence: score,
		ModelName:  l.emotionModelName,
	}, nil
}

// ClassifyBatch runs the whole batch through the model in one shot.
func (l *Local) ClassifyBatch(ctx context.Context, texts []string) ([]domain.SentimentResult, error) {
	results := make([]domain.SentimentResult, 0, len(texts))
	for _, text := range texts {
		r, err := l.ClassifySentiment(ctx, text)
		if err != nil {
			return nil, err
		}
		r.ModelName = "batch-local"
		results = append(results, r)
	}
	return results, nil
}
