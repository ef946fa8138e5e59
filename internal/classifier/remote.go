package classifier

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"golang.org/x/sync/errgroup"

	"sentiment_pipeline/internal/config"
	"sentiment_pipeline/internal/domain"
)

const (
	// Remote prompts embed at most this many characters of post text.
	remoteInputLimit = 2000
	// The chat backend exposes no calibrated probability, so every
	// remote verdict carries this fixed confidence.
	remoteConfidence = 0.85

	remoteTemperature = 0.3
	remoteMaxTokens   = 50
)

// Remote classifies via an OpenAI-compatible chat-completion endpoint
// and keyword-parses the free-text reply.
type Remote struct {
	client openai.Client
	apiKey string
	model  string
	logger *slog.Logger
}

func NewRemote(cfg config.ClassifierConfig, logger *slog.Logger) *Remote {
	client := openai.NewClient(
		option.WithAPIKey(cfg.APIKey),
		option.WithBaseURL(cfg.APIBaseURL),
		option.WithRequestTimeout(cfg.RequestTimeout),
	)
	return &Remote{
		client: client,
		apiKey: cfg.APIKey,
		model:  cfg.RemoteModel,
		logger: logger.With("classifier", TypeRemote, "model", cfg.RemoteModel),
	}
}

func (r *Remote) ClassifySentiment(ctx context.Context, text string) (domain.SentimentResult, error) {
	if text == "" {
		return domain.SentimentResult{
			Label:      domain.SentimentNeutral,
			Confidence: 0.0,
			ModelName:  ModelNameNone,
		}, nil
	}

	content, err := r.complete(ctx, text, TaskSentiment)
	if err != nil {
		return domain.SentimentResult{}, err
	}

	// Keyword priority is part of the contract: positive is checked
	// before negative, anything else is neutral.
	label := domain.SentimentNeutral
	if strings.Contains(content, domain.SentimentPositive) {
		label = domain.SentimentPositive
	} else if strings.Contains(content, domain.SentimentNegative) {
		label = domain.SentimentNegative
	}

	return domain.SentimentResult{
		Label:      label,
		Confidence: remoteConfidence,
		ModelName:  r.model,
	}, nil
}

func (r *Remote) ClassifyEmotion(ctx context.Context, text string) (domain.EmotionResult, error) {
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

	content, err := r.complete(ctx, text, TaskEmotion)
	if err != nil {
		return domain.EmotionResult{}, err
	}

	// First vocabulary term found in the reply wins.
	detected := "neutral"
	for _, emotion := range EmotionVocabulary {
		if strings.Contains(content, emotion) {
			detected = emotion
			break
		}
	}

	return domain.EmotionResult{
		Emotion:    detected,
		Confidence: remoteConfidence,
		ModelName:  r.model,
	}, nil
}

// ClassifyBatch fans the texts out concurrently; the backend has no
// native batch call. Result order matches input order.
func (r *Remote) ClassifyBatch(ctx context.Context, texts []string) ([]domain.SentimentResult, error) {
	results := make([]domain.SentimentResult, len(texts))
	if len(texts) == 0 {
		return results, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	for i, text := range texts {
		g.Go(func() error {
			res, err := r.ClassifySentiment(gctx, text)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (r *Remote) complete(ctx context.Context, text, task string) (string, error) {
	if r.apiKey == "" {
		return "", fmt.Errorf("%w: api key not configured", ErrUpstreamUnavailable)
	}

	prompt, err := BuildPrompt(truncate(text, remoteInputLimit), task)
	if err != nil {
		return "", err
	}

	resp, err := r.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(r.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(prompt),
		},
		Temperature: openai.Float(remoteTemperature),
		MaxTokens:   openai.Int(remoteMaxTokens),
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion: empty response")
	}

	content := strings.ToLower(strings.TrimSpace(resp.Choices[0].Message.Content))
	r.logger.Debug("remote reply", "task", task, "content", content)
	return content, nil
}
