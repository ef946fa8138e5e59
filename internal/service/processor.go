package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"sentiment_pipeline/internal/domain"
)

// ClassifierFactory builds the classifier on first use so a worker that
// never receives traffic never pays the model load cost.
type ClassifierFactory func() (Classifier, error)

// Processor turns one decoded queue message into a stored post plus
// analysis row. Any returned error means the message must stay
// unacknowledged and be redelivered by the broker.
type Processor struct {
	newClassifier ClassifierFactory
	posts         PostStore
	analyses      AnalysisStore
	txManager     TransactionManager
	logger        *slog.Logger

	mu         sync.Mutex
	classifier Classifier
}

func NewProcessor(
	newClassifier ClassifierFactory,
	posts PostStore,
	analyses AnalysisStore,
	txManager TransactionManager,
	logger *slog.Logger,
) *Processor {
	return &Processor{
		newClassifier: newClassifier,
		posts:         posts,
		analyses:      analyses,
		txManager:     txManager,
		logger:        logger,
	}
}

func (p *Processor) getClassifier() (Classifier, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.classifier == nil {
		c, err := p.newClassifier()
		if err != nil {
			return nil, fmt.Errorf("initialize classifier: %w", err)
		}
		p.classifier = c
		p.logger.Info("classifier initialized")
	}
	return p.classifier, nil
}

func (p *Processor) Process(ctx context.Context, msg domain.PostMessage) error {
	post, err := decodePost(msg)
	if err != nil {
		return fmt.Errorf("decode post: %w", err)
	}

	clf, err := p.getClassifier()
	if err != nil {
		return err
	}

	sentiment, err := clf.ClassifySentiment(ctx, msg.Content)
	if err != nil {
		return fmt.Errorf("classify sentiment: %w", err)
	}
	emotion, err := clf.ClassifyEmotion(ctx, msg.Content)
	if err != nil {
		return fmt.Errorf("classify emotion: %w", err)
	}

	if err := p.save(ctx, post, sentiment, emotion); err != nil {
		return fmt.Errorf("save analysis: %w", err)
	}
	return nil
}

// save is the upsert-plus-insert unit: both writes commit together or
// neither is visible.
func (p *Processor) save(ctx context.Context, post *domain.Post, sentiment domain.SentimentResult, emotion domain.EmotionResult) error {
	return p.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := p.posts.Upsert(txCtx, post); err != nil {
			return fmt.Errorf("upsert post: %w", err)
		}

		analysis := &domain.SentimentAnalysis{
			PostID:          post.PostID,
			ModelName:       sentiment.ModelName,
			SentimentLabel:  sentiment.Label,
			ConfidenceScore: sentiment.Confidence,
			Emotion:         &emotion.Emotion,
		}
		if err := p.analyses.Insert(txCtx, analysis); err != nil {
			return fmt.Errorf("insert analysis: %w", err)
		}
		return nil
	})
}

func decodePost(msg domain.PostMessage) (*domain.Post, error) {
	if msg.PostID == "" {
		return nil, fmt.Errorf("missing post_id")
	}

	createdAt, err := parseCreatedAt(msg.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("parse created_at %q: %w", msg.CreatedAt, err)
	}

	return &domain.Post{
		PostID:    msg.PostID,
		Source:    msg.Source,
		Content:   msg.Content,
		Author:    msg.Author,
		CreatedAt: createdAt,
	}, nil
}

// The ingester appends a literal 'Z' after an isoformat timestamp that
// may already carry a +00:00 offset. Trailing 'Z' runes are stripped
// before parsing rather than read as a UTC designator; a malformed
// string without the suffix passes to the parser unmodified.
func parseCreatedAt(value string) (time.Time, error) {
	trimmed := strings.TrimRight(value, "Z")

	layouts := []string{
		time.RFC3339Nano,
		"2006-01-02T15:04:05.999999999",
		"2006-01-02 15:04:05.999999999",
	}

	var err error
	for _, layout := range layouts {
		var t time.Time
		if t, err = time.Parse(layout, trimmed); err == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}
