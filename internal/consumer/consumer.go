package consumer

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"sentiment_pipeline/internal/domain"
)

// Handler processes one decoded post message. A non-nil error leaves
// the message unacknowledged so the broker redelivers it.
type Handler interface {
	Process(ctx context.Context, msg domain.PostMessage) error
}

type Config struct {
	Stream       string
	Group        string
	BatchSize    int
	BlockTimeout time.Duration
}

// Consumer pulls undelivered messages from a Redis stream under a
// named consumer group and acknowledges each one only after the
// handler succeeds.
type Consumer struct {
	client       redis.UniversalClient
	handler      Handler
	stream       string
	group        string
	name         string
	batchSize    int64
	blockTimeout time.Duration
	logger       *slog.Logger
}

func New(client redis.UniversalClient, handler Handler, cfg Config, logger *slog.Logger) *Consumer {
	name := "worker-" + uuid.NewString()[:8]
	return &Consumer{
		client:       client,
		handler:      handler,
		stream:       cfg.Stream,
		group:        cfg.Group,
		name:         name,
		batchSize:    int64(cfg.BatchSize),
		blockTimeout: cfg.BlockTimeout,
		logger:       logger.With("stream", cfg.Stream, "group", cfg.Group, "consumer", name),
	}
}

// Name returns the consumer's identity within its group.
func (c *Consumer) Name() string {
	return c.name
}

// EnsureGroup creates the consumer group if it does not exist yet.
// A group that already exists is not an error.
func (c *Consumer) EnsureGroup(ctx context.Context) error {
	err := c.client.XGroupCreateMkStream(ctx, c.stream, c.group, "$").Err()
	if err != nil && !strings.Contains(err.Error(), "BUSYGROUP") {
		return fmt.Errorf("create consumer group: %w", err)
	}
	return nil
}

// Run polls for newly-visible messages and processes each fetched batch
// concurrently. It returns only when ctx is cancelled.
func (c *Consumer) Run(ctx context.Context) error {
	if err := c.EnsureGroup(ctx); err != nil {
		return err
	}

	c.logger.Info("consumer started", "batch_size", c.batchSize, "block_timeout", c.blockTimeout)

	for {
		select {
		case <-ctx.Done():
			c.logger.Info("consumer stopped")
			return ctx.Err()
		default:
		}

		streams, err := c.client.XReadGroup(ctx, &redis.XReadGroupArgs{
			Group:    c.group,
			Consumer: c.name,
			Streams:  []string{c.stream, ">"},
			Count:    c.batchSize,
			Block:    c.blockTimeout,
		}).Result()
		if err == redis.Nil {
			continue
		}
		if err != nil {
			if ctx.Err() != nil {
				c.logger.Info("consumer stopped")
				return ctx.Err()
			}
			c.logger.Error("read stream failed", "error", err)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(time.Second):
			}
			continue
		}

		for _, stream := range streams {
			c.processBatch(ctx, stream.Messages)
		}
	}
}

// Messages within a batch are independent posts; no ordering is
// guaranteed or needed across them.
func (c *Consumer) processBatch(ctx context.Context, messages []redis.XMessage) {
	var wg sync.WaitGroup
	for _, m := range messages {
		wg.Add(1)
		go func(m redis.XMessage) {
			defer wg.Done()
			c.processMessage(ctx, m)
		}(m)
	}
	wg.Wait()
}

func (c *Consumer) processMessage(ctx context.Context, m redis.XMessage) {
	msg, err := decodeMessage(m)
	if err != nil {
		c.logger.Error("decode message failed", "message_id", m.ID, "error", err)
		return
	}

	if err := c.handler.Process(ctx, msg); err != nil {
		c.logger.Error("process message failed", "message_id", m.ID, "post_id", msg.PostID, "error", err)
		return
	}

	if err := c.client.XAck(ctx, c.stream, c.group, m.ID).Err(); err != nil {
		c.logger.Error("ack failed", "message_id", m.ID, "error", err)
		return
	}

	c.logger.Debug("message processed", "message_id", m.ID, "post_id", msg.PostID)
}

func decodeMessage(m redis.XMessage) (domain.PostMessage, error) {
	content, ok := stringField(m, "content")
	if !ok {
		return domain.PostMessage{}, fmt.Errorf("missing content field")
	}

	postID, _ := stringField(m, "post_id")
	source, _ := stringField(m, "source")
	author, _ := stringField(m, "author")
	createdAt, _ := stringField(m, "created_at")

	return domain.PostMessage{
		PostID:    postID,
		Source:    source,
		Content:   content,
		Author:    author,
		CreatedAt: createdAt,
	}, nil
}

func stringField(m redis.XMessage, key string) (string, bool) {
	v, ok := m.Values[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}
