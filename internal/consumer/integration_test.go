//go:build integration

package consumer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"

	"sentiment_pipeline/internal/domain"
)

// countingHandler tracks processed post ids and can fail a configured
// set of them.
type countingHandler struct {
	mu        sync.Mutex
	failing   map[string]bool
	processed map[string]int
}

func newCountingHandler() *countingHandler {
	return &countingHandler{
		failing:   make(map[string]bool),
		processed: make(map[string]int),
	}
}

func (h *countingHandler) Process(_ context.Context, msg domain.PostMessage) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.failing[msg.PostID] {
		return errors.New("handler failure")
	}
	h.processed[msg.PostID]++
	return nil
}

func (h *countingHandler) count(postID string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.processed[postID]
}

func (h *countingHandler) total() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	n := 0
	for _, c := range h.processed {
		n += c
	}
	return n
}

type RedisIntegrationSuite struct {
	suite.Suite
	ctx       context.Context
	container *tcredis.RedisContainer
	client    *redis.Client
}

func (s *RedisIntegrationSuite) SetupSuite() {
	s.ctx = context.Background()

	container, err := tcredis.Run(s.ctx, "redis:7-alpine")
	s.Require().NoError(err)
	s.container = container

	uri, err := container.ConnectionString(s.ctx)
	s.Require().NoError(err)

	opts, err := redis.ParseURL(uri)
	s.Require().NoError(err)
	s.client = redis.NewClient(opts)
}

func (s *RedisIntegrationSuite) TearDownSuite() {
	if s.client != nil {
		_ = s.client.Close()
	}
	if s.container != nil {
		_ = s.container.Terminate(s.ctx)
	}
}

func (s *RedisIntegrationSuite) SetupTest() {
	s.Require().NoError(s.client.FlushAll(s.ctx).Err())
}

func TestRedisIntegrationSuite(t *testing.T) {
	suite.Run(t, new(RedisIntegrationSuite))
}

func (s *RedisIntegrationSuite) newConsumer(handler Handler) *Consumer {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(s.client, handler, Config{
		Stream:       "social_posts",
		Group:        "sentiment_workers",
		BatchSize:    10,
		BlockTimeout: 200 * time.Millisecond,
	}, logger)
}

func (s *RedisIntegrationSuite) publish(postID string) {
	err := s.client.XAdd(s.ctx, &redis.XAddArgs{
		Stream: "social_posts",
		Values: map[string]interface{}{
			"post_id":    postID,
			"source":     "twitter",
			"content":    "content for " + postID,
			"author":     "author",
			"created_at": "2026-08-30T12:00:00+00:00Z",
		},
	}).Err()
	s.Require().NoError(err)
}

func (s *RedisIntegrationSuite) pendingCount() int64 {
	pending, err := s.client.XPending(s.ctx, "social_posts", "sentiment_workers").Result()
	s.Require().NoError(err)
	return pending.Count
}

func (s *RedisIntegrationSuite) runUntil(cons *Consumer, condition func() bool) {
	ctx, cancel := context.WithCancel(s.ctx)
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = cons.Run(ctx)
	}()

	deadline := time.Now().Add(10 * time.Second)
	for time.Now().Before(deadline) {
		if condition() {
			break
		}
		time.Sleep(50 * time.Millisecond)
	}
	cancel()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		s.Fail("consumer did not stop after cancel")
	}
}

func (s *RedisIntegrationSuite) TestRun_ProcessesAndAcks() {
	handler := newCountingHandler()
	cons := s.newConsumer(handler)

	// The group tails the stream, so it must exist before publishing.
	s.Require().NoError(cons.EnsureGroup(s.ctx))
	for i := 0; i < 5; i++ {
		s.publish(fmt.Sprintf("post-%d", i))
	}

	s.runUntil(cons, func() bool { return handler.total() >= 5 })

	s.Equal(5, handler.total())
	s.Equal(int64(0), s.pendingCount())
}

func (s *RedisIntegrationSuite) TestRun_FailedMessagesStayPending() {
	handler := newCountingHandler()
	handler.failing["post-bad"] = true
	cons := s.newConsumer(handler)

	s.Require().NoError(cons.EnsureGroup(s.ctx))
	s.publish("post-good")
	s.publish("post-bad")

	s.runUntil(cons, func() bool {
		return handler.count("post-good") >= 1 && s.pendingCount() >= 1
	})

	s.Equal(1, handler.count("post-good"))
	s.Equal(0, handler.count("post-bad"))
	s.Equal(int64(1), s.pendingCount())
}

func (s *RedisIntegrationSuite) TestRun_PendingMessageRedeliveredToClaimer() {
	handler := newCountingHandler()
	handler.failing["post-retry"] = true
	cons := s.newConsumer(handler)

	s.Require().NoError(cons.EnsureGroup(s.ctx))
	s.publish("post-retry")

	s.runUntil(cons, func() bool { return s.pendingCount() == 1 })
	s.Require().Equal(int64(1), s.pendingCount())

	// Once the failure cause clears, claiming the pending entry and
	// processing it again drains the backlog.
	handler.mu.Lock()
	handler.failing["post-retry"] = false
	handler.mu.Unlock()

	claimed, _, err := s.client.XAutoClaim(s.ctx, &redis.XAutoClaimArgs{
		Stream:   "social_posts",
		Group:    "sentiment_workers",
		Consumer: cons.Name(),
		MinIdle:  0,
		Start:    "0-0",
	}).Result()
	s.Require().NoError(err)
	s.Require().Len(claimed, 1)

	cons.processMessage(s.ctx, claimed[0])

	s.Equal(1, handler.count("post-retry"))
	s.Equal(int64(0), s.pendingCount())
}
