package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"sentiment_pipeline/internal/domain"
	"sentiment_pipeline/internal/service/mocks"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type ProcessorSuite struct {
	suite.Suite
	ctx context.Context

	ctrl      *gomock.Controller
	clf       *mocks.MockClassifier
	posts     *mocks.MockPostStore
	analyses  *mocks.MockAnalysisStore
	txManager *mocks.MockTransactionManager

	factoryCalls int
	processor    *Processor
}

func (s *ProcessorSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.clf = mocks.NewMockClassifier(s.ctrl)
	s.posts = mocks.NewMockPostStore(s.ctrl)
	s.analyses = mocks.NewMockAnalysisStore(s.ctrl)
	s.txManager = mocks.NewMockTransactionManager(s.ctrl)

	s.factoryCalls = 0
	factory := func() (Classifier, error) {
		s.factoryCalls++
		return s.clf, nil
	}
	s.processor = NewProcessor(factory, s.posts, s.analyses, s.txManager, testLogger())
}

func TestProcessorSuite(t *testing.T) {
	suite.Run(t, new(ProcessorSuite))
}

// passthroughTx runs the transactional closure against the same context,
// standing in for a real transaction manager.
func (s *ProcessorSuite) passthroughTx() *gomock.Call {
	return s.txManager.EXPECT().
		WithTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		})
}

func (s *ProcessorSuite) message() domain.PostMessage {
	return domain.PostMessage{
		PostID:    "post-1",
		Source:    "twitter",
		Content:   "this launch is amazing",
		Author:    "alice",
		CreatedAt: "2026-08-30T12:00:00+00:00Z",
	}
}

func (s *ProcessorSuite) TestProcess_SavesPostAndAnalysis() {
	msg := s.message()

	s.clf.EXPECT().ClassifySentiment(gomock.Any(), msg.Content).
		Return(domain.SentimentResult{Label: domain.SentimentPositive, Confidence: 0.9, ModelName: "sentiment-lexicon-en-v1"}, nil)
	s.clf.EXPECT().ClassifyEmotion(gomock.Any(), msg.Content).
		Return(domain.EmotionResult{Emotion: "joy", Confidence: 0.8, ModelName: "emotion-lexicon-en-v1"}, nil)

	s.passthroughTx()

	var savedPost *domain.Post
	s.posts.EXPECT().Upsert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, post *domain.Post) error {
			savedPost = post
			return nil
		})

	var savedAnalysis *domain.SentimentAnalysis
	s.analyses.EXPECT().Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, analysis *domain.SentimentAnalysis) error {
			savedAnalysis = analysis
			return nil
		})

	s.NoError(s.processor.Process(s.ctx, msg))

	s.Require().NotNil(savedPost)
	s.Equal("post-1", savedPost.PostID)
	s.Equal("twitter", savedPost.Source)
	s.Equal("alice", savedPost.Author)
	// The stray 'Z' after the +00:00 offset must be stripped, not read
	// as a UTC designator.
	s.Equal(time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC), savedPost.CreatedAt.UTC())

	s.Require().NotNil(savedAnalysis)
	s.Equal("post-1", savedAnalysis.PostID)
	s.Equal(domain.SentimentPositive, savedAnalysis.SentimentLabel)
	s.Equal(0.9, savedAnalysis.ConfidenceScore)
	s.Equal("sentiment-lexicon-en-v1", savedAnalysis.ModelName)
	s.Require().NotNil(savedAnalysis.Emotion)
	s.Equal("joy", *savedAnalysis.Emotion)
}

func (s *ProcessorSuite) TestProcess_ClassifierBuiltOnce() {
	msg := s.message()

	s.clf.EXPECT().ClassifySentiment(gomock.Any(), gomock.Any()).
		Return(domain.SentimentResult{Label: domain.SentimentNeutral}, nil).Times(2)
	s.clf.EXPECT().ClassifyEmotion(gomock.Any(), gomock.Any()).
		Return(domain.EmotionResult{Emotion: "neutral"}, nil).Times(2)
	s.passthroughTx().Times(2)
	s.posts.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	s.analyses.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	s.NoError(s.processor.Process(s.ctx, msg))
	s.NoError(s.processor.Process(s.ctx, msg))

	s.Equal(1, s.factoryCalls)
}

func (s *ProcessorSuite) TestProcess_FactoryErrorNotCached() {
	factoryErr := errors.New("model file missing")
	calls := 0
	processor := NewProcessor(func() (Classifier, error) {
		calls++
		return nil, factoryErr
	}, s.posts, s.analyses, s.txManager, testLogger())

	s.ErrorIs(processor.Process(s.ctx, s.message()), factoryErr)
	s.ErrorIs(processor.Process(s.ctx, s.message()), factoryErr)
	s.Equal(2, calls)
}

func (s *ProcessorSuite) TestProcess_MissingPostID() {
	msg := s.message()
	msg.PostID = ""

	err := s.processor.Process(s.ctx, msg)
	s.Error(err)
	s.Contains(err.Error(), "post_id")
	s.Equal(0, s.factoryCalls)
}

func (s *ProcessorSuite) TestProcess_BadCreatedAt() {
	msg := s.message()
	msg.CreatedAt = "yesterday at noon"

	err := s.processor.Process(s.ctx, msg)
	s.Error(err)
	s.Contains(err.Error(), "created_at")
}

func (s *ProcessorSuite) TestProcess_SentimentErrorSkipsSave() {
	classifyErr := errors.New("backend down")
	s.clf.EXPECT().ClassifySentiment(gomock.Any(), gomock.Any()).
		Return(domain.SentimentResult{}, classifyErr)

	s.ErrorIs(s.processor.Process(s.ctx, s.message()), classifyErr)
}

func (s *ProcessorSuite) TestProcess_UpsertErrorRollsUp() {
	upsertErr := errors.New("connection reset")

	s.clf.EXPECT().ClassifySentiment(gomock.Any(), gomock.Any()).
		Return(domain.SentimentResult{Label: domain.SentimentNeutral}, nil)
	s.clf.EXPECT().ClassifyEmotion(gomock.Any(), gomock.Any()).
		Return(domain.EmotionResult{Emotion: "neutral"}, nil)
	s.passthroughTx()
	s.posts.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(upsertErr)

	s.ErrorIs(s.processor.Process(s.ctx, s.message()), upsertErr)
}

func TestParseCreatedAt(t *testing.T) {
	cases := []struct {
		name  string
		value string
		want  time.Time
	}{
		{
			name:  "offset plus stray z suffix",
			value: "2026-08-30T12:00:00+00:00Z",
			want:  time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
		},
		{
			name:  "plain rfc3339",
			value: "2026-08-30T12:00:00+02:00",
			want:  time.Date(2026, 8, 30, 12, 0, 0, 0, time.FixedZone("", 2*3600)),
		},
		{
			name:  "naive isoformat",
			value: "2026-08-30T12:00:00.123456",
			want:  time.Date(2026, 8, 30, 12, 0, 0, 123456000, time.UTC),
		},
		{
			name:  "space separated",
			value: "2026-08-30 12:00:00",
			want:  time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
		},
		{
			name:  "multiple trailing z runes",
			value: "2026-08-30T12:00:00+00:00ZZ",
			want:  time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := parseCreatedAt(tc.value)
			if err != nil {
				t.Fatalf("parse %q: %v", tc.value, err)
			}
			if !got.Equal(tc.want) {
				t.Fatalf("parse %q: got %v, want %v", tc.value, got, tc.want)
			}
		})
	}

	if _, err := parseCreatedAt("not a timestamp"); err == nil {
		t.Fatal("expected error for malformed timestamp")
	}
}
