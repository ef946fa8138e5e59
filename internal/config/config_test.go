package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, `
database:
  host: localhost
  user: app
  password: secret
  dbname: sentiment
stream:
  name: social_posts
  group: sentiment_workers
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	// The broker address has no default: the worker must refuse to
	// start rather than dial localhost.
	assert.Empty(t, cfg.Redis.Addr)
	assert.Equal(t, 10, cfg.Stream.BatchSize)
	assert.Equal(t, 5*time.Second, cfg.Stream.BlockTimeout)
	assert.Equal(t, "local", cfg.Classifier.Type)
	assert.Equal(t, "sentiment-lexicon-en-v1", cfg.Classifier.SentimentModel)
	assert.Equal(t, "emotion-lexicon-en-v1", cfg.Classifier.EmotionModel)
	assert.Equal(t, "https://api.groq.com/openai/v1", cfg.Classifier.APIBaseURL)
	assert.Equal(t, "llama-3.1-8b-instant", cfg.Classifier.RemoteModel)
	assert.Equal(t, 30*time.Second, cfg.Classifier.RequestTimeout)
	assert.Equal(t, 2.0, cfg.Alert.NegativeRatioThreshold)
	assert.Equal(t, 5, cfg.Alert.WindowMinutes)
	assert.Equal(t, 10, cfg.Alert.MinPosts)
	assert.Equal(t, 60*time.Second, cfg.Alert.CheckInterval)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_ExpandsEnvPlaceholders(t *testing.T) {
	t.Setenv("TEST_DB_HOST", "db.internal")
	t.Setenv("TEST_DB_PASSWORD", "s3cret")
	t.Setenv("TEST_CLASSIFIER_TYPE", "remote")

	path := writeConfig(t, `
database:
  host: ${TEST_DB_HOST}
  user: app
  password: ${TEST_DB_PASSWORD}
  dbname: sentiment
classifier:
  type: ${TEST_CLASSIFIER_TYPE}
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "s3cret", cfg.Database.Password)
	assert.Equal(t, "remote", cfg.Classifier.Type)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := writeConfig(t, "database: [not a mapping")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestDSN(t *testing.T) {
	dsn := DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "app",
		Password: "secret",
		DBName:   "sentiment",
		SSLMode:  "disable",
	}.DSN()

	assert.Equal(t, "host=localhost port=5432 user=app password=secret dbname=sentiment sslmode=disable", dsn)
}

func TestValidateWorker(t *testing.T) {
	valid := Config{
		Database: DatabaseConfig{Host: "localhost", DBName: "sentiment"},
		Redis:    RedisConfig{Addr: "localhost:6379"},
		Stream:   StreamConfig{Name: "social_posts", Group: "sentiment_workers"},
	}
	assert.NoError(t, valid.ValidateWorker())

	noDB := valid
	noDB.Database.Host = ""
	assert.Error(t, noDB.ValidateWorker())

	noRedis := valid
	noRedis.Redis.Addr = ""
	assert.Error(t, noRedis.ValidateWorker())

	noStream := valid
	noStream.Stream.Name = ""
	assert.Error(t, noStream.ValidateWorker())

	noGroup := valid
	noGroup.Stream.Group = ""
	assert.Error(t, noGroup.ValidateWorker())
}
