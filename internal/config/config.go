package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Database   DatabaseConfig   `yaml:"database"`
	Redis      RedisConfig      `yaml:"redis"`
	Stream     StreamConfig     `yaml:"stream"`
	Classifier ClassifierConfig `yaml:"classifier"`
	Alert      AlertConfig      `yaml:"alert"`
	LogLevel   string           `yaml:"log_level"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type StreamConfig struct {
	Name         string        `yaml:"name"`
	Group        string        `yaml:"group"`
	BatchSize    int           `yaml:"batch_size"`
	BlockTimeout time.Duration `yaml:"block_timeout"`
}

// ClassifierConfig selects and configures a classification backend.
// Type is a closed tag: "local" or "remote".
type ClassifierConfig struct {
	Type           string        `yaml:"type"`
	SentimentModel string        `yaml:"sentiment_model"`
	EmotionModel   string        `yaml:"emotion_model"`
	APIKey         string        `yaml:"api_key"`
	APIBaseURL     string        `yaml:"api_base_url"`
	RemoteModel    string        `yaml:"remote_model"`
	RequestTimeout time.Duration `yaml:"request_timeout"`
}

type AlertConfig struct {
	NegativeRatioThreshold float64       `yaml:"negative_ratio_threshold"`
	WindowMinutes          int           `yaml:"window_minutes"`
	MinPosts               int           `yaml:"min_posts"`
	CheckInterval          time.Duration `yaml:"check_interval"`
}

func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.setDefaults()

	return &cfg, nil
}

func (c *Config) setDefaults() {
	if c.Database.Port == 0 {
		c.Database.Port = 5432
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Stream.BatchSize == 0 {
		c.Stream.BatchSize = 10
	}
	if c.Stream.BlockTimeout == 0 {
		c.Stream.BlockTimeout = 5 * time.Second
	}
	if c.Classifier.Type == "" {
		c.Classifier.Type = "local"
	}
	if c.Classifier.SentimentModel == "" {
		c.Classifier.SentimentModel = "sentiment-lexicon-en-v1"
	}
	if c.Classifier.EmotionModel == "" {
		c.Classifier.EmotionModel = "emotion-lexicon-en-v1"
	}
	if c.Classifier.APIBaseURL == "" {
		c.Classifier.APIBaseURL = "https://api.groq.com/openai/v1"
	}
	if c.Classifier.RemoteModel == "" {
		c.Classifier.RemoteModel = "llama-3.1-8b-instant"
	}
	if c.Classifier.RequestTimeout == 0 {
		c.Classifier.RequestTimeout = 30 * time.Second
	}
	if c.Alert.NegativeRatioThreshold == 0 {
		c.Alert.NegativeRatioThreshold = 2.0
	}
	if c.Alert.WindowMinutes == 0 {
		c.Alert.WindowMinutes = 5
	}
	if c.Alert.MinPosts == 0 {
		c.Alert.MinPosts = 10
	}
	if c.Alert.CheckInterval == 0 {
		c.Alert.CheckInterval = 60 * time.Second
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

// ValidateWorker checks settings the worker entry point cannot run
// without. Absence is a fatal startup error, there are no defaults.
func (c *Config) ValidateWorker() error {
	if c.Database.Host == "" || c.Database.DBName == "" {
		return fmt.Errorf("database host and dbname are required")
	}
	if c.Redis.Addr == "" {
		return fmt.Errorf("redis address is required")
	}
	if c.Stream.Name == "" {
		return fmt.Errorf("stream name is required")
	}
	if c.Stream.Group == "" {
		return fmt.Errorf("consumer group is required")
	}
	return nil
}
