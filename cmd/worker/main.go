package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"

	"sentiment_pipeline/internal/classifier"
	"sentiment_pipeline/internal/config"
	"sentiment_pipeline/internal/consumer"
	"sentiment_pipeline/internal/service"
	"sentiment_pipeline/internal/storage/postgres"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	logger := setupLogger("info")

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if err := cfg.ValidateWorker(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	logger = setupLogger(cfg.LogLevel)

	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	logger.Info("connected to database")

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		logger.Error("failed to connect to redis", "error", err)
		os.Exit(1)
	}
	logger.Info("connected to redis", "addr", cfg.Redis.Addr)

	postStore := postgres.NewPostStore(db)
	analysisStore := postgres.NewAnalysisStore(db)
	txManager := postgres.NewTransactionManager(db)

	// Classifier construction is deferred to the first processed
	// message; model load cost is paid once, and only under traffic.
	newClassifier := func() (service.Classifier, error) {
		return classifier.New(cfg.Classifier, logger)
	}

	processor := service.NewProcessor(newClassifier, postStore, analysisStore, txManager, logger)

	worker := consumer.New(redisClient, processor, consumer.Config{
		Stream:       cfg.Stream.Name,
		Group:        cfg.Stream.Group,
		BatchSize:    cfg.Stream.BatchSize,
		BlockTimeout: cfg.Stream.BlockTimeout,
	}, logger)

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	logger.Info("starting sentiment worker",
		"stream", cfg.Stream.Name,
		"group", cfg.Stream.Group,
		"classifier", cfg.Classifier.Type,
	)

	if err := worker.Run(ctx); err != nil && err != context.Canceled {
		logger.Error("worker error", "error", err)
		os.Exit(1)
	}
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(handler)
}
