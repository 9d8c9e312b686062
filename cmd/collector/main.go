package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"

	"github.com/rickgao/options-data/internal/api"
	"github.com/rickgao/options-data/internal/collector"
	"github.com/rickgao/options-data/internal/config"
	"github.com/rickgao/options-data/internal/snapshot"
	"github.com/rickgao/options-data/internal/version"
)

func main() {
	configPath := flag.String("config", "configs/collector.local.yaml", "path to config file")
	flag.Parse()

	// Set up structured logging
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	logger.Info("starting collector",
		"version", version.Version,
		"commit", version.Commit,
		"config", *configPath,
	)

	// Pick up a local .env if present; real deployments set env directly.
	_ = godotenv.Load()

	cfg, err := config.LoadWithDefaults(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if err := cfg.ValidateCollector(); err != nil {
		logger.Error("invalid config", "error", err)
		os.Exit(1)
	}

	logger.Info("configuration loaded",
		"instance_id", cfg.Instance.ID,
		"tickers", len(cfg.Collector.Tickers),
		"bucket", cfg.Storage.Bucket,
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Storage.Region))
	if err != nil {
		logger.Error("failed to load AWS config", "error", err)
		os.Exit(1)
	}
	store := snapshot.NewS3Store(s3.NewFromConfig(awsCfg), cfg.Storage.Bucket, logger)

	market := api.NewClient(
		cfg.Polygon.BaseURL,
		cfg.Polygon.APIKey,
		api.WithLogger(logger),
		api.WithTimeout(cfg.Polygon.Timeout),
		api.WithRetries(cfg.Polygon.MaxRetries, time.Second),
	)

	collectorCfg := collector.Config{
		Tickers:       cfg.Collector.Tickers,
		ContractLimit: cfg.Collector.ContractLimit,
		KeyPrefix:     cfg.Storage.KeyPrefix,
		PriceTimeout:  cfg.Collector.PriceTimeout,
		ListTimeout:   cfg.Collector.ListTimeout,
		QuoteTimeout:  cfg.Collector.QuoteTimeout,
	}

	runOnce := func(ctx context.Context) error {
		runID := uuid.NewString()
		runLogger := logger.With("run_id", runID)

		// Pacer state does not carry across runs.
		c := collector.New(
			collectorCfg,
			market,
			store,
			collector.NewIntervalPacer(cfg.Collector.TickerPause),
			collector.NewIntervalPacer(cfg.Collector.QuotePause),
			runLogger,
		)

		summary, err := c.Run(ctx)
		if err != nil {
			return err
		}

		runLogger.Info("run summary",
			"options", summary.TotalOptions,
			"snapshot_key", summary.SnapshotKey,
			"started_at", summary.StartedAt.Format(time.RFC3339),
		)
		return nil
	}

	if cfg.Collector.Schedule == "" {
		if err := runOnce(ctx); err != nil {
			logger.Error("collection run failed", "error", err)
			os.Exit(1)
		}
		logger.Info("collector finished")
		return
	}

	// Scheduled mode: run on the configured cron spec until shutdown.
	sched := cron.New()
	_, err = sched.AddFunc(cfg.Collector.Schedule, func() {
		if err := runOnce(ctx); err != nil {
			logger.Error("scheduled run failed", "error", err)
		}
	})
	if err != nil {
		logger.Error("invalid schedule", "schedule", cfg.Collector.Schedule, "error", err)
		os.Exit(1)
	}

	sched.Start()
	logger.Info("collector running on schedule", "schedule", cfg.Collector.Schedule)

	<-ctx.Done()

	logger.Info("shutting down...")
	stopCtx := sched.Stop()
	select {
	case <-stopCtx.Done():
	case <-time.After(30 * time.Second):
		logger.Warn("scheduled run did not finish before shutdown timeout")
	}

	logger.Info("collector stopped")
}
