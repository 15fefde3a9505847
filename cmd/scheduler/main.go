package main

import (
	"context"
	"errors"
	"log"
	"os/signal"
	"syscall"

	"github.com/dhima/attendance-ledger/internal/ledger"
	"github.com/dhima/attendance-ledger/internal/logging"
	"github.com/dhima/attendance-ledger/internal/scheduler"
	"github.com/dhima/attendance-ledger/internal/stats"
	"github.com/dhima/attendance-ledger/internal/storage"
	"github.com/dhima/attendance-ledger/pkg/config"
	platformEvents "github.com/dhima/attendance-ledger/platform/events"
	"go.uber.org/zap"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	logger, err := logging.NewLogger(cfg.Environment, cfg.LogLevel, cfg.LogEncoding)
	if err != nil {
		log.Fatalf("initialize logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	backend, err := storage.Open(ctx, cfg)
	if err != nil {
		logger.Fatal("failed to open ledger backend", zap.Error(err))
	}
	defer backend.Close()

	publisher := platformEvents.NewSink(cfg.Brokers(), cfg.KafkaTopic, logger.Zap())
	defer publisher.Close()

	engine, err := scheduler.NewEngine(
		cfg.DigestPollInterval,
		scheduler.Schedule{Cron: cfg.DigestCron, Timezone: cfg.DigestTimezone},
		stats.NewEngine(ledger.NewAdapter(backend, logger), logger),
		publisher,
		logger.Zap(),
	)
	if err != nil {
		logger.Fatal("failed to configure digest scheduler", zap.Error(err))
	}

	if err := engine.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("digest scheduler exited", zap.Error(err))
	}
}
