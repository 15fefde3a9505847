package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dhima/attendance-ledger/internal/cli"
	"github.com/dhima/attendance-ledger/internal/logging"
	"github.com/dhima/attendance-ledger/internal/storage"
	"github.com/dhima/attendance-ledger/pkg/clock"
	"github.com/dhima/attendance-ledger/pkg/config"
	platformEvents "github.com/dhima/attendance-ledger/platform/events"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.FromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		return cli.ExitCommandError
	}

	// zap writes to stderr; stdout carries command output.
	logger, err := logging.NewLogger(cfg.Environment, cfg.LogLevel, "console")
	if err != nil {
		fmt.Fprintf(os.Stderr, "initialize logger: %v\n", err)
		return cli.ExitCommandError
	}
	defer func() { _ = logger.Sync() }()

	publisher := platformEvents.NewSink(cfg.Brokers(), cfg.KafkaTopic, logger.Zap())
	defer publisher.Close()

	root := cli.NewRootCommand(cli.Env{
		Open: func(ctx context.Context) (cli.Ledger, error) {
			if err := cfg.Validate(); err != nil {
				return nil, err
			}
			return storage.Open(ctx, cfg)
		},
		Publisher: publisher,
		Logger:    logger,
		Clock:     clock.RealClock{},
		JWTSecret: []byte(cfg.JWTSecret),
	})

	if err := root.ExecuteContext(ctx); err != nil {
		var exitErr *cli.ExitError
		if !errors.As(err, &exitErr) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return cli.GetExitCode(err)
	}
	return cli.ExitSuccess
}
