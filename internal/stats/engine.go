// Package stats turns the flat attendance ledger into percentages,
// time-windowed counts and a ranked leaderboard.
package stats

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dhima/attendance-ledger/internal/logging"
	"github.com/dhima/attendance-ledger/internal/models"
	"github.com/dhima/attendance-ledger/pkg/clock"
	"go.uber.org/zap"
)

// LedgerReader is the read side of the ledger adapter.
type LedgerReader interface {
	ReadAll(ctx context.Context) ([]models.AttendanceRecord, error)
}

// Engine reads the full ledger on every query and aggregates in memory.
type Engine struct {
	reader LedgerReader
	clock  clock.Clock
	logger logging.Logger
}

// NewEngine creates an engine using the real clock.
func NewEngine(reader LedgerReader, logger logging.Logger) *Engine {
	return NewEngineWithClock(reader, logger, clock.RealClock{})
}

// NewEngineWithClock creates an engine with an injected clock.
func NewEngineWithClock(reader LedgerReader, logger logging.Logger, clk clock.Clock) *Engine {
	return &Engine{
		reader: reader,
		clock:  clk,
		logger: logger.With(zap.String("service", "stats")),
	}
}

// Now returns the engine's notion of the current time.
func (e *Engine) Now() time.Time {
	return e.clock.Now()
}

// Percentage returns member's attendance rate.
func (e *Engine) Percentage(ctx context.Context, member string) (models.PercentageResult, error) {
	records, err := e.read(ctx)
	if err != nil {
		return models.PercentageResult{Member: member}, err
	}
	return ComputePercentage(records, member)
}

// TimeWindowedStats returns member's attendance counts relative to now.
func (e *Engine) TimeWindowedStats(ctx context.Context, member string, now time.Time) (models.WindowedStats, error) {
	records, err := e.read(ctx)
	if err != nil {
		return models.WindowedStats{Member: member}, err
	}
	return ComputeWindowedStats(records, member, now), nil
}

// Leaderboard returns all members ranked by attendance percentage.
func (e *Engine) Leaderboard(ctx context.Context, now time.Time) ([]models.LeaderboardEntry, error) {
	report, err := e.LeaderboardReport(ctx, now)
	return report.Entries, err
}

// LeaderboardReport is Leaderboard with its denominator and generation time.
func (e *Engine) LeaderboardReport(ctx context.Context, now time.Time) (models.LeaderboardResponse, error) {
	report := models.LeaderboardResponse{GeneratedAt: now.UTC()}
	records, err := e.read(ctx)
	if err != nil {
		return report, err
	}
	entries, total, err := ComputeLeaderboard(records)
	if err != nil {
		if errors.Is(err, ErrNoEventsRecorded) {
			e.logger.Info("leaderboard requested on empty ledger")
		}
		return report, err
	}
	report.Entries = entries
	report.TotalEvents = total
	return report, nil
}

// Summary describes the ledger's size.
func (e *Engine) Summary(ctx context.Context) (models.LedgerSummary, error) {
	records, err := e.read(ctx)
	if err != nil {
		return models.LedgerSummary{}, err
	}
	return Summarize(records), nil
}

func (e *Engine) read(ctx context.Context) ([]models.AttendanceRecord, error) {
	records, err := e.reader.ReadAll(ctx)
	if err != nil {
		e.logger.Error("failed to read ledger", zap.Error(err))
		return nil, fmt.Errorf("read ledger: %w", err)
	}
	return records, nil
}
