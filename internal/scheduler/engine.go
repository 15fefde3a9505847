// Package scheduler publishes a periodic leaderboard digest on a cron schedule.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dhima/attendance-ledger/internal/models"
	"github.com/dhima/attendance-ledger/internal/stats"
	"github.com/dhima/attendance-ledger/pkg/clock"
	platformEvents "github.com/dhima/attendance-ledger/platform/events"
	"go.uber.org/zap"
)

// digestKey partitions all digests together.
const digestKey = "leaderboard"

// LeaderboardReporter computes the leaderboard snapshot.
type LeaderboardReporter interface {
	LeaderboardReport(ctx context.Context, now time.Time) (models.LeaderboardResponse, error)
}

// DigestPublisher emits the digest message.
type DigestPublisher interface {
	Publish(ctx context.Context, env platformEvents.Envelope) error
}

// Schedule is a cron expression evaluated in a timezone.
type Schedule struct {
	Cron     string
	Timezone string
}

// Engine polls on a fixed tick and publishes a digest whenever the cron
// schedule comes due.
type Engine struct {
	tick      time.Duration
	schedule  Schedule
	reporter  LeaderboardReporter
	publisher DigestPublisher
	logger    *zap.Logger
	clock     clock.Clock

	nextFire time.Time
}

// NewEngine constructs a digest scheduler with the provided polling cadence.
func NewEngine(tick time.Duration, schedule Schedule, reporter LeaderboardReporter, publisher DigestPublisher, logger *zap.Logger) (*Engine, error) {
	return NewEngineWithClock(tick, schedule, reporter, publisher, logger, clock.RealClock{})
}

// NewEngineWithClock is NewEngine with an injected clock.
func NewEngineWithClock(tick time.Duration, schedule Schedule, reporter LeaderboardReporter, publisher DigestPublisher, logger *zap.Logger, clk clock.Clock) (*Engine, error) {
	if tick <= 0 {
		return nil, fmt.Errorf("poll interval must be positive, got %s", tick)
	}
	next, err := CalculateNextFireTime(schedule.Cron, schedule.Timezone, clk.Now())
	if err != nil {
		return nil, fmt.Errorf("digest schedule: %w", err)
	}
	return &Engine{
		tick:      tick,
		schedule:  schedule,
		reporter:  reporter,
		publisher: publisher,
		logger:    logger.With(zap.String("component", "digest-scheduler")),
		clock:     clk,
		nextFire:  next,
	}, nil
}

// NextFire reports when the next digest is due.
func (e *Engine) NextFire() time.Time {
	return e.nextFire
}

// Run begins the polling loop and blocks until ctx is done.
func (e *Engine) Run(ctx context.Context) error {
	e.logger.Info("digest scheduler started",
		zap.String("cron", e.schedule.Cron),
		zap.String("timezone", e.schedule.Timezone),
		zap.Duration("tick", e.tick),
		zap.Time("next_fire", e.nextFire),
	)

	ticker := time.NewTicker(e.tick)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			e.poll(ctx)
		case <-ctx.Done():
			e.logger.Info("digest scheduler stopped")
			return ctx.Err()
		}
	}
}

// poll fires the digest if due and advances the schedule. A failed digest
// is not retried; the next one is scheduled regardless.
func (e *Engine) poll(ctx context.Context) {
	now := e.clock.Now()
	if now.Before(e.nextFire) {
		return
	}

	if err := e.processDigest(ctx, now); err != nil {
		e.logger.Error("leaderboard digest failed",
			zap.Time("scheduled_for", e.nextFire),
			zap.Error(err),
		)
	}

	next, err := CalculateNextFireTime(e.schedule.Cron, e.schedule.Timezone, now)
	if err != nil {
		// Validated at construction; only reachable if tz data disappears.
		e.logger.Error("failed to compute next digest time", zap.Error(err))
		return
	}
	e.nextFire = next
}

// processDigest computes the leaderboard and publishes it. An empty ledger
// skips the digest without error.
func (e *Engine) processDigest(ctx context.Context, now time.Time) error {
	report, err := e.reporter.LeaderboardReport(ctx, now)
	if errors.Is(err, stats.ErrNoEventsRecorded) {
		e.logger.Info("no events recorded, skipping leaderboard digest")
		return nil
	}
	if err != nil {
		return fmt.Errorf("compute leaderboard: %w", err)
	}

	env := platformEvents.NewEnvelope(platformEvents.TypeLeaderboardDigest, digestKey, now, platformEvents.LeaderboardDigestPayload{
		TotalEvents: report.TotalEvents,
		Entries:     report.Entries,
	})
	if err := e.publisher.Publish(ctx, env); err != nil {
		return fmt.Errorf("publish digest: %w", err)
	}

	e.logger.Info("leaderboard digest published",
		zap.String("event_id", env.EventID),
		zap.Int("total_events", report.TotalEvents),
		zap.Int("members", len(report.Entries)),
	)
	return nil
}
