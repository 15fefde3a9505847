package handlers

import (
	"context"
	"time"

	"github.com/dhima/attendance-ledger/internal/models"
)

// CheckInRecorder records attendance for a check-in request.
type CheckInRecorder interface {
	CheckIn(ctx context.Context, req models.CheckInRequest) ([]models.AttendeeOutcome, error)
}

// StatsQuerier answers attendance aggregation queries.
type StatsQuerier interface {
	Now() time.Time
	Percentage(ctx context.Context, member string) (models.PercentageResult, error)
	TimeWindowedStats(ctx context.Context, member string, now time.Time) (models.WindowedStats, error)
	LeaderboardReport(ctx context.Context, now time.Time) (models.LeaderboardResponse, error)
}

// LedgerSummarizer reports ledger size for the metrics endpoint.
type LedgerSummarizer interface {
	Summary(ctx context.Context) (models.LedgerSummary, error)
}

// SessionRegistry toggles and reports check-in scopes.
type SessionRegistry interface {
	Activate(scope string) bool
	Deactivate(scope string) bool
	IsActive(scope string) bool
	Active() []string
}
