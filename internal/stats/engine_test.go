package stats

import (
	"context"
	"testing"
	"time"

	"github.com/dhima/attendance-ledger/internal/ledger"
	"github.com/dhima/attendance-ledger/internal/logging"
	"github.com/dhima/attendance-ledger/internal/models"
	"github.com/dhima/attendance-ledger/internal/testutil/fakes"
	"github.com/dhima/attendance-ledger/pkg/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(src *fakes.FakeRowSource, now time.Time) *Engine {
	adapter := ledger.NewAdapter(src, logging.NewNoOpLogger())
	return NewEngineWithClock(adapter, logging.NewNoOpLogger(), clock.NewFixed(now))
}

func TestEngine_Percentage_WhenStoreFails_ThenStoreUnavailable(t *testing.T) {
	// Arrange
	src := fakes.NewFakeRowSource()
	src.ReadErr = fakes.ErrUnavailable
	engine := newTestEngine(src, time.Now())

	// Act
	_, err := engine.Percentage(context.Background(), "Alice")

	// Assert
	assert.ErrorIs(t, err, ledger.ErrStoreUnavailable)
}

func TestEngine_Percentage_WhenLedgerEmpty_ThenNoEventsRecorded(t *testing.T) {
	engine := newTestEngine(fakes.NewFakeRowSource(), time.Now())

	_, err := engine.Percentage(context.Background(), "Alice")

	assert.ErrorIs(t, err, ErrNoEventsRecorded)
}

func TestEngine_Queries_WhenLedgerPopulated_ThenReadThroughAdapter(t *testing.T) {
	// Arrange
	now := time.Date(2025, 11, 20, 12, 0, 0, 0, time.UTC)
	src := fakes.NewFakeRowSourceFromRecords(
		rec("E1", "Alice", "2025-11-19 09:00:00"),
		rec("E2", "Bob", "2025-11-19 10:00:00"),
		rec("E2", "Alice", "2025-09-01 10:00:00"),
	)
	engine := newTestEngine(src, now)
	ctx := context.Background()

	// Act
	pct, pctErr := engine.Percentage(ctx, "Bob")
	windowed, winErr := engine.TimeWindowedStats(ctx, "Alice", engine.Now())
	report, lbErr := engine.LeaderboardReport(ctx, engine.Now())
	summary, sumErr := engine.Summary(ctx)

	// Assert
	require.NoError(t, pctErr)
	require.NoError(t, winErr)
	require.NoError(t, lbErr)
	require.NoError(t, sumErr)

	assert.Equal(t, 50.0, pct.Percent)
	assert.Equal(t, models.WindowedStats{Member: "Alice", TotalEvents: 2, Attended: 2, Last15Days: 1, ThisMonth: 1}, windowed)
	assert.Equal(t, 2, report.TotalEvents)
	assert.Equal(t, now, report.GeneratedAt)
	require.Len(t, report.Entries, 2)
	assert.Equal(t, "Alice", report.Entries[0].Member)
	assert.Equal(t, models.LedgerSummary{Rows: 3, DistinctEvents: 2, DistinctMembers: 2}, summary)
	assert.Equal(t, 4, src.Reads)
}

func TestEngine_Leaderboard_WhenLedgerEmpty_ThenNoEventsRecorded(t *testing.T) {
	engine := newTestEngine(fakes.NewFakeRowSource(), time.Now())

	entries, err := engine.Leaderboard(context.Background(), time.Now())

	assert.ErrorIs(t, err, ErrNoEventsRecorded)
	assert.Empty(t, entries)
}

func TestEngine_TimeWindowedStats_WhenLedgerEmpty_ThenZeroCounts(t *testing.T) {
	engine := newTestEngine(fakes.NewFakeRowSource(), time.Now())

	stats, err := engine.TimeWindowedStats(context.Background(), "Alice", time.Now())

	require.NoError(t, err)
	assert.Zero(t, stats.TotalEvents)
}
