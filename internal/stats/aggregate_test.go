package stats

import (
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/dhima/attendance-ledger/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rec(event, member, ts string) models.AttendanceRecord {
	return models.AttendanceRecord{Timestamp: ts, RecordedBy: "Host", Member: member, EvidenceRef: "img", Event: event}
}

func TestComputePercentage_WhenLedgerEmpty_ThenNoEventsRecorded(t *testing.T) {
	// Act
	_, err := ComputePercentage(nil, "Alice")

	// Assert
	assert.ErrorIs(t, err, ErrNoEventsRecorded)
}

func TestComputePercentage_WhenAttendedOneOfTwo_ThenFiftyPercent(t *testing.T) {
	// Arrange
	records := []models.AttendanceRecord{
		rec("E1", "Alice", "2025-11-01 10:00:00"),
		rec("E2", "Bob", "2025-11-02 10:00:00"),
	}

	// Act
	result, err := ComputePercentage(records, "Alice")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 1, result.Attended)
	assert.Equal(t, 2, result.Total)
	assert.InDelta(t, 50.0, result.Percent, 1e-9)
	assert.Equal(t, "50.00", fmt.Sprintf("%.2f", result.Percent))
}

func TestComputePercentage_WhenMemberDiffersInCase_ThenNotCredited(t *testing.T) {
	records := []models.AttendanceRecord{rec("E1", "Alice", "")}

	result, err := ComputePercentage(records, "alice")

	require.NoError(t, err)
	assert.Equal(t, 0, result.Attended)
	assert.Equal(t, 0.0, result.Percent)
}

func TestComputePercentage_WhenRowsIncomplete_ThenIgnored(t *testing.T) {
	records := []models.AttendanceRecord{
		rec("E1", "Alice", ""),
		rec("", "Alice", "2025-11-01 10:00:00"),
		rec("E2", "", "2025-11-01 10:00:00"),
	}

	result, err := ComputePercentage(records, "Alice")

	require.NoError(t, err)
	assert.Equal(t, 1, result.Total)
	assert.Equal(t, 100.0, result.Percent)
}

func TestComputePercentage_ForRandomLedgers_ThenBoundedAndFullIffAllEvents(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	members := []string{"Alice", "Bob", "Carol", "Dave"}

	for run := 0; run < 200; run++ {
		records := randomLedger(rng, members, 1+rng.Intn(30))
		total := DistinctEvents(records)

		for _, member := range members {
			result, err := ComputePercentage(records, member)
			require.NoError(t, err)

			assert.GreaterOrEqual(t, result.Percent, 0.0)
			assert.LessOrEqual(t, result.Percent, 100.0)
			assert.Equal(t, result.Attended == total, result.Percent == 100)
		}
	}
}

func TestComputeWindowedStats_WhenMixedTimestamps_ThenCountsByWindow(t *testing.T) {
	// Arrange
	now := time.Date(2025, 11, 20, 12, 0, 0, 0, time.UTC)
	records := []models.AttendanceRecord{
		rec("E1", "Alice", "2025-11-19 09:00:00"), // recent, this month
		rec("E2", "Alice", "2025-11-05 12:00:00"), // exactly 15 days ago, this month
		rec("E3", "Alice", "2025-11-05 11:59:59"), // just outside the window, this month
		rec("E4", "Alice", "2025-10-30 08:00:00"), // previous month, outside the window
		rec("E5", "Alice", "2024-11-10 08:00:00"), // same month, previous year
		rec("E6", "Bob", "2025-11-18 08:00:00"),
	}

	// Act
	stats := ComputeWindowedStats(records, "Alice", now)

	// Assert
	assert.Equal(t, models.WindowedStats{
		Member:      "Alice",
		TotalEvents: 6,
		Attended:    5,
		Last15Days:  2,
		ThisMonth:   3,
	}, stats)
}

func TestComputeWindowedStats_WhenTimestampUnparseable_ThenCountedInTotalOnly(t *testing.T) {
	now := time.Date(2025, 11, 20, 12, 0, 0, 0, time.UTC)
	records := []models.AttendanceRecord{
		rec("E1", "Alice", "20/11/2025"),
		rec("E2", "Alice", "2025-11-19 09:00:00"),
	}

	stats := ComputeWindowedStats(records, "Alice", now)

	assert.Equal(t, 2, stats.TotalEvents)
	assert.Equal(t, 1, stats.Attended)
	assert.Equal(t, 1, stats.Last15Days)
	assert.Equal(t, 1, stats.ThisMonth)
}

func TestComputeWindowedStats_WhenTimestampMissing_ThenRowIgnored(t *testing.T) {
	now := time.Date(2025, 11, 20, 12, 0, 0, 0, time.UTC)
	records := []models.AttendanceRecord{
		rec("E1", "Alice", ""),
		rec("E2", "Bob", "2025-11-19 09:00:00"),
	}

	stats := ComputeWindowedStats(records, "Alice", now)

	assert.Equal(t, 1, stats.TotalEvents)
	assert.Equal(t, 0, stats.Attended)
}

func TestComputeWindowedStats_WhenLedgerEmpty_ThenZeros(t *testing.T) {
	stats := ComputeWindowedStats(nil, "Alice", time.Now())

	assert.Equal(t, models.WindowedStats{Member: "Alice"}, stats)
}

func TestComputeWindowedStats_WhenNowNotUTC_ThenMonthMeasuredInUTC(t *testing.T) {
	// 2025-12-01 02:00 in UTC+5 is still November in UTC.
	loc := time.FixedZone("UTC+5", 5*60*60)
	now := time.Date(2025, 12, 1, 2, 0, 0, 0, loc)
	records := []models.AttendanceRecord{rec("E1", "Alice", "2025-11-28 10:00:00")}

	stats := ComputeWindowedStats(records, "Alice", now)

	assert.Equal(t, 1, stats.ThisMonth)
}

func TestComputeWindowedStats_ForRandomLedgers_ThenWindowsNeverExceedAttended(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	members := []string{"Alice", "Bob", "Carol"}
	now := time.Date(2025, 11, 20, 12, 0, 0, 0, time.UTC)

	for run := 0; run < 200; run++ {
		records := randomLedger(rng, members, rng.Intn(40))
		for _, member := range members {
			stats := ComputeWindowedStats(records, member, now)
			assert.LessOrEqual(t, stats.Last15Days, stats.Attended)
			assert.LessOrEqual(t, stats.ThisMonth, stats.Attended)
			assert.LessOrEqual(t, stats.Attended, stats.TotalEvents)
		}
	}
}

func TestComputeLeaderboard_WhenLedgerEmpty_ThenNoEventsRecorded(t *testing.T) {
	entries, total, err := ComputeLeaderboard([]models.AttendanceRecord{rec("", "Alice", "")})

	assert.ErrorIs(t, err, ErrNoEventsRecorded)
	assert.Nil(t, entries)
	assert.Zero(t, total)
}

func TestComputeLeaderboard_WhenTied_ThenOrderedByMemberWithDistinctRanks(t *testing.T) {
	// Arrange
	records := []models.AttendanceRecord{
		rec("E1", "Carol", ""),
		rec("E1", "Alice", ""),
		rec("E2", "Alice", ""),
		rec("E2", "Bob", ""),
		rec("E1", "Dave", ""),
		rec("E2", "Dave", ""),
	}

	// Act
	entries, total, err := ComputeLeaderboard(records)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Equal(t, []models.LeaderboardEntry{
		{Rank: 1, Member: "Alice", Attended: 2, Percent: 100},
		{Rank: 2, Member: "Dave", Attended: 2, Percent: 100},
		{Rank: 3, Member: "Bob", Attended: 1, Percent: 50},
		{Rank: 4, Member: "Carol", Attended: 1, Percent: 50},
	}, entries)
}

func TestComputeLeaderboard_WhenInputShuffled_ThenOutputIdentical(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	records := randomLedger(rng, []string{"Alice", "Bob", "Carol", "Dave", "Eve"}, 50)
	want, _, err := ComputeLeaderboard(records)
	require.NoError(t, err)

	for run := 0; run < 20; run++ {
		shuffled := append([]models.AttendanceRecord(nil), records...)
		rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

		got, _, err := ComputeLeaderboard(shuffled)

		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestComputeLeaderboard_ForRandomLedgers_ThenEveryMemberExactlyOnce(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	members := []string{"Alice", "Bob", "Carol", "Dave", "Eve", "Frank"}

	for run := 0; run < 100; run++ {
		records := randomLedger(rng, members, 1+rng.Intn(40))
		seen := map[string]bool{}
		for _, r := range records {
			seen[r.Member] = true
		}

		entries, _, err := ComputeLeaderboard(records)
		require.NoError(t, err)

		got := map[string]int{}
		for i, e := range entries {
			got[e.Member]++
			assert.Equal(t, i+1, e.Rank)
			if i > 0 {
				assert.GreaterOrEqual(t, entries[i-1].Percent, e.Percent)
			}
		}
		assert.Len(t, got, len(seen))
		for member := range seen {
			assert.Equal(t, 1, got[member], member)
		}
	}
}

func TestSummarize_WhenRecords_ThenCountsDistinctKeys(t *testing.T) {
	records := []models.AttendanceRecord{
		rec("E1", "Alice", ""),
		rec("E1", "Bob", ""),
		rec("E2", "Alice", ""),
	}

	summary := Summarize(records)

	assert.Equal(t, models.LedgerSummary{Rows: 3, DistinctEvents: 2, DistinctMembers: 2}, summary)
}

func randomLedger(rng *rand.Rand, members []string, rows int) []models.AttendanceRecord {
	base := time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)
	records := make([]models.AttendanceRecord, 0, rows)
	for i := 0; i < rows; i++ {
		ts := models.FormatTimestamp(base.Add(time.Duration(rng.Intn(60*24)) * time.Hour))
		if rng.Intn(10) == 0 {
			ts = "not-a-time"
		}
		records = append(records, rec(
			fmt.Sprintf("E%d", rng.Intn(8)),
			members[rng.Intn(len(members))],
			ts,
		))
	}
	return records
}
