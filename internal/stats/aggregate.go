package stats

import (
	"errors"
	"sort"
	"time"

	"github.com/dhima/attendance-ledger/internal/models"
)

// ErrNoEventsRecorded is returned when the ledger holds no events to divide by.
var ErrNoEventsRecorded = errors.New("no events recorded")

// Window is the look-back used for the "last 15 days" count: exactly 15×24h.
const Window = 15 * 24 * time.Hour

type set map[string]struct{}

func (s set) add(k string) { s[k] = struct{}{} }

// usable reports whether rec carries the fields every aggregation needs.
func usable(rec models.AttendanceRecord) bool {
	return rec.Event != "" && rec.Member != ""
}

// DistinctEvents counts the distinct events across the ledger.
func DistinctEvents(records []models.AttendanceRecord) int {
	events := set{}
	for _, rec := range records {
		if usable(rec) {
			events.add(rec.Event)
		}
	}
	return len(events)
}

// ComputePercentage returns member's share of all distinct ledger events.
func ComputePercentage(records []models.AttendanceRecord, member string) (models.PercentageResult, error) {
	events := set{}
	attended := set{}
	for _, rec := range records {
		if !usable(rec) {
			continue
		}
		events.add(rec.Event)
		if rec.Member == member {
			attended.add(rec.Event)
		}
	}
	if len(events) == 0 {
		return models.PercentageResult{Member: member}, ErrNoEventsRecorded
	}
	return models.PercentageResult{
		Member:   member,
		Attended: len(attended),
		Total:    len(events),
		Percent:  percent(len(attended), len(events)),
	}, nil
}

// ComputeWindowedStats breaks member's attendance down by time window.
//
// Rows without a timestamp are ignored entirely. A row whose timestamp does
// not parse still counts toward TotalEvents but credits nothing to member.
// An empty ledger yields zero counts, not an error.
func ComputeWindowedStats(records []models.AttendanceRecord, member string, now time.Time) models.WindowedStats {
	now = now.UTC()
	since := now.Add(-Window)

	events := set{}
	attended := set{}
	recent := set{}
	month := set{}
	for _, rec := range records {
		if !usable(rec) || rec.Timestamp == "" {
			continue
		}
		events.add(rec.Event)
		if rec.Member != member {
			continue
		}
		at, err := rec.RecordedAt()
		if err != nil {
			continue
		}
		attended.add(rec.Event)
		if !at.Before(since) {
			recent.add(rec.Event)
		}
		if at.Year() == now.Year() && at.Month() == now.Month() {
			month.add(rec.Event)
		}
	}

	return models.WindowedStats{
		Member:      member,
		TotalEvents: len(events),
		Attended:    len(attended),
		Last15Days:  len(recent),
		ThisMonth:   len(month),
	}
}

// ComputeLeaderboard ranks every member by attendance percentage.
//
// Members with equal percentages are ordered by name (byte order) and still
// receive distinct ranks. The second return value is the number of distinct
// events used as the denominator.
func ComputeLeaderboard(records []models.AttendanceRecord) ([]models.LeaderboardEntry, int, error) {
	events := set{}
	byMember := map[string]set{}
	for _, rec := range records {
		if !usable(rec) {
			continue
		}
		events.add(rec.Event)
		attended, ok := byMember[rec.Member]
		if !ok {
			attended = set{}
			byMember[rec.Member] = attended
		}
		attended.add(rec.Event)
	}

	total := len(events)
	if total == 0 {
		return nil, 0, ErrNoEventsRecorded
	}

	entries := make([]models.LeaderboardEntry, 0, len(byMember))
	for member, attended := range byMember {
		entries = append(entries, models.LeaderboardEntry{
			Member:   member,
			Attended: len(attended),
			Percent:  percent(len(attended), total),
		})
	}
	// Shared denominator: attended order is percent order.
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Attended != entries[j].Attended {
			return entries[i].Attended > entries[j].Attended
		}
		return entries[i].Member < entries[j].Member
	})
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries, total, nil
}

// Summarize counts ledger rows and distinct keys for the metrics endpoint.
func Summarize(records []models.AttendanceRecord) models.LedgerSummary {
	events := set{}
	members := set{}
	for _, rec := range records {
		events.add(rec.Event)
		members.add(rec.Member)
	}
	return models.LedgerSummary{
		Rows:            len(records),
		DistinctEvents:  len(events),
		DistinctMembers: len(members),
	}
}

func percent(attended, total int) float64 {
	return float64(attended) / float64(total) * 100
}
