package models

import (
	"strings"
	"time"
)

// TimestampLayout is the fixed ledger timestamp format (UTC, second precision).
const TimestampLayout = "2006-01-02 15:04:05"

// Ledger column names, in the order rows are appended.
const (
	ColumnTimestamp   = "Timestamp"
	ColumnRecorder    = "Recorder"
	ColumnMember      = "Member"
	ColumnEvidenceRef = "EvidenceRef"
	ColumnEvent       = "Event"
)

// LedgerColumns is the fixed column order of every ledger row.
var LedgerColumns = []string{ColumnTimestamp, ColumnRecorder, ColumnMember, ColumnEvidenceRef, ColumnEvent}

// MaxAttendeesPerCheckIn caps the attendee list of a single check-in.
const MaxAttendeesPerCheckIn = 6

// AttendanceRecord is one row in the ledger.
type AttendanceRecord struct {
	Timestamp   string `json:"timestamp" example:"2025-11-05 10:30:00"`
	RecordedBy  string `json:"recorded_by" example:"Alice"`
	Member      string `json:"member" example:"Bob"`
	EvidenceRef string `json:"evidence_ref" example:"https://cdn.example.com/party.png"`
	Event       string `json:"event" example:"raid-night"`
} // @name AttendanceRecord

// RecordedAt parses the record timestamp in UTC.
func (r AttendanceRecord) RecordedAt() (time.Time, error) {
	return time.ParseInLocation(TimestampLayout, strings.TrimSpace(r.Timestamp), time.UTC)
}

// FormatTimestamp renders t in the ledger timestamp format.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// Outcome is the per-attendee result of a check-in.
type Outcome string

const (
	OutcomeRecorded  Outcome = "recorded"
	OutcomeDuplicate Outcome = "duplicate"
)

// AttendeeOutcome pairs an attendee with the result of recording them.
type AttendeeOutcome struct {
	Member  string  `json:"member" example:"Bob"`
	Outcome Outcome `json:"outcome" example:"recorded"`
} // @name AttendeeOutcome

// CheckInRequest is a single check-in submission.
type CheckInRequest struct {
	Scope        string   `json:"scope,omitempty" example:"1234567890"`
	Event        string   `json:"event" binding:"required" example:"raid-night"`
	RecordedBy   string   `json:"recorded_by" binding:"required" example:"Alice"`
	EvidenceRef  string   `json:"evidence_ref" binding:"required" example:"https://cdn.example.com/party.png"`
	EvidenceName string   `json:"evidence_name,omitempty" example:"party.png"`
	Attendees    []string `json:"attendees" binding:"required" example:"Bob,Carol"`
} // @name CheckInRequest

// ActivationScope returns the scope gating this check-in; it defaults to the event.
func (r CheckInRequest) ActivationScope() string {
	if scope := strings.TrimSpace(r.Scope); scope != "" {
		return scope
	}
	return strings.TrimSpace(r.Event)
}

// CheckInResponse is returned after a check-in.
type CheckInResponse struct {
	Event        string            `json:"event" example:"raid-night"`
	RecordedBy   string            `json:"recorded_by" example:"Alice"`
	EvidenceRef  string            `json:"evidence_ref" example:"https://cdn.example.com/party.png"`
	EvidenceName string            `json:"evidence_name,omitempty" example:"party.png"`
	Outcomes     []AttendeeOutcome `json:"outcomes"`
	Recorded     int               `json:"recorded" example:"1"`
	Duplicates   int               `json:"duplicates" example:"1"`
} // @name CheckInResponse

// PercentageResult is a member's attendance rate across all ledger events.
type PercentageResult struct {
	Member   string  `json:"member" example:"Alice"`
	Attended int     `json:"attended" example:"1"`
	Total    int     `json:"total" example:"2"`
	Percent  float64 `json:"percent" example:"50"`
} // @name PercentageResult

// WindowedStats is a member's attendance broken down by time window.
type WindowedStats struct {
	Member      string `json:"member" example:"Alice"`
	TotalEvents int    `json:"total_events" example:"12"`
	Attended    int    `json:"attended" example:"7"`
	Last15Days  int    `json:"last_15_days" example:"3"`
	ThisMonth   int    `json:"this_month" example:"4"`
} // @name WindowedStats

// LeaderboardEntry is one ranked row of the leaderboard.
type LeaderboardEntry struct {
	Rank     int     `json:"rank" example:"1"`
	Member   string  `json:"member" example:"Alice"`
	Attended int     `json:"attended" example:"9"`
	Percent  float64 `json:"percent" example:"75"`
} // @name LeaderboardEntry

// LeaderboardResponse wraps a leaderboard with its denominator.
type LeaderboardResponse struct {
	TotalEvents int                `json:"total_events" example:"12"`
	GeneratedAt time.Time          `json:"generated_at" example:"2025-11-05T10:30:00Z"`
	Entries     []LeaderboardEntry `json:"entries"`
} // @name LeaderboardResponse

// LedgerSummary describes ledger size, used by the metrics endpoint.
type LedgerSummary struct {
	Rows            int `json:"rows" example:"340"`
	DistinctEvents  int `json:"distinct_events" example:"28"`
	DistinctMembers int `json:"distinct_members" example:"41"`
} // @name LedgerSummary

// SessionStatus reports whether check-ins are open for a scope.
type SessionStatus struct {
	Scope   string `json:"scope" example:"raid-night"`
	Active  bool   `json:"active" example:"true"`
	Changed bool   `json:"changed" example:"true"`
} // @name SessionStatus

// SessionList enumerates the scopes currently accepting check-ins.
type SessionList struct {
	Scopes []string `json:"scopes" example:"raid-night,weekly-sync"`
} // @name SessionList
