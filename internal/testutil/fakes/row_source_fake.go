package fakes

import (
	"context"
	"errors"
	"sync"

	"github.com/dhima/attendance-ledger/internal/models"
)

// ErrUnavailable is the default error returned by failing fakes.
var ErrUnavailable = errors.New("store unreachable")

// FakeRowSource is an in-memory spreadsheet-like row store.
type FakeRowSource struct {
	mu        sync.Mutex
	rows      []map[string]string
	Appended  [][]string
	Reads     int
	ReadErr   error
	AppendErr error
	// FailAppendAfter makes AppendRow fail once this many appends succeeded (0 disables).
	FailAppendAfter int
	Closed          bool
}

// NewFakeRowSource seeds the store with raw rows.
func NewFakeRowSource(rows ...map[string]string) *FakeRowSource {
	return &FakeRowSource{rows: rows}
}

// NewFakeRowSourceFromRecords seeds the store with well-formed records.
func NewFakeRowSourceFromRecords(records ...models.AttendanceRecord) *FakeRowSource {
	f := &FakeRowSource{}
	for _, rec := range records {
		f.rows = append(f.rows, map[string]string{
			models.ColumnTimestamp:   rec.Timestamp,
			models.ColumnRecorder:    rec.RecordedBy,
			models.ColumnMember:      rec.Member,
			models.ColumnEvidenceRef: rec.EvidenceRef,
			models.ColumnEvent:       rec.Event,
		})
	}
	return f
}

func (f *FakeRowSource) ReadRows(_ context.Context) ([]map[string]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Reads++
	if f.ReadErr != nil {
		return nil, f.ReadErr
	}
	out := make([]map[string]string, 0, len(f.rows))
	for _, row := range f.rows {
		cpy := make(map[string]string, len(row))
		for k, v := range row {
			cpy[k] = v
		}
		out = append(out, cpy)
	}
	return out, nil
}

func (f *FakeRowSource) AppendRow(_ context.Context, values []string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.AppendErr != nil {
		return f.AppendErr
	}
	if f.FailAppendAfter > 0 && len(f.Appended) >= f.FailAppendAfter {
		return ErrUnavailable
	}
	vals := append([]string(nil), values...)
	f.Appended = append(f.Appended, vals)
	row := make(map[string]string, len(models.LedgerColumns))
	for i, col := range models.LedgerColumns {
		if i < len(vals) {
			row[col] = vals[i]
		}
	}
	f.rows = append(f.rows, row)
	return nil
}

// Len returns the number of stored rows.
func (f *FakeRowSource) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.rows)
}

// CountPair returns how many stored rows credit member for event.
func (f *FakeRowSource) CountPair(event, member string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, row := range f.rows {
		if row[models.ColumnEvent] == event && row[models.ColumnMember] == member {
			n++
		}
	}
	return n
}

// Close marks the store closed.
func (f *FakeRowSource) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Closed = true
	return nil
}
