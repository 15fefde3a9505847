// Package ledger adapts a generic row store into typed attendance records.
//
// The external store is assumed to be loosely typed (a spreadsheet or a
// plain table): rows come back as column-name to value maps and are
// appended as ordered values. Every row crosses a strict parse step here,
// so the rest of the service only ever sees well-formed records.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dhima/attendance-ledger/internal/logging"
	"github.com/dhima/attendance-ledger/internal/models"
	"go.uber.org/zap"
)

var (
	// ErrStoreUnavailable is returned when the backing store cannot be read or written.
	ErrStoreUnavailable = errors.New("record store unavailable")
	// ErrMalformedRow marks a row that is missing a required field.
	ErrMalformedRow = errors.New("malformed ledger row")
)

// RowSource is the external row-oriented store the ledger lives in.
type RowSource interface {
	// ReadRows returns every data row keyed by column name.
	ReadRows(ctx context.Context) ([]map[string]string, error)
	// AppendRow appends one row whose values follow models.LedgerColumns.
	AppendRow(ctx context.Context, values []string) error
}

// Adapter reads and appends attendance records through a RowSource.
type Adapter struct {
	rows   RowSource
	logger logging.Logger
}

// NewAdapter wires a row source into a typed ledger.
func NewAdapter(rows RowSource, logger logging.Logger) *Adapter {
	return &Adapter{
		rows:   rows,
		logger: logger.With(zap.String("component", "ledger")),
	}
}

// ReadAll fetches the entire ledger. Malformed rows are logged and skipped.
func (a *Adapter) ReadAll(ctx context.Context) ([]models.AttendanceRecord, error) {
	raw, err := a.rows.ReadRows(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: read rows: %w", ErrStoreUnavailable, err)
	}

	records := make([]models.AttendanceRecord, 0, len(raw))
	skipped := 0
	for i, row := range raw {
		rec, err := ParseRow(row)
		if err != nil {
			skipped++
			a.logger.Warn("skipping malformed ledger row",
				zap.Int("row_index", i),
				zap.Error(err),
			)
			continue
		}
		records = append(records, rec)
	}

	a.logger.Debug("ledger read",
		zap.Int("rows", len(raw)),
		zap.Int("records", len(records)),
		zap.Int("skipped", skipped),
	)
	return records, nil
}

// Append writes one record. No retry is attempted on failure.
func (a *Adapter) Append(ctx context.Context, rec models.AttendanceRecord) error {
	if isBlank(rec.Member) || isBlank(rec.Event) {
		return fmt.Errorf("%w: member and event are required", ErrMalformedRow)
	}
	if err := a.rows.AppendRow(ctx, Row(rec)); err != nil {
		return fmt.Errorf("%w: append row: %w", ErrStoreUnavailable, err)
	}
	return nil
}

// ParseRow converts a raw row into a record. Member and Event are required;
// a missing timestamp is tolerated and handled by time-windowed queries.
func ParseRow(row map[string]string) (models.AttendanceRecord, error) {
	rec := models.AttendanceRecord{
		Timestamp:   strings.TrimSpace(row[models.ColumnTimestamp]),
		RecordedBy:  row[models.ColumnRecorder],
		Member:      row[models.ColumnMember],
		EvidenceRef: strings.TrimSpace(row[models.ColumnEvidenceRef]),
		Event:       row[models.ColumnEvent],
	}
	if isBlank(rec.Member) {
		return models.AttendanceRecord{}, fmt.Errorf("%w: missing %s", ErrMalformedRow, models.ColumnMember)
	}
	if isBlank(rec.Event) {
		return models.AttendanceRecord{}, fmt.Errorf("%w: missing %s", ErrMalformedRow, models.ColumnEvent)
	}
	return rec, nil
}

// Row renders a record in models.LedgerColumns order.
func Row(rec models.AttendanceRecord) []string {
	return []string{rec.Timestamp, rec.RecordedBy, rec.Member, rec.EvidenceRef, rec.Event}
}

// RowMap is the inverse of Row, used by stores that hold ordered values.
func RowMap(values []string) map[string]string {
	row := make(map[string]string, len(models.LedgerColumns))
	for i, col := range models.LedgerColumns {
		if i < len(values) {
			row[col] = values[i]
		}
	}
	return row
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
