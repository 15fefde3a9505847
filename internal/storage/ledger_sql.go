package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dhima/attendance-ledger/internal/models"
)

// ledgerTable holds one row per attendance record, in append order.
const ledgerTable = "attendance_ledger"

// readLedgerRows returns every ledger row keyed by ledger column name.
func readLedgerRows(ctx context.Context, db *sql.DB) ([]map[string]string, error) {
	query := `
		SELECT recorded_at, recorder, member, evidence_ref, event
		FROM ` + ledgerTable + `
		ORDER BY id ASC
	`

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query ledger rows: %w", err)
	}
	defer rows.Close()

	var out []map[string]string
	for rows.Next() {
		var recordedAt, recorder, member, evidence, event sql.NullString
		if err := rows.Scan(&recordedAt, &recorder, &member, &evidence, &event); err != nil {
			return nil, fmt.Errorf("scan ledger row: %w", err)
		}
		out = append(out, map[string]string{
			models.ColumnTimestamp:   recordedAt.String,
			models.ColumnRecorder:    recorder.String,
			models.ColumnMember:      member.String,
			models.ColumnEvidenceRef: evidence.String,
			models.ColumnEvent:       event.String,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate ledger rows: %w", err)
	}
	return out, nil
}

// appendLedgerRow inserts values given in ledger column order.
func appendLedgerRow(ctx context.Context, db *sql.DB, values []string) error {
	if len(values) != len(models.LedgerColumns) {
		return fmt.Errorf("ledger row has %d values, want %d", len(values), len(models.LedgerColumns))
	}

	query := `
		INSERT INTO ` + ledgerTable + ` (recorded_at, recorder, member, evidence_ref, event)
		VALUES (?, ?, ?, ?, ?)
	`
	if _, err := db.ExecContext(ctx, query, values[0], values[1], values[2], values[3], values[4]); err != nil {
		return fmt.Errorf("insert ledger row: %w", err)
	}
	return nil
}
