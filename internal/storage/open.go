// Package storage provides the row sources behind the attendance ledger:
// MySQL, a local SQLite file, or a Google Sheet.
package storage

import (
	"context"
	"fmt"

	"github.com/dhima/attendance-ledger/pkg/config"
)

// Backend is a ledger row source that owns a connection.
type Backend interface {
	ReadRows(ctx context.Context) ([]map[string]string, error)
	AppendRow(ctx context.Context, values []string) error
	Close() error
}

// Open connects the backend selected by cfg.LedgerBackend.
func Open(ctx context.Context, cfg config.App) (Backend, error) {
	switch cfg.LedgerBackend {
	case config.BackendMySQL:
		client, err := OpenMySQL(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("open mysql ledger: %w", err)
		}
		return client, nil
	case config.BackendSQLite:
		store, err := OpenSQLite(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("open sqlite ledger: %w", err)
		}
		return store, nil
	case config.BackendSheets:
		client, err := NewSheetsClient(ctx, cfg.SheetsCredentials, cfg.SheetID, cfg.SheetRange)
		if err != nil {
			return nil, fmt.Errorf("open sheets ledger: %w", err)
		}
		return client, nil
	default:
		return nil, fmt.Errorf("unknown ledger backend %q", cfg.LedgerBackend)
	}
}
