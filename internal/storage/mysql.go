package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"
)

const mysqlSchema = `
CREATE TABLE IF NOT EXISTS attendance_ledger (
	id           BIGINT AUTO_INCREMENT PRIMARY KEY,
	recorded_at  VARCHAR(19)  NOT NULL DEFAULT '',
	recorder     VARCHAR(255) NOT NULL DEFAULT '',
	member       VARCHAR(255) NOT NULL,
	evidence_ref TEXT         NOT NULL,
	event        VARCHAR(255) NOT NULL,
	INDEX idx_attendance_event (event)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`

// MySQLClient wraps direct SQL access to the attendance ledger table.
type MySQLClient struct {
	db *sql.DB
}

// NewMySQLClient wires a sql.DB; pass a configured instance from main.
func NewMySQLClient(db *sql.DB) *MySQLClient {
	return &MySQLClient{db: db}
}

// OpenMySQL connects to dsn, verifies the connection and creates the
// ledger table when missing.
func OpenMySQL(ctx context.Context, dsn string) (*MySQLClient, error) {
	cfg, err := mysqlConfig(dsn)
	if err != nil {
		return nil, err
	}
	connector, err := mysql.NewConnector(cfg)
	if err != nil {
		return nil, fmt.Errorf("create mysql connector: %w", err)
	}

	db := sql.OpenDB(connector)
	db.SetMaxIdleConns(5)
	db.SetMaxOpenConns(20)
	db.SetConnMaxLifetime(60 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping mysql: %w", err)
	}

	client := NewMySQLClient(db)
	if err := client.EnsureSchema(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return client, nil
}

// mysqlConfig parses dsn and applies the options the ledger relies on.
func mysqlConfig(dsn string) (*mysql.Config, error) {
	cfg, err := mysql.ParseDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse mysql dsn: %w", err)
	}
	cfg.ParseTime = true
	cfg.Loc = time.UTC
	return cfg, nil
}

// EnsureSchema creates the ledger table if it does not exist.
func (c *MySQLClient) EnsureSchema(ctx context.Context) error {
	if _, err := c.db.ExecContext(ctx, mysqlSchema); err != nil {
		return fmt.Errorf("create ledger table: %w", err)
	}
	return nil
}

// ReadRows returns every ledger row in insertion order.
func (c *MySQLClient) ReadRows(ctx context.Context) ([]map[string]string, error) {
	return readLedgerRows(ctx, c.db)
}

// AppendRow inserts one ledger row.
func (c *MySQLClient) AppendRow(ctx context.Context, values []string) error {
	return appendLedgerRow(ctx, c.db, values)
}

// Close releases the connection pool.
func (c *MySQLClient) Close() error {
	if c == nil || c.db == nil {
		return nil
	}
	return c.db.Close()
}
