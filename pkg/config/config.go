package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Ledger backends understood by the storage layer.
const (
	BackendMySQL  = "mysql"
	BackendSQLite = "sqlite"
	BackendSheets = "sheets"
)

// App holds runtime configuration derived from env vars.
type App struct {
	APIPort     string   `env:"API_PORT" envDefault:"8080"`
	Environment string   `env:"ENVIRONMENT" envDefault:"production"`
	LogLevel    string   `env:"LOG_LEVEL" envDefault:"info"`
	LogEncoding string   `env:"LOG_ENCODING" envDefault:"json"`
	CORSRaw     string   `env:"CORS_ORIGINS"`
	CORSOrigins []string `env:"-"`

	LedgerBackend string `env:"LEDGER_BACKEND" envDefault:"sqlite"`
	DatabaseURL   string `env:"DATABASE_URL"`
	SQLitePath    string `env:"SQLITE_PATH" envDefault:"attendance.db"`

	// SheetsCredentials is a base64-encoded service account JSON document.
	SheetsCredentials string `env:"GOOGLE_SHEETS_CREDENTIALS"`
	SheetID           string `env:"GOOGLE_SHEET_ID"`
	SheetRange        string `env:"GOOGLE_SHEET_RANGE" envDefault:"Sheet1"`

	KafkaBrokers string `env:"KAFKA_BROKERS"`
	KafkaTopic   string `env:"KAFKA_TOPIC" envDefault:"attendance-events"`

	JWTSecret string `env:"JWT_SECRET"`

	DigestCron         string        `env:"DIGEST_CRON" envDefault:"0 9 * * 1"`
	DigestTimezone     string        `env:"DIGEST_TIMEZONE" envDefault:"UTC"`
	DigestPollInterval time.Duration `env:"DIGEST_POLL_INTERVAL" envDefault:"30s"`
}

// FromEnv loads the application configuration from environment variables.
func FromEnv() (App, error) {
	var cfg App
	if err := env.Parse(&cfg); err != nil {
		return App{}, fmt.Errorf("parse env: %w", err)
	}
	cfg.LedgerBackend = strings.ToLower(strings.TrimSpace(cfg.LedgerBackend))
	cfg.CORSOrigins = splitOrigins(cfg.CORSRaw)
	return cfg, nil
}

// Brokers returns the configured Kafka brokers; empty disables publishing.
func (a App) Brokers() []string {
	var brokers []string
	for _, b := range strings.Split(a.KafkaBrokers, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}

// Validate checks that the selected ledger backend has what it needs.
func (a App) Validate() error {
	switch a.LedgerBackend {
	case BackendMySQL:
		if a.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required for the %s backend", a.LedgerBackend)
		}
	case BackendSQLite:
		if strings.TrimSpace(a.SQLitePath) == "" {
			return fmt.Errorf("SQLITE_PATH is required for the %s backend", a.LedgerBackend)
		}
	case BackendSheets:
		if a.SheetsCredentials == "" || a.SheetID == "" {
			return fmt.Errorf("GOOGLE_SHEETS_CREDENTIALS and GOOGLE_SHEET_ID are required for the %s backend", a.LedgerBackend)
		}
	default:
		return fmt.Errorf("unsupported LEDGER_BACKEND %q", a.LedgerBackend)
	}
	return nil
}

// splitOrigins turns a comma separated origin list into trimmed entries.
// An unset value allows every origin.
func splitOrigins(raw string) []string {
	if raw == "" {
		return []string{"*"}
	}
	origins := make([]string, 0)
	for _, origin := range strings.Split(raw, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}
