package config

import (
	"os"
	"testing"
	"time"
)

var allKeys = []string{
	"API_PORT", "ENVIRONMENT", "LOG_LEVEL", "LOG_ENCODING", "CORS_ORIGINS",
	"LEDGER_BACKEND", "DATABASE_URL", "SQLITE_PATH",
	"GOOGLE_SHEETS_CREDENTIALS", "GOOGLE_SHEET_ID", "GOOGLE_SHEET_RANGE",
	"KAFKA_BROKERS", "KAFKA_TOPIC", "JWT_SECRET",
	"DIGEST_CRON", "DIGEST_TIMEZONE", "DIGEST_POLL_INTERVAL",
}

// unsetEnv clears keys for the duration of the test and restores them afterwards.
func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		original, existed := os.LookupEnv(key)
		os.Unsetenv(key)
		t.Cleanup(func() {
			if existed {
				os.Setenv(key, original)
			} else {
				os.Unsetenv(key)
			}
		})
	}
}

func TestFromEnv_WhenAllVariablesSet_ThenReturnsConfigWithSetValues(t *testing.T) {
	// Arrange
	unsetEnv(t, allKeys...)
	t.Setenv("API_PORT", "9000")
	t.Setenv("ENVIRONMENT", "development")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_ENCODING", "console")
	t.Setenv("CORS_ORIGINS", "http://localhost:3000,https://example.com")
	t.Setenv("LEDGER_BACKEND", " MySQL ")
	t.Setenv("DATABASE_URL", "user:pass@tcp(localhost:3306)/attendance")
	t.Setenv("KAFKA_BROKERS", "kafka1:9092,kafka2:9092")
	t.Setenv("DIGEST_CRON", "*/10 * * * *")
	t.Setenv("DIGEST_POLL_INTERVAL", "5s")

	// Act
	config, err := FromEnv()

	// Assert
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if config.APIPort != "9000" {
		t.Errorf("expected APIPort to be '9000', got '%s'", config.APIPort)
	}
	if config.Environment != "development" {
		t.Errorf("expected Environment to be 'development', got '%s'", config.Environment)
	}
	if config.LogLevel != "debug" {
		t.Errorf("expected LogLevel to be 'debug', got '%s'", config.LogLevel)
	}
	if config.LogEncoding != "console" {
		t.Errorf("expected LogEncoding to be 'console', got '%s'", config.LogEncoding)
	}
	if config.LedgerBackend != BackendMySQL {
		t.Errorf("expected LedgerBackend to be normalized to 'mysql', got '%s'", config.LedgerBackend)
	}
	if config.DatabaseURL != "user:pass@tcp(localhost:3306)/attendance" {
		t.Errorf("unexpected DatabaseURL '%s'", config.DatabaseURL)
	}
	if config.DigestCron != "*/10 * * * *" {
		t.Errorf("unexpected DigestCron '%s'", config.DigestCron)
	}
	if config.DigestPollInterval != 5*time.Second {
		t.Errorf("expected DigestPollInterval 5s, got %v", config.DigestPollInterval)
	}
	if len(config.CORSOrigins) != 2 {
		t.Fatalf("expected 2 CORS origins, got %d", len(config.CORSOrigins))
	}
	brokers := config.Brokers()
	if len(brokers) != 2 || brokers[0] != "kafka1:9092" || brokers[1] != "kafka2:9092" {
		t.Errorf("unexpected brokers %v", brokers)
	}
}

func TestFromEnv_WhenNoVariablesSet_ThenReturnsDefaults(t *testing.T) {
	// Arrange
	unsetEnv(t, allKeys...)

	// Act
	config, err := FromEnv()

	// Assert
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if config.APIPort != "8080" {
		t.Errorf("expected APIPort to be '8080', got '%s'", config.APIPort)
	}
	if config.Environment != "production" {
		t.Errorf("expected Environment to be 'production', got '%s'", config.Environment)
	}
	if config.LogLevel != "info" {
		t.Errorf("expected LogLevel to be 'info', got '%s'", config.LogLevel)
	}
	if config.LogEncoding != "json" {
		t.Errorf("expected LogEncoding to be 'json', got '%s'", config.LogEncoding)
	}
	if config.LedgerBackend != BackendSQLite {
		t.Errorf("expected LedgerBackend to be 'sqlite', got '%s'", config.LedgerBackend)
	}
	if config.SQLitePath != "attendance.db" {
		t.Errorf("expected SQLitePath to be 'attendance.db', got '%s'", config.SQLitePath)
	}
	if config.SheetRange != "Sheet1" {
		t.Errorf("expected SheetRange to be 'Sheet1', got '%s'", config.SheetRange)
	}
	if config.KafkaTopic != "attendance-events" {
		t.Errorf("expected KafkaTopic to be 'attendance-events', got '%s'", config.KafkaTopic)
	}
	if config.DigestCron != "0 9 * * 1" {
		t.Errorf("expected DigestCron '0 9 * * 1', got '%s'", config.DigestCron)
	}
	if config.DigestPollInterval != 30*time.Second {
		t.Errorf("expected DigestPollInterval 30s, got %v", config.DigestPollInterval)
	}
	if len(config.Brokers()) != 0 {
		t.Errorf("expected no brokers, got %v", config.Brokers())
	}
	if len(config.CORSOrigins) != 1 || config.CORSOrigins[0] != "*" {
		t.Errorf("expected CORS origins to be ['*'], got %v", config.CORSOrigins)
	}
}

func TestFromEnv_WhenDurationInvalid_ThenReturnsError(t *testing.T) {
	// Arrange
	unsetEnv(t, allKeys...)
	t.Setenv("DIGEST_POLL_INTERVAL", "soon")

	// Act
	_, err := FromEnv()

	// Assert
	if err == nil {
		t.Fatal("expected error for invalid duration")
	}
}

func TestSplitOrigins_WhenMultipleOriginsWithWhitespace_ThenTrimsCorrectly(t *testing.T) {
	// Act
	origins := splitOrigins(" http://localhost:3000 , https://example.com ,  ")

	// Assert
	if len(origins) != 2 {
		t.Fatalf("expected 2 origins after trimming, got %d", len(origins))
	}
	if origins[0] != "http://localhost:3000" {
		t.Errorf("expected first origin to be 'http://localhost:3000', got '%s'", origins[0])
	}
	if origins[1] != "https://example.com" {
		t.Errorf("expected second origin to be 'https://example.com', got '%s'", origins[1])
	}
}

func TestSplitOrigins_WhenEmpty_ThenReturnsWildcard(t *testing.T) {
	// Act
	origins := splitOrigins("")

	// Assert
	if len(origins) != 1 || origins[0] != "*" {
		t.Errorf("expected ['*'], got %v", origins)
	}
}

func TestSplitOrigins_WhenOnlyWhitespace_ThenReturnsEmpty(t *testing.T) {
	// Act
	origins := splitOrigins("   ,  ,  ")

	// Assert
	if len(origins) != 0 {
		t.Errorf("expected empty slice, got %v", origins)
	}
}

func TestValidate_WhenBackendRequirementsMissing_ThenReturnsError(t *testing.T) {
	tests := []struct {
		name    string
		cfg     App
		wantErr bool
	}{
		{name: "mysql without url", cfg: App{LedgerBackend: BackendMySQL}, wantErr: true},
		{name: "mysql with url", cfg: App{LedgerBackend: BackendMySQL, DatabaseURL: "dsn"}, wantErr: false},
		{name: "sqlite without path", cfg: App{LedgerBackend: BackendSQLite}, wantErr: true},
		{name: "sqlite with path", cfg: App{LedgerBackend: BackendSQLite, SQLitePath: "a.db"}, wantErr: false},
		{name: "sheets without id", cfg: App{LedgerBackend: BackendSheets, SheetsCredentials: "e30="}, wantErr: true},
		{name: "sheets complete", cfg: App{LedgerBackend: BackendSheets, SheetsCredentials: "e30=", SheetID: "abc"}, wantErr: false},
		{name: "unknown backend", cfg: App{LedgerBackend: "csv"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr && err == nil {
				t.Error("expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("expected no error, got %v", err)
			}
		})
	}
}
