package logging

import (
	"os"
	"testing"

	"go.uber.org/zap"
)

func TestNewLogger_WhenEnvironmentsAndEncodingsVary_ThenReturnsLogger(t *testing.T) {
	tests := []struct {
		name        string
		environment string
		level       string
		encoding    string
	}{
		{name: "development console", environment: "development", level: "debug", encoding: "console"},
		{name: "development json", environment: "development", level: "debug", encoding: "json"},
		{name: "production json", environment: "production", level: "info", encoding: "json"},
		{name: "production default encoding", environment: "production", level: "warn", encoding: ""},
		{name: "invalid level defaults to info", environment: "production", level: "invalid-level", encoding: "json"},
		{name: "unknown encoding keeps default", environment: "production", level: "info", encoding: "xml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Act
			logger, err := NewLogger(tt.environment, tt.level, tt.encoding)

			// Assert
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if logger == nil {
				t.Fatal("expected logger to be non-nil")
			}
			_ = logger.Sync()
		})
	}
}

func TestNewDevelopmentLogger_WhenCalled_ThenReturnsLogger(t *testing.T) {
	// Arrange & Act
	logger, err := NewDevelopmentLogger()

	// Assert
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if logger == nil {
		t.Fatal("expected logger to be non-nil")
	}
	_ = logger.Sync()
}

func TestNewProductionLogger_WhenCalled_ThenReturnsLogger(t *testing.T) {
	// Arrange & Act
	logger, err := NewProductionLogger()

	// Assert
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if logger == nil {
		t.Fatal("expected logger to be non-nil")
	}
	_ = logger.Sync()
}

func TestNewFromEnv_WhenEnvironmentVariablesSet_ThenUsesThoseValues(t *testing.T) {
	// Arrange
	t.Setenv("ENVIRONMENT", "development")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_ENCODING", "console")

	// Act
	logger, err := NewFromEnv()

	// Assert
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if logger == nil {
		t.Fatal("expected logger to be non-nil")
	}
	_ = logger.Sync()
}

func TestNewFromEnv_WhenNoEnvironmentVariables_ThenUsesDefaults(t *testing.T) {
	// Arrange
	for _, key := range []string{"ENVIRONMENT", "LOG_LEVEL", "LOG_ENCODING"} {
		original, existed := os.LookupEnv(key)
		os.Unsetenv(key)
		t.Cleanup(func() {
			if existed {
				os.Setenv(key, original)
			}
		})
	}

	// Act
	logger, err := NewFromEnv()

	// Assert
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if logger == nil {
		t.Fatal("expected logger to be non-nil")
	}
	_ = logger.Sync()
}

func TestZapLogger_LevelMethods_WhenCalled_ThenDoNotPanic(t *testing.T) {
	// Arrange
	logger, err := NewDevelopmentLogger()
	if err != nil {
		t.Fatalf("failed to create logger: %v", err)
	}
	defer logger.Sync()

	// Act (should not panic)
	logger.Debug("debug message", zap.String("member", "Alice"))
	logger.Info("info message", zap.String("event", "raid-night"))
	logger.Warn("warn message", zap.Int("skipped_rows", 2))
	logger.Error("error message", zap.String("scope", "general"))
}

func TestZapLogger_With_WhenCalledWithFields_ThenReturnsLoggerWithFields(t *testing.T) {
	// Arrange
	logger, err := NewProductionLogger()
	if err != nil {
		t.Fatalf("failed to create logger: %v", err)
	}
	defer logger.Sync()

	// Act
	childLogger := logger.With(zap.String("request_id", "123"))

	// Assert
	if childLogger == nil {
		t.Fatal("expected child logger to be non-nil")
	}
	childLogger.Info("test message")
}

func TestZapLogger_Zap_WhenCalled_ThenReturnsUnderlyingLogger(t *testing.T) {
	// Arrange
	logger, err := NewProductionLogger()
	if err != nil {
		t.Fatalf("failed to create logger: %v", err)
	}

	// Act
	z := logger.Zap()

	// Assert
	if z == nil {
		t.Fatal("expected *zap.Logger to be non-nil")
	}
	z.Info("raw zap message")
}

func TestNoOpLogger_AllMethods_WhenCalled_ThenDoNothing(t *testing.T) {
	// Arrange
	logger := NewNoOpLogger()

	// Act & Assert (should not panic)
	logger.Debug("test")
	logger.Info("test")
	logger.Warn("test")
	logger.Error("test")

	childLogger := logger.With(zap.String("key", "value"))
	if childLogger == nil {
		t.Fatal("expected child logger to be non-nil")
	}
	if logger.Zap() == nil {
		t.Fatal("expected no-op zap logger to be non-nil")
	}
	if err := logger.Sync(); err != nil {
		t.Errorf("expected no error from Sync, got %v", err)
	}
}

func TestNoOpLogger_With_WhenCalled_ThenReturnsSelf(t *testing.T) {
	// Arrange
	logger := &NoOpLogger{}

	// Act
	childLogger := logger.With(zap.String("key", "value"))

	// Assert
	if childLogger != logger {
		t.Error("expected With to return same logger instance")
	}
}
