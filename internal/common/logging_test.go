package common

import (
	"os"
	"testing"
)

func TestNewLogger_ReturnsNonNil(t *testing.T) {
	logger := NewLoggerFromConfig(LoggingConfig{
		Level:   "info",
		Outputs: []string{"console"},
	})
	if logger == nil {
		t.Fatal("NewLoggerFromConfig returned nil")
	}
}

func TestLogger_FluentAPI(t *testing.T) {
	// Must not panic — proves the fluent chain works with arbor
	logger := NewLoggerFromConfig(LoggingConfig{
		Level:   "error",
		Outputs: []string{"console"},
	})
	logger.Info().Str("key", "value").Msg("test message")
	logger.Warn().Int("count", 42).Msg("warning")
	logger.Error().Err(nil).Msg("error message")
	logger.Debug().Float64("rate", 3.14).Bool("ok", true).Msg("debug")
}

func TestNewSilentLogger_DiscardsOutput(t *testing.T) {
	logger := NewSilentLogger()
	if logger == nil {
		t.Fatal("NewSilentLogger returned nil")
	}
	// Must not panic
	logger.Info().Str("key", "value").Msg("should be discarded")
	logger.Error().Err(nil).Msg("should be discarded")
	logger.Warn().Msg("should be discarded")
}

func TestNewLogger_DoesNotWriteToStdout(t *testing.T) {
	// The stdio MCP transport owns stdout for JSON-RPC frames, so the
	// console writer must route to stderr.
	oldStdout := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Failed to create pipe: %v", err)
	}
	os.Stdout = w

	logger := NewLoggerFromConfig(LoggingConfig{
		Level:   "info",
		Outputs: []string{"console"},
	})
	logger.Info().Str("key", "value").Msg("console message")

	w.Close()
	os.Stdout = oldStdout

	buf := make([]byte, 4096)
	n, _ := r.Read(buf)
	if n > 0 {
		t.Errorf("Console logging wrote %d bytes to stdout: %s", n, buf[:n])
	}
}

func TestLogger_WithCorrelationId(t *testing.T) {
	logger := NewSilentLogger()
	scoped := logger.WithCorrelationId("abc-123")
	if scoped == nil {
		t.Fatal("WithCorrelationId returned nil")
	}
	// Must not panic
	scoped.Info().Msg("correlated message")
}
