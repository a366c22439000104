package logging

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNewDefaultsToInfoLevel(t *testing.T) {
	logger, err := New(false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer logger.Sync()

	if logger.Core().Enabled(zapcore.DebugLevel) {
		t.Fatalf("expected debug level disabled when verbose is false")
	}
	if !logger.Core().Enabled(zapcore.InfoLevel) {
		t.Fatalf("expected info level enabled by default")
	}
}

func TestNewVerboseEnablesDebugLevel(t *testing.T) {
	logger, err := New(true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer logger.Sync()

	if !logger.Core().Enabled(zapcore.DebugLevel) {
		t.Fatalf("expected debug level enabled when verbose is true")
	}
}

func TestNewNopDiscardsOutput(t *testing.T) {
	logger := NewNop()
	if logger.Core().Enabled(zapcore.DebugLevel) {
		t.Fatalf("zap.NewNop's core should report every level disabled")
	}
}
