package cmd

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, log.InfoLevel)

	l.Debug("hidden")
	l.Info("shown", "tracks", 3)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("debug message logged at info level: %q", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "tracks=3") {
		t.Errorf("info message missing: %q", out)
	}
}

func TestLoggerFromContext(t *testing.T) {
	if loggerFromContext(context.Background()) != log.Default() {
		t.Error("expected default logger for empty context")
	}
	//nolint:staticcheck // nil context is handled
	if loggerFromContext(nil) != log.Default() {
		t.Error("expected default logger for nil context")
	}

	l := newLogger(&bytes.Buffer{}, log.DebugLevel)
	ctx := withLogger(context.Background(), l)
	if got := loggerFromContext(ctx); got != l {
		t.Error("logger not returned from context")
	}
}
