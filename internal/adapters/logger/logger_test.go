package logger_test

import (
	"bytes"
	"strings"
	"testing"

	"go.trai.ch/fixdep/internal/adapters/logger"
	"go.trai.ch/zerr"
)

func newTestLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	buf := &bytes.Buffer{}
	lg := logger.New().(*logger.Logger)
	lg.SetOutput(buf)
	return lg, buf
}

func TestLogger_Info(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Info("rewriting fragment")

	out := buf.String()
	if !strings.Contains(out, "level=INFO") {
		t.Errorf("expected INFO level in output: %q", out)
	}
	if !strings.Contains(out, "rewriting fragment") {
		t.Errorf("expected message in output: %q", out)
	}
}

func TestLogger_Warn(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Warn("prerequisite unreadable")

	out := buf.String()
	if !strings.Contains(out, "level=WARN") {
		t.Errorf("expected WARN level in output: %q", out)
	}
}

func TestLogger_Error(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Error(zerr.New("read failed"))

	out := buf.String()
	if !strings.Contains(out, "level=ERROR") {
		t.Errorf("expected ERROR level in output: %q", out)
	}
	if !strings.Contains(out, "read failed") {
		t.Errorf("expected wrapped error text in output: %q", out)
	}
}
