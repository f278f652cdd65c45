package logging

import (
	"os"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNilLoggerIsSafe(t *testing.T) {
	var l *Logger
	l.Infof("ignored %d", 1)
	l.Debugf("ignored")
	l.Warnf("ignored")
	l.Errorf("ignored")
	if l.With("k", "v") != nil {
		t.Fatalf("With on nil logger should stay nil")
	}
	if err := l.Close(); err != nil {
		t.Fatalf("Close on nil logger: %v", err)
	}
}

func TestFromZapForwardsEntries(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := FromZap(zap.New(core)).With("session", "abc")
	l.Infof("plan built: %d steps", 10)
	l.Debugf("active step %s", "step1_emergency_fund")

	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Message != "plan built: 10 steps" {
		t.Fatalf("unexpected message %q", entries[0].Message)
	}
	if got := entries[0].ContextMap()["session"]; got != "abc" {
		t.Fatalf("expected session field, got %v", got)
	}
}

func TestNewWritesToProjectLogFile(t *testing.T) {
	dir := t.TempDir()
	l, err := New(dir, false)
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	l.Debugf("hidden at info level")
	l.Infof("session opened")
	_ = l.Close()

	data, err := os.ReadFile(l.Path())
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	text := string(data)
	if !strings.Contains(text, "session opened") {
		t.Fatalf("log missing info entry: %s", text)
	}
	if strings.Contains(text, "hidden at info level") {
		t.Fatalf("debug entry should be filtered: %s", text)
	}
}
