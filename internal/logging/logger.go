package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/kingrea/nextstep/internal/config"
)

// Logger appends structured lines to .nextstep/logs/nextstep.log. The TUI
// owns the terminal, so nothing is written to stdout or stderr. A nil
// *Logger discards everything.
type Logger struct {
	zl    *zap.Logger
	sugar *zap.SugaredLogger
	path  string
}

// New creates (or reuses) the log file for the current project directory.
func New(projectDir string, verbose bool) (*Logger, error) {
	logDir := filepath.Join(projectDir, config.AppDir, "logs")
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return nil, fmt.Errorf("logging: ensure log dir: %w", err)
	}
	path := filepath.Join(logDir, "nextstep.log")

	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.Sampling = nil
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	zl, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("logging: build logger: %w", err)
	}
	return &Logger{zl: zl, sugar: zl.Sugar(), path: path}, nil
}

// FromZap wraps an existing zap logger; tests use it with zaptest/observer.
func FromZap(zl *zap.Logger) *Logger {
	if zl == nil {
		return nil
	}
	return &Logger{zl: zl, sugar: zl.Sugar()}
}

// Path returns the file backing this logger, if any.
func (l *Logger) Path() string {
	if l == nil {
		return ""
	}
	return l.path
}

// With returns a child logger carrying the given key/value pairs.
func (l *Logger) With(args ...any) *Logger {
	if l == nil || l.sugar == nil {
		return l
	}
	child := l.sugar.With(args...)
	return &Logger{zl: child.Desugar(), sugar: child, path: l.path}
}

// Close flushes buffered entries.
func (l *Logger) Close() error {
	if l == nil || l.zl == nil {
		return nil
	}
	return l.zl.Sync()
}

func (l *Logger) Debugf(format string, args ...any) {
	if l == nil || l.sugar == nil {
		return
	}
	l.sugar.Debugf(format, args...)
}

func (l *Logger) Infof(format string, args ...any) {
	if l == nil || l.sugar == nil {
		return
	}
	l.sugar.Infof(format, args...)
}

func (l *Logger) Warnf(format string, args ...any) {
	if l == nil || l.sugar == nil {
		return
	}
	l.sugar.Warnf(format, args...)
}

func (l *Logger) Errorf(format string, args ...any) {
	if l == nil || l.sugar == nil {
		return
	}
	l.sugar.Errorf(format, args...)
}
