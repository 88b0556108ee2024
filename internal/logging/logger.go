// Package logging writes structured JSON logs for the counter demos.
//
// Every component logs through a *Logger, a thin wrapper around
// log/slog with a runtime-adjustable level and an owned output file.
// Child loggers from WithApproach and WithComponent tag their entries,
// so one log file can interleave all four approaches and still be
// filtered afterwards.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Canonical level names, as they appear in log entries and config files.
const (
	LevelDebug = "DEBUG"
	LevelInfo  = "INFO"
	LevelWarn  = "WARN"
	LevelError = "ERROR"
)

var levelByName = map[string]slog.Level{
	LevelDebug: slog.LevelDebug,
	LevelInfo:  slog.LevelInfo,
	LevelWarn:  slog.LevelWarn,
	LevelError: slog.LevelError,
}

// syncCloser is the part of *os.File and *RotatingWriter that Close
// needs: flush, then release.
type syncCloser interface {
	io.Writer
	Sync() error
	Close() error
}

// Logger emits structured JSON log entries. The zero value is not
// usable; construct one with NewLogger, NewRotatingLogger, or
// NopLogger.
//
// A Logger and the children it hands out share one level and one
// output, so SetLevel on the parent applies everywhere and a single
// Close releases the file.
type Logger struct {
	sl    *slog.Logger
	out   syncCloser // nil when there is nothing to close
	level *slog.LevelVar
	mu    sync.Mutex // serializes Close
}

// NewLogger creates a logger writing JSON lines to the file at path,
// creating parent directories as needed. An empty path logs to stderr
// instead, and Close becomes a no-op.
func NewLogger(path, level string) (*Logger, error) {
	if path == "" {
		return newLogger(os.Stderr, nil, level), nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return newLogger(file, file, level), nil
}

// NewRotatingLogger is NewLogger with size-based rotation of the
// output file.
func NewRotatingLogger(path, level string, rotation RotationConfig) (*Logger, error) {
	w, err := NewRotatingWriter(path, rotation)
	if err != nil {
		return nil, err
	}
	return newLogger(w, w, level), nil
}

// NopLogger returns a logger that discards everything. Demo builders
// fall back to it when no logger is configured.
func NopLogger() *Logger {
	return &Logger{
		sl:    slog.New(slog.DiscardHandler),
		level: new(slog.LevelVar),
	}
}

// newLogger builds a Logger on w. out is what Close will flush and
// close; pass nil for outputs the logger does not own, like stderr.
func newLogger(w io.Writer, out syncCloser, level string) *Logger {
	lv := new(slog.LevelVar)
	lv.Set(parseLevel(level))

	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lv})
	return &Logger{sl: slog.New(handler), out: out, level: lv}
}

// child wraps a derived slog.Logger. Output and level stay shared with
// the parent.
func (l *Logger) child(sl *slog.Logger) *Logger {
	return &Logger{sl: sl, out: l.out, level: l.level}
}

// WithApproach tags every entry from the returned logger with the
// approach that produced it.
func (l *Logger) WithApproach(approach string) *Logger {
	return l.child(l.sl.With("approach", approach))
}

// WithComponent tags every entry from the returned logger with the
// subsystem it came from, such as "tui" or "demo".
func (l *Logger) WithComponent(component string) *Logger {
	return l.child(l.sl.With("component", component))
}

// With returns a child logger carrying the given key/value pairs on
// every entry. Keys must be strings; a pair with a non-string key is
// dropped, as is a trailing key without a value. With no usable pairs
// the receiver itself is returned.
func (l *Logger) With(args ...any) *Logger {
	pairs := make([]any, 0, len(args))
	for i := 0; i+1 < len(args); i += 2 {
		if _, ok := args[i].(string); ok {
			pairs = append(pairs, args[i], args[i+1])
		}
	}
	if len(pairs) == 0 {
		return l
	}
	return l.child(l.sl.With(pairs...))
}

// SetLevel changes the minimum level at runtime. It applies to this
// logger and every child sharing its level.
func (l *Logger) SetLevel(level string) {
	l.level.Set(parseLevel(level))
}

// Debug logs at DEBUG level with optional key/value pairs.
func (l *Logger) Debug(msg string, args ...any) {
	l.sl.Debug(msg, args...)
}

// Info logs at INFO level with optional key/value pairs.
func (l *Logger) Info(msg string, args ...any) {
	l.sl.Info(msg, args...)
}

// Warn logs at WARN level with optional key/value pairs.
func (l *Logger) Warn(msg string, args ...any) {
	l.sl.Warn(msg, args...)
}

// Error logs at ERROR level with optional key/value pairs.
func (l *Logger) Error(msg string, args ...any) {
	l.sl.Error(msg, args...)
}

// Close flushes and closes the log output. Calling it again, or on a
// logger with nothing to close, returns nil.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.out == nil {
		return nil
	}
	out := l.out
	l.out = nil

	if err := out.Sync(); err != nil {
		out.Close()
		return fmt.Errorf("failed to sync log file: %w", err)
	}
	return out.Close()
}

// parseLevel maps a level name to its slog level, defaulting to Info
// for anything unrecognized.
func parseLevel(level string) slog.Level {
	if lv, ok := levelByName[strings.ToUpper(level)]; ok {
		return lv
	}
	return slog.LevelInfo
}

// ParseLevel normalizes a level name to its canonical constant.
// Unknown names normalize to LevelInfo.
func ParseLevel(level string) string {
	name := strings.ToUpper(level)
	if _, ok := levelByName[name]; ok {
		return name
	}
	return LevelInfo
}

// ValidLevels lists the accepted level names.
func ValidLevels() []string {
	return []string{LevelDebug, LevelInfo, LevelWarn, LevelError}
}
