package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

// readLogLines parses every JSON line in the log file at path.
func readLogLines(t *testing.T, path string) []map[string]any {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}

	var entries []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(string(data)), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]any
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			t.Fatalf("failed to parse log line %q: %v", line, err)
		}
		entries = append(entries, entry)
	}
	return entries
}

func TestNewLogger_WritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "debug.log")

	logger, err := NewLogger(path, LevelDebug)
	if err != nil {
		t.Fatalf("NewLogger failed: %v", err)
	}

	logger.Info("counter updated", "count", 3)

	if err := logger.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	entries := readLogLines(t, path)
	if len(entries) != 1 {
		t.Fatalf("expected 1 log entry, got %d", len(entries))
	}
	if entries[0]["msg"] != "counter updated" {
		t.Errorf("expected msg 'counter updated', got %v", entries[0]["msg"])
	}
	if entries[0]["level"] != "INFO" {
		t.Errorf("expected level INFO, got %v", entries[0]["level"])
	}
	if entries[0]["count"] != float64(3) {
		t.Errorf("expected count 3, got %v", entries[0]["count"])
	}
}

func TestNewLogger_StderrWhenPathEmpty(t *testing.T) {
	logger, err := NewLogger("", LevelInfo)
	if err != nil {
		t.Fatalf("NewLogger failed: %v", err)
	}

	if err := logger.Close(); err != nil {
		t.Errorf("Close on stderr logger should be a no-op, got %v", err)
	}
	if err := logger.Close(); err != nil {
		t.Errorf("second Close should be nil, got %v", err)
	}
}

func TestLogger_LevelFiltering(t *testing.T) {
	tests := []struct {
		name  string
		level string
		want  int
	}{
		{"debug passes everything", LevelDebug, 4},
		{"info drops debug", LevelInfo, 3},
		{"warn drops info", LevelWarn, 2},
		{"error keeps only errors", LevelError, 1},
		{"unknown defaults to info", "verbose", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "debug.log")
			logger, err := NewLogger(path, tt.level)
			if err != nil {
				t.Fatalf("NewLogger failed: %v", err)
			}

			logger.Debug("d")
			logger.Info("i")
			logger.Warn("w")
			logger.Error("e")

			if err := logger.Close(); err != nil {
				t.Fatalf("Close failed: %v", err)
			}

			if got := len(readLogLines(t, path)); got != tt.want {
				t.Errorf("expected %d entries, got %d", tt.want, got)
			}
		})
	}
}

func TestLogger_WithApproach(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")
	logger, err := NewLogger(path, LevelDebug)
	if err != nil {
		t.Fatalf("NewLogger failed: %v", err)
	}

	logger.WithApproach("channel").Info("clicked +1")
	logger.Info("plain")

	if err := logger.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	entries := readLogLines(t, path)
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0]["approach"] != "channel" {
		t.Errorf("expected approach 'channel', got %v", entries[0]["approach"])
	}
	if _, ok := entries[1]["approach"]; ok {
		t.Error("parent logger should not carry the child's approach attribute")
	}
}

func TestLogger_ChildInheritsAttributes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")
	logger, err := NewLogger(path, LevelDebug)
	if err != nil {
		t.Fatalf("NewLogger failed: %v", err)
	}

	logger.WithApproach("shared").WithComponent("demo").Info("built")

	if err := logger.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	entries := readLogLines(t, path)
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0]["approach"] != "shared" {
		t.Errorf("expected approach 'shared', got %v", entries[0]["approach"])
	}
	if entries[0]["component"] != "demo" {
		t.Errorf("expected component 'demo', got %v", entries[0]["component"])
	}
}

func TestLogger_With(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")
	logger, err := NewLogger(path, LevelDebug)
	if err != nil {
		t.Fatalf("NewLogger failed: %v", err)
	}

	logger.With("capacity", 4, "drops", true).Info("configured")

	if err := logger.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	entries := readLogLines(t, path)
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0]["capacity"] != float64(4) {
		t.Errorf("expected capacity 4, got %v", entries[0]["capacity"])
	}
	if entries[0]["drops"] != true {
		t.Errorf("expected drops true, got %v", entries[0]["drops"])
	}
}

func TestLogger_With_NoArgsReturnsSameLogger(t *testing.T) {
	logger := NopLogger()
	if got := logger.With(); got != logger {
		t.Error("With() without args should return the receiver")
	}
}

func TestLogger_With_SkipsNonStringKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")
	logger, err := NewLogger(path, LevelDebug)
	if err != nil {
		t.Fatalf("NewLogger failed: %v", err)
	}

	logger.With(42, "ignored", "kept", "yes").Info("mixed keys")

	if err := logger.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	entries := readLogLines(t, path)
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0]["kept"] != "yes" {
		t.Errorf("expected kept 'yes', got %v", entries[0]["kept"])
	}
}

func TestLogger_SetLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")
	logger, err := NewLogger(path, LevelInfo)
	if err != nil {
		t.Fatalf("NewLogger failed: %v", err)
	}

	logger.Debug("before")
	logger.SetLevel(LevelDebug)
	logger.Debug("after")

	if err := logger.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	entries := readLogLines(t, path)
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0]["msg"] != "after" {
		t.Errorf("expected msg 'after', got %v", entries[0]["msg"])
	}
}

func TestLogger_SetLevel_AffectsChildren(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")
	logger, err := NewLogger(path, LevelDebug)
	if err != nil {
		t.Fatalf("NewLogger failed: %v", err)
	}

	child := logger.WithComponent("tui")
	logger.SetLevel(LevelError)
	child.Info("hidden")
	child.Error("visible")

	if err := logger.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	entries := readLogLines(t, path)
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0]["msg"] != "visible" {
		t.Errorf("expected msg 'visible', got %v", entries[0]["msg"])
	}
}

func TestNopLogger(t *testing.T) {
	logger := NopLogger()

	logger.Debug("discarded")
	logger.Info("discarded")
	logger.WithApproach("closure").WithComponent("demo").Warn("discarded")
	logger.SetLevel(LevelDebug)

	if err := logger.Close(); err != nil {
		t.Errorf("Close on nop logger should be nil, got %v", err)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"debug", LevelDebug},
		{"DEBUG", LevelDebug},
		{"Info", LevelInfo},
		{"warn", LevelWarn},
		{"error", LevelError},
		{"verbose", LevelInfo},
		{"", LevelInfo},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.input); got != tt.want {
			t.Errorf("ParseLevel(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestValidLevels(t *testing.T) {
	levels := ValidLevels()
	if len(levels) != 4 {
		t.Errorf("expected 4 levels, got %d", len(levels))
	}
	for _, want := range []string{LevelDebug, LevelInfo, LevelWarn, LevelError} {
		if !slices.Contains(levels, want) {
			t.Errorf("expected %q in ValidLevels", want)
		}
	}
}
