// Package testutil provides testing utilities for recount tests.
package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// WaitFor polls cond until it returns true or the timeout elapses.
// It fails the test on timeout with the given description.
func WaitFor(t *testing.T, timeout time.Duration, cond func() bool, desc string) {
	t.Helper()

	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("timed out waiting for %s", desc)
}

// WriteConfigFile writes a config.yaml with the given content into dir
// and returns its path. The file is cleaned up with the test's temp
// directory.
func WriteConfigFile(t *testing.T, dir, content string) string {
	t.Helper()

	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return path
}

// WriteThemeFile writes a theme YAML file with the given content into
// dir and returns its path.
func WriteThemeFile(t *testing.T, dir, content string) string {
	t.Helper()

	path := filepath.Join(dir, "theme.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write theme file: %v", err)
	}
	return path
}

// ReadLogLines parses a JSON-lines log file into one map per entry.
func ReadLogLines(t *testing.T, path string) []map[string]any {
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
