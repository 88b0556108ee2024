package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"

	"github.com/Iron-Ham/recount/internal/errors"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg == nil {
		t.Fatal("Default() returned nil")
	}

	// Verify default approach
	if cfg.Approach != "channel" {
		t.Errorf("Approach = %q, want %q", cfg.Approach, "channel")
	}

	// Verify default channel config
	if cfg.Channel.Capacity != 4 {
		t.Errorf("Channel.Capacity = %d, want 4", cfg.Channel.Capacity)
	}
	if cfg.Channel.LogDrops {
		t.Error("Channel.LogDrops should be false by default")
	}

	// Verify default TUI config
	if !cfg.TUI.ShowLog {
		t.Error("TUI.ShowLog should be true by default")
	}
	if cfg.TUI.Theme != "default" {
		t.Errorf("TUI.Theme = %q, want %q", cfg.TUI.Theme, "default")
	}
	if cfg.TUI.ThemeFile != "" {
		t.Errorf("TUI.ThemeFile should be empty, got %q", cfg.TUI.ThemeFile)
	}

	// Verify default logging config
	if !cfg.Logging.Enabled {
		t.Error("Logging.Enabled should be true by default")
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "info")
	}
	if cfg.Logging.MaxSizeMB != 10 {
		t.Errorf("Logging.MaxSizeMB = %d, want 10", cfg.Logging.MaxSizeMB)
	}
	if cfg.Logging.MaxBackups != 3 {
		t.Errorf("Logging.MaxBackups = %d, want 3", cfg.Logging.MaxBackups)
	}
}

func TestValidApproaches(t *testing.T) {
	approaches := ValidApproaches()

	expected := []string{"closure", "stale", "shared", "channel"}
	if len(approaches) != len(expected) {
		t.Errorf("ValidApproaches() length = %d, want %d", len(approaches), len(expected))
	}

	for i, approach := range expected {
		if approaches[i] != approach {
			t.Errorf("ValidApproaches()[%d] = %q, want %q", i, approaches[i], approach)
		}
	}
}

func TestIsValidApproach(t *testing.T) {
	tests := []struct {
		approach string
		valid    bool
	}{
		{"closure", true},
		{"stale", true},
		{"shared", true},
		{"channel", true},
		{"invalid", false},
		{"", false},
		{"CHANNEL", false}, // Case sensitive
	}

	for _, tt := range tests {
		t.Run(tt.approach, func(t *testing.T) {
			result := IsValidApproach(tt.approach)
			if result != tt.valid {
				t.Errorf("IsValidApproach(%q) = %v, want %v", tt.approach, result, tt.valid)
			}
		})
	}
}

func TestConfigDir(t *testing.T) {
	// Test with XDG_CONFIG_HOME set
	t.Run("with XDG_CONFIG_HOME", func(t *testing.T) {
		original := os.Getenv("XDG_CONFIG_HOME")
		defer func() { _ = os.Setenv("XDG_CONFIG_HOME", original) }()

		_ = os.Setenv("XDG_CONFIG_HOME", "/custom/config")
		result := ConfigDir()
		expected := "/custom/config/recount"
		if result != expected {
			t.Errorf("ConfigDir() = %q, want %q", result, expected)
		}
	})

	// Test without XDG_CONFIG_HOME
	t.Run("without XDG_CONFIG_HOME", func(t *testing.T) {
		original := os.Getenv("XDG_CONFIG_HOME")
		defer func() { _ = os.Setenv("XDG_CONFIG_HOME", original) }()

		_ = os.Setenv("XDG_CONFIG_HOME", "")
		result := ConfigDir()

		// Should be based on home directory
		home, _ := os.UserHomeDir()
		expected := filepath.Join(home, ".config", "recount")
		if result != expected {
			t.Errorf("ConfigDir() = %q, want %q", result, expected)
		}
	})
}

func TestConfigFile(t *testing.T) {
	original := os.Getenv("XDG_CONFIG_HOME")
	defer func() { _ = os.Setenv("XDG_CONFIG_HOME", original) }()

	_ = os.Setenv("XDG_CONFIG_HOME", "/custom/config")
	result := ConfigFile()
	expected := "/custom/config/recount/config.yaml"
	if result != expected {
		t.Errorf("ConfigFile() = %q, want %q", result, expected)
	}
}

func TestGet(t *testing.T) {
	// Set defaults in viper first (normally done by cmd init)
	SetDefaults()

	// Get() should return defaults when no config file exists
	cfg := Get()
	if cfg == nil {
		t.Fatal("Get() returned nil")
	}

	// Should have default values
	if cfg.Approach != "channel" {
		t.Errorf("Get().Approach = %q, want %q", cfg.Approach, "channel")
	}
	if cfg.Channel.Capacity != 4 {
		t.Errorf("Get().Channel.Capacity = %d, want 4", cfg.Channel.Capacity)
	}
}

func TestLoggingConfig_ResolveLogFile(t *testing.T) {
	t.Run("empty uses config dir", func(t *testing.T) {
		original := os.Getenv("XDG_CONFIG_HOME")
		defer func() { _ = os.Setenv("XDG_CONFIG_HOME", original) }()
		_ = os.Setenv("XDG_CONFIG_HOME", "/custom/config")

		cfg := LoggingConfig{File: ""}
		expected := "/custom/config/recount/debug.log"
		if got := cfg.ResolveLogFile(); got != expected {
			t.Errorf("ResolveLogFile() = %q, want %q", got, expected)
		}
	})

	t.Run("stderr maps to empty", func(t *testing.T) {
		cfg := LoggingConfig{File: "stderr"}
		if got := cfg.ResolveLogFile(); got != "" {
			t.Errorf("ResolveLogFile() = %q, want empty", got)
		}
	})

	t.Run("explicit path unchanged", func(t *testing.T) {
		cfg := LoggingConfig{File: "/var/log/recount.log"}
		if got := cfg.ResolveLogFile(); got != "/var/log/recount.log" {
			t.Errorf("ResolveLogFile() = %q, want /var/log/recount.log", got)
		}
	})

	t.Run("tilde expands to home", func(t *testing.T) {
		home, err := os.UserHomeDir()
		if err != nil {
			t.Skipf("no home directory: %v", err)
		}

		cfg := LoggingConfig{File: "~/logs/recount.log"}
		expected := filepath.Join(home, "logs", "recount.log")
		if got := cfg.ResolveLogFile(); got != expected {
			t.Errorf("ResolveLogFile() = %q, want %q", got, expected)
		}
	})
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	SetDefaults()
	viper.Set("approach", "turbo")
	viper.Set("channel.capacity", 0)
	t.Cleanup(viper.Reset)

	_, err := Load()
	if err == nil {
		t.Fatal("Load() should fail for invalid values")
	}
	for _, field := range []string{"approach", "channel.capacity"} {
		if !strings.Contains(err.Error(), field) {
			t.Errorf("error %q should mention %s", err, field)
		}
	}
	if !errors.Is(err, &errors.ValidationError{}) {
		t.Error("error should match ValidationError")
	}
}
