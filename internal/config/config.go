// Package config defines recount's settings and loads them through viper.
// Values come from three layers: built-in defaults, an optional YAML file,
// and RECOUNT_* environment variables on top.
package config

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/viper"

	"github.com/Iron-Ham/recount/internal/errors"
)

// Config is the root of the settings tree.
type Config struct {
	Approach string        `mapstructure:"approach"`
	Channel  ChannelConfig `mapstructure:"channel"`
	TUI      TUIConfig     `mapstructure:"tui"`
	Logging  LoggingConfig `mapstructure:"logging"`
}

// ChannelConfig tunes the bounded channel behind the channel approach.
type ChannelConfig struct {
	// Capacity is how many undelivered clicks the channel holds before
	// new ones are dropped. Must be at least 1.
	Capacity int `mapstructure:"capacity"`
	// LogDrops writes a debug entry for each dropped click.
	LogDrops bool `mapstructure:"log_drops"`
}

// TUIConfig holds terminal UI settings.
type TUIConfig struct {
	// ShowLog opens the click log pane on startup; 'l' toggles it later.
	ShowLog bool `mapstructure:"show_log"`
	// Theme names a built-in color theme: default, monokai, dracula, or nord.
	Theme string `mapstructure:"theme"`
	// ThemeFile points at a custom theme YAML file. When set, it takes
	// precedence over Theme.
	ThemeFile string `mapstructure:"theme_file"`
}

// LoggingConfig shapes the JSON debug log.
type LoggingConfig struct {
	// Enabled turns the debug log on or off.
	Enabled bool `mapstructure:"enabled"`
	// Level is the minimum severity written: debug, info, warn, or error.
	Level string `mapstructure:"level"`
	// File is where log lines go. Empty means <config dir>/debug.log,
	// the literal string "stderr" sends them to stderr, and a leading
	// ~/ expands to the home directory.
	File string `mapstructure:"file"`
	// MaxSizeMB caps the log file size before it rotates.
	MaxSizeMB int `mapstructure:"max_size_mb"`
	// MaxBackups is how many rotated files to keep around.
	MaxBackups int `mapstructure:"max_backups"`
}

// ResolveLogFile turns the File setting into a concrete path. An empty
// result means stderr; callers never see the "stderr" sentinel itself.
func (c *LoggingConfig) ResolveLogFile() string {
	switch {
	case c.File == "":
		return filepath.Join(ConfigDir(), "debug.log")
	case c.File == "stderr":
		return ""
	case strings.HasPrefix(c.File, "~/"):
		home, err := os.UserHomeDir()
		if err != nil {
			return c.File
		}
		return filepath.Join(home, c.File[2:])
	default:
		return c.File
	}
}

// Default builds the configuration recount runs with when nothing else
// is set.
func Default() *Config {
	return &Config{
		Approach: "channel",
		Channel: ChannelConfig{
			Capacity: 4,
			LogDrops: false,
		},
		TUI: TUIConfig{
			ShowLog:   true, // the click log stands in for the browser console
			Theme:     "default",
			ThemeFile: "",
		},
		Logging: LoggingConfig{
			Enabled:    true,
			Level:      "info",
			File:       "",
			MaxSizeMB:  10,
			MaxBackups: 3,
		},
	}
}

// SetDefaults seeds viper so every key resolves even without a config file.
func SetDefaults() {
	d := Default()
	for key, value := range map[string]any{
		"approach":            d.Approach,
		"channel.capacity":    d.Channel.Capacity,
		"channel.log_drops":   d.Channel.LogDrops,
		"tui.show_log":        d.TUI.ShowLog,
		"tui.theme":           d.TUI.Theme,
		"tui.theme_file":      d.TUI.ThemeFile,
		"logging.enabled":     d.Logging.Enabled,
		"logging.level":       d.Logging.Level,
		"logging.file":        d.Logging.File,
		"logging.max_size_mb": d.Logging.MaxSizeMB,
		"logging.max_backups": d.Logging.MaxBackups,
	} {
		viper.SetDefault(key, value)
	}
}

// Load unmarshals viper's merged state and validates it. The returned
// error joins one ValidationError per rejected field.
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		joined := make([]error, len(errs))
		for i, e := range errs {
			joined[i] = e
		}
		return nil, errors.Join(joined...)
	}

	return &cfg, nil
}

// Get is Load with a safety net: any load failure yields the defaults,
// so callers that cannot surface an error still get a usable config.
func Get() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// ConfigDir is where recount keeps its config file and debug log.
// XDG_CONFIG_HOME wins when set; otherwise ~/.config/recount.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "recount")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".recount"
	}
	return filepath.Join(home, ".config", "recount")
}

// ConfigFile is the full path of the YAML config file.
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// ValidApproaches lists the four counter implementations, in the order
// the UI presents them.
func ValidApproaches() []string {
	return []string{"closure", "stale", "shared", "channel"}
}

// IsValidApproach reports whether name is one of the four approaches.
func IsValidApproach(name string) bool {
	return slices.Contains(ValidApproaches(), name)
}
