package config

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/Iron-Ham/recount/internal/errors"
)

// Bounds enforced by Validate. A capacity above maxChannelCapacity would
// never drop a click, and the bounded-channel demo would have nothing to
// show.
const (
	maxChannelCapacity = 1024
	maxLogSizeMB       = 1000
)

// ValidLogLevels returns the accepted logging.level values.
func ValidLogLevels() []string {
	return []string{"debug", "info", "warn", "error"}
}

// Validate checks every field and returns one error per rejected value.
func (c *Config) Validate() []*errors.ValidationError {
	var errs []*errors.ValidationError
	bad := func(field string, value any, reason string) {
		errs = append(errs, errors.NewValidationError(reason).WithField(field).WithValue(value))
	}

	if c.Approach != "" && !IsValidApproach(c.Approach) {
		bad("approach", c.Approach, "must be one of: "+strings.Join(ValidApproaches(), ", "))
	}

	if c.Channel.Capacity < 1 {
		bad("channel.capacity", c.Channel.Capacity, "must be at least 1")
	}
	if c.Channel.Capacity > maxChannelCapacity {
		bad("channel.capacity", c.Channel.Capacity, fmt.Sprintf("exceeds maximum of %d", maxChannelCapacity))
	}

	if c.TUI.ThemeFile != "" {
		if strings.ContainsRune(c.TUI.ThemeFile, '\x00') {
			bad("tui.theme_file", c.TUI.ThemeFile, "path contains invalid null character")
		} else if _, err := os.Stat(c.TUI.ThemeFile); err != nil {
			bad("tui.theme_file", c.TUI.ThemeFile, "file does not exist")
		}
	}

	if c.Logging.Level != "" && !slices.Contains(ValidLogLevels(), c.Logging.Level) {
		bad("logging.level", c.Logging.Level, "must be one of: "+strings.Join(ValidLogLevels(), ", "))
	}
	if c.Logging.MaxSizeMB <= 0 {
		bad("logging.max_size_mb", c.Logging.MaxSizeMB, "must be positive")
	}
	if c.Logging.MaxSizeMB > maxLogSizeMB {
		bad("logging.max_size_mb", c.Logging.MaxSizeMB, fmt.Sprintf("exceeds maximum of %dMB", maxLogSizeMB))
	}
	if c.Logging.MaxBackups < 0 {
		bad("logging.max_backups", c.Logging.MaxBackups, "must be non-negative")
	}
	if c.Logging.File != "" && strings.ContainsRune(c.Logging.File, '\x00') {
		bad("logging.file", c.Logging.File, "path contains invalid null character")
	}

	return errs
}
