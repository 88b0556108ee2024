package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Iron-Ham/recount/internal/config"
	"github.com/Iron-Ham/recount/internal/errors"
	"github.com/Iron-Ham/recount/internal/tui/settings"
	"github.com/Iron-Ham/recount/internal/tui/styles"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or modify recount configuration",
	Long: `View or modify recount configuration.

Without arguments, displays the current configuration.
Use subcommands to modify settings or create a config file.`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set a configuration value in the user's config file.

Keys use dot notation, e.g.:
  recount config set approach shared
  recount config set channel.capacity 8
  recount config set tui.theme dracula

Valid keys:
  approach            - Counter approach run on startup
                        Options: closure, stale, shared, channel
  channel.capacity    - Bounded channel capacity (1-1024)
  channel.log_drops   - Log every dropped click (true/false)
  tui.show_log        - Show the click log pane on startup (true/false)
  tui.theme           - Color theme: default, monokai, dracula, nord
  tui.theme_file      - Path to a custom theme YAML file
  logging.enabled     - Enable debug logging (true/false)
  logging.level       - Log level: debug, info, warn, error
  logging.file        - Log file path ("stderr" for stderr)
  logging.max_size_mb - Log size in MB that triggers rotation
  logging.max_backups - Rotated log files to keep`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a default config file",
	Long:  `Create a default config file at ~/.config/recount/config.yaml with all available options.`,
	RunE:  runConfigInit,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the config file path",
	RunE:  runConfigPath,
}

var configEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit configuration interactively",
	Long:  `Open an interactive editor for all configuration values. Changes are saved as they are made.`,
	RunE:  runConfigEdit,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configEditCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg := config.Get()
	out := cmd.OutOrStdout()

	source := viper.ConfigFileUsed()
	if source == "" {
		source = "(none - using defaults)"
	}
	fmt.Fprintf(out, "Current configuration:\n\n")
	fmt.Fprintf(out, "Config file: %s\n\n", source)

	fmt.Fprintf(out, "approach: %s\n", cfg.Approach)

	fmt.Fprintln(out, "channel:")
	fmt.Fprintf(out, "  capacity: %d\n", cfg.Channel.Capacity)
	fmt.Fprintf(out, "  log_drops: %v\n", cfg.Channel.LogDrops)

	fmt.Fprintln(out, "tui:")
	fmt.Fprintf(out, "  show_log: %v\n", cfg.TUI.ShowLog)
	fmt.Fprintf(out, "  theme: %s\n", cfg.TUI.Theme)
	fmt.Fprintf(out, "  theme_file: %s\n", cfg.TUI.ThemeFile)

	fmt.Fprintln(out, "logging:")
	fmt.Fprintf(out, "  enabled: %v\n", cfg.Logging.Enabled)
	fmt.Fprintf(out, "  level: %s\n", cfg.Logging.Level)
	fmt.Fprintf(out, "  file: %s\n", cfg.Logging.File)
	fmt.Fprintf(out, "  max_size_mb: %d\n", cfg.Logging.MaxSizeMB)
	fmt.Fprintf(out, "  max_backups: %d\n", cfg.Logging.MaxBackups)

	return nil
}

// configKeys maps each settable key to the parser that turns its raw
// command-line value into a typed one. Parser errors carry only the
// reason; runConfigSet prefixes the key.
var configKeys = map[string]func(value string) (any, error){
	"approach":            oneOf(config.ValidApproaches),
	"channel.capacity":    intBetween(1, 1024),
	"channel.log_drops":   parseBool,
	"tui.show_log":        parseBool,
	"tui.theme":           oneOf(styles.ValidThemes),
	"tui.theme_file":      parseString,
	"logging.enabled":     parseBool,
	"logging.level":       oneOf(config.ValidLogLevels),
	"logging.file":        parseString,
	"logging.max_size_mb": nonNegativeInt,
	"logging.max_backups": nonNegativeInt,
}

func parseString(value string) (any, error) {
	return value, nil
}

func parseBool(value string) (any, error) {
	switch value {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}
	return nil, errors.New("expected true or false")
}

func nonNegativeInt(value string) (any, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return nil, errors.New("expected integer")
	}
	if n < 0 {
		return nil, errors.New("must be non-negative")
	}
	return n, nil
}

func intBetween(low, high int) func(string) (any, error) {
	return func(value string) (any, error) {
		n, err := strconv.Atoi(value)
		if err != nil {
			return nil, errors.New("expected integer")
		}
		if n < low || n > high {
			return nil, fmt.Errorf("must be between %d and %d", low, high)
		}
		return n, nil
	}
}

func oneOf(valid func() []string) func(string) (any, error) {
	return func(value string) (any, error) {
		if !slices.Contains(valid(), value) {
			return nil, fmt.Errorf("%s\nValid options: %s", value, strings.Join(valid(), ", "))
		}
		return value, nil
	}
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key, value := args[0], args[1]

	parse, ok := configKeys[key]
	if !ok {
		return fmt.Errorf("unknown configuration key: %s\nRun 'recount config set --help' to see valid keys", key)
	}
	typedValue, err := parse(value)
	if err != nil {
		return fmt.Errorf("invalid value for %s: %w", key, err)
	}

	if err := os.MkdirAll(config.ConfigDir(), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	viper.Set(key, typedValue)
	configFile := config.ConfigFile()
	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Set %s = %v\n", key, typedValue)
	fmt.Fprintf(out, "Config saved to %s\n", configFile)

	return nil
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	configFile := config.ConfigFile()
	if _, err := os.Stat(configFile); err == nil {
		return fmt.Errorf("%w\nUse 'recount config set' to modify values",
			errors.NewAlreadyExistsError("config file", configFile))
	}

	if err := os.MkdirAll(config.ConfigDir(), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Every key appears commented so the file doubles as documentation.
	configContent := `# Recount Configuration

# Counter approach run on startup
# Options: closure, stale, shared, channel
approach: channel

# Message channel settings (channel approach only)
channel:
  # Bounded capacity; clicks arriving while it is full are dropped
  capacity: 4
  # Log a debug entry for every dropped click
  log_drops: false

# TUI (terminal user interface) settings
tui:
  # Show the click log pane on startup
  show_log: true
  # Color theme
  # Options: default, monokai, dracula, nord
  theme: default
  # Path to a custom theme YAML file (overrides theme when set)
  theme_file: ""

# Logging settings
logging:
  enabled: true
  # Log level: debug, info, warn, error
  # Click handlers log at debug
  level: info
  # Log file path; empty for <config dir>/debug.log, "stderr" for stderr
  file: ""
  # Rotate the log once it exceeds this size in megabytes
  max_size_mb: 10
  # Rotated log files to keep
  max_backups: 3
`

	if err := os.WriteFile(configFile, []byte(configContent), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Created config file at %s\n", configFile)
	fmt.Fprintln(out, "Edit this file to customize recount's behavior.")

	return nil
}

func runConfigPath(cmd *cobra.Command, args []string) error {
	configFile := config.ConfigFile()
	out := cmd.OutOrStdout()

	if active := viper.ConfigFileUsed(); active != "" {
		fmt.Fprintf(out, "Active config: %s\n", active)
	} else {
		fmt.Fprintf(out, "Default path: %s (not created)\n", configFile)
	}

	fmt.Fprintln(out, "\nSearch paths:")
	fmt.Fprintf(out, "  1. %s\n", filepath.Join(config.ConfigDir(), "config.yaml"))
	fmt.Fprintf(out, "  2. ./config.yaml (current directory)\n")
	fmt.Fprintln(out, "\nEnvironment variables: RECOUNT_* (e.g., RECOUNT_CHANNEL_CAPACITY)")

	return nil
}

func runConfigEdit(cmd *cobra.Command, args []string) error {
	return settings.Run()
}
