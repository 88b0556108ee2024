package cmd

import (
	"fmt"
	"os"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/Iron-Ham/recount/internal/config"
	"github.com/Iron-Ham/recount/internal/demo"
	"github.com/Iron-Ham/recount/internal/logging"
	"github.com/Iron-Ham/recount/internal/tui"
	"github.com/Iron-Ham/recount/internal/tui/styles"
)

var (
	runApproach string
	runHeadless bool
	runClicks   string
)

func runRoot(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	name := cfg.Approach
	if runApproach != "" {
		name = runApproach
	}
	approach, err := demo.Parse(name)
	if err != nil {
		return err
	}

	log, err := buildLogger(cfg)
	if err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}
	defer log.Close()

	if runHeadless || !term.IsTerminal(int(os.Stdout.Fd())) {
		return replayClicks(cmd, approach, cfg, log)
	}

	applyTheme(cfg, log)

	// Re-apply the log level when the config file changes on disk
	viper.OnConfigChange(func(e fsnotify.Event) {
		log.Debug("config file changed", "file", e.Name)
		log.SetLevel(viper.GetString("logging.level"))
	})
	viper.WatchConfig()

	app, err := tui.New(cfg, log, approach)
	if err != nil {
		return err
	}
	if err := app.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}

// buildLogger creates the configured logger, or a no-op logger when
// logging is disabled.
func buildLogger(cfg *config.Config) (*logging.Logger, error) {
	if !cfg.Logging.Enabled {
		return logging.NopLogger(), nil
	}
	return logging.NewRotatingLogger(cfg.Logging.ResolveLogFile(), cfg.Logging.Level, logging.RotationConfig{
		MaxSizeMB:  cfg.Logging.MaxSizeMB,
		MaxBackups: cfg.Logging.MaxBackups,
	})
}

// applyTheme activates the configured theme. A theme file takes
// precedence over the named theme. Theme problems are logged and the
// previous theme stays active; they never stop the demo.
func applyTheme(cfg *config.Config, log *logging.Logger) {
	if _, errs := styles.DiscoverCustomThemes(); len(errs) > 0 {
		for _, err := range errs {
			log.Warn("skipping custom theme", "error", err)
		}
	}

	if cfg.TUI.ThemeFile != "" {
		theme, err := styles.LoadThemeFile(cfg.TUI.ThemeFile)
		if err != nil {
			log.Warn("theme file not usable", "path", cfg.TUI.ThemeFile, "error", err)
		} else {
			styles.RegisterCustomTheme(styles.ThemeName(theme.Name), theme)
			styles.SetActiveTheme(styles.ThemeName(theme.Name))
			return
		}
	}

	if !styles.IsValidTheme(cfg.TUI.Theme) {
		log.Warn("unknown theme, keeping default", "theme", cfg.TUI.Theme)
		return
	}
	styles.SetActiveTheme(styles.ThemeName(cfg.TUI.Theme))
}
