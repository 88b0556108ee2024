package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Iron-Ham/recount/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "recount",
	Short: "Four takes on a mutable click counter",
	Long: `Recount renders the same click counter four ways: a closure over a
captured count, a deliberately stale closure, a shared mutable cell, and
a bounded message channel feeding a reducer loop.

Run without arguments to open the interactive demo. Keys click the
buttons, and switching approaches rebuilds the counter live.`,
	Args: cobra.NoArgs,
	RunE: runRoot,
}

// Execute runs the CLI. Cobra prints the failure itself; callers only
// need the exit code.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.config/recount/config.yaml)")
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))

	rootCmd.Flags().StringVarP(&runApproach, "approach", "a", "", "counter approach: closure, stale, shared, or channel")
	rootCmd.Flags().BoolVar(&runHeadless, "headless", false, "replay a click script without the TUI")
	rootCmd.Flags().StringVar(&runClicks, "clicks", "+", `comma-separated click script for headless mode, e.g. "+,-,+"`)
}

// initConfig loads configuration before any command runs: defaults
// first, then an optional config file, then RECOUNT_* environment
// variables on top.
func initConfig() {
	config.SetDefaults()

	switch cfgFile := viper.GetString("config"); cfgFile {
	case "":
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(config.ConfigDir())
		viper.AddConfigPath(".")
	default:
		viper.SetConfigFile(cfgFile)
	}

	viper.SetEnvPrefix("RECOUNT")
	// Nested keys use underscores: RECOUNT_CHANNEL_CAPACITY sets
	// channel.capacity.
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// A missing config file is fine; defaults cover every key.
	_ = viper.ReadInConfig()
}
