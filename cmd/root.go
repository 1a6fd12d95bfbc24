package cmd

import (
	"fmt"
	"os"

	"github.com/brogergvhs/pokenames/internal/config"
	"github.com/brogergvhs/pokenames/internal/ui"

	"github.com/spf13/cobra"
)

var (
	flagIgnoreConfig bool
	flagDebug        bool
	flagNoProgress   bool
)

var rootCmd = &cobra.Command{
	Use:           "pokenames",
	Short:         "Build the German Pokémon name list and the sprite slug table",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&flagIgnoreConfig, "ignore-config", false, "ignore config and use only CLI flags")
	rootCmd.PersistentFlags().BoolVar(&flagNoProgress, "no-progress", false, "disable progress bars")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// loadConfig fills in the global flags and resolves the effective config.
func loadConfig(opts config.Options) (*config.Config, *ui.Logger, error) {
	opts.IgnoreConfig = flagIgnoreConfig
	opts.Debug = opts.Debug || flagDebug
	opts.NoProgress = opts.NoProgress || flagNoProgress

	cfg, used, err := config.LoadMerged(opts)
	if err != nil {
		return nil, nil, err
	}

	logSvc := ui.NewLogger(cfg.Debug, cfg.LogFormat)
	logSvc.Debugf("config: %s", used)

	return cfg, logSvc, nil
}
