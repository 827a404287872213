// dune-runner is a side-scrolling desert platformer.
//
// Usage:
//
//	dune-runner play              - Play a level in a window
//	dune-runner sim               - Run a level headless under the autopilot
//	dune-runner levels            - List the bundled levels
//
// Global flags:
//
//	--config <path>     - YAML file overlaid onto the built-in tuning
//	--level <name>      - Level to load (default from config)
//	--seed <value>      - RNG seed (0 = random based on time)
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/automoto/dune-runner/config"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	flagConfig   string
	flagLevel    string
	flagSeed     int64
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dune-runner",
	Short: "Dune Runner - run, jump and shoot across the desert",
	Long: `Dune Runner is a 2D platformer: ride moving platforms, stomp or shoot
Harkonnen troopers, ornithopters and sandworms, and reach the exit.

Examples:
  dune-runner play
  dune-runner play --level desert --seed 42
  dune-runner sim --duration 60s
  dune-runner levels`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLevel, "level", "", "Level name (default from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(levelsCmd)
}

// setup configures logging and applies the config file before any command.
func setup(cmd *cobra.Command, args []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	log.SetLevel(level)
	log.SetReportTimestamp(false)

	path, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if path != "" {
		log.Debug("config applied", "path", path)
	}
	return nil
}

// levelName resolves --level against the configured default.
func levelName() string {
	if flagLevel != "" {
		return flagLevel
	}
	return config.C.Level
}

// seed resolves --seed against the configured default.
func seed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return config.C.Seed
}
