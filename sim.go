package main

import (
	"fmt"
	"os"
	"time"

	"github.com/automoto/dune-runner/assets"
	"github.com/automoto/dune-runner/config"
	"github.com/automoto/dune-runner/scenes"
	"github.com/automoto/dune-runner/systems"
	"github.com/spf13/cobra"
)

var (
	flagDuration time.Duration
	flagNoSave   bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a level headless under the autopilot",
	Long: `Run a level without a window at the configured tick rate, with the
autopilot at the controls, and print a summary of the run.

Examples:
  dune-runner sim
  dune-runner sim --duration 2m --seed 7`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the bundled levels",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		names, err := assets.NewLevelLoader().LevelNames()
		if err != nil {
			return err
		}
		for _, name := range names {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
		return nil
	},
}

func init() {
	simCmd.Flags().DurationVar(&flagDuration, "duration", time.Minute, "Simulated time limit")
	simCmd.Flags().BoolVar(&flagNoSave, "no-save", false, "Do not record the run as a high score")
}

func runSim(cmd *cobra.Command, args []string) error {
	scene, err := scenes.NewDesertScene(levelName(), seed(), scenes.Autopilot)
	if err != nil {
		return err
	}

	stats := simulate(scene, time.Second/time.Duration(max(config.C.TPS, 1)), flagDuration)
	printStats(cmd, stats, scene.Seed())

	if !flagNoSave {
		if err := systems.InitPersistence(); err == nil {
			saveRun(stats)
		}
	}
	if stats.Failed {
		os.Exit(2)
	}
	return nil
}

// simulate steps the scene until the level ends or limit simulated time passes.
func simulate(scene *scenes.DesertScene, dt, limit time.Duration) scenes.Stats {
	for elapsed := time.Duration(0); elapsed < limit && !scene.Done(); elapsed += dt {
		scene.Step(dt)
	}
	return scene.Stats()
}

func printStats(cmd *cobra.Command, s scenes.Stats, seed int64) {
	outcome := "timed out"
	switch {
	case s.Completed:
		outcome = "completed"
	case s.Failed:
		outcome = "failed"
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "level:      %s (seed %d)\n", s.Level, seed)
	fmt.Fprintf(out, "outcome:    %s after %s (%d ticks)\n", outcome, s.Elapsed.Round(time.Millisecond), s.Ticks)
	fmt.Fprintf(out, "score:      %d\n", s.Score.Score)
	fmt.Fprintf(out, "defeated:   %d (%d remaining)\n", s.Score.EnemiesDefeated, s.EnemiesRemaining)
	fmt.Fprintf(out, "shots:      %d\n", s.Score.ShotsFired)
	fmt.Fprintf(out, "health:     %d\n", s.PlayerHealth)
}
