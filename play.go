package main

import (
	"github.com/automoto/dune-runner/config"
	"github.com/automoto/dune-runner/fonts"
	"github.com/automoto/dune-runner/scenes"
	"github.com/automoto/dune-runner/systems"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a level in a window",
	Long: `Open a window and play a level.

Controls:
  A/D or Left/Right - Move
  Space/W/Up        - Jump
  J/X               - Fire`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

type Game struct {
	scene *scenes.DesertScene
	saved bool
}

func (g *Game) Update() error {
	g.scene.Update()
	if g.scene.Done() && !g.saved {
		g.saved = true
		saveRun(g.scene.Stats())
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

func runPlay(cmd *cobra.Command, args []string) error {
	if err := fonts.LoadDefaults(); err != nil {
		return err
	}
	// Without a save store the game still runs; high scores are just not kept.
	_ = systems.InitPersistence()

	scene, err := scenes.NewDesertScene(levelName(), seed(), scenes.Keyboard)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetTPS(config.C.TPS)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	return ebiten.RunGame(&Game{scene: scene})
}

// saveRun records the run as the level's high score if it beats it.
func saveRun(s scenes.Stats) {
	saved, err := systems.SaveHighScore(s.Level, s.Score, s.Completed)
	if err != nil {
		log.Warn("could not save high score", "level", s.Level, "err", err)
		return
	}
	if saved {
		log.Info("new high score", "level", s.Level, "score", s.Score.Score)
	}
}
