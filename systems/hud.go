package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/dune-runner/components"
	"github.com/automoto/dune-runner/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const (
	hudBarWidth  = 130
	hudBarHeight = 13
	hudMargin    = 10
	hudLine      = 18
)

var hudTextColor = color.RGBA{240, 230, 200, 255}

// DrawHUD renders the player's health bar, ammo and score in the top-left
// corner, and the end-of-run banner.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	if !fonts.Loaded(fonts.HUD) {
		return
	}
	face := fonts.HUD.Get()
	y := hudMargin + hudBarHeight + hudLine

	if playerEntry, ok := components.Player.First(ecs.World); ok {
		hp := components.Health.Get(playerEntry)
		player := components.Player.Get(playerEntry)

		vector.FillRect(screen,
			float32(hudMargin), float32(hudMargin),
			float32(hudBarWidth), float32(hudBarHeight),
			color.RGBA{40, 40, 40, 255}, false)

		ratio := float32(0)
		if hp.Max > 0 {
			ratio = float32(hp.Current) / float32(hp.Max)
		}
		vector.FillRect(screen,
			float32(hudMargin), float32(hudMargin),
			float32(hudBarWidth)*ratio, float32(hudBarHeight),
			color.RGBA{40, 220, 40, 255}, false)

		text.Draw(screen, fmt.Sprintf("AMMO %d/%d", player.Ammo, player.MaxAmmo), face, hudMargin, y, hudTextColor)
		y += hudLine
	}

	if scoreEntry, ok := components.Score.First(ecs.World); ok {
		score := components.Score.Get(scoreEntry)
		text.Draw(screen, fmt.Sprintf("SCORE %d", score.Score), face, hudMargin, y, hudTextColor)
		y += hudLine
		text.Draw(screen, fmt.Sprintf("ENEMIES %d", EnemiesRemaining(ecs)), fonts.HUDSmall.Get(), hudMargin, y, hudTextColor)
	}

	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry)
	banner := ""
	switch {
	case level.Completed:
		banner = "LEVEL COMPLETE"
	case level.Failed:
		banner = "GAME OVER"
	}
	if banner != "" {
		title := fonts.Title.Get()
		w := text.BoundString(title, banner).Dx()
		text.Draw(screen, banner, title, (screen.Bounds().Dx()-w)/2, screen.Bounds().Dy()/2, hudTextColor)
	}
}
