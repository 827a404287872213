package systems

import (
	"image/color"

	"github.com/automoto/dune-runner/components"
	cfg "github.com/automoto/dune-runner/config"
	"github.com/automoto/dune-runner/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	solidColor        = color.RGBA{100, 100, 100, 255}
	platformColor     = color.RGBA{222, 184, 135, 255}
	destructibleColor = color.RGBA{160, 110, 60, 255}
	exitColor         = color.RGBA{0, 255, 0, 255}
	playerColor       = color.RGBA{0, 0, 255, 255}
	bulletColor       = color.RGBA{255, 255, 0, 255}
	projectileColor   = color.RGBA{255, 68, 0, 255}
)

// DrawDebug renders every collision object as an outline, enemies filled
// with their tint, and the short-lived effects.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return // No camera yet
	}
	camera := components.Camera.Get(cameraEntry)
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	camX := float64(width)/2 - camera.Position.X
	camY := float64(height)/2 - camera.Position.Y

	// Viewport in world coordinates
	viewX := camera.Position.X - float64(width)/2
	viewY := camera.Position.Y - float64(height)/2
	viewW := float64(width)
	viewH := float64(height)

	spaceEntry, ok := components.Space.First(ecs.World)
	if ok {
		space := components.Space.Get(spaceEntry)
		for _, obj := range space.Objects() {
			if obj.X+obj.W < viewX || obj.X > viewX+viewW || obj.Y+obj.H < viewY || obj.Y > viewY+viewH {
				continue
			}
			drawObject(screen, obj, camX, camY)
		}
	}

	components.VFX.Each(ecs.World, func(e *donburi.Entry) {
		vfx := components.VFX.Get(e)
		obj := components.Object.Get(e)
		c := vfx.Color
		c.A = uint8(255 * clampFloat(float64(vfx.Alpha), 0, 1))
		vector.FillRect(screen, float32(obj.X+camX), float32(obj.Y+camY), float32(obj.W), float32(obj.H), c, false)
	})
}

func drawObject(screen *ebiten.Image, obj *resolv.Object, camX, camY float64) {
	x, y := obj.X+camX, obj.Y+camY
	e, _ := entryOf(obj)

	switch {
	case obj.HasTags(tags.ResolvEnemy):
		drawEnemy(screen, e, obj, x, y)
		return
	case obj.HasTags(tags.ResolvPlayer):
		c := playerColor
		if e != nil && components.Flash.Get(e).Remaining > 0 {
			c = cfg.White
		}
		strokeRect(screen, x, y, obj.W, obj.H, c)
	case obj.HasTags(tags.ResolvBullet):
		vector.FillRect(screen, float32(x), float32(y), float32(obj.W), float32(obj.H), bulletColor, false)
	case obj.HasTags(tags.ResolvProjectile):
		vector.FillRect(screen, float32(x), float32(y), float32(obj.W), float32(obj.H), projectileColor, false)
	case obj.HasTags(tags.ResolvDestructible):
		strokeRect(screen, x, y, obj.W, obj.H, destructibleColor)
	case obj.HasTags(tags.ResolvPlatform):
		vector.FillRect(screen, float32(x), float32(y), float32(obj.W), float32(obj.H), platformColor, false)
	case obj.HasTags(tags.ResolvExit):
		strokeRect(screen, x, y, obj.W, obj.H, exitColor)
	default:
		strokeRect(screen, x, y, obj.W, obj.H, solidColor)
	}
}

// drawEnemy fills the body with the enemy's tint. A sandworm in its burrow
// animation shows only the part above ground.
func drawEnemy(screen *ebiten.Image, e *donburi.Entry, obj *resolv.Object, x, y float64) {
	if e == nil {
		return
	}
	enemy := components.Enemy.Get(e)
	if enemy.Hidden {
		return
	}

	c := enemy.TintColor
	if components.Flash.Get(e).Remaining > 0 {
		c = cfg.White
	}

	h := obj.H
	if e.HasComponent(components.Animation) {
		if anim := components.Animation.Get(e); anim.Current != "" {
			h *= clampFloat(float64(anim.Value), 0, 1)
		}
	}
	vector.FillRect(screen, float32(x), float32(y+obj.H-h), float32(obj.W), float32(h), c, false)
}

func strokeRect(screen *ebiten.Image, x, y, w, h float64, c color.Color) {
	vector.FillRect(screen, float32(x), float32(y), float32(w), 1, c, false)     // Top
	vector.FillRect(screen, float32(x), float32(y+h-1), float32(w), 1, c, false) // Bottom
	vector.FillRect(screen, float32(x), float32(y), 1, float32(h), c, false)     // Left
	vector.FillRect(screen, float32(x+w-1), float32(y), 1, float32(h), c, false) // Right
}
