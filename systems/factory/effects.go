package factory

import (
	"image/color"
	"math"
	"math/rand"
	"time"

	"github.com/automoto/dune-runner/archetypes"
	"github.com/automoto/dune-runner/components"
	cfg "github.com/automoto/dune-runner/config"
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// VFX kinds
const (
	VFXExplosion = "explosion"
	VFXImpact    = "impact"
	VFXParticle  = "particle"
)

// SpawnVFX creates a fading effect centered at (x, y). The object is for
// position only and is never added to the collision space.
func SpawnVFX(ecs *ecs.ECS, x, y, size float64, kind string, c color.RGBA, life time.Duration) *donburi.Entry {
	entry := archetypes.VFXEffect.Spawn(ecs)

	obj := resolv.NewObject(x-size/2, y-size/2, size, size)
	obj.Data = entry
	components.Object.Set(entry, &components.ObjectData{Object: obj})

	components.VFX.Set(entry, &components.VFXData{
		Kind:  kind,
		Color: c,
		Size:  size,
		Fade:  gween.New(1, 0, float32(life.Seconds()), ease.OutCubic),
		Alpha: 1,
	})
	components.AutoDestroy.Set(entry, &components.AutoDestroyData{Remaining: life})

	return entry
}

// SpawnExplosion creates an explosion VFX at the given position
func SpawnExplosion(ecs *ecs.ECS, x, y, scale float64) *donburi.Entry {
	return SpawnVFX(ecs, x, y, 48*scale, VFXExplosion, cfg.Orange, cfg.Effects.ExplosionDuration.D())
}

// SpawnImpact creates a small spark where a bullet hit something solid.
func SpawnImpact(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	return SpawnVFX(ecs, x, y, 12, VFXImpact, cfg.Gold, cfg.Effects.ImpactDuration.D())
}

// SpawnSandBurst throws count sand particles out of (x, y) in random directions.
func SpawnSandBurst(ecs *ecs.ECS, x, y float64, count int, rng *rand.Rand) {
	for i := 0; i < count; i++ {
		angle := 2 * math.Pi * float64(i) / float64(count)
		speed := 100.0
		if rng != nil {
			angle = rng.Float64() * 2 * math.Pi
			speed += rng.Float64() * 100
		}
		p := SpawnVFX(ecs, x, y, 6, VFXParticle, cfg.Sand, cfg.Effects.ParticleDuration.D())
		vfx := components.VFX.Get(p)
		vfx.VX = math.Cos(angle) * speed
		vfx.VY = math.Sin(angle)*speed - 100
	}
}
