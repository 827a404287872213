package systems

import (
	"github.com/automoto/dune-runner/components"
	cfg "github.com/automoto/dune-runner/config"
	"github.com/automoto/dune-runner/events"
	"github.com/automoto/dune-runner/systems/factory"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// particleGravity pulls sand particles back down, in px/s².
const particleGravity = 400

// RegisterEffectHandlers turns side-effect events into short-lived visuals
// and log lines.
func RegisterEffectHandlers(ecs *ecs.ECS) {
	events.Explosion.Subscribe(ecs.World, func(w donburi.World, ev events.ExplosionEvent) {
		factory.SpawnExplosion(ecs, ev.X, ev.Y, ev.Scale)
	})
	events.Impact.Subscribe(ecs.World, func(w donburi.World, ev events.ImpactEvent) {
		factory.SpawnImpact(ecs, ev.X, ev.Y)
	})
	events.ParticleBurst.Subscribe(ecs.World, func(w donburi.World, ev events.ParticleBurstEvent) {
		factory.SpawnSandBurst(ecs, ev.X, ev.Y, ev.Count, clock(ecs).Rand)
	})
	events.HitFlash.Subscribe(ecs.World, func(w donburi.World, ev events.HitFlashEvent) {
		if e, ok := lookup(w, ev.Entity); ok && e.HasComponent(components.Flash) {
			components.Flash.Get(e).Remaining = cfg.Effects.HitFlashDuration.D()
		}
	})
	events.SoundCue.Subscribe(ecs.World, func(w donburi.World, ev events.SoundCueEvent) {
		log.Debug("sound", "cue", ev.Name)
	})
	events.ScoreChanged.Subscribe(ecs.World, func(w donburi.World, ev events.ScoreChangedEvent) {
		log.Debug("score", "delta", ev.Delta, "total", ev.Total)
	})
	events.EnemyDefeated.Subscribe(ecs.World, func(w donburi.World, ev events.EnemyDefeatedEvent) {
		log.Info("enemy defeated", "kind", ev.Kind, "x", int(ev.X), "y", int(ev.Y))
	})
}

// UpdateEffects processes visual effect components (flash, fades, auto-destroy)
func UpdateEffects(ecs *ecs.ECS) {
	c := clock(ecs)
	updateFlashEffects(ecs, c)
	updateVFX(ecs, c)
	updateAutoDestroy(ecs, c)
}

func updateFlashEffects(ecs *ecs.ECS, c *components.ClockData) {
	components.Flash.Each(ecs.World, func(e *donburi.Entry) {
		decrement(&components.Flash.Get(e).Remaining, c.Delta)
	})
}

// updateVFX fades effects out and drifts particles.
func updateVFX(ecs *ecs.ECS, c *components.ClockData) {
	dt := c.Seconds()
	components.VFX.Each(ecs.World, func(e *donburi.Entry) {
		vfx := components.VFX.Get(e)
		if vfx.Fade != nil {
			vfx.Alpha, _ = vfx.Fade.Update(float32(dt))
		}
		if vfx.VX == 0 && vfx.VY == 0 {
			return
		}
		obj := components.Object.Get(e)
		vfx.VY += particleGravity * dt
		obj.X += vfx.VX * dt
		obj.Y += vfx.VY * dt
	})
}

func updateAutoDestroy(ecs *ecs.ECS, c *components.ClockData) {
	var toRemove []*donburi.Entry
	components.AutoDestroy.Each(ecs.World, func(e *donburi.Entry) {
		ad := components.AutoDestroy.Get(e)
		decrement(&ad.Remaining, c.Delta)
		if ad.Remaining <= 0 {
			toRemove = append(toRemove, e)
		}
	})
	for _, e := range toRemove {
		removeEntity(ecs, e)
	}
}
