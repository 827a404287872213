package systems

import (
	"math/rand"
	"time"

	"github.com/automoto/dune-runner/components"
	cfg "github.com/automoto/dune-runner/config"
	"github.com/automoto/dune-runner/events"
	"github.com/automoto/dune-runner/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// stepBurrow advances the burrow cycle and returns every phase entered this
// tick, in order. Timers are authoritative: a finished animation only ends
// the Burrowing or Emerging wait early, and a missing animation ends it at
// once. The emerge point is picked in [left, right] at height y.
func stepBurrow(b *components.BurrowData, anim *components.AnimationData, dt time.Duration, left, right, y float64, rng *rand.Rand) []components.BurrowPhase {
	b.CycleTimer += dt
	if b.Phase == components.BurrowBurrowing || b.Phase == components.BurrowEmerging {
		b.PhaseTimer += dt
	}

	var entered []components.BurrowPhase
	enter := func(p components.BurrowPhase) {
		b.Phase = p
		b.PhaseTimer = 0
		entered = append(entered, p)
	}

	for {
		switch b.Phase {
		case components.BurrowSurface:
			if b.CycleTimer <= cfg.Burrow.SurfaceDuration.D() {
				return entered
			}
			b.PendingEmerge = &components.Vector{X: pickEmergeX(left, right, rng), Y: y}
			b.CycleTimer = 0
			enter(components.BurrowBurrowing)

		case components.BurrowBurrowing:
			if !animationDone(anim, factory.ClipBurrow, b.PhaseTimer) {
				return entered
			}
			enter(components.BurrowBurrowed)

		case components.BurrowBurrowed:
			if b.CycleTimer <= cfg.Burrow.BurrowedDuration.D() {
				return entered
			}
			b.CycleTimer = 0
			enter(components.BurrowEmerging)

		case components.BurrowEmerging:
			if !animationDone(anim, factory.ClipEmerge, b.PhaseTimer) {
				return entered
			}
			enter(components.BurrowSurface)
			return entered
		}
	}
}

// animationDone reports whether a timed wait on clip is over.
func animationDone(anim *components.AnimationData, clip string, waited time.Duration) bool {
	if anim == nil || !anim.Has(clip) {
		return true
	}
	if anim.ConsumeCompleted(clip) {
		return true
	}
	return waited >= cfg.Burrow.AnimTimeout.D()
}

func pickEmergeX(left, right float64, rng *rand.Rand) float64 {
	if right <= left {
		return left
	}
	if rng == nil {
		return left + rand.Float64()*(right-left)
	}
	return left + rng.Float64()*(right-left)
}

// updateBurrowing runs the cycle for one sandworm and applies the side
// effects of each phase it entered.
func updateBurrowing(ecs *ecs.ECS, e *donburi.Entry, c *components.ClockData) {
	enemy := components.Enemy.Get(e)
	physics := components.Physics.Get(e)
	obj := components.Object.Get(e)
	b := components.Burrow.Get(e)

	var anim *components.AnimationData
	if e.HasComponent(components.Animation) {
		anim = components.Animation.Get(e)
	}

	left, right := enemy.PatrolBounds()
	for _, phase := range stepBurrow(b, anim, c.Delta, left, right, obj.Y, c.Rand) {
		x, y := obj.Center()
		switch phase {
		case components.BurrowBurrowing:
			physics.SpeedX = 0
			if anim != nil {
				anim.SetAnimation(factory.ClipBurrow)
			}
			events.ParticleBurst.Publish(ecs.World, events.ParticleBurstEvent{X: x, Y: y, Count: cfg.Burrow.ParticleCount})
			events.SoundCue.Publish(ecs.World, events.SoundCueEvent{Name: events.SoundBurrow})

		case components.BurrowBurrowed:
			enemy.Hidden = true
			physics.Disabled = true
			physics.SpeedX, physics.SpeedY = 0, 0

		case components.BurrowEmerging:
			if b.PendingEmerge != nil {
				obj.X, obj.Y = b.PendingEmerge.X, b.PendingEmerge.Y
				b.PendingEmerge = nil
			}
			enemy.Hidden = false
			physics.Disabled = false
			if anim != nil {
				anim.SetAnimation(factory.ClipEmerge)
			}
			x, y = obj.Center()
			events.ParticleBurst.Publish(ecs.World, events.ParticleBurstEvent{X: x, Y: y, Count: cfg.Burrow.ParticleCount})
			events.SoundCue.Publish(ecs.World, events.SoundCueEvent{Name: events.SoundEmerge})
		}
	}

	if b.Phase == components.BurrowSurface {
		patrol(enemy, physics, obj.Object)
	} else {
		physics.SpeedX = 0
	}
}
