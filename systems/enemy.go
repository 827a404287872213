package systems

import (
	"math"

	"github.com/automoto/dune-runner/components"
	cfg "github.com/automoto/dune-runner/config"
	"github.com/automoto/dune-runner/events"
	"github.com/automoto/dune-runner/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEnemies runs each enemy's state machine. It reads the player's
// position, which the broad phase has already settled for this tick.
func UpdateEnemies(ecs *ecs.ECS) {
	c := clock(ecs)
	worldW, worldH := worldBounds(ecs)

	var target *resolv.Object
	if player, obj, ok := playerObject(ecs); ok && !player.HasComponent(components.Death) {
		target = obj
	}

	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		enemy := components.Enemy.Get(e)
		if enemy.Defeated || e.HasComponent(components.Death) {
			return
		}
		physics := components.Physics.Get(e)
		obj := components.Object.Get(e).Object

		switch enemy.Kind {
		case components.EnemyRanged:
			ranged := components.Ranged.Get(e)
			if stepRanged(ranged, enemy, physics, obj, target, c.Delta) {
				fireProjectile(ecs, e, ranged)
			}
		case components.EnemyFlying:
			stepFlying(components.Flying.Get(e), enemy, physics, obj, target, c.Delta, c.Rand, worldW, worldH)
		case components.EnemyBurrowing:
			updateBurrowing(ecs, e, c)
		default:
			patrol(enemy, physics, obj)
		}

		refresh(obj)
	})
}

// patrol clamps the enemy to its patrol range, turning around on the tick
// the range is left, and sets the walking velocity.
func patrol(enemy *components.EnemyData, physics *components.PhysicsData, obj *resolv.Object) {
	left, right := enemy.PatrolBounds()
	if obj.X > right {
		obj.X = right
		enemy.Direction = -1
	} else if obj.X < left {
		obj.X = left
		enemy.Direction = 1
	}

	physics.SpeedX = math.Abs(enemy.Speed) * enemy.Direction
	enemy.Facing = enemy.Direction
}

// DamageEnemy applies damage and reports whether this call defeated the
// enemy. Defeat disables the body at once, publishes a single defeat and
// explosion, and schedules removal. Calls on a defeated enemy, or on one
// whose body is switched off while burrowed, do nothing.
func DamageEnemy(ecs *ecs.ECS, id donburi.Entity, amount int) bool {
	e, ok := lookup(ecs.World, id)
	if !ok || !e.HasComponent(components.Enemy) {
		return false
	}
	enemy := components.Enemy.Get(e)
	if enemy.Defeated || components.Physics.Get(e).Disabled {
		return false
	}

	health := components.Health.Get(e)
	health.Current -= amount

	obj := components.Object.Get(e)
	x, y := obj.Center()

	events.HitFlash.Publish(ecs.World, events.HitFlashEvent{Entity: id})
	events.SoundCue.Publish(ecs.World, events.SoundCueEvent{Name: events.SoundHit})
	if enemy.Kind == components.EnemyBurrowing {
		events.ParticleBurst.Publish(ecs.World, events.ParticleBurstEvent{X: x, Y: y, Count: cfg.Burrow.ParticleCount / 2})
	}

	if health.Current > 0 {
		return false
	}

	health.Current = 0
	enemy.Defeated = true

	physics := components.Physics.Get(e)
	physics.Disabled = true
	physics.SpeedX = 0
	physics.SpeedY = 0

	scale := 1.0
	if t, ok := cfg.Enemy.Types[enemy.Kind.String()]; ok && t.Scale > 0 {
		scale = t.Scale
	}
	events.EnemyDefeated.Publish(ecs.World, events.EnemyDefeatedEvent{
		Enemy: id,
		Kind:  enemy.Kind.String(),
		X:     x,
		Y:     y,
	})
	events.Explosion.Publish(ecs.World, events.ExplosionEvent{X: x, Y: y, Scale: scale})
	events.SoundCue.Publish(ecs.World, events.SoundCueEvent{Name: events.SoundExplosion})

	donburi.Add(e, components.Death, &components.DeathData{
		Timer: cfg.Enemy.DeathDelay.D(),
	})

	return true
}
