package systems

import (
	"time"

	"github.com/automoto/dune-runner/components"
	cfg "github.com/automoto/dune-runner/config"
	"github.com/automoto/dune-runner/events"
	"github.com/automoto/dune-runner/systems/factory"
	"github.com/charmbracelet/log"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// stepRanged advances the Harkonnen state machine by one tick and reports
// whether the shoot timer fired. Patrol is suspended during the attack
// stance; the shoot timer runs regardless.
func stepRanged(r *components.RangedData, enemy *components.EnemyData, physics *components.PhysicsData, obj, target *resolv.Object, dt time.Duration) bool {
	decrement(&r.AttackCooldownRemaining, dt)

	switch {
	case r.InAttackStance:
		physics.SpeedX = 0
		decrement(&r.StanceRemaining, dt)
		if r.StanceRemaining <= 0 {
			r.InAttackStance = false
			r.AttackCooldownRemaining = cfg.Ranged.AttackCooldown.D()
		}
	case target != nil && r.AttackCooldownRemaining <= 0 && inAttackRange(r, obj, target):
		r.InAttackStance = true
		r.StanceRemaining = cfg.Ranged.StanceDuration.D()
		physics.SpeedX = 0

		toward := sign(target.X + target.W/2 - (obj.X + obj.W/2))
		obj.X += cfg.Ranged.StanceNudge * toward
		enemy.Facing = toward
	default:
		patrol(enemy, physics, obj)
	}

	r.ShootTimer += dt
	if r.ShootTimer >= cfg.Ranged.ShootInterval.D() {
		r.ShootTimer = 0
		return true
	}
	return false
}

func inAttackRange(r *components.RangedData, obj, target *resolv.Object) bool {
	return distance(obj.X+obj.W/2, obj.Y+obj.H/2, target.X+target.W/2, target.Y+target.H/2) < r.AttackRange
}

// fireProjectile spawns a shot unless the enemy's pool is exhausted, in
// which case the request is dropped.
func fireProjectile(ecs *ecs.ECS, e *donburi.Entry, r *components.RangedData) {
	if r.LiveProjectiles >= r.PoolSize {
		log.Debug("projectile dropped", "enemy", e.Entity(), "live", r.LiveProjectiles)
		return
	}
	factory.CreateProjectile(ecs, e)
	r.LiveProjectiles++
	events.SoundCue.Publish(ecs.World, events.SoundCueEvent{Name: events.SoundEnemyShoot})
}
