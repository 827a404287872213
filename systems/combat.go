package systems

import (
	"github.com/automoto/dune-runner/components"
	cfg "github.com/automoto/dune-runner/config"
	"github.com/automoto/dune-runner/events"
	"github.com/automoto/dune-runner/tags"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// RegisterCombatHandlers subscribes the overlap handlers. Call it once per
// world, before the first tick.
func RegisterCombatHandlers(ecs *ecs.ECS) {
	events.BulletEnemy.Subscribe(ecs.World, func(w donburi.World, ev events.BulletEnemyOverlap) {
		onBulletEnemy(ecs, ev)
	})
	events.PlayerEnemy.Subscribe(ecs.World, func(w donburi.World, ev events.PlayerEnemyOverlap) {
		onPlayerEnemy(ecs, ev)
	})
	events.BulletDestructible.Subscribe(ecs.World, func(w donburi.World, ev events.BulletDestructibleOverlap) {
		onBulletDestructible(ecs, ev)
	})
	events.ProjectilePlayer.Subscribe(ecs.World, func(w donburi.World, ev events.ProjectilePlayerOverlap) {
		onProjectilePlayer(ecs, ev)
	})
}

// UpdateCombat delivers this tick's overlaps, resolves damage queued on the
// player and then flushes the side-effect events.
func UpdateCombat(ecs *ecs.ECS) {
	events.ProcessOverlaps(ecs.World)
	processPlayerDamage(ecs)
	events.ProcessEffects(ecs.World)
}

// onBulletEnemy consumes the bullet unless the enemy went into hiding
// earlier in the tick. Only a hit that defeats the enemy counts toward the
// score.
func onBulletEnemy(ecs *ecs.ECS, ev events.BulletEnemyOverlap) {
	bullet, ok := lookup(ecs.World, ev.Bullet)
	if !ok {
		return
	}
	if enemy, ok := lookup(ecs.World, ev.Enemy); ok && components.Enemy.Get(enemy).Hidden {
		return
	}
	damage := components.Bullet.Get(bullet).Damage
	destroyBullet(ecs, ev.Bullet)

	if DamageEnemy(ecs, ev.Enemy, damage) {
		recordKill(ecs)
	}
}

// onPlayerEnemy tells a stomp from a hazard contact by the contact flags.
func onPlayerEnemy(ecs *ecs.ECS, ev events.PlayerEnemyOverlap) {
	player, ok := lookup(ecs.World, ev.Player)
	if !ok {
		return
	}
	enemy, ok := lookup(ecs.World, ev.Enemy)
	if !ok {
		return
	}
	if components.Enemy.Get(enemy).Defeated || components.Physics.Get(enemy).Disabled {
		return
	}
	if player.HasComponent(components.Death) {
		return
	}

	if isStomp(components.Contact.Get(player), components.Contact.Get(enemy)) {
		if DamageEnemy(ecs, ev.Enemy, cfg.Combat.StompDamage) {
			recordKill(ecs)
		}
		components.Physics.Get(player).SpeedY = cfg.Player.StompBounce
		return
	}

	queuePlayerDamage(player, cfg.Combat.ContactDamage, knockbackFrom(player, enemy))
}

func isStomp(player, enemy *components.ContactData) bool {
	return player.Touching.Down() && enemy.Touching.Up()
}

func onBulletDestructible(ecs *ecs.ECS, ev events.BulletDestructibleOverlap) {
	bullet, ok := lookup(ecs.World, ev.Bullet)
	if !ok {
		return
	}
	x, y := components.Object.Get(bullet).Center()
	destroyBullet(ecs, ev.Bullet)
	events.Impact.Publish(ecs.World, events.ImpactEvent{X: x, Y: y})

	if DamageDestructible(ecs, ev.Destructible) {
		addScore(ecs, cfg.Combat.DestructibleScore)
	}
}

func onProjectilePlayer(ecs *ecs.ECS, ev events.ProjectilePlayerOverlap) {
	projectile, ok := lookup(ecs.World, ev.Projectile)
	if !ok {
		return
	}
	damage := components.Projectile.Get(projectile).Damage
	player, ok := lookup(ecs.World, ev.Player)
	if ok && !player.HasComponent(components.Death) {
		queuePlayerDamage(player, damage, knockbackFrom(player, projectile))
	}
	destroyProjectile(ecs, ev.Projectile)
}

// knockbackFrom pushes the player away from source and up.
func knockbackFrom(player, source *donburi.Entry) components.Vector {
	px, _ := components.Object.Get(player).Center()
	sx, _ := components.Object.Get(source).Center()
	return components.Vector{
		X: sign(px-sx) * cfg.Combat.HitKnockback,
		Y: cfg.Combat.KnockbackUpward,
	}
}

// DamageDestructible registers one hit and reports whether it landed.
// The crate explodes and is removed when its hits run out.
func DamageDestructible(ecs *ecs.ECS, id donburi.Entity) bool {
	e, ok := lookup(ecs.World, id)
	if !ok || !e.HasComponent(components.Destructible) {
		return false
	}
	d := components.Destructible.Get(e)
	if d.Destroyed {
		return false
	}

	d.Hits--
	health := components.Health.Get(e)
	health.Current = d.Hits
	if d.Hits > 0 {
		return true
	}

	d.Destroyed = true
	health.Current = 0
	x, y := components.Object.Get(e).Center()
	events.Explosion.Publish(ecs.World, events.ExplosionEvent{X: x, Y: y, Scale: 0.75})
	events.SoundCue.Publish(ecs.World, events.SoundCueEvent{Name: events.SoundExplosion})
	removeEntity(ecs, e)
	return true
}

// queuePlayerDamage stacks damage for processPlayerDamage, keeping the
// largest hit of the tick and its knockback.
func queuePlayerDamage(player *donburi.Entry, amount int, knockback components.Vector) {
	hit := components.DamageEventData{Amount: amount, KnockbackX: knockback.X, KnockbackY: knockback.Y}
	if player.HasComponent(components.DamageEvent) {
		dmg := components.DamageEvent.Get(player)
		if amount > dmg.Amount {
			*dmg = hit
		}
		return
	}
	donburi.Add(player, components.DamageEvent, &hit)
}

func processPlayerDamage(ecs *ecs.ECS) {
	var queued []*donburi.Entry
	for e := range components.DamageEvent.Iter(ecs.World) {
		queued = append(queued, e)
	}

	for _, e := range queued {
		dmg := *components.DamageEvent.Get(e)
		donburi.Remove[components.DamageEventData](e, components.DamageEvent)

		if !e.HasComponent(components.Player) || e.HasComponent(components.Death) {
			continue
		}
		player := components.Player.Get(e)
		if player.InvulnRemaining > 0 {
			continue
		}

		health := components.Health.Get(e)
		health.Current -= dmg.Amount
		player.InvulnRemaining = cfg.Player.InvulnDuration.D()

		if dmg.KnockbackX != 0 || dmg.KnockbackY != 0 {
			physics := components.Physics.Get(e)
			physics.SpeedX = dmg.KnockbackX
			physics.SpeedY = dmg.KnockbackY
			physics.OnGround = nil
			player.KnockbackRemaining = cfg.Combat.KnockbackDuration.D()
		}

		events.HitFlash.Publish(ecs.World, events.HitFlashEvent{Entity: e.Entity()})
		events.SoundCue.Publish(ecs.World, events.SoundCueEvent{Name: events.SoundPlayerHurt})

		if health.Current <= 0 {
			killPlayer(ecs, e)
		}
	}
}

// killPlayer starts the player's death sequence. The run fails when it ends.
func killPlayer(ecs *ecs.ECS, e *donburi.Entry) {
	if e.HasComponent(components.Death) {
		return
	}
	components.Health.Get(e).Current = 0

	physics := components.Physics.Get(e)
	physics.Disabled = true
	physics.SpeedX, physics.SpeedY = 0, 0

	donburi.Add(e, components.Death, &components.DeathData{Timer: cfg.Enemy.DeathDelay.D()})
	log.Info("player down", "tick", clock(ecs).Tick)
}

func recordKill(ecs *ecs.ECS) {
	if entry, ok := components.Score.First(ecs.World); ok {
		components.Score.Get(entry).EnemiesDefeated++
	}
	addScore(ecs, cfg.Combat.KillScore)
}

func addScore(ecs *ecs.ECS, delta int) {
	entry, ok := components.Score.First(ecs.World)
	if !ok {
		return
	}
	score := components.Score.Get(entry)
	score.Score += delta
	events.ScoreChanged.Publish(ecs.World, events.ScoreChangedEvent{Delta: delta, Total: score.Score})
}

// EnemiesRemaining returns the number of enemies not yet defeated.
func EnemiesRemaining(ecs *ecs.ECS) int {
	n := 0
	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		if !components.Enemy.Get(e).Defeated {
			n++
		}
	})
	return n
}
