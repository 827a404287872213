// Package events holds the world-scoped notifications the core publishes.
// Overlap events are produced by the broad phase and consumed by the combat
// handlers; the rest are side effects for presentation and scoring.
package events

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// Overlaps carry entity ids. A handler resolves them against the world, so
// an entity removed earlier in the tick is skipped.

type PlayerEnemyOverlap struct {
	Player donburi.Entity
	Enemy  donburi.Entity
}

type BulletEnemyOverlap struct {
	Bullet donburi.Entity
	Enemy  donburi.Entity
}

type BulletDestructibleOverlap struct {
	Bullet       donburi.Entity
	Destructible donburi.Entity
}

type ProjectilePlayerOverlap struct {
	Projectile donburi.Entity
	Player     donburi.Entity
}

var (
	PlayerEnemy        = events.NewEventType[PlayerEnemyOverlap]()
	BulletEnemy        = events.NewEventType[BulletEnemyOverlap]()
	BulletDestructible = events.NewEventType[BulletDestructibleOverlap]()
	ProjectilePlayer   = events.NewEventType[ProjectilePlayerOverlap]()
)

// Side effects

type ExplosionEvent struct {
	X, Y  float64
	Scale float64
}

type HitFlashEvent struct {
	Entity donburi.Entity
}

type ImpactEvent struct {
	X, Y float64
}

type ParticleBurstEvent struct {
	X, Y  float64
	Count int
}

type SoundCueEvent struct {
	Name string
}

type ScoreChangedEvent struct {
	Delta int
	Total int
}

type EnemyDefeatedEvent struct {
	Enemy donburi.Entity
	Kind  string
	X, Y  float64
}

var (
	Explosion     = events.NewEventType[ExplosionEvent]()
	HitFlash      = events.NewEventType[HitFlashEvent]()
	Impact        = events.NewEventType[ImpactEvent]()
	ParticleBurst = events.NewEventType[ParticleBurstEvent]()
	SoundCue      = events.NewEventType[SoundCueEvent]()
	ScoreChanged  = events.NewEventType[ScoreChangedEvent]()
	EnemyDefeated = events.NewEventType[EnemyDefeatedEvent]()
)

// Sound cue names.
const (
	SoundShoot       = "shoot"
	SoundEnemyShoot  = "enemy-shoot"
	SoundHit         = "hit"
	SoundExplosion   = "explosion"
	SoundPlayerHurt  = "player-hurt"
	SoundBurrow      = "burrow"
	SoundEmerge      = "emerge"
	SoundLevelFinish = "level-complete"
)

// ProcessOverlaps delivers the queued overlap events to their subscribers.
func ProcessOverlaps(w donburi.World) {
	PlayerEnemy.ProcessEvents(w)
	BulletEnemy.ProcessEvents(w)
	BulletDestructible.ProcessEvents(w)
	ProjectilePlayer.ProcessEvents(w)
}

// ProcessEffects delivers the queued side-effect events to their subscribers.
func ProcessEffects(w donburi.World) {
	Explosion.ProcessEvents(w)
	HitFlash.ProcessEvents(w)
	Impact.ProcessEvents(w)
	ParticleBurst.ProcessEvents(w)
	SoundCue.ProcessEvents(w)
	ScoreChanged.ProcessEvents(w)
	EnemyDefeated.ProcessEvents(w)
}
