package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// RangedData is the Harkonnen capability: a stance attack and a periodic
// downward shot from a bounded projectile pool.
type RangedData struct {
	AttackRange             float64
	AttackCooldownRemaining time.Duration
	InAttackStance          bool
	StanceRemaining         time.Duration

	ShootTimer      time.Duration
	LiveProjectiles int
	PoolSize        int
}

var Ranged = donburi.NewComponentType[RangedData]()

// ProjectileData is an enemy shot. It has no gravity and expires outside
// the vertical world bounds.
type ProjectileData struct {
	Owner  donburi.Entity
	Damage int
}

var Projectile = donburi.NewComponentType[ProjectileData]()
