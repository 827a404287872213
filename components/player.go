package components

import (
	"time"

	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Direction       Vector
	InvulnRemaining time.Duration
	FireCooldown    time.Duration

	// Movement input is ignored while a knockback plays out.
	KnockbackRemaining time.Duration

	Ammo        int
	MaxAmmo     int
	LiveBullets int
}

var Player = donburi.NewComponentType[PlayerData]()

// BulletData is a player shot.
type BulletData struct {
	Damage    int
	Remaining time.Duration
}

var Bullet = donburi.NewComponentType[BulletData]()
