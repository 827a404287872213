package tags

import "github.com/yohamta/donburi"

var (
	Player         = donburi.NewTag().SetName("Player")
	Platform       = donburi.NewTag().SetName("Platform")
	MovingPlatform = donburi.NewTag().SetName("MovingPlatform")
	Enemy          = donburi.NewTag().SetName("Enemy")
	Projectile     = donburi.NewTag().SetName("Projectile")
	Bullet         = donburi.NewTag().SetName("Bullet")
	Destructible   = donburi.NewTag().SetName("Destructible")
	Exit           = donburi.NewTag().SetName("Exit")
)

// Resolv tags for physics collision
const (
	ResolvSolid        = "solid"
	ResolvPlatform     = "platform"
	ResolvCharacter    = "character"
	ResolvPlayer       = "Player"
	ResolvEnemy        = "Enemy"
	ResolvProjectile   = "Projectile"
	ResolvBullet       = "Bullet"
	ResolvDestructible = "destructible"
	ResolvExit         = "exit"
)
