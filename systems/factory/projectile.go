package factory

import (
	"github.com/automoto/dune-runner/archetypes"
	"github.com/automoto/dune-runner/components"
	"github.com/automoto/dune-runner/config"
	"github.com/automoto/dune-runner/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateProjectile spawns an enemy shot at the center of owner, falling
// straight down.
func CreateProjectile(ecs *ecs.ECS, owner *donburi.Entry) *donburi.Entry {
	p := archetypes.Projectile.Spawn(ecs)

	ownerObj := components.Object.Get(owner).Object
	startX := ownerObj.X + ownerObj.W/2
	startY := ownerObj.Y + ownerObj.H/2

	obj := resolv.NewObject(
		startX-config.Projectile.Width/2,
		startY-config.Projectile.Height/2,
		config.Projectile.Width,
		config.Projectile.Height,
		tags.ResolvProjectile,
	)
	obj.Data = p
	components.Object.Set(p, &components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	components.Physics.Set(p, &components.PhysicsData{
		SpeedX:    0,
		SpeedY:    config.Projectile.SpeedY,
		Gravity:   0, // straight line
		Kinematic: true,
	})

	components.Projectile.Set(p, &components.ProjectileData{
		Owner:  owner.Entity(),
		Damage: config.Projectile.Damage,
	})

	return p
}

// CreateBullet spawns a player shot travelling in direction (+1 right, -1 left).
func CreateBullet(ecs *ecs.ECS, shooter *donburi.Entry, direction float64) *donburi.Entry {
	b := archetypes.Bullet.Spawn(ecs)

	shooterObj := components.Object.Get(shooter).Object
	startX := shooterObj.X + shooterObj.W/2 + direction*shooterObj.W/2
	startY := shooterObj.Y + shooterObj.H/2 - 5

	obj := resolv.NewObject(
		startX-config.Bullet.Width/2,
		startY-config.Bullet.Height/2,
		config.Bullet.Width,
		config.Bullet.Height,
		tags.ResolvBullet,
	)
	obj.Data = b
	components.Object.Set(b, &components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	components.Physics.Set(b, &components.PhysicsData{
		SpeedX:    config.Bullet.Speed * direction,
		Kinematic: true,
	})

	components.Bullet.Set(b, &components.BulletData{
		Damage:    config.Bullet.Damage,
		Remaining: config.Bullet.Lifetime.D(),
	})

	return b
}
