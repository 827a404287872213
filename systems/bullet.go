package systems

import (
	"github.com/automoto/dune-runner/components"
	"github.com/automoto/dune-runner/events"
	"github.com/automoto/dune-runner/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateBullets moves player shots. A shot that reaches an enemy or a
// destructible publishes an overlap for the combat handlers; one that hits
// other level geometry, leaves the world or runs out of lifetime is freed.
func UpdateBullets(ecs *ecs.ECS) {
	c := clock(ecs)
	dt := c.Seconds()
	worldW, _ := worldBounds(ecs)

	var toRemove []donburi.Entity
	tags.Bullet.Each(ecs.World, func(e *donburi.Entry) {
		bullet := components.Bullet.Get(e)
		physics := components.Physics.Get(e)
		obj := components.Object.Get(e)

		decrement(&bullet.Remaining, c.Delta)
		obj.X += physics.SpeedX * dt
		obj.Y += physics.SpeedY * dt
		refresh(obj.Object)

		if bullet.Remaining <= 0 || (worldW > 0 && (obj.X > worldW || obj.X+obj.W < 0)) {
			toRemove = append(toRemove, e.Entity())
			return
		}

		check := obj.Check(0, 0, tags.ResolvEnemy, tags.ResolvSolid)
		if check == nil {
			return
		}

		for _, o := range check.ObjectsByTags(tags.ResolvEnemy) {
			enemy, ok := entryOf(o)
			if !ok || !overlaps(obj.Object, o) || components.Physics.Get(enemy).Disabled {
				continue
			}
			events.BulletEnemy.Publish(ecs.World, events.BulletEnemyOverlap{
				Bullet: e.Entity(),
				Enemy:  enemy.Entity(),
			})
			return
		}

		for _, o := range check.ObjectsByTags(tags.ResolvSolid) {
			if !overlaps(obj.Object, o) {
				continue
			}
			if d, ok := entryOf(o); ok && o.HasTags(tags.ResolvDestructible) {
				events.BulletDestructible.Publish(ecs.World, events.BulletDestructibleOverlap{
					Bullet:       e.Entity(),
					Destructible: d.Entity(),
				})
				return
			}
			x, y := obj.Center()
			events.Impact.Publish(ecs.World, events.ImpactEvent{X: x, Y: y})
			toRemove = append(toRemove, e.Entity())
			return
		}
	})

	for _, id := range toRemove {
		destroyBullet(ecs, id)
	}
}

// destroyBullet frees a shot. Overlap handlers may call it for a bullet that
// is already gone.
func destroyBullet(ecs *ecs.ECS, id donburi.Entity) {
	e, ok := lookup(ecs.World, id)
	if !ok {
		return
	}
	if player, ok := tags.Player.First(ecs.World); ok {
		p := components.Player.Get(player)
		if p.LiveBullets > 0 {
			p.LiveBullets--
		}
	}
	removeEntity(ecs, e)
}
