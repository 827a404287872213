package systems

import (
	"github.com/automoto/dune-runner/components"
	"github.com/automoto/dune-runner/events"
	"github.com/automoto/dune-runner/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateProjectiles moves enemy shots in a straight line, expires them
// outside the vertical world bounds and reports hits on the player.
func UpdateProjectiles(ecs *ecs.ECS) {
	dt := clock(ecs).Seconds()
	_, worldH := worldBounds(ecs)

	var toRemove []donburi.Entity
	tags.Projectile.Each(ecs.World, func(e *donburi.Entry) {
		physics := components.Physics.Get(e)
		obj := components.Object.Get(e)

		obj.X += physics.SpeedX * dt
		obj.Y += physics.SpeedY * dt
		refresh(obj.Object)

		if worldH > 0 && (obj.Y > worldH || obj.Y+obj.H < 0) {
			toRemove = append(toRemove, e.Entity())
			return
		}

		check := obj.Check(0, 0, tags.ResolvPlayer)
		if check == nil {
			return
		}
		for _, o := range check.ObjectsByTags(tags.ResolvPlayer) {
			player, ok := entryOf(o)
			if !ok || !overlaps(obj.Object, o) || components.Physics.Get(player).Disabled {
				continue
			}
			events.ProjectilePlayer.Publish(ecs.World, events.ProjectilePlayerOverlap{
				Projectile: e.Entity(),
				Player:     player.Entity(),
			})
			return
		}
	})

	for _, id := range toRemove {
		destroyProjectile(ecs, id)
	}
}

// destroyProjectile frees a shot and returns its slot to the owner's pool.
// It is a no-op for an already removed shot.
func destroyProjectile(ecs *ecs.ECS, id donburi.Entity) {
	e, ok := lookup(ecs.World, id)
	if !ok {
		return
	}
	owner, ok := lookup(ecs.World, components.Projectile.Get(e).Owner)
	if ok && owner.HasComponent(components.Ranged) {
		ranged := components.Ranged.Get(owner)
		if ranged.LiveProjectiles > 0 {
			ranged.LiveProjectiles--
		}
	}
	removeEntity(ecs, e)
}
