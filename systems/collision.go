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

// UpdateCollisions moves every dynamic body by its velocity, resolves it
// against level geometry and moving platforms, and recomputes the per-side
// contact flags for this frame. Character overlaps are published as events.
func UpdateCollisions(ecs *ecs.ECS) {
	dt := clock(ecs).Seconds()
	worldW, worldH := worldBounds(ecs)

	components.Contact.Each(ecs.World, func(e *donburi.Entry) {
		components.Contact.Get(e).Reset()
	})

	prevBottom := make(map[donburi.Entity]float64)
	move := func(e *donburi.Entry) {
		physics := components.Physics.Get(e)
		obj := components.Object.Get(e).Object
		prevBottom[e.Entity()] = obj.Y + obj.H
		if physics.Kinematic || physics.Disabled || e.HasComponent(components.Death) {
			return
		}
		contact := components.Contact.Get(e)

		resolveHorizontal(physics, contact, obj, physics.SpeedX*dt)
		resolveVertical(physics, contact, obj, physics.SpeedY*dt, dt)
		clampToWorld(physics, contact, obj, worldW, worldH)
		refresh(obj)
	}

	tags.Player.Each(ecs.World, move)
	tags.Enemy.Each(ecs.World, move)

	resolveCharacterContacts(ecs, prevBottom)
}

// resolveHorizontal advances obj by dx, stopping flush against the nearest
// blocking edge.
func resolveHorizontal(physics *components.PhysicsData, contact *components.ContactData, obj *resolv.Object, dx float64) {
	if dx == 0 {
		return
	}

	check := obj.Check(dx, 0, tags.ResolvSolid, tags.ResolvPlatform)
	if check == nil {
		obj.X += dx
		return
	}

	allowed := math.Abs(dx)
	var hit *resolv.Object
	for _, o := range check.ObjectsByTags(tags.ResolvSolid, tags.ResolvPlatform) {
		if bodyDisabled(o) || !overlapY(obj, o) {
			continue
		}
		// Negative means o is already behind the leading edge.
		gap := check.ContactWithObject(o).X() * sign(dx)
		if gap < -epsilon {
			continue
		}
		if gap < allowed {
			allowed = math.Max(gap, 0)
			hit = o
		}
	}

	obj.X += sign(dx) * allowed
	if hit == nil {
		return
	}

	physics.SpeedX = 0
	side := components.SideRight
	if dx < 0 {
		side = components.SideLeft
	}
	markContact(contact, obj, hit, side)
}

// resolveVertical advances obj by dy, landing on tops and stopping against
// undersides. A body whose feet were within the snap tolerance of a top
// before the move is put back on it.
func resolveVertical(physics *components.PhysicsData, contact *components.ContactData, obj *resolv.Object, dy, dt float64) {
	physics.OnGround = nil

	ground, drop := findGround(obj, dy, dt)
	move := dy
	if ground != nil && dy > drop {
		move = drop
	}

	var ceiling *resolv.Object
	if dy < 0 {
		if check := obj.Check(0, dy, tags.ResolvSolid, tags.ResolvPlatform); check != nil {
			for _, o := range check.ObjectsByTags(tags.ResolvSolid, tags.ResolvPlatform) {
				if o == ground || bodyDisabled(o) || !overlapX(obj, o) {
					continue
				}
				// Distance to the underside, zero or negative when o is overhead.
				rise := check.ContactWithObject(o).Y()
				if rise > epsilon || rise <= move {
					continue
				}
				move = rise
				ceiling = o
			}
		}
	}

	obj.Y += move

	if ground != nil {
		if physics.SpeedY > 0 {
			physics.SpeedY = 0
		}
		physics.OnGround = ground
		markContact(contact, obj, ground, components.SideDown)
	}
	if ceiling != nil {
		physics.SpeedY = 0
		markContact(contact, obj, ceiling, components.SideUp)
	}
}

// findGround returns the nearest top obj lands on when moving by dy and the
// distance from its feet to that top. Tops up to the snap tolerance above the
// feet count, as do tops the body stays within slop of.
func findGround(obj *resolv.Object, dy, dt float64) (*resolv.Object, float64) {
	check := obj.Check(0, math.Max(dy, 0)+1+cfg.Physics.ContactSlop, tags.ResolvSolid, tags.ResolvPlatform)
	if check == nil {
		return nil, 0
	}

	var ground *resolv.Object
	best := math.Inf(1)
	for _, o := range check.ObjectsByTags(tags.ResolvSolid, tags.ResolvPlatform) {
		if bodyDisabled(o) || !overlapX(obj, o) {
			continue
		}
		drop := check.ContactWithObject(o).Y()
		slop := cfg.Physics.ContactSlop + platformDrift(o, dt)
		if drop < -cfg.Platform.SnapTolerance || dy < drop-slop || drop >= best {
			continue
		}
		best = drop
		ground = o
	}
	return ground, best
}

// platformDrift is how far a vertical platform travels in one frame. A rider
// that separated by less than this is still treated as standing on it.
func platformDrift(o *resolv.Object, dt float64) float64 {
	e, ok := entryOf(o)
	if !ok || !e.HasComponent(components.MovingPlatform) {
		return 0
	}
	mp := components.MovingPlatform.Get(e)
	if !mp.Vertical {
		return 0
	}
	return math.Abs(mp.Velocity) * dt
}

// markContact flags a contact on obj and, for moving bodies, the opposite
// side of the other object.
func markContact(contact *components.ContactData, obj, other *resolv.Object, side components.Side) {
	if !other.HasTags(tags.ResolvPlatform) {
		contact.Blocked[side] = true
		return
	}
	contact.Add(other, side)
	if e, ok := entryOf(other); ok && e.HasComponent(components.Contact) {
		components.Contact.Get(e).Add(obj, side.Opposite())
	}
}

func clampToWorld(physics *components.PhysicsData, contact *components.ContactData, obj *resolv.Object, worldW, worldH float64) {
	if worldW <= 0 || worldH <= 0 {
		return
	}
	if obj.X < 0 {
		obj.X = 0
		contact.Blocked[components.SideLeft] = true
	} else if obj.X+obj.W > worldW {
		obj.X = worldW - obj.W
		contact.Blocked[components.SideRight] = true
	}
	if obj.Y+obj.H > worldH {
		obj.Y = worldH - obj.H
		contact.Blocked[components.SideDown] = true
		if physics.SpeedY > 0 {
			physics.SpeedY = 0
		}
	}
}

// resolveCharacterContacts flags player/enemy contacts and publishes one
// overlap event per touching pair. Landing from above marks the player's
// down side and the enemy's up side.
func resolveCharacterContacts(ecs *ecs.ECS, prevBottom map[donburi.Entity]float64) {
	player, playerObj, ok := playerObject(ecs)
	if !ok || components.Physics.Get(player).Disabled || player.HasComponent(components.Death) {
		return
	}
	playerPhysics := components.Physics.Get(player)
	playerContact := components.Contact.Get(player)

	slop := cfg.Physics.ContactSlop
	for _, enemyObj := range candidates(playerObj, [][2]float64{{-slop, -slop}, {slop, slop}}, tags.ResolvEnemy) {
		e, ok := entryOf(enemyObj)
		if !ok || !e.HasComponent(components.Enemy) {
			continue
		}
		if components.Enemy.Get(e).Defeated || components.Physics.Get(e).Disabled {
			continue
		}
		if !touching(playerObj, enemyObj, slop) {
			continue
		}

		enemyContact := components.Contact.Get(e)
		fromAbove := prevBottom[player.Entity()] <= enemyObj.Y+cfg.Platform.SnapTolerance &&
			playerPhysics.SpeedY >= 0
		switch {
		case fromAbove:
			playerContact.Add(enemyObj, components.SideDown)
			enemyContact.Add(playerObj, components.SideUp)
		case playerObj.X+playerObj.W/2 < enemyObj.X+enemyObj.W/2:
			playerContact.Add(enemyObj, components.SideRight)
			enemyContact.Add(playerObj, components.SideLeft)
		default:
			playerContact.Add(enemyObj, components.SideLeft)
			enemyContact.Add(playerObj, components.SideRight)
		}

		events.PlayerEnemy.Publish(ecs.World, events.PlayerEnemyOverlap{
			Player: player.Entity(),
			Enemy:  e.Entity(),
		})
	}
}
