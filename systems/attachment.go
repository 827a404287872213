package systems

import (
	"math"

	"github.com/automoto/dune-runner/components"
	cfg "github.com/automoto/dune-runner/config"
	"github.com/automoto/dune-runner/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Attachment is how the player is bound to a moving platform this tick.
type Attachment int

const (
	AttachNone Attachment = iota
	AttachRiding
	AttachClinging
)

func (a Attachment) String() string {
	switch a {
	case AttachRiding:
		return "riding"
	case AttachClinging:
		return "clinging"
	}
	return "none"
}

// UpdatePlatformAttachment carries the player along with the platform it
// stands on or presses against. It must run after UpdateMovingPlatforms so
// the deltas belong to this tick.
func UpdatePlatformAttachment(ecs *ecs.ECS) {
	player, playerObj, ok := playerObject(ecs)
	if !ok || player.HasComponent(components.Death) {
		return
	}
	physics := components.Physics.Get(player)
	if physics.Disabled {
		return
	}
	playerContact := components.Contact.Get(player)

	var clingTo *donburi.Entry
	var ridden bool
	tags.MovingPlatform.Each(ecs.World, func(e *donburi.Entry) {
		if ridden {
			return
		}
		mp := components.MovingPlatform.Get(e)
		platObj := components.Object.Get(e).Object

		switch attachmentMode(mp, playerContact, components.Contact.Get(e), platObj) {
		case AttachRiding:
			applyRiding(mp, physics, playerObj, platObj)
			ridden = true
		case AttachClinging:
			if clingTo == nil {
				clingTo = e
			}
		}
	})

	if !ridden && clingTo != nil {
		applyClinging(components.MovingPlatform.Get(clingTo), playerObj)
	}
	refresh(playerObj)
}

// attachmentMode decides from this tick's contact flags whether the player
// rides or clings to the platform. Riding wins when both hold.
func attachmentMode(mp *components.MovingPlatformData, player, platform *components.ContactData, platObj *resolv.Object) Attachment {
	if player.Touching.Down() && platform.Touching.Up() && player.TouchingObject(platObj, components.SideDown) {
		return AttachRiding
	}
	if !mp.Vertical {
		return AttachNone
	}
	if player.Touching.Left() && platform.Touching.Right() && player.TouchingObject(platObj, components.SideLeft) {
		return AttachClinging
	}
	if player.Touching.Right() && platform.Touching.Left() && player.TouchingObject(platObj, components.SideRight) {
		return AttachClinging
	}
	return AttachNone
}

func applyRiding(mp *components.MovingPlatformData, physics *components.PhysicsData, obj, platObj *resolv.Object) {
	if mp.MovesHorizontally() {
		obj.X += mp.Delta.X
	}
	if !mp.Vertical {
		return
	}

	obj.Y += mp.Delta.Y
	switch {
	case mp.Delta.Y > 0:
		physics.SpeedY = math.Max(0, mp.Velocity)
	case mp.Delta.Y < 0:
		physics.SpeedY = cfg.Platform.RiseVelocityScale * mp.Velocity
		if math.Abs(obj.Y+obj.H-platObj.Y) <= cfg.Platform.SnapTolerance {
			obj.Y = platObj.Y - obj.H
		}
	}
}

func applyClinging(mp *components.MovingPlatformData, obj *resolv.Object) {
	obj.Y += mp.Delta.Y
}
