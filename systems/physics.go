package systems

import (
	"github.com/automoto/dune-runner/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics integrates gravity into the velocity of every dynamic body.
// Positions are advanced by UpdateCollisions.
func UpdatePhysics(ecs *ecs.ECS) {
	dt := clock(ecs).Seconds()

	components.Physics.Each(ecs.World, func(e *donburi.Entry) {
		physics := components.Physics.Get(e)
		if physics.Kinematic || physics.Disabled {
			return
		}
		// Dying bodies freeze in place during the death delay
		if e.HasComponent(components.Death) {
			return
		}

		physics.SpeedY += physics.Gravity * dt
		if physics.MaxFallSpeed > 0 && physics.SpeedY > physics.MaxFallSpeed {
			physics.SpeedY = physics.MaxFallSpeed
		}
	})
}
