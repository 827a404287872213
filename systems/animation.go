package systems

import (
	"github.com/automoto/dune-runner/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateAnimations advances every tween clip. Clips that finish this tick
// leave a completion signal for the state machines that follow.
func UpdateAnimations(ecs *ecs.ECS) {
	dt := float32(clock(ecs).Seconds())
	components.Animation.Each(ecs.World, func(e *donburi.Entry) {
		components.Animation.Get(e).Update(dt)
	})
}
