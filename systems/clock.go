package systems

import (
	"github.com/yohamta/donburi/ecs"
)

// UpdateClock advances the tick counter and elapsed time by the delta the
// scene stored for this tick.
func UpdateClock(ecs *ecs.ECS) {
	c := clock(ecs)
	c.Tick++
	c.Elapsed += c.Delta
}
