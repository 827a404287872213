package systems

import (
	"github.com/automoto/dune-runner/components"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDeaths counts down death sequences and frees the entities whose
// sequence is over. The player's removal fails the run.
func UpdateDeaths(ecs *ecs.ECS) {
	dt := clock(ecs).Delta

	var expired []*donburi.Entry
	components.Death.Each(ecs.World, func(e *donburi.Entry) {
		death := components.Death.Get(e)
		decrement(&death.Timer, dt)
		if death.Timer <= 0 {
			expired = append(expired, e)
		}
	})

	for _, e := range expired {
		if e.HasComponent(components.Player) {
			if entry, ok := components.Level.First(ecs.World); ok {
				components.Level.Get(entry).Failed = true
			}
			log.Info("run failed")
		}
		removeEntity(ecs, e)
	}
}
