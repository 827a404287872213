package systems

import (
	"github.com/automoto/dune-runner/components"
	"github.com/automoto/dune-runner/events"
	"github.com/automoto/dune-runner/tags"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateExit completes the level once the living player overlaps an exit.
func UpdateExit(ecs *ecs.ECS) {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry)
	if level.Completed || level.Failed {
		return
	}

	player, playerObj, ok := playerObject(ecs)
	if !ok || player.HasComponent(components.Death) {
		return
	}

	tags.Exit.Each(ecs.World, func(e *donburi.Entry) {
		if level.Completed {
			return
		}
		if !overlaps(playerObj, components.Object.Get(e).Object) {
			return
		}
		level.Completed = true
		events.SoundCue.Publish(ecs.World, events.SoundCueEvent{Name: events.SoundLevelFinish})
		log.Info("level complete", "tick", clock(ecs).Tick)
	})
}
