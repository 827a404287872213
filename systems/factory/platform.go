package factory

import (
	"github.com/automoto/dune-runner/archetypes"
	"github.com/automoto/dune-runner/components"
	"github.com/automoto/dune-runner/shared/leveldata"
	"github.com/automoto/dune-runner/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlatform adds a piece of static level geometry.
func CreatePlatform(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	platform := archetypes.Platform.Spawn(ecs)

	obj := resolv.NewObject(x, y, w, h, tags.ResolvSolid)
	obj.Data = platform
	components.Object.SetValue(platform, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	return platform
}

// CreateMovingPlatform adds an oscillating platform. Its top-left corner at
// spawn time is the immutable origin.
func CreateMovingPlatform(ecs *ecs.ECS, spawn leveldata.MovingPlatformSpawn) *donburi.Entry {
	platform := archetypes.MovingPlatform.Spawn(ecs)

	obj := resolv.NewObject(spawn.X, spawn.Y, spawn.W, spawn.H, tags.ResolvPlatform)
	obj.Data = platform
	components.Object.SetValue(platform, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	components.MovingPlatform.SetValue(platform, components.MovingPlatformData{
		Kind:                components.ParsePlatformKind(spawn.Kind),
		Origin:              components.Vector{X: spawn.X, Y: spawn.Y},
		AxisDistance:        spawn.Distance,
		Speed:               spawn.Speed,
		Direction:           1,
		Vertical:            spawn.Vertical,
		HorizontalDistance:  spawn.HorizontalDistance,
		HorizontalSpeed:     spawn.HorizontalSpeed,
		HorizontalDirection: 1,
	})

	return platform
}
