package factory

import (
	"github.com/automoto/dune-runner/archetypes"
	"github.com/automoto/dune-runner/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

func CreateCamera(ecs *ecs.ECS, startPositionVector math.Vec2) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(camera, &components.CameraData{
		Position: startPositionVector,
	})
	return camera
}
