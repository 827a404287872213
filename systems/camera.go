package systems

import (
	"math"

	"github.com/automoto/dune-runner/components"
	"github.com/automoto/dune-runner/config"
	"github.com/automoto/dune-runner/tags"
	"github.com/yohamta/donburi/ecs"
)

func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return // no player (could be dead), skip camera update
	}
	playerObject := components.Object.Get(playerEntry)

	levelWidth, levelHeight := worldBounds(e)
	if levelWidth == 0 {
		return
	}

	targetX, targetY := playerObject.Center()
	targetY -= config.Camera.OffsetY

	screenWidth := float64(config.C.Width)
	screenHeight := float64(config.C.Height)

	// Camera bounds: ensure the level always fills the screen
	minCameraX := screenWidth / 2
	maxCameraX := math.Max(minCameraX, levelWidth-screenWidth/2)
	minCameraY := screenHeight / 2
	maxCameraY := math.Max(minCameraY, levelHeight-screenHeight/2)

	targetX = math.Max(minCameraX, math.Min(maxCameraX, targetX))
	targetY = math.Max(minCameraY, math.Min(maxCameraY, targetY))

	camera.Position.X += (targetX - camera.Position.X) * config.Camera.FollowSmoothing
	camera.Position.Y += (targetY - camera.Position.Y) * config.Camera.FollowSmoothing
}
