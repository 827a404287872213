package systems

import (
	"math"

	"github.com/automoto/dune-runner/components"
	cfg "github.com/automoto/dune-runner/config"
	"github.com/automoto/dune-runner/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// UpdateInput polls the keyboard and gamepads into the player's input.
// Must run BEFORE UpdatePlayer in the system order.
func UpdateInput(ecs *ecs.ECS) {
	player, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	input := components.Input.Get(player)
	input.Advance()

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Set(actionID, true)
			}
		}
		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Set(actionID, true)
				}
			}
		}
	}
}

// Autopilot reach, in pixels.
const (
	autopilotSightRange = 350
	autopilotSightBand  = 60
	autopilotLookAhead  = 6
)

// UpdateAutopilot drives the player for headless runs: keep running right,
// jump at walls and ledges, and shoot at enemies ahead.
func UpdateAutopilot(ecs *ecs.ECS) {
	player, obj, ok := playerObject(ecs)
	if !ok || player.HasComponent(components.Death) {
		return
	}
	input := components.Input.Get(player)
	input.Advance()

	physics := components.Physics.Get(player)
	contact := components.Contact.Get(player)

	input.Set(cfg.ActionMoveRight, true)

	grounded := physics.OnGround != nil
	wall := contact.Blocked.Right() || contact.Touching.Right()
	ledge := grounded && obj.Check(obj.W+autopilotLookAhead, autopilotLookAhead, tags.ResolvSolid, tags.ResolvPlatform) == nil
	if grounded && (wall || ledge) && !input.Previous[cfg.ActionJump] {
		input.Set(cfg.ActionJump, true)
	}

	cx, cy := obj.X+obj.W/2, obj.Y+obj.H/2
	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		enemy := components.Enemy.Get(e)
		if enemy.Defeated || enemy.Hidden {
			return
		}
		ex, ey := components.Object.Get(e).Center()
		if ex > cx && ex-cx < autopilotSightRange && math.Abs(ey-cy) < autopilotSightBand {
			input.Set(cfg.ActionFire, true)
		}
	})
}
