package systems

import (
	"github.com/automoto/dune-runner/components"
	cfg "github.com/automoto/dune-runner/config"
	"github.com/automoto/dune-runner/events"
	"github.com/automoto/dune-runner/systems/factory"
	"github.com/automoto/dune-runner/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayer turns this frame's input into velocity and shots, and counts
// down the player's timers.
func UpdatePlayer(ecs *ecs.ECS) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok || playerEntry.HasComponent(components.Death) {
		return
	}
	c := clock(ecs)

	player := components.Player.Get(playerEntry)
	decrement(&player.InvulnRemaining, c.Delta)
	decrement(&player.FireCooldown, c.Delta)
	decrement(&player.KnockbackRemaining, c.Delta)

	input := components.Input.Get(playerEntry)
	physics := components.Physics.Get(playerEntry)

	handleMovementInput(input, player, physics)
	handleJumpInput(input, physics, components.Contact.Get(playerEntry))
	handleFireInput(ecs, input, playerEntry, player)

	if fellOut(ecs, playerEntry) {
		killPlayer(ecs, playerEntry)
	}
}

func handleMovementInput(input *components.InputData, player *components.PlayerData, physics *components.PhysicsData) {
	if player.KnockbackRemaining > 0 {
		return
	}
	physics.SpeedX = 0
	if input.Pressed(cfg.ActionMoveLeft) {
		physics.SpeedX -= cfg.Player.Speed
	}
	if input.Pressed(cfg.ActionMoveRight) {
		physics.SpeedX += cfg.Player.Speed
	}
	if physics.SpeedX != 0 {
		player.Direction.X = sign(physics.SpeedX)
	}
}

func handleJumpInput(input *components.InputData, physics *components.PhysicsData, contact *components.ContactData) {
	if !input.JustPressed(cfg.ActionJump) {
		return
	}
	if physics.OnGround == nil && !contact.Blocked.Down() {
		return
	}
	physics.SpeedY = -cfg.Player.JumpSpeed
	physics.OnGround = nil
}

// handleFireInput shoots while fire is held, limited by the fire rate, the
// ammo count and the live-bullet cap.
func handleFireInput(ecs *ecs.ECS, input *components.InputData, playerEntry *donburi.Entry, player *components.PlayerData) {
	if !input.Pressed(cfg.ActionFire) || player.FireCooldown > 0 {
		return
	}
	if player.Ammo <= 0 || player.LiveBullets >= cfg.Player.MaxBullets {
		return
	}

	factory.CreateBullet(ecs, playerEntry, player.Direction.X)
	player.Ammo--
	player.LiveBullets++
	player.FireCooldown = cfg.Player.FireRate.D()

	if entry, ok := components.Score.First(ecs.World); ok {
		score := components.Score.Get(entry)
		score.ShotsFired++
		score.AmmoUsed++
	}
	events.SoundCue.Publish(ecs.World, events.SoundCueEvent{Name: events.SoundShoot})
}

// fellOut reports whether the player dropped through a gap to the world floor.
func fellOut(ecs *ecs.ECS, playerEntry *donburi.Entry) bool {
	_, worldH := worldBounds(ecs)
	if worldH <= 0 {
		return false
	}
	obj := components.Object.Get(playerEntry)
	return obj.Y+obj.H >= worldH-epsilon
}
