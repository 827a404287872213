package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// Vector represents a 2D vector.
type Vector struct {
	X, Y float64
}

// PhysicsData is the velocity half of a kinematic body. Speeds are in
// pixels per second.
type PhysicsData struct {
	SpeedX       float64
	SpeedY       float64
	Gravity      float64 // px/s², 0 for flyers and projectiles
	MaxFallSpeed float64
	OnGround     *resolv.Object

	// Kinematic bodies are moved by their own system and skip integration.
	Kinematic bool
	// Disabled bodies neither collide nor generate overlaps.
	Disabled bool
}

var Physics = donburi.NewComponentType[PhysicsData]()
