package components

import (
	"time"

	"github.com/yohamta/donburi"
)

type PlatformKind int

const (
	PlatformPlain PlatformKind = iota
	PlatformStepping
	PlatformCollapsing
	PlatformSandSurfing
)

func (k PlatformKind) String() string {
	switch k {
	case PlatformStepping:
		return "stepping"
	case PlatformCollapsing:
		return "collapsing"
	case PlatformSandSurfing:
		return "sandSurfing"
	}
	return "plain"
}

// ParsePlatformKind maps a level property to a kind, defaulting to plain.
func ParsePlatformKind(s string) PlatformKind {
	switch s {
	case "stepping":
		return PlatformStepping
	case "collapsing":
		return PlatformCollapsing
	case "sandSurfing":
		return PlatformSandSurfing
	}
	return PlatformPlain
}

// MovingPlatformData drives an oscillating platform. Origin never changes;
// the primary axis stays within Origin ± AxisDistance.
type MovingPlatformData struct {
	Kind PlatformKind

	Origin       Vector
	AxisDistance float64
	Speed        float64
	Direction    float64 // +1 or -1
	Vertical     bool

	// Secondary horizontal axis, only active when HorizontalDistance > 0.
	HorizontalDistance  float64
	HorizontalSpeed     float64
	HorizontalDirection float64

	PauseRemaining time.Duration

	// Outputs of the last step, read by the attachment resolver.
	Delta    Vector
	Velocity float64 // signed primary-axis velocity
}

// MovesHorizontally reports whether the platform has any x motion.
func (p *MovingPlatformData) MovesHorizontally() bool {
	if p.Vertical {
		return p.HorizontalDistance > 0
	}
	return p.AxisDistance > 0 && p.Speed != 0
}

var MovingPlatform = donburi.NewComponentType[MovingPlatformData]()
