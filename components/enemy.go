package components

import (
	"image/color"

	"github.com/yohamta/donburi"
)

type EnemyKind int

const (
	EnemyBasic EnemyKind = iota
	EnemyRanged
	EnemyFlying
	EnemyBurrowing
)

func (k EnemyKind) String() string {
	switch k {
	case EnemyRanged:
		return "harkonnen"
	case EnemyFlying:
		return "ornithopter"
	case EnemyBurrowing:
		return "sandworm"
	}
	return "basic"
}

// ParseEnemyKind maps a level property to a kind. Unknown names fall back to basic.
func ParseEnemyKind(s string) EnemyKind {
	switch s {
	case "harkonnen":
		return EnemyRanged
	case "ornithopter":
		return EnemyFlying
	case "sandworm":
		return EnemyBurrowing
	}
	return EnemyBasic
}

type EnemyData struct {
	Kind      EnemyKind
	Variant   string // rolled sub-type for basic enemies ("scout", "guard", "elite")
	TintColor color.RGBA

	// Patrol
	StartX       float64
	PatrolRadius float64
	Speed        float64 // signed; flyers reflect it at the patrol edges
	Direction    float64 // +1 or -1
	Facing       float64

	Defeated bool
	Hidden   bool
}

// PatrolBounds returns the left and right patrol limits.
func (e *EnemyData) PatrolBounds() (float64, float64) {
	return e.StartX - e.PatrolRadius, e.StartX + e.PatrolRadius
}

var Enemy = donburi.NewComponentType[EnemyData]()
