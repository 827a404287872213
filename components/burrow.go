package components

import (
	"time"

	"github.com/yohamta/donburi"
)

type BurrowPhase int

const (
	BurrowSurface BurrowPhase = iota
	BurrowBurrowing
	BurrowBurrowed
	BurrowEmerging
)

func (p BurrowPhase) String() string {
	switch p {
	case BurrowBurrowing:
		return "burrowing"
	case BurrowBurrowed:
		return "burrowed"
	case BurrowEmerging:
		return "emerging"
	}
	return "surface"
}

// BurrowData is the Sandworm capability.
type BurrowData struct {
	Phase BurrowPhase
	// CycleTimer accumulates every frame and is reset when a burrow starts
	// and when the worm emerges.
	CycleTimer time.Duration
	// PhaseTimer counts time spent in the Burrowing or Emerging animation.
	PhaseTimer    time.Duration
	PendingEmerge *Vector
}

var Burrow = donburi.NewComponentType[BurrowData]()
