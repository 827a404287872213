package components

import (
	"time"

	"github.com/yohamta/donburi"
)

type FlightPattern int

const (
	PatternNone FlightPattern = iota
	PatternDive
	PatternOrbit
	PatternErratic
)

func (p FlightPattern) String() string {
	switch p {
	case PatternDive:
		return "dive"
	case PatternOrbit:
		return "orbit"
	case PatternErratic:
		return "erratic"
	}
	return "none"
}

// FlyingData is the Ornithopter capability. Gravity is permanently off.
type FlyingData struct {
	DetectionRange           float64
	InPursuit                bool
	Pattern                  FlightPattern
	PatternCooldownRemaining time.Duration

	Phase     float64 // seconds spent in pursuit, drives orbit and erratic motion
	FlyTimer  float64 // seconds spent in patrol flight, drives the figure eight
	OriginalY float64
	Amplitude float64
	PrevX     float64
}

var Flying = donburi.NewComponentType[FlyingData]()
