package components

import (
	"image/color"
	"time"

	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// FlashData tracks a sprite flash after a hit.
type FlashData struct {
	Remaining time.Duration
}

var Flash = donburi.NewComponentType[FlashData]()

// VFXData is a short-lived visual: explosion, impact spark, sand particle.
type VFXData struct {
	Kind  string
	Color color.RGBA
	Size  float64
	VX    float64
	VY    float64
	Fade  *gween.Tween
	Alpha float32
}

var VFX = donburi.NewComponentType[VFXData]()

// AutoDestroyData marks entities that should be destroyed after a duration
type AutoDestroyData struct {
	Remaining time.Duration
}

var AutoDestroy = donburi.NewComponentType[AutoDestroyData]()
