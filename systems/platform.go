package systems

import (
	"time"

	"github.com/automoto/dune-runner/components"
	cfg "github.com/automoto/dune-runner/config"
	"github.com/automoto/dune-runner/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateMovingPlatforms advances every moving platform and records the
// displacement the attachment resolver applies to riders this same tick.
func UpdateMovingPlatforms(ecs *ecs.ECS) {
	dt := clock(ecs).Delta

	tags.MovingPlatform.Each(ecs.World, func(e *donburi.Entry) {
		mp := components.MovingPlatform.Get(e)
		obj := components.Object.Get(e)

		obj.X, obj.Y = stepPlatform(mp, obj.X, obj.Y, dt)
		refresh(obj.Object)
	})
}

// stepPlatform moves a platform at (x, y) by one tick and returns its new
// position. During an endpoint pause neither axis moves.
func stepPlatform(mp *components.MovingPlatformData, x, y float64, dt time.Duration) (float64, float64) {
	prevX, prevY := x, y
	mp.Delta = components.Vector{}

	if mp.PauseRemaining > 0 {
		decrement(&mp.PauseRemaining, dt)
		mp.Velocity = 0
		return x, y
	}

	secs := dt.Seconds()
	velocity := mp.Speed * mp.Direction

	if mp.Vertical {
		velocity *= cfg.Platform.VerticalSmoothing
		y += velocity * secs

		top, bottom := mp.Origin.Y-mp.AxisDistance, mp.Origin.Y+mp.AxisDistance
		if y > bottom {
			y = bottom
			mp.Direction = -1
			mp.PauseRemaining = cfg.Platform.EndpointPause.D()
		} else if y < top {
			y = top
			mp.Direction = 1
			mp.PauseRemaining = cfg.Platform.EndpointPause.D()
		}
	} else {
		x += velocity * secs

		left, right := mp.Origin.X-mp.AxisDistance, mp.Origin.X+mp.AxisDistance
		if x > right {
			x = right
			mp.Direction = -1
		} else if x < left {
			x = left
			mp.Direction = 1
		}
	}

	if mp.HorizontalDistance > 0 {
		x += mp.HorizontalSpeed * mp.HorizontalDirection * secs

		left, right := mp.Origin.X-mp.HorizontalDistance, mp.Origin.X+mp.HorizontalDistance
		if x > right {
			x = right
			mp.HorizontalDirection = -1
		} else if x < left {
			x = left
			mp.HorizontalDirection = 1
		}
	}

	mp.Velocity = velocity
	mp.Delta = components.Vector{X: x - prevX, Y: y - prevY}
	return x, y
}
