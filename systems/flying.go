package systems

import (
	"math"
	"math/rand"
	"time"

	"github.com/automoto/dune-runner/components"
	cfg "github.com/automoto/dune-runner/config"
	"github.com/solarlune/resolv"
)

// stepFlying advances the Ornithopter by one tick. Flyers move themselves;
// the broad phase never integrates them.
func stepFlying(f *components.FlyingData, enemy *components.EnemyData, physics *components.PhysicsData, obj, target *resolv.Object, dt time.Duration, rng *rand.Rand, worldW, worldH float64) {
	secs := dt.Seconds()
	decrement(&f.PatternCooldownRemaining, dt)

	detected := target != nil &&
		distance(obj.X+obj.W/2, obj.Y+obj.H/2, target.X+target.W/2, target.Y+target.H/2) < f.DetectionRange
	switch {
	case !detected:
		// Losing the player overrides the pattern hold
		f.InPursuit = false
		f.Pattern = components.PatternNone
		f.PatternCooldownRemaining = 0
	case f.PatternCooldownRemaining <= 0:
		f.InPursuit = true
		f.Pattern = pickPattern(rng)
		f.PatternCooldownRemaining = cfg.Flying.PatternHold.D()
	}

	physics.SpeedX, physics.SpeedY = 0, 0
	if f.InPursuit {
		pursue(f, enemy, physics, obj, target, secs)
	} else {
		patrolFlight(f, enemy, physics, obj, secs)
	}

	if worldW > 0 && worldH > 0 {
		obj.X = clampFloat(obj.X, 0, math.Max(0, worldW-obj.W))
		obj.Y = clampFloat(obj.Y, 0, math.Max(0, worldH-obj.H))
	}

	dx := obj.X - f.PrevX
	if physics.SpeedX < 0 || dx < 0 {
		enemy.Facing = -1
	} else if physics.SpeedX > 0 || dx > 0 {
		enemy.Facing = 1
	}
	enemy.Direction = enemy.Facing
	f.PrevX = obj.X
}

func pickPattern(rng *rand.Rand) components.FlightPattern {
	if rng == nil {
		return components.FlightPattern(1 + rand.Intn(3))
	}
	return components.FlightPattern(1 + rng.Intn(3))
}

func pursue(f *components.FlyingData, enemy *components.EnemyData, physics *components.PhysicsData, obj, target *resolv.Object, secs float64) {
	speed := math.Abs(enemy.Speed)
	cx, cy := obj.X+obj.W/2, obj.Y+obj.H/2
	px, py := target.X+target.W/2, target.Y+target.H/2

	switch f.Pattern {
	case components.PatternDive:
		ux, uy := bearing(cx, cy, px, py-cfg.Flying.DiveAimOffset)
		physics.SpeedX = ux * speed * cfg.Flying.DiveSpeedScale
		physics.SpeedY = uy * speed * cfg.Flying.DiveSpeedScale
		obj.X += physics.SpeedX * secs
		obj.Y += physics.SpeedY * secs

	case components.PatternOrbit:
		f.Phase += secs
		angle := f.Phase * 2
		obj.X = px + math.Cos(angle)*cfg.Flying.OrbitRadius - obj.W/2
		obj.Y = py + math.Sin(angle)*cfg.Flying.OrbitRadius - obj.H/2

	case components.PatternErratic:
		f.Phase += secs
		physics.SpeedX = math.Cos(f.Phase*5) * speed * cfg.Flying.ErraticSpeedScale
		physics.SpeedY = math.Sin(f.Phase*7) * speed * cfg.Flying.ErraticSpeedScale
		obj.X += physics.SpeedX * secs
		obj.Y += physics.SpeedY * secs

		cx, cy = obj.X+obj.W/2, obj.Y+obj.H/2
		if distance(cx, cy, px, py) > cfg.Flying.ErraticLeash {
			ux, uy := bearing(cx, cy, px, py)
			obj.X += ux * speed * secs
			obj.Y += uy * speed * secs
			physics.SpeedX += ux * speed
			physics.SpeedY += uy * speed
		}
	}
}

// patrolFlight traces a figure eight around the spawn height, reflecting
// off the patrol edges.
func patrolFlight(f *components.FlyingData, enemy *components.EnemyData, physics *components.PhysicsData, obj *resolv.Object, secs float64) {
	f.FlyTimer += secs
	t := f.FlyTimer

	obj.Y = f.OriginalY + math.Sin(t*cfg.Flying.PatrolVerticalRate)*f.Amplitude
	physics.SpeedX = math.Cos(t) * enemy.Speed
	obj.X += physics.SpeedX * secs

	left, right := enemy.PatrolBounds()
	if obj.X > right {
		obj.X = right
		enemy.Speed = -math.Abs(enemy.Speed)
	} else if obj.X < left {
		obj.X = left
		enemy.Speed = math.Abs(enemy.Speed)
	}
}
