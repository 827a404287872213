package systems

import (
	"math"
	"testing"
	"time"

	"github.com/automoto/dune-runner/components"
	"github.com/automoto/dune-runner/config"
	"github.com/automoto/dune-runner/shared/leveldata"
	"github.com/automoto/dune-runner/systems/factory"
)

func verticalPlatform(speed float64) *components.MovingPlatformData {
	return &components.MovingPlatformData{
		Origin:       components.Vector{X: 500, Y: 300},
		AxisDistance: 150,
		Speed:        speed,
		Direction:    1,
		Vertical:     true,
	}
}

func TestStepPlatformClampsOvershoot(t *testing.T) {
	t.Cleanup(config.Reset)
	mp := verticalPlatform(1000)
	x, y := 500.0, 300.0

	x, y = stepPlatform(mp, x, y, time.Second)
	if y != 450 {
		t.Fatalf("y = %v, want exactly 450", y)
	}
	if mp.Direction != -1 {
		t.Errorf("direction = %v, want -1", mp.Direction)
	}

	for i := 0; i < 20; i++ {
		x, y = stepPlatform(mp, x, y, time.Second)
		if y < 150 || y > 450 {
			t.Fatalf("tick %d: y = %v outside [150, 450]", i, y)
		}
	}
	if x != 500 {
		t.Errorf("vertical platform moved horizontally to %v", x)
	}
}

func TestStepPlatformPausesAtEndpoint(t *testing.T) {
	t.Cleanup(config.Reset)
	mp := verticalPlatform(30)
	x, y := 500.0, 449.9

	_, y = stepPlatform(mp, x, y, testTick)
	if y != 450 || mp.PauseRemaining != 300*time.Millisecond {
		t.Fatalf("after reaching bottom: y = %v, pause = %v", y, mp.PauseRemaining)
	}

	// 300ms of pause spans 19 ticks of 16ms.
	for i := 0; i < 19; i++ {
		_, y = stepPlatform(mp, x, y, testTick)
		if y != 450 {
			t.Fatalf("paused tick %d: y = %v, want 450", i, y)
		}
		if mp.Delta != (components.Vector{}) || mp.Velocity != 0 {
			t.Fatalf("paused tick %d: delta = %+v, velocity = %v", i, mp.Delta, mp.Velocity)
		}
	}

	_, y = stepPlatform(mp, x, y, testTick)
	if y >= 450 {
		t.Fatalf("motion did not resume: y = %v", y)
	}
	if mp.Delta.Y >= 0 {
		t.Errorf("resumed in the wrong direction: delta = %+v", mp.Delta)
	}
}

func TestStepPlatformScenario(t *testing.T) {
	t.Cleanup(config.Reset)
	mp := verticalPlatform(30)
	x, y := 500.0, 300.0

	reachedBottom := false
	for elapsed := time.Duration(0); elapsed < 8000*time.Millisecond; elapsed += testTick {
		x, y = stepPlatform(mp, x, y, testTick)
		if y > 450 {
			t.Fatalf("y = %v exceeded the bottom bound", y)
		}
		if y == 450 {
			reachedBottom = true
		}
	}

	if !reachedBottom {
		t.Fatal("platform never reached y=450")
	}
	if !(y > 300 && y < 450) {
		t.Errorf("final y = %v, want in (300, 450)", y)
	}
	if mp.Direction != -1 {
		t.Errorf("direction = %v, want -1", mp.Direction)
	}
}

func TestStepPlatformHorizontalHasNoPause(t *testing.T) {
	t.Cleanup(config.Reset)
	mp := &components.MovingPlatformData{
		Origin:       components.Vector{X: 100, Y: 200},
		AxisDistance: 10,
		Speed:        100,
		Direction:    1,
	}
	x, y := 109.0, 200.0

	x, _ = stepPlatform(mp, x, y, 100*time.Millisecond)
	if x != 110 || mp.Direction != -1 {
		t.Fatalf("x = %v dir = %v, want clamp to 110 and flip", x, mp.Direction)
	}
	if mp.PauseRemaining != 0 {
		t.Errorf("horizontal platform paused for %v", mp.PauseRemaining)
	}
	x, _ = stepPlatform(mp, x, y, 50*time.Millisecond)
	if math.Abs(x-105) > 1e-9 {
		t.Errorf("x = %v, want 105", x)
	}
}

func TestStepPlatformPauseFreezesSecondaryAxis(t *testing.T) {
	t.Cleanup(config.Reset)
	mp := verticalPlatform(30)
	mp.HorizontalDistance = 50
	mp.HorizontalSpeed = 40
	mp.HorizontalDirection = 1
	mp.PauseRemaining = 100 * time.Millisecond

	x, y := stepPlatform(mp, 500, 450, testTick)
	if x != 500 || y != 450 {
		t.Errorf("paused platform moved to (%v, %v)", x, y)
	}

	mp.PauseRemaining = 0
	x, _ = stepPlatform(mp, 500, 400, 100*time.Millisecond)
	if math.Abs(x-504) > 1e-9 {
		t.Errorf("secondary axis x = %v, want 504", x)
	}
}

func TestRiderFollowsHorizontalPlatform(t *testing.T) {
	e := newTestWorld(t, 1000, 1000)

	platform := factory.CreateMovingPlatform(e, leveldata.MovingPlatformSpawn{
		Rect:     leveldata.Rect{X: 100, Y: 300, W: 200, H: 16},
		Distance: 100,
		Speed:    60,
	})
	player := factory.CreatePlayer(e, 200, 300)
	playerObj := components.Object.Get(player)
	mp := components.MovingPlatform.Get(platform)

	startX := playerObj.X
	sum := 0.0
	for i := 0; i < 100; i++ {
		UpdatePhysics(e)
		UpdateCollisions(e)
		UpdateMovingPlatforms(e)
		UpdatePlatformAttachment(e)
		sum += mp.Delta.X
	}

	if mp.Direction != 1 {
		t.Fatal("platform reversed during the run")
	}
	if got := playerObj.X - startX; math.Abs(got-sum) > 1e-9 {
		t.Errorf("player moved %v, platform moved %v", got, sum)
	}
	if bottom := playerObj.Y + playerObj.H; math.Abs(bottom-300) > 1e-9 {
		t.Errorf("player bottom = %v, want resting on 300", bottom)
	}
}

func TestRiderFollowsRisingPlatform(t *testing.T) {
	e := newTestWorld(t, 1000, 1000)

	platform := factory.CreateMovingPlatform(e, leveldata.MovingPlatformSpawn{
		Rect:     leveldata.Rect{X: 100, Y: 500, W: 200, H: 16},
		Distance: 150,
		Speed:    60,
		Vertical: true,
	})
	mp := components.MovingPlatform.Get(platform)
	mp.Direction = -1
	player := factory.CreatePlayer(e, 200, 500)
	playerObj := components.Object.Get(player)
	platObj := components.Object.Get(platform)

	for i := 0; i < 60; i++ {
		UpdatePhysics(e)
		UpdateCollisions(e)
		UpdateMovingPlatforms(e)
		UpdatePlatformAttachment(e)
	}

	if platObj.Y >= 500 {
		t.Fatalf("platform did not rise: y = %v", platObj.Y)
	}
	if gap := platObj.Y - (playerObj.Y + playerObj.H); math.Abs(gap) > config.Platform.SnapTolerance {
		t.Errorf("rider left the platform: gap = %v", gap)
	}
}
