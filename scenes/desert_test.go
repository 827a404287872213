package scenes

import (
	"errors"
	"testing"
	"time"

	"github.com/automoto/dune-runner/assets"
	"github.com/automoto/dune-runner/components"
	"github.com/automoto/dune-runner/config"
	"github.com/automoto/dune-runner/shared/leveldata"
	"github.com/automoto/dune-runner/tags"
	"github.com/yohamta/donburi"
)

const tick = time.Second / 60

func TestDesertSceneBuildsLevel(t *testing.T) {
	t.Cleanup(config.Reset)

	ds, err := NewDesertScene("desert", 42, Autopilot)
	if err != nil {
		t.Fatalf("NewDesertScene: %v", err)
	}
	if ds.Seed() != 42 {
		t.Errorf("seed = %d, want 42", ds.Seed())
	}

	world := ds.ECS().World
	count := func(tag *donburi.ComponentType[donburi.Tag]) int {
		n := 0
		tag.Each(world, func(*donburi.Entry) { n++ })
		return n
	}
	if got := count(tags.Enemy); got != 14 {
		t.Errorf("enemies = %d, want 14", got)
	}
	if got := count(tags.MovingPlatform); got != 28 {
		t.Errorf("moving platforms = %d, want 28", got)
	}
	if got := count(tags.Player); got != 1 {
		t.Errorf("players = %d, want 1", got)
	}

	s := ds.Stats()
	if s.Level != "desert" || s.Ticks != 0 || s.EnemiesRemaining != 14 {
		t.Errorf("initial stats = %+v", s)
	}
	if s.PlayerHealth != config.Player.Health {
		t.Errorf("player health = %d, want %d", s.PlayerHealth, config.Player.Health)
	}
}

func TestDesertSceneRunsUnderAutopilot(t *testing.T) {
	t.Cleanup(config.Reset)

	ds, err := NewDesertScene("desert", 7, Autopilot)
	if err != nil {
		t.Fatalf("NewDesertScene: %v", err)
	}

	steps := 0
	for ; steps < 1200 && !ds.Done(); steps++ {
		ds.Step(tick)
	}

	s := ds.Stats()
	if s.Ticks != steps {
		t.Errorf("ticks = %d after %d steps", s.Ticks, steps)
	}
	if s.Elapsed != time.Duration(steps)*tick {
		t.Errorf("elapsed = %v, want %v", s.Elapsed, time.Duration(steps)*tick)
	}
	if s.Score.EnemiesDefeated+s.EnemiesRemaining != 14 {
		t.Errorf("defeated %d + remaining %d != 14", s.Score.EnemiesDefeated, s.EnemiesRemaining)
	}
	if s.Completed && s.Failed {
		t.Error("run both completed and failed")
	}
}

func TestDesertSceneFreezesWhenOver(t *testing.T) {
	t.Cleanup(config.Reset)

	ds, err := NewDesertScene("desert", 1, Autopilot)
	if err != nil {
		t.Fatalf("NewDesertScene: %v", err)
	}
	ds.Step(tick)

	entry, _ := components.Level.First(ds.ECS().World)
	components.Level.Get(entry).Completed = true
	if !ds.Done() {
		t.Fatal("Done() = false for a completed level")
	}

	before := ds.Stats().Ticks
	for i := 0; i < 10; i++ {
		ds.Step(tick)
	}
	if after := ds.Stats().Ticks; after != before {
		t.Errorf("clock advanced from %d to %d after the level ended", before, after)
	}
}

func TestNewDesertSceneErrors(t *testing.T) {
	t.Cleanup(config.Reset)

	if _, err := NewDesertScene("atlantis", 1, Autopilot); !errors.Is(err, assets.ErrUnknownLevel) {
		t.Errorf("unknown level: err = %v", err)
	}

	empty := &leveldata.LevelData{Name: "empty", MapWidth: 100, MapHeight: 100}
	if _, err := NewDesertSceneFromLevel(empty, 1, Autopilot); !errors.Is(err, ErrNoSpawn) {
		t.Errorf("no spawn: err = %v", err)
	}
}
