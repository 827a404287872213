package assets

import (
	"errors"
	"testing"
)

func TestLoadEmbeddedDesert(t *testing.T) {
	level, err := NewLevelLoader().LoadLevel("desert")
	if err != nil {
		t.Fatalf("LoadLevel: %v", err)
	}

	if level.MapWidth != 12000 || level.MapHeight != 720 {
		t.Errorf("map size = %dx%d, want 12000x720", level.MapWidth, level.MapHeight)
	}
	if len(level.Enemies) != 14 {
		t.Errorf("enemies = %d, want 14", len(level.Enemies))
	}
	if len(level.MovingPlatforms) != 28 {
		t.Errorf("moving platforms = %d, want 28", len(level.MovingPlatforms))
	}
	if len(level.Exits) != 1 {
		t.Errorf("exits = %d, want 1", len(level.Exits))
	}

	kinds := map[string]int{}
	for _, e := range level.Enemies {
		kinds[e.Kind]++
	}
	for _, k := range []string{"basic", "harkonnen", "ornithopter", "sandworm"} {
		if kinds[k] == 0 {
			t.Errorf("no %s enemy in the desert level", k)
		}
	}
}

func TestLoadUnknownLevel(t *testing.T) {
	_, err := NewLevelLoader().LoadLevel("atlantis")
	if !errors.Is(err, ErrUnknownLevel) {
		t.Fatalf("err = %v, want ErrUnknownLevel", err)
	}
}

func TestLevelNames(t *testing.T) {
	names, err := NewLevelLoader().LevelNames()
	if err != nil {
		t.Fatalf("LevelNames: %v", err)
	}
	if len(names) != 1 || names[0] != "desert" {
		t.Errorf("names = %v, want [desert]", names)
	}
}
