// Package leveldata parses TMX levels into plain level descriptions.
// It has no dependencies on ebitengine, donburi, or resolv — pure data only.
package leveldata

// LevelData holds everything a scene needs to build a level.
type LevelData struct {
	Name            string
	MapWidth        int
	MapHeight       int
	Solids          []SolidRect
	MovingPlatforms []MovingPlatformSpawn
	Enemies         []EnemySpawn
	Destructibles   []DestructibleSpawn
	SpawnPoints     []SpawnPoint
	Exits           []Rect
}

// Rect is an axis-aligned box in world pixels, top-left anchored.
type Rect struct {
	X, Y, W, H float64
}

// SolidRect represents static level geometry.
type SolidRect struct {
	Rect
	Name string
}

// MovingPlatformSpawn describes one moving platform. A zero Distance or
// Speed yields a stationary platform.
type MovingPlatformSpawn struct {
	Rect
	Kind               string // "plain", "stepping", "collapsing", "sandSurfing"
	Distance           float64
	Speed              float64
	Vertical           bool
	HorizontalDistance float64
	HorizontalSpeed    float64
}

// EnemySpawn is the center point of an enemy plus its patrol parameters.
type EnemySpawn struct {
	X, Y   float64
	Kind   string // "basic", "harkonnen", "ornithopter", "sandworm"
	Patrol float64
	Speed  float64
}

// DestructibleSpawn represents a breakable crate.
type DestructibleSpawn struct {
	Rect
	Health int
}

// SpawnPoint represents a player spawn location.
type SpawnPoint struct {
	X, Y  float64
	Index int
}
