package components

import (
	"math/rand"
	"time"

	"github.com/yohamta/donburi"
)

// ClockData is the fixed-step game clock. Systems read Delta instead of
// wall time so headless runs are deterministic.
type ClockData struct {
	Delta   time.Duration
	Elapsed time.Duration
	Tick    int
	Rand    *rand.Rand
}

// Seconds returns the frame delta in seconds.
func (c *ClockData) Seconds() float64 {
	return c.Delta.Seconds()
}

var Clock = donburi.NewComponentType[ClockData]()

// ScoreData tracks the run's statistics.
type ScoreData struct {
	Score           int
	EnemiesDefeated int
	ShotsFired      int
	AmmoUsed        int
}

var Score = donburi.NewComponentType[ScoreData]()

// DestructibleData is a crate that breaks after a number of hits.
type DestructibleData struct {
	Hits      int
	Destroyed bool
}

var Destructible = donburi.NewComponentType[DestructibleData]()
