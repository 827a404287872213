package factory

import (
	"math/rand"

	"github.com/automoto/dune-runner/archetypes"
	"github.com/automoto/dune-runner/components"
	cfg "github.com/automoto/dune-runner/config"
	"github.com/automoto/dune-runner/shared/leveldata"
	"github.com/automoto/dune-runner/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel adds the level singleton, which also carries the clock and score.
func CreateLevel(ecs *ecs.ECS, level *leveldata.LevelData, rng *rand.Rand) *donburi.Entry {
	entry := archetypes.Level.Spawn(ecs)

	components.Level.Set(entry, &components.LevelData{
		CurrentLevel: level,
		Width:        float64(level.MapWidth),
		Height:       float64(level.MapHeight),
	})
	components.Clock.Set(entry, &components.ClockData{Rand: rng})
	components.Score.Set(entry, &components.ScoreData{})

	return entry
}

// PopulateLevel creates every entity described by the level. The space must
// already exist.
func PopulateLevel(ecs *ecs.ECS, level *leveldata.LevelData, rng *rand.Rand) *donburi.Entry {
	for _, s := range level.Solids {
		CreatePlatform(ecs, s.X, s.Y, s.W, s.H)
	}
	for _, mp := range level.MovingPlatforms {
		CreateMovingPlatform(ecs, mp)
	}
	for _, d := range level.Destructibles {
		CreateDestructible(ecs, d)
	}
	for _, ex := range level.Exits {
		CreateExit(ecs, ex)
	}
	for _, e := range level.Enemies {
		CreateEnemy(ecs, e, rng)
	}

	spawn := level.SpawnPoints[0]
	return CreatePlayer(ecs, spawn.X, spawn.Y)
}

// CreateDestructible adds a breakable crate.
func CreateDestructible(ecs *ecs.ECS, spawn leveldata.DestructibleSpawn) *donburi.Entry {
	d := archetypes.Destructible.Spawn(ecs)

	obj := resolv.NewObject(spawn.X, spawn.Y, spawn.W, spawn.H, tags.ResolvSolid, tags.ResolvDestructible)
	obj.Data = d
	components.Object.SetValue(d, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	hits := spawn.Health
	if hits <= 0 {
		hits = cfg.Combat.DestructibleHits
	}
	components.Destructible.SetValue(d, components.DestructibleData{Hits: hits})
	components.Health.SetValue(d, components.HealthData{Current: hits, Max: hits})

	return d
}

// CreateExit adds the level-complete trigger.
func CreateExit(ecs *ecs.ECS, r leveldata.Rect) *donburi.Entry {
	exit := archetypes.Exit.Spawn(ecs)

	obj := resolv.NewObject(r.X, r.Y, r.W, r.H, tags.ResolvExit)
	obj.Data = exit
	components.Object.SetValue(exit, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	return exit
}
