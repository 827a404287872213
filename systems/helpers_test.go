package systems

import (
	"math/rand"
	"testing"
	"time"

	"github.com/automoto/dune-runner/components"
	"github.com/automoto/dune-runner/config"
	"github.com/automoto/dune-runner/shared/leveldata"
	"github.com/automoto/dune-runner/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const testTick = 16 * time.Millisecond

// newTestWorld builds an empty level of the given size with its space,
// clock and combat handlers.
func newTestWorld(t *testing.T, w, h int) *ecs.ECS {
	t.Helper()
	t.Cleanup(config.Reset)

	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateSpace(e, w, h, 16, 16)
	factory.CreateLevel(e, &leveldata.LevelData{Name: "test", MapWidth: w, MapHeight: h}, rand.New(rand.NewSource(1)))
	RegisterCombatHandlers(e)
	setDelta(e, testTick)
	return e
}

func setDelta(e *ecs.ECS, dt time.Duration) {
	entry, _ := components.Clock.First(e.World)
	components.Clock.Get(entry).Delta = dt
}

func spawnEnemy(e *ecs.ECS, kind string, x, y, patrol, speed float64) *donburi.Entry {
	return factory.CreateEnemy(e, leveldata.EnemySpawn{X: x, Y: y, Kind: kind, Patrol: patrol, Speed: speed}, nil)
}

func score(e *ecs.ECS) *components.ScoreData {
	entry, _ := components.Score.First(e.World)
	return components.Score.Get(entry)
}
