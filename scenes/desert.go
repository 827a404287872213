package scenes

import (
	"errors"
	"fmt"
	"image/color"
	"math/rand"
	"time"

	"github.com/automoto/dune-runner/assets"
	"github.com/automoto/dune-runner/components"
	cfg "github.com/automoto/dune-runner/config"
	"github.com/automoto/dune-runner/shared/leveldata"
	"github.com/automoto/dune-runner/systems"
	"github.com/automoto/dune-runner/systems/factory"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

const layerDefault ecs.LayerID = iota

// ErrNoSpawn is returned for levels without a player spawn point.
var ErrNoSpawn = errors.New("no player spawn points defined in map")

// InputSource is the system that writes the player's input each tick.
type InputSource func(ecs *ecs.ECS)

var (
	// Keyboard reads the local keyboard and gamepads.
	Keyboard InputSource = systems.UpdateInput
	// Autopilot plays the level without a human, for headless runs.
	Autopilot InputSource = systems.UpdateAutopilot
)

// Stats summarises a run.
type Stats struct {
	Level            string
	Ticks            int
	Elapsed          time.Duration
	Score            components.ScoreData
	PlayerHealth     int
	EnemiesRemaining int
	Completed        bool
	Failed           bool
}

// DesertScene runs one level: the player, its enemies and platforms, and
// the combat between them.
type DesertScene struct {
	ecs   *ecs.ECS
	level string
	seed  int64
}

// NewDesertScene loads the named level and builds its world. A zero seed is
// replaced by one taken from the clock.
func NewDesertScene(levelName string, seed int64, input InputSource) (*DesertScene, error) {
	level, err := assets.NewLevelLoader().LoadLevel(levelName)
	if err != nil {
		return nil, err
	}
	return NewDesertSceneFromLevel(level, seed, input)
}

// NewDesertSceneFromLevel builds a scene from an already parsed level.
func NewDesertSceneFromLevel(level *leveldata.LevelData, seed int64, input InputSource) (*DesertScene, error) {
	if len(level.SpawnPoints) == 0 {
		return nil, fmt.Errorf("level %q: %w", level.Name, ErrNoSpawn)
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if input == nil {
		input = Keyboard
	}

	ds := &DesertScene{level: level.Name, seed: seed}
	ds.ecs = ecs.NewECS(donburi.NewWorld())
	ds.addSystems(input)

	rng := rand.New(rand.NewSource(seed))

	// The space must exist before anything that collides is created.
	cell := cfg.Physics.SpaceCell
	factory.CreateSpace(ds.ecs, level.MapWidth, level.MapHeight, cell, cell)
	factory.CreateLevel(ds.ecs, level, rng)
	player := factory.PopulateLevel(ds.ecs, level, rng)

	cx, cy := components.Object.Get(player).Center()
	factory.CreateCamera(ds.ecs, math.NewVec2(cx, cy))

	systems.RegisterCombatHandlers(ds.ecs)
	systems.RegisterEffectHandlers(ds.ecs)

	log.Info("level loaded",
		"level", level.Name,
		"size", fmt.Sprintf("%dx%d", level.MapWidth, level.MapHeight),
		"enemies", len(level.Enemies),
		"platforms", len(level.MovingPlatforms),
		"seed", seed)

	return ds, nil
}

func (ds *DesertScene) addSystems(input InputSource) {
	e := ds.ecs

	e.AddSystem(whilePlaying(input))
	e.AddSystem(whilePlaying(systems.UpdateClock))
	e.AddSystem(whilePlaying(systems.UpdatePlayer))
	e.AddSystem(whilePlaying(systems.UpdatePhysics))
	e.AddSystem(whilePlaying(systems.UpdateCollisions))
	e.AddSystem(whilePlaying(systems.UpdateMovingPlatforms))
	e.AddSystem(whilePlaying(systems.UpdatePlatformAttachment))
	e.AddSystem(whilePlaying(systems.UpdateAnimations))
	e.AddSystem(whilePlaying(systems.UpdateEnemies))
	e.AddSystem(whilePlaying(systems.UpdateProjectiles))
	e.AddSystem(whilePlaying(systems.UpdateBullets))
	e.AddSystem(whilePlaying(systems.UpdateCombat))
	e.AddSystem(whilePlaying(systems.UpdateExit))
	e.AddSystem(whilePlaying(systems.UpdateDeaths))

	// Effects and the camera keep running under the end-of-run banner.
	e.AddSystem(systems.UpdateEffects)
	e.AddSystem(systems.UpdateCamera)

	e.AddRenderer(layerDefault, systems.DrawDebug)
	e.AddRenderer(layerDefault, systems.DrawHUD)
}

// whilePlaying skips a system once the level is completed or failed.
func whilePlaying(system func(*ecs.ECS)) func(*ecs.ECS) {
	return func(e *ecs.ECS) {
		if levelOver(e) {
			return
		}
		system(e)
	}
}

func levelOver(e *ecs.ECS) bool {
	entry, ok := components.Level.First(e.World)
	if !ok {
		return false
	}
	level := components.Level.Get(entry)
	return level.Completed || level.Failed
}

// Step advances the world by one fixed tick of length dt.
func (ds *DesertScene) Step(dt time.Duration) {
	if entry, ok := components.Clock.First(ds.ecs.World); ok {
		components.Clock.Get(entry).Delta = dt
	}
	ds.ecs.Update()
}

// Update is called by ebiten once per tick.
func (ds *DesertScene) Update() {
	ds.Step(time.Second / time.Duration(max(cfg.C.TPS, 1)))
}

func (ds *DesertScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)
	ds.ecs.Draw(screen)
}

// Done reports whether the level has been completed or failed.
func (ds *DesertScene) Done() bool {
	return levelOver(ds.ecs)
}

// ECS exposes the scene's world.
func (ds *DesertScene) ECS() *ecs.ECS {
	return ds.ecs
}

// Seed is the seed the scene's random source was created with.
func (ds *DesertScene) Seed() int64 {
	return ds.seed
}

// Stats collects the run's statistics so far.
func (ds *DesertScene) Stats() Stats {
	s := Stats{
		Level:            ds.level,
		EnemiesRemaining: systems.EnemiesRemaining(ds.ecs),
	}
	if entry, ok := components.Clock.First(ds.ecs.World); ok {
		c := components.Clock.Get(entry)
		s.Ticks = c.Tick
		s.Elapsed = c.Elapsed
	}
	if entry, ok := components.Score.First(ds.ecs.World); ok {
		s.Score = *components.Score.Get(entry)
	}
	if entry, ok := components.Level.First(ds.ecs.World); ok {
		level := components.Level.Get(entry)
		s.Completed = level.Completed
		s.Failed = level.Failed
	}
	if entry, ok := components.Player.First(ds.ecs.World); ok {
		s.PlayerHealth = components.Health.Get(entry).Current
	}
	return s
}
