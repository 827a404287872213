package factory

import (
	"math/rand"

	"github.com/automoto/dune-runner/archetypes"
	"github.com/automoto/dune-runner/components"
	cfg "github.com/automoto/dune-runner/config"
	"github.com/automoto/dune-runner/shared/leveldata"
	"github.com/automoto/dune-runner/tags"
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Animation clip names used by the burrow cycle.
const (
	ClipBurrow = "burrow"
	ClipEmerge = "emerge"
)

// CreateEnemy spawns an enemy centered on the spawn point. rng rolls the
// basic enemy's variant and may be nil.
func CreateEnemy(ecs *ecs.ECS, spawn leveldata.EnemySpawn, rng *rand.Rand) *donburi.Entry {
	kind := components.ParseEnemyKind(spawn.Kind)
	enemyType, exists := cfg.Enemy.Types[kind.String()]
	if !exists {
		enemyType = cfg.Enemy.Types["basic"]
	}

	var extra []donburi.IComponentType
	switch kind {
	case components.EnemyRanged:
		extra = append(extra, components.Ranged)
	case components.EnemyFlying:
		extra = append(extra, components.Flying)
	case components.EnemyBurrowing:
		extra = append(extra, components.Burrow, components.Animation)
	}
	enemy := archetypes.Enemy.Spawn(ecs, extra...)

	scale := enemyType.Scale
	if scale <= 0 {
		scale = 1
	}
	w, h := enemyType.CollisionWidth*scale, enemyType.CollisionHeight*scale
	obj := resolv.NewObject(spawn.X-w/2, spawn.Y-h/2, w, h, tags.ResolvCharacter, tags.ResolvEnemy)
	obj.Data = enemy
	components.Object.SetValue(enemy, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	health := enemyType.Health
	enemyData := components.EnemyData{
		Kind:         kind,
		TintColor:    enemyType.TintColor,
		StartX:       obj.X,
		PatrolRadius: spawn.Patrol,
		Speed:        spawn.Speed,
		Direction:    1,
		Facing:       1,
	}

	if kind == components.EnemyBasic && rng != nil && len(cfg.Enemy.BasicVariants) > 0 {
		variant := cfg.Enemy.BasicVariants[rng.Intn(len(cfg.Enemy.BasicVariants))]
		enemyData.Variant = variant.Name
		enemyData.TintColor = variant.TintColor
		health = variant.Health
	}

	components.Enemy.SetValue(enemy, enemyData)
	components.Health.SetValue(enemy, components.HealthData{
		Current: health,
		Max:     health,
	})

	physics := components.PhysicsData{
		MaxFallSpeed: cfg.Physics.MaxFallSpeed,
	}
	if enemyType.Gravity {
		physics.Gravity = cfg.Physics.Gravity
	}

	switch kind {
	case components.EnemyRanged:
		components.Ranged.SetValue(enemy, components.RangedData{
			AttackRange: cfg.Ranged.AttackRange,
			PoolSize:    cfg.Ranged.PoolSize,
		})
	case components.EnemyFlying:
		physics.Gravity = 0
		physics.Kinematic = true
		components.Flying.SetValue(enemy, components.FlyingData{
			DetectionRange: cfg.Flying.DetectionRange,
			OriginalY:      obj.Y,
			Amplitude:      cfg.Flying.PatrolAmplitude,
			PrevX:          obj.X,
		})
	case components.EnemyBurrowing:
		components.Burrow.SetValue(enemy, components.BurrowData{
			Phase: components.BurrowSurface,
		})
		components.Animation.SetValue(enemy, NewBurrowAnimations())
	}

	components.Physics.SetValue(enemy, physics)

	return enemy
}

// NewBurrowAnimations returns the sink and rise clips. Value is the visible
// fraction of the body.
func NewBurrowAnimations() components.AnimationData {
	d := float32(cfg.Burrow.AnimDuration.D().Seconds())
	return components.AnimationData{
		Clips: map[string]*gween.Tween{
			ClipBurrow: gween.New(1, 0, d, ease.InQuad),
			ClipEmerge: gween.New(0, 1, d, ease.OutQuad),
		},
		Value: 1,
	}
}
