package archetypes

import (
	"github.com/automoto/dune-runner/components"
	"github.com/automoto/dune-runner/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Platform = newArchetype(
		tags.Platform,
		components.Object,
	)
	MovingPlatform = newArchetype(
		tags.MovingPlatform,
		components.MovingPlatform,
		components.Object,
		components.Contact,
	)
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
		components.Health,
		components.Physics,
		components.Contact,
		components.Input,
		components.Flash,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Enemy,
		components.Object,
		components.Health,
		components.Physics,
		components.Contact,
		components.Flash,
	)
	Projectile = newArchetype(
		tags.Projectile,
		components.Projectile,
		components.Object,
		components.Physics,
	)
	Bullet = newArchetype(
		tags.Bullet,
		components.Bullet,
		components.Object,
		components.Physics,
	)
	Destructible = newArchetype(
		tags.Destructible,
		components.Destructible,
		components.Object,
		components.Health,
	)
	Exit = newArchetype(
		tags.Exit,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.Level,
		components.Clock,
		components.Score,
	)
	Camera = newArchetype(
		components.Camera,
	)
	VFXEffect = newArchetype(
		components.VFX,
		components.Object,
		components.AutoDestroy,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	all := make([]donburi.IComponentType, 0, len(a.components)+len(cs))
	all = append(all, a.components...)
	all = append(all, cs...)
	return ecs.World.Entry(ecs.World.Create(all...))
}
