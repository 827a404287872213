package systems

import (
	"math"
	"time"

	"github.com/automoto/dune-runner/components"
	"github.com/automoto/dune-runner/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// epsilon absorbs float drift when comparing edges.
const epsilon = 1e-6

// entryOf returns the entity that owns a collision object.
func entryOf(o *resolv.Object) (*donburi.Entry, bool) {
	if o == nil {
		return nil, false
	}
	e, ok := o.Data.(*donburi.Entry)
	if !ok || e == nil || !e.Valid() {
		return nil, false
	}
	return e, true
}

// lookup resolves an entity id to its entry. It fails once the entity has
// been removed, even after donburi reuses the id for a new entity.
func lookup(w donburi.World, id donburi.Entity) (*donburi.Entry, bool) {
	if !w.Valid(id) {
		return nil, false
	}
	return w.Entry(id), true
}

// bodyDisabled reports whether the object's owner has its body switched off.
func bodyDisabled(o *resolv.Object) bool {
	e, ok := entryOf(o)
	if !ok {
		return true
	}
	if !e.HasComponent(components.Physics) {
		return false
	}
	return components.Physics.Get(e).Disabled
}

// overlapX reports whether a and b share a strictly positive horizontal span.
func overlapX(a, b *resolv.Object) bool {
	return a.X < b.X+b.W-epsilon && a.X+a.W > b.X+epsilon
}

// overlapY reports whether a and b share a strictly positive vertical span.
func overlapY(a, b *resolv.Object) bool {
	return a.Y < b.Y+b.H-epsilon && a.Y+a.H > b.Y+epsilon
}

// overlaps reports a strict AABB intersection.
func overlaps(a, b *resolv.Object) bool {
	return overlapX(a, b) && overlapY(a, b)
}

// touching reports whether a, grown by slop on every side, intersects b.
func touching(a, b *resolv.Object, slop float64) bool {
	return a.X-slop < b.X+b.W && a.X+a.W+slop > b.X &&
		a.Y-slop < b.Y+b.H && a.Y+a.H+slop > b.Y
}

// candidates gathers the objects near obj from the space's cells for each
// probe offset, without duplicates.
func candidates(obj *resolv.Object, probes [][2]float64, tagList ...string) []*resolv.Object {
	var out []*resolv.Object
	seen := map[*resolv.Object]bool{obj: true}
	for _, p := range probes {
		check := obj.Check(p[0], p[1], tagList...)
		if check == nil {
			continue
		}
		for _, o := range check.ObjectsByTags(tagList...) {
			if seen[o] {
				continue
			}
			seen[o] = true
			out = append(out, o)
		}
	}
	return out
}

// refresh re-buckets an object in its space after it moved.
func refresh(obj *resolv.Object) {
	if obj.Space != nil {
		obj.Update()
	}
}

func clampFloat(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

func sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}

func distance(ax, ay, bx, by float64) float64 {
	return math.Hypot(bx-ax, by-ay)
}

// bearing returns the unit vector from (ax, ay) to (bx, by), or zero when
// the points coincide.
func bearing(ax, ay, bx, by float64) (float64, float64) {
	dx, dy := bx-ax, by-ay
	l := math.Hypot(dx, dy)
	if l == 0 {
		return 0, 0
	}
	return dx / l, dy / l
}

// decrement counts a timer down without going below zero.
func decrement(d *time.Duration, by time.Duration) {
	*d -= by
	if *d < 0 {
		*d = 0
	}
}

// clock returns the frame clock; a zero clock is returned when the level
// singleton is missing.
func clock(ecs *ecs.ECS) *components.ClockData {
	if entry, ok := components.Clock.First(ecs.World); ok {
		return components.Clock.Get(entry)
	}
	return &components.ClockData{}
}

// worldBounds returns the level size, or zeros when no level exists.
func worldBounds(ecs *ecs.ECS) (float64, float64) {
	if entry, ok := components.Level.First(ecs.World); ok {
		level := components.Level.Get(entry)
		return level.Width, level.Height
	}
	return 0, 0
}

// playerObject returns the live player's entry and collision object.
func playerObject(ecs *ecs.ECS) (*donburi.Entry, *resolv.Object, bool) {
	entry, ok := tags.Player.First(ecs.World)
	if !ok {
		return nil, nil, false
	}
	return entry, components.Object.Get(entry).Object, true
}

// removeEntity drops an entity and its collision object.
func removeEntity(ecs *ecs.ECS, e *donburi.Entry) {
	if !e.Valid() {
		return
	}
	if e.HasComponent(components.Object) {
		if obj := components.Object.Get(e); obj.Object != nil && obj.Space != nil {
			obj.Space.Remove(obj.Object)
		}
	}
	ecs.World.Remove(e.Entity())
}
