package systems

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/automoto/dune-runner/components"
	"github.com/automoto/dune-runner/config"
	"github.com/automoto/dune-runner/events"
	"github.com/automoto/dune-runner/systems/factory"
	"github.com/automoto/dune-runner/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

func TestPatrolFlipsOnTheTickItClamps(t *testing.T) {
	obj := resolv.NewObject(1000, 0, 28, 40)
	enemy := &components.EnemyData{StartX: 1000, PatrolRadius: 200, Speed: 50, Direction: 1}
	var physics components.PhysicsData
	dt := testTick.Seconds()

	patrol(enemy, &physics, obj)
	for i := 0; i < 1000; i++ {
		obj.X += physics.SpeedX * dt
		overshoot := obj.X > 1200
		patrol(enemy, &physics, obj)
		if !overshoot {
			continue
		}
		if obj.X != 1200 {
			t.Fatalf("x = %v, want clamp to exactly 1200", obj.X)
		}
		if enemy.Direction != -1 || physics.SpeedX != -50 {
			t.Fatalf("direction = %v speedX = %v on the clamping tick", enemy.Direction, physics.SpeedX)
		}
		return
	}
	t.Fatal("enemy never reached the right patrol bound")
}

func TestDamageEnemyDefeatsOnce(t *testing.T) {
	e := newTestWorld(t, 1000, 1000)
	enemy := spawnEnemy(e, "harkonnen", 300, 300, 50, 40)
	components.Health.Get(enemy).Current = 1

	defeated, explosions := 0, 0
	events.EnemyDefeated.Subscribe(e.World, func(w donburi.World, ev events.EnemyDefeatedEvent) {
		defeated++
	})
	events.Explosion.Subscribe(e.World, func(w donburi.World, ev events.ExplosionEvent) {
		explosions++
	})

	if !DamageEnemy(e, enemy.Entity(), 1) {
		t.Fatal("first hit did not defeat the enemy")
	}
	if DamageEnemy(e, enemy.Entity(), 1) {
		t.Fatal("second hit reported another defeat")
	}
	events.ProcessEffects(e.World)

	if defeated != 1 || explosions != 1 {
		t.Errorf("defeated events = %d, explosions = %d, want 1 each", defeated, explosions)
	}
	if hp := components.Health.Get(enemy).Current; hp != 0 {
		t.Errorf("health = %d, want 0", hp)
	}
	if !components.Physics.Get(enemy).Disabled {
		t.Error("defeated enemy still collides")
	}
	if !enemy.HasComponent(components.Death) {
		t.Error("defeated enemy has no death timer")
	}
}

func TestDefeatedEnemyIsRemovedAfterDeathDelay(t *testing.T) {
	e := newTestWorld(t, 1000, 1000)
	enemy := spawnEnemy(e, "basic", 300, 300, 50, 40)
	id := enemy.Entity()
	DamageEnemy(e, id, 100)

	ticks := int(config.Enemy.DeathDelay.D()/testTick) + 1
	for i := 0; i < ticks; i++ {
		UpdateDeaths(e)
	}
	if e.World.Valid(id) {
		t.Error("enemy still in the world after its death delay")
	}
}

func TestRangedStanceAndCooldown(t *testing.T) {
	t.Cleanup(config.Reset)

	obj := resolv.NewObject(100, 100, 28, 40)
	target := resolv.NewObject(200, 100, 20, 40)
	enemy := &components.EnemyData{StartX: 100, PatrolRadius: 100, Speed: 40, Direction: 1}
	r := &components.RangedData{AttackRange: config.Ranged.AttackRange, PoolSize: 10}
	physics := components.PhysicsData{SpeedX: 40}

	stepRanged(r, enemy, &physics, obj, target, testTick)
	if !r.InAttackStance {
		t.Fatal("target in range but no attack stance")
	}
	if obj.X != 100+config.Ranged.StanceNudge || enemy.Facing != 1 || physics.SpeedX != 0 {
		t.Errorf("stance entry: x = %v facing = %v speedX = %v", obj.X, enemy.Facing, physics.SpeedX)
	}

	for elapsed := time.Duration(0); elapsed < config.Ranged.StanceDuration.D(); elapsed += testTick {
		stepRanged(r, enemy, &physics, obj, target, testTick)
		if physics.SpeedX != 0 {
			t.Fatal("enemy walked during its attack stance")
		}
	}
	if r.InAttackStance {
		t.Fatal("stance never ended")
	}
	if r.AttackCooldownRemaining != config.Ranged.AttackCooldown.D() {
		t.Errorf("cooldown = %v, want %v", r.AttackCooldownRemaining, config.Ranged.AttackCooldown.D())
	}

	stepRanged(r, enemy, &physics, obj, target, testTick)
	if r.InAttackStance {
		t.Error("re-entered the stance during the cooldown")
	}
}

func TestRangedShootTimerRunsInStance(t *testing.T) {
	t.Cleanup(config.Reset)

	obj := resolv.NewObject(100, 100, 28, 40)
	enemy := &components.EnemyData{StartX: 100, PatrolRadius: 100, Speed: 40, Direction: 1}
	r := &components.RangedData{InAttackStance: true, StanceRemaining: time.Hour, PoolSize: 10}
	var physics components.PhysicsData

	shots := 0
	for elapsed := time.Duration(0); elapsed < 10*time.Second; elapsed += 100 * time.Millisecond {
		if stepRanged(r, enemy, &physics, obj, nil, 100*time.Millisecond) {
			shots++
		}
	}
	if shots != 5 {
		t.Errorf("shots = %d, want 5", shots)
	}
}

func TestProjectilePoolBound(t *testing.T) {
	e := newTestWorld(t, 2000, 1000)
	enemy := spawnEnemy(e, "harkonnen", 500, 300, 0, 0)
	ranged := components.Ranged.Get(enemy)
	dt := 100 * time.Millisecond
	setDelta(e, dt)

	for elapsed := time.Duration(0); elapsed < 30*time.Second; elapsed += dt {
		UpdateEnemies(e)
		live := 0
		tags.Projectile.Each(e.World, func(*donburi.Entry) { live++ })
		if live > config.Ranged.PoolSize {
			t.Fatalf("%d live projectiles, pool is %d", live, config.Ranged.PoolSize)
		}
	}

	if ranged.LiveProjectiles != config.Ranged.PoolSize {
		t.Fatalf("live = %d, want the full pool of %d", ranged.LiveProjectiles, config.Ranged.PoolSize)
	}

	// A freed slot is reused by the next shot.
	first, _ := tags.Projectile.First(e.World)
	destroyProjectile(e, first.Entity())
	if ranged.LiveProjectiles != config.Ranged.PoolSize-1 {
		t.Fatalf("live = %d after freeing a shot", ranged.LiveProjectiles)
	}
	fireProjectile(e, enemy, ranged)
	if ranged.LiveProjectiles != config.Ranged.PoolSize {
		t.Errorf("live = %d, freed slot was not reused", ranged.LiveProjectiles)
	}
}

func TestProjectileLeavingWorldFreesSlot(t *testing.T) {
	e := newTestWorld(t, 500, 400)
	enemy := spawnEnemy(e, "harkonnen", 250, 100, 0, 0)
	ranged := components.Ranged.Get(enemy)
	fireProjectile(e, enemy, ranged)

	setDelta(e, 500*time.Millisecond)
	for i := 0; i < 10; i++ {
		UpdateProjectiles(e)
	}
	if ranged.LiveProjectiles != 0 {
		t.Errorf("live = %d, want 0 after the shot fell out", ranged.LiveProjectiles)
	}
	if _, ok := tags.Projectile.First(e.World); ok {
		t.Error("projectile still in the world")
	}
}

func TestFlyingLosesTargetResetsPattern(t *testing.T) {
	t.Cleanup(config.Reset)

	obj := resolv.NewObject(100, 100, 40, 24)
	far := resolv.NewObject(2000, 100, 20, 40)
	enemy := &components.EnemyData{StartX: 100, PatrolRadius: 100, Speed: 60, Direction: 1}
	f := &components.FlyingData{
		DetectionRange:           300,
		InPursuit:                true,
		Pattern:                  components.PatternDive,
		PatternCooldownRemaining: 2 * time.Second,
		OriginalY:                100,
		Amplitude:                50,
		PrevX:                    100,
	}
	var physics components.PhysicsData

	stepFlying(f, enemy, &physics, obj, far, testTick, nil, 0, 0)

	if f.InPursuit || f.Pattern != components.PatternNone || f.PatternCooldownRemaining != 0 {
		t.Errorf("after losing the target: pursuit = %v pattern = %v cooldown = %v",
			f.InPursuit, f.Pattern, f.PatternCooldownRemaining)
	}
}

func TestFlyingPicksPatternOnDetection(t *testing.T) {
	t.Cleanup(config.Reset)

	obj := resolv.NewObject(100, 100, 40, 24)
	near := resolv.NewObject(200, 150, 20, 40)
	enemy := &components.EnemyData{StartX: 100, PatrolRadius: 100, Speed: 60, Direction: 1}
	f := &components.FlyingData{DetectionRange: 300, OriginalY: 100, PrevX: 100}
	var physics components.PhysicsData
	rng := rand.New(rand.NewSource(3))

	stepFlying(f, enemy, &physics, obj, near, testTick, rng, 0, 0)

	if !f.InPursuit {
		t.Fatal("target in range but no pursuit")
	}
	if f.Pattern < components.PatternDive || f.Pattern > components.PatternErratic {
		t.Errorf("pattern = %v", f.Pattern)
	}
	if f.PatternCooldownRemaining != config.Flying.PatternHold.D() {
		t.Errorf("cooldown = %v, want %v", f.PatternCooldownRemaining, config.Flying.PatternHold.D())
	}

	// The pattern is held while the cooldown runs.
	pattern := f.Pattern
	for i := 0; i < 10; i++ {
		stepFlying(f, enemy, &physics, obj, near, testTick, rng, 0, 0)
	}
	if f.Pattern != pattern {
		t.Errorf("pattern changed from %v to %v during the hold", pattern, f.Pattern)
	}
}

func TestFlyingOrbitKeepsRadius(t *testing.T) {
	t.Cleanup(config.Reset)

	obj := resolv.NewObject(300, 300, 40, 24)
	target := resolv.NewObject(400, 300, 20, 40)
	enemy := &components.EnemyData{Speed: 60, Direction: 1}
	f := &components.FlyingData{
		DetectionRange:           300,
		InPursuit:                true,
		Pattern:                  components.PatternOrbit,
		PatternCooldownRemaining: time.Second,
		PrevX:                    300,
	}
	var physics components.PhysicsData

	for i := 0; i < 5; i++ {
		stepFlying(f, enemy, &physics, obj, target, testTick, nil, 0, 0)
		cx, cy := obj.X+obj.W/2, obj.Y+obj.H/2
		r := math.Hypot(cx-410, cy-320)
		if math.Abs(r-config.Flying.OrbitRadius) > 1e-6 {
			t.Fatalf("tick %d: orbit radius = %v", i, r)
		}
	}
}

func TestFlyingPatrolStaysInBounds(t *testing.T) {
	t.Cleanup(config.Reset)

	obj := resolv.NewObject(100, 100, 40, 24)
	enemy := &components.EnemyData{StartX: 100, PatrolRadius: 30, Speed: 200, Direction: 1}
	f := &components.FlyingData{DetectionRange: 300, OriginalY: 100, Amplitude: 50, PrevX: 100}
	var physics components.PhysicsData

	for i := 0; i < 500; i++ {
		stepFlying(f, enemy, &physics, obj, nil, testTick, nil, 1000, 1000)
		if obj.X < 70 || obj.X > 130 {
			t.Fatalf("tick %d: x = %v outside patrol range", i, obj.X)
		}
		if obj.Y < 50-1e-9 || obj.Y > 150+1e-9 {
			t.Fatalf("tick %d: y = %v outside the figure eight", i, obj.Y)
		}
	}
}

func TestBurrowCycleWithoutAnimation(t *testing.T) {
	t.Cleanup(config.Reset)

	b := &components.BurrowData{}
	limit := int((config.Burrow.SurfaceDuration.D()+config.Burrow.BurrowedDuration.D())/testTick) + 4

	var seen []components.BurrowPhase
	for i := 0; i < limit; i++ {
		seen = append(seen, stepBurrow(b, nil, testTick, 0, 100, 50, nil)...)
		if len(seen) == 4 {
			break
		}
	}

	want := []components.BurrowPhase{
		components.BurrowBurrowing,
		components.BurrowBurrowed,
		components.BurrowEmerging,
		components.BurrowSurface,
	}
	if len(seen) != len(want) {
		t.Fatalf("phases entered = %v within %d ticks, want %v", seen, limit, want)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("phases entered = %v, want %v", seen, want)
		}
	}
	if b.Phase != components.BurrowSurface {
		t.Errorf("ended in %v", b.Phase)
	}
}

func TestBurrowWaitsForAnimationUntilTimeout(t *testing.T) {
	t.Cleanup(config.Reset)

	anim := factory.NewBurrowAnimations()
	b := &components.BurrowData{CycleTimer: config.Burrow.SurfaceDuration.D()}

	entered := stepBurrow(b, &anim, testTick, 0, 100, 50, nil)
	if len(entered) != 1 || b.Phase != components.BurrowBurrowing {
		t.Fatalf("entered %v, phase %v", entered, b.Phase)
	}
	if b.PendingEmerge == nil || b.PendingEmerge.X < 0 || b.PendingEmerge.X > 100 {
		t.Fatalf("emerge point = %+v", b.PendingEmerge)
	}

	// The clip is never advanced, so only the timeout ends the wait.
	ticks := 0
	for b.Phase == components.BurrowBurrowing && ticks < 1000 {
		stepBurrow(b, &anim, testTick, 0, 100, 50, nil)
		ticks++
	}
	want := int((config.Burrow.AnimTimeout.D() + testTick - 1) / testTick)
	if ticks != want {
		t.Errorf("burrowing lasted %d ticks, want %d", ticks, want)
	}
}

func TestBurrowAnimationEndsWaitEarly(t *testing.T) {
	t.Cleanup(config.Reset)

	anim := factory.NewBurrowAnimations()
	b := &components.BurrowData{Phase: components.BurrowBurrowing}
	anim.SetAnimation(factory.ClipBurrow)
	anim.Completed = factory.ClipBurrow

	entered := stepBurrow(b, &anim, testTick, 0, 100, 50, nil)
	if len(entered) != 1 || entered[0] != components.BurrowBurrowed {
		t.Errorf("entered %v, want [burrowed]", entered)
	}
}

func TestSandwormHidesWhileBurrowed(t *testing.T) {
	e := newTestWorld(t, 2000, 1000)
	worm := spawnEnemy(e, "sandworm", 500, 500, 200, 40)
	enemy := components.Enemy.Get(worm)
	b := components.Burrow.Get(worm)
	physics := components.Physics.Get(worm)

	b.CycleTimer = config.Burrow.SurfaceDuration.D()
	for i := 0; i < 200 && b.Phase != components.BurrowBurrowed; i++ {
		UpdateAnimations(e)
		UpdateEnemies(e)
	}
	if b.Phase != components.BurrowBurrowed {
		t.Fatalf("worm stuck in %v", b.Phase)
	}
	if !enemy.Hidden || !physics.Disabled {
		t.Errorf("burrowed worm: hidden = %v disabled = %v", enemy.Hidden, physics.Disabled)
	}

	b.CycleTimer = config.Burrow.BurrowedDuration.D()
	UpdateEnemies(e)
	if b.Phase != components.BurrowEmerging {
		t.Fatalf("phase = %v, want emerging", b.Phase)
	}
	left, right := enemy.PatrolBounds()
	obj := components.Object.Get(worm)
	if enemy.Hidden || physics.Disabled {
		t.Error("emerging worm is still hidden")
	}
	if obj.X < left || obj.X > right {
		t.Errorf("emerged at x = %v outside [%v, %v]", obj.X, left, right)
	}
}

func TestBurrowedSandwormIgnoresHits(t *testing.T) {
	e := newTestWorld(t, 2000, 1000)
	player := factory.CreatePlayer(e, 100, 900)
	worm := spawnEnemy(e, "sandworm", 500, 500, 200, 40)
	b := components.Burrow.Get(worm)

	b.CycleTimer = config.Burrow.SurfaceDuration.D()
	for i := 0; i < 200 && b.Phase != components.BurrowBurrowed; i++ {
		UpdateAnimations(e)
		UpdateEnemies(e)
	}
	if b.Phase != components.BurrowBurrowed {
		t.Fatalf("worm stuck in %v", b.Phase)
	}
	hp := components.Health.Get(worm).Current

	// A shot parked inside the hidden worm passes through.
	bullet := factory.CreateBullet(e, player, 1)
	bulletID := bullet.Entity()
	bulletObj := components.Object.Get(bullet)
	wormObj := components.Object.Get(worm)
	bulletObj.X, bulletObj.Y = wormObj.X+4, wormObj.Y+4
	components.Physics.Get(bullet).SpeedX = 0
	refresh(bulletObj.Object)

	UpdateBullets(e)
	UpdateCombat(e)
	if !e.World.Valid(bulletID) {
		t.Error("bullet consumed by a burrowed worm")
	}

	// Overlaps queued before the worm went under do not land either.
	onBulletEnemy(e, events.BulletEnemyOverlap{Bullet: bulletID, Enemy: worm.Entity()})
	components.Contact.Get(player).Touching[components.SideDown] = true
	components.Contact.Get(worm).Touching[components.SideUp] = true
	onPlayerEnemy(e, events.PlayerEnemyOverlap{Player: player.Entity(), Enemy: worm.Entity()})
	processPlayerDamage(e)

	if got := components.Health.Get(worm).Current; got != hp {
		t.Errorf("worm health = %d, want %d", got, hp)
	}
	if !e.World.Valid(bulletID) {
		t.Error("queued hit consumed the bullet")
	}
	if got := components.Health.Get(player).Current; got != config.Player.Health {
		t.Errorf("player health = %d, want %d", got, config.Player.Health)
	}
	if score(e).EnemiesDefeated != 0 {
		t.Errorf("defeated = %d, want 0", score(e).EnemiesDefeated)
	}
}
