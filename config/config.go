package config

import (
	"image/color"
	"time"
)

// Duration is a time.Duration that reads from YAML as "300ms", "2s" etc.
type Duration time.Duration

// D returns the value as a time.Duration.
func (d Duration) D() time.Duration { return time.Duration(d) }

// Config holds general game configuration
type Config struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	TPS    int    `yaml:"tps"`
	Level  string `yaml:"level"`
	Seed   int64  `yaml:"seed"` // 0 = seed from the clock
}

// PhysicsConfig contains physics-related configuration values.
// Speeds are in pixels per second, accelerations in pixels per second squared.
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"`
	MaxFallSpeed float64 `yaml:"maxFallSpeed"`
	SpaceCell    int     `yaml:"spaceCell"` // resolv cell size in pixels
	ContactSlop  float64 `yaml:"contactSlop"`
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement
	Speed     float64 `yaml:"speed"`
	JumpSpeed float64 `yaml:"jumpSpeed"`

	// Combat
	Health         int      `yaml:"health"`
	InvulnDuration Duration `yaml:"invulnDuration"`
	StompBounce    float64  `yaml:"stompBounce"`

	// Shooting
	Ammo       int      `yaml:"ammo"`
	MaxAmmo    int      `yaml:"maxAmmo"`
	FireRate   Duration `yaml:"fireRate"`
	MaxBullets int      `yaml:"maxBullets"`

	// Dimensions
	CollisionWidth  float64 `yaml:"collisionWidth"`
	CollisionHeight float64 `yaml:"collisionHeight"`
}

// PlatformConfig contains moving platform configuration values
type PlatformConfig struct {
	Height            float64  `yaml:"height"`
	VerticalSmoothing float64  `yaml:"verticalSmoothing"` // damping on vertical displacement
	EndpointPause     Duration `yaml:"endpointPause"`     // vertical platforms only
	SnapTolerance     float64  `yaml:"snapTolerance"`
	RiseVelocityScale float64  `yaml:"riseVelocityScale"` // rider velocity while the platform rises
}

// EnemyTypeConfig contains configuration for specific enemy types
type EnemyTypeConfig struct {
	Name            string  `yaml:"name"`
	Health          int     `yaml:"health"`
	Gravity         bool    `yaml:"gravity"`
	CollisionWidth  float64 `yaml:"collisionWidth"`
	CollisionHeight float64 `yaml:"collisionHeight"`
	Scale           float64 `yaml:"scale"`
	TintColor       color.RGBA
}

// EnemyVariantConfig is a randomly rolled sub-type of the basic enemy
type EnemyVariantConfig struct {
	Name      string `yaml:"name"`
	Health    int    `yaml:"health"`
	TintColor color.RGBA
}

// EnemyConfig contains enemy system configuration
type EnemyConfig struct {
	Types         map[string]EnemyTypeConfig `yaml:"types"`
	BasicVariants []EnemyVariantConfig       `yaml:"basicVariants"`
	DeathDelay    Duration                   `yaml:"deathDelay"`
}

// RangedConfig contains the ranged (Harkonnen) enemy behavior values
type RangedConfig struct {
	AttackRange    float64  `yaml:"attackRange"`
	AttackCooldown Duration `yaml:"attackCooldown"`
	StanceDuration Duration `yaml:"stanceDuration"`
	StanceNudge    float64  `yaml:"stanceNudge"`
	ShootInterval  Duration `yaml:"shootInterval"`
	PoolSize       int      `yaml:"poolSize"`
}

// FlyingConfig contains the flying (Ornithopter) enemy behavior values
type FlyingConfig struct {
	DetectionRange     float64  `yaml:"detectionRange"`
	PatternHold        Duration `yaml:"patternHold"`
	DiveSpeedScale     float64  `yaml:"diveSpeedScale"`
	DiveAimOffset      float64  `yaml:"diveAimOffset"`
	OrbitRadius        float64  `yaml:"orbitRadius"`
	ErraticSpeedScale  float64  `yaml:"erraticSpeedScale"`
	ErraticLeash       float64  `yaml:"erraticLeash"`
	PatrolAmplitude    float64  `yaml:"patrolAmplitude"`
	PatrolVerticalRate float64  `yaml:"patrolVerticalRate"`
}

// BurrowConfig contains the burrowing (Sandworm) enemy behavior values
type BurrowConfig struct {
	SurfaceDuration  Duration `yaml:"surfaceDuration"`
	BurrowedDuration Duration `yaml:"burrowedDuration"`
	AnimDuration     Duration `yaml:"animDuration"` // tween length of the burrow and emerge animations
	AnimTimeout      Duration `yaml:"animTimeout"`  // transition fires even if the animation never completes
	ParticleCount    int      `yaml:"particleCount"`
}

// ProjectileConfig contains enemy projectile configuration
type ProjectileConfig struct {
	SpeedY float64 `yaml:"speedY"`
	Damage int     `yaml:"damage"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// BulletConfig contains player bullet configuration
type BulletConfig struct {
	Speed    float64  `yaml:"speed"`
	Damage   int      `yaml:"damage"`
	Width    float64  `yaml:"width"`
	Height   float64  `yaml:"height"`
	Lifetime Duration `yaml:"lifetime"`
}

// CombatConfig contains combat-related configuration values
type CombatConfig struct {
	ContactDamage     int `yaml:"contactDamage"`
	StompDamage       int `yaml:"stompDamage"`
	KillScore         int `yaml:"killScore"`
	DestructibleHits  int `yaml:"destructibleHits"`
	DestructibleScore int `yaml:"destructibleScore"`

	// Knockback applied to the player on a damaging hit
	HitKnockback      float64  `yaml:"hitKnockback"`
	KnockbackUpward   float64  `yaml:"knockbackUpward"`
	KnockbackDuration Duration `yaml:"knockbackDuration"`
}

// EffectsConfig contains short-lived visual effect configuration
type EffectsConfig struct {
	ExplosionDuration Duration `yaml:"explosionDuration"`
	ImpactDuration    Duration `yaml:"impactDuration"`
	HitFlashDuration  Duration `yaml:"hitFlashDuration"`
	ParticleDuration  Duration `yaml:"particleDuration"`
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	FollowSmoothing float64 `yaml:"followSmoothing"` // How fast camera follows player (0.0-1.0)
	OffsetY         float64 `yaml:"offsetY"`
}

// Global configuration instances
var C *Config
var Physics PhysicsConfig
var Player PlayerConfig
var Platform PlatformConfig
var Enemy EnemyConfig
var Ranged RangedConfig
var Flying FlyingConfig
var Burrow BurrowConfig
var Projectile ProjectileConfig
var Bullet BulletConfig
var Combat CombatConfig
var Effects EffectsConfig
var Camera CameraConfig

// Shared RGBA color constants
var (
	White     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Sand      = color.RGBA{R: 222, G: 184, B: 135, A: 255}
	Gold      = color.RGBA{R: 255, G: 204, B: 102, A: 255}
	Orange    = color.RGBA{R: 255, G: 170, B: 0, A: 255}
	DeepRed   = color.RGBA{R: 255, G: 68, B: 0, A: 255}
	Red       = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Cyan      = color.RGBA{R: 0, G: 255, B: 255, A: 255}
	Green     = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	LightBlue = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	Purple    = color.RGBA{R: 128, G: 0, B: 255, A: 255}
)

// Direction constants for facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

func init() {
	Reset()
}

// Reset restores every section to its built-in defaults.
func Reset() {
	C = &Config{
		Title:  "Dune Runner",
		Width:  1280,
		Height: 720,
		TPS:    60,
		Level:  "desert",
	}

	Physics = PhysicsConfig{
		Gravity:      800,
		MaxFallSpeed: 900,
		SpaceCell:    16,
		ContactSlop:  0.5,
	}

	Player = PlayerConfig{
		Speed:           160,
		JumpSpeed:       400,
		Health:          5,
		InvulnDuration:  Duration(1000 * time.Millisecond),
		StompBounce:     -300,
		Ammo:            20,
		MaxAmmo:         30,
		FireRate:        Duration(200 * time.Millisecond),
		MaxBullets:      10,
		CollisionWidth:  20,
		CollisionHeight: 40,
	}

	Platform = PlatformConfig{
		Height:            16,
		VerticalSmoothing: 0.8,
		EndpointPause:     Duration(300 * time.Millisecond),
		SnapTolerance:     10,
		RiseVelocityScale: 0.9,
	}

	Enemy = EnemyConfig{
		Types: map[string]EnemyTypeConfig{
			"basic": {
				Name:            "basic",
				Health:          3,
				Gravity:         true,
				CollisionWidth:  28,
				CollisionHeight: 40,
				Scale:           1,
				TintColor:       White,
			},
			"harkonnen": {
				Name:            "harkonnen",
				Health:          3,
				Gravity:         true,
				CollisionWidth:  28,
				CollisionHeight: 40,
				Scale:           1,
				TintColor:       Orange,
			},
			"ornithopter": {
				Name:            "ornithopter",
				Health:          2,
				Gravity:         false,
				CollisionWidth:  40,
				CollisionHeight: 24,
				Scale:           1,
				TintColor:       LightBlue,
			},
			"sandworm": {
				Name:            "sandworm",
				Health:          5,
				Gravity:         true,
				CollisionWidth:  42,
				CollisionHeight: 60,
				Scale:           1.5,
				TintColor:       Sand,
			},
		},
		BasicVariants: []EnemyVariantConfig{
			{Name: "scout", Health: 2, TintColor: Cyan},
			{Name: "guard", Health: 3, TintColor: Red},
			{Name: "elite", Health: 5, TintColor: Orange},
		},
		DeathDelay: Duration(500 * time.Millisecond),
	}

	Ranged = RangedConfig{
		AttackRange:    200,
		AttackCooldown: Duration(2000 * time.Millisecond),
		StanceDuration: Duration(500 * time.Millisecond),
		StanceNudge:    20,
		ShootInterval:  Duration(2000 * time.Millisecond),
		PoolSize:       10,
	}

	Flying = FlyingConfig{
		DetectionRange:     300,
		PatternHold:        Duration(3000 * time.Millisecond),
		DiveSpeedScale:     1.5,
		DiveAimOffset:      50,
		OrbitRadius:        150,
		ErraticSpeedScale:  0.8,
		ErraticLeash:       400,
		PatrolAmplitude:    50,
		PatrolVerticalRate: 2,
	}

	Burrow = BurrowConfig{
		SurfaceDuration:  Duration(5000 * time.Millisecond),
		BurrowedDuration: Duration(3000 * time.Millisecond),
		AnimDuration:     Duration(600 * time.Millisecond),
		AnimTimeout:      Duration(1000 * time.Millisecond),
		ParticleCount:    12,
	}

	Projectile = ProjectileConfig{
		SpeedY: 200,
		Damage: 1,
		Width:  6,
		Height: 10,
	}

	Bullet = BulletConfig{
		Speed:    600,
		Damage:   1,
		Width:    8,
		Height:   4,
		Lifetime: Duration(2 * time.Second),
	}

	Combat = CombatConfig{
		ContactDamage:     1,
		StompDamage:       1,
		KillScore:         100,
		DestructibleHits:  2,
		DestructibleScore: 10,
		HitKnockback:      200,
		KnockbackUpward:   -180,
		KnockbackDuration: Duration(150 * time.Millisecond),
	}

	Effects = EffectsConfig{
		ExplosionDuration: Duration(500 * time.Millisecond),
		ImpactDuration:    Duration(200 * time.Millisecond),
		HitFlashDuration:  Duration(100 * time.Millisecond),
		ParticleDuration:  Duration(800 * time.Millisecond),
	}

	Camera = CameraConfig{
		FollowSmoothing: 0.1,
		OffsetY:         144,
	}
}
