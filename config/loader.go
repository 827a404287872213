package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// file mirrors the YAML layout. Every section points at the live global, so
// keys missing from the file keep their current value.
type file struct {
	Game       *Config           `yaml:"game"`
	Physics    *PhysicsConfig    `yaml:"physics"`
	Player     *PlayerConfig     `yaml:"player"`
	Platform   *PlatformConfig   `yaml:"platform"`
	Enemy      *EnemyConfig      `yaml:"enemy"`
	Ranged     *RangedConfig     `yaml:"ranged"`
	Flying     *FlyingConfig     `yaml:"flying"`
	Burrow     *BurrowConfig     `yaml:"burrow"`
	Projectile *ProjectileConfig `yaml:"projectile"`
	Bullet     *BulletConfig     `yaml:"bullet"`
	Combat     *CombatConfig     `yaml:"combat"`
	Effects    *EffectsConfig    `yaml:"effects"`
	Camera     *CameraConfig     `yaml:"camera"`
}

func live() *file {
	return &file{
		Game:       C,
		Physics:    &Physics,
		Player:     &Player,
		Platform:   &Platform,
		Enemy:      &Enemy,
		Ranged:     &Ranged,
		Flying:     &Flying,
		Burrow:     &Burrow,
		Projectile: &Projectile,
		Bullet:     &Bullet,
		Combat:     &Combat,
		Effects:    &Effects,
		Camera:     &Camera,
	}
}

// Load overlays a YAML file onto the defaults.
// Search order: customPath -> ~/.dune-runner/config.yaml -> ./configs/dune-runner.yaml.
// It returns the path that was applied, or "" when only defaults are in use.
func Load(customPath string) (string, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return "", fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := Apply(data); err != nil {
			return "", fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return customPath, nil
	}

	for _, path := range []string{userConfigPath("config.yaml"), filepath.Join("configs", "dune-runner.yaml")} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if err := Apply(data); err != nil {
			return "", fmt.Errorf("failed to parse config %s: %w", path, err)
		}
		return path, nil
	}

	return "", nil
}

// Apply overlays raw YAML onto the current configuration.
func Apply(data []byte) error {
	return yaml.Unmarshal(data, live())
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".dune-runner", filename)
}

// UnmarshalYAML accepts Go duration strings ("300ms") or bare integers as milliseconds.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var ms int64
	if err := value.Decode(&ms); err == nil {
		*d = Duration(time.Duration(ms) * time.Millisecond)
		return nil
	}

	var s string
	if err := value.Decode(&s); err != nil {
		return fmt.Errorf("duration: %w", err)
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// MarshalYAML writes the duration in its string form.
func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}
