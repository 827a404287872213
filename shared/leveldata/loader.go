package leveldata

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// ErrNoSpawn is returned when a level has no PlayerSpawn object.
var ErrNoSpawn = errors.New("level has no player spawn")

// Object group names read from the TMX file.
const (
	GroupSolids          = "Solids"
	GroupMovingPlatforms = "MovingPlatforms"
	GroupEnemies         = "Enemies"
	GroupDestructibles   = "Destructibles"
	GroupPlayerSpawn     = "PlayerSpawn"
	GroupExit            = "Exit"
)

// LoadLevel parses a TMX file into a LevelData. It takes an fs.FS so callers
// can pass embed.FS or os.DirFS.
func LoadLevel(fsys fs.FS, tmxPath string) (*LevelData, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	data := &LevelData{
		Name:      strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		MapWidth:  levelMap.Width * levelMap.TileWidth,
		MapHeight: levelMap.Height * levelMap.TileHeight,
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case GroupSolids:
			for _, o := range og.Objects {
				data.Solids = append(data.Solids, SolidRect{Rect: rectOf(o), Name: o.Name})
			}
		case GroupMovingPlatforms:
			for _, o := range og.Objects {
				data.MovingPlatforms = append(data.MovingPlatforms, parsePlatform(o))
			}
		case GroupEnemies:
			for _, o := range og.Objects {
				data.Enemies = append(data.Enemies, parseEnemy(o))
			}
		case GroupDestructibles:
			for _, o := range og.Objects {
				data.Destructibles = append(data.Destructibles, DestructibleSpawn{
					Rect:   rectOf(o),
					Health: o.Properties.GetInt("health"),
				})
			}
		case GroupPlayerSpawn:
			for _, o := range og.Objects {
				data.SpawnPoints = append(data.SpawnPoints, SpawnPoint{
					X:     o.X,
					Y:     o.Y,
					Index: o.Properties.GetInt("spawnIndex"),
				})
			}
		case GroupExit:
			for _, o := range og.Objects {
				data.Exits = append(data.Exits, rectOf(o))
			}
		}
	}

	if len(data.SpawnPoints) == 0 {
		return nil, fmt.Errorf("%s: %w", tmxPath, ErrNoSpawn)
	}

	// Sort spawns by index for consistent assignment
	sort.Slice(data.SpawnPoints, func(i, j int) bool {
		return data.SpawnPoints[i].Index < data.SpawnPoints[j].Index
	})

	return data, nil
}

func rectOf(o *tiled.Object) Rect {
	return Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height}
}

func parsePlatform(o *tiled.Object) MovingPlatformSpawn {
	kind := o.Properties.GetString("kind")
	if kind == "" {
		kind = "plain"
	}
	return MovingPlatformSpawn{
		Rect:               rectOf(o),
		Kind:               kind,
		Distance:           o.Properties.GetFloat("distance"),
		Speed:              o.Properties.GetFloat("speed"),
		Vertical:           o.Properties.GetBool("vertical"),
		HorizontalDistance: o.Properties.GetFloat("horizontalDistance"),
		HorizontalSpeed:    o.Properties.GetFloat("horizontalSpeed"),
	}
}

func parseEnemy(o *tiled.Object) EnemySpawn {
	kind := o.Properties.GetString("enemy")
	if kind == "" {
		kind = "basic"
	}
	return EnemySpawn{
		X:      o.X,
		Y:      o.Y,
		Kind:   kind,
		Patrol: o.Properties.GetFloat("patrol"),
		Speed:  o.Properties.GetFloat("speed"),
	}
}

// LoadAllLevels discovers all .tmx files in levelsDir within fsys, loads each,
// and returns a map keyed by stem name plus a sorted list of names.
func LoadAllLevels(fsys fs.FS, levelsDir string) (map[string]*LevelData, []string, error) {
	pattern := levelsDir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}

	levels := make(map[string]*LevelData, len(matches))
	names := make([]string, 0, len(matches))

	for _, path := range matches {
		data, err := LoadLevel(fsys, path)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		levels[data.Name] = data
		names = append(names, data.Name)
	}

	sort.Strings(names)
	return levels, names, nil
}
