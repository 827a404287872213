package assets

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"

	"github.com/automoto/dune-runner/shared/leveldata"
)

var (
	//go:embed all:levels
	assetFS embed.FS
)

// ErrUnknownLevel is returned when no embedded TMX file matches a level name.
var ErrUnknownLevel = errors.New("unknown level")

const levelsDir = "levels"

// FS exposes the embedded asset tree.
func FS() fs.FS {
	return assetFS
}

type LevelLoader struct {
	fsys fs.FS
}

// NewLevelLoader reads levels from the embedded assets.
func NewLevelLoader() *LevelLoader {
	return &LevelLoader{fsys: assetFS}
}

// NewLevelLoaderFS reads levels from an arbitrary filesystem, e.g. os.DirFS
// for a level being edited in Tiled.
func NewLevelLoaderFS(fsys fs.FS) *LevelLoader {
	return &LevelLoader{fsys: fsys}
}

// LoadLevel parses levels/<name>.tmx.
func (l *LevelLoader) LoadLevel(name string) (*leveldata.LevelData, error) {
	levelPath := path.Join(levelsDir, name+".tmx")
	if _, err := fs.Stat(l.fsys, levelPath); err != nil {
		return nil, fmt.Errorf("%w %q", ErrUnknownLevel, name)
	}
	return leveldata.LoadLevel(l.fsys, levelPath)
}

// LevelNames lists the available levels, sorted.
func (l *LevelLoader) LevelNames() ([]string, error) {
	_, names, err := leveldata.LoadAllLevels(l.fsys, levelsDir)
	if err != nil {
		return nil, err
	}
	return names, nil
}
