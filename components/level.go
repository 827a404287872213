package components

import (
	"github.com/automoto/dune-runner/shared/leveldata"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	CurrentLevel *leveldata.LevelData
	Width        float64
	Height       float64
	Completed    bool
	Failed       bool
}

var Level = donburi.NewComponentType[LevelData]()
