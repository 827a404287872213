package components

import (
	cfg "github.com/automoto/dune-runner/config"
	"github.com/yohamta/donburi"
)

// InputData stores the current and previous frame's pressed state for all actions.
// It is written by the keyboard system in play mode and by the autopilot in sim mode.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
}

// Set records the pressed state for this frame.
func (i *InputData) Set(action cfg.ActionID, pressed bool) {
	i.Current[action] = pressed
}

// Advance moves the current frame into history.
func (i *InputData) Advance() {
	i.Previous = i.Current
	i.Current = [cfg.ActionCount]bool{}
}

func (i *InputData) Pressed(action cfg.ActionID) bool {
	return i.Current[action]
}

func (i *InputData) JustPressed(action cfg.ActionID) bool {
	return i.Current[action] && !i.Previous[action]
}

var Input = donburi.NewComponentType[InputData]()
