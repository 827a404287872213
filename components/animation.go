package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// AnimationData plays named tween clips. The debug renderer reads Value
// (for example the reveal fraction of a burrowing worm); state machines read
// Completed as an early completion signal and never wait on it.
type AnimationData struct {
	Clips     map[string]*gween.Tween
	Current   string
	Value     float32
	Completed string // clip that finished during the last update, "" otherwise
	finished  bool
}

// SetAnimation restarts the named clip. Unknown names clear the current clip.
func (a *AnimationData) SetAnimation(name string) {
	a.Completed = ""
	a.finished = false
	clip, ok := a.Clips[name]
	if !ok {
		a.Current = ""
		return
	}
	clip.Reset()
	a.Current = name
}

// Has reports whether a clip with the given name exists.
func (a *AnimationData) Has(name string) bool {
	_, ok := a.Clips[name]
	return ok
}

// Update advances the current clip by dt seconds.
func (a *AnimationData) Update(dt float32) {
	a.Completed = ""
	if a.Current == "" || a.finished {
		return
	}
	clip := a.Clips[a.Current]
	value, done := clip.Update(dt)
	a.Value = value
	if done {
		a.finished = true
		a.Completed = a.Current
	}
}

// ConsumeCompleted returns true once if the named clip just finished.
func (a *AnimationData) ConsumeCompleted(name string) bool {
	if a.Completed != name {
		return false
	}
	a.Completed = ""
	return true
}

var Animation = donburi.NewComponentType[AnimationData]()
