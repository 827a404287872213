package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

type Side int

const (
	SideUp Side = iota
	SideDown
	SideLeft
	SideRight
)

func (s Side) String() string {
	switch s {
	case SideUp:
		return "up"
	case SideDown:
		return "down"
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	}
	return "none"
}

// Opposite returns the side facing s.
func (s Side) Opposite() Side {
	switch s {
	case SideUp:
		return SideDown
	case SideDown:
		return SideUp
	case SideLeft:
		return SideRight
	default:
		return SideLeft
	}
}

// SideFlags is indexed by Side.
type SideFlags [4]bool

func (f SideFlags) Up() bool    { return f[SideUp] }
func (f SideFlags) Down() bool  { return f[SideDown] }
func (f SideFlags) Left() bool  { return f[SideLeft] }
func (f SideFlags) Right() bool { return f[SideRight] }

func (f SideFlags) Any() bool {
	return f[SideUp] || f[SideDown] || f[SideLeft] || f[SideRight]
}

// Touch records one non-static body in contact this frame.
type Touch struct {
	Object *resolv.Object
	Side   Side // side of the owner the contact is on
}

// ContactData is recomputed every frame by the broad phase.
type ContactData struct {
	// Touching is set for contacts with other non-static bodies.
	Touching SideFlags
	// Blocked is set for contacts with static geometry or the world bounds.
	Blocked SideFlags
	Touches []Touch
}

// Reset clears the previous frame's contacts.
func (c *ContactData) Reset() {
	c.Touching = SideFlags{}
	c.Blocked = SideFlags{}
	c.Touches = c.Touches[:0]
}

// Add records a contact with another body on the given side.
func (c *ContactData) Add(other *resolv.Object, side Side) {
	c.Touching[side] = true
	for _, t := range c.Touches {
		if t.Object == other && t.Side == side {
			return
		}
	}
	c.Touches = append(c.Touches, Touch{Object: other, Side: side})
}

// TouchingObject reports whether other was in contact on the given side.
func (c *ContactData) TouchingObject(other *resolv.Object, side Side) bool {
	for _, t := range c.Touches {
		if t.Object == other && t.Side == side {
			return true
		}
	}
	return false
}

var Contact = donburi.NewComponentType[ContactData]()
