package components

import "github.com/yohamta/donburi"

// DamageEventData is queued on the player and resolved once by UpdateCombat.
type DamageEventData struct {
	Amount     int
	KnockbackX float64
	KnockbackY float64
}

var DamageEvent = donburi.NewComponentType[DamageEventData]()
