package components

import "github.com/yohamta/donburi"

// DamageEventData accumulates the damage an entity took during a step. It is
// removed once applied.
type DamageEventData struct {
	Amount      float64
	SourceOwner int // owner of the last attacker, 0 for the environment
}

var DamageEvent = donburi.NewComponentType[DamageEventData]()
