package components

import "github.com/yohamta/donburi"

type PickupData struct {
	Heal      float64
	Taken     bool
	RespawnAt float64
}

var Pickup = donburi.NewComponentType[PickupData]()
