package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

type ShipData struct {
	Owner  int
	Kills  int
	Deaths int

	// Down is set while the ship waits to respawn.
	Down      bool
	RespawnAt float64
	Spawn     mgl64.Vec2
}

type GunData struct {
	Cooldown float64
	ReadyAt  float64
	Fired    int
}

// PilotData is the steering intent for a ship, written by the pilot system
// and consumed by ship handling.
type PilotData struct {
	Thrust bool
	Turn   float64 // -1..1
	Fire   bool

	Target    donburi.Entity
	HasTarget bool
	ReplanAt  float64
}

var Ship = donburi.NewComponentType[ShipData]()
var Gun = donburi.NewComponentType[GunData]()
var Pilot = donburi.NewComponentType[PilotData]()
