package systems

import (
	"github.com/automoto/doomerang-arena/components"
	"github.com/automoto/doomerang-arena/sim"
)

// UpdateManualPilot writes the player's input into the pilot of the manually
// flown ship. It does nothing when no ship is under manual control.
func UpdateManualPilot(arena *sim.Arena, in *Input) {
	arena.Lock()
	defer arena.Unlock()

	if arena.Manual == 0 {
		return
	}
	ship := arena.ShipByOwner(arena.Manual)
	if ship == nil {
		return
	}

	pilot := components.Pilot.Get(ship)
	pilot.Turn = 0
	if in.Action(ActionTurnLeft).Pressed {
		pilot.Turn--
	}
	if in.Action(ActionTurnRight).Pressed {
		pilot.Turn++
	}
	pilot.Thrust = in.Action(ActionThrust).Pressed
	pilot.Fire = in.Action(ActionFire).Pressed
}
