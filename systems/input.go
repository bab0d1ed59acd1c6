package systems

import "github.com/hajimehoshi/ebiten/v2"

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// ActionState is the state of one action for the current frame.
type ActionState struct {
	Pressed      bool
	JustPressed  bool
	JustReleased bool
}

// Input double-buffers the viewer actions.
type Input struct {
	Current  [ActionCount]bool
	Previous [ActionCount]bool
}

// UpdateInput polls keyboard and gamepads into in. Call it once per frame.
func UpdateInput(in *Input) {
	// Swap buffers: current becomes previous, then zero out current
	in.Previous = in.Current
	in.Current = [ActionCount]bool{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for actionID, binding := range Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				in.Current[actionID] = true
			}
		}
		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					in.Current[actionID] = true
				}
			}
		}
	}
}

// Action returns the full ActionState for id.
func (in *Input) Action(id ActionID) ActionState {
	curr := in.Current[id]
	prev := in.Previous[id]
	return ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}
