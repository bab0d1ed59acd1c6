package systems

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a viewer action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionTurnLeft
	ActionTurnRight
	ActionThrust
	ActionFire
	ActionTakeControl
	ActionPause
	ActionStep
	ActionToggleCells
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents the keys and buttons bound to an action
type InputBinding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// Bindings maps every viewer action to its keys and buttons
var Bindings map[ActionID]InputBinding

func init() {
	Bindings = map[ActionID]InputBinding{
		ActionTurnLeft: {
			Keys: []ebiten.Key{ebiten.KeyLeft, ebiten.KeyA},
			StandardGamepadButtons: []ebiten.StandardGamepadButton{
				ebiten.StandardGamepadButtonLeftLeft,
			},
		},
		ActionTurnRight: {
			Keys: []ebiten.Key{ebiten.KeyRight, ebiten.KeyD},
			StandardGamepadButtons: []ebiten.StandardGamepadButton{
				ebiten.StandardGamepadButtonLeftRight,
			},
		},
		ActionThrust: {
			Keys: []ebiten.Key{ebiten.KeyUp, ebiten.KeyW},
			// A / Cross button
			StandardGamepadButtons: []ebiten.StandardGamepadButton{
				ebiten.StandardGamepadButtonRightBottom,
			},
		},
		ActionFire: {
			Keys: []ebiten.Key{ebiten.KeySpace},
			// X / Square button
			StandardGamepadButtons: []ebiten.StandardGamepadButton{
				ebiten.StandardGamepadButtonRightLeft,
			},
		},
		ActionTakeControl: {
			Keys: []ebiten.Key{ebiten.KeyC},
		},
		ActionPause: {
			Keys: []ebiten.Key{ebiten.KeyEscape, ebiten.KeyP},
			// Start / Options button
			StandardGamepadButtons: []ebiten.StandardGamepadButton{
				ebiten.StandardGamepadButtonCenterRight,
			},
		},
		ActionStep: {
			Keys: []ebiten.Key{ebiten.KeyN},
		},
		ActionToggleCells: {
			Keys: []ebiten.Key{ebiten.KeyG},
		},
	}
}
