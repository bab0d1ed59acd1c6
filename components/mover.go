package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// MoverData slides a wall between Origin and Origin+Offset. Tween runs the
// progress of the current leg from 0 to 1.
type MoverData struct {
	Origin  mgl64.Vec2
	Offset  mgl64.Vec2
	Tween   *gween.Tween
	Reverse bool
}

var Mover = donburi.NewComponentType[MoverData]()
