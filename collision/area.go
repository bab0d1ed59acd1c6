package collision

import (
	"github.com/automoto/doomerang-arena/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
)

// Area is one typed shape attached to a body.
type Area struct {
	Type            AreaType
	CollidesAgainst TypeMask
	CannotOverlap   TypeMask
	Material        MaterialID
	// Force is the acceleration a force area applies to overlappers. Positive
	// pushes away from the area centre.
	Force float64

	shape  gamemath.Shape
	body   *Body
	world  gamemath.Shape
	bounds gamemath.AABB
	dirty  bool
	handle *Handle
}

// NewArea returns an area of type t using shape in body-local coordinates.
func NewArea(t AreaType, shape gamemath.Shape, material MaterialID) *Area {
	return &Area{Type: t, shape: shape, Material: material, dirty: true}
}

// Body returns the owning body.
func (a *Area) Body() *Body { return a.body }

// Shape returns the body-local geometry.
func (a *Area) Shape() gamemath.Shape { return a.shape }

// Geometry returns the world-space shape, refreshed if the body moved.
func (a *Area) Geometry() gamemath.Shape {
	a.refresh()
	return a.world
}

// Bounds returns the world-space bounding box, refreshed if the body moved.
func (a *Area) Bounds() gamemath.AABB {
	a.refresh()
	return a.bounds
}

// Registered reports whether the area currently sits in the index.
func (a *Area) Registered() bool { return a.handle != nil }

func (a *Area) refresh() {
	if !a.dirty {
		return
	}
	if a.body == nil {
		a.world = a.shape.Transform(mgl64.Vec2{}, 0, a.world)
	} else {
		a.world = a.shape.Transform(a.body.pos, a.body.rot, a.world)
	}
	a.bounds = a.world.Bounds()
	a.dirty = false
}
