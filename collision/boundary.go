package collision

import (
	"github.com/automoto/doomerang-arena/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
)

// Boundary is the world rectangle [0,Width]x[0,Height] plus an outer margin.
// Restricted bodies stay inside the inner rectangle; anything else that ends
// up fully outside the outer rectangle is removed.
type Boundary struct {
	Width  float64
	Height float64
	Margin float64
}

// Inner returns the world rectangle.
func (b Boundary) Inner() gamemath.AABB {
	return gamemath.NewAABB(0, 0, b.Width, b.Height)
}

// Outer returns the world rectangle grown by the margin.
func (b Boundary) Outer() gamemath.AABB {
	return b.Inner().Expand(b.Margin)
}

// Inside reports whether box lies entirely within the inner rectangle.
func (b Boundary) Inside(box gamemath.AABB) bool {
	return box.Min[0] >= 0 && box.Min[1] >= 0 && box.Max[0] <= b.Width && box.Max[1] <= b.Height
}

// Beyond reports whether box is entirely outside the outer rectangle.
func (b Boundary) Beyond(box gamemath.AABB) bool {
	return !b.Outer().Overlaps(box)
}

// clampOffset returns the shift that brings box back inside the inner
// rectangle, and the outward normals of the sides it was pushed from.
func (b Boundary) clampOffset(box gamemath.AABB) (shift mgl64.Vec2, hitX, hitY float64) {
	switch {
	case box.Min[0] < 0:
		shift[0], hitX = -box.Min[0], -1
	case box.Max[0] > b.Width:
		shift[0], hitX = b.Width-box.Max[0], 1
	}
	switch {
	case box.Min[1] < 0:
		shift[1], hitY = -box.Min[1], -1
	case box.Max[1] > b.Height:
		shift[1], hitY = b.Height-box.Max[1], 1
	}
	return shift, hitX, hitY
}

// boundaryVelocity removes the velocity components that point out through the
// sides box touches.
func (b Boundary) boundaryVelocity(box gamemath.AABB, v mgl64.Vec2) mgl64.Vec2 {
	const touch = 1e-9
	if (box.Min[0] <= touch && v[0] < 0) || (box.Max[0] >= b.Width-touch && v[0] > 0) {
		v[0] = 0
	}
	if (box.Min[1] <= touch && v[1] < 0) || (box.Max[1] >= b.Height-touch && v[1] > 0) {
		v[1] = 0
	}
	return v
}

// bodyBounds is the union of every area's bounds.
func bodyBounds(body *Body) (gamemath.AABB, bool) {
	if len(body.areas) == 0 {
		return gamemath.AABB{}, false
	}
	box := body.areas[0].Bounds()
	for _, a := range body.areas[1:] {
		box = box.Union(a.Bounds())
	}
	return box, true
}

// restrictedBounds is the box that must stay inside the world for a
// restricted body: the primary area if there is one, else every area.
func restrictedBounds(body *Body) (gamemath.AABB, bool) {
	if p := body.PrimaryArea(); p != nil {
		return p.Bounds(), true
	}
	return bodyBounds(body)
}

// EnforceBoundary keeps restricted bodies inside the world and removes
// unrestricted ones that have left the outer rectangle. It reports whether the
// body was removed.
func (e *Engine) EnforceBoundary(body *Body) bool {
	if body.dead {
		return false
	}
	if body.Restricted {
		box, ok := restrictedBounds(body)
		if !ok {
			return false
		}
		shift, hitX, hitY := e.cfg.Boundary.clampOffset(box)
		if shift != (mgl64.Vec2{}) {
			e.Relocate(body, body.pos.Add(shift))
		}
		v := body.vel
		if v[0]*hitX > 0 {
			v[0] = 0
		}
		if v[1]*hitY > 0 {
			v[1] = 0
		}
		body.vel = v
		return false
	}

	box, ok := bodyBounds(body)
	if !ok || !e.cfg.Boundary.Beyond(box) {
		return false
	}
	e.Unregister(body)
	body.dead = true
	e.hooks.Remove(body)
	return true
}
