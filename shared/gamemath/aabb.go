package gamemath

import "github.com/go-gl/mathgl/mgl64"

// AABB is an axis-aligned bounding box.
type AABB struct {
	Min, Max mgl64.Vec2
}

// NewAABB builds a box from its corner coordinates.
func NewAABB(minX, minY, maxX, maxY float64) AABB {
	return AABB{Min: mgl64.Vec2{minX, minY}, Max: mgl64.Vec2{maxX, maxY}}
}

// Overlaps reports whether the boxes share any point, edges included.
func (b AABB) Overlaps(o AABB) bool {
	return b.Min[0] <= o.Max[0] && o.Min[0] <= b.Max[0] &&
		b.Min[1] <= o.Max[1] && o.Min[1] <= b.Max[1]
}

// Contains reports whether p lies inside the box, edges included.
func (b AABB) Contains(p mgl64.Vec2) bool {
	return p[0] >= b.Min[0] && p[0] <= b.Max[0] && p[1] >= b.Min[1] && p[1] <= b.Max[1]
}

// Expand grows the box by margin on every side.
func (b AABB) Expand(margin float64) AABB {
	return AABB{
		Min: mgl64.Vec2{b.Min[0] - margin, b.Min[1] - margin},
		Max: mgl64.Vec2{b.Max[0] + margin, b.Max[1] + margin},
	}
}

// Union returns the smallest box containing both boxes.
func (b AABB) Union(o AABB) AABB {
	return AABB{
		Min: mgl64.Vec2{min(b.Min[0], o.Min[0]), min(b.Min[1], o.Min[1])},
		Max: mgl64.Vec2{max(b.Max[0], o.Max[0]), max(b.Max[1], o.Max[1])},
	}
}

func (b AABB) Width() float64  { return b.Max[0] - b.Min[0] }
func (b AABB) Height() float64 { return b.Max[1] - b.Min[1] }

// Center returns the midpoint of the box.
func (b AABB) Center() mgl64.Vec2 {
	return mgl64.Vec2{(b.Min[0] + b.Max[0]) / 2, (b.Min[1] + b.Max[1]) / 2}
}

// IsEmpty reports whether the box has no area.
func (b AABB) IsEmpty() bool {
	return b.Width() <= 0 || b.Height() <= 0
}
