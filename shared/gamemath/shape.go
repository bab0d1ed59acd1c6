package gamemath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Shape is a convex primitive used for exact overlap tests.
type Shape interface {
	Bounds() AABB
	Centroid() mgl64.Vec2
	// Transform returns the shape rotated by rot and moved to pos. When dst has
	// the same concrete type its storage is reused.
	Transform(pos mgl64.Vec2, rot float64, dst Shape) Shape
	project(axis mgl64.Vec2) (float64, float64)
}

// Circle is a disc around Center.
type Circle struct {
	Center mgl64.Vec2
	Radius float64
}

// NewCircle returns a circle of radius r centred on the origin.
func NewCircle(r float64) *Circle {
	return &Circle{Radius: r}
}

func (c *Circle) Bounds() AABB {
	return NewAABB(c.Center[0]-c.Radius, c.Center[1]-c.Radius, c.Center[0]+c.Radius, c.Center[1]+c.Radius)
}

func (c *Circle) Centroid() mgl64.Vec2 { return c.Center }

func (c *Circle) Transform(pos mgl64.Vec2, rot float64, dst Shape) Shape {
	out, ok := dst.(*Circle)
	if !ok || out == nil {
		out = &Circle{}
	}
	out.Center = Rotate(c.Center, rot).Add(pos)
	out.Radius = c.Radius
	return out
}

func (c *Circle) project(axis mgl64.Vec2) (float64, float64) {
	d := c.Center.Dot(axis)
	return d - c.Radius, d + c.Radius
}

// Polygon is a convex polygon. Winding order does not matter.
type Polygon struct {
	Points []mgl64.Vec2
}

// NewPolygon builds a polygon from x, y coordinate pairs.
func NewPolygon(coords ...float64) *Polygon {
	p := &Polygon{Points: make([]mgl64.Vec2, 0, len(coords)/2)}
	for i := 0; i+1 < len(coords); i += 2 {
		p.Points = append(p.Points, mgl64.Vec2{coords[i], coords[i+1]})
	}
	return p
}

// NewRect returns a w by h rectangle centred on the origin.
func NewRect(w, h float64) *Polygon {
	hw, hh := w/2, h/2
	return NewPolygon(-hw, -hh, hw, -hh, hw, hh, -hw, hh)
}

// NewBox returns a rectangle spanning the given corners.
func NewBox(minX, minY, maxX, maxY float64) *Polygon {
	return NewPolygon(minX, minY, maxX, minY, maxX, maxY, minX, maxY)
}

// NewRegularPolygon returns an n-sided polygon inscribed in a circle of radius r.
func NewRegularPolygon(n int, r float64) *Polygon {
	if n < 3 {
		n = 3
	}
	p := &Polygon{Points: make([]mgl64.Vec2, n)}
	for i := range p.Points {
		a := 2 * math.Pi * float64(i) / float64(n)
		p.Points[i] = mgl64.Vec2{math.Cos(a) * r, math.Sin(a) * r}
	}
	return p
}

func (p *Polygon) Bounds() AABB {
	if len(p.Points) == 0 {
		return AABB{}
	}
	b := AABB{Min: p.Points[0], Max: p.Points[0]}
	for _, pt := range p.Points[1:] {
		b.Min[0] = min(b.Min[0], pt[0])
		b.Min[1] = min(b.Min[1], pt[1])
		b.Max[0] = max(b.Max[0], pt[0])
		b.Max[1] = max(b.Max[1], pt[1])
	}
	return b
}

func (p *Polygon) Centroid() mgl64.Vec2 {
	var c mgl64.Vec2
	if len(p.Points) == 0 {
		return c
	}
	for _, pt := range p.Points {
		c = c.Add(pt)
	}
	return c.Mul(1 / float64(len(p.Points)))
}

func (p *Polygon) Transform(pos mgl64.Vec2, rot float64, dst Shape) Shape {
	out, ok := dst.(*Polygon)
	if !ok || out == nil {
		out = &Polygon{}
	}
	out.Points = out.Points[:0]
	if rot == 0 {
		for _, pt := range p.Points {
			out.Points = append(out.Points, pt.Add(pos))
		}
		return out
	}
	m := mgl64.Rotate2D(rot)
	for _, pt := range p.Points {
		out.Points = append(out.Points, m.Mul2x1(pt).Add(pos))
	}
	return out
}

func (p *Polygon) project(axis mgl64.Vec2) (float64, float64) {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, pt := range p.Points {
		d := pt.Dot(axis)
		lo = min(lo, d)
		hi = max(hi, d)
	}
	return lo, hi
}

// edgeNormal returns the unit normal of edge i.
func (p *Polygon) edgeNormal(i int) (mgl64.Vec2, bool) {
	a := p.Points[i]
	b := p.Points[(i+1)%len(p.Points)]
	return SafeNormalize(Perp(b.Sub(a)))
}
