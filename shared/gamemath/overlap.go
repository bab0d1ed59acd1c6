package gamemath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Contact describes how two shapes intersect.
type Contact struct {
	// Normal is a unit vector pointing from the first shape toward the second.
	Normal mgl64.Vec2
	// Depth is the smallest separating distance found along Normal.
	Depth float64
}

// Overlap runs a separating axis test between a and b. Shapes that only touch
// do not overlap. Full containment counts as overlap.
func Overlap(a, b Shape) (Contact, bool) {
	switch sa := a.(type) {
	case *Circle:
		switch sb := b.(type) {
		case *Circle:
			return circleCircle(sa, sb)
		case *Polygon:
			c, ok := polygonCircle(sb, sa)
			c.Normal = c.Normal.Mul(-1)
			return c, ok
		}
	case *Polygon:
		switch sb := b.(type) {
		case *Circle:
			return polygonCircle(sa, sb)
		case *Polygon:
			return polygonPolygon(sa, sb)
		}
	}
	return Contact{}, false
}

// Intersects is Overlap without the contact details.
func Intersects(a, b Shape) bool {
	_, ok := Overlap(a, b)
	return ok
}

func circleCircle(a, b *Circle) (Contact, bool) {
	d := b.Center.Sub(a.Center)
	r := a.Radius + b.Radius
	distSq := d.LenSqr()
	if distSq >= r*r {
		return Contact{}, false
	}
	dist := math.Sqrt(distSq)
	n, ok := SafeNormalize(d)
	if !ok {
		// Coincident centres have no defined normal.
		n = mgl64.Vec2{1, 0}
	}
	return Contact{Normal: n, Depth: r - dist}, true
}

func polygonPolygon(a, b *Polygon) (Contact, bool) {
	best := Contact{Depth: math.Inf(1)}
	for _, p := range [2]*Polygon{a, b} {
		for i := range p.Points {
			axis, ok := p.edgeNormal(i)
			if !ok {
				continue
			}
			if !testAxis(a, b, axis, &best) {
				return Contact{}, false
			}
		}
	}
	return orient(best, a, b), !math.IsInf(best.Depth, 1)
}

func polygonCircle(p *Polygon, c *Circle) (Contact, bool) {
	if len(p.Points) == 0 {
		return Contact{}, false
	}
	best := Contact{Depth: math.Inf(1)}
	for i := range p.Points {
		axis, ok := p.edgeNormal(i)
		if !ok {
			continue
		}
		if !testAxis(p, c, axis, &best) {
			return Contact{}, false
		}
	}

	closest := p.Points[0]
	closestDist := closest.Sub(c.Center).LenSqr()
	for _, pt := range p.Points[1:] {
		if d := pt.Sub(c.Center).LenSqr(); d < closestDist {
			closest, closestDist = pt, d
		}
	}
	if axis, ok := SafeNormalize(c.Center.Sub(closest)); ok {
		if !testAxis(p, c, axis, &best) {
			return Contact{}, false
		}
	}
	return orient(best, p, c), true
}

func testAxis(a, b Shape, axis mgl64.Vec2, best *Contact) bool {
	minA, maxA := a.project(axis)
	minB, maxB := b.project(axis)
	overlap := math.Min(maxA, maxB) - math.Max(minA, minB)
	if overlap <= 0 {
		return false
	}
	if overlap < best.Depth {
		best.Depth = overlap
		best.Normal = axis
	}
	return true
}

// orient flips the contact normal so it points from a toward b.
func orient(c Contact, a, b Shape) Contact {
	if b.Centroid().Sub(a.Centroid()).Dot(c.Normal) < 0 {
		c.Normal = c.Normal.Mul(-1)
	}
	return c
}
