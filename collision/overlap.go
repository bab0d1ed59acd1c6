package collision

import "github.com/automoto/doomerang-arena/shared/gamemath"

// Visitor receives each accepted overlapper. Returning Stop ends the scan.
type Visitor func(other *Area) Signal

// ForEachOverlapper scans every grid whose type is in mask for areas that
// intersect ref. Candidates on the same body, on disabled or killed bodies,
// or covered by the cold exemption are skipped. A nil visitor stops at the first hit. It
// reports whether anything was found.
//
// The visitor must not register or unregister areas.
func (e *Engine) ForEachOverlapper(ref *Area, mask TypeMask, visit Visitor) bool {
	if mask == 0 {
		return false
	}
	refBody := ref.body
	refGeom := ref.Geometry()
	box := ref.Bounds()
	found := false

	accept := func(other *Area) Signal {
		if !gamemath.Intersects(refGeom, other.Geometry()) {
			return Continue
		}
		ob := other.body
		if ob == refBody && ob != nil {
			return Continue
		}
		if ob != nil && (ob.Disabled() || ob.dead) {
			return Continue
		}
		if e.coldExempt(refBody, ob) {
			return Continue
		}
		found = true
		if visit == nil {
			return Stop
		}
		return visit(other)
	}

	for _, g := range e.index.grids {
		if !mask.Has(g.typ) {
			continue
		}
		if e.index.scan(g, box, accept) == Stop {
			break
		}
	}
	return found
}

// coldExempt reports whether two bodies ignore each other because they share
// an owner and one of them is still cold.
func (e *Engine) coldExempt(a, b *Body) bool {
	if a == nil || b == nil || a.Owner == 0 || a.Owner != b.Owner {
		return false
	}
	return a.coldAt(e.now) || b.coldAt(e.now)
}

// collectOverlappers returns every overlapper of ref in mask, skipping those in
// ignore.
func (e *Engine) collectOverlappers(ref *Area, mask TypeMask, ignore map[*Area]bool, dst []*Area) []*Area {
	dst = dst[:0]
	e.ForEachOverlapper(ref, mask, func(other *Area) Signal {
		if !ignore[other] {
			dst = append(dst, other)
		}
		return Continue
	})
	return dst
}

// overlapsAny reports whether ref overlaps anything in mask outside ignore.
func (e *Engine) overlapsAny(ref *Area, mask TypeMask, ignore map[*Area]bool) bool {
	hit := false
	e.ForEachOverlapper(ref, mask, func(other *Area) Signal {
		if ignore[other] {
			return Continue
		}
		hit = true
		return Stop
	})
	return hit
}
