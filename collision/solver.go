package collision

import (
	"math"

	"github.com/automoto/doomerang-arena/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
)

// MoveBody advances b by dt without letting its primary area pass through
// anything in the area's CannotOverlap mask. Travel is split into chunks no
// longer than MaxChunkLength; each blocked chunk is bisected down to
// TimeAccuracy, the contact is resolved and movement continues with the new
// velocity. Thin obstacles are only caught reliably when MaxChunkLength does
// not exceed the extent of the moving area.
//
// With sideEffects off, contacts still change velocity but no hooks run.
func (e *Engine) MoveBody(b *Body, dt float64, sideEffects bool) {
	if !b.Movable || b.Disabled() || b.dead || !b.registered || dt <= 0 {
		return
	}
	mine := b.PrimaryArea()
	if mine == nil {
		e.Relocate(b, b.pos.Add(b.vel.Mul(dt)))
		e.EnforceBoundary(b)
		return
	}

	prev := e.sideEffects
	e.sideEffects = sideEffects
	defer func() { e.sideEffects = prev }()

	e.index.Remove(mine.handle)

	// Whatever the body already overlaps is ignored for the rest of the frame
	// so it can move out.
	ignore := make(map[*Area]bool)
	stuck := e.collectOverlappers(mine, mine.CannotOverlap, nil, nil)
	for _, other := range stuck {
		ignore[other] = true
	}
	if sideEffects {
		for _, other := range stuck {
			e.hooks.Collide(mine, other, true)
			e.resolve(mine, other)
			if b.dead || !b.registered {
				return
			}
		}
	}

	b.vel = gamemath.ClampSpeed(b.vel, e.cfg.MaxSpeed)
	remaining := dt
	for try := 0; try < e.cfg.MaxMoveTries && remaining > 0; try++ {
		v := b.vel
		chunks := max(1, int(math.Ceil(v.Len()*remaining/e.cfg.MaxChunkLength)))
		chunkDt := remaining / float64(chunks)

		blocked := false
		for i := 0; i < chunks; i++ {
			tGood, hit := e.tryMove(b, mine, v, chunkDt, ignore)
			remaining -= tGood * chunkDt
			if hit {
				blocked = true
				break
			}
		}
		if b.dead || !b.registered {
			return
		}
		if !blocked || b.vel == v {
			break
		}
	}

	if _, err := e.index.Insert(mine); err != nil {
		return
	}
	e.reindex(b, mine)
	e.EnforceBoundary(b)
}

// tryMove moves b along v for one chunk. When the chunk end is illegal it
// bisects for the last legal time, resolves the contacts found just past it
// and leaves the body at the legal time. It returns the fraction of the chunk
// travelled and whether the chunk was blocked.
func (e *Engine) tryMove(b *Body, mine *Area, v mgl64.Vec2, chunkDt float64, ignore map[*Area]bool) (float64, bool) {
	start := b.pos
	probe := func(t float64) bool {
		b.SetPosition(start.Add(v.Mul(t * chunkDt)))
		return e.legal(b, mine, ignore)
	}
	if probe(1) {
		return 1, false
	}

	tGood, tBad := 0.0, 1.0
	for (tBad-tGood)*chunkDt >= e.cfg.TimeAccuracy {
		mid := (tGood + tBad) / 2
		if probe(mid) {
			tGood = mid
		} else {
			tBad = mid
		}
	}

	b.SetPosition(start.Add(v.Mul(tBad * chunkDt)))
	hits := e.collectOverlappers(mine, mine.CannotOverlap, ignore, nil)
	for _, other := range hits {
		e.resolve(mine, other)
		if e.sideEffects {
			e.hooks.Collide(mine, other, false)
		}
		if b.dead {
			break
		}
	}
	if b.Restricted {
		if box, ok := restrictedBounds(b); ok && !e.cfg.Boundary.Inside(box) {
			b.vel = e.cfg.Boundary.boundaryVelocity(box, b.vel)
		}
	}

	b.SetPosition(start.Add(v.Mul(tGood * chunkDt)))
	return tGood, true
}

// legal reports whether the body may occupy its current position.
func (e *Engine) legal(b *Body, mine *Area, ignore map[*Area]bool) bool {
	if b.Restricted {
		if box, ok := restrictedBounds(b); ok && !e.cfg.Boundary.Inside(box) {
			return false
		}
	}
	return !e.overlapsAny(mine, mine.CannotOverlap, ignore)
}

// reindex refreshes the grid cells of every registered area of b except skip.
func (e *Engine) reindex(b *Body, skip *Area) {
	for _, a := range b.areas {
		if a == skip || a.handle == nil {
			continue
		}
		e.index.Remove(a.handle)
		_, _ = e.index.Insert(a)
	}
}
