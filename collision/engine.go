package collision

import (
	"fmt"
	"math/rand/v2"

	"github.com/automoto/doomerang-arena/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
)

// Hooks receives collision events. Implementations must not register or
// unregister areas of the moving body while MoveBody is running; destroying
// the moving body is allowed and ends its move.
type Hooks interface {
	// Collide is called for each contact. stuck is true when mine already
	// overlapped other at the start of the move.
	Collide(mine, other *Area, stuck bool)
	InflictDamage(victim *Body, amount float64, source *Body)
	// Remove is called once for a body that left the outer boundary. The body
	// is already unregistered.
	Remove(b *Body)
}

// NopHooks ignores every event.
type NopHooks struct{}

func (NopHooks) Collide(*Area, *Area, bool)          {}
func (NopHooks) InflictDamage(*Body, float64, *Body) {}
func (NopHooks) Remove(*Body)                        {}

// Engine owns the spatial index and moves bodies through it.
type Engine struct {
	cfg   Config
	hooks Hooks
	index *Index

	bodies []*Body
	now    float64
	rng    *rand.Rand

	sideEffects bool
}

// NewEngine validates cfg and builds the index. A nil hooks value is replaced
// by NopHooks.
func NewEngine(cfg Config, hooks Hooks) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if hooks == nil {
		hooks = NopHooks{}
	}
	index, err := NewIndex(&cfg)
	if err != nil {
		return nil, err
	}
	return &Engine{
		cfg:   cfg,
		hooks: hooks,
		index: index,
		rng:   rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15)),
	}, nil
}

// Config returns the engine configuration.
func (e *Engine) Config() Config { return e.cfg }

// Index exposes the spatial index for read-only queries.
func (e *Engine) Index() *Index { return e.index }

// Now returns the simulation clock in seconds.
func (e *Engine) Now() float64 { return e.now }

// Advance moves the simulation clock forward.
func (e *Engine) Advance(dt float64) {
	if dt > 0 {
		e.now += dt
	}
}

// SetCold starts b's cold window: until it ends, b ignores and is ignored by
// bodies with the same non-zero owner.
func (e *Engine) SetCold(b *Body) {
	b.coldUntil = e.now + e.cfg.ColdDuration
}

// Bodies returns the registered bodies in registration order.
func (e *Engine) Bodies() []*Body { return e.bodies }

// Register inserts every area of b into the index and clears its dead flag.
// Nothing is inserted when an area fails validation.
func (e *Engine) Register(b *Body) error {
	if b.registered {
		return fmt.Errorf("%w: %v", ErrAlreadyRegistered, b)
	}
	if b.Mass <= 0 {
		return fmt.Errorf("%w: %v has mass %v", ErrInvalidBody, b, b.Mass)
	}
	if len(b.areas) == 0 {
		return fmt.Errorf("%w: %v has no areas", ErrInvalidBody, b)
	}
	for _, a := range b.areas {
		if _, err := e.cfg.material(a.Material); err != nil {
			return fmt.Errorf("register %v area %#x: %w", b, uint32(a.Type), err)
		}
		if !e.index.HasGrid(a.Type) {
			return fmt.Errorf("register %v: %w: %#x", b, ErrNoGrid, uint32(a.Type))
		}
		if a.handle != nil {
			return fmt.Errorf("register %v: %w: type %#x", b, ErrAlreadyRegistered, uint32(a.Type))
		}
	}
	for _, a := range b.areas {
		if _, err := e.index.Insert(a); err != nil {
			e.removeAreas(b)
			return fmt.Errorf("register %v: %w", b, err)
		}
	}
	b.registered = true
	b.dead = false
	e.bodies = append(e.bodies, b)
	return nil
}

// Unregister removes every area of b from the index. Unknown or already
// unregistered bodies are ignored.
func (e *Engine) Unregister(b *Body) {
	if b == nil {
		return
	}
	e.removeAreas(b)
	if !b.registered {
		return
	}
	b.registered = false
	for i, other := range e.bodies {
		if other == b {
			e.bodies = append(e.bodies[:i], e.bodies[i+1:]...)
			break
		}
	}
}

func (e *Engine) removeAreas(b *Body) {
	for _, a := range b.areas {
		e.index.Remove(a.handle)
	}
}

// Relocate teleports b and refreshes the grid cells of its registered areas.
func (e *Engine) Relocate(b *Body, pos mgl64.Vec2) {
	b.SetPosition(pos)
	e.reindex(b, nil)
}

// IsFreePosition reports whether b could stand at pos without any of its
// areas overlapping something in their CannotOverlap masks, and, for
// restricted bodies, without leaving the world. b is left where it was.
func (e *Engine) IsFreePosition(b *Body, pos mgl64.Vec2) bool {
	return e.blockersAt(b, pos, true) == 0
}

// blockersAt counts the areas blocking b at pos. With firstOnly it stops at
// the first one.
func (e *Engine) blockersAt(b *Body, pos mgl64.Vec2, firstOnly bool) int {
	saved := b.pos
	b.SetPosition(pos)
	defer b.SetPosition(saved)

	count := 0
	if b.Restricted {
		if box, ok := restrictedBounds(b); ok && !e.cfg.Boundary.Inside(box) {
			if firstOnly {
				return 1
			}
			count++
		}
	}
	for _, a := range b.areas {
		e.ForEachOverlapper(a, a.CannotOverlap, func(*Area) Signal {
			count++
			if firstOnly {
				return Stop
			}
			return Continue
		})
		if firstOnly && count > 0 {
			return count
		}
	}
	return count
}

// FindFreePosition samples random positions inside hint (clamped to the
// world) until one is free. On failure it returns the sample with the fewest
// blockers and false.
func (e *Engine) FindFreePosition(b *Body, hint gamemath.AABB) (mgl64.Vec2, bool) {
	inner := e.cfg.Boundary.Inner()
	area := gamemath.NewAABB(
		gamemath.ClampFloat(hint.Min[0], inner.Min[0], inner.Max[0]),
		gamemath.ClampFloat(hint.Min[1], inner.Min[1], inner.Max[1]),
		gamemath.ClampFloat(hint.Max[0], inner.Min[0], inner.Max[0]),
		gamemath.ClampFloat(hint.Max[1], inner.Min[1], inner.Max[1]),
	)

	best := area.Center()
	bestCount := -1
	attempts := max(1, e.cfg.SpawnAttempts)
	for i := 0; i < attempts; i++ {
		pos := mgl64.Vec2{
			gamemath.Lerp(area.Min[0], area.Max[0], e.rng.Float64()),
			gamemath.Lerp(area.Min[1], area.Max[1], e.rng.Float64()),
		}
		n := e.blockersAt(b, pos, false)
		if n == 0 {
			return pos, true
		}
		if bestCount < 0 || n < bestCount {
			best, bestCount = pos, n
		}
	}
	return best, false
}

// NonPhysicalPass handles receptor and force areas: every area whose type is
// listed in Config.NonPhysical and that collides against something gets its
// overlappers reported, and force areas push or pull them.
func (e *Engine) NonPhysicalPass(dt float64) {
	var hits []*Area
	for _, b := range append([]*Body(nil), e.bodies...) {
		if b.dead || !b.registered || b.Disabled() {
			continue
		}
	areas:
		for _, a := range b.areas {
			if !e.cfg.NonPhysical.Has(a.Type) || a.CollidesAgainst == 0 || a.handle == nil {
				continue
			}
			hits = e.collectOverlappers(a, a.CollidesAgainst, nil, hits)
			for _, other := range hits {
				if ob := other.body; ob != nil && (ob.dead || ob.Disabled()) {
					continue
				}
				if a.Force != 0 {
					e.applyForce(a, other, dt)
				}
				e.hooks.Collide(a, other, false)
				if b.dead || !b.registered || b.Disabled() {
					break areas
				}
			}
		}
	}
}

// applyForce accelerates other's body along the direction from a's centre.
// Positive force repels.
func (e *Engine) applyForce(a, other *Area, dt float64) {
	target := other.body
	if target == nil || !target.Movable || target.dead {
		return
	}
	dir, ok := gamemath.SafeNormalize(target.pos.Sub(a.Geometry().Centroid()))
	if !ok {
		return
	}
	target.vel = target.vel.Add(dir.Mul(a.Force * dt))
}
