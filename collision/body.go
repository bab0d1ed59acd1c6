package collision

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// Body is a simulated entity as far as collision is concerned. Position and
// rotation are only written through the setters so area caches stay valid.
type Body struct {
	// Owner groups bodies for the cold exemption. Zero means unowned.
	Owner int
	Mass  float64
	// Movable bodies are moved by MoveBody and receive collision responses.
	Movable bool
	// Restricted bodies may never leave the inner world rectangle.
	Restricted bool
	// Data is a back-reference for the host layer.
	Data any

	pos      mgl64.Vec2
	vel      mgl64.Vec2
	rot      float64
	areas    []*Area
	primary  int
	disabled int

	coldUntil  float64
	dead       bool
	registered bool
}

// NewBody returns a body at pos with the given mass.
func NewBody(pos mgl64.Vec2, mass float64) *Body {
	return &Body{pos: pos, Mass: mass, primary: -1}
}

// AddArea attaches a to the body. Only one area may be primary.
func (b *Body) AddArea(a *Area, primary bool) error {
	if a.body != nil {
		return fmt.Errorf("%w: type %#x", ErrAreaAlreadyInBody, uint32(a.Type))
	}
	if primary && b.primary >= 0 {
		return ErrMultiplePrimary
	}
	a.body = b
	a.dirty = true
	b.areas = append(b.areas, a)
	if primary {
		b.primary = len(b.areas) - 1
	}
	return nil
}

// MustAddArea is AddArea for construction code that cannot fail.
func (b *Body) MustAddArea(a *Area, primary bool) *Body {
	if err := b.AddArea(a, primary); err != nil {
		panic(err)
	}
	return b
}

// PrimaryArea returns the area used for movement backtracking, or nil.
func (b *Body) PrimaryArea() *Area {
	if b.primary < 0 {
		return nil
	}
	return b.areas[b.primary]
}

// Areas returns all areas of the body.
func (b *Body) Areas() []*Area { return b.areas }

func (b *Body) Position() mgl64.Vec2 { return b.pos }
func (b *Body) Velocity() mgl64.Vec2 { return b.vel }
func (b *Body) Rotation() float64    { return b.rot }

// SetPosition moves the body and invalidates its area caches.
func (b *Body) SetPosition(p mgl64.Vec2) {
	if p == b.pos {
		return
	}
	b.pos = p
	b.invalidate()
}

// SetRotation turns the body and invalidates its area caches.
func (b *Body) SetRotation(r float64) {
	if r == b.rot {
		return
	}
	b.rot = r
	b.invalidate()
}

func (b *Body) SetVelocity(v mgl64.Vec2) { b.vel = v }

func (b *Body) invalidate() {
	for _, a := range b.areas {
		a.dirty = true
	}
}

// Disable excludes the body from all checks until a matching Enable.
func (b *Body) Disable() { b.disabled++ }

// Enable undoes one Disable.
func (b *Body) Enable() {
	if b.disabled > 0 {
		b.disabled--
	}
}

func (b *Body) Disabled() bool { return b.disabled > 0 }

// Kill marks the body dead. Overlap queries skip dead bodies and MoveBody
// stops working on them.
func (b *Body) Kill() { b.dead = true }

func (b *Body) Dead() bool       { return b.dead }
func (b *Body) Registered() bool { return b.registered }

// ColdUntil returns the simulation time at which the cold window ends.
func (b *Body) ColdUntil() float64 { return b.coldUntil }

func (b *Body) coldAt(now float64) bool { return now < b.coldUntil }

func (b *Body) String() string {
	return fmt.Sprintf("body(owner=%d pos=%.2f,%.2f)", b.Owner, b.pos[0], b.pos[1])
}
