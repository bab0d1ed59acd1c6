package collision

import (
	"errors"
	"fmt"
	"math"
	"math/bits"
	"sort"
)

// AreaType is a single bit identifying what kind of area something is.
type AreaType uint32

// TypeMask is a set of area types.
type TypeMask uint32

// Mask returns the single-type mask for t.
func (t AreaType) Mask() TypeMask { return TypeMask(t) }

// Has reports whether the mask contains t.
func (m TypeMask) Has(t AreaType) bool { return m&TypeMask(t) != 0 }

// Types builds a mask from the given types.
func Types(ts ...AreaType) TypeMask {
	var m TypeMask
	for _, t := range ts {
		m |= TypeMask(t)
	}
	return m
}

// MaterialID indexes Config.Materials. Zero is never a valid material.
type MaterialID int

// Material holds the response scalars of an area.
type Material struct {
	Name             string
	Elasticity       float64
	Friction         float64
	DamageMultiplier float64
}

// Unbounded as a cell size gives a type a single cell spanning the world.
var Unbounded = math.Inf(1)

var (
	ErrInvalidConfig      = errors.New("invalid collision config")
	ErrUnknownMaterial    = errors.New("unknown material")
	ErrNoGrid             = errors.New("no grid allocated for area type")
	ErrAlreadyRegistered  = errors.New("area already registered")
	ErrInvalidBody        = errors.New("invalid body")
	ErrMultiplePrimary    = errors.New("body has more than one primary area")
	ErrAreaAlreadyInBody  = errors.New("area already belongs to a body")
	ErrNonSingleAreaType  = errors.New("area type must be a single bit")
	ErrMaterialOutOfRange = errors.New("material scalar out of range")
)

// Config is everything the engine needs; nothing is read from globals.
type Config struct {
	Boundary Boundary

	// MaxChunkLength caps how far a body travels between two exact probes.
	MaxChunkLength float64
	// TimeAccuracy is the bisection tolerance in simulated seconds.
	TimeAccuracy float64
	// MaxMoveTries caps the outer move loop of a single MoveBody call.
	MaxMoveTries int
	// MaxSpeed clamps body speed before moving. Zero disables the clamp.
	MaxSpeed float64

	MinDamageDelta float64
	DamageScale    float64

	ColdDuration  float64
	SpawnAttempts int
	Seed          uint64

	// CellSizes allocates one grid per listed type.
	CellSizes map[AreaType]float64
	// NonPhysical lists the types handled by NonPhysicalPass.
	NonPhysical TypeMask
	// Materials is indexed by MaterialID; entry 0 is reserved.
	Materials []Material
}

// Validate checks the config for setup errors.
func (c *Config) Validate() error {
	if c.Boundary.Width <= 0 || c.Boundary.Height <= 0 || c.Boundary.Margin < 0 {
		return fmt.Errorf("%w: world %vx%v margin %v", ErrInvalidConfig,
			c.Boundary.Width, c.Boundary.Height, c.Boundary.Margin)
	}
	if c.MaxChunkLength <= 0 {
		return fmt.Errorf("%w: max chunk length %v", ErrInvalidConfig, c.MaxChunkLength)
	}
	if c.TimeAccuracy <= 0 {
		return fmt.Errorf("%w: time accuracy %v", ErrInvalidConfig, c.TimeAccuracy)
	}
	if c.MaxMoveTries < 1 {
		return fmt.Errorf("%w: max move tries %d", ErrInvalidConfig, c.MaxMoveTries)
	}
	if len(c.CellSizes) == 0 {
		return fmt.Errorf("%w: no cell sizes", ErrInvalidConfig)
	}
	for t, size := range c.CellSizes {
		if bits.OnesCount32(uint32(t)) != 1 {
			return fmt.Errorf("%w: %#x", ErrNonSingleAreaType, uint32(t))
		}
		if size == 0 || math.IsNaN(size) {
			return fmt.Errorf("%w: cell size %v for type %#x", ErrInvalidConfig, size, uint32(t))
		}
	}
	if len(c.Materials) < 2 {
		return fmt.Errorf("%w: material table is empty", ErrInvalidConfig)
	}
	for id, m := range c.Materials[1:] {
		if m.Elasticity < 0 || m.Friction < 0 || m.DamageMultiplier < 0 {
			return fmt.Errorf("%w: material %d (%s)", ErrMaterialOutOfRange, id+1, m.Name)
		}
	}
	return nil
}

// material returns the material for id or an error naming it.
func (c *Config) material(id MaterialID) (Material, error) {
	if id <= 0 || int(id) >= len(c.Materials) {
		return Material{}, fmt.Errorf("%w: id %d", ErrUnknownMaterial, id)
	}
	return c.Materials[id], nil
}

// gridTypes returns the allocated types in ascending bit order.
func (c *Config) gridTypes() []AreaType {
	out := make([]AreaType, 0, len(c.CellSizes))
	for t, size := range c.CellSizes {
		if size < 0 {
			continue
		}
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
