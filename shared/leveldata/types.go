// Package leveldata provides arena map parsing shared by the headless
// simulation and the viewer. It has no dependencies on ebitengine, donburi, or
// the collision engine; pure data only.
package leveldata

// ArenaData holds everything the simulation needs from an arena map.
type ArenaData struct {
	Name      string
	Width     float64
	Height    float64
	Walls     []Rect
	Spawns    []Point
	Asteroids []AsteroidSpawn
	Pickups   []PickupSpawn
	Wells     []WellSpawn
	Movers    []MoverSpawn
}

// Rect is an axis-aligned solid area in world units.
type Rect struct {
	X, Y, W, H float64
}

// Point is a ship spawn location.
type Point struct {
	X, Y float64
}

// AsteroidSpawn places a drifting rock. A zero radius uses the default.
type AsteroidSpawn struct {
	X, Y   float64
	Radius float64
}

// PickupSpawn places a repair pickup. A zero heal uses the default.
type PickupSpawn struct {
	X, Y float64
	Heal float64
}

// WellSpawn places a gravity well. Zero fields use the defaults.
type WellSpawn struct {
	X, Y     float64
	Radius   float64
	Strength float64
}

// MoverSpawn is a wall that slides by (DX, DY) and back.
type MoverSpawn struct {
	Rect
	DX, DY   float64
	Duration float64 // seconds per leg, zero uses the default
}
