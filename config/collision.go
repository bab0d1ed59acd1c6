package config

import "github.com/automoto/doomerang-arena/collision"

// Area types used by the arena
const (
	AreaShip collision.AreaType = 1 << iota
	AreaProjectile
	AreaWall
	AreaAsteroid
	AreaReceptor // pickups
	AreaForce    // gravity wells
)

// Material ids, indexes into Materials
const (
	MaterialHull collision.MaterialID = iota + 1
	MaterialRock
	MaterialSteel
	MaterialSlug
	MaterialField
)

// Materials is the material table. Entry 0 is reserved.
var Materials = []collision.Material{
	{},
	{Name: "hull", Elasticity: 0.6, Friction: 0.3, DamageMultiplier: 1},
	{Name: "rock", Elasticity: 0.8, Friction: 0.6, DamageMultiplier: 1.2},
	{Name: "steel", Elasticity: 0.9, Friction: 0.5, DamageMultiplier: 1},
	{Name: "slug", Elasticity: 0.2, Friction: 0.1, DamageMultiplier: 0},
	{Name: "field", Elasticity: 0, Friction: 0, DamageMultiplier: 0},
}

// Collision masks per area type
var (
	ShipBlockers       = collision.Types(AreaShip, AreaWall, AreaAsteroid)
	ProjectileBlockers = collision.Types(AreaShip, AreaWall, AreaAsteroid)
	AsteroidBlockers   = collision.Types(AreaShip, AreaWall, AreaAsteroid)
	PickupTargets      = collision.Types(AreaShip)
	WellTargets        = collision.Types(AreaShip, AreaAsteroid, AreaProjectile)
)

// CellSizes is the grid cell size per area type
var CellSizes = map[collision.AreaType]float64{
	AreaShip:       64,
	AreaProjectile: 32,
	AreaWall:       128,
	AreaAsteroid:   64,
	AreaReceptor:   collision.Unbounded,
	AreaForce:      collision.Unbounded,
}

// Collision builds the collision engine config for a world of the given size
// from the arena values.
func Collision(width, height float64) collision.Config {
	cells := make(map[collision.AreaType]float64, len(CellSizes))
	for t, size := range CellSizes {
		cells[t] = size
	}
	return collision.Config{
		Boundary: collision.Boundary{
			Width:  width,
			Height: height,
			Margin: Arena.OuterMargin,
		},
		MaxChunkLength: Arena.MaxChunkLength,
		TimeAccuracy:   Arena.TimeAccuracy,
		MaxMoveTries:   Arena.MaxMoveTries,
		MaxSpeed:       Arena.MaxSpeed,
		MinDamageDelta: Arena.MinDamageDelta,
		DamageScale:    Arena.DamageScale,
		ColdDuration:   Arena.ColdDuration,
		SpawnAttempts:  Arena.SpawnAttempts,
		Seed:           Arena.Seed,
		CellSizes:      cells,
		NonPhysical:    collision.Types(AreaReceptor, AreaForce),
		Materials:      append([]collision.Material(nil), Materials...),
	}
}
