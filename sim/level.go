package sim

import (
	"fmt"
	"log"
	"math"
	"os"
	"path/filepath"

	"github.com/automoto/doomerang-arena/archetypes"
	"github.com/automoto/doomerang-arena/collision"
	"github.com/automoto/doomerang-arena/components"
	cfg "github.com/automoto/doomerang-arena/config"
	"github.com/automoto/doomerang-arena/shared/gamemath"
	"github.com/automoto/doomerang-arena/shared/leveldata"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// LoadArenaFile reads a single TMX arena from disk.
func LoadArenaFile(path string) (*leveldata.ArenaData, error) {
	data, err := leveldata.LoadArena(os.DirFS(filepath.Dir(path)), filepath.Base(path))
	if err != nil {
		return nil, fmt.Errorf("load arena: %w", err)
	}
	return data, nil
}

// LoadArenaPath loads path as a single TMX file, or, when path is a
// directory, the arena called name from it (the first by name when empty).
func LoadArenaPath(path, name string) (*leveldata.ArenaData, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("load arena: %w", err)
	}
	if !info.IsDir() {
		return LoadArenaFile(path)
	}

	arenas, names, err := leveldata.LoadAllArenas(os.DirFS(filepath.Dir(path)), filepath.Base(path))
	if err != nil {
		return nil, fmt.Errorf("load arenas: %w", err)
	}
	if name == "" {
		name = names[0]
	}
	data, ok := arenas[name]
	if !ok {
		return nil, fmt.Errorf("arena %q not found in %s (have %v)", name, path, names)
	}
	return data, nil
}

// buildLevel creates the static and drifting parts of the arena.
func (a *Arena) buildLevel() error {
	d := a.Data
	for i, r := range d.Walls {
		if _, err := a.createWall(r); err != nil {
			return fmt.Errorf("wall %d: %w", i, err)
		}
	}
	for i, m := range d.Movers {
		if _, err := a.createMover(m); err != nil {
			return fmt.Errorf("mover %d: %w", i, err)
		}
	}
	for i, w := range d.Wells {
		if _, err := a.createWell(w); err != nil {
			return fmt.Errorf("well %d: %w", i, err)
		}
	}
	for i, p := range d.Pickups {
		if _, err := a.createPickup(p); err != nil {
			return fmt.Errorf("pickup %d: %w", i, err)
		}
	}
	for i, s := range d.Asteroids {
		if _, err := a.createAsteroid(s); err != nil {
			return fmt.Errorf("asteroid %d: %w", i, err)
		}
	}

	log.Printf("[level] Loaded %q: %d walls, %d movers, %d wells, %d pickups, %d asteroids, %d spawns",
		d.Name, len(d.Walls), len(d.Movers), len(d.Wells), len(d.Pickups), len(d.Asteroids), len(d.Spawns))
	return nil
}

func rectBody(r leveldata.Rect) *collision.Body {
	center := mgl64.Vec2{r.X + r.W/2, r.Y + r.H/2}
	body := collision.NewBody(center, 1)
	area := collision.NewArea(cfg.AreaWall, gamemath.NewRect(r.W, r.H), cfg.MaterialSteel)
	return body.MustAddArea(area, true)
}

func (a *Arena) createWall(r leveldata.Rect) (*donburi.Entry, error) {
	wall := archetypes.Wall.Spawn(a.World)
	if err := a.attach(wall, rectBody(r)); err != nil {
		return nil, err
	}
	return wall, nil
}

// createMover builds a wall that ping-pongs along its offset. The tween drives
// the progress of one leg and is reset at each end.
func (a *Arena) createMover(m leveldata.MoverSpawn) (*donburi.Entry, error) {
	mover := archetypes.Mover.Spawn(a.World)
	body := rectBody(m.Rect)
	if err := a.attach(mover, body); err != nil {
		return nil, err
	}

	duration := m.Duration
	if duration <= 0 {
		duration = cfg.Mover.Duration
	}
	components.Mover.SetValue(mover, components.MoverData{
		Origin: body.Position(),
		Offset: mgl64.Vec2{m.DX, m.DY},
		Tween:  gween.New(0, 1, float32(duration), ease.InOutSine),
	})
	return mover, nil
}

func (a *Arena) createWell(w leveldata.WellSpawn) (*donburi.Entry, error) {
	radius, strength := w.Radius, w.Strength
	if radius <= 0 {
		radius = cfg.Well.Radius
	}
	if strength == 0 {
		strength = cfg.Well.Strength
	}

	body := collision.NewBody(mgl64.Vec2{w.X, w.Y}, 1)
	field := collision.NewArea(cfg.AreaForce, gamemath.NewCircle(radius), cfg.MaterialField)
	field.CollidesAgainst = cfg.WellTargets
	field.Force = strength
	body.MustAddArea(field, false)

	well := archetypes.Well.Spawn(a.World)
	if err := a.attach(well, body); err != nil {
		return nil, err
	}
	return well, nil
}

func (a *Arena) createPickup(p leveldata.PickupSpawn) (*donburi.Entry, error) {
	heal := p.Heal
	if heal <= 0 {
		heal = cfg.Pickup.Heal
	}

	body := collision.NewBody(mgl64.Vec2{p.X, p.Y}, 1)
	sensor := collision.NewArea(cfg.AreaReceptor, gamemath.NewCircle(cfg.Pickup.Radius), cfg.MaterialField)
	sensor.CollidesAgainst = cfg.PickupTargets
	body.MustAddArea(sensor, false)

	pickup := archetypes.Pickup.Spawn(a.World)
	components.Pickup.SetValue(pickup, components.PickupData{Heal: heal})
	if err := a.attach(pickup, body); err != nil {
		return nil, err
	}
	return pickup, nil
}

// createAsteroid places a rock with a random drift. A blocked spot is moved
// to a free one nearby when possible.
func (a *Arena) createAsteroid(s leveldata.AsteroidSpawn) (*donburi.Entry, error) {
	radius := s.Radius
	if radius <= 0 {
		radius = gamemath.Lerp(cfg.Asteroid.MinRadius, cfg.Asteroid.MaxRadius, a.rng.Float64())
	}

	body := collision.NewBody(mgl64.Vec2{s.X, s.Y}, cfg.Asteroid.Density*math.Pi*radius*radius)
	body.Movable = true
	rock := collision.NewArea(cfg.AreaAsteroid, gamemath.NewRegularPolygon(cfg.Asteroid.Sides, radius), cfg.MaterialRock)
	rock.CollidesAgainst = cfg.AsteroidBlockers
	rock.CannotOverlap = cfg.AsteroidBlockers
	body.MustAddArea(rock, true)
	body.SetRotation(a.rng.Float64() * 2 * math.Pi)

	if !a.Engine.IsFreePosition(body, body.Position()) {
		hint := gamemath.NewAABB(s.X, s.Y, s.X, s.Y).Expand(4 * radius)
		pos, _ := a.Engine.FindFreePosition(body, hint)
		body.SetPosition(pos)
	}

	angle := a.rng.Float64() * 2 * math.Pi
	speed := a.rng.Float64() * cfg.Asteroid.MaxDrift
	body.SetVelocity(gamemath.Rotate(mgl64.Vec2{speed, 0}, angle))

	asteroid := archetypes.Asteroid.Spawn(a.World)
	components.Health.SetValue(asteroid, components.HealthData{
		Current: cfg.Asteroid.Health,
		Max:     cfg.Asteroid.Health,
	})
	if err := a.attach(asteroid, body); err != nil {
		return nil, err
	}
	return asteroid, nil
}

func newShipBody(pos mgl64.Vec2, owner int) *collision.Body {
	body := collision.NewBody(pos, cfg.Ship.Mass)
	body.Owner = owner
	body.Movable = true
	body.Restricted = true
	hull := collision.NewArea(cfg.AreaShip, gamemath.NewRegularPolygon(cfg.Ship.Sides, cfg.Ship.Radius), cfg.MaterialHull)
	hull.CollidesAgainst = cfg.ShipBlockers
	hull.CannotOverlap = cfg.ShipBlockers
	return body.MustAddArea(hull, true)
}

// spawnShip creates ship number i at its spawn point, or at a free position
// when the arena has too few spawns or the spawn is blocked.
func (a *Arena) spawnShip(i int) (*donburi.Entry, error) {
	a.owners++
	owner := a.owners

	inner := a.Engine.Config().Boundary.Inner()
	spawn := inner.Center()
	if i < len(a.Data.Spawns) {
		spawn = mgl64.Vec2{a.Data.Spawns[i].X, a.Data.Spawns[i].Y}
	}
	body := newShipBody(spawn, owner)
	body.SetRotation(math.Atan2(inner.Center()[1]-spawn[1], inner.Center()[0]-spawn[0]))

	if i >= len(a.Data.Spawns) || !a.Engine.IsFreePosition(body, spawn) {
		hint := inner
		if i < len(a.Data.Spawns) {
			hint = gamemath.NewAABB(spawn[0], spawn[1], spawn[0], spawn[1]).Expand(200)
		}
		pos, ok := a.Engine.FindFreePosition(body, hint)
		if !ok {
			log.Printf("[arena] No free spawn for ship %d, using the least crowded spot", owner)
		}
		spawn = pos
		body.SetPosition(pos)
	}

	ship := archetypes.Ship.Spawn(a.World)
	components.Ship.SetValue(ship, components.ShipData{Owner: owner, Spawn: spawn})
	components.Health.SetValue(ship, components.HealthData{Current: cfg.Ship.Health, Max: cfg.Ship.Health})
	components.Gun.SetValue(ship, components.GunData{Cooldown: cfg.Ship.FireCooldown})
	if err := a.attach(ship, body); err != nil {
		return nil, err
	}
	return ship, nil
}
