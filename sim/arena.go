package sim

import (
	"fmt"
	"log"
	"math/rand/v2"
	"sync"

	"github.com/automoto/doomerang-arena/collision"
	"github.com/automoto/doomerang-arena/components"
	"github.com/automoto/doomerang-arena/shared/leveldata"
	"github.com/automoto/doomerang-arena/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

// Stats are running counters for logging and the viewer HUD.
type Stats struct {
	Tick        int
	Time        float64
	Bodies      int
	Ships       int
	Projectiles int
	Asteroids   int
	Shots       int
	Hits        int
	Kills       int
	Pickups     int
	Removed     int
}

// Arena is one running match: a donburi world whose entities own collision
// bodies, stepped at a fixed rate.
type Arena struct {
	World  donburi.World
	Engine *collision.Engine
	Data   *leveldata.ArenaData

	// Autopilot lets pilots steer ships. Tests turn it off to drive ships by
	// hand.
	Autopilot bool
	// Manual is the owner whose pilot is driven from outside, 0 for none.
	Manual int

	rng     *rand.Rand
	hooks   *arenaHooks
	doomed  []donburi.Entity
	stats   Stats
	mu      sync.Mutex
	owners  int
	shipQry *donburi.Query
	shotQry *donburi.Query
	rockQry *donburi.Query
	pickQry *donburi.Query
	hurtQry *donburi.Query
}

// NewArena builds the world described by data with the given number of ships.
func NewArena(data *leveldata.ArenaData, cc collision.Config, ships int) (*Arena, error) {
	a := &Arena{
		World:     donburi.NewWorld(),
		Data:      data,
		Autopilot: true,
		rng:       rand.New(rand.NewPCG(cc.Seed, cc.Seed^0x5851f42d4c957f2d)),
		shipQry:   donburi.NewQuery(filter.Contains(tags.Ship)),
		shotQry:   donburi.NewQuery(filter.Contains(tags.Projectile)),
		rockQry:   donburi.NewQuery(filter.Contains(tags.Asteroid)),
		pickQry:   donburi.NewQuery(filter.Contains(tags.Pickup)),
		hurtQry:   donburi.NewQuery(filter.Contains(components.DamageEvent, components.Health)),
	}
	a.hooks = &arenaHooks{arena: a}

	engine, err := collision.NewEngine(cc, a.hooks)
	if err != nil {
		return nil, fmt.Errorf("create collision engine: %w", err)
	}
	a.Engine = engine

	if err := a.buildLevel(); err != nil {
		return nil, err
	}
	for i := 0; i < ships; i++ {
		if _, err := a.spawnShip(i); err != nil {
			return nil, fmt.Errorf("spawn ship %d: %w", i+1, err)
		}
	}

	a.refreshCounts()
	log.Printf("[arena] Started %q: %.0fx%.0f, %d bodies, %d ships",
		data.Name, data.Width, data.Height, a.stats.Bodies, a.stats.Ships)
	return a, nil
}

// Stats returns a snapshot of the counters.
func (a *Arena) Stats() Stats {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.stats
}

// Lock holds the arena still while a caller reads the world.
func (a *Arena) Lock()   { a.mu.Lock() }
func (a *Arena) Unlock() { a.mu.Unlock() }

// entryOf returns the live entity that owns b.
func (a *Arena) entryOf(b *collision.Body) *donburi.Entry {
	if b == nil {
		return nil
	}
	ent, ok := b.Data.(donburi.Entity)
	if !ok || !a.World.Valid(ent) {
		return nil
	}
	return a.World.Entry(ent)
}

// attach links body to entry and registers it with the engine. The entity is
// removed again when registration fails.
func (a *Arena) attach(entry *donburi.Entry, body *collision.Body) error {
	body.Data = entry.Entity()
	components.Body.SetValue(entry, components.BodyData{Body: body})
	if err := a.Engine.Register(body); err != nil {
		a.World.Remove(entry.Entity())
		return err
	}
	return nil
}

// destroy queues an entity for removal at the end of the step.
func (a *Arena) destroy(entry *donburi.Entry) {
	if entry == nil || !entry.Valid() {
		return
	}
	if b := components.Body.Get(entry).Body; b != nil {
		b.Kill()
	}
	a.doomed = append(a.doomed, entry.Entity())
}

// flush removes the queued entities and their bodies.
func (a *Arena) flush() {
	for _, ent := range a.doomed {
		if !a.World.Valid(ent) {
			continue
		}
		entry := a.World.Entry(ent)
		a.Engine.Unregister(components.Body.Get(entry).Body)
		a.World.Remove(ent)
	}
	a.doomed = a.doomed[:0]
}

func (a *Arena) refreshCounts() {
	a.stats.Bodies = len(a.Engine.Bodies())
	a.stats.Ships = a.shipQry.Count(a.World)
	a.stats.Projectiles = a.shotQry.Count(a.World)
	a.stats.Asteroids = a.rockQry.Count(a.World)
	a.stats.Time = a.Engine.Now()
}
