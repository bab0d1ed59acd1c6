package sim

import (
	"log"
	"sync"
	"time"
)

// GameLoop steps an arena at a fixed tick rate. With realtime off it steps as
// fast as it can, which is what batch runs and benchmarks want.
type GameLoop struct {
	arena    *Arena
	tickRate int
	realtime bool
	maxTicks int
	statsAt  int

	stopChan chan struct{}
	stopOnce sync.Once
}

// NewGameLoop returns a loop for arena. maxTicks of zero runs until Stop.
func NewGameLoop(arena *Arena, tickRate int, realtime bool, maxTicks, statsInterval int) *GameLoop {
	if tickRate < 1 {
		tickRate = 1
	}
	return &GameLoop{
		arena:    arena,
		tickRate: tickRate,
		realtime: realtime,
		maxTicks: maxTicks,
		statsAt:  statsInterval,
		stopChan: make(chan struct{}),
	}
}

// Run blocks until Stop is called or the tick limit is reached.
func (g *GameLoop) Run() {
	log.Printf("[loop] Game loop started at %d ticks/second (realtime=%v)", g.tickRate, g.realtime)

	var tickC <-chan time.Time
	if g.realtime {
		ticker := time.NewTicker(time.Second / time.Duration(g.tickRate))
		defer ticker.Stop()
		tickC = ticker.C
	}

	for ticks := 0; g.maxTicks == 0 || ticks < g.maxTicks; ticks++ {
		if tickC != nil {
			select {
			case <-g.stopChan:
				log.Println("[loop] Game loop stopped")
				return
			case <-tickC:
			}
		} else {
			select {
			case <-g.stopChan:
				log.Println("[loop] Game loop stopped")
				return
			default:
			}
		}
		g.tick()
	}
	log.Printf("[loop] Reached tick limit %d", g.maxTicks)
}

// Stop ends Run. It is safe to call more than once.
func (g *GameLoop) Stop() {
	g.stopOnce.Do(func() { close(g.stopChan) })
}

func (g *GameLoop) tick() {
	g.arena.Step(1 / float64(g.tickRate))

	if g.statsAt <= 0 {
		return
	}
	if s := g.arena.Stats(); s.Tick%g.statsAt == 0 {
		logStats(s)
	}
}

func logStats(s Stats) {
	log.Printf("[loop] tick=%d t=%.1fs bodies=%d ships=%d shots=%d/%d hits=%d kills=%d pickups=%d asteroids=%d removed=%d",
		s.Tick, s.Time, s.Bodies, s.Ships, s.Projectiles, s.Shots, s.Hits, s.Kills, s.Pickups, s.Asteroids, s.Removed)
}
