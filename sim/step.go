package sim

import "github.com/automoto/doomerang-arena/collision"

// Step advances the arena by dt seconds.
//
// Order: movers, pilots, ship handling, guns, projectile expiry, body
// movement in registration order, receptors and force fields, then damage,
// respawns and removal of destroyed entities.
func (a *Arena) Step(dt float64) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if dt <= 0 {
		return
	}
	a.stats.Tick++
	a.Engine.Advance(dt)

	a.updateMovers(dt)
	if a.Autopilot {
		a.updatePilots()
	}
	a.updateShips(dt)
	a.updateGuns()
	a.expireProjectiles()

	// Bodies created by hooks during the pass wait for the next step
	for _, b := range append([]*collision.Body(nil), a.Engine.Bodies()...) {
		if b.Dead() || !b.Registered() {
			continue
		}
		a.Engine.MoveBody(b, dt, true)
	}
	a.Engine.NonPhysicalPass(dt)

	a.applyDamage()
	a.respawn()
	a.flush()
	a.refreshCounts()
}
