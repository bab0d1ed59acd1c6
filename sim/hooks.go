package sim

import (
	"github.com/automoto/doomerang-arena/collision"
	"github.com/automoto/doomerang-arena/components"
	cfg "github.com/automoto/doomerang-arena/config"
	"github.com/automoto/doomerang-arena/tags"
	"github.com/yohamta/donburi"
)

// arenaHooks turns collision events into game events on the arena's world.
// Nothing is created or removed here; removals go through the doomed queue.
type arenaHooks struct {
	arena *Arena
}

func (h *arenaHooks) Collide(mine, other *collision.Area, stuck bool) {
	a := h.arena
	switch mine.Type {
	case cfg.AreaProjectile:
		h.projectileHit(mine.Body(), other.Body())
	case cfg.AreaReceptor:
		h.pickup(a.entryOf(mine.Body()), a.entryOf(other.Body()))
	}
}

// projectileHit damages whatever the projectile struck and spends it.
func (h *arenaHooks) projectileHit(shot, target *collision.Body) {
	a := h.arena
	if shot.Dead() {
		return
	}
	entry := a.entryOf(shot)
	if entry == nil || !entry.HasComponent(components.Projectile) {
		return
	}
	proj := components.Projectile.Get(entry)

	if victim := a.entryOf(target); victim != nil && victim.HasComponent(components.Health) {
		addDamage(victim, proj.Damage, proj.Owner)
		if victim.HasComponent(tags.Ship) {
			a.stats.Hits++
		}
	}
	a.destroy(entry)
}

// pickup heals a ship that touched an available pickup and hides the pickup
// until it respawns.
func (h *arenaHooks) pickup(pickup, ship *donburi.Entry) {
	a := h.arena
	if pickup == nil || ship == nil || !ship.HasComponent(tags.Ship) {
		return
	}
	pd := components.Pickup.Get(pickup)
	if pd.Taken || components.Ship.Get(ship).Down {
		return
	}

	health := components.Health.Get(ship)
	health.Current = min(health.Max, health.Current+pd.Heal)

	pd.Taken = true
	pd.RespawnAt = a.Engine.Now() + cfg.Pickup.Respawn
	components.Body.Get(pickup).Disable()
	a.stats.Pickups++
}

func (h *arenaHooks) InflictDamage(victim *collision.Body, amount float64, source *collision.Body) {
	entry := h.arena.entryOf(victim)
	if entry == nil || !entry.HasComponent(components.Health) {
		return
	}
	owner := 0
	if source != nil {
		owner = source.Owner
	}
	addDamage(entry, amount, owner)
}

func (h *arenaHooks) Remove(b *collision.Body) {
	a := h.arena
	if entry := a.entryOf(b); entry != nil {
		a.destroy(entry)
		a.stats.Removed++
	}
}

// addDamage accumulates damage on entry until the next damage pass.
func addDamage(entry *donburi.Entry, amount float64, sourceOwner int) {
	if amount <= 0 {
		return
	}
	if !entry.HasComponent(components.DamageEvent) {
		entry.AddComponent(components.DamageEvent)
		components.DamageEvent.Set(entry, &components.DamageEventData{})
	}
	ev := components.DamageEvent.Get(entry)
	ev.Amount += amount
	if sourceOwner != 0 {
		ev.SourceOwner = sourceOwner
	}
}
