package sim

import (
	"errors"
	"log"
	"math"

	"github.com/automoto/doomerang-arena/archetypes"
	"github.com/automoto/doomerang-arena/collision"
	"github.com/automoto/doomerang-arena/components"
	cfg "github.com/automoto/doomerang-arena/config"
	"github.com/automoto/doomerang-arena/shared/gamemath"
	"github.com/automoto/doomerang-arena/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

var (
	ErrNotShip     = errors.New("entity is not a ship")
	ErrShipDown    = errors.New("ship is down")
	ErrGunNotReady = errors.New("gun is cooling down")
)

// heading returns the unit vector a ship faces.
func heading(b *collision.Body) mgl64.Vec2 {
	return mgl64.Vec2{math.Cos(b.Rotation()), math.Sin(b.Rotation())}
}

// Fire launches a projectile from ship's nose. The projectile is cold so it
// does not hit its own ship on the way out.
func (a *Arena) Fire(ship *donburi.Entry) (*donburi.Entry, error) {
	if ship == nil || !ship.Valid() || !ship.HasComponent(tags.Ship) {
		return nil, ErrNotShip
	}
	sd := components.Ship.Get(ship)
	if sd.Down {
		return nil, ErrShipDown
	}
	gun := components.Gun.Get(ship)
	now := a.Engine.Now()
	if now < gun.ReadyAt {
		return nil, ErrGunNotReady
	}

	sb := components.Body.Get(ship).Body
	dir := heading(sb)
	pos := sb.Position().Add(dir.Mul(cfg.Ship.GunOffset))

	body := collision.NewBody(pos, cfg.Projectile.Mass)
	body.Owner = sd.Owner
	body.Movable = true
	slug := collision.NewArea(cfg.AreaProjectile, gamemath.NewCircle(cfg.Projectile.Radius), cfg.MaterialSlug)
	slug.CollidesAgainst = cfg.ProjectileBlockers
	slug.CannotOverlap = cfg.ProjectileBlockers
	body.MustAddArea(slug, true)
	body.SetVelocity(sb.Velocity().Add(dir.Mul(cfg.Projectile.Speed)))
	a.Engine.SetCold(body)

	shot := archetypes.Projectile.Spawn(a.World)
	components.Projectile.SetValue(shot, components.ProjectileData{
		Owner:     sd.Owner,
		Damage:    cfg.Projectile.Damage,
		ExpiresAt: now + cfg.Projectile.Lifetime,
	})
	if err := a.attach(shot, body); err != nil {
		return nil, err
	}

	gun.ReadyAt = now + gun.Cooldown
	gun.Fired++
	a.stats.Shots++
	return shot, nil
}

// updateShips turns the pilot intent into rotation and velocity.
func (a *Arena) updateShips(dt float64) {
	a.shipQry.Each(a.World, func(e *donburi.Entry) {
		if components.Ship.Get(e).Down {
			return
		}
		b := components.Body.Get(e).Body
		pilot := components.Pilot.Get(e)

		turn := gamemath.ClampFloat(pilot.Turn, -1, 1)
		if turn != 0 {
			b.SetRotation(b.Rotation() + turn*cfg.Ship.TurnRate*dt)
			// Turning can push the hull into a neighbour
			if !a.Engine.IsFreePosition(b, b.Position()) {
				b.SetRotation(b.Rotation() - turn*cfg.Ship.TurnRate*dt)
			}
			a.Engine.Relocate(b, b.Position())
		}

		v := b.Velocity()
		if pilot.Thrust {
			v = v.Add(heading(b).Mul(cfg.Ship.Thrust * dt))
		}
		if speed := v.Len(); speed > 0 {
			v = v.Mul(gamemath.ApplyFriction(speed, cfg.Ship.Drag*dt) / speed)
		}
		b.SetVelocity(v)
	})
}

// updateGuns fires for every pilot that asks to. Firing creates entities, so
// it runs after the query.
func (a *Arena) updateGuns() {
	var firing []*donburi.Entry
	a.shipQry.Each(a.World, func(e *donburi.Entry) {
		if components.Pilot.Get(e).Fire && !components.Ship.Get(e).Down {
			firing = append(firing, e)
		}
	})
	for _, e := range firing {
		if _, err := a.Fire(e); err != nil && !errors.Is(err, ErrGunNotReady) {
			log.Printf("[arena] Fire failed for ship %d: %v", components.Ship.Get(e).Owner, err)
		}
	}
}

func (a *Arena) expireProjectiles() {
	now := a.Engine.Now()
	a.shotQry.Each(a.World, func(e *donburi.Entry) {
		if now >= components.Projectile.Get(e).ExpiresAt {
			a.destroy(e)
		}
	})
}

// applyDamage drains the damage gathered during the step. Ships at zero go
// down and credit their killer; asteroids at zero are destroyed.
func (a *Arena) applyDamage() {
	var hurt []*donburi.Entry
	a.hurtQry.Each(a.World, func(e *donburi.Entry) {
		hurt = append(hurt, e)
	})

	for _, e := range hurt {
		ev := *components.DamageEvent.Get(e)
		e.RemoveComponent(components.DamageEvent)
		if components.Body.Get(e).Dead() {
			continue
		}

		health := components.Health.Get(e)
		health.Current -= ev.Amount
		if health.Current > 0 {
			continue
		}
		health.Current = 0

		switch {
		case e.HasComponent(tags.Ship):
			a.shipDown(e, ev.SourceOwner)
		case e.HasComponent(tags.Asteroid):
			a.destroy(e)
		}
	}
}

func (a *Arena) shipDown(e *donburi.Entry, killer int) {
	sd := components.Ship.Get(e)
	if sd.Down {
		return
	}
	sd.Down = true
	sd.Deaths++
	sd.RespawnAt = a.Engine.Now() + cfg.Ship.RespawnDelay

	b := components.Body.Get(e).Body
	a.Engine.Unregister(b)
	b.SetVelocity(mgl64.Vec2{})

	if killer != 0 && killer != sd.Owner {
		if k := a.ShipByOwner(killer); k != nil {
			components.Ship.Get(k).Kills++
			a.stats.Kills++
		}
	}
	log.Printf("[arena] Ship %d down (killer %d)", sd.Owner, killer)
}

// ShipByOwner returns the ship entity of owner, or nil.
func (a *Arena) ShipByOwner(owner int) *donburi.Entry {
	var found *donburi.Entry
	a.shipQry.Each(a.World, func(e *donburi.Entry) {
		if found == nil && components.Ship.Get(e).Owner == owner {
			found = e
		}
	})
	return found
}

// respawn brings down ships back at a free spot near their spawn and returns
// taken pickups.
func (a *Arena) respawn() {
	now := a.Engine.Now()
	a.shipQry.Each(a.World, func(e *donburi.Entry) {
		sd := components.Ship.Get(e)
		if !sd.Down || now < sd.RespawnAt {
			return
		}
		b := components.Body.Get(e).Body
		pos := sd.Spawn
		if !a.Engine.IsFreePosition(b, pos) {
			hint := gamemath.NewAABB(pos[0], pos[1], pos[0], pos[1]).Expand(200)
			var ok bool
			if pos, ok = a.Engine.FindFreePosition(b, hint); !ok {
				// Try again next step
				return
			}
		}
		b.SetPosition(pos)
		b.SetVelocity(mgl64.Vec2{})
		if err := a.Engine.Register(b); err != nil {
			log.Printf("[arena] Respawn failed for ship %d: %v", sd.Owner, err)
			return
		}
		health := components.Health.Get(e)
		health.Current = health.Max
		sd.Down = false
		components.Gun.Get(e).ReadyAt = now
	})

	a.pickQry.Each(a.World, func(e *donburi.Entry) {
		pd := components.Pickup.Get(e)
		if pd.Taken && now >= pd.RespawnAt {
			pd.Taken = false
			components.Body.Get(e).Enable()
		}
	})
}
