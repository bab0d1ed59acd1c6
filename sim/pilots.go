package sim

import (
	"math"

	"github.com/automoto/doomerang-arena/components"
	cfg "github.com/automoto/doomerang-arena/config"
	"github.com/automoto/doomerang-arena/shared/gamemath"
	"github.com/yohamta/donburi"
)

const (
	pilotTurnGain   = 2.0
	pilotThrustCone = 0.6
	pilotFireCone   = 0.15
	pilotStandOff   = 150.0
)

// wrapAngle maps an angle into [-pi, pi).
func wrapAngle(a float64) float64 {
	a = math.Mod(a+math.Pi, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a - math.Pi
}

// updatePilots steers every live ship at the nearest other live ship. Targets
// are picked again every ReplanEvery seconds or when the old one goes down.
func (a *Arena) updatePilots() {
	now := a.Engine.Now()

	type shipPos struct {
		entity donburi.Entity
		owner  int
		x, y   float64
	}
	var live []shipPos
	a.shipQry.Each(a.World, func(e *donburi.Entry) {
		sd := components.Ship.Get(e)
		if sd.Down {
			return
		}
		p := components.Body.Get(e).Position()
		live = append(live, shipPos{entity: e.Entity(), owner: sd.Owner, x: p[0], y: p[1]})
	})

	a.shipQry.Each(a.World, func(e *donburi.Entry) {
		sd := components.Ship.Get(e)
		pilot := components.Pilot.Get(e)
		if sd.Down {
			*pilot = components.PilotData{}
			return
		}
		if a.Manual != 0 && sd.Owner == a.Manual {
			return
		}
		b := components.Body.Get(e).Body
		pos := b.Position()

		targetAlive := false
		if pilot.HasTarget && a.World.Valid(pilot.Target) {
			targetAlive = !components.Ship.Get(a.World.Entry(pilot.Target)).Down
		}
		if !targetAlive || now >= pilot.ReplanAt {
			pilot.HasTarget = false
			best := math.Inf(1)
			for _, o := range live {
				if o.owner == sd.Owner {
					continue
				}
				d := math.Hypot(o.x-pos[0], o.y-pos[1])
				if d < best {
					best = d
					pilot.Target = o.entity
					pilot.HasTarget = true
				}
			}
			pilot.ReplanAt = now + cfg.Ship.ReplanEvery
		}

		if !pilot.HasTarget {
			// Nobody to chase, drift in a slow circle
			pilot.Turn = 0.3
			pilot.Thrust = true
			pilot.Fire = false
			return
		}

		tp := components.Body.Get(a.World.Entry(pilot.Target)).Position()
		delta := tp.Sub(pos)
		dist := delta.Len()
		jitter := (a.rng.Float64()*2 - 1) * cfg.Ship.AimJitter
		diff := wrapAngle(math.Atan2(delta[1], delta[0]) + jitter - b.Rotation())

		pilot.Turn = gamemath.ClampFloat(diff*pilotTurnGain, -1, 1)
		pilot.Thrust = math.Abs(diff) < pilotThrustCone && dist > pilotStandOff
		pilot.Fire = math.Abs(diff) < pilotFireCone && dist < cfg.Ship.FireRange
	})
}
