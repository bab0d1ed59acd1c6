package sim

import (
	"github.com/automoto/doomerang-arena/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

var moverQuery = donburi.NewQuery(filter.Contains(components.Mover))

// updateMovers advances each sliding wall along its leg. Movers are not
// movable bodies, so they are teleported and ships bounce off them on their
// own move.
func (a *Arena) updateMovers(dt float64) {
	moverQuery.Each(a.World, func(e *donburi.Entry) {
		m := components.Mover.Get(e)
		if m.Tween == nil {
			return
		}
		t, done := m.Tween.Update(float32(dt))
		progress := float64(t)
		if m.Reverse {
			progress = 1 - progress
		}

		b := components.Body.Get(e).Body
		a.Engine.Relocate(b, m.Origin.Add(m.Offset.Mul(progress)))

		if done {
			m.Tween.Reset()
			m.Reverse = !m.Reverse
		}
	})
}
