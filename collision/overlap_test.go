package collision

import (
	"testing"

	"github.com/automoto/doomerang-arena/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
)

func newShot(x, y float64, owner int) *Body {
	b := NewBody(mgl64.Vec2{x, y}, 0.5)
	b.Movable = true
	b.Owner = owner
	a := NewArea(typeProjectile, gamemath.NewCircle(1), matHull)
	a.CollidesAgainst = Types(typeShip, typeWall)
	a.CannotOverlap = Types(typeShip, typeWall)
	return b.MustAddArea(a, true)
}

func TestForEachOverlapper_ExactGeometry(t *testing.T) {
	e, _ := newTestEngine(t, testConfig())
	ship := newShip(50, 50, matHull)
	// Bounding boxes overlap at the corner, the circle does not.
	shot := newShot(51.9, 51.9, 0)
	mustRegister(t, e, ship, shot)

	if e.ForEachOverlapper(shot.PrimaryArea(), Types(typeShip), nil) {
		t.Errorf("corner bounding box overlap must not count")
	}

	e.Relocate(shot, mgl64.Vec2{51.5, 50})
	if !e.ForEachOverlapper(shot.PrimaryArea(), Types(typeShip), nil) {
		t.Errorf("expected overlap after relocating into the ship")
	}
}

func TestForEachOverlapper_SkipsOwnDisabledAndKilled(t *testing.T) {
	e, _ := newTestEngine(t, testConfig())
	ship := newShip(50, 50, matHull)
	extra := NewArea(typeWall, gamemath.NewRect(2, 2), matHull)
	ship.MustAddArea(extra, false)
	other := newShip(51, 50, matHull)
	mustRegister(t, e, ship, other)

	if e.ForEachOverlapper(ship.PrimaryArea(), Types(typeWall), nil) {
		t.Errorf("areas on the same body must not overlap each other")
	}

	other.Disable()
	if e.ForEachOverlapper(ship.PrimaryArea(), Types(typeShip), nil) {
		t.Errorf("disabled bodies must be skipped")
	}
	other.Enable()
	if !e.ForEachOverlapper(ship.PrimaryArea(), Types(typeShip), nil) {
		t.Errorf("re-enabled body must be found")
	}

	other.Kill()
	if e.ForEachOverlapper(ship.PrimaryArea(), Types(typeShip), nil) {
		t.Errorf("killed bodies must be skipped")
	}
}

func TestForEachOverlapper_ColdExemption(t *testing.T) {
	e, _ := newTestEngine(t, testConfig())
	ship := newShip(50, 50, matHull)
	ship.Owner = 1
	rival := newShip(50.5, 50, matHull)
	rival.Owner = 2
	shot := newShot(50, 50, 1)
	mustRegister(t, e, ship, rival, shot)
	e.SetCold(shot)

	var found []*Area
	e.ForEachOverlapper(shot.PrimaryArea(), Types(typeShip), func(a *Area) Signal {
		found = append(found, a)
		return Continue
	})
	if len(found) != 1 || found[0] != rival.PrimaryArea() {
		t.Errorf("cold shot found %v, want only the rival", found)
	}
	if e.ForEachOverlapper(ship.PrimaryArea(), Types(typeProjectile), nil) {
		t.Errorf("exemption must hold in both directions")
	}

	e.Advance(e.Config().ColdDuration + 0.01)
	if !e.ForEachOverlapper(ship.PrimaryArea(), Types(typeProjectile), nil) {
		t.Errorf("exemption must expire after the cold window")
	}
}

func TestForEachOverlapper_UnownedNeverExempt(t *testing.T) {
	e, _ := newTestEngine(t, testConfig())
	ship := newShip(50, 50, matHull)
	shot := newShot(50, 50, 0)
	mustRegister(t, e, ship, shot)
	e.SetCold(shot)

	if !e.ForEachOverlapper(shot.PrimaryArea(), Types(typeShip), nil) {
		t.Errorf("owner zero must not trigger the cold exemption")
	}
}

func TestForEachOverlapper_StopSpansGrids(t *testing.T) {
	e, _ := newTestEngine(t, testConfig())
	ship := newShip(50, 50, matHull)
	wall := newWall(45, 45, 55, 55, matHull)
	other := newShip(51, 51, matHull)
	mustRegister(t, e, ship, wall, other)

	n := 0
	found := e.ForEachOverlapper(ship.PrimaryArea(), Types(typeShip, typeWall), func(*Area) Signal {
		n++
		return Stop
	})
	if !found || n != 1 {
		t.Errorf("found = %v after %d visits, want one visit", found, n)
	}

	n = 0
	e.ForEachOverlapper(ship.PrimaryArea(), Types(typeShip, typeWall), func(*Area) Signal {
		n++
		return Continue
	})
	if n != 2 {
		t.Errorf("full scan visited %d areas, want 2", n)
	}
}
