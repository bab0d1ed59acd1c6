package collision

import (
	"fmt"
	"math"
	"testing"

	"github.com/automoto/doomerang-arena/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
)

func TestMoveBody_WallBounce(t *testing.T) {
	e, rec := newTestEngine(t, testConfig())
	wall := newWall(5, 50, 15, 150, matHull)
	ship := newShip(1, 100, matHull)
	ship.Restricted = false
	ship.SetVelocity(mgl64.Vec2{100, 0})
	mustRegister(t, e, wall, ship)

	e.MoveBody(ship, 0.1, true)

	// Contact is found within speed*TimeAccuracy of x=5; the rest of the frame
	// is spent travelling back at 90, so the edge ends at 1.9*contact - 10.8.
	slack := 1.9 * 100 * testConfig().TimeAccuracy
	if edge := ship.PrimaryArea().Bounds().Max[0]; edge > -1.3+1e-6 || edge < -1.3-slack-1e-6 {
		t.Errorf("leading edge at %v, want within [%v, -1.3]", edge, -1.3-slack)
	}
	if vx := ship.Velocity()[0]; math.Abs(vx+90) > 1e-6 {
		t.Errorf("vx = %v, want -90", vx)
	}
	if len(rec.contacts) != 1 || rec.contacts[0].stuck || rec.contacts[0].other != wall.PrimaryArea() {
		t.Errorf("contacts = %+v, want one non-stuck wall contact", rec.contacts)
	}
	if len(rec.damage) != 1 || math.Abs(rec.damage[0]-9.5) > 1e-6 {
		t.Errorf("damage = %v, want [9.5]", rec.damage)
	}
	if !ship.PrimaryArea().Registered() {
		t.Errorf("primary area must be registered again after the move")
	}
}

func TestMoveBody_StopsAtWall(t *testing.T) {
	cfg := testConfig()
	e, _ := newTestEngine(t, cfg)
	wall := newWall(5, 50, 15, 150, matSticky)
	ship := newShip(1, 100, matHull)
	ship.SetVelocity(mgl64.Vec2{100, 0})
	mustRegister(t, e, wall, ship)

	e.MoveBody(ship, 0.1, true)

	edge := ship.PrimaryArea().Bounds().Max[0]
	if edge > 5+1e-9 || edge < 5-100*cfg.TimeAccuracy-1e-9 {
		t.Errorf("leading edge at %v, want within %v of the wall", edge, 100*cfg.TimeAccuracy)
	}
	if vx := ship.Velocity()[0]; math.Abs(vx) > 1e-9 {
		t.Errorf("vx = %v, want 0 against an inelastic wall", vx)
	}
}

func TestMoveBody_NoTunneling(t *testing.T) {
	speeds := []float64{50, 500, 3000, 9000}

	for _, speed := range speeds {
		t.Run(fmt.Sprintf("speed %v", speed), func(t *testing.T) {
			e, _ := newTestEngine(t, testConfig())
			wall := newWall(100, 0, 100.5, 200, matHull)
			ship := newShip(50, 100, matHull)
			ship.SetVelocity(mgl64.Vec2{speed, 0})
			mustRegister(t, e, wall, ship)

			for frame := 0; frame < 30; frame++ {
				e.MoveBody(ship, 1.0/60, false)
				if edge := ship.PrimaryArea().Bounds().Max[0]; edge > 100+1e-9 {
					t.Fatalf("speed %v frame %d: ship edge at %v passed the wall", speed, frame, edge)
				}
			}
		})
	}
}

func TestMoveBody_BoundaryContainment(t *testing.T) {
	e, _ := newTestEngine(t, testConfig())
	ship := newShip(10, 100, matHull)
	ship.SetVelocity(mgl64.Vec2{-500, 300})
	mustRegister(t, e, ship)

	inner := e.Config().Boundary.Inner().Expand(1e-9)
	for frame := 0; frame < 60; frame++ {
		e.MoveBody(ship, 1.0/60, true)
		b := ship.PrimaryArea().Bounds()
		if b.Min[0] < inner.Min[0] || b.Min[1] < inner.Min[1] || b.Max[0] > inner.Max[0] || b.Max[1] > inner.Max[1] {
			t.Fatalf("frame %d: ship bounds %v left the world", frame, b)
		}
	}
	if ship.Velocity()[0] != 0 {
		t.Errorf("vx = %v, want 0 after pressing into the left side", ship.Velocity()[0])
	}
	if ship.Dead() {
		t.Errorf("restricted bodies are never removed")
	}
}

func TestMoveBody_ProjectileLeavesWorld(t *testing.T) {
	e, rec := newTestEngine(t, testConfig())
	shot := NewBody(mgl64.Vec2{190, 100}, 0.5)
	shot.Movable = true
	area := NewArea(typeProjectile, gamemath.NewCircle(0.5), matHull)
	area.CannotOverlap = Types(typeWall)
	shot.MustAddArea(area, true)
	shot.SetVelocity(mgl64.Vec2{1000, 0})
	mustRegister(t, e, shot)

	for frame := 0; frame < 10; frame++ {
		e.MoveBody(shot, 1.0/60, true)
	}

	if len(rec.removed) != 1 || rec.removed[0] != shot {
		t.Fatalf("removed = %v, want the projectile exactly once", rec.removed)
	}
	if !shot.Dead() || shot.Registered() {
		t.Errorf("dead = %v registered = %v, want dead and unregistered", shot.Dead(), shot.Registered())
	}
	if got := e.Index().Len(typeProjectile); got != 0 {
		t.Errorf("projectile grid holds %d areas", got)
	}
	if len(e.Bodies()) != 0 {
		t.Errorf("engine still lists %d bodies", len(e.Bodies()))
	}
}

func TestMoveBody_HeadOnExchange(t *testing.T) {
	e, _ := newTestEngine(t, testConfig())
	a := newShip(90, 100, matBouncy)
	b := newShip(110, 100, matBouncy)
	a.SetVelocity(mgl64.Vec2{50, 0})
	b.SetVelocity(mgl64.Vec2{-50, 0})
	mustRegister(t, e, a, b)

	e.MoveBody(a, 0.5, true)

	if got := a.Velocity(); !got.ApproxEqualThreshold(mgl64.Vec2{-50, 0}, 1e-6) {
		t.Errorf("a velocity = %v, want (-50, 0)", got)
	}
	if got := b.Velocity(); !got.ApproxEqualThreshold(mgl64.Vec2{50, 0}, 1e-6) {
		t.Errorf("b velocity = %v, want (50, 0)", got)
	}
	if b.Position() != (mgl64.Vec2{110, 100}) {
		t.Errorf("b must not move during a's move, got %v", b.Position())
	}
	if gamemath.Intersects(a.PrimaryArea().Geometry(), b.PrimaryArea().Geometry()) {
		t.Errorf("a ended overlapping b")
	}
}

func TestMoveBody_KilledBodyDoesNotBlock(t *testing.T) {
	e, rec := newTestEngine(t, testConfig())
	a := newShip(90, 100, matBouncy)
	b := newShip(110, 100, matBouncy)
	a.SetVelocity(mgl64.Vec2{50, 0})
	b.SetVelocity(mgl64.Vec2{-50, 0})
	mustRegister(t, e, a, b)

	b.Kill()
	e.MoveBody(a, 0.5, true)

	if got := a.Velocity(); got != (mgl64.Vec2{50, 0}) {
		t.Errorf("a velocity = %v, want (50, 0)", got)
	}
	if got := a.Position(); !got.ApproxEqualThreshold(mgl64.Vec2{115, 100}, 1e-9) {
		t.Errorf("a position = %v, want (115, 100)", got)
	}
	if got := b.Velocity(); got != (mgl64.Vec2{-50, 0}) {
		t.Errorf("killed body velocity changed to %v", got)
	}
	if len(rec.contacts) != 0 || len(rec.damage) != 0 {
		t.Errorf("contacts %d, damage %v; want none with a killed body", len(rec.contacts), rec.damage)
	}
}

func TestMoveBody_StartInsideWithoutSideEffects(t *testing.T) {
	e, rec := newTestEngine(t, testConfig())
	wall := newWall(90, 90, 110, 110, matHull)
	ship := newShip(100, 100, matHull)
	ship.SetVelocity(mgl64.Vec2{10, 0})
	mustRegister(t, e, wall, ship)

	e.MoveBody(ship, 0.1, false)

	// The starting overlap is ignored for the frame, so the ship keeps going.
	if got := ship.Position(); !got.ApproxEqualThreshold(mgl64.Vec2{101, 100}, 1e-9) {
		t.Errorf("ship at %v, want (101, 100)", got)
	}
	if got := ship.Velocity(); got != (mgl64.Vec2{10, 0}) {
		t.Errorf("ship velocity = %v, want (10, 0)", got)
	}
	if len(rec.contacts) != 0 {
		t.Errorf("contacts = %+v, want none without side effects", rec.contacts)
	}
	if !ship.PrimaryArea().Registered() {
		t.Errorf("primary area must be registered again after the move")
	}
}

func TestMoveBody_WedgedTerminates(t *testing.T) {
	e, rec := newTestEngine(t, testConfig())
	left := newWall(90, 90, 99.5, 110, matHull)
	right := newWall(100.5, 90, 110, 110, matHull)
	ship := newShip(100, 100, matHull)
	ship.SetVelocity(mgl64.Vec2{100, 0})
	mustRegister(t, e, left, right, ship)

	e.MoveBody(ship, 1.0/60, true)

	stuck := 0
	for _, c := range rec.contacts {
		if c.stuck {
			stuck++
		}
	}
	if stuck != 2 {
		t.Errorf("stuck contacts = %d, want 2", stuck)
	}
	if !ship.PrimaryArea().Registered() {
		t.Errorf("wedged body must stay registered")
	}
}

func TestMoveBody_StuckHookKillsBody(t *testing.T) {
	cfg := testConfig()
	killer := &killingHooks{}
	e, err := NewEngine(cfg, killer)
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	wall := newWall(90, 90, 110, 110, matHull)
	ship := newShip(100, 100, matHull)
	ship.SetVelocity(mgl64.Vec2{10, 0})
	mustRegister(t, e, wall, ship)

	e.MoveBody(ship, 1.0/60, true)

	if !ship.Dead() {
		t.Fatalf("hook should have killed the ship")
	}
	if ship.PrimaryArea().Registered() {
		t.Errorf("a body killed mid-move keeps its primary area unregistered")
	}
	if ship.Position() != (mgl64.Vec2{100, 100}) {
		t.Errorf("killed body moved to %v", ship.Position())
	}
}

type killingHooks struct{ NopHooks }

func (killingHooks) Collide(mine, other *Area, stuck bool) {
	if stuck {
		mine.Body().Kill()
	}
}

func TestMoveBody_SkipsImmovableAndDisabled(t *testing.T) {
	e, _ := newTestEngine(t, testConfig())
	wall := newWall(0, 0, 10, 10, matHull)
	wall.SetVelocity(mgl64.Vec2{100, 0})
	ship := newShip(50, 50, matHull)
	ship.SetVelocity(mgl64.Vec2{100, 0})
	mustRegister(t, e, wall, ship)

	ship.Disable()
	e.MoveBody(wall, 0.1, true)
	e.MoveBody(ship, 0.1, true)
	if wall.Position() != (mgl64.Vec2{}) || ship.Position() != (mgl64.Vec2{50, 50}) {
		t.Errorf("immovable or disabled bodies moved: wall %v ship %v", wall.Position(), ship.Position())
	}

	ship.Enable()
	e.MoveBody(ship, 0.1, true)
	if got := ship.Position(); !got.ApproxEqualThreshold(mgl64.Vec2{60, 50}, 1e-9) {
		t.Errorf("enabled ship at %v, want (60, 50)", got)
	}
}

func TestMoveBody_ClampsSpeed(t *testing.T) {
	cfg := testConfig()
	cfg.MaxSpeed = 100
	e, _ := newTestEngine(t, cfg)
	ship := newShip(50, 50, matHull)
	ship.SetVelocity(mgl64.Vec2{300, 400})
	mustRegister(t, e, ship)

	e.MoveBody(ship, 0.1, false)
	if got := ship.Velocity().Len(); math.Abs(got-100) > 1e-9 {
		t.Errorf("speed = %v, want 100", got)
	}
	if got := ship.Position(); !got.ApproxEqualThreshold(mgl64.Vec2{56, 58}, 1e-9) {
		t.Errorf("position = %v, want (56, 58)", got)
	}
}
