package systems

import (
	"image/color"
	"math"

	"github.com/automoto/doomerang-arena/collision"
	cfg "github.com/automoto/doomerang-arena/config"
	"github.com/automoto/doomerang-arena/shared/gamemath"
	"github.com/automoto/doomerang-arena/sim"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"
)

// View maps world coordinates onto the screen, fitting the whole world with
// its outer margin.
type View struct {
	Scale float64
	OffX  float64
	OffY  float64
}

// NewView fits a world of the given size and margin into the screen.
func NewView(b collision.Boundary, screenW, screenH int) View {
	outer := b.Outer()
	scale := math.Min(float64(screenW)/outer.Width(), float64(screenH)/outer.Height())
	return View{
		Scale: scale,
		OffX:  (float64(screenW)-outer.Width()*scale)/2 - outer.Min[0]*scale,
		OffY:  (float64(screenH)-outer.Height()*scale)/2 - outer.Min[1]*scale,
	}
}

// Point converts a world position to screen pixels.
func (v View) Point(p mgl64.Vec2) (float32, float32) {
	return float32(p[0]*v.Scale + v.OffX), float32(p[1]*v.Scale + v.OffY)
}

func shipColor(owner int) color.RGBA {
	colors := cfg.Viewer.ShipColors
	if owner <= 0 || len(colors) == 0 {
		return colornames.White
	}
	return colors[(owner-1)%len(colors)]
}

func areaColor(a *collision.Area) color.Color {
	switch a.Type {
	case cfg.AreaShip:
		return shipColor(a.Body().Owner)
	case cfg.AreaProjectile:
		return colornames.Yellow
	case cfg.AreaWall:
		return cfg.Viewer.WallColor
	case cfg.AreaAsteroid:
		return colornames.Sandybrown
	case cfg.AreaReceptor:
		return colornames.Lime
	case cfg.AreaForce:
		return colornames.Mediumpurple
	}
	return colornames.White
}

// DrawArena outlines every registered area and the world boundary.
func DrawArena(screen *ebiten.Image, arena *sim.Arena, v View) {
	arena.Lock()
	defer arena.Unlock()

	b := arena.Engine.Config().Boundary
	inner := b.Inner()
	x0, y0 := v.Point(inner.Min)
	x1, y1 := v.Point(inner.Max)
	vector.StrokeRect(screen, x0, y0, x1-x0, y1-y0, 1, colornames.Dimgray, false)

	for _, body := range arena.Engine.Bodies() {
		if body.Disabled() {
			continue
		}
		for _, a := range body.Areas() {
			drawShape(screen, a.Geometry(), areaColor(a), v)
		}
		if body.Owner != 0 && body.PrimaryArea() != nil && body.PrimaryArea().Type == cfg.AreaShip {
			drawHeading(screen, body, v)
		}
	}
}

func drawShape(screen *ebiten.Image, s gamemath.Shape, c color.Color, v View) {
	switch shape := s.(type) {
	case *gamemath.Circle:
		cx, cy := v.Point(shape.Center)
		vector.StrokeCircle(screen, cx, cy, float32(shape.Radius*v.Scale), 1, c, true)
	case *gamemath.Polygon:
		n := len(shape.Points)
		for i := 0; i < n; i++ {
			ax, ay := v.Point(shape.Points[i])
			bx, by := v.Point(shape.Points[(i+1)%n])
			vector.StrokeLine(screen, ax, ay, bx, by, 1, c, true)
		}
	}
}

func drawHeading(screen *ebiten.Image, body *collision.Body, v View) {
	dir := mgl64.Vec2{math.Cos(body.Rotation()), math.Sin(body.Rotation())}
	ax, ay := v.Point(body.Position())
	bx, by := v.Point(body.Position().Add(dir.Mul(cfg.Ship.GunOffset)))
	vector.StrokeLine(screen, ax, ay, bx, by, 1, colornames.White, true)
}
