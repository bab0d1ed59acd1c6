package systems

import (
	"image/color"

	cfg "github.com/automoto/doomerang-arena/config"
	"github.com/automoto/doomerang-arena/sim"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// DrawCells draws the ship grid and marks occupied cells of every grid.
func DrawCells(screen *ebiten.Image, arena *sim.Arena, v View) {
	arena.Lock()
	defer arena.Unlock()

	ix := arena.Engine.Index()
	l, ok := ix.Layout(cfg.AreaShip)
	if !ok {
		return
	}

	lineColor := color.RGBA{40, 40, 60, 255}
	for c := 0; c <= l.Cols; c++ {
		x := l.Origin[0] + float64(c)*l.CellW
		ax, ay := v.Point(mgl64.Vec2{x, l.Origin[1]})
		bx, by := v.Point(mgl64.Vec2{x, l.Origin[1] + float64(l.Rows)*l.CellH})
		vector.StrokeLine(screen, ax, ay, bx, by, 1, lineColor, false)
	}
	for r := 0; r <= l.Rows; r++ {
		y := l.Origin[1] + float64(r)*l.CellH
		ax, ay := v.Point(mgl64.Vec2{l.Origin[0], y})
		bx, by := v.Point(mgl64.Vec2{l.Origin[0] + float64(l.Cols)*l.CellW, y})
		vector.StrokeLine(screen, ax, ay, bx, by, 1, lineColor, false)
	}

	// Bounds of every indexed area
	boxColor := color.RGBA{0, 255, 255, 90}
	for _, body := range arena.Engine.Bodies() {
		for _, a := range body.Areas() {
			if !a.Registered() {
				continue
			}
			box := a.Bounds()
			x0, y0 := v.Point(box.Min)
			x1, y1 := v.Point(box.Max)
			vector.StrokeRect(screen, x0, y0, x1-x0, y1-y0, 1, boxColor, false)
		}
	}
}
