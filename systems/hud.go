package systems

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/automoto/doomerang-arena/components"
	"github.com/automoto/doomerang-arena/sim"
	"github.com/automoto/doomerang-arena/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
)

const (
	hudBarWidth  = 80
	hudBarHeight = 6
	hudMargin    = 10
	hudLine      = 16
)

// DrawHUD prints the arena counters and one health bar per ship.
func DrawHUD(screen *ebiten.Image, arena *sim.Arena, paused bool) {
	s := arena.Stats()

	arena.Lock()
	defer arena.Unlock()

	var b strings.Builder
	fmt.Fprintf(&b, "%s  t=%.1fs  tick=%d  bodies=%d", arena.Data.Name, s.Time, s.Tick, s.Bodies)
	if paused {
		b.WriteString("  [paused]")
	}
	fmt.Fprintf(&b, "\nshots=%d hits=%d kills=%d pickups=%d asteroids=%d removed=%d",
		s.Shots, s.Hits, s.Kills, s.Pickups, s.Asteroids, s.Removed)
	if arena.Manual != 0 {
		fmt.Fprintf(&b, "\nflying ship %d", arena.Manual)
	}
	ebitenutil.DebugPrintAt(screen, b.String(), hudMargin, hudMargin)

	y := hudMargin + 4*hudLine
	tags.Ship.Each(arena.World, func(e *donburi.Entry) {
		sd := components.Ship.Get(e)
		hp := components.Health.Get(e)

		label := fmt.Sprintf("ship %d  k%d d%d", sd.Owner, sd.Kills, sd.Deaths)
		if sd.Down {
			label += "  down"
		}
		ebitenutil.DebugPrintAt(screen, label, hudMargin, y)

		barX := float32(hudMargin + 130)
		barY := float32(y + 5)
		vector.FillRect(screen, barX, barY, hudBarWidth, hudBarHeight, color.RGBA{40, 40, 40, 255}, false)
		ratio := float32(0)
		if hp.Max > 0 {
			ratio = float32(hp.Current / hp.Max)
		}
		vector.FillRect(screen, barX, barY, hudBarWidth*ratio, hudBarHeight, shipColor(sd.Owner), false)
		y += hudLine
	})
}
