package scenes

import (
	"image/color"

	cfg "github.com/automoto/doomerang-arena/config"
	"github.com/automoto/doomerang-arena/sim"
	"github.com/automoto/doomerang-arena/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

// ArenaScene runs an arena at the display rate and draws it.
type ArenaScene struct {
	arena  *sim.Arena
	input  systems.Input
	view   systems.View
	paused bool
	cells  bool
}

func NewArenaScene(arena *sim.Arena) *ArenaScene {
	return &ArenaScene{
		arena: arena,
		view:  systems.NewView(arena.Engine.Config().Boundary, cfg.Viewer.ScreenWidth, cfg.Viewer.ScreenHeight),
		cells: cfg.Viewer.ShowCells,
	}
}

func (as *ArenaScene) Update() {
	systems.UpdateInput(&as.input)

	if as.input.Action(systems.ActionPause).JustPressed {
		as.paused = !as.paused
	}
	if as.input.Action(systems.ActionToggleCells).JustPressed {
		as.cells = !as.cells
	}
	if as.input.Action(systems.ActionTakeControl).JustPressed {
		as.arena.Lock()
		if as.arena.Manual == 0 {
			as.arena.Manual = 1
		} else {
			as.arena.Manual = 0
		}
		as.arena.Unlock()
	}

	systems.UpdateManualPilot(as.arena, &as.input)

	if !as.paused || as.input.Action(systems.ActionStep).JustPressed {
		as.arena.Step(1 / float64(ebiten.TPS()))
	}
}

func (as *ArenaScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if as.cells {
		systems.DrawCells(screen, as.arena, as.view)
	}
	systems.DrawArena(screen, as.arena, as.view)
	systems.DrawHUD(screen, as.arena, as.paused)
}
