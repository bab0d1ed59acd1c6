package main

import (
	"flag"
	"log"

	"github.com/automoto/doomerang-arena/assets"
	"github.com/automoto/doomerang-arena/config"
	"github.com/automoto/doomerang-arena/scenes"
	"github.com/automoto/doomerang-arena/shared/leveldata"
	"github.com/automoto/doomerang-arena/sim"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene Scene
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.Viewer.ScreenWidth, config.Viewer.ScreenHeight
}

func main() {
	mapPath := flag.String("map", "", "TMX arena file or directory of arenas (empty = procedural)")
	arenaName := flag.String("arena", "", "Arena name in the -map directory, or a bundled arena when -map is empty")
	ships := flag.Int("ships", config.Arena.DefaultShips, "Number of ships")
	seed := flag.Uint64("seed", 0, "Random seed (0 = saved tuning or default)")
	cells := flag.Bool("cells", config.Viewer.ShowCells, "Draw the spatial grid")
	flag.Parse()

	// Initialize persistence and load saved tuning
	if err := config.InitTuning("doomerang-arena"); err != nil {
		log.Printf("Warning: Could not initialize tuning store: %v", err)
	}

	var data *leveldata.ArenaData
	var err error
	switch {
	case *mapPath != "":
		data, err = sim.LoadArenaPath(*mapPath, *arenaName)
	case *arenaName != "":
		data, err = assets.Arena(*arenaName)
	default:
		s := config.Arena.Seed
		if *seed != 0 {
			s = *seed
		}
		data = leveldata.Procedural(config.Arena.Width, config.Arena.Height, config.Asteroid.Count, s)
	}
	if err != nil {
		log.Fatalf("Failed to load arena: %v", err)
	}

	cc := config.Collision(data.Width, data.Height)
	if saved, err := config.LoadTuning(); err == nil && saved != nil {
		config.ApplyTuning(&cc, saved)
	}
	if *seed != 0 {
		cc.Seed = *seed
	}

	arena, err := sim.NewArena(data, cc, *ships)
	if err != nil {
		log.Fatalf("Failed to create arena: %v", err)
	}
	config.Viewer.ShowCells = *cells

	ebiten.SetWindowSize(config.Viewer.ScreenWidth, config.Viewer.ScreenHeight)
	ebiten.SetWindowTitle("Doomerang Arena")
	ebiten.SetTPS(config.Arena.TickRate)

	if err := ebiten.RunGame(&Game{scene: scenes.NewArenaScene(arena)}); err != nil {
		log.Fatal(err)
	}
}
