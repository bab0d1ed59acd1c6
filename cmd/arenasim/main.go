package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/automoto/doomerang-arena/assets"
	"github.com/automoto/doomerang-arena/config"
	"github.com/automoto/doomerang-arena/shared/leveldata"
	"github.com/automoto/doomerang-arena/sim"
)

func main() {
	mapPath := flag.String("map", "", "TMX arena file or directory of arenas (empty = procedural)")
	arenaName := flag.String("arena", "", "Arena name in the -map directory, or a bundled arena when -map is empty")
	ships := flag.Int("ships", config.Arena.DefaultShips, "Number of ships")
	ticks := flag.Int("ticks", 0, "Stop after this many ticks (0 = run until interrupted)")
	tickRate := flag.Int("tickrate", config.Arena.TickRate, "Simulation tick rate (steps per second)")
	seed := flag.Uint64("seed", 0, "Random seed (0 = saved tuning or default)")
	realtime := flag.Bool("realtime", false, "Pace ticks to wall clock time")
	saveTuning := flag.Bool("save-tuning", false, "Save the effective collision tuning and exit")
	flag.Parse()

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
	saved, err := config.LoadTuning()
	if err != nil {
		log.Printf("Warning: Ignoring saved tuning: %v", err)
	}
	config.ApplyTuning(&cc, saved)
	if *seed != 0 {
		cc.Seed = *seed
	}

	if *saveTuning {
		if err := config.SaveTuning(config.CurrentTuning(cc)); err != nil {
			log.Fatalf("Failed to save tuning: %v", err)
		}
		log.Println("Tuning saved")
		return
	}

	arena, err := sim.NewArena(data, cc, *ships)
	if err != nil {
		log.Fatalf("Failed to create arena: %v", err)
	}
	loop := sim.NewGameLoop(arena, *tickRate, *realtime, *ticks, config.Arena.StatsInterval)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("Shutting down arena...")
		loop.Stop()
	}()

	log.Printf("Starting arena %q (%d ships, tick rate: %d/s, seed: %d)", data.Name, *ships, *tickRate, cc.Seed)
	loop.Run()

	s := arena.Stats()
	log.Printf("Finished after %d ticks (%.1fs): %d shots, %d hits, %d kills, %d pickups",
		s.Tick, s.Time, s.Shots, s.Hits, s.Kills, s.Pickups)
}
