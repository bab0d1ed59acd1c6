package leveldata

import "math/rand/v2"

// Procedural builds a walled arena with pillars, spawns in the corners, a
// well in the middle and one sliding wall. The same seed gives the same
// arena.
func Procedural(width, height float64, asteroids int, seed uint64) *ArenaData {
	rng := rand.New(rand.NewPCG(seed, seed+1))
	const wall = 32.0

	data := &ArenaData{
		Name:   "procedural",
		Width:  width,
		Height: height,
		Walls: []Rect{
			{X: 0, Y: 0, W: width, H: wall},
			{X: 0, Y: height - wall, W: width, H: wall},
			{X: 0, Y: wall, W: wall, H: height - 2*wall},
			{X: width - wall, Y: wall, W: wall, H: height - 2*wall},
		},
		Spawns: []Point{
			{X: width * 0.15, Y: height * 0.15},
			{X: width * 0.85, Y: height * 0.15},
			{X: width * 0.15, Y: height * 0.85},
			{X: width * 0.85, Y: height * 0.85},
		},
		Wells: []WellSpawn{{X: width / 2, Y: height / 2}},
		Pickups: []PickupSpawn{
			{X: width / 2, Y: height * 0.2},
			{X: width / 2, Y: height * 0.8},
		},
		Movers: []MoverSpawn{{
			Rect: Rect{X: width*0.3 - wall/2, Y: height*0.4 - 2*wall, W: wall, H: 4 * wall},
			DX:   width * 0.4,
		}},
	}

	// Pillars in the four quadrants
	for _, p := range []Point{
		{X: width * 0.3, Y: height * 0.3},
		{X: width * 0.7, Y: height * 0.3},
		{X: width * 0.3, Y: height * 0.7},
		{X: width * 0.7, Y: height * 0.7},
	} {
		data.Walls = append(data.Walls, Rect{X: p.X - wall, Y: p.Y - wall, W: 2 * wall, H: 2 * wall})
	}

	margin := 3 * wall
	for i := 0; i < asteroids; i++ {
		data.Asteroids = append(data.Asteroids, AsteroidSpawn{
			X: margin + rng.Float64()*(width-2*margin),
			Y: margin + rng.Float64()*(height-2*margin),
		})
	}
	return data
}
