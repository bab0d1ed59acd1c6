package leveldata

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// Layer and object group names read from arena maps.
const (
	LayerWalls     = "walls"
	GroupSpawns    = "Spawns"
	GroupAsteroids = "Asteroids"
	GroupPickups   = "Pickups"
	GroupWells     = "Wells"
	GroupMovers    = "Movers"
)

// LoadArena parses a TMX file into arena data. It takes an fs.FS so callers
// can pass embed.FS or os.DirFS.
func LoadArena(fsys fs.FS, tmxPath string) (*ArenaData, error) {
	arenaMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	tileW := float64(arenaMap.TileWidth)
	tileH := float64(arenaMap.TileHeight)
	data := &ArenaData{
		Name:   strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Width:  float64(arenaMap.Width) * tileW,
		Height: float64(arenaMap.Height) * tileH,
	}

	// Solid tiles from the walls layer, merged into horizontal runs
	for _, layer := range arenaMap.Layers {
		if layer.Name != LayerWalls {
			continue
		}
		for y := 0; y < arenaMap.Height; y++ {
			runStart := -1
			for x := 0; x <= arenaMap.Width; x++ {
				solid := x < arenaMap.Width && !layer.Tiles[y*arenaMap.Width+x].IsNil()
				switch {
				case solid && runStart < 0:
					runStart = x
				case !solid && runStart >= 0:
					data.Walls = append(data.Walls, Rect{
						X: float64(runStart) * tileW,
						Y: float64(y) * tileH,
						W: float64(x-runStart) * tileW,
						H: tileH,
					})
					runStart = -1
				}
			}
		}
		break
	}

	for _, og := range arenaMap.ObjectGroups {
		switch og.Name {
		case GroupSpawns:
			for _, o := range og.Objects {
				data.Spawns = append(data.Spawns, Point{X: o.X, Y: o.Y})
			}
		case GroupAsteroids:
			for _, o := range og.Objects {
				data.Asteroids = append(data.Asteroids, AsteroidSpawn{
					X:      o.X,
					Y:      o.Y,
					Radius: o.Properties.GetFloat("radius"),
				})
			}
		case GroupPickups:
			for _, o := range og.Objects {
				data.Pickups = append(data.Pickups, PickupSpawn{
					X:    o.X,
					Y:    o.Y,
					Heal: o.Properties.GetFloat("heal"),
				})
			}
		case GroupWells:
			for _, o := range og.Objects {
				data.Wells = append(data.Wells, WellSpawn{
					X:        o.X,
					Y:        o.Y,
					Radius:   o.Properties.GetFloat("radius"),
					Strength: o.Properties.GetFloat("strength"),
				})
			}
		case GroupMovers:
			for _, o := range og.Objects {
				if o.Width <= 0 || o.Height <= 0 {
					return nil, fmt.Errorf("mover %d in %s has no size", o.ID, tmxPath)
				}
				data.Movers = append(data.Movers, MoverSpawn{
					Rect:     Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height},
					DX:       o.Properties.GetFloat("dx"),
					DY:       o.Properties.GetFloat("dy"),
					Duration: o.Properties.GetFloat("duration"),
				})
			}
		}
	}

	// Sort spawns left-to-right for consistent assignment
	sort.Slice(data.Spawns, func(i, j int) bool {
		return data.Spawns[i].X < data.Spawns[j].X
	})

	return data, nil
}

// LoadAllArenas discovers all .tmx files in dir within fsys, loads each, and
// returns a map keyed by stem name plus a sorted list of names.
func LoadAllArenas(fsys fs.FS, dir string) (map[string]*ArenaData, []string, error) {
	pattern := dir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", dir)
	}

	arenas := make(map[string]*ArenaData, len(matches))
	names := make([]string, 0, len(matches))

	for _, path := range matches {
		data, err := LoadArena(fsys, path)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		arenas[data.Name] = data
		names = append(names, data.Name)
	}

	sort.Strings(names)
	return arenas, names, nil
}
