package assets

import (
	"embed"
	"fmt"

	"github.com/automoto/doomerang-arena/shared/leveldata"
)

//go:embed all:arenas
var arenaFS embed.FS

const arenaDir = "arenas"

// Arenas loads every arena map bundled with the binary and returns them keyed
// by name, plus the names in sorted order.
func Arenas() (map[string]*leveldata.ArenaData, []string, error) {
	return leveldata.LoadAllArenas(arenaFS, arenaDir)
}

// Arena returns the bundled arena with the given name. An empty name picks
// the first arena in sorted order.
func Arena(name string) (*leveldata.ArenaData, error) {
	arenas, names, err := Arenas()
	if err != nil {
		return nil, err
	}
	if name == "" {
		return arenas[names[0]], nil
	}
	data, ok := arenas[name]
	if !ok {
		return nil, fmt.Errorf("unknown arena %q (have %v)", name, names)
	}
	return data, nil
}
