package archetypes

import (
	"github.com/automoto/doomerang-arena/components"
	"github.com/automoto/doomerang-arena/tags"
	"github.com/yohamta/donburi"
)

var (
	Ship = newArchetype(
		tags.Ship,
		components.Ship,
		components.Body,
		components.Health,
		components.Gun,
		components.Pilot,
	)
	Projectile = newArchetype(
		tags.Projectile,
		components.Projectile,
		components.Body,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Body,
	)
	Mover = newArchetype(
		tags.Wall,
		components.Body,
		components.Mover,
	)
	Asteroid = newArchetype(
		tags.Asteroid,
		components.Body,
		components.Health,
	)
	Pickup = newArchetype(
		tags.Pickup,
		components.Pickup,
		components.Body,
	)
	Well = newArchetype(
		tags.Well,
		components.Body,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(world donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	all := append(append([]donburi.IComponentType(nil), a.components...), cs...)
	return world.Entry(world.Create(all...))
}
