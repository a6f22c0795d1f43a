package archetypes

import (
	"github.com/automoto/exterminator-wizard/components"
	cfg "github.com/automoto/exterminator-wizard/config"
	"github.com/automoto/exterminator-wizard/shared/netcomponents"
	"github.com/automoto/exterminator-wizard/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Level = newArchetype(
		tags.Level,
		components.Level,
		components.LevelWalls,
	)
	Wall = newArchetype(
		tags.Wall,
		components.WallCollider,
		components.Object,
		netcomponents.NetWallCollider,
	)
	Space = newArchetype(
		components.Space,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Settings = newArchetype(
		components.Settings,
		components.LevelList,
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

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
