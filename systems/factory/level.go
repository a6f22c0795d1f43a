package factory

import (
	"github.com/automoto/exterminator-wizard/archetypes"
	"github.com/automoto/exterminator-wizard/components"
	"github.com/automoto/exterminator-wizard/config"
	"github.com/automoto/exterminator-wizard/shared/leveldata"
	"github.com/automoto/exterminator-wizard/shared/wallgrid"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel spawns the level entity holding the wall snapshot of data and
// publishes LevelSpawned. Colliders are built when the event is processed.
func CreateLevel(ecs *ecs.ECS, data *leveldata.WallData, index int) *donburi.Entry {
	level := archetypes.Level.Spawn(ecs)

	components.Level.SetValue(level, components.LevelData{
		Name:   data.Name,
		Index:  index,
		Width:  data.Width,
		Height: data.Height,
		Cell:   data.CellSize(config.Colliders.CellWidth, config.Colliders.CellHeight),
	})

	walls := components.LevelWallsData{
		Owners: make([]string, 0, len(data.Owners)),
		Walls:  make(map[string]*wallgrid.OccupancySet, len(data.Owners)),
		Stats:  make(map[string]wallgrid.Stats, len(data.Owners)),
	}
	for _, owner := range data.Owners {
		walls.Owners = append(walls.Owners, owner.Key)
		walls.Walls[owner.Key] = owner.Walls
	}
	components.LevelWalls.SetValue(level, walls)

	components.LevelSpawned.Publish(ecs.World, components.LevelSpawnedEvent{
		Level: level.Entity(),
		Name:  data.Name,
	})

	return level
}
