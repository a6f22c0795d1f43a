package systems

import (
	"fmt"
	"log"

	"github.com/automoto/exterminator-wizard/components"
	"github.com/automoto/exterminator-wizard/shared/leveldata"
	"github.com/automoto/exterminator-wizard/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// LoadLevel replaces whatever level is loaded with data. The previous
// level's colliders are removed right away; the new ones are built when
// the LevelSpawned event is processed.
func LoadLevel(e *ecs.ECS, data *leveldata.WallData, index int) *donburi.Entry {
	var loaded []*donburi.Entry
	components.Level.Each(e.World, func(entry *donburi.Entry) {
		loaded = append(loaded, entry)
	})
	for _, entry := range loaded {
		UnloadLevel(e, entry)
	}

	log.Printf("[level] loading %s: %dx%d cells, %d wall layers, %d wall cells",
		data.Name, data.Width, data.Height, len(data.Owners), data.TotalCells())
	return factory.CreateLevel(e, data, index)
}

// UnloadLevel removes a level entity and every collider it owns.
func UnloadLevel(e *ecs.ECS, level *donburi.Entry) {
	if level == nil || !level.Valid() {
		return
	}
	for _, owner := range components.LevelWalls.Get(level).Owners {
		removeOwnerColliders(e, owner)
	}
	e.World.Remove(level.Entity())
}

// CycleLevel loads the level delta steps away in the level list, wrapping
// around at both ends.
func CycleLevel(e *ecs.ECS, delta int) error {
	settingsEntry, ok := components.Settings.First(e.World)
	if !ok {
		return fmt.Errorf("cycle level: no settings entity")
	}
	settings := components.Settings.Get(settingsEntry)
	list := components.LevelList.Get(settingsEntry)
	if len(list.Names) == 0 {
		return fmt.Errorf("cycle level: no levels loaded")
	}

	n := len(list.Names)
	index := ((settings.LevelIndex+delta)%n + n) % n
	data, ok := list.Levels[list.Names[index]]
	if !ok {
		return fmt.Errorf("cycle level: %s missing from level list", list.Names[index])
	}

	settings.LevelIndex = index
	LoadLevel(e, data, index)
	return nil
}

// CurrentLevel returns the loaded level, if any.
func CurrentLevel(w donburi.World) (*donburi.Entry, bool) {
	return components.Level.First(w)
}
