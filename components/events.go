package components

import (
	"github.com/automoto/exterminator-wizard/shared/wallgrid"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// LevelSpawnedEvent is published once the level's wall snapshot is complete.
type LevelSpawnedEvent struct {
	Level donburi.Entity
	Name  string
}

var LevelSpawned = events.NewEventType[LevelSpawnedEvent]()

// CollidersBuiltEvent reports the outcome of one owner's rebuild.
type CollidersBuiltEvent struct {
	Owner string
	Stats wallgrid.Stats
}

var CollidersBuilt = events.NewEventType[CollidersBuiltEvent]()
