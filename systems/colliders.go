package systems

import (
	"errors"
	"fmt"
	"log"

	"github.com/automoto/exterminator-wizard/components"
	"github.com/automoto/exterminator-wizard/config"
	"github.com/automoto/exterminator-wizard/shared/wallgrid"
	"github.com/automoto/exterminator-wizard/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/events"
)

// ErrMissingOwner is returned when no loaded level holds the requested owner.
var ErrMissingOwner = errors.New("no level owns these walls")

// RegisterLevelHandlers subscribes the collider rebuild to level loads.
// Call once per world, before the first level is created.
func RegisterLevelHandlers(e *ecs.ECS) {
	components.LevelSpawned.Subscribe(e.World, func(w donburi.World, ev components.LevelSpawnedEvent) {
		onLevelSpawned(e, ev)
	})
}

// UpdateLevelEvents drains the event queues once per tick.
func UpdateLevelEvents(e *ecs.ECS) {
	events.ProcessAllEvents(e.World)
}

func onLevelSpawned(e *ecs.ECS, ev components.LevelSpawnedEvent) {
	// The level may have been replaced before the queue was drained.
	if !e.World.Valid(ev.Level) {
		log.Printf("[colliders] warning: level %q spawned without a live entity, no colliders built", ev.Name)
		return
	}
	entry := e.World.Entry(ev.Level)
	if components.Level.Get(entry).Name != ev.Name {
		log.Printf("[colliders] warning: level %q was replaced before its colliders were built", ev.Name)
		return
	}
	walls := components.LevelWalls.Get(entry)
	for _, owner := range walls.Owners {
		if _, err := RebuildColliders(e, owner); err != nil {
			log.Printf("[colliders] warning: %v", err)
		}
	}
}

// findOwner returns the level entry whose wall snapshot contains owner.
func findOwner(w donburi.World, owner string) (*donburi.Entry, *wallgrid.OccupancySet, bool) {
	var (
		found *donburi.Entry
		set   *wallgrid.OccupancySet
	)
	components.LevelWalls.Each(w, func(entry *donburi.Entry) {
		if found != nil {
			return
		}
		if s, ok := components.LevelWalls.Get(entry).Walls[owner]; ok {
			found, set = entry, s
		}
	})
	return found, set, found != nil
}

// CurrentStrategy is the viewer's selected strategy, or the configured one
// when no settings entity exists.
func CurrentStrategy(w donburi.World) wallgrid.Strategy {
	if entry, ok := components.Settings.First(w); ok {
		if s := components.Settings.Get(entry).Strategy; s != nil {
			return s
		}
	}
	if s, err := wallgrid.StrategyByName(config.Colliders.Strategy); err == nil {
		return s
	}
	return wallgrid.PlateMerge{}
}

// RebuildColliders replaces every wall collider of owner with a fresh build
// from the owner's current snapshot.
func RebuildColliders(e *ecs.ECS, owner string) (wallgrid.Stats, error) {
	levelEntry, set, ok := findOwner(e.World, owner)
	if !ok {
		return wallgrid.Stats{}, fmt.Errorf("rebuild %s: %w", owner, ErrMissingOwner)
	}
	level := components.Level.Get(levelEntry)
	strategy := CurrentStrategy(e.World)

	removeOwnerColliders(e, owner)

	stats := wallgrid.Stats{Strategy: strategy.Name(), Cells: set.Len()}
	if !set.Valid() {
		log.Printf("[colliders] warning: %s has invalid bounds %dx%d, skipping", owner, set.Width, set.Height)
	} else {
		rects, colliders := wallgrid.BuildColliders(strategy, set, level.Cell, level.Anchor)
		for i, r := range rects {
			factory.CreateWallCollider(e, levelEntry.Entity(), owner, r, colliders[i])
		}
		stats.Colliders = len(colliders)
		log.Printf("[colliders] %s: built %d (from %d) colliders via %s method",
			owner, stats.Colliders, stats.Cells, stats.Strategy)
	}

	walls := components.LevelWalls.Get(levelEntry)
	if walls.Stats == nil {
		walls.Stats = make(map[string]wallgrid.Stats)
	}
	walls.Stats[owner] = stats
	components.CollidersBuilt.Publish(e.World, components.CollidersBuiltEvent{
		Owner: owner,
		Stats: stats,
	})
	return stats, nil
}

// RebuildAll rebuilds every owner of every loaded level, e.g. after the
// strategy changed.
func RebuildAll(e *ecs.ECS) {
	var owners []string
	components.LevelWalls.Each(e.World, func(entry *donburi.Entry) {
		owners = append(owners, components.LevelWalls.Get(entry).Owners...)
	})
	for _, owner := range owners {
		if _, err := RebuildColliders(e, owner); err != nil {
			log.Printf("[colliders] warning: %v", err)
		}
	}
}

func removeOwnerColliders(e *ecs.ECS, owner string) {
	var stale []*donburi.Entry
	components.WallCollider.Each(e.World, func(entry *donburi.Entry) {
		if components.WallCollider.Get(entry).Owner == owner {
			stale = append(stale, entry)
		}
	})

	spaceEntry, hasSpace := components.Space.First(e.World)
	for _, entry := range stale {
		if hasSpace {
			if obj := components.Object.Get(entry); obj != nil && obj.Object != nil {
				components.Space.Get(spaceEntry).Remove(obj.Object)
			}
		}
		e.World.Remove(entry.Entity())
	}
}

// CountColliders returns how many wall colliders owner currently has.
func CountColliders(w donburi.World, owner string) int {
	n := 0
	components.WallCollider.Each(w, func(entry *donburi.Entry) {
		if components.WallCollider.Get(entry).Owner == owner {
			n++
		}
	})
	return n
}

// InWall reports whether coord is blocked for owner. Unknown owners and
// coordinates outside the level count as walls.
func InWall(w donburi.World, owner string, coord wallgrid.GridCoord) bool {
	_, set, ok := findOwner(w, owner)
	if !ok {
		return true
	}
	return set.InWall(coord)
}
