package systems

import (
	"log"

	"github.com/automoto/exterminator-wizard/components"
	"github.com/automoto/exterminator-wizard/shared/wallgrid"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// UpdateInput maps viewer keys to actions.
//
//	Tab  toggle collider strategy
//	N/P  next / previous level
//	F1   toggle cell drawing
func UpdateInput(e *ecs.ECS) {
	changed := false

	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		ToggleStrategy(e)
		changed = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		if err := CycleLevel(e, 1); err != nil {
			log.Printf("[input] %v", err)
		}
		changed = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		if err := CycleLevel(e, -1); err != nil {
			log.Printf("[input] %v", err)
		}
		changed = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		ToggleCells(e)
		changed = true
	}

	if changed {
		if err := SaveCurrentSettings(e.World); err != nil {
			log.Printf("[persistence] warning: %v", err)
		}
	}
}

// ToggleStrategy switches to the next strategy and rebuilds all colliders.
func ToggleStrategy(e *ecs.ECS) {
	entry, ok := components.Settings.First(e.World)
	if !ok {
		return
	}
	settings := components.Settings.Get(entry)
	settings.Strategy = wallgrid.Next(CurrentStrategy(e.World))
	log.Printf("[input] strategy -> %s", settings.Strategy.Name())
	RebuildAll(e)
}

func ToggleCells(e *ecs.ECS) {
	entry, ok := components.Settings.First(e.World)
	if !ok {
		return
	}
	settings := components.Settings.Get(entry)
	settings.ShowCells = !settings.ShowCells
}
