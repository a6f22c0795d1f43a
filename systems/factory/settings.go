package factory

import (
	"log"

	"github.com/automoto/exterminator-wizard/archetypes"
	"github.com/automoto/exterminator-wizard/components"
	"github.com/automoto/exterminator-wizard/config"
	"github.com/automoto/exterminator-wizard/shared/wallgrid"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSettings spawns the viewer settings entity from the configured
// defaults. An unknown strategy name falls back to plate merging.
func CreateSettings(ecs *ecs.ECS) *donburi.Entry {
	strategy, err := wallgrid.StrategyByName(config.Colliders.Strategy)
	if err != nil {
		log.Printf("[settings] %v, using %s", err, wallgrid.StrategyPlate)
		strategy = wallgrid.PlateMerge{}
	}

	settings := archetypes.Settings.Spawn(ecs)
	components.Settings.SetValue(settings, components.SettingsData{
		Strategy:  strategy,
		ShowCells: config.Debug.ShowCells,
	})
	return settings
}
