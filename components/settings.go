package components

import (
	"github.com/automoto/exterminator-wizard/shared/wallgrid"
	"github.com/yohamta/donburi"
)

// SettingsData holds the viewer's toggles
type SettingsData struct {
	Strategy   wallgrid.Strategy
	ShowCells  bool
	LevelIndex int
}

var Settings = donburi.NewComponentType[SettingsData]()
