package systems

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/automoto/exterminator-wizard/components"
	"github.com/automoto/exterminator-wizard/shared/wallgrid"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi"
)

// SavedSettings represents the viewer settings stored on disk
type SavedSettings struct {
	Strategy   string `json:"strategy"`
	ShowCells  bool   `json:"showCells"`
	LevelIndex int    `json:"levelIndex"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "exterminator_wizard",
	})
	if err != nil {
		log.Printf("[persistence] warning: could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSettings loads settings from disk. It returns nil, nil when nothing
// was saved yet or persistence is unavailable.
func LoadSettings() (*SavedSettings, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("settings")
	if err != nil {
		log.Printf("[persistence] warning: could not load settings: %v", err)
		return nil, nil
	}
	if data == nil {
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("[persistence] warning: could not parse saved settings: %v", err)
		return nil, err
	}

	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("serialize settings: %w", err)
	}

	if err := gdataManager.SaveItem("settings", data); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

// SnapshotSettings converts the live settings component to its saved form.
func SnapshotSettings(s *components.SettingsData) *SavedSettings {
	saved := &SavedSettings{
		ShowCells:  s.ShowCells,
		LevelIndex: s.LevelIndex,
	}
	if s.Strategy != nil {
		saved.Strategy = s.Strategy.Name()
	}
	return saved
}

// SaveCurrentSettings saves the settings entity of w, if there is one.
func SaveCurrentSettings(w donburi.World) error {
	entry, ok := components.Settings.First(w)
	if !ok {
		return nil
	}
	return SaveSettings(SnapshotSettings(components.Settings.Get(entry)))
}

// ApplySavedSettings copies saved values onto the settings entity. Values
// that no longer make sense (unknown strategy, level index out of range)
// are ignored.
func ApplySavedSettings(w donburi.World, saved *SavedSettings) {
	if saved == nil {
		return
	}
	entry, ok := components.Settings.First(w)
	if !ok {
		return
	}
	settings := components.Settings.Get(entry)

	if strategy, err := wallgrid.StrategyByName(saved.Strategy); err == nil {
		settings.Strategy = strategy
	}
	settings.ShowCells = saved.ShowCells

	list := components.LevelList.Get(entry)
	if saved.LevelIndex >= 0 && saved.LevelIndex < len(list.Names) {
		settings.LevelIndex = saved.LevelIndex
	}
}
