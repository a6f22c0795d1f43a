package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Overrides is the optional YAML file layered over the built-in defaults.
// Zero values leave the default in place.
//
//	colliders:
//	  cellWidth: 16
//	  cellHeight: 16
//	  strategy: plate
//	  wallLayer: walls
type Overrides struct {
	Colliders ColliderConfig `yaml:"colliders"`
	ShowCells *bool          `yaml:"showCells"`
}

// LoadOverrides reads path and applies it to the global configuration.
// A missing file is not an error.
func LoadOverrides(path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read config overrides: %w", err)
	}
	return ApplyOverrides(data)
}

// ApplyOverrides parses YAML data, validates the merged result and only then
// replaces the globals.
func ApplyOverrides(data []byte) error {
	var o Overrides
	if err := yaml.Unmarshal(data, &o); err != nil {
		return fmt.Errorf("failed to parse config overrides: %w", err)
	}

	merged := Colliders
	if o.Colliders.CellWidth != 0 {
		merged.CellWidth = o.Colliders.CellWidth
	}
	if o.Colliders.CellHeight != 0 {
		merged.CellHeight = o.Colliders.CellHeight
	}
	if o.Colliders.Strategy != "" {
		merged.Strategy = o.Colliders.Strategy
	}
	if o.Colliders.WallLayer != "" {
		merged.WallLayer = o.Colliders.WallLayer
	}
	if o.Colliders.SpaceCellSize != 0 {
		merged.SpaceCellSize = o.Colliders.SpaceCellSize
	}
	if o.Colliders.LevelsDir != "" {
		merged.LevelsDir = o.Colliders.LevelsDir
	}

	if err := merged.Validate(); err != nil {
		return err
	}

	Colliders = merged
	if o.ShowCells != nil {
		Debug.ShowCells = *o.ShowCells
	}
	return nil
}

// Validate checks the collider settings
func (c ColliderConfig) Validate() error {
	if c.CellWidth < 0 || c.CellHeight < 0 {
		return fmt.Errorf("cell size must not be negative, got %vx%v", c.CellWidth, c.CellHeight)
	}
	if c.SpaceCellSize <= 0 {
		return fmt.Errorf("space cell size must be positive, got %d", c.SpaceCellSize)
	}
	if c.Strategy != "plate" && c.Strategy != "naive" {
		return fmt.Errorf("strategy must be plate or naive, got %q", c.Strategy)
	}
	if c.WallLayer == "" {
		return errors.New("wall layer name must not be empty")
	}
	return nil
}
