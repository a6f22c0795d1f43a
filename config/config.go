package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the only render layer used by the viewer.
const Default ecs.LayerID = iota

// ColliderConfig contains wall collider build settings
type ColliderConfig struct {
	// Grid cell size in world units (uniform across the map). Zero uses the
	// map's tile size.
	CellWidth  float64 `yaml:"cellWidth"`
	CellHeight float64 `yaml:"cellHeight"`

	// Strategy name: "plate" or "naive"
	Strategy string `yaml:"strategy"`

	// Tile layer treated as walls when it has no "walls" property
	WallLayer string `yaml:"wallLayer"`

	// Collision space cell size used for broadphase
	SpaceCellSize int `yaml:"spaceCellSize"`

	// Directory holding the .tmx levels inside the level filesystem
	LevelsDir string `yaml:"levelsDir"`
}

// ViewerConfig contains debug viewer colours and camera behaviour
type ViewerConfig struct {
	BackgroundColor color.RGBA
	CellColor       color.RGBA
	PlateColor      color.RGBA // collider outline for the plate strategy
	NaiveColor      color.RGBA // collider outline for the naive strategy
	HUDTextColor    color.RGBA

	PanDuration float32 // seconds for the camera to pan to a newly loaded level
	Zoom        float64
	HUDMargin   int
	HUDFontSize float64
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	ShowCells bool // Draw the occupied cells under the colliders
}

// Config holds general window configuration
type Config struct {
	Width  int
	Height int
	Title  string
}

// Global configuration instances
var C *Config
var Colliders ColliderConfig
var Viewer ViewerConfig
var Debug DebugConfig

func init() {
	C = &Config{
		Width:  1280,
		Height: 720,
		Title:  "Exterminator Wizard - wall colliders",
	}

	Colliders = ColliderConfig{
		CellWidth:     0,
		CellHeight:    0,
		Strategy:      "plate",
		WallLayer:     "walls",
		SpaceCellSize: 16,
		LevelsDir:     "levels",
	}

	Viewer = ViewerConfig{
		BackgroundColor: color.RGBA{R: 20, G: 20, B: 28, A: 255},
		CellColor:       color.RGBA{R: 70, G: 70, B: 80, A: 255},
		PlateColor:      color.RGBA{R: 0, G: 255, B: 255, A: 255}, // Cyan
		NaiveColor:      color.RGBA{R: 255, G: 160, B: 0, A: 255}, // Orange
		HUDTextColor:    color.RGBA{R: 255, G: 255, B: 255, A: 255},
		PanDuration:     0.4,
		Zoom:            2.0,
		HUDMargin:       10,
		HUDFontSize:     14,
	}

	Debug = DebugConfig{
		ShowCells: true,
	}
}
