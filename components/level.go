package components

import (
	"github.com/automoto/exterminator-wizard/shared/leveldata"
	"github.com/automoto/exterminator-wizard/shared/wallgrid"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type LevelData struct {
	Name   string
	Index  int // position in the level list
	Width  int // in cells
	Height int // in cells
	Cell   wallgrid.CellSize
	Anchor math.Vec2 // world position of cell (0,0)
}

// PixelSize is the level's size in world units.
func (l *LevelData) PixelSize() (float64, float64) {
	return float64(l.Width) * l.Cell.W, float64(l.Height) * l.Cell.H
}

// Center is the world position of the middle of the level.
func (l *LevelData) Center() math.Vec2 {
	w, h := l.PixelSize()
	return math.Vec2{X: l.Anchor.X + w/2, Y: l.Anchor.Y + h/2}
}

var Level = donburi.NewComponentType[LevelData]()

// LevelListData is every level the viewer can cycle through.
type LevelListData struct {
	Names  []string
	Levels map[string]*leveldata.WallData
}

var LevelList = donburi.NewComponentType[LevelListData]()
