package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type CameraData struct {
	Position math.Vec2
	Zoom     float64
	PanX     *gween.Tween // nil when not panning
	PanY     *gween.Tween
}

var Camera = donburi.NewComponentType[CameraData]()
