package netcomponents

import "github.com/yohamta/donburi"

// NetWallColliderData is the replicated form of a static wall collider.
// Walls never move, so it is registered without interpolation.
type NetWallColliderData struct {
	X, Y  float64 // top-left corner
	W, H  float64
	Owner string
}

var NetWallCollider = donburi.NewComponentType[NetWallColliderData]()
