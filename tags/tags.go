package tags

import "github.com/yohamta/donburi"

var (
	Level = donburi.NewTag().SetName("Level")
	Wall  = donburi.NewTag().SetName("Wall")
)

// Resolv tags for physics collision
const (
	ResolvSolid = "solid"
	ResolvWall  = "wall"
)
