package wallgrid

import "github.com/yohamta/donburi/features/math"

// CellSize is the world-space size of one grid cell.
type CellSize struct {
	W, H float64
}

// UniformCell returns a square cell of the given size.
func UniformCell(size float64) CellSize {
	return CellSize{W: size, H: size}
}

// Collider describes one static box for the physics layer.
type Collider struct {
	Center     math.Vec2
	HalfExtent math.Vec2
	Fixed      bool
}

// Min is the corner with the smallest coordinates, for physics objects
// positioned by their corner rather than their centre.
func (c Collider) Min() math.Vec2 {
	return math.Vec2{
		X: c.Center.X - c.HalfExtent.X,
		Y: c.Center.Y - c.HalfExtent.Y,
	}
}

// Size is the full width and height of the box.
func (c Collider) Size() math.Vec2 {
	return math.Vec2{X: c.HalfExtent.X * 2, Y: c.HalfExtent.Y * 2}
}

// ToCollider converts a grid rect into a world-space box. Rect bounds are
// inclusive, hence the +1 on every span.
func ToCollider(r Rect, cell CellSize, anchor math.Vec2) Collider {
	return Collider{
		HalfExtent: math.Vec2{
			X: float64(r.Right-r.Left+1) * cell.W / 2,
			Y: float64(r.Top-r.Bottom+1) * cell.H / 2,
		},
		Center: math.Vec2{
			X: anchor.X + float64(r.Left+r.Right+1)*cell.W/2,
			Y: anchor.Y + float64(r.Bottom+r.Top+1)*cell.H/2,
		},
		Fixed: true,
	}
}
