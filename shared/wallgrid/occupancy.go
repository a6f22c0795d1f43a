// Package wallgrid turns sets of occupied grid cells into merged rectangles
// that can be handed to a physics space as static colliders.
// It has no dependencies on ebitengine or resolv; pure data only.
package wallgrid

import "sort"

// GridCoord identifies one cell of a level grid.
type GridCoord struct {
	X, Y int
}

// OccupancySet holds the wall cells of a single owner (a level or a layer)
// together with the owner's declared size in cells.
type OccupancySet struct {
	Width  int
	Height int
	cells  map[GridCoord]struct{}
}

func NewOccupancySet(width, height int) *OccupancySet {
	return &OccupancySet{
		Width:  width,
		Height: height,
		cells:  make(map[GridCoord]struct{}),
	}
}

// Add marks a cell as occupied. Adding the same cell twice is a no-op.
func (s *OccupancySet) Add(c GridCoord) {
	if s.cells == nil {
		s.cells = make(map[GridCoord]struct{})
	}
	s.cells[c] = struct{}{}
}

func (s *OccupancySet) Contains(c GridCoord) bool {
	if s == nil {
		return false
	}
	_, ok := s.cells[c]
	return ok
}

func (s *OccupancySet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.cells)
}

// Valid reports whether the declared bounding box is usable for a scan.
func (s *OccupancySet) Valid() bool {
	return s != nil && s.Width > 0 && s.Height > 0
}

// InWall reports whether c is blocked. Anything outside the declared box is
// treated as a wall.
func (s *OccupancySet) InWall(c GridCoord) bool {
	if s == nil {
		return true
	}
	return c.X < 0 ||
		c.Y < 0 ||
		c.X >= s.Width ||
		c.Y >= s.Height ||
		s.Contains(c)
}

// Extent returns the inclusive bounds of the occupied cells.
// ok is false when the set is empty.
func (s *OccupancySet) Extent() (minX, minY, maxX, maxY int, ok bool) {
	if s.Len() == 0 {
		return 0, 0, 0, 0, false
	}
	first := true
	for c := range s.cells {
		if first {
			minX, maxX, minY, maxY = c.X, c.X, c.Y, c.Y
			first = false
			continue
		}
		minX = min(minX, c.X)
		maxX = max(maxX, c.X)
		minY = min(minY, c.Y)
		maxY = max(maxY, c.Y)
	}
	return minX, minY, maxX, maxY, true
}

// Cells returns the occupied cells sorted row by row, left to right.
func (s *OccupancySet) Cells() []GridCoord {
	out := make([]GridCoord, 0, s.Len())
	if s == nil {
		return out
	}
	for c := range s.cells {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Y != out[j].Y {
			return out[i].Y < out[j].Y
		}
		return out[i].X < out[j].X
	})
	return out
}
