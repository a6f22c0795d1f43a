package wallgrid

// Rect is a block of cells with inclusive bounds. Bottom is the first row
// the rect occupies and Top the last.
type Rect struct {
	Left   int
	Right  int
	Top    int
	Bottom int
}

func (r Rect) Width() int {
	return r.Right - r.Left + 1
}

func (r Rect) Height() int {
	return r.Top - r.Bottom + 1
}

func (r Rect) Area() int {
	return r.Width() * r.Height()
}

// Cells lists every cell the rect covers, row by row.
func (r Rect) Cells() []GridCoord {
	out := make([]GridCoord, 0, r.Area())
	for y := r.Bottom; y <= r.Top; y++ {
		for x := r.Left; x <= r.Right; x++ {
			out = append(out, GridCoord{X: x, Y: y})
		}
	}
	return out
}

type plateKey struct {
	left, right int
}

// MergePlates stacks plates with identical column bounds in consecutive rows
// into rects. rows must be in increasing row order, and every plate in
// rows[i] must share one Row; empty slices are skipped.
//
// Only plates with exactly the same bounds merge. A row whose runs overlap
// the previous row's without matching them starts new rects. A repeated
// plate within one row is counted once.
func MergePlates(rows [][]Plate) []Rect {
	var rects []Rect
	building := make(map[plateKey]*Rect)
	var prev []Plate
	prevRow := 0

	closeMissing := func(present map[plateKey]struct{}) {
		for _, p := range prev {
			key := plateKey{p.Left, p.Right}
			if _, ok := present[key]; ok {
				continue
			}
			if r, ok := building[key]; ok {
				rects = append(rects, *r)
				delete(building, key)
			}
		}
	}

	for _, row := range rows {
		if len(row) == 0 {
			continue
		}
		y := row[0].Row

		current := make([]Plate, 0, len(row))
		present := make(map[plateKey]struct{}, len(row))
		for _, p := range row {
			key := plateKey{p.Left, p.Right}
			if _, dup := present[key]; dup {
				continue
			}
			present[key] = struct{}{}
			current = append(current, p)
		}

		if y == prevRow+1 {
			closeMissing(present)
		} else {
			// A gap closes everything that was open.
			closeMissing(nil)
		}

		for _, p := range current {
			key := plateKey{p.Left, p.Right}
			if r, ok := building[key]; ok {
				r.Top = y
				continue
			}
			building[key] = &Rect{
				Left:   p.Left,
				Right:  p.Right,
				Bottom: y,
				Top:    y,
			}
		}

		prev, prevRow = current, y
	}

	// Close whatever touches the last row.
	closeMissing(nil)

	return rects
}
