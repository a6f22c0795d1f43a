package wallgrid

import "sort"

// Plate is a maximal run of occupied cells within one row.
type Plate struct {
	Row   int
	Left  int
	Right int
}

// Width in cells.
func (p Plate) Width() int {
	return p.Right - p.Left + 1
}

// RowPlates returns one plate per contiguous run of occupied cells in
// columns minX..maxX of a single row, left to right. A run that is still
// open when the range ends is emitted too.
func RowPlates(set *OccupancySet, row, minX, maxX int) []Plate {
	if set.Len() == 0 {
		return nil
	}
	var columns []int
	for c := range set.cells {
		if c.Y == row && c.X >= minX && c.X <= maxX {
			columns = append(columns, c.X)
		}
	}
	sort.Ints(columns)
	return runs(row, columns)
}

// runs splits sorted, distinct columns of one row into plates.
func runs(row int, columns []int) []Plate {
	var plates []Plate
	for i, x := range columns {
		if i > 0 && x == columns[i-1]+1 {
			plates[len(plates)-1].Right = x
			continue
		}
		plates = append(plates, Plate{Row: row, Left: x, Right: x})
	}
	return plates
}

// BuildPlates returns the plates of every occupied row, in increasing row
// order. Rows without walls are not represented; MergePlates tells
// adjacent rows apart by Plate.Row.
//
// Work is proportional to the number of occupied cells, not to the area
// they span, so sparse sets far outside the declared box stay cheap.
func BuildPlates(set *OccupancySet) [][]Plate {
	cells := set.Cells()
	if len(cells) == 0 {
		return nil
	}

	var rows [][]Plate
	start := 0
	for i := 1; i <= len(cells); i++ {
		if i < len(cells) && cells[i].Y == cells[start].Y {
			continue
		}
		columns := make([]int, 0, i-start)
		for _, c := range cells[start:i] {
			columns = append(columns, c.X)
		}
		rows = append(rows, runs(cells[start].Y, columns))
		start = i
	}
	return rows
}
