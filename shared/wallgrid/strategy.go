package wallgrid

import (
	"errors"
	"fmt"

	"github.com/yohamta/donburi/features/math"
)

var ErrUnknownStrategy = errors.New("unknown collider strategy")

const (
	StrategyNaive = "naive"
	StrategyPlate = "plate"
)

// Strategy decides how an owner's wall cells are grouped into rects.
type Strategy interface {
	Name() string
	Build(set *OccupancySet) []Rect
}

// Naive emits one 1x1 rect per occupied cell.
type Naive struct{}

func (Naive) Name() string { return StrategyNaive }

func (Naive) Build(set *OccupancySet) []Rect {
	cells := set.Cells()
	rects := make([]Rect, 0, len(cells))
	for _, c := range cells {
		rects = append(rects, Rect{Left: c.X, Right: c.X, Bottom: c.Y, Top: c.Y})
	}
	return rects
}

// PlateMerge merges each row into plates, then stacks identical plates of
// consecutive rows into rects.
type PlateMerge struct{}

func (PlateMerge) Name() string { return StrategyPlate }

func (PlateMerge) Build(set *OccupancySet) []Rect {
	rows := BuildPlates(set)
	if len(rows) == 0 {
		return nil
	}
	return MergePlates(rows)
}

// Strategies lists the available strategies in toggle order.
func Strategies() []Strategy {
	return []Strategy{PlateMerge{}, Naive{}}
}

func StrategyByName(name string) (Strategy, error) {
	for _, s := range Strategies() {
		if s.Name() == name {
			return s, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// Next returns the strategy following s in toggle order.
func Next(s Strategy) Strategy {
	all := Strategies()
	for i, candidate := range all {
		if candidate.Name() == s.Name() {
			return all[(i+1)%len(all)]
		}
	}
	return all[0]
}

// BuildColliders runs strategy over set and converts the result to world
// space. An owner with an unusable bounding box yields nothing.
func BuildColliders(strategy Strategy, set *OccupancySet, cell CellSize, anchor math.Vec2) ([]Rect, []Collider) {
	if !set.Valid() {
		return nil, nil
	}
	rects := strategy.Build(set)
	colliders := make([]Collider, 0, len(rects))
	for _, r := range rects {
		colliders = append(colliders, ToCollider(r, cell, anchor))
	}
	return rects, colliders
}

// Stats summarises one build.
type Stats struct {
	Strategy  string
	Cells     int
	Colliders int
}

// Ratio is colliders per wall cell, 0 for an empty owner.
func (s Stats) Ratio() float64 {
	if s.Cells == 0 {
		return 0
	}
	return float64(s.Colliders) / float64(s.Cells)
}

func (s Stats) String() string {
	return fmt.Sprintf("%s: %d cells -> %d colliders", s.Strategy, s.Cells, s.Colliders)
}
