package maze

import (
	"errors"
	"fmt"

	"github.com/beka-birhanu/vinom-maze/grid"
	"github.com/zyedidia/generic/mapset"
)

var (
	ErrNotSpanningTree = errors.New("removed walls do not form a spanning tree")
)

// Exits returns the cells reachable from pos in one step through a passage,
// in North, East, South, West order.
func (w Walls) Exits(g grid.Map, pos grid.Pos) []grid.Pos {
	var exits []grid.Pos
	for _, d := range grid.Directions {
		wall, ok := g.InnerWall(pos, d)
		if !ok || !w.Has(wall) {
			continue
		}
		next, _ := g.Neighbor(pos, d)
		exits = append(exits, next)
	}
	return exits
}

// Verify checks that walls is a spanning tree over g's cells: every passage
// separates two cells of g, there are exactly CellCount-1 of them, and every
// cell is reachable from the origin.
func Verify(g grid.Map, walls Walls) error {
	cellCount := g.CellCount()
	if cellCount == 0 {
		if walls.Len() != 0 {
			return fmt.Errorf("%w: %d passages in an empty grid", ErrNotSpanningTree, walls.Len())
		}
		return nil
	}

	var outside []grid.Wall
	walls.Each(func(wall grid.Wall) {
		if !isInner(g, wall) {
			outside = append(outside, wall)
		}
	})
	if len(outside) > 0 {
		return fmt.Errorf("%w: passage %s is not between two cells", ErrNotSpanningTree, outside[0])
	}

	if walls.Len() != cellCount-1 {
		return fmt.Errorf("%w: %d passages for %d cells", ErrNotSpanningTree, walls.Len(), cellCount)
	}

	seen := mapset.New[grid.Pos]()
	stack := []grid.Pos{{}}
	seen.Put(grid.Pos{})
	for len(stack) > 0 {
		cell := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, next := range walls.Exits(g, cell) {
			if !seen.Has(next) {
				seen.Put(next)
				stack = append(stack, next)
			}
		}
	}
	if seen.Size() != cellCount {
		return fmt.Errorf("%w: %d of %d cells reachable", ErrNotSpanningTree, seen.Size(), cellCount)
	}

	return nil
}

// isInner reports whether wall lies between two cells of g.
func isInner(g grid.Map, wall grid.Wall) bool {
	if _, ok := g.WallToIndex(wall); !ok {
		return false
	}
	if wall.Orientation() == grid.Horizontal {
		return wall.From.Y > 0 && wall.From.Y < g.Rows()
	}
	return wall.From.X > 0 && wall.From.X < g.Columns()
}
