package maze

import "github.com/beka-birhanu/vinom-maze/grid"

// Cell is the per-cell view of a maze: which of its four sides still carry
// a wall.
type Cell struct {
	// NorthWall indicates whether there is a wall on the north side of the cell.
	NorthWall bool `json:"north"`
	// EastWall indicates whether there is a wall on the east side of the cell.
	EastWall bool `json:"east"`
	// SouthWall indicates whether there is a wall on the south side of the cell.
	SouthWall bool `json:"south"`
	// WestWall indicates whether there is a wall on the west side of the cell.
	WestWall bool `json:"west"`
}

// Cell returns the walls around pos. Boundary sides always have a wall.
func (w Walls) Cell(g grid.Map, pos grid.Pos) Cell {
	standing := func(d grid.Direction) bool {
		wall, ok := g.InnerWall(pos, d)
		return !ok || !w.Has(wall)
	}
	return Cell{
		NorthWall: standing(grid.North),
		EastWall:  standing(grid.East),
		SouthWall: standing(grid.South),
		WestWall:  standing(grid.West),
	}
}

// Cells returns the Cell view of every cell, indexed [y][x].
func (w Walls) Cells(g grid.Map) [][]Cell {
	cells := make([][]Cell, g.Rows())
	for y := range cells {
		cells[y] = make([]Cell, g.Columns())
		for x := range cells[y] {
			cells[y][x] = w.Cell(g, grid.Pos{X: x, Y: y})
		}
	}
	return cells
}
