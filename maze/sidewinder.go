package maze

import (
	"github.com/beka-birhanu/vinom-maze/grid"
	"github.com/zyedidia/generic/mapset"
)

// Sidewinder sweeps the grid row by row, extending an eastward run of
// cells until a coin flip (or the east boundary) closes it, at which point
// one cell of the run is carved north.
func Sidewinder(g grid.Map, seed uint64) Walls {
	removed := mapset.New[grid.Wall]()
	if g.CellCount() <= 1 {
		return Walls{set: removed}
	}

	rng := newRand(seed)
	run := make([]grid.Pos, 0, g.Columns())
	for cell := range g.Cells() {
		if cell.X == 0 {
			run = run[:0]
		}
		run = append(run, cell)

		dir, other := coinFlip(rng)
		if _, ok := g.Neighbor(cell, dir); !ok {
			dir = other
		}

		switch dir {
		case grid.East:
			if wall, ok := g.InnerWall(cell, grid.East); ok {
				removed.Put(wall)
			}
		case grid.North:
			member := run[rng.IntN(len(run))]
			if wall, ok := g.InnerWall(member, grid.North); ok {
				removed.Put(wall)
			}
			run = run[:0]
		}
	}

	return Walls{set: removed}
}
