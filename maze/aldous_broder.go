package maze

import (
	"github.com/beka-birhanu/vinom-maze/grid"
	"github.com/zyedidia/generic/mapset"
)

// AldousBroder performs a uniform random walk from a random cell, carving
// the wall crossed into every cell on its first visit. The walk ends once
// every cell has been visited, which yields a uniformly distributed spanning
// tree. Expected running time grows quickly with grid size, so callers
// should bound the dimensions.
func AldousBroder(g grid.Map, seed uint64) Walls {
	removed := mapset.New[grid.Wall]()
	cellCount := g.CellCount()
	if cellCount <= 1 {
		return Walls{set: removed}
	}

	rng := newRand(seed)
	visited := mapset.New[grid.Pos]()
	current := randomCell(g, rng)
	visited.Put(current)

	for visited.Size() < cellCount {
		candidates := moves(g, current)
		next := candidates[rng.IntN(len(candidates))]
		if !visited.Has(next.to) {
			removed.Put(next.wall)
			visited.Put(next.to)
		}
		current = next.to
	}

	return Walls{set: removed}
}
