package maze

import (
	"math/rand/v2"
	"slices"

	"github.com/beka-birhanu/vinom-maze/grid"
	"github.com/zyedidia/generic/mapset"
)

// Wilson builds the maze from loop-erased random walks. The origin cell
// starts in the tree; each walk begins at a random cell outside it, erases
// any loop it makes, and is grafted onto the tree once it touches it.
func Wilson(g grid.Map, seed uint64) Walls {
	removed := mapset.New[grid.Wall]()
	cellCount := g.CellCount()
	if cellCount <= 1 {
		return Walls{set: removed}
	}

	rng := newRand(seed)
	visited := mapset.New[grid.Pos]()
	visited.Put(grid.Pos{})

	for visited.Size() < cellCount {
		path, crossed := randomWalk(g, visited, rng)
		for _, cell := range path {
			visited.Put(cell)
		}
		for _, wall := range crossed {
			removed.Put(wall)
		}
	}

	return Walls{set: removed}
}

// randomWalk walks from a random unvisited cell until it reaches a visited
// one. It returns the loop-free cells of the walk and the walls crossed
// between them, including the wall into the visited cell.
func randomWalk(g grid.Map, visited mapset.Set[grid.Pos], rng *rand.Rand) ([]grid.Pos, []grid.Wall) {
	path := []grid.Pos{randomUnvisitedCell(g, visited, rng)}
	var crossed []grid.Wall

	for {
		candidates := moves(g, path[len(path)-1])
		next := candidates[rng.IntN(len(candidates))]

		if loopStart := slices.Index(path, next.to); loopStart >= 0 {
			path = path[:loopStart+1]
			crossed = crossed[:loopStart]
			continue
		}

		crossed = append(crossed, next.wall)
		if visited.Has(next.to) {
			return path, crossed
		}
		path = append(path, next.to)
	}
}

// randomUnvisitedCell picks uniformly among the cells not yet in the tree.
// At least one such cell must exist.
func randomUnvisitedCell(g grid.Map, visited mapset.Set[grid.Pos], rng *rand.Rand) grid.Pos {
	unvisited := make([]grid.Pos, 0, g.CellCount()-visited.Size())
	for cell := range g.Cells() {
		if !visited.Has(cell) {
			unvisited = append(unvisited, cell)
		}
	}
	return unvisited[rng.IntN(len(unvisited))]
}
