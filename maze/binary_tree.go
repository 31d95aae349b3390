package maze

import (
	"github.com/beka-birhanu/vinom-maze/grid"
	"github.com/zyedidia/generic/mapset"
)

// BinaryTree carves, for each cell in row-major order, toward its north or
// east neighbor chosen by a coin flip. When the chosen side is the outer
// boundary the other side is used; the north-east corner carves nothing.
func BinaryTree(g grid.Map, seed uint64) Walls {
	removed := mapset.New[grid.Wall]()
	if g.CellCount() <= 1 {
		return Walls{set: removed}
	}

	rng := newRand(seed)
	for cell := range g.Cells() {
		dir, other := coinFlip(rng)
		if _, ok := g.Neighbor(cell, dir); !ok {
			dir = other
		}
		if wall, ok := g.InnerWall(cell, dir); ok {
			removed.Put(wall)
		}
	}

	return Walls{set: removed}
}
