package maze

import (
	"cmp"
	"slices"

	"github.com/beka-birhanu/vinom-maze/grid"
	"github.com/zyedidia/generic/mapset"
)

// Walls is the set of removed walls of a maze. A wall in the set is a
// passage; any other wall blocks movement. The zero value is an empty set.
type Walls struct {
	set mapset.Set[grid.Wall]
}

// NewWalls returns a set holding the given passages.
func NewWalls(walls ...grid.Wall) Walls {
	return Walls{set: mapset.Of(walls...)}
}

// Has reports whether wall is a passage.
func (w Walls) Has(wall grid.Wall) bool {
	return w.set.Has(wall)
}

// Len returns the number of passages.
func (w Walls) Len() int {
	return w.set.Size()
}

// Each calls fn for every passage in unspecified order.
func (w Walls) Each(fn func(grid.Wall)) {
	w.set.Each(fn)
}

// Sorted returns the passages with horizontal walls first, each orientation
// in row-major order of its From point.
func (w Walls) Sorted() []grid.Wall {
	out := make([]grid.Wall, 0, w.Len())
	w.Each(func(wall grid.Wall) {
		out = append(out, wall)
	})
	slices.SortFunc(out, compareWalls)
	return out
}

// Equal reports whether w and other hold the same passages.
func (w Walls) Equal(other Walls) bool {
	if w.Len() != other.Len() {
		return false
	}
	equal := true
	w.Each(func(wall grid.Wall) {
		if !other.Has(wall) {
			equal = false
		}
	})
	return equal
}

func compareWalls(a, b grid.Wall) int {
	return cmp.Or(
		cmp.Compare(a.Orientation(), b.Orientation()),
		cmp.Compare(a.From.Y, b.From.Y),
		cmp.Compare(a.From.X, b.From.X),
	)
}
