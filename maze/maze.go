/*
Package maze carves perfect mazes into a grid.Map.

Four builders are provided: Binary Tree, Sidewinder, Aldous-Broder and
Wilson's loop-erased random walk. Each is a pure function of the grid and a
64-bit seed and returns the set of removed walls, which always forms a
spanning tree over the grid's cells.

The package also checks that property (Verify) and renders mazes as ASCII
for text clients.
*/
package maze

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/beka-birhanu/vinom-maze/grid"
)

// Algorithm selects a builder.
type Algorithm int

const (
	BinaryTreeAlgorithm Algorithm = iota
	SidewinderAlgorithm
	AldousBroderAlgorithm
	WilsonAlgorithm
)

// pcgStream is the fixed second PCG word; the seed supplies the first.
const pcgStream = 0x9e3779b97f4a7c15

var (
	ErrUnknownAlgorithm = errors.New("unknown maze algorithm")

	// Algorithms lists every algorithm in declaration order.
	Algorithms = []Algorithm{BinaryTreeAlgorithm, SidewinderAlgorithm, AldousBroderAlgorithm, WilsonAlgorithm}

	algorithmNames = map[Algorithm]string{
		BinaryTreeAlgorithm:   "binary-tree",
		SidewinderAlgorithm:   "sidewinder",
		AldousBroderAlgorithm: "aldous-broder",
		WilsonAlgorithm:       "wilson",
	}

	builders = map[Algorithm]Builder{
		BinaryTreeAlgorithm:   BinaryTree,
		SidewinderAlgorithm:   Sidewinder,
		AldousBroderAlgorithm: AldousBroder,
		WilsonAlgorithm:       Wilson,
	}
)

// Builder carves a maze into g using seed as the only source of randomness.
type Builder func(g grid.Map, seed uint64) Walls

func (a Algorithm) String() string {
	if name, ok := algorithmNames[a]; ok {
		return name
	}
	return fmt.Sprintf("Algorithm(%d)", int(a))
}

// ParseAlgorithm resolves a name such as "aldous-broder", "Aldous_Broder" or
// "aldousbroder".
func ParseAlgorithm(name string) (Algorithm, error) {
	key := normalizeName(name)
	for algo, n := range algorithmNames {
		if normalizeName(n) == key {
			return algo, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// Generate dispatches to the builder for algo.
func Generate(g grid.Map, seed uint64, algo Algorithm) (Walls, error) {
	build, ok := builders[algo]
	if !ok {
		return Walls{}, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(algo))
	}
	return build(g, seed), nil
}

func normalizeName(name string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '-', '_', ' ':
			return -1
		}
		return r
	}, strings.ToLower(strings.TrimSpace(name)))
}

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, pcgStream))
}

// coinFlip picks North or East with equal probability.
func coinFlip(rng *rand.Rand) (grid.Direction, grid.Direction) {
	if rng.IntN(2) == 0 {
		return grid.North, grid.East
	}
	return grid.East, grid.North
}

// move is one step of a walk: the cell reached and the wall crossed.
type move struct {
	to   grid.Pos
	wall grid.Wall
}

// moves lists every in-bounds step from pos, scanning North, East, South,
// West. The result is never empty on a grid with more than one cell.
func moves(g grid.Map, pos grid.Pos) []move {
	result := make([]move, 0, len(grid.Directions))
	for _, d := range grid.Directions {
		to, ok := g.Neighbor(pos, d)
		if !ok {
			continue
		}
		wall, _ := g.InnerWall(pos, d)
		result = append(result, move{to: to, wall: wall})
	}
	return result
}

// randomCell picks a cell uniformly. g must not be empty.
func randomCell(g grid.Map, rng *rand.Rand) grid.Pos {
	pos, _ := g.CellIndexToPos(rng.IntN(g.CellCount()))
	return pos
}
