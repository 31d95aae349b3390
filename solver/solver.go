// Package solver measures mazes: hop distances from a cell, the two most
// distant cells of a perfect maze, and the path between them.
package solver

import (
	"errors"
	"fmt"
	"slices"

	"github.com/beka-birhanu/vinom-maze/grid"
	"github.com/beka-birhanu/vinom-maze/maze"
)

var (
	// ErrBrokenPath means the walk back from the end found no closer cell.
	// The walls are not a spanning tree reachable from the start, or the
	// distance map does not belong to them.
	ErrBrokenPath = errors.New("path reconstruction found no closer neighbor")
	ErrEmptyGrid  = errors.New("cannot solve an empty grid")
)

// DistanceMap holds the hop count from a source cell to every cell reachable
// from it. Unreachable cells are absent.
type DistanceMap map[grid.Pos]int

// Solution describes the longest path through a maze.
type Solution struct {
	Start            grid.Pos         // One end of the longest path.
	End              grid.Pos         // The other end, farthest from Start.
	Path             map[grid.Pos]int // Cells on the path, valued by hops from End.
	Distances        DistanceMap      // Hops from Start to every cell.
	FarthestDistance int              // Distances[End].
}

// Distances expands level by level from source through passages only.
func Distances(source grid.Pos, g grid.Map, walls maze.Walls) DistanceMap {
	distances := DistanceMap{source: 0}
	frontier := []grid.Pos{source}

	for distance := 1; len(frontier) > 0; distance++ {
		var next []grid.Pos
		for _, cell := range frontier {
			for _, neighbor := range walls.Exits(g, cell) {
				if _, seen := distances[neighbor]; seen {
					continue
				}
				distances[neighbor] = distance
				next = append(next, neighbor)
			}
		}
		frontier = next
	}

	return distances
}

// Farthest returns the cell with the greatest distance. Ties go to the cell
// lowest in row-major order, so the result does not depend on map iteration.
func Farthest(distances DistanceMap) (grid.Pos, int) {
	var best grid.Pos
	bestDistance := -1
	for cell, distance := range distances {
		if distance > bestDistance || (distance == bestDistance && cell.Less(best)) {
			best, bestDistance = cell, distance
		}
	}
	if bestDistance < 0 {
		return grid.Pos{}, 0
	}
	return best, bestDistance
}

// Path walks back from end toward start, always stepping to a passable
// neighbor strictly closer to start according to distances. The result maps
// each cell on the walk to its hop count from end.
func Path(start, end grid.Pos, distances DistanceMap, g grid.Map, walls maze.Walls) (map[grid.Pos]int, error) {
	current := end
	currentDistance, ok := distances[current]
	if !ok {
		return nil, fmt.Errorf("%w: end %v is unreachable", ErrBrokenPath, end)
	}

	path := map[grid.Pos]int{current: 0}
	for hops := 1; current != start; hops++ {
		next, found := closerNeighbor(current, currentDistance, distances, g, walls)
		if !found {
			return nil, fmt.Errorf("%w: stuck at %v (distance %d)", ErrBrokenPath, current, currentDistance)
		}
		current = next
		currentDistance = distances[next]
		path[current] = hops
	}

	return path, nil
}

// Route orders the cells of path from start (the highest value) to end.
func Route(path map[grid.Pos]int) []grid.Pos {
	route := make([]grid.Pos, 0, len(path))
	for cell := range path {
		route = append(route, cell)
	}
	slices.SortFunc(route, func(a, b grid.Pos) int {
		return path[b] - path[a]
	})
	return route
}

// Solve finds the two most distant cells of a perfect maze by a double
// sweep from the north-east corner and reconstructs the path between them.
func Solve(g grid.Map, walls maze.Walls) (Solution, error) {
	if g.CellCount() == 0 {
		return Solution{}, ErrEmptyGrid
	}

	end, _ := Farthest(Distances(g.NorthEastCell(), g, walls))
	start, farthest := Farthest(Distances(end, g, walls))

	distances := Distances(start, g, walls)
	path, err := Path(start, end, distances, g, walls)
	if err != nil {
		return Solution{}, err
	}

	return Solution{
		Start:            start,
		End:              end,
		Path:             path,
		Distances:        distances,
		FarthestDistance: farthest,
	}, nil
}

func closerNeighbor(cell grid.Pos, distance int, distances DistanceMap, g grid.Map, walls maze.Walls) (grid.Pos, bool) {
	for _, neighbor := range walls.Exits(g, cell) {
		if d, ok := distances[neighbor]; ok && d < distance {
			return neighbor, true
		}
	}
	return grid.Pos{}, false
}
