package service

import (
	"errors"
	"fmt"

	"github.com/beka-birhanu/vinom-maze/grid"
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/beka-birhanu/vinom-maze/solver"
)

var errCorruptRecord = errors.New("corrupt maze record")

// record is the cached form of a MazeResult. Maps keyed by position do not
// survive JSON, so distances are flattened row-major (-1 for unreachable)
// and the path is stored as its route from start to end.
type record struct {
	Walls            []grid.Wall `json:"walls"`
	Start            grid.Pos    `json:"start"`
	End              grid.Pos    `json:"end"`
	Route            []grid.Pos  `json:"route"`
	Distances        []int       `json:"distances"`
	FarthestDistance int         `json:"farthest_distance"`
}

func newRecord(r *MazeResult) record {
	distances := make([]int, 0, r.Grid.CellCount())
	for cell := range r.Grid.Cells() {
		d, ok := r.Solution.Distances[cell]
		if !ok {
			d = -1
		}
		distances = append(distances, d)
	}

	return record{
		Walls:            r.Walls.Sorted(),
		Start:            r.Solution.Start,
		End:              r.Solution.End,
		Route:            solver.Route(r.Solution.Path),
		Distances:        distances,
		FarthestDistance: r.Solution.FarthestDistance,
	}
}

func (rec record) result(g grid.Map, req MazeRequest) (*MazeResult, error) {
	if len(rec.Distances) != g.CellCount() {
		return nil, fmt.Errorf("%w: %d distances for %d cells", errCorruptRecord, len(rec.Distances), g.CellCount())
	}
	if len(rec.Route) == 0 || rec.Route[0] != rec.Start || rec.Route[len(rec.Route)-1] != rec.End {
		return nil, fmt.Errorf("%w: route does not join start and end", errCorruptRecord)
	}

	walls := maze.NewWalls(rec.Walls...)
	if err := maze.Verify(g, walls); err != nil {
		return nil, fmt.Errorf("%w: %s", errCorruptRecord, err)
	}

	distances := make(solver.DistanceMap, g.CellCount())
	index := 0
	for cell := range g.Cells() {
		if d := rec.Distances[index]; d >= 0 {
			distances[cell] = d
		}
		index++
	}

	path := make(map[grid.Pos]int, len(rec.Route))
	for n, cell := range rec.Route {
		path[cell] = len(rec.Route) - 1 - n
	}

	return &MazeResult{
		ID:      resultID(req),
		Request: req,
		Grid:    g,
		Walls:   walls,
		Solution: solver.Solution{
			Start:            rec.Start,
			End:              rec.End,
			Path:             path,
			Distances:        distances,
			FarthestDistance: rec.FarthestDistance,
		},
	}, nil
}
