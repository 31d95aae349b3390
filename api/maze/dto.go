// Package mazeapi exposes maze building, solving and sharing over HTTP.
package mazeapi

import (
	"strconv"

	"github.com/beka-birhanu/vinom-maze/grid"
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/beka-birhanu/vinom-maze/service"
	"github.com/beka-birhanu/vinom-maze/solver"
)

// MazeQuery identifies a maze, from query parameters or a JSON body.
type MazeQuery struct {
	Columns   int    `form:"columns" json:"columns" binding:"required"`
	Rows      int    `form:"rows" json:"rows" binding:"required"`
	Seed      uint64 `form:"seed" json:"seed"`
	Algorithm string `form:"algorithm" json:"algorithm"`
}

// MazeResponse is a built maze with its longest path.
type MazeResponse struct {
	ID               string        `json:"id"`
	Columns          int           `json:"columns"`
	Rows             int           `json:"rows"`
	Seed             string        `json:"seed"`
	Algorithm        string        `json:"algorithm"`
	Walls            []grid.Wall   `json:"walls"`
	Cells            [][]maze.Cell `json:"cells"` // Indexed [y][x].
	Start            grid.Pos      `json:"start"`
	End              grid.Pos      `json:"end"`
	Path             []grid.Pos    `json:"path"`
	FarthestDistance int           `json:"farthest_distance"`
	Distances        [][]int       `json:"distances"` // Indexed [y][x], -1 when unreachable.
}

// ShareResponse carries a ticket for GET /mazes/shared/:ticket.
type ShareResponse struct {
	Ticket string `json:"ticket"`
}

// AlgorithmsResponse lists the accepted algorithm names.
type AlgorithmsResponse struct {
	Algorithms []string `json:"algorithms"`
	Default    string   `json:"default"`
}

func newMazeResponse(r *service.MazeResult) *MazeResponse {
	distances := make([][]int, r.Grid.Rows())
	for y := range distances {
		distances[y] = make([]int, r.Grid.Columns())
		for x := range distances[y] {
			d, ok := r.Solution.Distances[grid.Pos{X: x, Y: y}]
			if !ok {
				d = -1
			}
			distances[y][x] = d
		}
	}

	return &MazeResponse{
		ID:               r.ID.String(),
		Columns:          r.Request.Columns,
		Rows:             r.Request.Rows,
		Seed:             strconv.FormatUint(r.Request.Seed, 10),
		Algorithm:        r.Request.Algorithm.String(),
		Walls:            r.Walls.Sorted(),
		Cells:            r.Walls.Cells(r.Grid),
		Start:            r.Solution.Start,
		End:              r.Solution.End,
		Path:             solver.Route(r.Solution.Path),
		FarthestDistance: r.Solution.FarthestDistance,
		Distances:        distances,
	}
}
