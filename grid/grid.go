/*
Package grid provides the addressing model for rectangular mazes.

A Map of columns×rows cells shares one row-major addressing scheme across
three coordinate spaces: cells, the (columns+1)×(rows+1) lattice of corner
points, and the walls joining adjacent points. Every lookup is total; a
coordinate or index outside the grid yields a false "ok" result instead of a
clamped or wrapped value.
*/
package grid

import (
	"errors"
	"iter"
)

var (
	ErrInvalidDimensions = errors.New("grid dimensions must be positive")
)

// Pos is a cell or point coordinate.
type Pos struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Add returns p translated by o.
func (p Pos) Add(o Pos) Pos {
	return Pos{X: p.X + o.X, Y: p.Y + o.Y}
}

// Less orders positions row-major: by Y, then X.
func (p Pos) Less(o Pos) bool {
	if p.Y != o.Y {
		return p.Y < o.Y
	}
	return p.X < o.X
}

// Map is an immutable columns×rows grid. The zero value is an empty grid.
type Map struct {
	columns int
	rows    int
}

// New returns a grid of the given dimensions.
func New(columns, rows int) (Map, error) {
	if columns <= 0 || rows <= 0 {
		return Map{}, ErrInvalidDimensions
	}
	return Map{columns: columns, rows: rows}, nil
}

// MustNew is like New but panics on invalid dimensions.
func MustNew(columns, rows int) Map {
	m, err := New(columns, rows)
	if err != nil {
		panic(err)
	}
	return m
}

// Columns returns the number of cell columns.
func (m Map) Columns() int {
	return m.columns
}

// Rows returns the number of cell rows.
func (m Map) Rows() int {
	return m.rows
}

// CellCount returns columns*rows.
func (m Map) CellCount() int {
	return m.columns * m.rows
}

// PointCount returns the size of the corner lattice.
func (m Map) PointCount() int {
	if m.CellCount() == 0 {
		return 0
	}
	return (m.columns + 1) * (m.rows + 1)
}

// WallCount returns the number of walls with orientation o, boundary included.
func (m Map) WallCount(o Orientation) int {
	if m.CellCount() == 0 {
		return 0
	}
	cols, rows := m.wallSpace(o)
	return cols * rows
}

// TotalWallCount returns the number of walls of both orientations.
func (m Map) TotalWallCount() int {
	return m.WallCount(Horizontal) + m.WallCount(Vertical)
}

// InCellBounds reports whether p addresses a cell.
func (m Map) InCellBounds(p Pos) bool {
	return inBounds(p, m.columns, m.rows)
}

// CellPosToIndex maps a cell position to its row-major index.
func (m Map) CellPosToIndex(p Pos) (int, bool) {
	return posToIndex(p, m.columns, m.rows)
}

// CellIndexToPos maps a row-major cell index to its position.
func (m Map) CellIndexToPos(i int) (Pos, bool) {
	return indexToPos(i, m.columns, m.rows)
}

// InPointBounds reports whether p addresses a corner point.
func (m Map) InPointBounds(p Pos) bool {
	if m.CellCount() == 0 {
		return false
	}
	return inBounds(p, m.columns+1, m.rows+1)
}

// PointPosToIndex maps a point position to its row-major index.
func (m Map) PointPosToIndex(p Pos) (int, bool) {
	if m.CellCount() == 0 {
		return 0, false
	}
	return posToIndex(p, m.columns+1, m.rows+1)
}

// PointIndexToPos maps a row-major point index to its position.
func (m Map) PointIndexToPos(i int) (Pos, bool) {
	if m.CellCount() == 0 {
		return Pos{}, false
	}
	return indexToPos(i, m.columns+1, m.rows+1)
}

// Neighbor returns the cell one step from p in direction d.
func (m Map) Neighbor(p Pos, d Direction) (Pos, bool) {
	if !m.InCellBounds(p) {
		return Pos{}, false
	}
	n := p.Add(d.Offset())
	if !m.InCellBounds(n) {
		return Pos{}, false
	}
	return n, true
}

// InnerWall returns the wall separating p from its neighbor in direction d.
// It is absent whenever that neighbor is, so the outer boundary is never
// reported.
func (m Map) InnerWall(p Pos, d Direction) (Wall, bool) {
	if _, ok := m.Neighbor(p, d); !ok {
		return Wall{}, false
	}
	return m.WallAt(p, d), true
}

// WallAt returns the edge of cell p facing d, whether or not a neighbor lies
// beyond it. p is assumed to be in bounds.
func (m Map) WallAt(p Pos, d Direction) Wall {
	switch d {
	case North:
		return Wall{From: Pos{X: p.X, Y: p.Y + 1}, To: Pos{X: p.X + 1, Y: p.Y + 1}}
	case East:
		return Wall{From: Pos{X: p.X + 1, Y: p.Y}, To: Pos{X: p.X + 1, Y: p.Y + 1}}
	case South:
		return Wall{From: p, To: Pos{X: p.X + 1, Y: p.Y}}
	default:
		return Wall{From: p, To: Pos{X: p.X, Y: p.Y + 1}}
	}
}

// WallToIndex maps a wall to its index within its orientation's space.
func (m Map) WallToIndex(w Wall) (int, bool) {
	if m.CellCount() == 0 || !w.valid() {
		return 0, false
	}
	cols, rows := m.wallSpace(w.Orientation())
	return posToIndex(w.From, cols, rows)
}

// WallIndexToWall maps an index within orientation o's space to its wall.
func (m Map) WallIndexToWall(i int, o Orientation) (Wall, bool) {
	if m.CellCount() == 0 {
		return Wall{}, false
	}
	cols, rows := m.wallSpace(o)
	from, ok := indexToPos(i, cols, rows)
	if !ok {
		return Wall{}, false
	}
	if o == Horizontal {
		return Wall{From: from, To: Pos{X: from.X + 1, Y: from.Y}}, true
	}
	return Wall{From: from, To: Pos{X: from.X, Y: from.Y + 1}}, true
}

// Cells yields every cell in row-major order.
func (m Map) Cells() iter.Seq[Pos] {
	return func(yield func(Pos) bool) {
		for i := 0; i < m.CellCount(); i++ {
			p, _ := m.CellIndexToPos(i)
			if !yield(p) {
				return
			}
		}
	}
}

// Points yields every corner point in row-major order.
func (m Map) Points() iter.Seq[Pos] {
	return func(yield func(Pos) bool) {
		for i := 0; i < m.PointCount(); i++ {
			p, _ := m.PointIndexToPos(i)
			if !yield(p) {
				return
			}
		}
	}
}

// Walls yields every wall of orientation o in index order.
func (m Map) Walls(o Orientation) iter.Seq[Wall] {
	return func(yield func(Wall) bool) {
		for i := 0; i < m.WallCount(o); i++ {
			w, _ := m.WallIndexToWall(i, o)
			if !yield(w) {
				return
			}
		}
	}
}

// NorthEastCell returns the far corner cell, the conventional origin of the
// first solver sweep.
func (m Map) NorthEastCell() Pos {
	return Pos{X: m.columns - 1, Y: m.rows - 1}
}

// ScaleToFit returns the largest cell size at which the whole grid fits in a
// width×height area.
func (m Map) ScaleToFit(width, height float64) float64 {
	if m.CellCount() == 0 {
		return 0
	}
	return min(width/float64(m.columns), height/float64(m.rows))
}

// CenterOffset returns the origin that centers the grid, drawn at scale,
// around (0, 0).
func (m Map) CenterOffset(scale float64) (float64, float64) {
	return -float64(m.columns) * scale / 2, -float64(m.rows) * scale / 2
}

// wallSpace returns the dimensions of the index space for walls of
// orientation o.
func (m Map) wallSpace(o Orientation) (int, int) {
	if o == Horizontal {
		return m.columns, m.rows + 1
	}
	return m.columns + 1, m.rows
}

func inBounds(p Pos, columns, rows int) bool {
	return p.X >= 0 && p.X < columns && p.Y >= 0 && p.Y < rows
}

func posToIndex(p Pos, columns, rows int) (int, bool) {
	if !inBounds(p, columns, rows) {
		return 0, false
	}
	return p.Y*columns + p.X, true
}

func indexToPos(i, columns, rows int) (Pos, bool) {
	if i < 0 || i >= columns*rows {
		return Pos{}, false
	}
	return Pos{X: i % columns, Y: i / columns}, true
}
