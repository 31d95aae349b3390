package grid

import "fmt"

// Direction names one side of a cell.
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

var (
	// Directions lists every direction in the order neighbors are scanned.
	Directions = [4]Direction{North, East, South, West}

	offsets = [4]Pos{
		North: {X: 0, Y: 1},
		East:  {X: 1, Y: 0},
		South: {X: 0, Y: -1},
		West:  {X: -1, Y: 0},
	}
)

// Offset returns the unit step for d. North increases Y.
func (d Direction) Offset() Pos {
	return offsets[d&3]
}

// Opposite returns the direction facing back toward d's origin.
func (d Direction) Opposite() Direction {
	return (d + 2) & 3
}

func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// Orientation tells horizontal walls (fixed y) from vertical ones (fixed x).
type Orientation uint8

const (
	Horizontal Orientation = iota
	Vertical
)

func (o Orientation) String() string {
	if o == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// Wall is a unit edge of the point lattice. From is always the lesser
// endpoint, so two walls built from the same endpoints compare equal.
type Wall struct {
	From Pos `json:"from"`
	To   Pos `json:"to"`
}

// NewWall returns the wall joining a and b in canonical order.
func NewWall(a, b Pos) Wall {
	if b.Less(a) {
		a, b = b, a
	}
	return Wall{From: a, To: b}
}

// Orientation derives the wall's orientation from its endpoints.
func (w Wall) Orientation() Orientation {
	if w.From.X == w.To.X {
		return Vertical
	}
	return Horizontal
}

func (w Wall) String() string {
	return fmt.Sprintf("(%d,%d)-(%d,%d)", w.From.X, w.From.Y, w.To.X, w.To.Y)
}

// valid reports whether w is a canonical unit edge.
func (w Wall) valid() bool {
	dx, dy := w.To.X-w.From.X, w.To.Y-w.From.Y
	return (dx == 1 && dy == 0) || (dx == 0 && dy == 1)
}
