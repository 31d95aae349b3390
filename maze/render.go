package maze

import (
	"strings"
	"unicode/utf8"

	"github.com/beka-birhanu/vinom-maze/grid"
)

// Render draws the maze as ASCII with the northernmost row on top. Cells
// listed in marks are labelled with up to three characters.
func Render(g grid.Map, walls Walls, marks map[grid.Pos]string) string {
	var b strings.Builder
	if g.CellCount() == 0 {
		return ""
	}

	for y := g.Rows(); y >= 0; y-- {
		// Horizontal walls along lattice row y.
		b.WriteString("+")
		for x := 0; x < g.Columns(); x++ {
			if walls.Has(grid.Wall{From: grid.Pos{X: x, Y: y}, To: grid.Pos{X: x + 1, Y: y}}) {
				b.WriteString("   +")
			} else {
				b.WriteString("---+")
			}
		}
		b.WriteString("\n")

		if y == 0 {
			break
		}

		// Cells of row y-1 and the vertical walls between them.
		row := y - 1
		for x := 0; x <= g.Columns(); x++ {
			if walls.Has(grid.Wall{From: grid.Pos{X: x, Y: row}, To: grid.Pos{X: x, Y: row + 1}}) {
				b.WriteString(" ")
			} else {
				b.WriteString("|")
			}
			if x < g.Columns() {
				b.WriteString(cellLabel(marks[grid.Pos{X: x, Y: row}]))
			}
		}
		b.WriteString("\n")
	}

	return b.String()
}

// cellLabel centers label in a three-character cell.
func cellLabel(label string) string {
	for utf8.RuneCountInString(label) > 3 {
		_, size := utf8.DecodeLastRuneInString(label)
		label = label[:len(label)-size]
	}
	switch utf8.RuneCountInString(label) {
	case 0:
		return "   "
	case 1:
		return " " + label + " "
	case 2:
		return label + " "
	}
	return label
}
