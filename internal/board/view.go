package board

import (
	"strconv"
	"strings"

	"github.com/vovakirdan/tui-battleship/internal/core"
)

// View is the read-only face of a grid that move sources and renderers get.
type View interface {
	ValidateMove(c core.Coord) error
	IsValidMove(c core.Coord) bool
	SurroundingPositions(coords []core.Coord) []core.Coord
	Show(c core.Coord, censored bool) rune
	Serialize() []CellState
}

var _ View = (*Grid)(nil)

// Board symbols.
const (
	SymbolUnknown = '.'
	SymbolMiss    = 'O'
	SymbolHit     = 'X'
)

// Show returns the symbol for c.
// Censored views hide unhit ships, as the opponent sees the board.
func (g *Grid) Show(c core.Coord, censored bool) rune {
	cell := g.Cell(c)
	switch {
	case cell.Attempted && cell.Empty():
		return SymbolMiss
	case cell.Attempted:
		return SymbolHit
	case cell.Empty() || censored:
		return SymbolUnknown
	default:
		return g.fleet.Ships[cell.ship].Kind.Symbol
	}
}

// Text renders the grid as a tab-separated table with row and column headers.
func (g *Grid) Text(censored bool) string {
	var sb strings.Builder
	sb.WriteString("\t")
	for c := 0; c < Cols; c++ {
		sb.WriteString(strconv.Itoa(c))
		sb.WriteString("\t")
	}
	sb.WriteString("\n")

	for r := 0; r < Rows; r++ {
		sb.WriteString(strconv.Itoa(r))
		sb.WriteString("\t")
		for c := 0; c < Cols; c++ {
			if c > 0 {
				sb.WriteString("\t")
			}
			sb.WriteRune(g.Show(core.C(r, c), censored))
		}
		sb.WriteString("\n\n")
	}
	return sb.String()
}

// Serialize flattens the opponent-visible state into Rows*Cols values, row-major.
func (g *Grid) Serialize() []CellState {
	out := make([]CellState, 0, Rows*Cols)
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			out = append(out, g.cells[r][c].State())
		}
	}
	return out
}

// IndexOf returns the serialized index of c.
func IndexOf(c core.Coord) int {
	return c.Row*Cols + c.Col
}

// CoordAt returns the coordinate of serialized index i.
func CoordAt(i int) core.Coord {
	return core.C(i/Cols, i%Cols)
}
