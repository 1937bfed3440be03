package game

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/tui-battleship/internal/board"
	"github.com/vovakirdan/tui-battleship/internal/core"
)

// Board drawing geometry, in screen cells.
const (
	cellWidth   = 3
	labelWidth  = 2
	BoardWidth  = labelWidth + board.Cols*cellWidth
	BoardHeight = 2 + board.Rows // title, column header, rows
)

// CellOrigin returns the screen position of the symbol for c on a board drawn at (x, y).
func CellOrigin(x, y int, c core.Coord) (int, int) {
	return x + labelWidth + c.Col*cellWidth + 1, y + 2 + c.Row
}

// DrawBoard draws g with a title, column numbers and row numbers.
func DrawBoard(scr *core.Screen, x, y int, title string, g *board.Grid, censored bool) {
	scr.DrawTextColored(x, y, title, core.ColorBrightWhite)

	for c := 0; c < board.Cols; c++ {
		sx, _ := CellOrigin(x, y, core.C(0, c))
		scr.DrawTextColored(sx, y+1, strconv.Itoa(c), core.ColorGray)
	}

	for r := 0; r < board.Rows; r++ {
		scr.DrawTextColored(x, y+2+r, strconv.Itoa(r), core.ColorGray)
		for c := 0; c < board.Cols; c++ {
			coord := core.C(r, c)
			sym := g.Show(coord, censored)
			sx, sy := CellOrigin(x, y, coord)
			scr.SetColored(sx, sy, sym, SymbolColor(sym))
		}
	}
}

// SymbolColor returns the colour a board symbol is drawn in.
func SymbolColor(sym rune) core.Color {
	switch sym {
	case board.SymbolHit:
		return core.ColorBrightRed
	case board.SymbolMiss:
		return core.ColorCyan
	case board.SymbolUnknown:
		return core.ColorBlue
	default:
		return core.ColorGreen
	}
}

// StatusLines lists every ship of p's fleet as "Name: Alive!" or "Name: Destroyed!".
func StatusLines(p *Player) []string {
	status := p.Grid.Fleet().Status()
	lines := make([]string, 0, len(status))
	for _, s := range status {
		state := "Alive!"
		if s.Destroyed {
			state = "Destroyed!"
		}
		lines = append(lines, fmt.Sprintf("%s: %s", s.Kind.Name, state))
	}
	return lines
}

// Describe returns a one-line account of a turn, e.g.
// "Jack Sparrow fires at (2,3): hit Destroyer and sinks it! Direct hit!".
func Describe(r TurnResult) string {
	var outcome string
	switch {
	case r.Shot.Sunk:
		outcome = fmt.Sprintf("hit %s and sinks it!", r.Shot.Kind.Name)
	case r.Shot.Hit:
		outcome = fmt.Sprintf("hit %s.", r.Shot.Kind.Name)
	default:
		outcome = "miss."
	}
	s := fmt.Sprintf("%s fires at %v: %s", r.Actor.Name, r.Shot.Coord, outcome)
	if r.Phrase != "" {
		s += " " + r.Phrase
	}
	return s
}
