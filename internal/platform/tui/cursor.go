package tui

import (
	"errors"

	"github.com/vovakirdan/tui-battleship/internal/board"
	"github.com/vovakirdan/tui-battleship/internal/core"
	"github.com/vovakirdan/tui-battleship/internal/targeting"
)

// errNoAim is returned when the human's source is asked for a move before a
// cursor exists.
var errNoAim = errors.New("tui: no cursor")

// cursorSource is the human player's move source: it fires wherever the
// cursor currently points.
type cursorSource struct {
	pos   core.Coord
	ready bool
}

func newCursorSource() *cursorSource {
	return &cursorSource{ready: true}
}

// NextMove returns the cursor position.
func (s *cursorSource) NextMove(_ board.View, _ *targeting.History) (core.Coord, error) {
	if !s.ready {
		return core.Coord{}, errNoAim
	}
	return s.pos, nil
}

// Move shifts the cursor one cell, staying on the grid.
func (s *cursorSource) Move(d core.Dir) {
	next := s.pos.Step(d)
	s.pos = core.C(
		core.Clamp(next.Row, 0, board.Rows-1),
		core.Clamp(next.Col, 0, board.Cols-1),
	)
}

// Follow moves the cursor to the first unattempted neighbour of fired.
// The cursor stays put when every neighbour has been fired at.
func (s *cursorSource) Follow(view board.View, fired core.Coord) {
	for _, c := range view.SurroundingPositions([]core.Coord{fired}) {
		if view.IsValidMove(c) {
			s.pos = c
			return
		}
	}
}
