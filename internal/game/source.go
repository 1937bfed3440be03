package game

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/vovakirdan/tui-battleship/internal/board"
	"github.com/vovakirdan/tui-battleship/internal/core"
	"github.com/vovakirdan/tui-battleship/internal/targeting"
)

// ErrBadInput is returned for lines that are not a "row,col" pair.
var ErrBadInput = errors.New("game: expected input of the form row,col")

// ErrScriptDone is returned by a FixedSource that has run out of moves.
var ErrScriptDone = errors.New("game: scripted moves exhausted")

// ParseCoord parses "row,col" (spaces allowed around either number).
// Range checking is left to the grid.
func ParseCoord(s string) (core.Coord, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return core.Coord{}, fmt.Errorf("%w: %q", ErrBadInput, s)
	}
	row, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return core.Coord{}, fmt.Errorf("%w: %q", ErrBadInput, s)
	}
	col, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return core.Coord{}, fmt.Errorf("%w: %q", ErrBadInput, s)
	}
	return core.C(row, col), nil
}

// LineSource reads moves from text lines, one "row,col" per line.
type LineSource struct {
	scanner *bufio.Scanner
	prompt  io.Writer
}

// NewLineSource reads from r. If prompt is non-nil a prompt is written
// before each move is read.
func NewLineSource(r io.Reader, prompt io.Writer) *LineSource {
	return &LineSource{scanner: bufio.NewScanner(r), prompt: prompt}
}

// ReadLine returns the next trimmed input line, or io.EOF.
func (s *LineSource) ReadLine() (string, error) {
	if !s.scanner.Scan() {
		if err := s.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(s.scanner.Text()), nil
}

// NextMove reads and parses one line.
func (s *LineSource) NextMove(_ board.View, _ *targeting.History) (core.Coord, error) {
	if s.prompt != nil {
		fmt.Fprint(s.prompt, "Enter row,col: ")
	}
	line, err := s.ReadLine()
	if err != nil {
		return core.Coord{}, err
	}
	return ParseCoord(line)
}

// FixedSource replays a fixed list of moves.
type FixedSource struct {
	moves []core.Coord
	next  int
}

// NewFixedSource returns a source that yields moves in order.
func NewFixedSource(moves ...core.Coord) *FixedSource {
	return &FixedSource{moves: moves}
}

// NextMove returns the next scripted move without validating it.
func (s *FixedSource) NextMove(_ board.View, _ *targeting.History) (core.Coord, error) {
	if s.next >= len(s.moves) {
		return core.Coord{}, ErrScriptDone
	}
	c := s.moves[s.next]
	s.next++
	return c, nil
}

var (
	_ MoveSource = (*LineSource)(nil)
	_ MoveSource = (*FixedSource)(nil)
	_ MoveSource = (*targeting.Engine)(nil)
	_ MoveSource = (*targeting.Random)(nil)
)
