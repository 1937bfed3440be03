package board

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-battleship/internal/core"
)

var (
	// ErrOutOfBounds is returned for coordinates outside the grid.
	ErrOutOfBounds = errors.New("coordinate out of bounds")

	// ErrAlreadyAttempted is returned by move validation for a cell that was already fired at.
	ErrAlreadyAttempted = errors.New("cell already attempted")

	// ErrAlreadyFired is returned by Fire when the caller skipped validation
	// and fired at the same cell twice.
	ErrAlreadyFired = errors.New("cell already fired at")

	// ErrOverlap is returned when a layout puts two ships on one cell.
	ErrOverlap = errors.New("ships overlap")
)

// MoveError reports why a coordinate cannot be fired at.
type MoveError struct {
	Coord core.Coord
	Err   error
}

func (e *MoveError) Error() string {
	return fmt.Sprintf("board: invalid move %v: %v", e.Coord, e.Err)
}

func (e *MoveError) Unwrap() error {
	return e.Err
}
