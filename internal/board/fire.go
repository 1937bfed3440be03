package board

import "github.com/vovakirdan/tui-battleship/internal/core"

// ValidateMove returns nil if c may be fired at, or a *MoveError explaining why not.
func (g *Grid) ValidateMove(c core.Coord) error {
	if !c.In(Rows, Cols) {
		return &MoveError{Coord: c, Err: ErrOutOfBounds}
	}
	if g.cells[c.Row][c.Col].Attempted {
		return &MoveError{Coord: c, Err: ErrAlreadyAttempted}
	}
	return nil
}

// IsValidMove reports whether c may be fired at.
func (g *Grid) IsValidMove(c core.Coord) bool {
	return g.ValidateMove(c) == nil
}

// Fire shoots at c. Callers are expected to validate first; firing twice
// at one cell fails with ErrAlreadyFired and changes nothing.
func (g *Grid) Fire(c core.Coord) (Shot, error) {
	if !c.In(Rows, Cols) {
		return Shot{}, &MoveError{Coord: c, Err: ErrOutOfBounds}
	}

	cell := &g.cells[c.Row][c.Col]
	if cell.Attempted {
		return Shot{}, &MoveError{Coord: c, Err: ErrAlreadyFired}
	}
	cell.Attempted = true

	shot := Shot{Coord: c}
	if cell.Empty() {
		return shot, nil
	}

	ship := g.fleet.Ships[cell.ship]
	shot.Hit = true
	shot.Sunk = ship.Hit(cell.piece)
	shot.Kind = ship.Kind
	return shot, nil
}

// SurroundingPositions returns the in-bounds axis neighbours of every input
// coordinate, without duplicates. Order follows the input, then Up, Down, Left, Right.
// Cell state is not consulted.
func (g *Grid) SurroundingPositions(coords []core.Coord) []core.Coord {
	return SurroundingPositions(coords)
}

// SurroundingPositions is the grid-independent form of Grid.SurroundingPositions.
func SurroundingPositions(coords []core.Coord) []core.Coord {
	seen := make(map[core.Coord]bool, len(coords)*4)
	out := make([]core.Coord, 0, len(coords)*4)
	for _, c := range coords {
		for _, d := range core.Neighbours {
			n := c.Step(d)
			if !n.In(Rows, Cols) || seen[n] {
				continue
			}
			seen[n] = true
			out = append(out, n)
		}
	}
	return out
}
