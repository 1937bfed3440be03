package board

import (
	"github.com/vovakirdan/tui-battleship/internal/core"
	"github.com/vovakirdan/tui-battleship/internal/fleet"
)

// Cell is one square of the grid.
// It refers to the occupying ship by index into the grid's fleet; the fleet owns the ship.
type Cell struct {
	Attempted bool
	ship      int // -1 when empty
	piece     int
}

func emptyCell() Cell {
	return Cell{ship: -1}
}

// Empty returns true if no ship piece occupies the cell.
func (c Cell) Empty() bool {
	return c.ship < 0
}

// CellState is the opponent-visible state of a cell.
type CellState uint8

const (
	StateUnknown CellState = iota // not yet fired at
	StateMiss                     // fired at, empty
	StateHit                      // fired at, ship piece
)

// String returns a short name for the state.
func (s CellState) String() string {
	switch s {
	case StateMiss:
		return "miss"
	case StateHit:
		return "hit"
	default:
		return "unknown"
	}
}

// State returns the opponent-visible state of the cell.
func (c Cell) State() CellState {
	switch {
	case !c.Attempted:
		return StateUnknown
	case c.Empty():
		return StateMiss
	default:
		return StateHit
	}
}

// Shot is the outcome of firing at one cell.
type Shot struct {
	Coord core.Coord
	Hit   bool
	Sunk  bool
	Kind  fleet.Kind // Zero unless Hit
}

// Placement positions one ship on the grid.
type Placement struct {
	Kind        fleet.Kind
	Anchor      core.Coord // First piece; the rest extend right or down
	Orientation core.Orientation
}

// Coords returns the cells the ship covers, in piece order.
func (p Placement) Coords() []core.Coord {
	dr, dc := p.Orientation.Delta()
	coords := make([]core.Coord, p.Kind.Length)
	for i := range coords {
		coords[i] = p.Anchor.Add(i*dr, i*dc)
	}
	return coords
}
