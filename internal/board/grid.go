// Package board implements the 8x8 battleship grid: randomized ship placement,
// move validation and firing. It is UI-agnostic and deterministic for a given
// random source.
package board

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-battleship/internal/core"
	"github.com/vovakirdan/tui-battleship/internal/fleet"
)

// Grid dimensions.
const (
	Rows = 8
	Cols = 8
)

// DefaultMaxPlacementAttempts caps random sampling per ship before the
// row-major fallback scan takes over.
const DefaultMaxPlacementAttempts = 1000

// Grid owns the cells of one side and the fleet placed on them.
type Grid struct {
	cells      [Rows][Cols]Cell
	fleet      *fleet.Fleet
	placements []Placement
}

type options struct {
	maxAttempts int
	kinds       []fleet.Kind
}

// Option configures grid construction.
type Option func(*options)

// WithMaxAttempts sets the random placement budget per ship.
func WithMaxAttempts(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxAttempts = n
		}
	}
}

// WithKinds places the given ship kinds instead of the standard catalog.
func WithKinds(kinds []fleet.Kind) Option {
	return func(o *options) {
		o.kinds = kinds
	}
}

func newEmpty(kinds []fleet.Kind) *Grid {
	g := &Grid{
		fleet:      fleet.New(kinds),
		placements: make([]Placement, 0, len(kinds)),
	}
	for r := range g.cells {
		for c := range g.cells[r] {
			g.cells[r][c] = emptyCell()
		}
	}
	return g
}

// New returns a grid with every ship placed at a random location and orientation.
// Ships are placed in catalog order and a placed ship is never moved to make room
// for a later one.
func New(rng *rand.Rand, opts ...Option) (*Grid, error) {
	o := options{
		maxAttempts: DefaultMaxPlacementAttempts,
		kinds:       fleet.Catalog(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	g := newEmpty(o.kinds)
	for i, k := range o.kinds {
		if err := g.placeRandom(rng, i, k, o.maxAttempts); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// NewWithLayout builds a grid from explicit placements.
func NewWithLayout(layout []Placement) (*Grid, error) {
	kinds := make([]fleet.Kind, len(layout))
	for i, p := range layout {
		kinds[i] = p.Kind
	}

	g := newEmpty(kinds)
	for i, p := range layout {
		if err := g.checkPlacement(p); err != nil {
			return nil, fmt.Errorf("board: cannot place %s at %v %s: %w", p.Kind.Name, p.Anchor, p.Orientation, err)
		}
		g.place(i, p)
	}
	return g, nil
}

type slot struct {
	anchor core.Coord
	orient core.Orientation
}

// placeRandom rejection-samples an anchor and orientation for ship i,
// remembering failed slots, then falls back to a row-major scan.
func (g *Grid) placeRandom(rng *rand.Rand, i int, k fleet.Kind, maxAttempts int) error {
	tried := make(map[slot]bool)
	for attempt := 0; attempt < maxAttempts && len(tried) < Rows*Cols*2; attempt++ {
		s := slot{
			anchor: core.C(rng.Intn(Rows), rng.Intn(Cols)),
			orient: core.Orientation(rng.Intn(2)),
		}
		if tried[s] {
			continue
		}

		p := Placement{Kind: k, Anchor: s.anchor, Orientation: s.orient}
		if g.checkPlacement(p) == nil {
			g.place(i, p)
			return nil
		}
		tried[s] = true
	}

	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			for _, o := range []core.Orientation{core.Horizontal, core.Vertical} {
				p := Placement{Kind: k, Anchor: core.C(r, c), Orientation: o}
				if g.checkPlacement(p) == nil {
					g.place(i, p)
					return nil
				}
			}
		}
	}
	return fmt.Errorf("board: no room left for %s", k.Name)
}

// checkPlacement verifies that every cell of p is inside the grid and empty.
func (g *Grid) checkPlacement(p Placement) error {
	for _, c := range p.Coords() {
		if !c.In(Rows, Cols) {
			return ErrOutOfBounds
		}
		if !g.cells[c.Row][c.Col].Empty() {
			return ErrOverlap
		}
	}
	return nil
}

// place writes ship i's pieces into the cells of p in index order.
func (g *Grid) place(i int, p Placement) {
	for piece, c := range p.Coords() {
		cell := &g.cells[c.Row][c.Col]
		cell.ship = i
		cell.piece = piece
	}
	g.placements = append(g.placements, p)
}

// Fleet returns the fleet placed on this grid.
func (g *Grid) Fleet() *fleet.Fleet {
	return g.fleet
}

// Placements returns where each ship was placed, in fleet order.
func (g *Grid) Placements() []Placement {
	out := make([]Placement, len(g.placements))
	copy(out, g.placements)
	return out
}

// Cell returns the cell at c. Out-of-bounds coordinates yield an empty cell.
func (g *Grid) Cell(c core.Coord) Cell {
	if !c.In(Rows, Cols) {
		return emptyCell()
	}
	return g.cells[c.Row][c.Col]
}

// ShipAt returns the ship occupying c, if any.
func (g *Grid) ShipAt(c core.Coord) (*fleet.Ship, bool) {
	cell := g.Cell(c)
	if cell.Empty() {
		return nil, false
	}
	return g.fleet.Ships[cell.ship], true
}

// Occupied returns every coordinate holding a ship piece, row-major.
func (g *Grid) Occupied() []core.Coord {
	var coords []core.Coord
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			if !g.cells[r][c].Empty() {
				coords = append(coords, core.C(r, c))
			}
		}
	}
	return coords
}

// AllDestroyed returns true if every ship on this grid has been sunk.
func (g *Grid) AllDestroyed() bool {
	return g.fleet.AllDestroyed()
}
