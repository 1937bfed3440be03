// Package game coordinates a match: two players, each with a grid and a move
// source, taking turns firing at each other until one fleet is destroyed.
package game

import (
	"math/rand"

	"github.com/vovakirdan/tui-battleship/internal/board"
	"github.com/vovakirdan/tui-battleship/internal/core"
	"github.com/vovakirdan/tui-battleship/internal/targeting"
)

// MoveSource produces the next coordinate to fire at.
// opponent is the read-only view of the grid being attacked and pending is
// the acting player's own hit history.
type MoveSource interface {
	NextMove(opponent board.View, pending *targeting.History) (core.Coord, error)
}

// Player is one side of a match.
type Player struct {
	Name    string
	Grid    *board.Grid
	Source  MoveSource
	History *targeting.History
	CPU     bool
}

// NewPlayer creates a player with an empty hit history.
func NewPlayer(name string, grid *board.Grid, src MoveSource, cpu bool) *Player {
	return &Player{
		Name:    name,
		Grid:    grid,
		Source:  src,
		History: &targeting.History{},
		CPU:     cpu,
	}
}

// Kind returns "cpu" or "human".
func (p *Player) Kind() string {
	if p.CPU {
		return "cpu"
	}
	return "human"
}

// DefaultCPUName is the computer player's name unless configured otherwise.
const DefaultCPUName = "Jack Sparrow"

// DefaultNames are picked from when a human player gives no name.
var DefaultNames = []string{
	"Will Turner",
	"Elizabeth Swann",
	"Hector Barbossa",
	"Joshamee Gibbs",
	"Tia Dalma",
}

// RandomName picks a name from names, or from DefaultNames when names is empty.
func RandomName(rng *rand.Rand, names []string) string {
	if len(names) == 0 {
		names = DefaultNames
	}
	return names[rng.Intn(len(names))]
}
