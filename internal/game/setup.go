package game

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-battleship/internal/board"
	"github.com/vovakirdan/tui-battleship/internal/targeting"
)

// Setup holds the tunables for creating players.
type Setup struct {
	MaxPlacementAttempts int
	HuntAttempts         int
}

// DefaultSetup returns the built-in budgets.
func DefaultSetup() Setup {
	return Setup{
		MaxPlacementAttempts: board.DefaultMaxPlacementAttempts,
		HuntAttempts:         targeting.DefaultHuntAttempts,
	}
}

// Grid places a fresh fleet at random.
func (s Setup) Grid(rng *rand.Rand) (*board.Grid, error) {
	return board.New(rng, board.WithMaxAttempts(s.MaxPlacementAttempts))
}

// Human creates a player driven by src.
func (s Setup) Human(name string, rng *rand.Rand, src MoveSource) (*Player, error) {
	g, err := s.Grid(rng)
	if err != nil {
		return nil, fmt.Errorf("game: cannot set up %s: %w", name, err)
	}
	return NewPlayer(name, g, src, false), nil
}

// CPU creates a player driven by the hunt/target engine.
func (s Setup) CPU(name string, rng *rand.Rand) (*Player, error) {
	g, err := s.Grid(rng)
	if err != nil {
		return nil, fmt.Errorf("game: cannot set up %s: %w", name, err)
	}
	engine := targeting.NewEngine(rng, targeting.WithHuntAttempts(s.HuntAttempts))
	return NewPlayer(name, g, engine, true), nil
}
