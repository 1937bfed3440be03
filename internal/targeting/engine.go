// Package targeting picks shots for computer players.
//
// The Engine hunts at random until it scores a hit, then probes the axis
// neighbours of its pending hits until the ship sinks. It does not follow a
// discovered axis, so it may probe perpendicular to a ship it has already
// lined up on.
package targeting

import (
	"errors"
	"math/rand"

	"github.com/vovakirdan/tui-battleship/internal/board"
	"github.com/vovakirdan/tui-battleship/internal/core"
)

// ErrNoMoves is returned when every cell of the opponent's grid has been fired at.
var ErrNoMoves = errors.New("targeting: no valid moves left")

// DefaultHuntAttempts bounds random sampling in hunt mode before the
// row-major scan takes over.
const DefaultHuntAttempts = 256

// Mode is the engine's current search strategy.
type Mode uint8

const (
	ModeHunt Mode = iota
	ModeTarget
)

// String returns the mode name.
func (m Mode) String() string {
	if m == ModeTarget {
		return "target"
	}
	return "hunt"
}

// Engine is the hunt/target CPU strategy.
type Engine struct {
	rng          *rand.Rand
	huntAttempts int
}

// Option configures an Engine.
type Option func(*Engine)

// WithHuntAttempts sets the random sampling budget of hunt mode.
func WithHuntAttempts(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.huntAttempts = n
		}
	}
}

// NewEngine returns an engine drawing random numbers from rng.
func NewEngine(rng *rand.Rand, opts ...Option) *Engine {
	e := &Engine{rng: rng, huntAttempts: DefaultHuntAttempts}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ModeFor returns the mode PickMove will start in for the given history.
func ModeFor(pending *History) Mode {
	if pending != nil && pending.Len() > 0 {
		return ModeTarget
	}
	return ModeHunt
}

// PickMove returns the next cell to fire at on the opponent's grid.
// In target mode the first valid neighbour of the pending hits is chosen.
// If none is valid the history is cleared and the engine hunts instead.
func (e *Engine) PickMove(opponent board.View, pending *History) (core.Coord, error) {
	if ModeFor(pending) == ModeTarget {
		for _, c := range opponent.SurroundingPositions(pending.Hits()) {
			if opponent.IsValidMove(c) {
				return c, nil
			}
		}
		pending.Clear()
	}
	return hunt(e.rng, opponent, e.huntAttempts)
}

// NextMove lets the engine act as a player's move source.
func (e *Engine) NextMove(opponent board.View, pending *History) (core.Coord, error) {
	return e.PickMove(opponent, pending)
}

// Random fires at uniformly sampled valid cells and never enters target mode.
type Random struct {
	rng          *rand.Rand
	huntAttempts int
}

// NewRandom returns a pure hunt strategy.
func NewRandom(rng *rand.Rand) *Random {
	return &Random{rng: rng, huntAttempts: DefaultHuntAttempts}
}

// NextMove picks a random unattempted cell.
func (r *Random) NextMove(opponent board.View, _ *History) (core.Coord, error) {
	return hunt(r.rng, opponent, r.huntAttempts)
}

// hunt samples random cells up to attempts times, then scans row-major for
// the first valid cell.
func hunt(rng *rand.Rand, opponent board.View, attempts int) (core.Coord, error) {
	for i := 0; i < attempts; i++ {
		c := core.C(rng.Intn(board.Rows), rng.Intn(board.Cols))
		if opponent.IsValidMove(c) {
			return c, nil
		}
	}

	for r := 0; r < board.Rows; r++ {
		for c := 0; c < board.Cols; c++ {
			if opponent.IsValidMove(core.C(r, c)) {
				return core.C(r, c), nil
			}
		}
	}
	return core.Coord{}, ErrNoMoves
}
