package game

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-battleship/internal/board"
	"github.com/vovakirdan/tui-battleship/internal/core"
)

// Match errors.
var (
	ErrOwnGrid   = errors.New("game: a player cannot fire at their own grid")
	ErrMatchOver = errors.New("game: match is over")
	ErrNotTurn   = errors.New("game: not this player's turn")
)

// Stats counts one player's shots.
type Stats struct {
	Shots int
	Hits  int
	Sunk  int
}

// Accuracy returns hits per shot, or 0 before the first shot.
func (s Stats) Accuracy() float64 {
	if s.Shots == 0 {
		return 0
	}
	return float64(s.Hits) / float64(s.Shots)
}

// TurnResult describes one applied shot.
type TurnResult struct {
	Turn   int // 1-based
	Actor  *Player
	Target *Player
	Shot   board.Shot
	Phrase string
	Over   bool
}

// Match runs turns between two players. The first player moves first.
type Match struct {
	id       string
	players  [2]*Player
	stats    [2]Stats
	current  int
	turns    int
	winner   int // -1 while playing
	started  time.Time
	finished time.Time

	rng     *rand.Rand
	phrases Phrases
	logger  *log.Logger
}

// MatchOption configures a Match.
type MatchOption func(*Match)

// WithLogger logs every turn at debug level.
func WithLogger(l *log.Logger) MatchOption {
	return func(m *Match) {
		m.logger = l
	}
}

// WithPhrases overrides the hit and miss phrases.
func WithPhrases(p Phrases) MatchOption {
	return func(m *Match) {
		if len(p.Hit) > 0 && len(p.Miss) > 0 {
			m.phrases = p
		}
	}
}

// NewMatch starts a match between a and b. rng only drives flavour text.
func NewMatch(rng *rand.Rand, a, b *Player, opts ...MatchOption) *Match {
	m := &Match{
		id:      uuid.NewString()[:8],
		players: [2]*Player{a, b},
		winner:  -1,
		started: time.Now(),
		rng:     rng,
		phrases: DefaultPhrases(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// ID returns the short match identifier.
func (m *Match) ID() string {
	return m.id
}

// Players returns both players in turn order.
func (m *Match) Players() [2]*Player {
	return m.players
}

// Current returns the player whose turn it is.
func (m *Match) Current() *Player {
	return m.players[m.current]
}

// Opponent returns the player being fired at this turn.
func (m *Match) Opponent() *Player {
	return m.players[1-m.current]
}

// Stats returns the shot counters of player i (0 or 1).
func (m *Match) Stats(i int) Stats {
	return m.stats[i]
}

// Turns returns the number of shots applied so far.
func (m *Match) Turns() int {
	return m.turns
}

// Over reports whether one fleet has been destroyed.
func (m *Match) Over() bool {
	return m.winner >= 0
}

// Winner returns the winning player, or nil while the match is running.
func (m *Match) Winner() *Player {
	if m.winner < 0 {
		return nil
	}
	return m.players[m.winner]
}

func (m *Match) indexOf(p *Player) int {
	for i, q := range m.players {
		if q == p {
			return i
		}
	}
	return -1
}

// Step asks the current player's source for a move and applies it.
// If the source fails or the move is invalid the error is returned and the
// same player keeps the turn.
func (m *Match) Step() (TurnResult, error) {
	if m.Over() {
		return TurnResult{}, ErrMatchOver
	}

	actor, target := m.Current(), m.Opponent()
	c, err := actor.Source.NextMove(target.Grid, actor.History)
	if err != nil {
		return TurnResult{}, err
	}
	return m.Fire(actor, target.Grid, c)
}

// Fire applies actor's shot at c on target.
// target must be the opponent's grid and it must be actor's turn.
func (m *Match) Fire(actor *Player, target *board.Grid, c core.Coord) (TurnResult, error) {
	if m.Over() {
		return TurnResult{}, ErrMatchOver
	}
	if target == actor.Grid {
		return TurnResult{}, ErrOwnGrid
	}
	i := m.indexOf(actor)
	if i != m.current {
		return TurnResult{}, ErrNotTurn
	}
	opponent := m.players[1-i]
	if target != opponent.Grid {
		return TurnResult{}, fmt.Errorf("game: grid does not belong to %s", opponent.Name)
	}

	if err := target.ValidateMove(c); err != nil {
		return TurnResult{}, err
	}
	shot, err := target.Fire(c)
	if err != nil {
		return TurnResult{}, err
	}

	actor.History.Record(shot)
	m.turns++
	st := &m.stats[i]
	st.Shots++
	if shot.Hit {
		st.Hits++
	}
	if shot.Sunk {
		st.Sunk++
	}

	res := TurnResult{
		Turn:   m.turns,
		Actor:  actor,
		Target: opponent,
		Shot:   shot,
		Phrase: m.phrases.pick(m.rng, shot.Hit),
	}

	if target.AllDestroyed() {
		m.winner = i
		m.finished = time.Now()
		res.Over = true
	} else {
		m.current = 1 - m.current
	}

	if m.logger != nil {
		m.logger.Debug("turn",
			"match", m.id,
			"turn", m.turns,
			"actor", actor.Name,
			"at", c.String(),
			"hit", shot.Hit,
			"sunk", shot.Sunk,
		)
		if res.Over {
			m.logger.Info("match over", "match", m.id, "winner", actor.Name, "turns", m.turns)
		}
	}
	return res, nil
}

// Run steps until the match ends or a source fails.
func (m *Match) Run() (Result, error) {
	for !m.Over() {
		if _, err := m.Step(); err != nil {
			return Result{}, err
		}
	}
	return m.Result(), nil
}
