package game

import (
	"time"

	"github.com/vovakirdan/tui-battleship/internal/board"
	"github.com/vovakirdan/tui-battleship/internal/targeting"
)

// Result summarises a finished match.
type Result struct {
	MatchID    string
	Winner     string
	WinnerKind string // "cpu" or "human"
	Loser      string
	LoserKind  string
	Turns      int
	Shots      int // shots fired by the winner
	Hits       int
	Duration   time.Duration
	FinishedAt time.Time
}

// Result returns the summary of a finished match. It is the zero value while
// the match is still running.
func (m *Match) Result() Result {
	if !m.Over() {
		return Result{}
	}
	w, l := m.players[m.winner], m.players[1-m.winner]
	st := m.stats[m.winner]
	return Result{
		MatchID:    m.id,
		Winner:     w.Name,
		WinnerKind: w.Kind(),
		Loser:      l.Name,
		LoserKind:  l.Kind(),
		Turns:      m.turns,
		Shots:      st.Shots,
		Hits:       st.Hits,
		Duration:   m.finished.Sub(m.started),
		FinishedAt: m.finished,
	}
}

// Snapshot captures the match state for determinism testing.
type Snapshot struct {
	Turns     int
	Current   int
	Winner    int
	Stats     [2]Stats
	Pending   [2]int
	Boards    [2][]board.CellState
	Remaining [2]int
}

// Snapshot returns the current match snapshot.
func (m *Match) Snapshot() Snapshot {
	s := Snapshot{
		Turns:   m.turns,
		Current: m.current,
		Winner:  m.winner,
		Stats:   m.stats,
	}
	for i, p := range m.players {
		s.Pending[i] = pendingLen(p.History)
		s.Boards[i] = p.Grid.Serialize()
		s.Remaining[i] = p.Grid.Fleet().Remaining()
	}
	return s
}

func pendingLen(h *targeting.History) int {
	if h == nil {
		return 0
	}
	return h.Len()
}
