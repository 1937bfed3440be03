package targeting

import (
	"github.com/vovakirdan/tui-battleship/internal/board"
	"github.com/vovakirdan/tui-battleship/internal/core"
)

// History is the list of hits on ships that are not yet known to be sunk.
// Target mode probes around these cells.
type History struct {
	hits []core.Coord
}

// Record updates the history with the outcome of a shot.
// A hit is appended; a hit that sinks a ship clears the whole list.
func (h *History) Record(s board.Shot) {
	switch {
	case s.Sunk:
		h.Clear()
	case s.Hit:
		h.hits = append(h.hits, s.Coord)
	}
}

// Hits returns a copy of the pending hits, oldest first.
func (h *History) Hits() []core.Coord {
	out := make([]core.Coord, len(h.hits))
	copy(out, h.hits)
	return out
}

// Len returns the number of pending hits.
func (h *History) Len() int {
	return len(h.hits)
}

// Clear forgets every pending hit.
func (h *History) Clear() {
	h.hits = h.hits[:0]
}
