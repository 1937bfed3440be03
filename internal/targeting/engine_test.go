package targeting

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-battleship/internal/board"
	"github.com/vovakirdan/tui-battleship/internal/core"
	"github.com/vovakirdan/tui-battleship/internal/fleet"
)

// sparseLayout keeps ships away from the centre so probes around (2,2) miss.
func sparseLayout() []board.Placement {
	return []board.Placement{
		{Kind: fleet.Carrier, Anchor: core.C(7, 0), Orientation: core.Horizontal},
		{Kind: fleet.Battleship, Anchor: core.C(0, 7), Orientation: core.Vertical},
		{Kind: fleet.Frigate, Anchor: core.C(5, 5), Orientation: core.Horizontal},
		{Kind: fleet.Submarine, Anchor: core.C(0, 0), Orientation: core.Horizontal},
		{Kind: fleet.Destroyer, Anchor: core.C(2, 2), Orientation: core.Horizontal},
	}
}

func newGrid(t *testing.T) *board.Grid {
	t.Helper()
	g, err := board.NewWithLayout(sparseLayout())
	if err != nil {
		t.Fatalf("NewWithLayout() failed: %v", err)
	}
	return g
}

func TestHistoryRecord(t *testing.T) {
	var h History

	h.Record(board.Shot{Coord: core.C(0, 0)})
	if h.Len() != 0 {
		t.Fatalf("miss should not be recorded, len = %d", h.Len())
	}

	h.Record(board.Shot{Coord: core.C(1, 1), Hit: true})
	h.Record(board.Shot{Coord: core.C(1, 2), Hit: true})
	if h.Len() != 2 {
		t.Fatalf("len = %d, expected 2", h.Len())
	}
	if hits := h.Hits(); hits[0] != core.C(1, 1) || hits[1] != core.C(1, 2) {
		t.Errorf("hits = %v", hits)
	}

	h.Record(board.Shot{Coord: core.C(1, 3), Hit: true, Sunk: true})
	if h.Len() != 0 {
		t.Errorf("sunk should clear history, len = %d", h.Len())
	}
}

func TestHuntReturnsValidMoves(t *testing.T) {
	g := newGrid(t)
	e := NewEngine(rand.New(rand.NewSource(1)))
	var h History

	seen := make(map[core.Coord]bool)
	for i := 0; i < board.Rows*board.Cols; i++ {
		c, err := e.PickMove(g, &h)
		if err != nil {
			t.Fatalf("PickMove() failed on move %d: %v", i, err)
		}
		if seen[c] {
			t.Fatalf("move %v returned twice", c)
		}
		seen[c] = true
		if _, err := g.Fire(c); err != nil {
			t.Fatalf("Fire(%v) failed: %v", c, err)
		}
	}

	if _, err := e.PickMove(g, &h); !errors.Is(err, ErrNoMoves) {
		t.Errorf("exhausted grid should give ErrNoMoves, got %v", err)
	}
}

func TestTargetModeProbesNeighbours(t *testing.T) {
	g := newGrid(t)
	e := NewEngine(rand.New(rand.NewSource(1)))
	var h History

	shot, err := g.Fire(core.C(2, 2))
	if err != nil || !shot.Hit {
		t.Fatalf("Fire(2,2) = %+v, %v; expected a hit", shot, err)
	}
	h.Record(shot)

	want := []core.Coord{core.C(1, 2), core.C(3, 2), core.C(2, 1), core.C(2, 3)}
	for i, w := range want {
		if ModeFor(&h) != ModeTarget {
			t.Fatalf("step %d: expected target mode", i)
		}
		c, err := e.PickMove(g, &h)
		if err != nil {
			t.Fatalf("PickMove() failed: %v", err)
		}
		if c != w {
			t.Fatalf("step %d: picked %v, expected %v", i, c, w)
		}
		shot, err := g.Fire(c)
		if err != nil {
			t.Fatal(err)
		}
		h.Record(shot)
	}

	// (2,3) sank the destroyer
	if h.Len() != 0 {
		t.Errorf("history should be empty after sinking, got %v", h.Hits())
	}
	if ModeFor(&h) != ModeHunt {
		t.Error("expected hunt mode after sinking")
	}
}

func TestTargetModeFallsBackToHunt(t *testing.T) {
	g := newGrid(t)
	e := NewEngine(rand.New(rand.NewSource(5)))
	var h History

	// Every neighbour of (2,2) is already attempted.
	for _, c := range []core.Coord{core.C(2, 2), core.C(1, 2), core.C(3, 2), core.C(2, 1), core.C(2, 3)} {
		if _, err := g.Fire(c); err != nil {
			t.Fatal(err)
		}
	}
	h.Record(board.Shot{Coord: core.C(2, 2), Hit: true})

	c, err := e.PickMove(g, &h)
	if err != nil {
		t.Fatalf("PickMove() failed: %v", err)
	}
	if !g.IsValidMove(c) {
		t.Errorf("fallback move %v is not valid", c)
	}
	if h.Len() != 0 {
		t.Errorf("history should be cleared, got %v", h.Hits())
	}
}

func TestHuntScanAfterBudget(t *testing.T) {
	g := newGrid(t)
	// Leave only (7,7) open.
	for r := 0; r < board.Rows; r++ {
		for c := 0; c < board.Cols; c++ {
			if r == 7 && c == 7 {
				continue
			}
			if _, err := g.Fire(core.C(r, c)); err != nil {
				t.Fatal(err)
			}
		}
	}

	e := NewEngine(rand.New(rand.NewSource(9)), WithHuntAttempts(1))
	var h History
	for i := 0; i < 20; i++ {
		c, err := e.PickMove(g, &h)
		if err != nil {
			t.Fatalf("PickMove() failed: %v", err)
		}
		if c != core.C(7, 7) {
			t.Fatalf("picked %v, expected (7,7)", c)
		}
	}
}

func TestEngineDeterministic(t *testing.T) {
	pick := func() []core.Coord {
		g := newGrid(t)
		e := NewEngine(rand.New(rand.NewSource(77)))
		var h History
		var moves []core.Coord
		for i := 0; i < 30; i++ {
			c, err := e.NextMove(g, &h)
			if err != nil {
				t.Fatal(err)
			}
			shot, _ := g.Fire(c)
			h.Record(shot)
			moves = append(moves, c)
		}
		return moves
	}

	a, b := pick(), pick()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("move %d differs: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestRandomIgnoresHistory(t *testing.T) {
	g := newGrid(t)
	r := NewRandom(rand.New(rand.NewSource(3)))
	h := History{}
	h.Record(board.Shot{Coord: core.C(2, 2), Hit: true})

	for i := 0; i < board.Rows*board.Cols; i++ {
		c, err := r.NextMove(g, &h)
		if err != nil {
			t.Fatalf("NextMove() failed: %v", err)
		}
		if _, err := g.Fire(c); err != nil {
			t.Fatalf("Fire(%v) failed: %v", c, err)
		}
	}
	if h.Len() != 1 {
		t.Error("Random should not touch the history")
	}
	if _, err := r.NextMove(g, &h); !errors.Is(err, ErrNoMoves) {
		t.Errorf("expected ErrNoMoves, got %v", err)
	}
}
