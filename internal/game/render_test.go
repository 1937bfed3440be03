package game

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-battleship/internal/board"
	"github.com/vovakirdan/tui-battleship/internal/core"
	"github.com/vovakirdan/tui-battleship/internal/fleet"
)

func TestDrawBoard(t *testing.T) {
	g := layoutGrid(t, rowLayout())
	g.Fire(core.C(0, 0))
	g.Fire(core.C(7, 7))

	scr := core.NewScreen(BoardWidth, BoardHeight)
	DrawBoard(scr, 0, 0, "Enemy", g, true)

	if !strings.HasPrefix(scr.Row(0), "Enemy") {
		t.Errorf("title row = %q", scr.Row(0))
	}

	checks := []struct {
		c     core.Coord
		sym   rune
		color core.Color
	}{
		{core.C(0, 0), board.SymbolHit, core.ColorBrightRed},
		{core.C(7, 7), board.SymbolMiss, core.ColorCyan},
		{core.C(1, 0), board.SymbolUnknown, core.ColorBlue},
	}
	for _, ch := range checks {
		x, y := CellOrigin(0, 0, ch.c)
		cell := scr.GetCell(x, y)
		if cell.Rune != ch.sym || cell.Color != ch.color {
			t.Errorf("cell %v = %q/%v, expected %q/%v", ch.c, cell.Rune, cell.Color, ch.sym, ch.color)
		}
	}

	DrawBoard(scr, 0, 0, "Own", g, false)
	x, y := CellOrigin(0, 0, core.C(1, 0))
	if got := scr.Get(x, y); got != 'B' {
		t.Errorf("uncensored (1,0) = %q, expected B", got)
	}
}

func TestStatusLines(t *testing.T) {
	p := NewPlayer("A", layoutGrid(t, rowLayout()), nil, false)
	p.Grid.Fire(core.C(4, 0))
	p.Grid.Fire(core.C(4, 1))

	lines := StatusLines(p)
	if len(lines) != 5 {
		t.Fatalf("got %d lines", len(lines))
	}
	if lines[0] != "Carrier: Alive!" {
		t.Errorf("lines[0] = %q", lines[0])
	}
	if lines[4] != "Destroyer: Destroyed!" {
		t.Errorf("lines[4] = %q", lines[4])
	}
}

func TestDescribe(t *testing.T) {
	actor := &Player{Name: "Jack Sparrow"}
	tests := []struct {
		shot board.Shot
		want string
	}{
		{board.Shot{Coord: core.C(1, 2)}, "Jack Sparrow fires at (1,2): miss."},
		{board.Shot{Coord: core.C(1, 2), Hit: true, Kind: fleet.Frigate}, "Jack Sparrow fires at (1,2): hit Frigate."},
		{board.Shot{Coord: core.C(1, 2), Hit: true, Sunk: true, Kind: fleet.Frigate}, "Jack Sparrow fires at (1,2): hit Frigate and sinks it!"},
	}
	for _, tc := range tests {
		if got := Describe(TurnResult{Actor: actor, Shot: tc.shot}); got != tc.want {
			t.Errorf("Describe() = %q, expected %q", got, tc.want)
		}
	}

	r := TurnResult{Actor: actor, Shot: board.Shot{}, Phrase: "Missed!"}
	if got := Describe(r); !strings.HasSuffix(got, " Missed!") {
		t.Errorf("Describe() = %q, expected phrase suffix", got)
	}
}

func TestPhrasesPick(t *testing.T) {
	p := DefaultPhrases()
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 10; i++ {
		hit := p.pick(rng, true)
		if !contains(p.Hit, hit) {
			t.Fatalf("hit phrase %q not in list", hit)
		}
		miss := p.pick(rng, false)
		if !contains(p.Miss, miss) {
			t.Fatalf("miss phrase %q not in list", miss)
		}
	}
	if got := (Phrases{}).pick(rng, true); got != "" {
		t.Errorf("empty phrases picked %q", got)
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
