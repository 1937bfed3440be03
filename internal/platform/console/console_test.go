package console

import (
	"bytes"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-battleship/internal/config"
)

func newConsole(t *testing.T, input string) (*Console, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	c, err := New(Options{
		Config: config.Default(),
		Rng:    rand.New(rand.NewSource(3)),
		Name:   "Elizabeth Swann",
		In:     strings.NewReader(input),
		Out:    &out,
	})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return c, &out
}

func TestConsoleMenuCommands(t *testing.T) {
	c, out := newConsole(t, "h\ns\ni\nx\nq\n")

	if _, err := c.Run(); !errors.Is(err, ErrQuit) {
		t.Fatalf("Run() = %v, expected ErrQuit", err)
	}

	text := out.String()
	for _, want := range []string{
		"Ahoy Elizabeth Swann!",
		"Sink the enemy fleet",
		"Elizabeth Swann (you)",
		"Your fleet:",
		"Carrier: Alive!",
		`Unknown command "x"`,
	} {
		if !strings.Contains(text, want) {
			t.Errorf("output missing %q", want)
		}
	}
	if c.Match().Turns() != 0 {
		t.Error("no shots should have been fired")
	}
}

func TestConsoleRepromptsInvalidMoves(t *testing.T) {
	c, out := newConsole(t, "p\n9,9\nnope\n3,4\n")

	if _, err := c.Run(); !errors.Is(err, ErrQuit) {
		t.Fatalf("Run() = %v, expected ErrQuit at end of input", err)
	}
	if strings.Count(out.String(), "Invalid move") != 2 {
		t.Errorf("expected two rejected moves:\n%s", out.String())
	}
	if c.Match().Turns() != 2 {
		t.Errorf("turns = %d, expected the shot and the CPU answer", c.Match().Turns())
	}
	if !strings.Contains(out.String(), "Elizabeth Swann fires at (3,4)") {
		t.Error("human shot not reported")
	}
}

func TestConsolePlaysToTheEnd(t *testing.T) {
	var script strings.Builder
	for r := 0; r < 8; r++ {
		for col := 0; col < 8; col++ {
			fmt.Fprintf(&script, "p\n%d,%d\n", r, col)
		}
	}

	c, out := newConsole(t, script.String())
	res, err := c.Run()
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if res.Winner == "" || res.MatchID != c.Match().ID() {
		t.Errorf("result = %+v", res)
	}
	if !strings.Contains(out.String(), "Victory!") && !strings.Contains(out.String(), "Defeat.") {
		t.Error("final verdict not printed")
	}
}
