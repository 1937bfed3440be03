package registry

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-battleship/internal/board"
	"github.com/vovakirdan/tui-battleship/internal/game"
	"github.com/vovakirdan/tui-battleship/internal/targeting"
)

func TestBuiltinStrategies(t *testing.T) {
	list := List()
	if len(list) < 2 {
		t.Fatalf("expected at least 2 strategies, got %d", len(list))
	}
	if list[0].ID != "hunt" || list[1].ID != "random" {
		t.Errorf("list = %+v, expected sorted hunt, random", list)
	}

	for _, id := range []string{"hunt", "random"} {
		if !Exists(id) {
			t.Errorf("%s should be registered", id)
		}
	}
	if Exists("psychic") {
		t.Error("psychic should not be registered")
	}
}

func TestCreate(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	src, err := Create("hunt", rng, 16)
	if err != nil {
		t.Fatalf("Create(hunt) failed: %v", err)
	}
	if _, ok := src.(*targeting.Engine); !ok {
		t.Errorf("hunt created %T", src)
	}

	src, err = Create("random", rng, 16)
	if err != nil {
		t.Fatalf("Create(random) failed: %v", err)
	}
	if _, ok := src.(*targeting.Random); !ok {
		t.Errorf("random created %T", src)
	}

	if _, err := Create("nope", rng, 16); err == nil {
		t.Error("unknown strategy should fail")
	}
}

func TestCreatedStrategyPlays(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	g, err := board.New(rng)
	if err != nil {
		t.Fatal(err)
	}
	src, err := Create("hunt", rng, 16)
	if err != nil {
		t.Fatal(err)
	}

	var h targeting.History
	for !g.AllDestroyed() {
		c, err := src.NextMove(g, &h)
		if err != nil {
			t.Fatalf("NextMove() failed: %v", err)
		}
		shot, err := g.Fire(c)
		if err != nil {
			t.Fatalf("Fire(%v) failed: %v", c, err)
		}
		h.Record(shot)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("hunt", "Again", func(*rand.Rand, int) game.MoveSource { return nil })
}
