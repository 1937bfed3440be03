package game

import "math/rand"

// Phrases is the flavour text shown after a shot.
type Phrases struct {
	Hit  []string
	Miss []string
}

// DefaultPhrases returns the built-in phrases.
func DefaultPhrases() Phrases {
	return Phrases{
		Hit: []string{
			"Direct hit!",
			"Ha! Got one!",
			"Splinters everywhere!",
			"That one hurt!",
		},
		Miss: []string{
			"Splash. Nothing but sea.",
			"Missed!",
			"Only fish down there.",
			"Not even close.",
		},
	}
}

func (p Phrases) pick(rng *rand.Rand, hit bool) string {
	list := p.Miss
	if hit {
		list = p.Hit
	}
	if len(list) == 0 || rng == nil {
		return ""
	}
	return list[rng.Intn(len(list))]
}
