package config

import (
	_ "embed"
)

//go:embed defaults/battleship.yaml
var defaultYAML []byte

// Default returns the hard-coded configuration used when the embedded YAML
// cannot be parsed.
func Default() Config {
	return Config{
		Players: PlayersConfig{
			CPUName: "Jack Sparrow",
			Names:   []string{"Will Turner", "Elizabeth Swann"},
		},
		Placement: PlacementConfig{
			MaxAttempts: 1000,
		},
		Targeting: TargetingConfig{
			HuntAttempts: 256,
		},
		TUI: TUIConfig{
			TickRate:      30,
			CPUThinkTicks: 15,
		},
		Phrases: PhrasesConfig{
			Hit:  []string{"Direct hit!"},
			Miss: []string{"Missed!"},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
