// Package config provides YAML-based configuration loading for battleship.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-battleship/internal/game"
)

// Config is the complete battleship configuration.
type Config struct {
	Players   PlayersConfig   `yaml:"players"`
	Placement PlacementConfig `yaml:"placement"`
	Targeting TargetingConfig `yaml:"targeting"`
	TUI       TUIConfig       `yaml:"tui"`
	Phrases   PhrasesConfig   `yaml:"phrases"`
}

// PlayersConfig names the players.
type PlayersConfig struct {
	CPUName string   `yaml:"cpu_name"`
	Names   []string `yaml:"names"` // Picked from at random when no name is given
}

// PlacementConfig tunes random ship placement.
type PlacementConfig struct {
	MaxAttempts int `yaml:"max_attempts"`
}

// TargetingConfig tunes the CPU targeting engine.
type TargetingConfig struct {
	HuntAttempts int `yaml:"hunt_attempts"`
}

// TUIConfig tunes the interactive front end.
type TUIConfig struct {
	TickRate      int `yaml:"tick_rate"`
	CPUThinkTicks int `yaml:"cpu_think_ticks"`
}

// PhrasesConfig is the flavour text shown after each shot.
type PhrasesConfig struct {
	Hit  []string `yaml:"hit"`
	Miss []string `yaml:"miss"`
}

// Validate checks that every budget is usable.
func (c Config) Validate() error {
	var errs []error
	if c.Placement.MaxAttempts <= 0 {
		errs = append(errs, fmt.Errorf("placement.max_attempts must be positive, got %d", c.Placement.MaxAttempts))
	}
	if c.Targeting.HuntAttempts <= 0 {
		errs = append(errs, fmt.Errorf("targeting.hunt_attempts must be positive, got %d", c.Targeting.HuntAttempts))
	}
	if c.TUI.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("tui.tick_rate must be positive, got %d", c.TUI.TickRate))
	}
	if c.TUI.CPUThinkTicks < 0 {
		errs = append(errs, fmt.Errorf("tui.cpu_think_ticks must not be negative, got %d", c.TUI.CPUThinkTicks))
	}
	if c.Players.CPUName == "" {
		errs = append(errs, errors.New("players.cpu_name must not be empty"))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: invalid: %w", err)
	}
	return nil
}

// Setup returns the player setup budgets.
func (c Config) Setup() game.Setup {
	return game.Setup{
		MaxPlacementAttempts: c.Placement.MaxAttempts,
		HuntAttempts:         c.Targeting.HuntAttempts,
	}
}

// GamePhrases returns the configured hit and miss phrases.
func (c Config) GamePhrases() game.Phrases {
	return game.Phrases{Hit: c.Phrases.Hit, Miss: c.Phrases.Miss}
}
