package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-battleship/internal/config"
	"github.com/vovakirdan/tui-battleship/internal/core"
	"github.com/vovakirdan/tui-battleship/internal/platform/console"
	"github.com/vovakirdan/tui-battleship/internal/platform/tui"
	"github.com/vovakirdan/tui-battleship/internal/storage"
)

var (
	flagPlain bool
	flagName  string
	flagDebug bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play against the CPU",
	Long: `Start a battle against the CPU captain.

Controls:
  h/j/k/l, arrows  - Move the cursor on the enemy board
  f/Enter          - Fire at the cursor
  i                - Toggle fleet status
  ?                - Toggle full help
  r                - New match (after the battle ends)
  q/Ctrl+C         - Quit

With --plain the game runs as a line-based menu instead:
  p  fire (then type row,col)   s  show boards   i  fleet status
  h  help                       q  quit

Examples:
  battleship play
  battleship play --name "Elizabeth Swann"
  battleship play --plain --seed 42`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagPlain, "plain", false, "Line-based game instead of the terminal UI")
	playCmd.Flags().StringVar(&flagName, "name", "", "Your name (random if empty)")
	playCmd.Flags().BoolVar(&flagDebug, "debug", false, "Log every turn to stderr (plain mode)")
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if flagPlain {
		return runPlain(cfg)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	store, err := storage.Open()
	if err != nil {
		return err
	}
	defer store.Close()

	return tui.Run(tui.Options{
		Config: cfg,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: cfg.TUI.TickRate,
			Seed:     flagSeed,
		},
		Name:  flagName,
		Store: store,
	})
}

func runPlain(cfg config.Config) error {
	opts := console.Options{
		Config: cfg,
		Rng:    core.NewRand(flagSeed),
		Name:   flagName,
		In:     os.Stdin,
		Out:    os.Stdout,
	}
	if flagDebug {
		logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "battleship"})
		logger.SetLevel(log.DebugLevel)
		opts.Logger = logger
	}

	c, err := console.New(opts)
	if err != nil {
		return err
	}
	if _, err := c.Run(); err != nil && !errors.Is(err, console.ErrQuit) {
		return err
	}
	fmt.Println("Fair winds!")
	return nil
}
