package main

import (
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-battleship/internal/config"
	"github.com/vovakirdan/tui-battleship/internal/core"
	"github.com/vovakirdan/tui-battleship/internal/game"
	"github.com/vovakirdan/tui-battleship/internal/registry"
	"github.com/vovakirdan/tui-battleship/internal/storage"
)

var (
	flagGames     int
	flagStrategyA string
	flagStrategyB string
	flagVerbose   bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run CPU-versus-CPU matches headless",
	Long: `Play a number of CPU-versus-CPU matches without a UI and print statistics.

Each captain uses a registered targeting strategy (see 'battleship list').
Both use the hunt/target engine by default.

Examples:
  battleship sim --games 1000
  battleship sim --games 200 --second random --seed 7
  battleship sim --games 5 --verbose`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagGames, "games", 100, "Number of matches to play")
	simCmd.Flags().StringVar(&flagStrategyA, "first", "hunt", "Strategy of the first captain")
	simCmd.Flags().StringVar(&flagStrategyB, "second", "hunt", "Strategy of the second captain")
	simCmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Log every turn")
}

func runSim(_ *cobra.Command, _ []string) error {
	if flagGames <= 0 {
		return fmt.Errorf("--games must be positive, got %d", flagGames)
	}
	for _, id := range []string{flagStrategyA, flagStrategyB} {
		if !registry.Exists(id) {
			return fmt.Errorf("unknown strategy %q, run 'battleship list' to see available strategies", id)
		}
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "battleship-sim",
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}

	store, err := storage.Open()
	if err != nil {
		return err
	}
	defer store.Close()

	rng := core.NewRand(flagSeed)
	start := time.Now()
	for i := 0; i < flagGames; i++ {
		m, err := newSimMatch(cfg, rng, logger)
		if err != nil {
			return err
		}
		res, err := m.Run()
		if err != nil {
			return fmt.Errorf("match %d: %w", i+1, err)
		}
		if _, err := store.SaveResult(res); err != nil {
			return err
		}
		logger.Debug("match finished", "match", res.MatchID, "winner", res.Winner, "shots", res.Shots)
	}
	logger.Info("simulation done", "games", flagGames, "elapsed", time.Since(start).Round(time.Millisecond))

	return printSimSummary(store)
}

// newSimMatch pairs two CPU captains with the selected strategies.
func newSimMatch(cfg config.Config, rng *rand.Rand, logger *log.Logger) (*game.Match, error) {
	setup := cfg.Setup()

	a, err := simCaptain(setup, fmt.Sprintf("%s (%s)", cfg.Players.CPUName, flagStrategyA), flagStrategyA, rng)
	if err != nil {
		return nil, err
	}
	b, err := simCaptain(setup, fmt.Sprintf("Hector Barbossa (%s)", flagStrategyB), flagStrategyB, rng)
	if err != nil {
		return nil, err
	}

	// Alternate who fires first
	if rng.Intn(2) == 1 {
		a, b = b, a
	}
	return game.NewMatch(rng, a, b,
		game.WithPhrases(cfg.GamePhrases()),
		game.WithLogger(logger),
	), nil
}

func simCaptain(setup game.Setup, name, strategy string, rng *rand.Rand) (*game.Player, error) {
	p, err := setup.CPU(name, rng)
	if err != nil {
		return nil, err
	}
	src, err := registry.Create(strategy, rng, setup.HuntAttempts)
	if err != nil {
		return nil, err
	}
	p.Source = src
	return p, nil
}

func printSimSummary(store *storage.Store) error {
	sum, err := store.Summary()
	if err != nil {
		return err
	}
	leaders, err := store.Leaders(10)
	if err != nil {
		return err
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		Headers("Captain", "Wins", "Win %", "Best shots")
	for _, l := range leaders {
		pct := 100 * float64(l.Wins) / float64(sum.Games)
		t.Row(l.Name, strconv.Itoa(l.Wins), fmt.Sprintf("%.1f", pct), strconv.Itoa(l.BestShots))
	}

	fmt.Println(t.Render())
	fmt.Printf("Games: %d  average shots to win: %.1f  best: %d\n", sum.Games, sum.AvgShotsToWin, sum.BestShots)
	return nil
}
