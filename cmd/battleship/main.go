// battleship is an 8x8 naval battle against a hunt/target CPU opponent.
//
// Usage:
//
//	battleship list               - List CPU targeting strategies
//	battleship play               - Play in the terminal UI
//	battleship play --plain       - Play with a line-based menu
//	battleship sim --games 100    - Run CPU-versus-CPU matches headless
//	battleship serve              - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>     - Set UI tick rate (default: from config)
//	--seed <value>   - Set RNG seed for reproducible games
//	--config <path>  - Use a specific config file
//
// A .env file in the working directory may set BATTLESHIP_SEED,
// BATTLESHIP_CONFIG and BATTLESHIP_SSH_ADDR as flag defaults.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-battleship/internal/config"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagConfig string
)

func main() {
	// Optional, a missing .env is not an error
	_ = godotenv.Load()

	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", envInt64("BATTLESHIP_SEED", 0), "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", os.Getenv("BATTLESHIP_CONFIG"), "Path to config YAML")
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", envString("BATTLESHIP_SSH_ADDR", ":23234"), "SSH server address (host:port)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "battleship",
	Short: "Battleship - sink the CPU fleet in your terminal",
	Long: `Battleship is a terminal naval battle on an 8x8 grid.
Five ships (Carrier, Battleship, Frigate, Submarine, Destroyer) are placed at
random on each side; you trade shots with a CPU captain that hunts at random
and closes in once it scores a hit.

Available commands:
  list     - Show CPU targeting strategies
  play     - Play against the CPU
  sim      - Run CPU-versus-CPU matches and print statistics
  serve    - Start SSH server for remote play

Examples:
  battleship play
  battleship play --plain --name "Will Turner"
  battleship sim --games 500 --seed 42
  battleship serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "UI tick rate (0 = from config)")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadConfig loads the configuration selected by --config.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}
	if flagFPS > 0 {
		cfg.TUI.TickRate = flagFPS
	}
	return cfg, nil
}

func envString(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: ignoring %s=%q: %v\n", key, v, err)
		return fallback
	}
	return n
}
