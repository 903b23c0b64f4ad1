// snake is a single-player Snake game for the terminal, SSH and the browser.
//
// Usage:
//
//	snake play     - Play in this terminal
//	snake serve    - Start SSH server for remote play
//	snake web      - Serve the game to browsers over websockets
//	snake config   - Print the effective configuration
//
// Global flags:
//
//	--config <path>     - Custom game config YAML
//	--seed <value>      - Set RNG seed for reproducible food placement
//	--log-level <level> - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridsnake/internal/config"
	"github.com/vovakirdan/gridsnake/internal/core"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the classic game on a tile grid",
	Long: `Snake steers a growing snake around a walled board, eating food
and avoiding the walls and its own body.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  web      - Serve the game to browsers
  config   - Print the effective configuration

Examples:
  snake play
  snake play --seed 42
  snake serve --ssh :2222
  snake web --addr :8080 --qr
  snake config > ~/.snake/configs/snake.yaml`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(webCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads the game config or exits.
func loadConfig() config.SnakeConfig {
	cfg, err := config.LoadSnake(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// runtimeConfig builds the runtime config shared by every host.
// Hosts fill in the surface size.
func runtimeConfig(cfg config.SnakeConfig) core.RuntimeConfig {
	return core.RuntimeConfig{
		TickRate: cfg.Loop.TickRate,
		Seed:     flagSeed,
	}
}

// newLogger creates a logger writing to w at the level named by --log-level.
func newLogger(w io.Writer, prefix string) *log.Logger {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v, using info\n", err)
		level = log.InfoLevel
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
}
