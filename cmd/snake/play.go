package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/gridsnake/internal/config"
	"github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/platform/tui"
)

var flagLogFile string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Snake in this terminal",
	Long: `Start a game in this terminal.

Controls:
  Arrows/WASD - Steer
  Space       - Start / play again
  Ctrl+S      - Save a text screenshot to ~/.snake/screenshots
  Q/Esc       - Quit

The board needs a terminal of at least 75x27 with the default config.
The game pauses while the window is smaller.

Examples:
  snake play
  snake play --seed 42
  snake play --log-file /tmp/snake.log --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (logs are discarded otherwise)")
}

func runPlay(_ *cobra.Command, _ []string) {
	if err := playGame(loadConfig(), flagLogFile, tui.Run); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// playGame runs one terminal session through run. Logs go to logPath,
// or nowhere when it is empty, and the log file is closed before return.
func playGame(cfg config.SnakeConfig, logPath string, run func(config.SnakeConfig, core.RuntimeConfig, *log.Logger) error) error {
	// The alternate screen owns stdout, so logs go to a file or nowhere.
	var logOut io.Writer = io.Discard
	if logPath != "" {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	logger := newLogger(logOut, "snake")

	needW, needH := cfg.TerminalSize()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil && (w < needW || h < needH+1) {
		fmt.Fprintf(os.Stderr, "Warning: terminal is %dx%d, the board needs %dx%d\n", w, h, needW, needH+1)
	}

	if err := run(cfg, runtimeConfig(cfg), logger); err != nil {
		logger.Error("game stopped", "error", err)
		return err
	}
	return nil
}
