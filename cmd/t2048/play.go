package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a variant",
	Long: `Start playing the specified variant ("2048" when omitted).

Controls:
  Arrows/WASD/HJKL  - Slide the board
  Mouse drag        - Slide the board
  P                 - Pause
  R/N               - New game
  Esc/Q/Ctrl+C      - Quit
  Ctrl+S            - Save a text screenshot to ~/.t2048/screenshots

Examples:
  t2048 play
  t2048 play 2048_large
  t2048 play --seed 42
  t2048 play --config ./my-2048.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := t2048.ClassicID
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown variant %q (run 't2048 list' to see them)", gameID)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	restore := logToFile()
	defer restore()

	logger.Info("starting game", "game", gameID, "seed", flagSeed)
	if _, err := tui.Run(game, runtimeConfig(), logger); err != nil {
		return fmt.Errorf("running %s: %w", gameID, err)
	}
	return nil
}

// runtimeConfig sizes the game to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}
