package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a variant from a menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to start a variant.
Esc inside a game returns to the menu.

Examples:
  t2048 menu
  t2048 menu --fps 60`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	restore := logToFile()
	defer restore()

	cfg := runtimeConfig()
	for {
		menuResult, err := tui.RunMenu(cfg)
		if err != nil {
			return err
		}
		cfg = menuResult.Config
		if menuResult.Quit {
			return nil
		}

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			return err
		}

		logger.Info("starting game", "game", menuResult.GameID)
		result, err := tui.Run(game, cfg, logger)
		if err != nil {
			return err
		}
		cfg = result.Config
		if !result.BackToMenu {
			return nil
		}
	}
}
