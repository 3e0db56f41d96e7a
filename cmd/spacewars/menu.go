package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/space-wars/internal/games/spacewars"
	"github.com/vovakirdan/space-wars/internal/platform/tui"
	"github.com/vovakirdan/space-wars/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a difficulty, then play",
	Long: `Start Space Wars with a difficulty picker.

Use arrow keys or j/k to navigate, Enter to select a difficulty.
In a game, B returns to the menu and Q exits.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select difficulty
  Q/Esc        - Quit

Examples:
  spacewars menu
  spacewars menu --renderer tcell
  spacewars menu --config ./my-spacewars.yaml`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func init() {
	addPlayFlags(menuCmd)
}

func runMenu(_ *cobra.Command, _ []string) error {
	if flagRenderer != "tui" && flagRenderer != "tcell" {
		return fmt.Errorf("unknown renderer %q (want tui or tcell)", flagRenderer)
	}
	// Fail fast on a bad config before showing the menu
	if err := configureGame(flagDifficulty); err != nil {
		return err
	}

	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg := runtimeConfig(flagFPS)
	best := 0

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(cfg)
		if err != nil {
			return err
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			break
		}

		if err := configureGame(string(menuResult.Preset)); err != nil {
			return err
		}
		logger.Info("difficulty selected", "preset", menuResult.Preset)

		game, err := registry.Create(spacewars.ID)
		if err != nil {
			return err
		}

		// Fresh seed for every game unless one was given
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}
		res, err := play(game, cfg, logger)
		if err != nil {
			return fmt.Errorf("running game: %w", err)
		}
		best = max(best, res.score)

		if !res.back {
			break
		}
	}

	fmt.Printf("Best score: %d\n", best)
	return nil
}
