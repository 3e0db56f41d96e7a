package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/space-wars/internal/core"
	"github.com/vovakirdan/space-wars/internal/games/spacewars"
	"github.com/vovakirdan/space-wars/internal/platform/tcellui"
	"github.com/vovakirdan/space-wars/internal/platform/tui"
	"github.com/vovakirdan/space-wars/internal/registry"
)

var (
	flagRenderer string
	flagFPS      int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a session",
	Long: `Start playing Space Wars.

Controls:
  Left/A/H   - Steer left
  Right/D/L  - Steer right
  P/Esc      - Pause
  R          - Restart (after game over)
  B          - Leave the game (back to the menu under "spacewars menu")
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Slower rocks, fewer spawns
  normal - Config values as loaded
  hard   - Fast rocks, frequent spawns
  fixed  - Rocks never speed up

Examples:
  spacewars play
  spacewars play --difficulty hard
  spacewars play --renderer tcell --fps 30
  spacewars play --config ./my-spacewars.yaml --log-file game.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagRenderer, "renderer", "tui", "Terminal renderer: tui or tcell")
	cmd.Flags().IntVar(&flagFPS, "fps", 0, "Render rate in frames per second (0 = config render_interval)")
}

func runPlay(_ *cobra.Command, _ []string) error {
	if flagRenderer != "tui" && flagRenderer != "tcell" {
		return fmt.Errorf("unknown renderer %q (want tui or tcell)", flagRenderer)
	}
	if err := configureGame(flagDifficulty); err != nil {
		return err
	}

	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	game, err := registry.Create(spacewars.ID)
	if err != nil {
		return err
	}

	res, err := play(game, runtimeConfig(flagFPS), logger)
	if err != nil {
		return fmt.Errorf("running game: %w", err)
	}

	fmt.Printf("Final score: %d\n", res.score)
	return nil
}

// playResult is what a renderer reports when the player leaves a game.
type playResult struct {
	score int
	back  bool // Return to the menu instead of exiting
}

// play runs one interactive game with the renderer chosen by --renderer.
func play(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) (playResult, error) {
	if flagRenderer == "tcell" {
		res, err := tcellui.Run(game, cfg, logger)
		return playResult{score: res.Score, back: res.Back}, err
	}
	res, err := tui.Run(game, cfg, logger)
	return playResult{score: res.Score, back: res.Back}, err
}
