package main

import (
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/space-wars/internal/core"
	"github.com/vovakirdan/space-wars/internal/games/spacewars"
	"github.com/vovakirdan/space-wars/internal/platform/headless"
	"github.com/vovakirdan/space-wars/internal/platform/tui"
)

var (
	flagTicks       int
	flagShow        bool
	flagNoAutopilot bool
	flagWidth       int
	flagHeight      int
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a headless session driven by the autopilot",
	Long: `Run Space Wars without a terminal UI. The autopilot steers away from
the nearest rock on a collision course. Simulation and render passes run on
a virtual clock, so the same --seed always produces the same result.

Logs go to stderr (or --log-file); the summary goes to stdout.

Examples:
  spacewars simulate --seed 7
  spacewars simulate --seed 7 --ticks 10000 --difficulty hard
  spacewars simulate --no-autopilot --show`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagTicks, "ticks", 3000, "Maximum simulation ticks")
	simulateCmd.Flags().BoolVar(&flagShow, "show", false, "Print the final frame")
	simulateCmd.Flags().BoolVar(&flagNoAutopilot, "no-autopilot", false, "Do not steer the ship")
	simulateCmd.Flags().IntVar(&flagWidth, "width", 80, "Frame width for --show")
	simulateCmd.Flags().IntVar(&flagHeight, "height", 24, "Frame height for --show")
}

func runSimulate(cmd *cobra.Command, _ []string) error {
	if err := configureGame(flagDifficulty); err != nil {
		return err
	}

	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	timing := spacewars.ActiveConfig().Timing
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	cfg := core.RuntimeConfig{
		ScreenW:        flagWidth,
		ScreenH:        flagHeight,
		TickInterval:   timing.TickInterval,
		RenderInterval: timing.RenderInterval,
		Seed:           seed,
	}

	game := spacewars.New()
	opts := headless.Options{
		MaxTicks: flagTicks,
		Logger:   logger,
	}
	if !flagNoAutopilot {
		opts.Pilot = spacewars.NewAutopilot(game)
	}

	var lastFrame string
	if flagShow {
		opts.OnFrame = func(_ time.Duration, s *core.Screen) {
			lastFrame = tui.RenderScreen(s)
		}
	}

	res, err := headless.Run(ctx, game, cfg, opts)
	if err != nil && ctx.Err() == nil {
		return err
	}

	if lastFrame != "" {
		fmt.Println(lastFrame)
	}
	fmt.Printf("Seed: %d  Score: %d  Level: %d  Ticks: %d  Game time: %v  Over: %v\n",
		seed, res.Score, game.Level(), res.Ticks, res.Elapsed, res.GameOver)
	return nil
}
