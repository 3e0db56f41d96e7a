// Package headless runs a game without a terminal.
// Simulation ticks and render passes are interleaved on a virtual clock,
// so a run is reproducible from its seed and pilot.
package headless

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/space-wars/internal/core"
	"github.com/vovakirdan/space-wars/internal/registry"
)

// ErrNoTickLimit is returned when Options.MaxTicks is not positive.
var ErrNoTickLimit = errors.New("headless: max ticks must be positive")

// Pilot chooses the commands applied before each tick.
type Pilot interface {
	Next(tick int) core.InputFrame
}

// Script replays a fixed list of frames, one per tick, then sends nothing.
type Script []core.InputFrame

// Next implements Pilot.
func (s Script) Next(tick int) core.InputFrame {
	if tick < 0 || tick >= len(s) {
		return core.InputFrame{}
	}
	return s[tick]
}

// Options controls a headless run.
type Options struct {
	MaxTicks int   // Upper bound on simulation ticks
	Pilot    Pilot // Nil means no input

	// OnFrame receives every render pass. Nil disables rendering.
	OnFrame func(elapsed time.Duration, screen *core.Screen)

	Logger *log.Logger // Nil discards output
}

// Result summarizes a headless run.
type Result struct {
	Score    int
	Ticks    int           // Ticks that advanced the simulation
	Frames   int           // Render passes delivered to OnFrame
	Elapsed  time.Duration // Virtual time at the end of the run
	GameOver bool
}

// Run resets the game and plays until game over, MaxTicks or ctx is done.
func Run(ctx context.Context, game registry.Game, cfg core.RuntimeConfig, opts Options) (Result, error) {
	if opts.MaxTicks <= 0 {
		return Result{}, ErrNoTickLimit
	}
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = core.DefaultConfig().TickInterval
	}
	if cfg.RenderInterval <= 0 {
		cfg.RenderInterval = core.DefaultConfig().RenderInterval
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	if n, ok := game.(registry.GameOverNotifier); ok {
		n.OnGameOver(func(score int) {
			logger.Info("game over", "game", game.ID(), "score", score)
		})
	}

	game.Reset(cfg)
	logger.Info("session started", "game", game.ID(), "seed", cfg.Seed, "max_ticks", opts.MaxTicks)

	var screen *core.Screen
	if opts.OnFrame != nil {
		screen = core.NewScreen(cfg.ScreenW, cfg.ScreenH)
	}

	var (
		res        Result
		steps      int
		now        time.Duration
		nextTick   = cfg.TickInterval
		nextRender = cfg.RenderInterval
	)

	render := func() {
		game.Render(screen)
		opts.OnFrame(now, screen)
		res.Frames++
	}

	for steps < opts.MaxTicks && !game.State().GameOver {
		if err := ctx.Err(); err != nil {
			res.Score = game.State().Score
			res.Elapsed = now
			return res, err
		}

		// On a tie the tick goes first so the frame shows its result
		if screen != nil && nextRender < nextTick {
			now = nextRender
			nextRender += cfg.RenderInterval
			render()
			continue
		}

		now = nextTick
		nextTick += cfg.TickInterval

		var in core.InputFrame
		if opts.Pilot != nil {
			in = opts.Pilot.Next(steps)
		}
		if game.Step(in).Ticked {
			res.Ticks++
		}
		steps++
	}

	if screen != nil {
		render()
	}

	state := game.State()
	res.Score = state.Score
	res.GameOver = state.GameOver
	res.Elapsed = now

	logger.Info("driver stopped", "renderer", "headless", "score", res.Score, "ticks", res.Ticks, "over", res.GameOver)
	return res, nil
}
