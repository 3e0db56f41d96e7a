package main

import (
	"os"

	"golang.org/x/term"

	"github.com/vovakirdan/space-wars/internal/core"
	"github.com/vovakirdan/space-wars/internal/games/spacewars"
)

// configureGame loads the game config from the global flags. It fails
// fast so a bad file never reaches the terminal UI.
func configureGame(preset string) error {
	return spacewars.Configure(flagConfig, preset)
}

// runtimeConfig builds the platform config from the terminal size, the
// loaded game config and the flags. fps overrides the render interval.
func runtimeConfig(fps int) core.RuntimeConfig {
	// Defaults
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	timing := spacewars.ActiveConfig().Timing
	cfg := core.RuntimeConfig{
		ScreenW:        width,
		ScreenH:        height,
		TickInterval:   timing.TickInterval,
		RenderInterval: timing.RenderInterval,
		Seed:           flagSeed,
	}
	if fps > 0 {
		cfg.RenderInterval = core.RenderRate(fps)
	}
	return cfg
}
