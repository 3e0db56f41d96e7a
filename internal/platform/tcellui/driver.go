// Package tcellui runs a game directly on a tcell screen.
// One goroutine polls terminal events; the main loop selects over input,
// the simulation ticker and the render ticker.
package tcellui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/space-wars/internal/core"
	"github.com/vovakirdan/space-wars/internal/registry"
)

const footer = " ←/a left  →/d right  p pause  r restart  b menu  q quit"

// styles maps core.Color to tcell styles.
var styles = map[core.Color]tcell.Style{
	core.ColorDefault:     tcell.StyleDefault,
	core.ColorRed:         tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true),
	core.ColorYellow:      tcell.StyleDefault.Foreground(tcell.ColorYellow),
	core.ColorCyan:        tcell.StyleDefault.Foreground(tcell.ColorTeal).Bold(true),
	core.ColorWhite:       tcell.StyleDefault.Foreground(tcell.ColorSilver),
	core.ColorBrightCyan:  tcell.StyleDefault.Foreground(tcell.ColorAqua),
	core.ColorBrightWhite: tcell.StyleDefault.Foreground(tcell.ColorWhite),
	core.ColorOrange:      tcell.StyleDefault.Foreground(tcell.ColorOrange),
	core.ColorGray:        tcell.StyleDefault.Foreground(tcell.ColorGray),
}

// Result summarizes a finished run.
type Result struct {
	Score    int  // Score of the last session
	Sessions int  // Sessions played, including restarts
	Back     bool // The player asked to return to the menu
}

// Driver owns a tcell screen and a game.
type Driver struct {
	screen   tcell.Screen
	game     registry.Game
	buf      *core.Screen
	cfg      core.RuntimeConfig
	logger   *log.Logger
	state    core.GameState
	sessions int
}

// New creates a driver on an initialized screen. A nil logger discards output.
func New(screen tcell.Screen, game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) *Driver {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = core.DefaultConfig().TickInterval
	}
	if cfg.RenderInterval <= 0 {
		cfg.RenderInterval = core.DefaultConfig().RenderInterval
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	w, h := screen.Size()
	cfg.ScreenW, cfg.ScreenH = w, h

	if n, ok := game.(registry.GameOverNotifier); ok {
		n.OnGameOver(func(score int) {
			logger.Info("game over", "game", game.ID(), "score", score)
		})
	}

	return &Driver{
		screen: screen,
		game:   game,
		buf:    core.NewScreen(w, core.Max(h-1, 1)),
		cfg:    cfg,
		logger: logger,
	}
}

// Run opens the terminal, plays until the player quits and restores the terminal.
func Run(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) (Result, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return Result{}, fmt.Errorf("tcellui: new screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return Result{}, fmt.Errorf("tcellui: init screen: %w", err)
	}

	d := New(screen, game, cfg, logger)
	res := d.Loop()
	screen.Fini()

	d.logger.Info("driver stopped", "renderer", "tcell", "score", res.Score, "sessions", res.Sessions)
	return res, nil
}

// Loop runs until a quit key is pressed. It does not finalize the screen.
func (d *Driver) Loop() Result {
	d.startSession()

	events := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := d.screen.PollEvent()
			if ev == nil {
				return // Screen finalized
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	tick := time.NewTicker(d.cfg.TickInterval)
	defer tick.Stop()
	render := time.NewTicker(d.cfg.RenderInterval)
	defer render.Stop()

	// A nil channel blocks forever, which pauses the simulation after game over
	tickC := tick.C

	d.draw()
	for {
		select {
		case ev := <-events:
			switch action := d.handleEvent(ev); action {
			case core.ActionQuit, core.ActionBack:
				return Result{Score: d.state.Score, Sessions: d.sessions, Back: action == core.ActionBack}
			case core.ActionRestart:
				tick.Reset(d.cfg.TickInterval)
				tickC = tick.C
			}

		case <-tickC:
			d.state = d.game.Step(core.InputFrame{}).State
			if d.state.GameOver {
				tick.Stop()
				tickC = nil
			}

		case <-render.C:
			d.draw()
		}
	}
}

func (d *Driver) startSession() {
	d.sessions++
	d.game.Reset(d.cfg)
	d.state = d.game.State()
	d.logger.Info("session started", "game", d.game.ID(), "session", d.sessions, "seed", d.cfg.Seed,
		"tick", d.cfg.TickInterval, "render", d.cfg.RenderInterval)
}

// handleEvent applies input and reports quit, back or an accepted restart.
func (d *Driver) handleEvent(ev tcell.Event) core.Action {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		action := MapKey(ev)
		switch action {
		case core.ActionQuit, core.ActionBack:
			return action
		case core.ActionRestart:
			if !d.state.GameOver {
				return core.ActionNone
			}
			d.cfg.Seed = time.Now().UnixNano()
			d.startSession()
			return core.ActionRestart
		case core.ActionNone:
			return core.ActionNone
		}
		d.game.Act(action)
		d.state = d.game.State()

	case *tcell.EventResize:
		w, h := d.screen.Size()
		d.cfg.ScreenW, d.cfg.ScreenH = w, h
		d.buf.Resize(w, core.Max(h-1, 1))
		d.screen.Sync()
	}
	return core.ActionNone
}

// MapKey translates a tcell key event into a game action.
func MapKey(ev *tcell.EventKey) core.Action {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		return core.ActionQuit
	case tcell.KeyLeft:
		return core.ActionLeft
	case tcell.KeyRight:
		return core.ActionRight
	case tcell.KeyEscape:
		return core.ActionPause
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'a', 'h':
			return core.ActionLeft
		case 'd', 'l':
			return core.ActionRight
		case 'p':
			return core.ActionPause
		case 'r':
			return core.ActionRestart
		case 'b':
			return core.ActionBack
		case 'q':
			return core.ActionQuit
		}
	}
	return core.ActionNone
}

// draw renders the game into the cell buffer and copies it to the terminal.
func (d *Driver) draw() {
	d.game.Render(d.buf)
	Blit(d.screen, d.buf)

	y := d.buf.Height()
	for x, r := range []rune(footer) {
		d.screen.SetContent(x, y, r, nil, styles[core.ColorGray])
	}
	d.screen.Show()
}

// Blit copies a cell buffer onto the top-left of a tcell screen.
func Blit(dst tcell.Screen, src *core.Screen) {
	for y := 0; y < src.Height(); y++ {
		for x := 0; x < src.Width(); x++ {
			cell := src.GetCell(x, y)
			style, ok := styles[cell.Color]
			if !ok {
				style = tcell.StyleDefault
			}
			dst.SetContent(x, y, cell.Rune, nil, style)
		}
	}
}
