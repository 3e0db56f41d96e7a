package spacewars

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/space-wars/internal/config"
	"github.com/vovakirdan/space-wars/internal/core"
	"github.com/vovakirdan/space-wars/internal/registry"
)

// ID is the registry key of the game.
const ID = "spacewars"

// active is the config chosen via Configure and used by every Reset.
var active = config.DefaultSpaceWarsConfig()

// Configure loads the config file (see config.LoadSpaceWars for the search
// order), applies a difficulty preset and validates the result.
// An empty preset keeps the loaded values.
func Configure(path, preset string) error {
	p, err := config.ParsePreset(preset)
	if err != nil {
		return fmt.Errorf("spacewars: %w", err)
	}

	cfg, err := config.LoadSpaceWars(path)
	if err != nil {
		return fmt.Errorf("spacewars: %w", err)
	}
	config.ApplySpaceWarsPreset(&cfg, p)

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("spacewars: %w", err)
	}
	active = cfg
	return nil
}

// ActiveConfig returns the config used for new sessions.
func ActiveConfig() config.SpaceWarsConfig {
	return active
}

// Game adapts a State to the platform's registry.Game interface.
// Move commands apply immediately; Step runs one simulation tick.
type Game struct {
	state      *State
	runtime    core.RuntimeConfig
	paused     bool
	drawer     ScreenDrawer
	onGameOver []GameOverFunc
}

// New creates a new Space Wars game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Space Wars"
}

// Reset starts a new session from the active config.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.paused = false

	state, err := NewState(active, rand.New(rand.NewSource(runtime.Seed)))
	if err != nil {
		// active is validated by Configure; defaults always pass
		state, _ = NewState(config.DefaultSpaceWarsConfig(), rand.New(rand.NewSource(runtime.Seed)))
	}
	for _, fn := range g.onGameOver {
		state.OnGameOver(fn)
	}
	g.state = state
}

// OnGameOver registers fn for this and every later session.
func (g *Game) OnGameOver(fn func(finalScore int)) {
	if fn == nil {
		return
	}
	g.onGameOver = append(g.onGameOver, fn)
	if g.state != nil {
		g.state.OnGameOver(fn)
	}
}

// Act applies a single command between ticks.
func (g *Game) Act(a core.Action) {
	if g.state == nil || g.state.IsOver() {
		return
	}
	switch a {
	case core.ActionPause:
		g.paused = !g.paused
	case core.ActionLeft:
		if !g.paused {
			g.state.MoveLeft()
		}
	case core.ActionRight:
		if !g.paused {
			g.state.MoveRight()
		}
	}
}

// Step applies the frame's commands in order, then advances one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	for _, a := range in.Actions {
		g.Act(a)
	}

	if g.state == nil || g.state.IsOver() || g.paused {
		return core.StepResult{State: g.State()}
	}

	g.state.Tick()
	return core.StepResult{State: g.State(), Ticked: true}
}

// Render draws the current snapshot to the screen.
func (g *Game) Render(dst *core.Screen) {
	if g.state == nil {
		dst.Clear()
		return
	}
	g.drawer.Screen = dst
	g.drawer.Paused = g.paused
	g.state.RenderTick(&g.drawer)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.state == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.state.Score(),
		GameOver: g.state.IsOver(),
		Paused:   g.paused,
	}
}

// Snapshot returns a copy of the running session.
func (g *Game) Snapshot() Snapshot {
	if g.state == nil {
		return Snapshot{}
	}
	return g.state.Snapshot()
}

// Level returns the current difficulty level.
func (g *Game) Level() int {
	if g.state == nil {
		return 0
	}
	return g.state.DifficultyLevel()
}

// Register the game with the registry
func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}
