package tcellui

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/space-wars/internal/core"
)

type fakeGame struct {
	resets  int
	steps   int
	actions []core.Action
}

func (g *fakeGame) ID() string               { return "fake" }
func (g *fakeGame) Title() string            { return "Fake" }
func (g *fakeGame) Reset(core.RuntimeConfig) { g.resets++ }
func (g *fakeGame) Act(a core.Action)        { g.actions = append(g.actions, a) }
func (g *fakeGame) State() core.GameState    { return core.GameState{Score: g.steps} }
func (g *fakeGame) Render(dst *core.Screen)  { dst.DrawText(0, 0, "hi", core.ColorOrange) }
func (g *fakeGame) Step(core.InputFrame) core.StepResult {
	g.steps++
	return core.StepResult{State: g.State(), Ticked: true}
}

func newSimScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	screen.SetSize(40, 10)
	t.Cleanup(screen.Fini)
	return screen
}

func TestMapKey(t *testing.T) {
	tests := []struct {
		name     string
		ev       *tcell.EventKey
		expected core.Action
	}{
		{"left arrow", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), core.ActionLeft},
		{"a", tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone), core.ActionLeft},
		{"right arrow", tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), core.ActionRight},
		{"l", tcell.NewEventKey(tcell.KeyRune, 'l', tcell.ModNone), core.ActionRight},
		{"p", tcell.NewEventKey(tcell.KeyRune, 'p', tcell.ModNone), core.ActionPause},
		{"r", tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone), core.ActionRestart},
		{"b", tcell.NewEventKey(tcell.KeyRune, 'b', tcell.ModNone), core.ActionBack},
		{"q", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), core.ActionQuit},
		{"ctrl+c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), core.ActionQuit},
		{"unbound", tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone), core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MapKey(tt.ev); got != tt.expected {
				t.Errorf("got %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestBlit(t *testing.T) {
	screen := newSimScreen(t)
	buf := core.NewScreen(5, 2)
	buf.DrawText(1, 1, "ok", core.ColorOrange)

	Blit(screen, buf)

	r, _, style, _ := screen.GetContent(1, 1)
	if r != 'o' {
		t.Errorf("got %q, expected 'o'", r)
	}
	if style != styles[core.ColorOrange] {
		t.Errorf("got style %v, expected orange", style)
	}
}

func TestLoopAppliesKeysAndQuits(t *testing.T) {
	screen := newSimScreen(t)
	g := &fakeGame{}
	d := New(screen, g, core.RuntimeConfig{Seed: 1, TickInterval: time.Hour, RenderInterval: time.Hour}, nil)

	screen.InjectKey(tcell.KeyLeft, 0, tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, 'd', tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	done := make(chan Result, 1)
	go func() { done <- d.Loop() }()

	select {
	case res := <-done:
		if res.Sessions != 1 || res.Back {
			t.Errorf("got %+v, expected one session without back", res)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("loop did not quit")
	}

	if len(g.actions) != 2 || g.actions[0] != core.ActionLeft || g.actions[1] != core.ActionRight {
		t.Errorf("got %v, expected [Left Right]", g.actions)
	}
	if g.steps != 0 {
		t.Errorf("got %d steps, expected none before the first tick", g.steps)
	}
	if g.resets != 1 {
		t.Errorf("got %d resets, expected 1", g.resets)
	}
}

func TestLoopBackReturnsToMenu(t *testing.T) {
	screen := newSimScreen(t)
	g := &fakeGame{}
	d := New(screen, g, core.RuntimeConfig{Seed: 1, TickInterval: time.Hour, RenderInterval: time.Hour}, nil)

	screen.InjectKey(tcell.KeyRune, 'b', tcell.ModNone)

	done := make(chan Result, 1)
	go func() { done <- d.Loop() }()

	select {
	case res := <-done:
		if !res.Back {
			t.Errorf("got %+v, expected Back", res)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("loop did not stop on back")
	}
	if len(g.actions) != 0 {
		t.Errorf("back key reached the game: %v", g.actions)
	}
}
