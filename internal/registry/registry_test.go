package registry

import (
	"errors"
	"strings"
	"testing"

	"github.com/vovakirdan/space-wars/internal/core"
)

type stubGame struct{ id string }

func (g stubGame) ID() string                           { return g.id }
func (g stubGame) Title() string                        { return "Stub " + g.id }
func (g stubGame) Reset(core.RuntimeConfig)             {}
func (g stubGame) Act(core.Action)                      {}
func (g stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g stubGame) Render(*core.Screen)                  {}
func (g stubGame) State() core.GameState                { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("zz-stub-b", func() Game { return stubGame{id: "zz-stub-b"} })
	Register("zz-stub-a", func() Game { return stubGame{id: "zz-stub-a"} })

	g, err := Create("zz-stub-a")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if g.ID() != "zz-stub-a" {
		t.Errorf("got %q, expected %q", g.ID(), "zz-stub-a")
	}

	var ids []string
	for _, info := range List() {
		if strings.HasPrefix(info.ID, "zz-stub-") {
			ids = append(ids, info.ID+"="+info.Title)
		}
	}
	expected := []string{"zz-stub-a=Stub zz-stub-a", "zz-stub-b=Stub zz-stub-b"}
	if strings.Join(ids, ",") != strings.Join(expected, ",") {
		t.Errorf("got %v, expected %v", ids, expected)
	}
}

func TestCreateUnknown(t *testing.T) {
	_, err := Create("does-not-exist")
	if !errors.Is(err, ErrUnknownGame) {
		t.Errorf("got %v, expected ErrUnknownGame", err)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("zz-dup", func() Game { return stubGame{id: "zz-dup"} })
	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate registration")
		}
	}()
	Register("zz-dup", func() Game { return stubGame{id: "zz-dup"} })
}
