package spacewars

import (
	"strings"
	"testing"

	"github.com/vovakirdan/space-wars/internal/core"
)

func TestDrawScalesObstacles(t *testing.T) {
	dst := core.NewScreen(80, 24)
	d := &ScreenDrawer{Screen: dst}
	d.Draw(Snapshot{
		Field: Field{Width: 800, Height: 600},
		Ship:  Body{Pos: Vec{X: 400, Y: 460}, Radius: 20},
		Obstacles: []Body{
			{Pos: Vec{X: 100, Y: 300}, Radius: 20},
		},
	})

	// x=100 of 800 maps to column 10, y=300 of 600 maps to row 1+11
	cell := dst.GetCell(10, 12)
	if cell.Rune != ObstacleChar || cell.Color != core.ColorOrange {
		t.Errorf("got %q/%v at (10,12), expected obstacle", cell.Rune, cell.Color)
	}
}

func TestDrawShipWrapsAcrossEdge(t *testing.T) {
	dst := core.NewScreen(80, 24)
	d := &ScreenDrawer{Screen: dst}
	d.Draw(Snapshot{
		Field: Field{Width: 800, Height: 600},
		Ship:  Body{Pos: Vec{X: 0, Y: 460}, Radius: 20},
	})

	// The hull spans columns -2..1, so its left wing lands on column 78
	_, cy := toCell(dst, Field{Width: 800, Height: 600}, Vec{X: 0, Y: 460})
	if got := dst.GetCell(78, cy+1).Rune; got != ShipWingL {
		t.Errorf("got %q at column 78, expected %q", got, ShipWingL)
	}
	if got := dst.GetCell(1, cy+1).Rune; got != ShipWingR {
		t.Errorf("got %q at column 1, expected %q", got, ShipWingR)
	}
}

func TestDrawGameOverOverlay(t *testing.T) {
	dst := core.NewScreen(80, 24)
	d := &ScreenDrawer{Screen: dst, Paused: true}
	d.Draw(Snapshot{
		Field: Field{Width: 800, Height: 600},
		Score: 7,
		Over:  true,
	})

	out := dst.String()
	if !strings.Contains(out, "GAME OVER") || !strings.Contains(out, "Score: 7") {
		t.Errorf("game over overlay missing:\n%s", out)
	}
	if strings.Contains(out, "PAUSED") {
		t.Error("pause overlay drawn over game over")
	}
}

func TestDrawTinyScreen(t *testing.T) {
	dst := core.NewScreen(2, 2)
	d := &ScreenDrawer{Screen: dst}
	d.Draw(Snapshot{Field: Field{Width: 800, Height: 600}})
	if strings.TrimSpace(dst.String()) != "" {
		t.Errorf("expected blank screen, got %q", dst.String())
	}
}

func TestDrawHUDMarksFixedSpeed(t *testing.T) {
	tests := []struct {
		name     string
		fixed    bool
		expected string
	}{
		{"accelerating", false, "Level: 3 "},
		{"fixed", true, "Level: 3 (fixed)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dst := core.NewScreen(80, 24)
			d := &ScreenDrawer{Screen: dst}
			d.Draw(Snapshot{Field: Field{Width: 800, Height: 600}, Level: 3, FixedSpeed: tt.fixed})

			hud := dst.Row(0)
			if !strings.Contains(hud, tt.expected) {
				t.Errorf("got HUD %q, expected it to contain %q", hud, tt.expected)
			}
			if !tt.fixed && strings.Contains(hud, "fixed") {
				t.Errorf("got HUD %q, expected no fixed marker", hud)
			}
		})
	}
}
