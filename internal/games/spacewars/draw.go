package spacewars

import (
	"fmt"
	"math"

	"github.com/vovakirdan/space-wars/internal/core"
)

// Visual characters for rendering
const (
	ShipNose     = '▲'
	ShipHull     = '█'
	ShipWingL    = '◢'
	ShipWingR    = '◣'
	ObstacleChar = '▓'
	StarChar     = '·'
)

// ScreenDrawer paints snapshots onto a character screen.
// Row 0 holds the HUD; the field is scaled onto the remaining rows.
type ScreenDrawer struct {
	Screen *core.Screen
	Paused bool
}

// Draw implements Drawer.
func (d *ScreenDrawer) Draw(snap Snapshot) {
	dst := d.Screen
	dst.Clear()

	if dst.Width() < 4 || dst.Height() < 4 || snap.Field.Width <= 0 || snap.Field.Height <= 0 {
		return
	}

	d.drawStars(dst, snap)

	for _, o := range snap.Obstacles {
		d.drawObstacle(dst, snap.Field, o)
	}

	d.drawShip(dst, snap.Field, snap.Ship)

	// Draw HUD
	dst.DrawText(2, 0, fmt.Sprintf(" Score: %d ", snap.Score), core.ColorBrightWhite)
	dst.DrawTextCentered(0, " SPACE WARS ", core.ColorCyan)
	levelText := fmt.Sprintf(" Level: %d ", snap.Level)
	if snap.FixedSpeed {
		levelText = fmt.Sprintf(" Level: %d (fixed) ", snap.Level)
	}
	dst.DrawText(dst.Width()-len(levelText)-2, 0, levelText, core.ColorYellow)

	if d.Paused && !snap.Over {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}

	if snap.Over {
		drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", snap.Score))
	}
}

// toCell maps a field position to a screen cell below the HUD row.
func toCell(dst *core.Screen, f Field, p Vec) (int, int) {
	rows := dst.Height() - 1
	x := int(p.X / f.Width * float64(dst.Width()))
	y := 1 + int(p.Y/f.Height*float64(rows))
	return x, core.Clamp(y, 1, rows)
}

// extent returns the size in cells of a circle of radius r, at least one cell.
func extent(r, fieldSize float64, cells int) int {
	return core.Max(1, int(math.Round(2*r/fieldSize*float64(cells))))
}

// drawStars sprinkles a fixed backdrop that scrolls with the tick counter.
func (d *ScreenDrawer) drawStars(dst *core.Screen, snap Snapshot) {
	w, h := dst.Width(), dst.Height()-1
	for i := 0; i < w*h/40; i++ {
		x := (i * 37) % w
		y := 1 + core.WrapInt(i*17+snap.Tick/4, h)
		dst.SetColored(x, y, StarChar, core.ColorGray)
	}
}

// drawObstacle renders one obstacle as a filled block clipped below the HUD.
func (d *ScreenDrawer) drawObstacle(dst *core.Screen, f Field, o Body) {
	cx, cy := toCell(dst, f, o.Pos)
	cw := extent(o.Radius, f.Width, dst.Width())
	ch := extent(o.Radius, f.Height, dst.Height()-1)

	for dy := 0; dy < ch; dy++ {
		y := cy - ch/2 + dy
		if y < 1 {
			continue
		}
		for dx := 0; dx < cw; dx++ {
			dst.SetColored(cx-cw/2+dx, y, ObstacleChar, core.ColorOrange)
		}
	}
}

// drawShip renders the ship, wrapping across the left and right edges.
//
//	 ▲
//	◢██◣
func (d *ScreenDrawer) drawShip(dst *core.Screen, f Field, ship Body) {
	w := dst.Width()
	cx, cy := toCell(dst, f, ship.Pos)
	cw := core.Max(3, extent(ship.Radius, f.Width, w))
	left := cx - cw/2

	dst.SetColored(core.WrapInt(cx, w), cy, ShipNose, core.ColorBrightCyan)

	for dx := 0; dx < cw; dx++ {
		r := ShipHull
		switch dx {
		case 0:
			r = ShipWingL
		case cw - 1:
			r = ShipWingR
		}
		dst.SetColored(core.WrapInt(left+dx, w), cy+1, r, core.ColorBrightCyan)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	// Calculate box dimensions
	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	// Draw box
	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH), core.ColorWhite)

	// Draw text
	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title, core.ColorRed)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle, core.ColorWhite)
}
