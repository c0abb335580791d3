package arena

import (
	"fmt"
	"math"

	"github.com/jakecoffman/cp"
	"github.com/quadkeys/keyhunt/internal/core"
	"github.com/quadkeys/keyhunt/internal/sim"
)

// Visual characters for rendering
const (
	WallChar   = '█'
	DoorChar   = '⌂'
	ButtonChar = '◉'
	KeyChar    = '♦'
	BoxChar    = '■'
	BallChar   = '●'
	ShadowChar = '░'
	PulseChar  = '·'
)

// lightRadius is the world-space reach of the trailing key light. Walls
// inside it render bright, the rest stay dim.
const lightRadius = 7.0

// colorOf maps a palette tag to a screen color.
func colorOf(c sim.ColorTag) core.Color {
	switch c {
	case sim.ColorRed:
		return core.ColorBrightRed
	case sim.ColorGreen:
		return core.ColorBrightGreen
	case sim.ColorBlue:
		return core.ColorBrightBlue
	default:
		return core.ColorWhite
	}
}

func dist(a, b cp.Vector) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// Render draws the current state into the provided screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	w := g.world
	v := w.Viewport(dst.Width(), dst.Height())
	light := w.Light()

	// Floor plan. Off-screen rooms clip naturally through SetCell.
	for _, wall := range w.Walls() {
		x0, y0 := v.WorldToScreen(wall.Min)
		x1, y1 := v.WorldToScreen(wall.Max)
		for y := y0; y <= y1; y++ {
			for x := x0; x <= x1; x++ {
				c := core.ColorGray
				if dist(v.ScreenToWorld(x, y), light) < lightRadius {
					c = core.ColorWhite
				}
				dst.SetCell(x, y, WallChar, c)
			}
		}
	}

	for _, door := range w.Doors() {
		x, y := v.WorldToScreen(door.Render.Pos)
		dst.SetCell(x, y, DoorChar, core.ColorBrightCyan)
	}

	if b := w.Button(); b != nil {
		x, y := v.WorldToScreen(b.Render.Pos)
		dst.SetCell(x, y, ButtonChar, colorOf(b.Color))
	}

	// The flash belongs to the deposit spot; the live button has already
	// respawned elsewhere by the time the pulse runs.
	if w.Pulse() > 0 {
		x, y := v.WorldToScreen(w.PulsePos())
		for _, d := range [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}, {-2, 0}, {2, 0}} {
			dst.SetCell(x+d[0], y+d[1], PulseChar, colorOf(w.PulseColor()))
		}
	}

	if k := w.Key(); k != nil {
		x, y := v.WorldToScreen(k.Render.Pos)
		dst.SetCell(x, y, KeyChar, colorOf(k.Color))
	}

	g.drawPlayer(dst, v)
	g.drawHUD(dst)

	msg := w.Message()
	if msg.Active() && !msg.Sticky {
		x := (dst.Width() - len(msg.Text)) / 2
		dst.DrawTextColored(x, 2, msg.Text, core.ColorBrightYellow)
	}

	if g.paused {
		g.drawOverlay(dst, "PAUSED", "Press P to resume")
	} else if w.Phase() != sim.PhasePlaying {
		g.drawOverlay(dst, msg.Text, "Press R to restart")
	}
}

// drawPlayer renders the player glyph, lifted by the hop height with a
// shadow left on the floor.
func (g *Game) drawPlayer(dst *core.Screen, v sim.Viewport) {
	w := g.world
	x, y := v.WorldToScreen(w.Player().Render.Pos)

	lift := int(w.Hop()*sim.ViewScaleY + 0.5)
	if lift > 0 {
		dst.SetCell(x, y, ShadowChar, core.ColorGray)
	}

	glyph := BoxChar
	if w.Params().Player == sim.ShapeBall {
		glyph = BallChar
	}
	dst.SetCell(x, y-lift, glyph, core.ColorBrightWhite)
}

// drawHUD renders the score/time line plus the inventory line.
func (g *Game) drawHUD(dst *core.Screen) {
	w := g.world
	p := w.Params()

	hud := fmt.Sprintf("SCORE %d/%d  TIME %4.1f", w.Score(), p.WinScore, w.TimeLeft())
	if p.Rooms > 1 {
		hud += fmt.Sprintf("  ROOM %d/%d", w.Room(), p.Rooms)
	}
	dst.DrawText(1, 0, hud)
	dst.DrawText(dst.Width()-len(g.title)-1, 0, g.title)

	switch p.Inventory {
	case sim.InventoryCounted:
		x := 1
		dst.DrawText(x, 1, "KEYS")
		x += 5
		for c := sim.ColorTag(0); int(c) < sim.PaletteSize; c++ {
			s := fmt.Sprintf("%c:%d ", KeyChar, w.Inv().Count(c))
			dst.DrawTextColored(x, 1, s, colorOf(c))
			x += len([]rune(s))
		}
	case sim.InventorySlot:
		if c, held := w.Inv().Holding(); held {
			dst.DrawTextColored(1, 1, fmt.Sprintf("CARRYING %s KEY", c), colorOf(c))
		} else {
			dst.DrawText(1, 1, "HANDS EMPTY")
		}
	}
}

// drawOverlay draws a centered message box over the playfield.
func (g *Game) drawOverlay(dst *core.Screen, title, subtitle string) {
	w, h := dst.Width(), dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
