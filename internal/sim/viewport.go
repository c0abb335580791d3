package sim

import "github.com/jakecoffman/cp"

// Cells per world unit. Terminal cells are roughly twice as tall as they
// are wide, so X gets double the density to keep the arena square on screen.
const (
	ViewScaleX = 2.0
	ViewScaleY = 1.0
)

// Viewport maps between world coordinates and screen cells. The same
// mapping drives rendering and click unprojection, so a clicked cell always
// resolves to the world position it was drawn from.
type Viewport struct {
	Center cp.Vector // world position at the screen center
	W, H   int
}

// WorldToScreen projects a world position to a screen cell.
func (v Viewport) WorldToScreen(p cp.Vector) (int, int) {
	x := float64(v.W)/2 + (p.X-v.Center.X)*ViewScaleX
	y := float64(v.H)/2 + (p.Y-v.Center.Y)*ViewScaleY
	return int(x + 0.5), int(y + 0.5)
}

// ScreenToWorld unprojects a screen cell back to the world position at its
// center.
func (v Viewport) ScreenToWorld(x, y int) cp.Vector {
	return cp.Vector{
		X: v.Center.X + (float64(x)-float64(v.W)/2)/ViewScaleX,
		Y: v.Center.Y + (float64(y)-float64(v.H)/2)/ViewScaleY,
	}
}

// Viewport returns the current camera viewport for a screen size.
func (w *World) Viewport(screenW, screenH int) Viewport {
	return Viewport{Center: w.camera, W: screenW, H: screenH}
}
