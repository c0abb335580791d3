package sim

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
)

func TestViewportRoundTrip(t *testing.T) {
	v := Viewport{Center: cp.Vector{X: 3.5, Y: -2}, W: 80, H: 24}

	points := []cp.Vector{
		{X: 3.5, Y: -2},
		{X: 0, Y: 0},
		{X: 10.25, Y: 4},
		{X: -8, Y: -6.5},
	}
	for _, p := range points {
		x, y := v.WorldToScreen(p)
		back := v.ScreenToWorld(x, y)
		if math.Abs(back.X-p.X) > 0.5/ViewScaleX+1e-9 {
			t.Errorf("X round trip %f -> %f drifts past half a cell", p.X, back.X)
		}
		if math.Abs(back.Y-p.Y) > 0.5/ViewScaleY+1e-9 {
			t.Errorf("Y round trip %f -> %f drifts past half a cell", p.Y, back.Y)
		}
	}
}

func TestViewportCentersCamera(t *testing.T) {
	w := NewWorld(DefaultParams(), 1)
	v := w.Viewport(80, 24)

	x, y := v.WorldToScreen(w.Camera())
	if x != 40 || y != 12 {
		t.Errorf("camera projected to (%d,%d), expected screen center", x, y)
	}
}
