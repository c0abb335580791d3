package sim

import (
	"github.com/jakecoffman/cp"
)

// randomColor picks uniformly from the palette.
func (w *World) randomColor() ColorTag {
	return ColorTag(w.rng.Intn(PaletteSize))
}

// randomRoom picks a uniformly random room tag.
func (w *World) randomRoom() int {
	return 1 + w.rng.Intn(w.params.Rooms)
}

// inset is the margin kept between a spawn position and any wall face:
// half the wall thickness plus a safety buffer.
func (w *World) inset() float64 {
	return w.params.WallThickness/2 + w.params.SpawnMargin
}

// randomPoint picks a uniform position anywhere inside a room's footprint,
// inset from the perimeter. Used for keys, which may land next to the cross.
func (w *World) randomPoint(room int) cp.Vector {
	p := w.params
	c := w.roomCenter(room)
	in := p.WallThickness + w.inset()
	halfW := p.ArenaW/2 - in
	halfH := p.ArenaH/2 - in
	return cp.Vector{
		X: c.X + (w.rng.Float64()*2-1)*halfW,
		Y: c.Y + (w.rng.Float64()*2-1)*halfH,
	}
}

// quadrantPoint picks a uniform position inside one uniformly random
// quadrant of a room, inset from both the perimeter and the central cross.
// Buttons spawn this way so they can never end up inside the cross wall.
func (w *World) quadrantPoint(room int) cp.Vector {
	p := w.params
	c := w.roomCenter(room)
	quad := w.rng.Intn(4)

	in := p.WallThickness + w.inset()
	lo := p.WallThickness/2 + w.inset() // clearance from the cross arms
	hiX := p.ArenaW/2 - in
	hiY := p.ArenaH/2 - in

	x := lo + w.rng.Float64()*(hiX-lo)
	y := lo + w.rng.Float64()*(hiY-lo)
	if quad&1 == 1 {
		x = -x
	}
	if quad&2 == 2 {
		y = -y
	}
	return cp.Vector{X: c.X + x, Y: c.Y + y}
}

// spawnButton places a fresh button with a random color in a random
// quadrant of a random room. Exactly one button exists at a time; callers
// drop the old one first.
func (w *World) spawnButton() {
	room := w.randomRoom()
	w.button = newMarker(KindButton, w.randomColor(), room, w.params.ButtonRadius, w.quadrantPoint(room))
}

// spawnKeyAt places a key of the given color.
func (w *World) spawnKeyAt(pos cp.Vector, color ColorTag) {
	w.key = newMarker(KindKey, color, w.roomFor(pos), w.params.KeyRadius, pos)
}

// spawnKey places a fresh key with a random color at a random position in a
// random room.
func (w *World) spawnKey() {
	room := w.randomRoom()
	w.spawnKeyAt(w.randomPoint(room), w.randomColor())
}

// roomFor maps a world position back to the room tag whose footprint
// contains it.
func (w *World) roomFor(pos cp.Vector) int {
	best := 1
	bestDist := vDist(pos, w.roomCenter(1))
	for room := 2; room <= w.params.Rooms; room++ {
		if d := vDist(pos, w.roomCenter(room)); d < bestDist {
			best = room
			bestDist = d
		}
	}
	return best
}
