package sim

import (
	"math"

	"github.com/jakecoffman/cp"
)

// Kind tags the role of an interactable entity.
type Kind int

const (
	KindPlayer Kind = iota
	KindKey
	KindButton
	KindDoor
)

// Transform is the render-side mirror of a physics body. It is overwritten
// from the body once per frame and never written back; the body is the sole
// source of truth for spatial state.
type Transform struct {
	Pos   cp.Vector
	Angle float64
}

// Entity pairs a physics body with its render transform. The player carries
// a dynamic body registered in the space; keys, buttons and doors are static
// bodies used purely as transform holders for proximity checks, so their
// shapes never join the collision set.
type Entity struct {
	Kind   Kind
	Color  ColorTag
	Room   int
	Target int // doors only: destination room tag
	Radius float64

	body   *cp.Body
	Render Transform
}

// Position returns the entity's physical position.
func (e *Entity) Position() cp.Vector {
	return e.body.Position()
}

// Body exposes the underlying physics body. Used by the world for force
// application and teleports, and by tests to place the player.
func (e *Entity) Body() *cp.Body {
	return e.body
}

// syncRender copies the physics transform onto the render mirror.
func (e *Entity) syncRender() {
	e.Render.Pos = e.body.Position()
	e.Render.Angle = e.body.Angle()
}

// Wall is a static box collider, kept around after construction so the
// renderer can draw the floor plan without reading the physics space.
type Wall struct {
	Min  cp.Vector
	Max  cp.Vector
	Room int
}

// vDist returns the Euclidean distance between two points.
func vDist(a, b cp.Vector) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// vLerp moves a toward b by factor t.
func vLerp(a, b cp.Vector, t float64) cp.Vector {
	return cp.Vector{
		X: a.X + (b.X-a.X)*t,
		Y: a.Y + (b.Y-a.Y)*t,
	}
}
