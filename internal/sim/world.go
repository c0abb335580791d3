package sim

import (
	"math"
	"math/rand"

	"github.com/jakecoffman/cp"
)

// Phase is the lifecycle state of a run.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseWon
	PhaseLost
)

// String returns a display name for the phase.
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseWon:
		return "won"
	case PhaseLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Message is an expiring HUD notice. Terminal messages are sticky and never
// expire; transient ones count down inside Advance, replacing the deferred
// callback scheme of older prototypes.
type Message struct {
	Text   string
	TTL    float64
	Sticky bool
}

// Active reports whether the message should currently be displayed.
func (m Message) Active() bool {
	return m.Text != "" && (m.Sticky || m.TTL > 0)
}

// World is the complete simulation state for one run. Everything a frame
// mutates lives here; games hold exactly one World and call Advance once per
// platform tick.
type World struct {
	params Params
	rng    *rand.Rand
	space  *cp.Space

	player *Entity
	key    *Entity // nil in the button-only variant, or while a slot key is held
	button *Entity
	doors  []*Entity
	walls  []Wall

	inv      Inventory
	score    int
	timeLeft float64
	cooldown float64
	msg      Message
	phase    Phase
	room     int

	pulse      float64   // squash pulse countdown after a scored deposit
	pulsePos   cp.Vector // where the deposit happened, not the respawned button
	pulseColor ColorTag

	hop    float64 // vertical hop height above the floor
	hopVel float64

	camera cp.Vector
	light  cp.Vector

	accum float64
	tick  uint64
}

// NewWorld builds a simulation from a variant descriptor and an RNG seed.
// The arena (walls for every room, the player, the initial button and key,
// door markers) is constructed once here; everything after is Advance.
func NewWorld(p Params, seed int64) *World {
	if p.Rooms < 1 {
		p.Rooms = 1
	}

	space := cp.NewSpace()
	space.Iterations = 10
	space.SetGravity(cp.Vector{}) // top-down plane; the hop axis is separate

	w := &World{
		params:   p,
		rng:      rand.New(rand.NewSource(seed)),
		space:    space,
		inv:      NewInventory(p.Inventory),
		timeLeft: p.TimeLimit,
		phase:    PhasePlaying,
		room:     1,
	}

	for room := 1; room <= p.Rooms; room++ {
		w.buildRoom(room)
	}
	w.spawnPlayer()
	if p.Rooms > 1 {
		w.placeDoors()
	}

	w.spawnButton()
	if p.Pickup != PickupNone {
		color := w.randomColor()
		if p.FirstKeyMatchesButton {
			color = w.button.Color
		}
		w.spawnKeyAt(w.randomPoint(w.randomRoom()), color)
	}

	start := w.player.Position()
	w.camera = start
	w.light = start

	return w
}

// roomCenter returns the world-space center of a room. Rooms are laid out
// along +Y, one footprint apart.
func (w *World) roomCenter(room int) cp.Vector {
	return cp.Vector{X: 0, Y: float64(room-1) * w.params.RoomGap}
}

// SpawnPoint is the fixed respawn position inside a room: the center of its
// north-west quadrant, clear of the central cross wall.
func (w *World) SpawnPoint(room int) cp.Vector {
	c := w.roomCenter(room)
	return cp.Vector{X: c.X - w.params.ArenaW/4, Y: c.Y - w.params.ArenaH/4}
}

// buildRoom adds the static colliders for one room: four perimeter walls
// and a central cross with a passage gap at each arm end.
func (w *World) buildRoom(room int) {
	p := w.params
	c := w.roomCenter(room)
	halfW := p.ArenaW / 2
	halfH := p.ArenaH / 2
	t := p.WallThickness

	// Perimeter
	w.addWall(room, c.X-halfW, c.Y-halfH, c.X+halfW, c.Y-halfH+t)         // north
	w.addWall(room, c.X-halfW, c.Y+halfH-t, c.X+halfW, c.Y+halfH)         // south
	w.addWall(room, c.X-halfW, c.Y-halfH+t, c.X-halfW+t, c.Y+halfH-t)     // west
	w.addWall(room, c.X+halfW-t, c.Y-halfH+t, c.X+halfW, c.Y+halfH-t)     // east

	// Central cross, arms stopping short of the perimeter
	armX := halfW - t - p.CrossGap
	armY := halfH - t - p.CrossGap
	w.addWall(room, c.X-armX, c.Y-t/2, c.X+armX, c.Y+t/2)
	w.addWall(room, c.X-t/2, c.Y-armY, c.X+t/2, c.Y+armY)
}

// addWall registers a static box collider and records it for rendering.
func (w *World) addWall(room int, minX, minY, maxX, maxY float64) {
	bb := cp.BB{L: minX, B: minY, R: maxX, T: maxY}
	shape := cp.NewBox2(w.space.StaticBody, bb, 0)
	shape.SetFriction(w.params.Friction)
	shape.SetElasticity(w.params.Elasticity)
	w.space.AddShape(shape)

	w.walls = append(w.walls, Wall{
		Min:  cp.Vector{X: minX, Y: minY},
		Max:  cp.Vector{X: maxX, Y: maxY},
		Room: room,
	})
}

// spawnPlayer creates the single dynamic body. The cube variant pins
// rotation with an infinite moment; the ball variant rolls freely.
func (w *World) spawnPlayer() {
	p := w.params
	size := p.PlayerSize

	var body *cp.Body
	var shape *cp.Shape
	if p.Player == ShapeBall {
		moment := cp.MomentForCircle(p.PlayerMass, 0, size/2, cp.Vector{})
		body = cp.NewBody(p.PlayerMass, moment)
		shape = cp.NewCircle(body, size/2, cp.Vector{})
	} else {
		body = cp.NewBody(p.PlayerMass, cp.INFINITY)
		shape = cp.NewBox(body, size, size, 0)
	}
	shape.SetFriction(p.Friction)
	shape.SetElasticity(p.Elasticity)

	damping := p.Damping
	body.SetVelocityUpdateFunc(func(b *cp.Body, gravity cp.Vector, _ float64, dt float64) {
		b.UpdateVelocity(gravity, math.Pow(damping, dt), dt)
	})

	body.SetPosition(w.SpawnPoint(1))
	w.space.AddBody(body)
	w.space.AddShape(shape)

	w.player = &Entity{
		Kind:   KindPlayer,
		Room:   1,
		Radius: size / 2,
		body:   body,
	}
	w.player.syncRender()
}

// placeDoors drops one door marker near the east wall of each room,
// targeting the other room.
func (w *World) placeDoors() {
	p := w.params
	for room := 1; room <= p.Rooms; room++ {
		c := w.roomCenter(room)
		pos := cp.Vector{X: c.X + p.ArenaW/2 - p.WallThickness - 1, Y: c.Y}
		target := 1
		if room == 1 {
			target = 2
		}
		door := &Entity{
			Kind:   KindDoor,
			Room:   room,
			Target: target,
			Radius: p.DoorRadius,
			body:   cp.NewStaticBody(),
		}
		door.body.SetPosition(pos)
		door.syncRender()
		w.doors = append(w.doors, door)
	}
}

// newMarker creates a static transform-holder entity. Markers never join
// the collision set; they exist for proximity checks and rendering.
func newMarker(kind Kind, color ColorTag, room int, radius float64, pos cp.Vector) *Entity {
	e := &Entity{
		Kind:   kind,
		Color:  color,
		Room:   room,
		Radius: radius,
		body:   cp.NewStaticBody(),
	}
	e.body.SetPosition(pos)
	e.syncRender()
	return e
}

// Accessors. Games and tests read the world through these; all writes go
// through Advance.

func (w *World) Params() Params      { return w.params }
func (w *World) Score() int          { return w.score }
func (w *World) TimeLeft() float64   { return w.timeLeft }
func (w *World) Phase() Phase        { return w.phase }
func (w *World) Room() int           { return w.room }
func (w *World) Message() Message    { return w.msg }
func (w *World) Pulse() float64      { return w.pulse }
func (w *World) PulsePos() cp.Vector { return w.pulsePos }
func (w *World) PulseColor() ColorTag { return w.pulseColor }
func (w *World) Hop() float64        { return w.hop }
func (w *World) Camera() cp.Vector   { return w.camera }
func (w *World) Light() cp.Vector    { return w.light }
func (w *World) Tick() uint64        { return w.tick }
func (w *World) Inv() *Inventory     { return &w.inv }
func (w *World) Player() *Entity     { return w.player }
func (w *World) Key() *Entity        { return w.key }
func (w *World) Button() *Entity     { return w.button }
func (w *World) Doors() []*Entity    { return w.doors }
func (w *World) Walls() []Wall       { return w.walls }
