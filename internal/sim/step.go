package sim

import (
	"fmt"
	"math"

	"github.com/jakecoffman/cp"
)

// FixedStep is the physics integration increment. The simulation always
// advances in whole increments of this size regardless of tick duration.
const FixedStep = 1.0 / 60.0

// MaxSubsteps bounds how many physics increments a single Advance may run.
// A dt spike (stalled terminal, suspended session) is absorbed by dropping
// the excess lag instead of spiraling into catch-up steps.
const MaxSubsteps = 4

// hopEpsilon is the ground-contact tolerance for the jump check.
const hopEpsilon = 0.05

// HUD message texts.
const (
	MsgMissionComplete = "MISSION COMPLETE!"
	MsgMissionFailed   = "MISSION FAILED"
	MsgNoKey           = "NO MATCHING KEY!"
	MsgHandsFull       = "ALREADY CARRYING A KEY"
)

// Input is the movement intent for one frame, already translated from
// platform actions. ClickWorld is the unprojected world position of a mouse
// click, used by the cursor pickup mode.
type Input struct {
	Up, Down, Left, Right bool
	Jump                  bool

	Click      bool
	ClickWorld cp.Vector
}

// Advance runs one frame of the simulation:
//
//  1. terminal runs are frozen,
//  2. the mission clock counts down (lose on zero),
//  3. cooldown, pulse and message timers expire,
//  4. movement intent becomes force, jump becomes a hop impulse when the
//     ground-contact heuristic holds,
//  5. the physics space steps in fixed increments with a capped substep
//     count,
//  6. render transforms are overwritten from the bodies,
//  7. proximity events resolve in fixed order: button, key, doors — each
//     check is independent; none short-circuits the rest of the frame,
//  8. the camera and key light ease toward the player.
func (w *World) Advance(dt float64, in Input) {
	if w.phase != PhasePlaying {
		return
	}
	w.tick++

	w.timeLeft -= dt
	if w.timeLeft <= 0 {
		w.timeLeft = 0
		w.phase = PhaseLost
		w.msg = Message{Text: MsgMissionFailed, Sticky: true}
		return
	}

	w.expireTimers(dt)

	force := w.moveForce(in)
	if in.Jump && w.hop <= hopEpsilon {
		w.hopVel = w.params.JumpImpulse
	}

	w.accum += dt
	steps := 0
	for w.accum >= FixedStep && steps < MaxSubsteps {
		if force.X != 0 || force.Y != 0 {
			w.player.body.ApplyForceAtWorldPoint(force, w.player.body.Position())
		}
		w.space.Step(FixedStep)
		w.stepHop(FixedStep)
		w.accum -= FixedStep
		steps++
	}
	if w.accum > FixedStep {
		w.accum = FixedStep // drop lag beyond one pending increment
	}

	w.syncRenderTransforms()

	w.checkButton()
	w.checkKey(in)
	w.checkDoors()

	target := w.player.Position()
	w.camera = vLerp(w.camera, target, w.params.CameraLerp)
	w.light = vLerp(w.light, target, w.params.LightLerp)
}

// expireTimers counts down the cooldown, the squash pulse, and the
// transient HUD message.
func (w *World) expireTimers(dt float64) {
	if w.cooldown > 0 {
		w.cooldown = math.Max(0, w.cooldown-dt)
	}
	if w.pulse > 0 {
		w.pulse = math.Max(0, w.pulse-dt)
	}
	if w.msg.Text != "" && !w.msg.Sticky {
		w.msg.TTL -= dt
		if w.msg.TTL <= 0 {
			w.msg = Message{}
		}
	}
}

// moveForce maps the held-direction set to a planar force vector.
func (w *World) moveForce(in Input) cp.Vector {
	var dx, dy float64
	if in.Left {
		dx--
	}
	if in.Right {
		dx++
	}
	if in.Up {
		dy--
	}
	if in.Down {
		dy++
	}
	if dx == 0 && dy == 0 {
		return cp.Vector{}
	}

	var fwd cp.Vector
	switch w.params.Movement {
	case MoveCameraRelative:
		// Forward is the camera-to-player heading, so "up" always
		// pushes the ball away from the viewer.
		fwd = cp.Vector{X: w.player.Position().X - w.camera.X, Y: w.player.Position().Y - w.camera.Y}
		if l := math.Hypot(fwd.X, fwd.Y); l > 1e-6 {
			fwd.X /= l
			fwd.Y /= l
		} else {
			fwd = cp.Vector{X: 0, Y: -1}
		}
	default:
		fwd = cp.Vector{X: 0, Y: -1}
	}
	right := cp.Vector{X: -fwd.Y, Y: fwd.X}

	dir := cp.Vector{
		X: right.X*dx - fwd.X*dy,
		Y: right.Y*dx - fwd.Y*dy,
	}
	l := math.Hypot(dir.X, dir.Y)
	if l < 1e-6 {
		return cp.Vector{}
	}
	scale := w.params.MoveForce / l
	return cp.Vector{X: dir.X * scale, Y: dir.Y * scale}
}

// stepHop integrates the vertical hop channel alongside each physics
// increment. The planar space never sees this axis.
func (w *World) stepHop(dt float64) {
	if w.hop <= 0 && w.hopVel <= 0 {
		w.hop = 0
		w.hopVel = 0
		return
	}
	w.hopVel -= w.params.HopGravity * dt
	w.hop += w.hopVel * dt
	if w.hop <= 0 {
		w.hop = 0
		w.hopVel = 0
	}
}

// syncRenderTransforms overwrites every render mirror from its physics
// body. One-way: nothing reads the mirrors back into the space.
func (w *World) syncRenderTransforms() {
	w.player.syncRender()
	if w.key != nil {
		w.key.syncRender()
	}
	if w.button != nil {
		w.button.syncRender()
	}
	for _, d := range w.doors {
		d.syncRender()
	}
}

// checkButton resolves a button hit: reject with a transient message when
// the required color is missing, otherwise consume, score, pulse, respawn,
// and check the win threshold.
func (w *World) checkButton() {
	if w.phase != PhasePlaying || w.button == nil || w.cooldown > 0 {
		return
	}
	if vDist(w.player.Position(), w.button.Position()) > w.params.ButtonRadius {
		return
	}

	w.cooldown = w.params.Cooldown

	if w.params.MatchKeys && !w.inv.Has(w.button.Color) {
		w.msg = w.transient(MsgNoKey)
		return
	}

	if w.params.MatchKeys {
		w.inv.Consume(w.button.Color)
	}
	w.score++
	w.pulse = w.params.PulseSecs
	w.pulsePos = w.button.Position()
	w.pulseColor = w.button.Color
	w.spawnButton()
	if w.params.Inventory == InventorySlot && w.key == nil {
		// The deposited key was the one live key; replace it.
		w.spawnKey()
	}

	if w.score >= w.params.WinScore {
		w.phase = PhaseWon
		w.msg = Message{Text: MsgMissionComplete, Sticky: true}
	}
}

// checkKey resolves key pickup for the active pickup mode.
func (w *World) checkKey(in Input) {
	if w.phase != PhasePlaying || w.key == nil {
		return
	}

	switch w.params.Pickup {
	case PickupProximity:
		if vDist(w.player.Position(), w.key.Position()) > w.params.KeyRadius {
			return
		}
	case PickupCursor:
		if !in.Click {
			return
		}
		if vDist(in.ClickWorld, w.key.Position()) > w.params.KeyRadius {
			return
		}
	default:
		return
	}

	color := w.key.Color
	if !w.inv.Add(color) {
		if w.params.Inventory == InventorySlot {
			w.msg = w.transient(MsgHandsFull)
		}
		return
	}

	w.key = nil
	if w.params.Inventory == InventoryCounted {
		// Counted mode keeps one key in the world at all times.
		w.spawnKey()
	}
	w.msg = w.transient(fmt.Sprintf("PICKED UP %s KEY", color))
}

// checkDoors teleports the player when a door's threshold is crossed:
// velocity zeroed, position snapped to the destination room's spawn point,
// room tag flipped.
func (w *World) checkDoors() {
	if w.phase != PhasePlaying {
		return
	}
	for _, door := range w.doors {
		if vDist(w.player.Position(), door.Position()) > door.Radius {
			continue
		}
		w.player.body.SetVelocity(0, 0)
		w.player.body.SetAngularVelocity(0)
		w.player.body.SetPosition(w.SpawnPoint(door.Target))
		w.room = door.Target
		w.player.Room = door.Target
		w.player.syncRender()
		w.msg = w.transient(fmt.Sprintf("ENTERING ROOM %d", door.Target))
		return
	}
}

func (w *World) transient(text string) Message {
	return Message{Text: text, TTL: w.params.MessageSecs}
}
