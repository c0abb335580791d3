package sim

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
)

func buttonOnlyParams() Params {
	p := DefaultParams()
	p.Cooldown = 0 // tests trigger deposits on consecutive frames
	return p
}

func cursorKeyParams() Params {
	p := DefaultParams()
	p.Inventory = InventoryCounted
	p.Pickup = PickupCursor
	p.MatchKeys = true
	p.FirstKeyMatchesButton = true
	p.Cooldown = 0
	return p
}

func twoRoomParams() Params {
	p := DefaultParams()
	p.Rooms = 2
	p.Inventory = InventorySlot
	p.Pickup = PickupProximity
	p.MatchKeys = true
	p.FirstKeyMatchesButton = true
	p.Cooldown = 0
	return p
}

// teleport places the player body exactly at pos with no velocity.
func teleport(w *World, pos cp.Vector) {
	w.Player().Body().SetVelocity(0, 0)
	w.Player().Body().SetAngularVelocity(0)
	w.Player().Body().SetPosition(pos)
}

func TestClockCountsDownAndClamps(t *testing.T) {
	w := NewWorld(buttonOnlyParams(), 1)

	w.Advance(FixedStep, Input{})
	if got := w.TimeLeft(); got >= w.Params().TimeLimit {
		t.Errorf("time did not decrease: %f", got)
	}

	w.Advance(w.Params().TimeLimit+5, Input{})
	if w.TimeLeft() != 0 {
		t.Errorf("expired clock should clamp to 0, got %f", w.TimeLeft())
	}
	if w.Phase() != PhaseLost {
		t.Errorf("phase = %v, expected lost", w.Phase())
	}
	msg := w.Message()
	if msg.Text != MsgMissionFailed || !msg.Sticky {
		t.Errorf("expected sticky %q, got %+v", MsgMissionFailed, msg)
	}
}

func TestTerminalPhaseFreezesWorld(t *testing.T) {
	w := NewWorld(buttonOnlyParams(), 1)
	w.Advance(w.Params().TimeLimit+1, Input{})

	tick := w.Tick()
	pos := w.Player().Position()
	w.Advance(FixedStep, Input{Up: true, Jump: true})

	if w.Tick() != tick {
		t.Error("tick advanced after the run ended")
	}
	if w.Player().Position() != pos {
		t.Error("player moved after the run ended")
	}
}

func TestButtonOnlyDepositAndWin(t *testing.T) {
	w := NewWorld(buttonOnlyParams(), 7)

	for i := 0; i < 200 && w.Phase() == PhasePlaying; i++ {
		teleport(w, w.Button().Position())
		w.Advance(FixedStep, Input{})
	}

	if w.Phase() != PhaseWon {
		t.Fatalf("phase = %v, expected won", w.Phase())
	}
	if w.Score() != w.Params().WinScore {
		t.Errorf("score = %d, expected exactly %d", w.Score(), w.Params().WinScore)
	}
	msg := w.Message()
	if msg.Text != MsgMissionComplete || !msg.Sticky {
		t.Errorf("expected sticky %q, got %+v", MsgMissionComplete, msg)
	}
}

func TestButtonCooldownBlocksRepeatTriggers(t *testing.T) {
	p := buttonOnlyParams()
	p.Cooldown = 10 // longer than the test runs
	w := NewWorld(p, 7)

	teleport(w, w.Button().Position())
	w.Advance(FixedStep, Input{})
	if w.Score() != 1 {
		t.Fatalf("first overlap should score, got %d", w.Score())
	}

	for i := 0; i < 30; i++ {
		teleport(w, w.Button().Position())
		w.Advance(FixedStep, Input{})
	}
	if w.Score() != 1 {
		t.Errorf("cooldown did not hold: score = %d", w.Score())
	}
}

func TestWrongKeyRejectsWithoutMutation(t *testing.T) {
	p := cursorKeyParams()
	p.FirstKeyMatchesButton = false
	w := NewWorld(p, 3)

	// Empty inventory: any button touch is a wrong-key rejection.
	keyPos := w.Key().Position()
	keyColor := w.Key().Color
	teleport(w, w.Button().Position())
	w.Advance(FixedStep, Input{})

	if w.Score() != 0 {
		t.Errorf("rejection must not score, got %d", w.Score())
	}
	if w.Message().Text != MsgNoKey {
		t.Errorf("message = %q, expected %q", w.Message().Text, MsgNoKey)
	}
	if w.Key() == nil || w.Key().Position() != keyPos || w.Key().Color != keyColor {
		t.Error("rejection must not touch the world key")
	}
	if !w.Inv().Empty() {
		t.Error("rejection must not touch the inventory")
	}
}

func TestTransientMessageExpires(t *testing.T) {
	p := cursorKeyParams()
	p.FirstKeyMatchesButton = false
	p.MessageSecs = 0.1
	w := NewWorld(p, 3)

	teleport(w, w.Button().Position())
	w.Advance(FixedStep, Input{})
	if !w.Message().Active() {
		t.Fatal("expected an active rejection message")
	}

	// Park in the quadrant opposite the button so it cannot re-trigger.
	b := w.Button().Position()
	teleport(w, cp.Vector{X: -b.X, Y: -b.Y})
	for i := 0; i < 20; i++ {
		w.Advance(FixedStep, Input{})
	}
	if w.Message().Active() {
		t.Errorf("transient message should have expired, got %+v", w.Message())
	}
}

func TestCursorPickupAddsKeyAndRespawns(t *testing.T) {
	w := NewWorld(cursorKeyParams(), 11)

	color := w.Key().Color
	w.Advance(FixedStep, Input{Click: true, ClickWorld: w.Key().Position()})

	if w.Inv().Count(color) != 1 {
		t.Errorf("count = %d, expected 1", w.Inv().Count(color))
	}
	if w.Key() == nil {
		t.Fatal("counted mode must respawn the key immediately")
	}
}

func TestCursorClickAwayFromKeyIsIgnored(t *testing.T) {
	w := NewWorld(cursorKeyParams(), 11)

	far := w.Key().Position()
	far.X += w.Params().KeyRadius * 5
	w.Advance(FixedStep, Input{Click: true, ClickWorld: far})

	if !w.Inv().Empty() {
		t.Error("missed click must not collect the key")
	}
}

func TestMatchedDepositConsumesKey(t *testing.T) {
	w := NewWorld(cursorKeyParams(), 11)

	color := w.Key().Color // matches the button by construction
	w.Advance(FixedStep, Input{Click: true, ClickWorld: w.Key().Position()})
	if w.Inv().Count(color) != 1 {
		t.Fatalf("pickup failed, count = %d", w.Inv().Count(color))
	}

	teleport(w, w.Button().Position())
	w.Advance(FixedStep, Input{})

	if w.Score() != 1 {
		t.Errorf("score = %d, expected 1", w.Score())
	}
	if w.Inv().Count(color) != 0 {
		t.Errorf("deposit must consume the key, count = %d", w.Inv().Count(color))
	}
	if w.Pulse() <= 0 {
		t.Error("deposit should start the squash pulse")
	}
}

func TestSlotPickupWhileHoldingIsRejected(t *testing.T) {
	w := NewWorld(twoRoomParams(), 5)

	teleport(w, w.Key().Position())
	w.Advance(FixedStep, Input{})
	if _, held := w.Inv().Holding(); !held {
		t.Fatal("pickup failed")
	}
	if w.Key() != nil {
		t.Fatal("slot mode must not respawn the key while it is held")
	}

	// No world key exists, so nothing to reject against; a deposit brings
	// the replacement back.
	teleport(w, w.Button().Position())
	w.Advance(FixedStep, Input{})
	if w.Score() != 1 {
		t.Fatalf("deposit failed, score = %d", w.Score())
	}
	if w.Key() == nil {
		t.Error("deposit must respawn the world key in slot mode")
	}
	if !w.Inv().Empty() {
		t.Error("slot must be empty after deposit")
	}
}

func TestPulseMarksTheDepositSpot(t *testing.T) {
	w := NewWorld(buttonOnlyParams(), 7)

	depositPos := w.Button().Position()
	depositColor := w.Button().Color
	teleport(w, depositPos)
	w.Advance(FixedStep, Input{})

	if w.Score() != 1 {
		t.Fatalf("deposit failed, score = %d", w.Score())
	}
	if w.Pulse() <= 0 {
		t.Fatal("deposit should start the squash pulse")
	}
	if w.PulsePos() != depositPos {
		t.Errorf("pulse at %v, expected the deposit spot %v", w.PulsePos(), depositPos)
	}
	if w.PulseColor() != depositColor {
		t.Errorf("pulse color %v, expected the deposited button's %v", w.PulseColor(), depositColor)
	}
}

func TestSlotRejectsFloorKeyWhileHolding(t *testing.T) {
	w := NewWorld(twoRoomParams(), 5)

	teleport(w, w.Key().Position())
	w.Advance(FixedStep, Input{})
	held, ok := w.Inv().Holding()
	if !ok {
		t.Fatal("pickup failed")
	}

	// No descriptor leaves a key on the floor while the slot is full; drop
	// one directly to exercise the rejection.
	b := w.Button().Position()
	floor := cp.Vector{X: -b.X, Y: -b.Y}
	w.spawnKeyAt(floor, (held+1)%ColorTag(PaletteSize))
	teleport(w, floor)
	w.Advance(FixedStep, Input{})

	if w.Message().Text != MsgHandsFull {
		t.Errorf("message = %q, expected %q", w.Message().Text, MsgHandsFull)
	}
	if w.Key() == nil || w.Key().Position() != floor {
		t.Error("rejection must leave the floor key alone")
	}
	if got, still := w.Inv().Holding(); !still || got != held {
		t.Error("rejection must not touch the held key")
	}
}

func TestDoorTeleportsAndFlipsRoom(t *testing.T) {
	w := NewWorld(twoRoomParams(), 5)
	if len(w.Doors()) != 2 {
		t.Fatalf("expected 2 doors, got %d", len(w.Doors()))
	}

	door := w.Doors()[0]
	teleport(w, door.Position())
	w.Player().Body().SetVelocity(4, -2)
	w.Advance(FixedStep, Input{})

	if w.Room() != door.Target {
		t.Errorf("room = %d, expected %d", w.Room(), door.Target)
	}
	if got := w.Player().Position(); vDist(got, w.SpawnPoint(door.Target)) > 1e-9 {
		t.Errorf("player at %v, expected spawn point %v", got, w.SpawnPoint(door.Target))
	}
	if v := w.Player().Body().Velocity(); v.X != 0 || v.Y != 0 {
		t.Errorf("velocity not zeroed: %v", v)
	}
	if !w.Message().Active() {
		t.Error("expected a room-transition message")
	}
}

func TestJumpRequiresGroundContact(t *testing.T) {
	w := NewWorld(buttonOnlyParams(), 1)

	w.Advance(FixedStep, Input{Jump: true})
	if w.Hop() <= 0 {
		t.Fatal("grounded jump should raise the hop height")
	}

	mid := w.Hop()
	w.Advance(FixedStep, Input{Jump: true}) // airborne, must be ignored
	w.Advance(FixedStep, Input{})
	for i := 0; i < 300 && w.Hop() > 0; i++ {
		w.Advance(FixedStep, Input{})
	}
	if w.Hop() != 0 {
		t.Errorf("hop should settle back to 0, got %f (peak %f)", w.Hop(), mid)
	}
}

func TestMovementForcePushesPlayer(t *testing.T) {
	w := NewWorld(buttonOnlyParams(), 1)
	start := w.Player().Position()

	for i := 0; i < 30; i++ {
		w.Advance(FixedStep, Input{Right: true})
	}

	got := w.Player().Position()
	if got.X <= start.X {
		t.Errorf("player did not move right: %v -> %v", start, got)
	}
}

func TestDtSpikeIsAbsorbed(t *testing.T) {
	w := NewWorld(buttonOnlyParams(), 1)

	w.Advance(2.0, Input{Up: true}) // tens of fixed steps' worth of lag

	pos := w.Player().Position()
	if math.IsNaN(pos.X) || math.IsNaN(pos.Y) {
		t.Fatal("position degenerated after a dt spike")
	}
	// At most MaxSubsteps increments of force were applied.
	if d := vDist(pos, w.SpawnPoint(1)); d > 5 {
		t.Errorf("spike was not capped, player moved %f units", d)
	}
}

func TestSameSeedIsDeterministic(t *testing.T) {
	inputs := []Input{
		{Up: true}, {Up: true, Right: true}, {Right: true}, {},
		{Down: true, Jump: true}, {Left: true}, {}, {Up: true},
	}

	a := NewWorld(cursorKeyParams(), 99)
	b := NewWorld(cursorKeyParams(), 99)
	for i := 0; i < 240; i++ {
		in := inputs[i%len(inputs)]
		a.Advance(FixedStep, in)
		b.Advance(FixedStep, in)
	}

	if a.Player().Position() != b.Player().Position() {
		t.Errorf("positions diverged: %v vs %v", a.Player().Position(), b.Player().Position())
	}
	if a.Score() != b.Score() || a.Tick() != b.Tick() {
		t.Error("run state diverged between identical seeds")
	}
	if a.Key().Position() != b.Key().Position() || a.Key().Color != b.Key().Color {
		t.Error("spawns diverged between identical seeds")
	}
}

func TestCameraEasesTowardPlayer(t *testing.T) {
	w := NewWorld(buttonOnlyParams(), 1)

	for i := 0; i < 120; i++ {
		w.Advance(FixedStep, Input{Right: true})
	}
	playerDist := vDist(w.Camera(), w.Player().Position())

	for i := 0; i < 240; i++ {
		w.Advance(FixedStep, Input{})
	}
	if settled := vDist(w.Camera(), w.Player().Position()); settled >= playerDist && playerDist > 1e-6 {
		t.Errorf("camera did not converge: %f -> %f", playerDist, settled)
	}
}
