package arena

import (
	"strings"
	"testing"

	"github.com/quadkeys/keyhunt/internal/core"
	"github.com/quadkeys/keyhunt/internal/registry"
	"github.com/quadkeys/keyhunt/internal/sim"
)

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     12345,
	}
}

func TestAllVariantsRegistered(t *testing.T) {
	for _, id := range []string{"cube", "keys", "rooms", "roller"} {
		if !registry.Exists(id) {
			t.Errorf("variant %q not registered", id)
		}
		g, err := registry.Create(id)
		if err != nil {
			t.Fatalf("create %q: %v", id, err)
		}
		if g.ID() != id {
			t.Errorf("created game reports ID %q, expected %q", g.ID(), id)
		}
	}
}

func TestGameDeterminism(t *testing.T) {
	cfg := testRuntime()

	inputSequence := make([]core.InputFrame, 300)
	for i := range inputSequence {
		inputSequence[i] = core.NewInputFrame()
		if i%7 < 4 {
			inputSequence[i].Set(core.ActionUp)
		}
		if i%5 < 2 {
			inputSequence[i].Set(core.ActionRight)
		}
		if i%60 == 30 {
			inputSequence[i].Set(core.ActionJump)
		}
	}

	run := func() *Game {
		g := NewRooms()
		g.Reset(cfg)
		for _, in := range inputSequence {
			if g.Step(in).State.GameOver {
				break
			}
		}
		return g
	}

	g1 := run()
	g2 := run()

	if g1.World().Player().Position() != g2.World().Player().Position() {
		t.Error("determinism failed: player positions differ")
	}
	if g1.World().Score() != g2.World().Score() {
		t.Error("determinism failed: scores differ")
	}
	if g1.World().Tick() != g2.World().Tick() {
		t.Error("determinism failed: tick counts differ")
	}
}

func TestGameReset(t *testing.T) {
	g := NewCube()
	g.Reset(testRuntime())

	for i := 0; i < 100; i++ {
		in := core.NewInputFrame()
		in.Set(core.ActionRight)
		g.Step(in)
	}
	moved := g.World().Player().Position()

	g.Reset(testRuntime())

	if g.World().Score() != 0 {
		t.Errorf("reset should clear score, got %d", g.World().Score())
	}
	if g.World().Tick() != 0 {
		t.Errorf("reset should clear tick count, got %d", g.World().Tick())
	}
	if g.World().Player().Position() == moved {
		t.Error("reset should move the player back to spawn")
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	g := NewCube()
	g.Reset(testRuntime())

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	res := g.Step(pause)
	if !res.State.Paused {
		t.Fatal("pause action should pause the game")
	}

	tick := g.World().Tick()
	move := core.NewInputFrame()
	move.Set(core.ActionUp)
	for i := 0; i < 10; i++ {
		g.Step(move)
	}
	if g.World().Tick() != tick {
		t.Error("simulation advanced while paused")
	}

	g.Step(pause)
	g.Step(move)
	if g.World().Tick() == tick {
		t.Error("simulation did not resume after unpause")
	}
}

func TestRestartOnlyAfterGameOver(t *testing.T) {
	g := NewCube()
	g.Reset(testRuntime())

	restart := core.NewInputFrame()
	restart.Set(core.ActionRestart)
	g.Step(restart)
	if g.World().Tick() == 0 {
		t.Error("restart during play should be ignored and the tick should advance")
	}

	// Exhaust the clock, then restart.
	for g.World().Phase() == sim.PhasePlaying {
		g.Step(core.NewInputFrame())
	}
	g.Step(restart)
	if g.World().Phase() != sim.PhasePlaying {
		t.Error("restart after game over should start a new run")
	}
	if g.World().TimeLeft() != g.World().Params().TimeLimit {
		t.Error("restart should refill the mission clock")
	}
}

func TestClickUnprojectsThroughViewport(t *testing.T) {
	g := NewKeys()
	g.Reset(testRuntime())

	key := g.World().Key()
	color := key.Color
	v := g.World().Viewport(80, 24)
	x, y := v.WorldToScreen(key.Position())

	in := core.NewInputFrame()
	in.SetClick(x, y)
	g.Step(in)

	if g.World().Inv().Count(color) != 1 {
		t.Errorf("click on the key's cell should collect it, count = %d",
			g.World().Inv().Count(color))
	}
}

func TestRenderShowsHUDAndPlayer(t *testing.T) {
	for _, id := range []string{"cube", "keys", "rooms", "roller"} {
		g, err := registry.Create(id)
		if err != nil {
			t.Fatalf("create %q: %v", id, err)
		}
		g.Reset(testRuntime())
		g.Step(core.NewInputFrame())

		screen := core.NewScreen(80, 24)
		g.Render(screen)
		out := screen.String()

		if !strings.Contains(out, "SCORE") || !strings.Contains(out, "TIME") {
			t.Errorf("%s: HUD missing from render", id)
		}
		if !strings.ContainsRune(out, WallChar) {
			t.Errorf("%s: no walls rendered", id)
		}
		if !strings.ContainsRune(out, BoxChar) && !strings.ContainsRune(out, BallChar) {
			t.Errorf("%s: player glyph missing from render", id)
		}
	}
}

func TestPulseRendersAtDepositSpot(t *testing.T) {
	g := NewCube()
	g.Reset(testRuntime())
	w := g.World()

	w.Player().Body().SetVelocity(0, 0)
	w.Player().Body().SetPosition(w.Button().Position())
	g.Step(core.NewInputFrame())
	if w.Score() != 1 || w.Pulse() <= 0 {
		t.Fatalf("deposit did not register: score %d, pulse %f", w.Score(), w.Pulse())
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	// The flash must surround where the deposit happened, not the
	// respawned button.
	v := w.Viewport(80, 24)
	x, y := v.WorldToScreen(w.PulsePos())
	if screen.Get(x+1, y) != PulseChar || screen.Get(x-1, y) != PulseChar {
		t.Errorf("pulse ring missing around the deposit cell (%d,%d)", x, y)
	}
}

func TestGameOverOverlayRendered(t *testing.T) {
	g := NewCube()
	g.Reset(testRuntime())

	for g.World().Phase() == sim.PhasePlaying {
		g.Step(core.NewInputFrame())
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()

	if !strings.Contains(out, sim.MsgMissionFailed) {
		t.Error("timeout overlay should show the failure message")
	}
	if !strings.Contains(out, "restart") {
		t.Error("overlay should name the restart key")
	}
}
