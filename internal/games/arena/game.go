// Package arena implements the key-hunt arena variants: a physics-driven
// player roaming walled rooms, collecting colored keys and depositing them
// at color-matched buttons against a countdown. All four variants share one
// simulation (internal/sim) and differ only in their descriptor.
package arena

import (
	"time"

	"github.com/quadkeys/keyhunt/internal/config"
	"github.com/quadkeys/keyhunt/internal/core"
	"github.com/quadkeys/keyhunt/internal/registry"
	"github.com/quadkeys/keyhunt/internal/sim"
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	switch preset {
	case "easy":
		difficultyPreset = config.DifficultyEasy
	case "normal":
		difficultyPreset = config.DifficultyNormal
	case "hard":
		difficultyPreset = config.DifficultyHard
	case "fixed":
		difficultyPreset = config.DifficultyFixed
	default:
		difficultyPreset = ""
	}
}

// Game adapts the arena simulation to the platform game interface. The
// variant field rewrites the descriptor part of the simulation parameters;
// everything else comes from configuration.
type Game struct {
	id      string
	title   string
	variant func(*sim.Params)

	runtime core.RuntimeConfig
	cfg     config.ArenaConfig
	dt      float64
	world   *sim.World
	paused  bool
}

// NewCube creates the button-only variant: one room, no keys, any touch of
// the button scores.
func NewCube() *Game {
	return &Game{
		id:    "cube",
		title: "Cube Arena",
		variant: func(p *sim.Params) {
			p.Rooms = 1
			p.Inventory = sim.InventoryNone
			p.Pickup = sim.PickupNone
			p.MatchKeys = false
			p.Player = sim.ShapeBox
		},
	}
}

// NewKeys creates the cursor-pickup variant: keys are collected by clicking
// them and counted per color; the button requires a matching key.
func NewKeys() *Game {
	return &Game{
		id:    "keys",
		title: "Key Hunt",
		variant: func(p *sim.Params) {
			p.Rooms = 1
			p.Inventory = sim.InventoryCounted
			p.Pickup = sim.PickupCursor
			p.MatchKeys = true
			p.FirstKeyMatchesButton = true
			p.Player = sim.ShapeBox
		},
	}
}

// NewRooms creates the two-room variant: doors teleport between rooms, and
// at most one key is carried at a time.
func NewRooms() *Game {
	return &Game{
		id:    "rooms",
		title: "Key Hunt: Two Rooms",
		variant: func(p *sim.Params) {
			p.Rooms = 2
			p.Inventory = sim.InventorySlot
			p.Pickup = sim.PickupProximity
			p.MatchKeys = true
			p.FirstKeyMatchesButton = true
			p.Player = sim.ShapeBox
		},
	}
}

// NewRoller creates the rolling-ball variant: a ball player with
// camera-relative controls and walk-over key pickup.
func NewRoller() *Game {
	return &Game{
		id:    "roller",
		title: "Key Roller",
		variant: func(p *sim.Params) {
			p.Rooms = 1
			p.Inventory = sim.InventoryCounted
			p.Pickup = sim.PickupProximity
			p.MatchKeys = true
			p.FirstKeyMatchesButton = true
			p.Player = sim.ShapeBall
			p.Movement = sim.MoveCameraRelative
		},
	}
}

// ID returns the unique identifier for this variant.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this variant.
func (g *Game) Title() string {
	return g.title
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	if g.runtime.TickRate <= 0 {
		g.runtime.TickRate = 60
	}
	g.dt = 1.0 / float64(g.runtime.TickRate)

	cfg, err := config.LoadArena(configPath)
	if err != nil {
		cfg = config.DefaultArenaConfig()
	}
	if difficultyPreset != "" {
		config.ApplyArenaPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg

	params := sim.DefaultParams()
	applyConfig(&params, cfg)
	g.variant(&params)

	seed := runtime.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g.world = sim.NewWorld(params, seed)
	g.paused = false
}

// applyConfig copies the YAML tuning onto the simulation parameters. The
// descriptor fields are untouched; the variant overwrites those after.
func applyConfig(p *sim.Params, cfg config.ArenaConfig) {
	p.MoveForce = cfg.Physics.MoveForce
	p.JumpImpulse = cfg.Physics.JumpImpulse
	p.HopGravity = cfg.Physics.HopGravity
	p.Damping = cfg.Physics.Damping
	p.Friction = cfg.Physics.Friction
	p.Elasticity = cfg.Physics.Elasticity
	p.PlayerMass = cfg.Physics.PlayerMass
	p.PlayerSize = cfg.Physics.PlayerSize

	p.TimeLimit = cfg.Gameplay.TimeLimit
	p.WinScore = cfg.Gameplay.WinScore
	p.Cooldown = cfg.Gameplay.Cooldown
	p.MessageSecs = cfg.Gameplay.MessageSecs
	p.PulseSecs = cfg.Gameplay.PulseSecs

	p.KeyRadius = cfg.Radii.Key
	p.ButtonRadius = cfg.Radii.Button
	p.DoorRadius = cfg.Radii.Door

	p.ArenaW = cfg.Layout.Width
	p.ArenaH = cfg.Layout.Height
	p.WallThickness = cfg.Layout.WallThickness
	p.CrossGap = cfg.Layout.CrossGap
	p.SpawnMargin = cfg.Layout.SpawnMargin
	p.RoomGap = cfg.Layout.RoomGap

	p.CameraLerp = cfg.Camera.Follow
	p.LightLerp = cfg.Camera.Light
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) && g.world.Phase() != sim.PhasePlaying {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && g.world.Phase() == sim.PhasePlaying {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	input := sim.Input{
		Up:    in.Has(core.ActionUp),
		Down:  in.Has(core.ActionDown),
		Left:  in.Has(core.ActionLeft),
		Right: in.Has(core.ActionRight),
		Jump:  in.Has(core.ActionJump),
	}
	if in.Click {
		// Unproject through the same viewport the renderer draws with,
		// so a click lands on the world position of its cell.
		v := g.world.Viewport(g.runtime.ScreenW, g.runtime.ScreenH)
		input.Click = true
		input.ClickWorld = v.ScreenToWorld(in.ClickX, in.ClickY)
	}

	g.world.Advance(g.dt, input)
	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	phase := g.world.Phase()
	return core.GameState{
		Score:    g.world.Score(),
		GameOver: phase != sim.PhasePlaying,
		Won:      phase == sim.PhaseWon,
		Paused:   g.paused,
	}
}

// World exposes the underlying simulation for the smoke command and tests.
func (g *Game) World() *sim.World {
	return g.world
}

// Register the variants with the registry
func init() {
	registry.Register("cube", func() registry.Game {
		return NewCube()
	})
	registry.Register("keys", func() registry.Game {
		return NewKeys()
	})
	registry.Register("rooms", func() registry.Game {
		return NewRooms()
	})
	registry.Register("roller", func() registry.Game {
		return NewRoller()
	})
}
