// Package sim implements the arena simulation: a player body roaming a
// walled, physics-backed floor plan, collecting colored keys and depositing
// them at color-matched buttons against a countdown. Rigid-body dynamics on
// the ground plane are delegated to the chipmunk port (jakecoffman/cp); the
// package owns the fixed-step loop, spawning, proximity events, inventory,
// and camera/light follow. All state lives in World and mutates only inside
// World.Advance, so the whole simulation is deterministic for a given seed
// and input sequence.
package sim

// ColorTag is one of the fixed three-color palette shared by keys and
// buttons.
type ColorTag int

const (
	ColorRed ColorTag = iota
	ColorGreen
	ColorBlue
)

// PaletteSize is the number of colors keys and buttons are drawn from.
const PaletteSize = 3

// String returns the display name of the color.
func (c ColorTag) String() string {
	switch c {
	case ColorRed:
		return "RED"
	case ColorGreen:
		return "GREEN"
	case ColorBlue:
		return "BLUE"
	default:
		return "?"
	}
}

// InventoryMode selects how collected keys are held.
type InventoryMode int

const (
	// InventoryNone is used by the button-only variant; no keys exist.
	InventoryNone InventoryMode = iota
	// InventoryCounted holds an integer count per color.
	InventoryCounted
	// InventorySlot holds at most one key at a time.
	InventorySlot
)

// PickupMode selects how keys are collected.
type PickupMode int

const (
	// PickupNone disables keys entirely.
	PickupNone PickupMode = iota
	// PickupProximity collects a key when the player body comes within
	// the key radius.
	PickupProximity
	// PickupCursor collects a key on a mouse click whose unprojected
	// world position falls within the key radius.
	PickupCursor
)

// MovementMode selects how directional input maps to force.
type MovementMode int

const (
	// MoveWorldAxis applies force along the fixed world axes.
	MoveWorldAxis MovementMode = iota
	// MoveCameraRelative applies force relative to the camera-to-player
	// heading, as in the third-person ball variant.
	MoveCameraRelative
)

// PlayerShape selects the player collider.
type PlayerShape int

const (
	ShapeBox PlayerShape = iota
	ShapeBall
)

// Params is the variant descriptor plus all tuning for one simulation.
// The four shipped variants differ only in this structure; there is a single
// code path for all of them.
type Params struct {
	Rooms     int
	Inventory InventoryMode
	Pickup    PickupMode
	Movement  MovementMode
	Player    PlayerShape

	// MatchKeys requires the button's color to be held before it scores.
	// The button-only variant sets it false and scores on any touch.
	MatchKeys bool

	// FirstKeyMatchesButton forces the initial key spawn to use the
	// initial button's color, so the first deposit is always reachable.
	FirstKeyMatchesButton bool

	TimeLimit   float64 // seconds on the mission clock
	WinScore    int     // deposits needed to win
	Cooldown    float64 // seconds between button triggers while overlapping
	MessageSecs float64 // transient HUD message lifetime
	PulseSecs   float64 // squash pulse duration after a scored deposit

	MoveForce   float64 // continuous planar force while a direction is held
	JumpImpulse float64 // initial vertical hop speed
	HopGravity  float64 // gravity on the vertical hop channel
	Damping     float64 // fraction of planar velocity retained per second
	Friction    float64
	Elasticity  float64
	PlayerMass  float64
	PlayerSize  float64 // box side length or ball diameter

	KeyRadius    float64
	ButtonRadius float64
	DoorRadius   float64

	ArenaW        float64 // room footprint extent along X
	ArenaH        float64 // room footprint extent along Y
	WallThickness float64
	CrossGap      float64 // passage length left open at each cross-arm end
	SpawnMargin   float64 // safety buffer added to the wall half-thickness
	RoomGap       float64 // center-to-center offset between rooms 1 and 2

	CameraLerp float64 // exponential smoothing factor per tick
	LightLerp  float64
}

// DefaultParams returns the shared tuning baseline. Variants adjust the
// descriptor fields on top of it; the config package overrides the numeric
// tuning from YAML.
func DefaultParams() Params {
	return Params{
		Rooms:     1,
		Inventory: InventoryNone,
		Pickup:    PickupNone,
		Movement:  MoveWorldAxis,
		Player:    ShapeBox,
		MatchKeys: false,

		TimeLimit:   60,
		WinScore:    10,
		Cooldown:    0.6,
		MessageSecs: 2.0,
		PulseSecs:   0.3,

		MoveForce:   60,
		JumpImpulse: 6,
		HopGravity:  20,
		Damping:     0.05,
		Friction:    0.6,
		Elasticity:  0.1,
		PlayerMass:  5,
		PlayerSize:  1,

		KeyRadius:    1.0,
		ButtonRadius: 1.0,
		DoorRadius:   1.5,

		ArenaW:        24,
		ArenaH:        14,
		WallThickness: 1,
		CrossGap:      3,
		SpawnMargin:   0.75,
		RoomGap:       20,

		CameraLerp: 0.12,
		LightLerp:  0.2,
	}
}
