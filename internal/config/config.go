// Package config provides YAML-based configuration loading and difficulty
// presets for the arena variants.
package config

// ArenaConfig contains all tuning for the arena simulation. Every variant
// reads the same file; variant identity (rooms, inventory, pickup, player
// shape) is code, not configuration.
type ArenaConfig struct {
	Physics  ArenaPhysics  `yaml:"physics"`
	Gameplay ArenaGameplay `yaml:"gameplay"`
	Radii    ArenaRadii    `yaml:"radii"`
	Layout   ArenaLayout   `yaml:"layout"`
	Camera   ArenaCamera   `yaml:"camera"`
}

// ArenaPhysics defines the player body and force parameters.
type ArenaPhysics struct {
	MoveForce   float64 `yaml:"move_force"`
	JumpImpulse float64 `yaml:"jump_impulse"`
	HopGravity  float64 `yaml:"hop_gravity"`
	Damping     float64 `yaml:"damping"`
	Friction    float64 `yaml:"friction"`
	Elasticity  float64 `yaml:"elasticity"`
	PlayerMass  float64 `yaml:"player_mass"`
	PlayerSize  float64 `yaml:"player_size"`
}

// ArenaGameplay defines the mission parameters.
type ArenaGameplay struct {
	TimeLimit   float64 `yaml:"time_limit"`
	WinScore    int     `yaml:"win_score"`
	Cooldown    float64 `yaml:"cooldown"`
	MessageSecs float64 `yaml:"message_secs"`
	PulseSecs   float64 `yaml:"pulse_secs"`
}

// ArenaRadii defines the proximity thresholds for interactables.
type ArenaRadii struct {
	Key    float64 `yaml:"key"`
	Button float64 `yaml:"button"`
	Door   float64 `yaml:"door"`
}

// ArenaLayout defines the room floor plan.
type ArenaLayout struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	WallThickness float64 `yaml:"wall_thickness"`
	CrossGap      float64 `yaml:"cross_gap"`
	SpawnMargin   float64 `yaml:"spawn_margin"`
	RoomGap       float64 `yaml:"room_gap"`
}

// ArenaCamera defines the follow smoothing factors.
type ArenaCamera struct {
	Follow float64 `yaml:"follow"`
	Light  float64 `yaml:"light"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ValidPreset reports whether the preset name is known. The empty string is
// valid and means "leave the config untouched".
func ValidPreset(preset DifficultyPreset) bool {
	switch preset {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return true
	}
	return false
}
