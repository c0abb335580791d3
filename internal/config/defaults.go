package config

import (
	_ "embed"
)

//go:embed defaults/arena.yaml
var defaultArenaYAML []byte

// DefaultArenaConfig returns the default arena configuration.
func DefaultArenaConfig() ArenaConfig {
	return ArenaConfig{
		Physics: ArenaPhysics{
			MoveForce:   60,
			JumpImpulse: 6,
			HopGravity:  20,
			Damping:     0.05,
			Friction:    0.6,
			Elasticity:  0.1,
			PlayerMass:  5,
			PlayerSize:  1,
		},
		Gameplay: ArenaGameplay{
			TimeLimit:   60,
			WinScore:    10,
			Cooldown:    0.6,
			MessageSecs: 2.0,
			PulseSecs:   0.3,
		},
		Radii: ArenaRadii{
			Key:    1.0,
			Button: 1.0,
			Door:   1.5,
		},
		Layout: ArenaLayout{
			Width:         24,
			Height:        14,
			WallThickness: 1,
			CrossGap:      3,
			SpawnMargin:   0.75,
			RoomGap:       20,
		},
		Camera: ArenaCamera{
			Follow: 0.12,
			Light:  0.2,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultArenaYAML
}
