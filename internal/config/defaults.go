package config

import (
	_ "embed"
)

//go:embed defaults/serpent.yaml
var defaultSerpentYAML []byte

// DefaultSerpentConfig returns the default serpent configuration, matched to
// a 240x160 plane.
func DefaultSerpentConfig() SerpentConfig {
	return SerpentConfig{
		World: SerpentWorld{
			Width:  240.0,
			Height: 160.0,
		},
		Chain: SerpentChain{
			Spacing:       4.0,
			InitialLength: 15,
		},
		Food: SerpentFood{
			PickupRadius:  6.0,
			Reward:        10,
			Growth:        5,
			Margin:        12.0,
			HeadExclusion: 30.0,
			BodyExclusion: 10.0,
			MaxAttempts:   1000,
			FallbackCell:  16.0,
		},
		Motion: SerpentMotion{
			Easy: SerpentSpeed{
				BaseSpeed: 1.1,
				TurnRate:  0.055,
			},
			Hard: SerpentSpeed{
				BaseSpeed:      1.6,
				TurnRate:       0.085,
				SpeedIncrement: 0.05,
				SpeedCap:       2.6,
			},
		},
		Projectile: SerpentProjectile{
			Speed:        4.0,
			Lifetime:     120,
			HitRadius:    6.0,
			Cooldown:     90,
			SlowFactor:   0.5,
			SlowDuration: 180,
		},
		Collision: SerpentCollision{
			SelfRadius: 3.0,
			SelfExempt: 3,
			HeadRadius: 5.0,
			BodyRadius: 3.5,
		},
		Difficulty: DifficultyEasy,
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
// Both serpent game IDs share one config file.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "serpent", "serpent_duel":
		return defaultSerpentYAML
	default:
		return nil
	}
}
