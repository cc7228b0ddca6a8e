// Package config provides YAML-based game configuration loading and
// difficulty presets for the serpent arcade.
package config

// SerpentConfig contains all tunables for the serpent simulation, shared by
// the solo game and the duel.
type SerpentConfig struct {
	World      SerpentWorld      `yaml:"world"`
	Chain      SerpentChain      `yaml:"chain"`
	Food       SerpentFood       `yaml:"food"`
	Motion     SerpentMotion     `yaml:"motion"`
	Projectile SerpentProjectile `yaml:"projectile"`
	Collision  SerpentCollision  `yaml:"collision"`
	Difficulty DifficultyPreset  `yaml:"difficulty"`
}

// SerpentWorld defines the wraparound plane dimensions in world units.
type SerpentWorld struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// SerpentChain defines the body geometry of every snake.
type SerpentChain struct {
	Spacing       float64 `yaml:"spacing"`
	InitialLength int     `yaml:"initial_length"`
}

// SerpentFood defines food placement and reward parameters.
type SerpentFood struct {
	PickupRadius  float64 `yaml:"pickup_radius"`
	Reward        int     `yaml:"reward"`
	Growth        int     `yaml:"growth"`
	Margin        float64 `yaml:"margin"`
	HeadExclusion float64 `yaml:"head_exclusion"`
	BodyExclusion float64 `yaml:"body_exclusion"`
	MaxAttempts   int     `yaml:"max_attempts"`
	FallbackCell  float64 `yaml:"fallback_cell"`
}

// SerpentMotion holds one speed block per difficulty.
type SerpentMotion struct {
	Easy SerpentSpeed `yaml:"easy"`
	Hard SerpentSpeed `yaml:"hard"`
}

// SerpentSpeed defines speed and steering for one difficulty.
// SpeedIncrement and SpeedCap only matter on hard, where each pickup
// accelerates the match.
type SerpentSpeed struct {
	BaseSpeed      float64 `yaml:"base_speed"`
	TurnRate       float64 `yaml:"turn_rate"`
	SpeedIncrement float64 `yaml:"speed_increment"`
	SpeedCap       float64 `yaml:"speed_cap"`
}

// SerpentProjectile defines the duel-mode projectile parameters.
// Durations are in simulation ticks.
type SerpentProjectile struct {
	Speed        float64 `yaml:"speed"`
	Lifetime     uint64  `yaml:"lifetime"`
	HitRadius    float64 `yaml:"hit_radius"`
	Cooldown     uint64  `yaml:"cooldown"`
	SlowFactor   float64 `yaml:"slow_factor"`
	SlowDuration uint64  `yaml:"slow_duration"`
}

// SerpentCollision defines the collision resolver radii.
type SerpentCollision struct {
	SelfRadius float64 `yaml:"self_radius"`
	SelfExempt int     `yaml:"self_exempt"`
	HeadRadius float64 `yaml:"head_radius"`
	BodyRadius float64 `yaml:"body_radius"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy DifficultyPreset = "easy"
	DifficultyHard DifficultyPreset = "hard"
)

// ValidPreset reports whether the preset names a known difficulty.
func ValidPreset(preset DifficultyPreset) bool {
	return preset == DifficultyEasy || preset == DifficultyHard
}
