package sim

// MotionTuning holds the speed/turn parameters for one difficulty.
type MotionTuning struct {
	BaseSpeed      float64
	TurnRate       float64
	SpeedIncrement float64 // added to the shared speed per pickup (hard only)
	SpeedCap       float64
}

// FoodTuning holds food placement and reward parameters.
type FoodTuning struct {
	PickupRadius  float64
	Reward        int
	Growth        int
	Margin        float64 // inset from each edge for candidate draws
	HeadExclusion float64 // min distance from new food to any live head
	BodyExclusion float64 // min distance from new food to any segment
	MaxAttempts   int     // rejection sampling bound
	FallbackCell  float64 // coarse grid pitch for the exhausted-sampling fallback
}

// ProjectileTuning holds the duel-mode projectile parameters.
type ProjectileTuning struct {
	Speed        float64
	Lifetime     uint64 // ticks a shot stays live
	HitRadius    float64
	Cooldown     uint64 // ticks between shots per snake
	SlowFactor   float64
	SlowDuration uint64 // ticks a struck snake stays slowed
}

// CollisionTuning holds the resolver radii.
type CollisionTuning struct {
	SelfRadius float64
	SelfExempt int // head-adjacent segments never tested for self-hits
	HeadRadius float64
	BodyRadius float64
}

// Tuning gathers every tunable of the simulation core.
type Tuning struct {
	Spacing       float64
	InitialLength int
	Easy          MotionTuning
	Hard          MotionTuning
	Food          FoodTuning
	Projectile    ProjectileTuning
	Collision     CollisionTuning
}

// DefaultTuning returns the stock parameters, matched to a 240x160 plane.
func DefaultTuning() Tuning {
	return Tuning{
		Spacing:       4.0,
		InitialLength: 15,
		Easy: MotionTuning{
			BaseSpeed: 1.1,
			TurnRate:  0.055,
		},
		Hard: MotionTuning{
			BaseSpeed:      1.6,
			TurnRate:       0.085,
			SpeedIncrement: 0.05,
			SpeedCap:       2.6,
		},
		Food: FoodTuning{
			PickupRadius:  6.0,
			Reward:        10,
			Growth:        5,
			Margin:        12.0,
			HeadExclusion: 30.0,
			BodyExclusion: 10.0,
			MaxAttempts:   1000,
			FallbackCell:  16.0,
		},
		Projectile: ProjectileTuning{
			Speed:        4.0,
			Lifetime:     120,
			HitRadius:    6.0,
			Cooldown:     90,
			SlowFactor:   0.5,
			SlowDuration: 180,
		},
		Collision: CollisionTuning{
			SelfRadius: 3.0,
			SelfExempt: 3,
			HeadRadius: 5.0,
			BodyRadius: 3.5,
		},
	}
}

// Motion returns the motion block for the given difficulty.
func (t Tuning) Motion(d Difficulty) MotionTuning {
	if d == DifficultyHard {
		return t.Hard
	}
	return t.Easy
}
