package sim

import "math/rand"

// FoodSpawner places the single food item by rejection sampling: uniform
// draws inside the margin inset, rejected while too close to any live
// snake's head or body. The loop is bounded; when a crowded world exhausts
// the attempt budget, a deterministic coarse-grid scan picks the least
// crowded cell instead of spinning forever.
type FoodSpawner struct {
	rng *rand.Rand
	cfg FoodTuning
}

// NewFoodSpawner creates a spawner drawing from the given RNG.
func NewFoodSpawner(rng *rand.Rand, cfg FoodTuning) *FoodSpawner {
	return &FoodSpawner{rng: rng, cfg: cfg}
}

// Place returns a position for new food on p, clear of every live snake.
func (f *FoodSpawner) Place(p Plane, snakes []*Snake) Vec2 {
	for i := 0; i < f.cfg.MaxAttempts; i++ {
		cand := Vec2{
			X: f.cfg.Margin + f.rng.Float64()*(p.W-2*f.cfg.Margin),
			Y: f.cfg.Margin + f.rng.Float64()*(p.H-2*f.cfg.Margin),
		}
		if f.clear(cand, snakes) {
			return cand
		}
	}
	return f.leastCrowded(p, snakes)
}

// clear reports whether cand satisfies both exclusion radii against every
// live snake.
func (f *FoodSpawner) clear(cand Vec2, snakes []*Snake) bool {
	for _, s := range snakes {
		if !s.Alive {
			continue
		}
		if Dist(cand, s.Head) <= f.cfg.HeadExclusion {
			return false
		}
		for _, seg := range s.Segments() {
			if Dist(cand, seg) <= f.cfg.BodyExclusion {
				return false
			}
		}
	}
	return true
}

// leastCrowded scans cell centers on a coarse grid inside the margins and
// returns the one with the largest minimum distance to any live snake part.
// The scan order is fixed, so the fallback is deterministic.
func (f *FoodSpawner) leastCrowded(p Plane, snakes []*Snake) Vec2 {
	best := p.Center()
	bestScore := -1.0
	for y := f.cfg.Margin; y < p.H-f.cfg.Margin; y += f.cfg.FallbackCell {
		for x := f.cfg.Margin; x < p.W-f.cfg.Margin; x += f.cfg.FallbackCell {
			cand := Vec2{X: x, Y: y}
			score := nearestSnakeDist(cand, snakes)
			if score > bestScore {
				bestScore = score
				best = cand
			}
		}
	}
	return best
}

// nearestSnakeDist returns the distance from v to the closest live head or
// segment, or a large value when no snake is alive.
func nearestSnakeDist(v Vec2, snakes []*Snake) float64 {
	const far = 1e18
	min := far
	for _, s := range snakes {
		if !s.Alive {
			continue
		}
		if d := Dist(v, s.Head); d < min {
			min = d
		}
		for _, seg := range s.Segments() {
			if d := Dist(v, seg); d < min {
				min = d
			}
		}
	}
	return min
}
