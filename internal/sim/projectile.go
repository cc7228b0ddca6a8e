package sim

import "math"

// Projectile is a ballistic shot: constant velocity, wrapping at plane
// edges, tagged with its firer. It can never strike its own owner.
type Projectile struct {
	Pos       Vec2
	Vel       Vec2
	Owner     PlayerID
	SpawnTick uint64
}

// ProjectileSystem owns all live shots in a duel. Single-mode matches never
// construct one.
type ProjectileSystem struct {
	cfg   ProjectileTuning
	shots []Projectile
}

// NewProjectileSystem creates an empty projectile system.
func NewProjectileSystem(cfg ProjectileTuning) *ProjectileSystem {
	return &ProjectileSystem{cfg: cfg}
}

// Active returns the live shots.
func (ps *ProjectileSystem) Active() []Projectile {
	return ps.shots
}

// SlowFactor returns the speed multiplier applied to slowed snakes.
func (ps *ProjectileSystem) SlowFactor() float64 {
	return ps.cfg.SlowFactor
}

// Fire spawns a shot from s's head along its heading, if s is off cooldown.
// Holding the fire input does not queue shots: attempts during the cooldown
// window are simply ignored.
func (ps *ProjectileSystem) Fire(s *Snake, now uint64) bool {
	if now < s.CooldownUntil {
		return false
	}
	ps.shots = append(ps.shots, Projectile{
		Pos: s.Head,
		Vel: Vec2{
			X: math.Cos(s.Angle) * ps.cfg.Speed,
			Y: math.Sin(s.Angle) * ps.cfg.Speed,
		},
		Owner:     s.ID,
		SpawnTick: now,
	})
	s.CooldownUntil = now + ps.cfg.Cooldown
	return true
}

// Step advances every shot, expires the old ones and resolves hits against
// non-owner heads using plain Euclidean distance. A hit consumes the shot
// and restamps the victim's slow expiry (overwrite, not stacking).
func (ps *ProjectileSystem) Step(now uint64, p Plane, snakes []*Snake) []Event {
	var events []Event
	kept := ps.shots[:0]
	for _, shot := range ps.shots {
		if now-shot.SpawnTick > ps.cfg.Lifetime {
			events = append(events, Event{Kind: EventProjectileExpired, Snake: shot.Owner, Pos: shot.Pos})
			continue
		}
		shot.Pos = p.Wrap(shot.Pos.Add(shot.Vel))

		hit := false
		for _, s := range snakes {
			if !s.Alive || s.ID == shot.Owner {
				continue
			}
			if Dist(shot.Pos, s.Head) <= ps.cfg.HitRadius {
				s.SlowUntil = now + ps.cfg.SlowDuration
				events = append(events, Event{Kind: EventProjectileHit, Snake: s.ID, Pos: shot.Pos})
				hit = true
				break
			}
		}
		if !hit {
			kept = append(kept, shot)
		}
	}
	ps.shots = kept
	return events
}

// Reset drops all live shots.
func (ps *ProjectileSystem) Reset() {
	ps.shots = ps.shots[:0]
}
