package sim

import "math"

// PlayerID identifies one of the two player slots.
type PlayerID int

const (
	PlayerOne PlayerID = 1
	PlayerTwo PlayerID = 2
)

// String returns a display name for the player slot.
func (id PlayerID) String() string {
	switch id {
	case PlayerOne:
		return "Player 1"
	case PlayerTwo:
		return "Player 2"
	default:
		return "Unknown"
	}
}

// Snake is one actor: a continuously positioned head, a heading and a body
// chain trailing it. Angle always equals the steering target; only the body
// lags. Cooldown and slow timers are tick numbers, compared against the
// match tick counter.
type Snake struct {
	ID    PlayerID
	Head  Vec2
	Angle float64 // radians, normalized to (-pi, pi]
	Chain *Chain

	Alive bool
	Score int

	SlowUntil     uint64 // tick at which an active slow effect expires
	CooldownUntil uint64 // tick at which firing becomes possible again
}

// NewSnake spawns a snake at head facing angle, with its body laid out in a
// straight line behind it.
func NewSnake(id PlayerID, head Vec2, angle float64, spacing float64, length int, p Plane) *Snake {
	s := &Snake{
		ID:    id,
		Head:  p.Wrap(head),
		Angle: normalizeAngle(angle),
		Chain: NewChain(spacing, length),
		Alive: true,
	}
	s.Chain.InitLine(s.Head, s.Angle, p)
	return s
}

// normalizeAngle folds a into (-pi, pi].
func normalizeAngle(a float64) float64 {
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	for a <= -math.Pi {
		a += 2 * math.Pi
	}
	return a
}

// Steer applies held turn inputs for one tick. Turning is rate-limited but
// not smoothed: the heading is the target, every tick.
func (s *Snake) Steer(left, right bool, turnRate float64) {
	if left {
		s.Angle -= turnRate
	}
	if right {
		s.Angle += turnRate
	}
	s.Angle = normalizeAngle(s.Angle)
}

// Slowed reports whether a slow effect is active at the given tick.
func (s *Snake) Slowed(now uint64) bool {
	return now < s.SlowUntil
}

// Advance moves the head by the effective speed along the heading, wraps it
// into plane bounds and pulls the body chain after it. A slow effect scales
// the shared match speed for this tick only.
func (s *Snake) Advance(speed, slowFactor float64, now uint64, p Plane) {
	eff := speed
	if s.Slowed(now) {
		eff *= slowFactor
	}
	s.Head = p.Wrap(Vec2{
		X: s.Head.X + math.Cos(s.Angle)*eff,
		Y: s.Head.Y + math.Sin(s.Angle)*eff,
	})
	s.Chain.Follow(s.Head, p)
}

// Segments returns the materialized body positions, index 0 nearest head.
func (s *Snake) Segments() []Vec2 {
	return s.Chain.Points
}

// Length returns the target body length.
func (s *Snake) Length() int {
	return s.Chain.Target
}
