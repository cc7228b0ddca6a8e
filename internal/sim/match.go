package sim

import (
	"math"
	"math/rand"
)

// Mode selects single play or the two-player duel.
type Mode int

const (
	ModeSingle Mode = iota
	ModeDuo
)

// String returns the mode name.
func (m Mode) String() string {
	if m == ModeDuo {
		return "duo"
	}
	return "single"
}

// Difficulty selects a motion tuning block.
type Difficulty int

const (
	DifficultyEasy Difficulty = iota
	DifficultyHard
)

// String returns the difficulty name.
func (d Difficulty) String() string {
	if d == DifficultyHard {
		return "hard"
	}
	return "easy"
}

// State is the match lifecycle: running until a terminal collision, then
// ended for good. No entity mutates after the match has ended.
type State int

const (
	StateRunning State = iota
	StateEnded
)

// Winner identifies the match outcome in duel mode. Single-mode matches end
// with WinnerNone.
type Winner int

const (
	WinnerNone Winner = iota
	WinnerPlayerOne
	WinnerPlayerTwo
	WinnerTie
)

// String returns a display name for the outcome.
func (w Winner) String() string {
	switch w {
	case WinnerPlayerOne:
		return "Player 1"
	case WinnerPlayerTwo:
		return "Player 2"
	case WinnerTie:
		return "Tie"
	default:
		return "None"
	}
}

// PlayerInput is one player's held controls, sampled once per tick.
type PlayerInput struct {
	Left  bool
	Right bool
	Fire  bool // duel mode only
}

// Input carries both players' held controls for one tick. In single mode
// Two is ignored.
type Input struct {
	One PlayerInput
	Two PlayerInput
}

// Settings fixes a match's world and rules for its whole lifetime.
type Settings struct {
	Width, Height float64
	Mode          Mode
	Difficulty    Difficulty
}

// Match owns all entities for one game and advances them one fixed tick at a
// time. It is single-threaded by design: each Step runs to completion and
// the caller only ever observes settled state between ticks.
type Match struct {
	plane      Plane
	mode       Mode
	difficulty Difficulty
	tuning     Tuning
	motion     MotionTuning

	rng     *rand.Rand
	spawner *FoodSpawner
	shots   *ProjectileSystem // nil outside duel mode

	tick   uint64
	speed  float64 // shared across snakes; grows per pickup on hard
	snakes []*Snake
	food   Vec2

	state  State
	winner Winner
	reason string
}

// NewMatch creates a match from settings and tuning, seeding the food RNG.
// In duel mode the snakes spawn mirrored on the horizontal midline facing
// away from each other; in single mode the snake starts at the center
// heading east.
func NewMatch(settings Settings, tuning Tuning, seed int64) *Match {
	m := &Match{
		plane:      Plane{W: settings.Width, H: settings.Height},
		mode:       settings.Mode,
		difficulty: settings.Difficulty,
		tuning:     tuning,
		motion:     tuning.Motion(settings.Difficulty),
		rng:        rand.New(rand.NewSource(seed)),
		state:      StateRunning,
	}
	m.speed = m.motion.BaseSpeed
	m.spawner = NewFoodSpawner(m.rng, tuning.Food)

	if m.mode == ModeDuo {
		m.snakes = []*Snake{
			NewSnake(PlayerOne, Vec2{X: m.plane.W * 0.25, Y: m.plane.H / 2}, math.Pi, tuning.Spacing, tuning.InitialLength, m.plane),
			NewSnake(PlayerTwo, Vec2{X: m.plane.W * 0.75, Y: m.plane.H / 2}, 0, tuning.Spacing, tuning.InitialLength, m.plane),
		}
		m.shots = NewProjectileSystem(tuning.Projectile)
	} else {
		m.snakes = []*Snake{
			NewSnake(PlayerOne, m.plane.Center(), 0, tuning.Spacing, tuning.InitialLength, m.plane),
		}
	}

	m.food = m.spawner.Place(m.plane, m.snakes)
	return m
}

// Step advances the match by one tick: steering, head advance and body
// follow per snake, projectile flight and hits, then collision resolution.
// Once the match has ended Step is a no-op.
func (m *Match) Step(in Input) []Event {
	if m.state == StateEnded {
		return nil
	}
	m.tick++

	inputs := [...]PlayerInput{in.One, in.Two}
	for i, s := range m.snakes {
		if !s.Alive {
			continue
		}
		s.Steer(inputs[i].Left, inputs[i].Right, m.motion.TurnRate)
		slowFactor := 1.0
		if m.shots != nil {
			slowFactor = m.shots.SlowFactor()
		}
		s.Advance(m.speed, slowFactor, m.tick, m.plane)
	}

	var events []Event
	if m.shots != nil {
		for i, s := range m.snakes {
			if s.Alive && inputs[i].Fire && m.shots.Fire(s, m.tick) {
				events = append(events, Event{Kind: EventProjectileFired, Snake: s.ID, Pos: s.Head})
			}
		}
		events = append(events, m.shots.Step(m.tick, m.plane, m.snakes)...)
	}

	events = append(events, m.resolve()...)
	return events
}

// Tick returns the number of completed ticks.
func (m *Match) Tick() uint64 {
	return m.tick
}

// Speed returns the shared base speed (before any per-snake slow effect).
func (m *Match) Speed() float64 {
	return m.speed
}

// Snakes returns the match's snakes; index 0 is player one.
func (m *Match) Snakes() []*Snake {
	return m.snakes
}

// Snake returns the snake for a player slot, or nil.
func (m *Match) Snake(id PlayerID) *Snake {
	for _, s := range m.snakes {
		if s.ID == id {
			return s
		}
	}
	return nil
}

// Food returns the current food position.
func (m *Match) Food() Vec2 {
	return m.food
}

// Projectiles returns the live shots (empty outside duel mode).
func (m *Match) Projectiles() []Projectile {
	if m.shots == nil {
		return nil
	}
	return m.shots.Active()
}

// Plane returns the world rectangle.
func (m *Match) Plane() Plane {
	return m.plane
}

// Mode returns the match mode.
func (m *Match) Mode() Mode {
	return m.mode
}

// Difficulty returns the match difficulty.
func (m *Match) Difficulty() Difficulty {
	return m.difficulty
}

// State returns RUNNING or ENDED.
func (m *Match) State() State {
	return m.state
}

// Winner returns the outcome; meaningful once State is ENDED.
func (m *Match) Winner() Winner {
	return m.winner
}

// Reason returns the human-readable cause of the match end.
func (m *Match) Reason() string {
	return m.reason
}
