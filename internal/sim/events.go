package sim

// EventKind discriminates the per-tick events a match emits.
type EventKind int

const (
	EventFoodEaten EventKind = iota
	EventFoodMoved
	EventSpeedChanged
	EventProjectileFired
	EventProjectileHit
	EventProjectileExpired
	EventMatchEnded
)

// String returns a short name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventFoodEaten:
		return "food_eaten"
	case EventFoodMoved:
		return "food_moved"
	case EventSpeedChanged:
		return "speed_changed"
	case EventProjectileFired:
		return "projectile_fired"
	case EventProjectileHit:
		return "projectile_hit"
	case EventProjectileExpired:
		return "projectile_expired"
	case EventMatchEnded:
		return "match_ended"
	default:
		return "unknown"
	}
}

// Event is one discrete occurrence during a tick. Fields beyond Kind are
// populated where they apply: Snake for per-snake events, the deltas for
// pickups, Speed for speed changes, Pos for food moves, Winner/Reason for
// the terminal event.
type Event struct {
	Kind        EventKind
	Snake       PlayerID
	ScoreDelta  int
	LengthDelta int
	Speed       float64
	Pos         Vec2
	Winner      Winner
	Reason      string
}
