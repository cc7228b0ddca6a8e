package serpent

import "github.com/serpent-arcade/serpent/internal/sim"

// PlayerSnapshot captures one snake's observable state.
type PlayerSnapshot struct {
	HeadX  float64
	HeadY  float64
	Angle  float64
	Length int
	Score  int
	Alive  bool
}

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Tick    uint64
	Speed   float64
	FoodX   float64
	FoodY   float64
	Players []PlayerSnapshot
	Ended   bool
	Winner  sim.Winner
	Reason  string
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:   g.match.Tick(),
		Speed:  g.match.Speed(),
		FoodX:  g.match.Food().X,
		FoodY:  g.match.Food().Y,
		Ended:  g.match.State() == sim.StateEnded,
		Winner: g.match.Winner(),
		Reason: g.match.Reason(),
	}
	for _, s := range g.match.Snakes() {
		snap.Players = append(snap.Players, PlayerSnapshot{
			HeadX:  s.Head.X,
			HeadY:  s.Head.Y,
			Angle:  s.Angle,
			Length: s.Length(),
			Score:  s.Score,
			Alive:  s.Alive,
		})
	}
	return snap
}
