// Package serpent implements the continuous snake game in solo and duel
// flavors. All movement happens on a wraparound plane in float coordinates;
// the terminal grid is only a projection done at render time.
package serpent

import (
	"fmt"
	"math/rand"

	"github.com/serpent-arcade/serpent/internal/config"
	"github.com/serpent-arcade/serpent/internal/core"
	"github.com/serpent-arcade/serpent/internal/registry"
	"github.com/serpent-arcade/serpent/internal/sim"
)

// Minimum terminal size for a playable projection of the plane.
const (
	minScreenW = 40
	minScreenH = 16
	hudHeight  = 2
)

// Game adapts a sim.Match to the platform's Game interface.
type Game struct {
	mode sim.Mode

	cfg   config.SerpentConfig
	match *sim.Match
	rng   *rand.Rand // restart seeds only; the match owns its own RNG

	screenW  int
	screenH  int
	paused   bool
	tooSmall bool
}

// Package-level variables for config/difficulty, set by the CLI before the
// game is created.
var (
	configPath       string
	difficultyPreset string
)

// SetConfigPath sets the config file path used on the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset used on the next Reset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// New creates a solo serpent game.
func New() *Game {
	return &Game{mode: sim.ModeSingle}
}

// NewDuel creates a two-player duel game.
func NewDuel() *Game {
	return &Game{mode: sim.ModeDuo}
}

func init() {
	registry.Register("serpent", func() registry.Game {
		return New()
	})
	registry.Register("serpent_duel", func() registry.Game {
		return NewDuel()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == sim.ModeDuo {
		return "serpent_duel"
	}
	return "serpent"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == sim.ModeDuo {
		return "Serpent Duel"
	}
	return "Serpent"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	loaded, err := config.LoadSerpent(configPath)
	if err != nil {
		loaded = config.DefaultSerpentConfig()
	}
	config.ApplySerpentPreset(&loaded, config.DifficultyPreset(difficultyPreset))
	g.cfg = loaded

	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.paused = false
	g.tooSmall = cfg.ScreenW < minScreenW || cfg.ScreenH < minScreenH

	settings := sim.Settings{
		Width:      loaded.World.Width,
		Height:     loaded.World.Height,
		Mode:       g.mode,
		Difficulty: difficultyFromPreset(loaded.Difficulty),
	}
	g.match = sim.NewMatch(settings, tuningFromConfig(loaded), cfg.Seed)
}

// difficultyFromPreset maps the config preset onto the simulation difficulty.
func difficultyFromPreset(preset config.DifficultyPreset) sim.Difficulty {
	if preset == config.DifficultyHard {
		return sim.DifficultyHard
	}
	return sim.DifficultyEasy
}

// tuningFromConfig builds the simulation tuning from the loaded YAML config.
func tuningFromConfig(cfg config.SerpentConfig) sim.Tuning {
	return sim.Tuning{
		Spacing:       cfg.Chain.Spacing,
		InitialLength: cfg.Chain.InitialLength,
		Easy:          motionFromConfig(cfg.Motion.Easy),
		Hard:          motionFromConfig(cfg.Motion.Hard),
		Food: sim.FoodTuning{
			PickupRadius:  cfg.Food.PickupRadius,
			Reward:        cfg.Food.Reward,
			Growth:        cfg.Food.Growth,
			Margin:        cfg.Food.Margin,
			HeadExclusion: cfg.Food.HeadExclusion,
			BodyExclusion: cfg.Food.BodyExclusion,
			MaxAttempts:   cfg.Food.MaxAttempts,
			FallbackCell:  cfg.Food.FallbackCell,
		},
		Projectile: sim.ProjectileTuning{
			Speed:        cfg.Projectile.Speed,
			Lifetime:     cfg.Projectile.Lifetime,
			HitRadius:    cfg.Projectile.HitRadius,
			Cooldown:     cfg.Projectile.Cooldown,
			SlowFactor:   cfg.Projectile.SlowFactor,
			SlowDuration: cfg.Projectile.SlowDuration,
		},
		Collision: sim.CollisionTuning{
			SelfRadius: cfg.Collision.SelfRadius,
			SelfExempt: cfg.Collision.SelfExempt,
			HeadRadius: cfg.Collision.HeadRadius,
			BodyRadius: cfg.Collision.BodyRadius,
		},
	}
}

func motionFromConfig(s config.SerpentSpeed) sim.MotionTuning {
	return sim.MotionTuning{
		BaseSpeed:      s.BaseSpeed,
		TurnRate:       s.TurnRate,
		SpeedIncrement: s.SpeedIncrement,
		SpeedCap:       s.SpeedCap,
	}
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	gameOver := g.match.State() == sim.StateEnded

	// Handle restart
	if input.Has(core.ActionRestart) && gameOver {
		g.Reset(core.RuntimeConfig{
			Seed:    g.rng.Int63(),
			ScreenW: g.screenW,
			ScreenH: g.screenH,
		})
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if input.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	if gameOver || g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	g.match.Step(g.simInput(input))
	return core.StepResult{State: g.State()}
}

// simInput maps platform actions onto per-player held controls.
func (g *Game) simInput(input core.InputFrame) sim.Input {
	in := sim.Input{
		One: sim.PlayerInput{
			Left:  input.Has(core.ActionP1TurnLeft),
			Right: input.Has(core.ActionP1TurnRight),
			Fire:  input.Has(core.ActionP1Fire),
		},
	}
	if g.mode == sim.ModeDuo {
		in.Two = sim.PlayerInput{
			Left:  input.Has(core.ActionP2TurnLeft),
			Right: input.Has(core.ActionP2TurnRight),
			Fire:  input.Has(core.ActionP2Fire),
		}
	}
	return in
}

// State returns the current game state. In a duel the reported score is the
// winner's score once the match has ended, otherwise the leading score.
func (g *Game) State() core.GameState {
	score := 0
	switch g.mode {
	case sim.ModeSingle:
		score = g.match.Snake(sim.PlayerOne).Score
	case sim.ModeDuo:
		switch g.match.Winner() {
		case sim.WinnerPlayerOne:
			score = g.match.Snake(sim.PlayerOne).Score
		case sim.WinnerPlayerTwo:
			score = g.match.Snake(sim.PlayerTwo).Score
		default:
			for _, s := range g.match.Snakes() {
				if s.Score > score {
					score = s.Score
				}
			}
		}
	}

	return core.GameState{
		Score:    score,
		GameOver: g.match.State() == sim.StateEnded,
		Paused:   g.paused,
	}
}

// Match exposes the underlying simulation; used by render and tests.
func (g *Game) Match() *sim.Match {
	return g.match
}

// endOverlayLines builds the game-over overlay text.
func (g *Game) endOverlayLines() (string, string) {
	if g.mode == sim.ModeDuo {
		switch g.match.Winner() {
		case sim.WinnerTie:
			return fmt.Sprintf("Tie - %s", g.match.Reason()), "Press R to restart"
		case sim.WinnerPlayerOne, sim.WinnerPlayerTwo:
			return fmt.Sprintf("%s wins - %s", g.match.Winner(), g.match.Reason()), "Press R to restart"
		}
	}
	return fmt.Sprintf("Game Over - %s", g.match.Reason()), "Press R to restart"
}
