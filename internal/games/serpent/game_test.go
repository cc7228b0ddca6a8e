package serpent

import (
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/serpent-arcade/serpent/internal/core"
	"github.com/serpent-arcade/serpent/internal/sim"
)

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{
		Seed:    12345,
		ScreenW: 80,
		ScreenH: 24,
	}
}

func TestDeterminism(t *testing.T) {
	// Two games with the same seed and inputs must produce identical snapshots.
	cfg := testConfig()

	g1 := NewDuel()
	g1.Reset(cfg)

	g2 := NewDuel()
	g2.Reset(cfg)

	input := core.NewInputFrame()
	for i := 0; i < 300; i++ {
		input.Clear()
		if i%7 < 3 {
			input.Set(core.ActionP1TurnLeft)
		}
		if i%11 < 4 {
			input.Set(core.ActionP2TurnRight)
		}
		if i%60 == 30 {
			input.Set(core.ActionP1Fire)
		}

		g1.Step(input)
		g2.Step(input)
	}

	snap1 := g1.Snapshot()
	snap2 := g2.Snapshot()

	if !reflect.DeepEqual(snap1, snap2) {
		t.Errorf("snapshots diverged:\n%+v\nvs\n%+v", snap1, snap2)
	}
}

func TestGameIDs(t *testing.T) {
	solo := New()
	if solo.ID() != "serpent" {
		t.Errorf("Solo ID should be 'serpent', got %s", solo.ID())
	}

	duel := NewDuel()
	if duel.ID() != "serpent_duel" {
		t.Errorf("Duel ID should be 'serpent_duel', got %s", duel.ID())
	}
}

func TestTitles(t *testing.T) {
	solo := New()
	if solo.Title() != "Serpent" {
		t.Errorf("Solo title should be 'Serpent', got %s", solo.Title())
	}

	duel := NewDuel()
	if duel.Title() != "Serpent Duel" {
		t.Errorf("Duel title should be 'Serpent Duel', got %s", duel.Title())
	}
}

func TestPauseStopsSimulation(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	input := core.NewInputFrame()
	input.Set(core.ActionPause)
	result := g.Step(input)

	if !result.State.Paused {
		t.Fatal("game should be paused after ActionPause")
	}

	tickBefore := g.Match().Tick()
	input.Clear()
	for i := 0; i < 10; i++ {
		g.Step(input)
	}
	if g.Match().Tick() != tickBefore {
		t.Error("paused game should not advance the simulation")
	}

	// Unpausing resumes the simulation on the same tick
	input.Set(core.ActionPause)
	g.Step(input)
	if g.Match().Tick() != tickBefore+1 {
		t.Error("simulation should resume after unpausing")
	}
}

// forceHeadOn repositions the duel snakes so the next tick produces a
// head-on collision.
func forceHeadOn(g *Game) {
	plane := g.Match().Plane()
	tuning := tuningFromConfig(g.cfg)
	snakes := g.Match().Snakes()
	*snakes[0] = *sim.NewSnake(sim.PlayerOne, sim.Vec2{X: 100, Y: 40}, 0, tuning.Spacing, tuning.InitialLength, plane)
	*snakes[1] = *sim.NewSnake(sim.PlayerTwo, sim.Vec2{X: 104, Y: 40}, math.Pi, tuning.Spacing, tuning.InitialLength, plane)
}

func TestDuelEndsOnHeadOn(t *testing.T) {
	g := NewDuel()
	g.Reset(testConfig())
	forceHeadOn(g)

	result := g.Step(core.NewInputFrame())

	if !result.State.GameOver {
		t.Fatal("head-on collision should end the game")
	}
	if g.Match().Winner() != sim.WinnerTie {
		t.Errorf("Winner = %v, expected tie", g.Match().Winner())
	}
}

func TestRestartAfterGameOver(t *testing.T) {
	g := NewDuel()
	g.Reset(testConfig())
	forceHeadOn(g)
	g.Step(core.NewInputFrame())

	if g.Match().State() != sim.StateEnded {
		t.Fatal("match should have ended")
	}

	input := core.NewInputFrame()
	input.Set(core.ActionRestart)
	result := g.Step(input)

	if result.State.GameOver {
		t.Error("game should be running again after restart")
	}
	if g.Match().Tick() != 0 {
		t.Errorf("restarted match should start at tick 0, got %d", g.Match().Tick())
	}
	for _, s := range g.Match().Snakes() {
		if !s.Alive {
			t.Error("restarted match should have live snakes")
		}
	}
}

func TestStateReportsWinnerScore(t *testing.T) {
	g := NewDuel()
	g.Reset(testConfig())

	snakes := g.Match().Snakes()
	snakes[0].Score = 30
	snakes[1].Score = 70

	// Running duel reports the leading score
	if got := g.State().Score; got != 70 {
		t.Errorf("Score = %d, expected leading score 70", got)
	}
}

func TestRenderSolo(t *testing.T) {
	cfg := testConfig()
	g := New()
	g.Reset(cfg)

	screen := core.NewScreen(cfg.ScreenW, cfg.ScreenH)
	g.Render(screen)

	content := screen.String()
	if !strings.Contains(content, "Serpent") {
		t.Error("HUD should contain the game title")
	}
	if !strings.ContainsRune(content, 'O') {
		t.Error("screen should show the snake head")
	}
	if !strings.ContainsRune(content, '*') {
		t.Error("screen should show the food")
	}
}

func TestRenderDuelShowsBothSnakes(t *testing.T) {
	cfg := testConfig()
	g := NewDuel()
	g.Reset(cfg)

	screen := core.NewScreen(cfg.ScreenW, cfg.ScreenH)
	g.Render(screen)

	content := screen.String()
	if !strings.ContainsRune(content, 'O') || !strings.ContainsRune(content, 'X') {
		t.Error("duel screen should show both snake heads")
	}
}

func TestWindowTooSmall(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{Seed: 1, ScreenW: 10, ScreenH: 5})

	if !g.tooSmall {
		t.Fatal("game should detect the window is too small")
	}

	tickBefore := g.Match().Tick()
	g.Step(core.NewInputFrame())
	if g.Match().Tick() != tickBefore {
		t.Error("too-small game should not advance the simulation")
	}
}

func TestSoloScoreTracksSnake(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	g.Match().Snake(sim.PlayerOne).Score = 40
	if got := g.State().Score; got != 40 {
		t.Errorf("Score = %d, expected 40", got)
	}
}
