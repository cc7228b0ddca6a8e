package sim

import (
	"math"
	"testing"
)

func duelPair(p Plane) (shooter, target *Snake) {
	shooter = NewSnake(PlayerOne, Vec2{X: 60, Y: 80}, 0, 4.0, 15, p)
	target = NewSnake(PlayerTwo, Vec2{X: 180, Y: 80}, math.Pi, 4.0, 15, p)
	return shooter, target
}

func TestFireRespectsCooldown(t *testing.T) {
	p := Plane{W: 240, H: 160}
	cfg := DefaultTuning().Projectile
	ps := NewProjectileSystem(cfg)
	shooter, _ := duelPair(p)

	if !ps.Fire(shooter, 10) {
		t.Fatal("first shot should fire")
	}
	if shooter.CooldownUntil != 10+cfg.Cooldown {
		t.Errorf("CooldownUntil = %d, want %d", shooter.CooldownUntil, 10+cfg.Cooldown)
	}
	if ps.Fire(shooter, 11) {
		t.Error("shot during cooldown should be ignored")
	}
	if len(ps.Active()) != 1 {
		t.Errorf("active shots = %d, want 1", len(ps.Active()))
	}
	if !ps.Fire(shooter, 10+cfg.Cooldown) {
		t.Error("shot at cooldown expiry should fire")
	}
}

func TestProjectileExpiry(t *testing.T) {
	p := Plane{W: 240, H: 160}
	cfg := DefaultTuning().Projectile
	ps := NewProjectileSystem(cfg)
	shooter, _ := duelPair(p)

	// Aim along +y so the shot orbits the plane without meeting anyone.
	shooter.Angle = math.Pi / 2
	ps.Fire(shooter, 0)

	var expired bool
	for now := uint64(1); now <= cfg.Lifetime+1; now++ {
		events := ps.Step(now, p, []*Snake{shooter})
		for _, ev := range events {
			if ev.Kind == EventProjectileExpired {
				expired = true
				if now != cfg.Lifetime+1 {
					t.Errorf("expired at tick %d, want %d", now, cfg.Lifetime+1)
				}
			}
		}
	}
	if !expired {
		t.Fatal("projectile never expired")
	}
	if len(ps.Active()) != 0 {
		t.Errorf("active shots = %d after lifetime, want 0", len(ps.Active()))
	}
}

func TestProjectileNeverHitsOwner(t *testing.T) {
	p := Plane{W: 240, H: 160}
	cfg := DefaultTuning().Projectile
	ps := NewProjectileSystem(cfg)
	shooter, _ := duelPair(p)

	ps.Fire(shooter, 0)
	// Park the shot directly on the owner's head.
	ps.shots[0].Pos = shooter.Head
	ps.shots[0].Vel = Vec2{}

	events := ps.Step(1, p, []*Snake{shooter})
	for _, ev := range events {
		if ev.Kind == EventProjectileHit {
			t.Fatal("projectile struck its own firer")
		}
	}
	if shooter.SlowUntil != 0 {
		t.Errorf("owner SlowUntil = %d, want 0", shooter.SlowUntil)
	}
}

func TestProjectileHitSlowsVictim(t *testing.T) {
	p := Plane{W: 240, H: 160}
	cfg := DefaultTuning().Projectile
	ps := NewProjectileSystem(cfg)
	shooter, target := duelPair(p)

	ps.Fire(shooter, 0)
	cooldownBefore := shooter.CooldownUntil

	// Fly the shot until it reaches the target's head.
	hitTick := uint64(0)
	for now := uint64(1); now <= cfg.Lifetime; now++ {
		events := ps.Step(now, p, []*Snake{shooter, target})
		for _, ev := range events {
			if ev.Kind == EventProjectileHit {
				hitTick = now
				if ev.Snake != target.ID {
					t.Errorf("hit reported for %v, want %v", ev.Snake, target.ID)
				}
			}
		}
		if hitTick != 0 {
			break
		}
	}

	if hitTick == 0 {
		t.Fatal("projectile never reached the target")
	}
	if target.SlowUntil != hitTick+cfg.SlowDuration {
		t.Errorf("SlowUntil = %d, want %d", target.SlowUntil, hitTick+cfg.SlowDuration)
	}
	if len(ps.Active()) != 0 {
		t.Error("hit projectile must be consumed")
	}
	if shooter.CooldownUntil != cooldownBefore {
		t.Error("a hit must not touch the firer's cooldown")
	}
}

func TestProjectileHitOverwritesSlow(t *testing.T) {
	p := Plane{W: 240, H: 160}
	cfg := DefaultTuning().Projectile
	ps := NewProjectileSystem(cfg)
	shooter, target := duelPair(p)
	target.SlowUntil = 5000 // far future from an earlier (hypothetical) hit

	ps.Fire(shooter, 0)
	ps.shots[0].Pos = target.Head
	ps.shots[0].Vel = Vec2{}

	ps.Step(1, p, []*Snake{shooter, target})
	if target.SlowUntil != 1+cfg.SlowDuration {
		t.Errorf("SlowUntil = %d, want overwrite to %d", target.SlowUntil, 1+cfg.SlowDuration)
	}
}
