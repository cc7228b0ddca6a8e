package sim

import (
	"math"
	"testing"
)

func TestSteerNormalizesAngle(t *testing.T) {
	p := Plane{W: 240, H: 160}
	s := NewSnake(PlayerOne, p.Center(), 0, 4.0, 15, p)

	// Spin in one direction far past a full turn; the angle must stay in
	// (-pi, pi] the whole time.
	for i := 0; i < 500; i++ {
		s.Steer(false, true, 0.085)
		if s.Angle <= -math.Pi || s.Angle > math.Pi {
			t.Fatalf("tick %d: angle %f out of (-pi, pi]", i, s.Angle)
		}
	}
	for i := 0; i < 1000; i++ {
		s.Steer(true, false, 0.085)
		if s.Angle <= -math.Pi || s.Angle > math.Pi {
			t.Fatalf("tick %d: angle %f out of (-pi, pi]", i, s.Angle)
		}
	}
}

func TestSteerBothHeldCancels(t *testing.T) {
	p := Plane{W: 240, H: 160}
	s := NewSnake(PlayerOne, p.Center(), 1.0, 4.0, 15, p)
	s.Steer(true, true, 0.085)
	if math.Abs(s.Angle-1.0) > 1e-9 {
		t.Errorf("angle = %f, want 1.0 when both turn keys are held", s.Angle)
	}
}

func TestAdvanceMovesAlongHeading(t *testing.T) {
	p := Plane{W: 240, H: 160}
	s := NewSnake(PlayerOne, Vec2{X: 100, Y: 80}, math.Pi / 2, 4.0, 15, p)

	s.Advance(2.0, 0.5, 1, p)
	if math.Abs(s.Head.X-100) > 1e-9 || math.Abs(s.Head.Y-82) > 1e-9 {
		t.Errorf("head = %v, want (100, 82)", s.Head)
	}
}

func TestAdvanceSlowEffect(t *testing.T) {
	p := Plane{W: 240, H: 160}
	s := NewSnake(PlayerOne, Vec2{X: 100, Y: 80}, 0, 4.0, 15, p)
	s.SlowUntil = 10

	// Slowed tick: half speed. The effect scales this tick only; the base
	// speed passed in is untouched.
	s.Advance(2.0, 0.5, 5, p)
	if math.Abs(s.Head.X-101) > 1e-9 {
		t.Errorf("slowed head.X = %f, want 101", s.Head.X)
	}

	// At expiry the full speed returns.
	s.Advance(2.0, 0.5, 10, p)
	if math.Abs(s.Head.X-103) > 1e-9 {
		t.Errorf("recovered head.X = %f, want 103", s.Head.X)
	}
}

func TestNormalizeAngleBoundary(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{math.Pi, math.Pi},          // pi is included
		{-math.Pi, math.Pi},         // -pi folds to pi
		{3 * math.Pi, math.Pi},
		{-2.5 * math.Pi, -0.5 * math.Pi},
		{2 * math.Pi, 0},
	}
	for _, tc := range tests {
		if got := normalizeAngle(tc.in); math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("normalizeAngle(%f) = %f, want %f", tc.in, got, tc.want)
		}
	}
}
