// Package sim implements the serpent simulation core: continuous movement on
// a wraparound plane, follow-the-leader body chains, food placement,
// projectiles and per-tick collision resolution. It contains no UI
// dependencies and never reads the wall clock; all timing is tick-based so
// matches replay deterministically from a seed and an input sequence.
package sim

import "math"

// Vec2 is a point or displacement on the plane.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v multiplied by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Dist returns the plain Euclidean distance between a and b.
// Hit tests deliberately use this instead of torus distance, so two points
// adjacent across the wrap seam are far apart for collision purposes.
func Dist(a, b Vec2) float64 {
	return a.Sub(b).Len()
}

// Plane is the wraparound world rectangle. Positions live in [0, W) x [0, H).
type Plane struct {
	W, H float64
}

// wrapCoord folds v into [0, dim).
func wrapCoord(v, dim float64) float64 {
	m := math.Mod(v, dim)
	if m < 0 {
		m += dim
	}
	return m
}

// Wrap folds a position into plane bounds, re-entering on the opposite edge.
func (p Plane) Wrap(v Vec2) Vec2 {
	return Vec2{X: wrapCoord(v.X, p.W), Y: wrapCoord(v.Y, p.H)}
}

// Delta returns the shortest displacement from `from` to `to` on the torus.
// If a raw axis delta exceeds half the plane dimension, the path around the
// opposite edge is shorter and is used instead.
func (p Plane) Delta(from, to Vec2) Vec2 {
	d := to.Sub(from)
	if d.X > p.W/2 {
		d.X -= p.W
	} else if d.X < -p.W/2 {
		d.X += p.W
	}
	if d.Y > p.H/2 {
		d.Y -= p.H
	} else if d.Y < -p.H/2 {
		d.Y += p.H
	}
	return d
}

// Center returns the middle of the plane.
func (p Plane) Center() Vec2 {
	return Vec2{X: p.W / 2, Y: p.H / 2}
}
