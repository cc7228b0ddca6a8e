package sim

import "math"

// Chain is the ordered body of a snake: Points[0] trails the head, each
// further point trails its predecessor at a fixed spacing.
type Chain struct {
	Spacing float64
	Target  int    // desired segment count; Points catches up lazily
	Points  []Vec2 // materialized segments, index 0 nearest the head
}

// NewChain creates an empty chain with the given spacing and target length.
// Segments materialize on the first Follow call.
func NewChain(spacing float64, target int) *Chain {
	return &Chain{
		Spacing: spacing,
		Target:  target,
		Points:  make([]Vec2, 0, target),
	}
}

// InitLine materializes the full chain in a straight line behind head,
// pointing opposite to the travel direction.
func (c *Chain) InitLine(head Vec2, angle float64, p Plane) {
	cos, sin := math.Cos(angle), math.Sin(angle)
	c.Points = c.Points[:0]
	for i := 1; i <= c.Target; i++ {
		seg := Vec2{
			X: head.X - float64(i)*c.Spacing*cos,
			Y: head.Y - float64(i)*c.Spacing*sin,
		}
		c.Points = append(c.Points, p.Wrap(seg))
	}
}

// Grow raises the target length by n. New segments are not placed here; they
// appear as clones of the tail on subsequent Follow calls and separate
// naturally as the snake moves on.
func (c *Chain) Grow(n int) {
	c.Target += n
}

// Len returns the number of materialized segments.
func (c *Chain) Len() int {
	return len(c.Points)
}

// stored returns the segment a follower starts this tick from: the stored
// segment i if it exists, otherwise the current tail (a fresh growth clone),
// otherwise the head itself.
func (c *Chain) stored(i int, head Vec2) Vec2 {
	if i < len(c.Points) {
		return c.Points[i]
	}
	if len(c.Points) > 0 {
		return c.Points[len(c.Points)-1]
	}
	return head
}

// Follow repositions every segment for the new head position. Each segment
// takes an exact inchworm step: if its wrap-aware gap to the leader exceeds
// Spacing it lands exactly Spacing behind the leader along the shortest
// direction, otherwise it stays put until the gap reopens. There is no
// damping and no residual velocity.
func (c *Chain) Follow(head Vec2, p Plane) {
	next := make([]Vec2, 0, c.Target)
	leader := head
	for i := 0; i < c.Target; i++ {
		cur := c.stored(i, head)
		gap := p.Delta(cur, leader)
		if l := gap.Len(); l > c.Spacing {
			dir := gap.Scale(1 / l)
			cur = leader.Sub(dir.Scale(c.Spacing))
		}
		cur = p.Wrap(cur)
		next = append(next, cur)
		leader = cur
	}
	c.Points = next
}
