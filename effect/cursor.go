package effect

import "math"

// Cursor tracks the pointer in viewport pixel coordinates along with a
// smoothed per-frame velocity estimate.
//
// The previous position is reset twice: once on every raw pointer move and
// once after each frame. Bursts of moves between frames therefore collapse
// into the last delta before the frame boundary rather than accumulating
// distance. That coalescing is part of the visual feel of the velocity
// response and must not be "fixed".
type Cursor struct {
	X, Y         float64
	PrevX, PrevY float64
	Velocity     float64
}

// Move records a raw pointer-move signal. Edge-triggered, no smoothing here.
func (c *Cursor) Move(x, y float64) {
	c.PrevX = c.X
	c.PrevY = c.Y
	c.X = x
	c.Y = y
}

// Movement returns the distance covered since the last frame boundary.
func (c *Cursor) Movement() float64 {
	dx := c.X - c.PrevX
	dy := c.Y - c.PrevY
	return math.Sqrt(dx*dx + dy*dy)
}

// SmoothVelocity folds a raw movement sample into the velocity estimate via
// an exponential moving average.
func (c *Cursor) SmoothVelocity(movement float64) {
	c.Velocity = c.Velocity*velocitySmoothing + movement*(1-velocitySmoothing)
}

// Settle marks the frame boundary: the next frame measures fresh movement.
func (c *Cursor) Settle() {
	c.PrevX = c.X
	c.PrevY = c.Y
}
