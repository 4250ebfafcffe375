package game

import "image/color"

const (
	BallRadius        = 8
	InitialBallSpeedX = 7
	InitialBallSpeedY = 3
)

// Surface answers the arena size. The rendering canvas satisfies it.
type Surface interface {
	Size() (width, height int)
}

// Arena is a fixed-size Surface
type Arena struct {
	Width, Height int
}

func (a Arena) Size() (int, int) {
	return a.Width, a.Height
}

// Vec is an integer 2-D vector. Index 0 is horizontal, 1 is vertical.
type Vec [2]int

func (v Vec) X() int { return v[0] }
func (v Vec) Y() int { return v[1] }

type Ball struct {
	Color    color.Color
	Center   Vec
	Velocity Vec
	Radius   int

	surface Surface
	left    *Paddle
	right   *Paddle
}

// NewBall creates a ball that collides with the given paddles and bounces
// inside surface. The ball never mutates the paddles.
func NewBall(c color.Color, center, velocity Vec, surface Surface, left, right *Paddle) *Ball {
	return &Ball{
		Color:    c,
		Center:   center,
		Velocity: velocity,
		Radius:   BallRadius,
		surface:  surface,
		left:     left,
		right:    right,
	}
}

// Move advances the ball one frame, axis by axis, and reflects it off any
// arena edge it crossed. Crossing the left edge is a goal for Player2,
// crossing the right edge a goal for Player1. Top and bottom are plain
// bounces.
func (b *Ball) Move() Player {
	w, h := b.surface.Size()
	size := Vec{w, h}

	goal := NoGoal
	for axis := range b.Center {
		b.Center[axis] += b.Velocity[axis]

		if b.Center[axis] < b.Radius {
			b.Velocity[axis] = -b.Velocity[axis]
			if axis == 0 {
				goal = Player2
			}
		} else if b.Center[axis]+b.Radius > size[axis] {
			b.Velocity[axis] = -b.Velocity[axis]
			if axis == 0 {
				goal = Player1
			}
		}
	}
	return goal
}

// HeadingTowardPaddle reports whether the ball moves toward the paddle on
// its side of the midline. The midline is half the queried arena width;
// for the fixed 500-unit arena this is the historical constant 250.
func (b *Ball) HeadingTowardPaddle() bool {
	w, _ := b.surface.Size()
	midline := w / 2
	return (b.Center.X() < midline && b.Velocity.X() < 0) ||
		(b.Center.X() > midline && b.Velocity.X() > 0)
}

// CheckCollision reverses horizontal velocity when the ball's center is
// inside a paddle it is moving toward. Only the center point is tested,
// so a fast ball can pass through a thin paddle. Returns true on a bounce.
func (b *Ball) CheckCollision() bool {
	if !b.HeadingTowardPaddle() {
		return false
	}

	bounced := false
	for _, p := range []*Paddle{b.left, b.right} {
		if p == nil {
			continue
		}
		if p.BoundingBox().ContainsPoint(b.Center.X(), b.Center.Y()) {
			b.Velocity[0] = -b.Velocity[0]
			bounced = true
		}
	}
	return bounced
}
