package game

import "image/color"

const (
	PaddleStep       = 10
	PaddleWidth      = 10
	PaddleHeight     = 40
	PaddleSideOffset = 75 // Distance between each paddle and its wall
)

// Direction is a paddle movement request
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
)

// Rect is an axis-aligned box in arena coordinates
type Rect struct {
	X, Y          int
	Width, Height int
}

// ContainsPoint reports whether (x, y) lies inside the rectangle.
// The right and bottom edges are exclusive.
func (r Rect) ContainsPoint(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

type Paddle struct {
	Color      color.Color
	SideOffset int // X position (fixed)
	Top        int
	Width      int
	Height     int
}

func NewPaddle(c color.Color, sideOffset, top int) *Paddle {
	return &Paddle{
		Color:      c,
		SideOffset: sideOffset,
		Top:        top,
		Width:      PaddleWidth,
		Height:     PaddleHeight,
	}
}

// Move shifts the paddle by one step. It does not know the arena size,
// so callers must check the bounds before asking for a move.
func (p *Paddle) Move(dir Direction) {
	switch dir {
	case DirUp:
		p.Top -= PaddleStep
	case DirDown:
		p.Top += PaddleStep
	}
}

// BoundingBox returns the collidable area of the paddle
func (p *Paddle) BoundingBox() Rect {
	return Rect{X: p.SideOffset, Y: p.Top, Width: p.Width, Height: p.Height}
}

func (p *Paddle) Bottom() int {
	return p.Top + p.Height
}
