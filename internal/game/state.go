package game

import "image/color"

// Constants for match setup
const (
	TickRate    = 60 // Frames per second
	ArenaWidth  = 500
	ArenaHeight = 400
)

// Controls is the set of movement keys held during a frame
type Controls struct {
	P1Up, P1Down bool
	P2Up, P2Down bool
}

// Match owns every piece of simulation state for one play-to-11 match.
// It is driven by a single frame loop and is not safe for concurrent use.
type Match struct {
	Ball  *Ball
	Left  *Paddle
	Right *Paddle
	Score ScoreBoard
	Tick  int

	surface Surface
}

// NewMatch lays out both paddles and the ball for the given surface,
// using white for every piece.
func NewMatch(surface Surface) *Match {
	return NewMatchWithColor(surface, color.White)
}

// NewMatchWithColor is NewMatch with a custom piece color
func NewMatchWithColor(surface Surface, c color.Color) *Match {
	w, h := surface.Size()
	top := h/2 - PaddleHeight/2

	left := NewPaddle(c, PaddleSideOffset, top)
	right := NewPaddle(c, w-PaddleWidth-PaddleSideOffset, top)
	ball := NewBall(c,
		Vec{w / 2, h / 2},
		Vec{InitialBallSpeedX, InitialBallSpeedY},
		surface, left, right)

	return &Match{
		Ball:    ball,
		Left:    left,
		Right:   right,
		surface: surface,
	}
}

// Update runs one simulation frame and returns the goal it produced.
// Once the match is over nothing is mutated.
func (m *Match) Update(c Controls) Player {
	if m.Score.Phase == GameOver {
		return NoGoal
	}
	m.Tick++

	// Collision first so a paddle reflects the ball on the frame it
	// would otherwise leave the arena
	m.Ball.CheckCollision()
	goal := m.Ball.Move()

	m.Score.ApplyGoal(goal)
	m.Score.EvaluateGameOver()

	m.applyInput(c)
	return goal
}

// applyInput owns the paddle bounds check. Paddle.Move does not clamp,
// so a paddle only moves up while Top > 0 and only moves down while
// Top < arenaHeight-Height. A paddle that starts off the step grid can
// overshoot an edge by less than one step and then stops.
func (m *Match) applyInput(c Controls) {
	_, h := m.surface.Size()

	movePaddle(m.Left, c.P1Up, c.P1Down, h)
	movePaddle(m.Right, c.P2Up, c.P2Down, h)
}

func movePaddle(p *Paddle, up, down bool, arenaHeight int) {
	if up && p.Top > 0 {
		p.Move(DirUp)
	}
	if down && p.Bottom() < arenaHeight {
		p.Move(DirDown)
	}
}

// IsGameOver returns true once either player has won
func (m *Match) IsGameOver() bool {
	return m.Score.Phase == GameOver
}

// BallState is a copy of the ball for rendering
type BallState struct {
	X, Y   int
	VX, VY int
	Radius int
	Color  color.Color
}

// Snapshot is an immutable copy of the match for one frame
type Snapshot struct {
	Tick    int
	Ball    BallState
	Paddles [2]Paddle
	ScoreA  int
	ScoreB  int
	Phase   Phase
	Winner  Player
	Width   int
	Height  int
}

func (m *Match) Snapshot() Snapshot {
	w, h := m.surface.Size()
	return Snapshot{
		Tick: m.Tick,
		Ball: BallState{
			X:      m.Ball.Center.X(),
			Y:      m.Ball.Center.Y(),
			VX:     m.Ball.Velocity.X(),
			VY:     m.Ball.Velocity.Y(),
			Radius: m.Ball.Radius,
			Color:  m.Ball.Color,
		},
		Paddles: [2]Paddle{*m.Left, *m.Right},
		ScoreA:  m.Score.ScoreA,
		ScoreB:  m.Score.ScoreB,
		Phase:   m.Score.Phase,
		Winner:  m.Score.Winner(),
		Width:   w,
		Height:  h,
	}
}
