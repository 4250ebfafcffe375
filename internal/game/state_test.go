package game

import "testing"

func newTestMatch() *Match {
	return NewMatch(Arena{ArenaWidth, ArenaHeight})
}

func TestNewMatch_Layout(t *testing.T) {
	m := newTestMatch()

	if m.Left.SideOffset != 75 {
		t.Errorf("expected left paddle at x=75, got %d", m.Left.SideOffset)
	}
	if m.Right.SideOffset != 415 {
		t.Errorf("expected right paddle at x=415, got %d", m.Right.SideOffset)
	}
	for _, p := range []*Paddle{m.Left, m.Right} {
		if p.Top != 180 {
			t.Errorf("expected paddle top=180, got %d", p.Top)
		}
	}
	if m.Ball.Center != (Vec{250, 200}) {
		t.Errorf("expected ball at (250,200), got %v", m.Ball.Center)
	}
	if m.Ball.Velocity != (Vec{7, 3}) {
		t.Errorf("expected velocity (7,3), got %v", m.Ball.Velocity)
	}
	if m.Score.Phase != Playing || m.Score.ScoreA != 0 || m.Score.ScoreB != 0 {
		t.Errorf("expected fresh scoreboard, got %+v", m.Score)
	}
}

func TestMatch_UpdateFirstFrame(t *testing.T) {
	m := newTestMatch()

	goal := m.Update(Controls{})

	if goal != NoGoal {
		t.Errorf("expected no goal, got %v", goal)
	}
	if m.Ball.Center != (Vec{257, 203}) {
		t.Errorf("expected ball at (257,203), got %v", m.Ball.Center)
	}
	if m.Tick != 1 {
		t.Errorf("expected Tick=1, got %d", m.Tick)
	}
}

func TestMatch_UpdateMovesPaddles(t *testing.T) {
	m := newTestMatch()

	m.Update(Controls{P1Up: true, P2Down: true})

	if m.Left.Top != 170 {
		t.Errorf("expected left top=170, got %d", m.Left.Top)
	}
	if m.Right.Top != 190 {
		t.Errorf("expected right top=190, got %d", m.Right.Top)
	}
}

func TestMatch_OppositeKeysCancel(t *testing.T) {
	m := newTestMatch()

	m.Update(Controls{P1Up: true, P1Down: true})

	if m.Left.Top != 180 {
		t.Errorf("expected left top unchanged, got %d", m.Left.Top)
	}
}

func TestMatch_PaddleStopsAtTop(t *testing.T) {
	m := newTestMatch()

	for i := 0; i < 50; i++ {
		m.Update(Controls{P1Up: true})
		if m.Left.Top < 0 {
			t.Fatalf("frame %d: paddle left the arena, top=%d", i, m.Left.Top)
		}
	}
	if m.Left.Top != 0 {
		t.Errorf("expected paddle to rest at top=0, got %d", m.Left.Top)
	}
}

func TestMatch_PaddleStopsAtBottom(t *testing.T) {
	m := newTestMatch()

	for i := 0; i < 50; i++ {
		m.Update(Controls{P2Down: true})
	}
	if m.Right.Top != ArenaHeight-PaddleHeight {
		t.Errorf("expected paddle to rest at top=%d, got %d", ArenaHeight-PaddleHeight, m.Right.Top)
	}
}

func TestMatch_PaddleClampOffGrid(t *testing.T) {
	// From top=5 the check lets one move through (5 > 0) and then blocks
	// every further move, so the overshoot is bounded to one step
	m := newTestMatch()
	m.Left.Top = 5

	for i := 0; i < 10; i++ {
		m.Update(Controls{P1Up: true})
	}

	if m.Left.Top != -5 {
		t.Errorf("expected top=-5, got %d", m.Left.Top)
	}
}

func TestMatch_PaddleClampIsLoadBearing(t *testing.T) {
	// Skipping the caller check lets the paddle leave the arena
	m := newTestMatch()

	for i := 0; i < 30; i++ {
		m.Left.Move(DirUp)
	}

	if m.Left.Top >= 0 {
		t.Errorf("expected unchecked moves to leave the arena, top=%d", m.Left.Top)
	}
}

func TestMatch_GoalScores(t *testing.T) {
	m := newTestMatch()
	m.Ball.Center = Vec{ArenaWidth - BallRadius + 1, 100}

	goal := m.Update(Controls{})

	if goal != Player1 {
		t.Fatalf("expected goal for Player1, got %v", goal)
	}
	if m.Score.ScoreA != 1 || m.Score.ScoreB != 0 {
		t.Errorf("expected 1-0, got %s", m.Score.String())
	}
}

func TestMatch_PaddleReturnsBall(t *testing.T) {
	m := newTestMatch()
	// Next Move would take the ball past the right paddle
	m.Ball.Center = Vec{418, 200}

	goal := m.Update(Controls{})

	if goal != NoGoal {
		t.Errorf("expected no goal, got %v", goal)
	}
	if m.Ball.Velocity.X() != -InitialBallSpeedX {
		t.Errorf("expected ball reflected by the right paddle, VX=%d", m.Ball.Velocity.X())
	}
	if m.Ball.Center.X() != 411 {
		t.Errorf("expected ball to move back to x=411, got %d", m.Ball.Center.X())
	}
}

func TestMatch_GameOverFreezesState(t *testing.T) {
	m := newTestMatch()
	m.Score.ScoreA = WinningMargin
	m.Ball.Center = Vec{ArenaWidth - BallRadius + 1, 100}

	m.Update(Controls{})

	if m.Score.ScoreA != WinningMargin+1 {
		t.Fatalf("expected ScoreA=%d, got %d", WinningMargin+1, m.Score.ScoreA)
	}
	if !m.IsGameOver() {
		t.Fatal("expected GameOver on the frame the score reached 11")
	}

	before := m.Snapshot()
	for i := 0; i < 100; i++ {
		if goal := m.Update(Controls{P1Up: true, P2Down: true}); goal != NoGoal {
			t.Fatalf("goal %v after game over", goal)
		}
	}
	after := m.Snapshot()

	if before != after {
		t.Errorf("state changed after game over:\nbefore %+v\nafter  %+v", before, after)
	}
	if after.Winner != Player1 {
		t.Errorf("expected Player1 to win, got %v", after.Winner)
	}
}

func TestMatch_LongRunInvariants(t *testing.T) {
	m := newTestMatch()
	prevA, prevB := 0, 0

	for i := 0; i < 20000 && !m.IsGameOver(); i++ {
		m.Update(Controls{})

		if m.Score.ScoreA < prevA || m.Score.ScoreB < prevB {
			t.Fatalf("frame %d: score decreased to %s", i, m.Score.String())
		}
		if m.Score.ScoreA+m.Score.ScoreB > prevA+prevB+1 {
			t.Fatalf("frame %d: more than one point in a frame", i)
		}
		over := m.Score.ScoreA > WinningMargin || m.Score.ScoreB > WinningMargin
		if over != m.IsGameOver() {
			t.Fatalf("frame %d: phase %v does not match score %s", i, m.Score.Phase, m.Score.String())
		}
		prevA, prevB = m.Score.ScoreA, m.Score.ScoreB
	}
}

func TestMatch_Snapshot(t *testing.T) {
	m := newTestMatch()
	m.Update(Controls{P1Down: true})

	snap := m.Snapshot()

	if snap.Tick != 1 {
		t.Errorf("expected Tick=1, got %d", snap.Tick)
	}
	if snap.Ball.X != 257 || snap.Ball.Y != 203 {
		t.Errorf("expected ball at (257,203), got (%d,%d)", snap.Ball.X, snap.Ball.Y)
	}
	if snap.Paddles[0].Top != 190 {
		t.Errorf("expected left paddle top=190, got %d", snap.Paddles[0].Top)
	}
	if snap.Width != ArenaWidth || snap.Height != ArenaHeight {
		t.Errorf("expected %dx%d, got %dx%d", ArenaWidth, ArenaHeight, snap.Width, snap.Height)
	}

	// Snapshot is a copy
	snap.Paddles[0].Top = 0
	if m.Left.Top != 190 {
		t.Error("mutating the snapshot changed the match")
	}
}
