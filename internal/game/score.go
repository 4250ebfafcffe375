package game

import "fmt"

// WinningMargin is the score a player has to exceed to end the match
const WinningMargin = 10

// Player identifies who a goal is awarded to
type Player int

const (
	NoGoal Player = iota
	Player1
	Player2
)

func (p Player) String() string {
	switch p {
	case Player1:
		return "player1"
	case Player2:
		return "player2"
	}
	return "none"
}

// Phase is the match-level state
type Phase int

const (
	Playing Phase = iota
	GameOver
)

func (p Phase) String() string {
	if p == GameOver {
		return "game_over"
	}
	return "playing"
}

// ScoreBoard holds both scores and the one-way Playing -> GameOver phase
type ScoreBoard struct {
	ScoreA int // Player 1
	ScoreB int // Player 2
	Phase  Phase
}

// ApplyGoal awards one point for a goal event. NoGoal is ignored.
func (s *ScoreBoard) ApplyGoal(goal Player) {
	switch goal {
	case Player1:
		s.ScoreA++
	case Player2:
		s.ScoreB++
	}
}

// EvaluateGameOver moves to GameOver once either score exceeds
// WinningMargin. It returns true only on the transition.
func (s *ScoreBoard) EvaluateGameOver() bool {
	if s.Phase == GameOver {
		return false
	}
	if s.ScoreA > WinningMargin || s.ScoreB > WinningMargin {
		s.Phase = GameOver
		return true
	}
	return false
}

// Winner returns the leading player once the match is over
func (s *ScoreBoard) Winner() Player {
	if s.Phase != GameOver {
		return NoGoal
	}
	if s.ScoreA > s.ScoreB {
		return Player1
	}
	return Player2
}

func (s *ScoreBoard) String() string {
	return fmt.Sprintf("%d-%d", s.ScoreA, s.ScoreB)
}
