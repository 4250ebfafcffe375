package ui

import (
	"fmt"
	"image/color"

	"github.com/diegok/pong3/internal/game"
)

// ScoreInset is how far the player 2 score sits from the right edge
const ScoreInset = 50

// Theme holds the arena colors
type Theme struct {
	Background color.Color
	Foreground color.Color
}

// DefaultTheme is white pieces on black
var DefaultTheme = Theme{
	Background: color.Black,
	Foreground: color.White,
}

// Renderer draws match snapshots onto a canvas
type Renderer struct {
	canvas Canvas
	theme  Theme
}

// NewRenderer creates a new renderer with the given canvas
func NewRenderer(canvas Canvas, theme Theme) *Renderer {
	return &Renderer{canvas: canvas, theme: theme}
}

// Render draws one frame: background, ball, paddles and both scores
func (r *Renderer) Render(state game.Snapshot) {
	r.canvas.Clear(r.theme.Background)

	ball := state.Ball
	r.canvas.FillCircle(ball.X, ball.Y, ball.Radius, r.pieceColor(ball.Color))

	for _, p := range state.Paddles {
		box := p.BoundingBox()
		r.canvas.FillRect(box.X, box.Y, box.Width, box.Height, r.pieceColor(p.Color))
	}

	r.renderScores(state)

	if state.Phase == game.GameOver {
		r.renderGameOver(state)
	}

	r.canvas.Show()
}

// renderScores draws player 1 top-left and player 2 top-right
func (r *Renderer) renderScores(state game.Snapshot) {
	w, _ := r.canvas.Size()
	r.canvas.DrawText(0, 0, fmt.Sprintf("%d", state.ScoreA), r.theme.Foreground)
	r.canvas.DrawText(w-ScoreInset, 0, fmt.Sprintf("%d", state.ScoreB), r.theme.Foreground)
}

func (r *Renderer) renderGameOver(state game.Snapshot) {
	w, h := r.canvas.Size()

	winner := "PLAYER 1 WINS"
	if state.Winner == game.Player2 {
		winner = "PLAYER 2 WINS"
	}
	r.canvas.DrawTextCentered(w/2, h/2-20, "GAME OVER", r.theme.Foreground)
	r.canvas.DrawTextCentered(w/2, h/2, winner, r.theme.Foreground)
	r.canvas.DrawTextCentered(w/2, h/2+20, fmt.Sprintf("%d - %d", state.ScoreA, state.ScoreB), r.theme.Foreground)
}

func (r *Renderer) pieceColor(c color.Color) color.Color {
	if c == nil {
		return r.theme.Foreground
	}
	return c
}
