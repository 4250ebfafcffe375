package app

import (
	"context"

	"go.uber.org/zap"

	"github.com/diegok/pong3/internal/audio"
	"github.com/diegok/pong3/internal/game"
)

// InputSource reports the controls held this frame and whether the
// player asked to close the game
type InputSource interface {
	Poll() (game.Controls, bool)
}

// SceneRenderer draws one frame of the match
type SceneRenderer interface {
	Render(state game.Snapshot)
}

// Loop is the frame controller. It owns the match and drives it one
// frame at a time from a single goroutine.
type Loop struct {
	match    *game.Match
	input    InputSource
	renderer SceneRenderer
	pacer    Pacer
	log      *zap.Logger
	sound    bool

	closeRequested bool
	prev           game.Snapshot
	frames         int
}

func NewLoop(match *game.Match, input InputSource, renderer SceneRenderer, pacer Pacer, log *zap.Logger) *Loop {
	return &Loop{
		match:    match,
		input:    input,
		renderer: renderer,
		pacer:    pacer,
		log:      log,
		prev:     match.Snapshot(),
	}
}

// EnableSound turns sound effects on or off
func (l *Loop) EnableSound(on bool) {
	l.sound = on
}

// Frames returns the number of frames run so far
func (l *Loop) Frames() int {
	return l.frames
}

// Run plays frames until close is requested or ctx is cancelled. Both
// are only checked between frames.
func (l *Loop) Run(ctx context.Context) error {
	for !l.closeRequested {
		if ctx.Err() != nil {
			return nil
		}
		if err := l.Frame(ctx); err != nil {
			return err
		}
	}
	return nil
}

// Frame polls input, renders the current state, advances the match if it
// is still being played and then waits for the next frame slot.
func (l *Loop) Frame(ctx context.Context) error {
	l.frames++

	controls, closed := l.input.Poll()
	if closed {
		l.closeRequested = true
	}

	l.renderer.Render(l.match.Snapshot())

	if !l.match.IsGameOver() {
		l.match.Update(controls)
		l.afterUpdate()
	}

	if err := l.pacer.Wait(ctx); err != nil {
		if ctx.Err() != nil {
			l.closeRequested = true
			return nil
		}
		return err
	}
	return nil
}

// afterUpdate logs and plays sounds for whatever changed this frame
func (l *Loop) afterUpdate() {
	state := l.match.Snapshot()

	for _, s := range detectSoundEvents(l.prev, state) {
		switch s {
		case soundScore:
			l.log.Info("goal",
				zap.Int("tick", state.Tick),
				zap.Int("score_a", state.ScoreA),
				zap.Int("score_b", state.ScoreB))
		case soundGameOver:
			l.log.Info("game over",
				zap.Stringer("winner", state.Winner),
				zap.Int("score_a", state.ScoreA),
				zap.Int("score_b", state.ScoreB))
		case soundPaddleHit:
			l.log.Debug("paddle hit", zap.Int("tick", state.Tick), zap.Int("x", state.Ball.X), zap.Int("y", state.Ball.Y))
		}
		if l.sound {
			playSound(s)
		}
	}

	l.prev = state
}

type soundEvent int

const (
	soundPaddleHit soundEvent = iota
	soundWallBounce
	soundScore
	soundGameOver
)

// detectSoundEvents compares consecutive states to find what happened.
// A horizontal reversal without a score change is a paddle hit.
func detectSoundEvents(prev, state game.Snapshot) []soundEvent {
	var events []soundEvent

	scored := state.ScoreA > prev.ScoreA || state.ScoreB > prev.ScoreB
	if scored {
		events = append(events, soundScore)
	} else if reversed(prev.Ball.VX, state.Ball.VX) {
		events = append(events, soundPaddleHit)
	}

	if reversed(prev.Ball.VY, state.Ball.VY) {
		events = append(events, soundWallBounce)
	}

	if state.Phase == game.GameOver && prev.Phase != game.GameOver {
		events = append(events, soundGameOver)
	}

	return events
}

func reversed(before, after int) bool {
	return (before > 0 && after < 0) || (before < 0 && after > 0)
}

func playSound(s soundEvent) {
	switch s {
	case soundPaddleHit:
		audio.PlayPaddleHit()
	case soundWallBounce:
		audio.PlayWallBounce()
	case soundScore:
		audio.PlayScore()
	case soundGameOver:
		audio.PlayGameOver()
	}
}
