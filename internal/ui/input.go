package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/diegok/pong3/internal/game"
)

// HoldFrames is how long a key counts as held after its last press
// event (~133ms at 60Hz). Terminals report presses and auto-repeats but
// never releases.
const HoldFrames = 8

// Control is one of the four logical movement inputs
type Control int

const (
	P1Up Control = iota
	P1Down
	P2Up
	P2Down
	numControls
)

// KeyToControl maps Q/A (player 1) and P/L (player 2) to controls
func KeyToControl(key tcell.Key, r rune) (Control, bool) {
	if key != tcell.KeyRune {
		return 0, false
	}
	switch r {
	case 'q', 'Q':
		return P1Up, true
	case 'a', 'A':
		return P1Down, true
	case 'p', 'P':
		return P2Up, true
	case 'l', 'L':
		return P2Down, true
	}
	return 0, false
}

// IsQuitKey returns true if the key should close the game.
// 'q' moves player 1, so only Escape and Ctrl+C quit.
func IsQuitKey(key tcell.Key) bool {
	return key == tcell.KeyEscape || key == tcell.KeyCtrlC
}

// Keyboard turns a stream of terminal events into per-frame held state
type Keyboard struct {
	events <-chan tcell.Event
	held   [numControls]int // Frames left for each control
	closed bool
}

func NewKeyboard(events <-chan tcell.Event) *Keyboard {
	return &Keyboard{events: events}
}

// Press marks the key's control as held for HoldFrames frames
func (k *Keyboard) Press(key tcell.Key, r rune) {
	if IsQuitKey(key) {
		k.closed = true
		return
	}
	if c, ok := KeyToControl(key, r); ok {
		k.held[c] = HoldFrames
	}
}

// HandleEvent applies one terminal event
func (k *Keyboard) HandleEvent(ev tcell.Event) {
	if ev, ok := ev.(*tcell.EventKey); ok {
		k.Press(ev.Key(), ev.Rune())
	}
}

// Poll ages held keys by one frame, applies all pending events without
// blocking and returns the controls held this frame plus whether the
// close signal has been seen.
func (k *Keyboard) Poll() (game.Controls, bool) {
	for c := range k.held {
		if k.held[c] > 0 {
			k.held[c]--
		}
	}

	k.drain()

	return game.Controls{
		P1Up:   k.held[P1Up] > 0,
		P1Down: k.held[P1Down] > 0,
		P2Up:   k.held[P2Up] > 0,
		P2Down: k.held[P2Down] > 0,
	}, k.closed
}

func (k *Keyboard) drain() {
	if k.events == nil {
		return
	}
	for {
		select {
		case ev, ok := <-k.events:
			if !ok {
				// Screen finalized
				k.closed = true
				k.events = nil
				return
			}
			k.HandleEvent(ev)
		default:
			return
		}
	}
}
