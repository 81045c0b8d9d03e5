package tty

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"mathracer/internal/clock"
	"mathracer/internal/game"
)

// Terminals only report key presses, so a key counts as held for a short
// window after its last press or auto-repeat.
const holdWindow = 300 * time.Millisecond

type Held struct {
	src  clock.Source
	last map[game.Key]time.Time
}

func NewHeld(src clock.Source) *Held {
	return &Held{src: src, last: map[game.Key]time.Time{}}
}

// Press marks k as held and releases the opposite direction.
func (h *Held) Press(k game.Key) {
	delete(h.last, opposite(k))
	h.last[k] = h.src.Now()
}

func (h *Held) Pressed(k game.Key) bool {
	t, ok := h.last[k]
	return ok && h.src.Now().Sub(t) < holdWindow
}

func opposite(k game.Key) game.Key {
	switch k {
	case game.KeyLeft:
		return game.KeyRight
	case game.KeyRight:
		return game.KeyLeft
	case game.KeyUp:
		return game.KeyDown
	}
	return game.KeyUp
}

// action is what a key event asks the app to do.
type action int

const (
	actNone action = iota
	actQuit
	actStart
	actDrive
	actAnswer
)

// decodeKey maps a key event to an action. For actDrive it also returns
// the driving key, for actAnswer the answer slot.
func decodeKey(ev *tcell.EventKey) (action, game.Key, int) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return actQuit, 0, 0
	case tcell.KeyEnter:
		return actStart, 0, 0
	case tcell.KeyLeft:
		return actDrive, game.KeyLeft, 0
	case tcell.KeyRight:
		return actDrive, game.KeyRight, 0
	case tcell.KeyUp:
		return actDrive, game.KeyUp, 0
	case tcell.KeyDown:
		return actDrive, game.KeyDown, 0
	case tcell.KeyRune:
	default:
		return actNone, 0, 0
	}

	switch r := ev.Rune(); r {
	case 'q', 'Q':
		return actQuit, 0, 0
	case ' ':
		return actStart, 0, 0
	case 'a', 'A':
		return actDrive, game.KeyLeft, 0
	case 'd', 'D':
		return actDrive, game.KeyRight, 0
	case 'w', 'W':
		return actDrive, game.KeyUp, 0
	case 's', 'S':
		return actDrive, game.KeyDown, 0
	case '1', '2', '3', '4':
		return actAnswer, 0, int(r - '1')
	}
	return actNone, 0, 0
}
