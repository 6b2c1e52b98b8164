package tui

import (
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// ErrNotTerminal is returned by Open when stdin is not an interactive terminal.
var ErrNotTerminal = errors.New("tui: stdin is not a terminal")

// keyQueue holds keys decoded from one read but not yet handed out.
// Each Poll returns at most one action.
type keyQueue struct {
	keys    KeyMap
	pending []tea.KeyMsg
}

func (q *keyQueue) push(msgs []tea.KeyMsg) {
	q.pending = append(q.pending, msgs...)
}

// next pops the oldest queued key and maps it to an action.
func (q *keyQueue) next() (core.Action, bool) {
	if len(q.pending) == 0 {
		return core.ActionNone, false
	}
	msg := q.pending[0]
	q.pending = q.pending[1:]
	return q.keys.Action(msg), true
}

// remaining returns the time left until deadline, never negative.
func remaining(deadline time.Time) time.Duration {
	d := time.Until(deadline)
	if d < 0 {
		return 0
	}
	return d
}
