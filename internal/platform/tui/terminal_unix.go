//go:build unix

package tui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/x/ansi"
	"golang.org/x/sys/unix"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Terminal is an interactive terminal in raw mode. It draws frames and
// polls the keyboard.
type Terminal struct {
	*Renderer

	fd       int
	out      io.Writer
	oldState *term.State
	queue    keyQueue
	buf      []byte
}

// Open puts stdin into raw mode and hides the cursor. The caller must
// call Close to restore the terminal.
func Open() (*Terminal, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return nil, ErrNotTerminal
	}

	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("tui: enter raw mode: %w", err)
	}

	keys := DefaultKeyMap()
	t := &Terminal{
		Renderer: NewRenderer(os.Stdout, keys),
		fd:       fd,
		out:      os.Stdout,
		oldState: oldState,
		queue:    keyQueue{keys: keys},
		buf:      make([]byte, 256),
	}

	if _, err := io.WriteString(t.out, ansi.HideCursor+ansi.EraseEntireScreen); err != nil {
		return nil, errors.Join(fmt.Errorf("tui: hide cursor: %w", err), t.Close())
	}
	return t, nil
}

// Close shows the cursor and restores the terminal mode saved by Open.
// It is safe to call more than once.
func (t *Terminal) Close() error {
	if t.oldState == nil {
		return nil
	}

	var errs []error
	if _, err := io.WriteString(t.out, ansi.ShowCursor); err != nil {
		errs = append(errs, fmt.Errorf("tui: show cursor: %w", err))
	}
	if err := term.Restore(t.fd, t.oldState); err != nil {
		errs = append(errs, fmt.Errorf("tui: restore terminal: %w", err))
	}
	t.oldState = nil
	return errors.Join(errs...)
}

// Poll waits up to timeout for a key press and returns its action.
// It returns ActionNone when the timeout expires or the key is unbound.
func (t *Terminal) Poll(timeout time.Duration) (core.Action, error) {
	if action, ok := t.queue.next(); ok {
		return action, nil
	}

	deadline := time.Now().Add(timeout)
	for {
		fds := []unix.PollFd{{Fd: int32(t.fd), Events: unix.POLLIN}}
		n, err := unix.Poll(fds, int(remaining(deadline).Milliseconds()))
		if err != nil {
			if errors.Is(err, unix.EINTR) {
				continue
			}
			return core.ActionNone, fmt.Errorf("tui: poll stdin: %w", err)
		}
		if n == 0 {
			return core.ActionNone, nil
		}

		nr, err := unix.Read(t.fd, t.buf)
		if err != nil {
			if errors.Is(err, unix.EINTR) || errors.Is(err, unix.EAGAIN) {
				continue
			}
			return core.ActionNone, fmt.Errorf("tui: read stdin: %w", err)
		}
		if nr == 0 {
			return core.ActionNone, fmt.Errorf("tui: read stdin: %w", io.EOF)
		}

		t.queue.push(decodeKeys(t.buf[:nr]))
		if action, ok := t.queue.next(); ok {
			return action, nil
		}
		// Nothing decodable; keep waiting out the window.
		if remaining(deadline) == 0 {
			return core.ActionNone, nil
		}
	}
}
