//go:build !unix

package tui

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Terminal is unavailable on this platform.
type Terminal struct {
	*Renderer
}

// Open always fails: raw keyboard polling is implemented for unix only.
func Open() (*Terminal, error) {
	return nil, fmt.Errorf("tui: raw terminal: %w", errors.ErrUnsupported)
}

// Close is a no-op.
func (t *Terminal) Close() error { return nil }

// Poll always fails.
func (t *Terminal) Poll(time.Duration) (core.Action, error) {
	return core.ActionNone, fmt.Errorf("tui: poll: %w", errors.ErrUnsupported)
}
