package snake

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// Renderer displays frames. The platform layer implements it.
type Renderer interface {
	// Draw replaces the previous frame with this one.
	Draw(frame *core.Screen) error

	// GameOver shows the end-of-game notice after a collision.
	GameOver() error
}

// InputHandler reads player input. The platform layer implements it.
type InputHandler interface {
	// Poll waits up to timeout for one key and returns its action.
	// Returns ActionNone on timeout or for keys with no binding.
	Poll(timeout time.Duration) (core.Action, error)
}

// Loop runs a Game at a fixed tick rate.
type Loop struct {
	game     *Game
	renderer Renderer
	input    InputHandler
	frame    *core.Screen

	pollTimeout  time.Duration
	tickInterval time.Duration
	sleep        func(time.Duration)
	logger       *log.Logger
}

// LoopOption configures a Loop.
type LoopOption func(*Loop)

// WithSleep replaces time.Sleep for the pause between ticks.
func WithSleep(fn func(time.Duration)) LoopOption {
	return func(l *Loop) {
		l.sleep = fn
	}
}

// WithLogger sets the logger for tick events.
func WithLogger(logger *log.Logger) LoopOption {
	return func(l *Loop) {
		l.logger = logger
	}
}

// NewLoop creates a loop for game with the given timing.
func NewLoop(game *Game, timing config.TimingConfig, renderer Renderer, input InputHandler, opts ...LoopOption) *Loop {
	w, h := game.FrameSize()
	l := &Loop{
		game:         game,
		renderer:     renderer,
		input:        input,
		frame:        core.NewScreen(w, h),
		pollTimeout:  timing.PollTimeout(),
		tickInterval: timing.TickInterval(),
		sleep:        time.Sleep,
		logger:       log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Run plays until the player quits or the snake collides, and returns which.
// Each tick renders, polls for input, steps the game and then sleeps.
// A renderer or input error stops the loop and is returned.
func (l *Loop) Run() (core.Status, error) {
	for {
		l.game.Render(l.frame)
		if err := l.renderer.Draw(l.frame); err != nil {
			return l.game.Status(), fmt.Errorf("snake: render: %w", err)
		}

		action, err := l.input.Poll(l.pollTimeout)
		if err != nil {
			return l.game.Status(), fmt.Errorf("snake: poll input: %w", err)
		}

		res := l.game.Step(action)
		if res.Turned {
			l.logger.Debug("direction changed", "dir", l.game.snake.Direction())
		}
		if res.Ate {
			l.logger.Debug("food eaten", "len", l.game.snake.Len(), "food", l.game.food.Position())
		}

		if res.Status.Terminated() {
			snap := l.game.Snapshot()
			l.logger.Debug("game terminated",
				"reason", snap.Status,
				"ticks", snap.Tick,
				"len", snap.SnakeLen,
				"head", snap.Head,
			)
			if res.Status == core.StatusCollision {
				if err := l.renderer.GameOver(); err != nil {
					return res.Status, fmt.Errorf("snake: game over notice: %w", err)
				}
			}
			return res.Status, nil
		}

		l.sleep(l.tickInterval)
	}
}
