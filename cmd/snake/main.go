// snake is a terminal Snake game on a fixed 20x10 grid.
//
// Usage:
//
//	snake
//
// Controls:
//
//	Arrows, WASD or HJKL - Steer
//	Esc, Q or Ctrl+C     - Quit
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "snake",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error("game aborted", "err", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Play Snake in your terminal",
	Long: `Snake runs on a 20x10 board drawn in the terminal.

Controls:
  Arrows/WASD/HJKL - Steer the snake
  Esc/Q/Ctrl+C     - Quit

Eat the food to grow. Hitting a wall or your own body ends the game.

Keyboard input uses raw terminal polling and is only available on
Unix-like systems; on other platforms the game exits with an error.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runGame,
}

func runGame(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	game, err := snake.New(cfg, snake.NewRandomSource(0))
	if err != nil {
		return err
	}
	checkTerminalSize(game)

	terminal, err := tui.Open()
	if err != nil {
		return err
	}
	defer terminal.Close()

	loop := snake.NewLoop(game, cfg.Timing, terminal, terminal, snake.WithLogger(logger))
	status, err := loop.Run()

	// Restore before anything else reaches stderr.
	if closeErr := terminal.Close(); closeErr != nil && err == nil {
		err = closeErr
	}
	if err != nil {
		return err
	}

	logger.Debug("game finished", "reason", status)
	return nil
}

// checkTerminalSize warns when the board and the controls hint will not fit.
func checkTerminalSize(game *snake.Game) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return
	}

	frameW, frameH := game.FrameSize()
	// Frame rows, the hint line and the game-over line.
	if width < frameW || height < frameH+2 {
		logger.Warn("terminal is smaller than the board",
			"have", []int{width, height},
			"need", []int{frameW, frameH + 2})
	}
}
