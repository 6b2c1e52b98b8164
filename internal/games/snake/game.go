// Package snake implements the Snake game: movement, growth, food and
// collision rules, plus the fixed-rate loop that drives them against a
// renderer and an input source.
package snake

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// style holds the resolved glyphs and colors for rendering.
type style struct {
	horizontal rune
	vertical   rune
	snake      rune
	food       rune

	borderColor core.Color
	snakeColor  core.Color
	foodColor   core.Color
}

// Game owns the snake and the food for one play session.
type Game struct {
	grid   Grid
	snake  *Snake
	food   *Food
	tick   uint64
	status core.Status
	style  style
}

// New creates a game from a configuration. The snake starts at the configured
// body and heading, and the food at a random cell drawn from rng.
func New(cfg config.SnakeConfig, rng RandomSource) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("snake: %w", err)
	}

	dir, _ := ParseDirection(cfg.Start.Direction)
	body := make([]core.Point, len(cfg.Start.Body))
	for i, p := range cfg.Start.Body {
		body[i] = core.Point{X: p.X, Y: p.Y}
	}

	// Colors were checked by Validate.
	borderColor, _ := core.ParseColor(cfg.Colors.Border)
	snakeColor, _ := core.ParseColor(cfg.Colors.Snake)
	foodColor, _ := core.ParseColor(cfg.Colors.Food)

	grid := Grid{Width: cfg.Grid.Width, Height: cfg.Grid.Height}
	return &Game{
		grid:  grid,
		snake: NewSnake(body, dir),
		food:  NewFood(rng, grid),
		style: style{
			horizontal:  config.Rune(cfg.Glyphs.Horizontal),
			vertical:    config.Rune(cfg.Glyphs.Vertical),
			snake:       config.Rune(cfg.Glyphs.Snake),
			food:        config.Rune(cfg.Glyphs.Food),
			borderColor: borderColor,
			snakeColor:  snakeColor,
			foodColor:   foodColor,
		},
	}, nil
}

// Step advances the game by one tick using at most one input action:
// quit stops the game, a direction turns the snake (reversals are ignored),
// then the snake moves, eats and is checked for collision.
// Once terminated, Step does nothing.
func (g *Game) Step(action core.Action) core.StepResult {
	if g.status.Terminated() {
		return core.StepResult{Status: g.status}
	}
	g.tick++

	var res core.StepResult
	switch {
	case action == core.ActionQuit:
		g.status = core.StatusQuit
		res.Status = g.status
		return res
	case action.IsDirectional():
		res.Turned = g.snake.Turn(directionFor(action))
	}

	g.snake.MoveForward()

	if g.snake.Head() == g.food.Position() {
		g.snake.Grow()
		g.food.Spawn()
		res.Ate = true
	}

	if g.snake.Collision(g.grid) {
		g.status = core.StatusCollision
	}

	res.Status = g.status
	return res
}

// directionFor maps a directional action to a heading.
func directionFor(a core.Action) Direction {
	switch a {
	case core.ActionUp:
		return DirUp
	case core.ActionDown:
		return DirDown
	case core.ActionLeft:
		return DirLeft
	default:
		return DirRight
	}
}

// Status returns the current lifecycle state.
func (g *Game) Status() core.Status {
	return g.status
}

// FrameSize returns the screen size Render needs: the grid plus its border.
func (g *Game) FrameSize() (width, height int) {
	return g.grid.Width + 1, g.grid.Height + 1
}

// Render draws the border, the snake and the food into dst.
// The border covers columns 0..Width and rows 0..Height inclusive, and grid
// cells are drawn at their own coordinates on top of it.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	w, h := g.grid.Width, g.grid.Height
	s := g.style

	dst.DrawHLine(0, 0, w+1, s.horizontal, s.borderColor)
	dst.DrawHLine(0, h, w+1, s.horizontal, s.borderColor)
	dst.DrawVLine(0, 0, h+1, s.vertical, s.borderColor)
	dst.DrawVLine(w, 0, h+1, s.vertical, s.borderColor)

	for _, seg := range g.snake.body {
		dst.SetColor(seg.X, seg.Y, s.snake, s.snakeColor)
	}

	food := g.food.Position()
	dst.SetColor(food.X, food.Y, s.food, s.foodColor)
}
