// Package config provides the YAML-based game configuration for snake.
// The configuration is embedded at build time; nothing is read at runtime.
package config

import "time"

// SnakeConfig contains all configuration for the Snake game.
type SnakeConfig struct {
	Grid   GridConfig   `yaml:"grid"`
	Timing TimingConfig `yaml:"timing"`
	Start  StartConfig  `yaml:"start"`
	Glyphs GlyphConfig  `yaml:"glyphs"`
	Colors ColorConfig  `yaml:"colors"`
}

// GridConfig defines the playable area in cells.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// TimingConfig defines the tick cadence.
type TimingConfig struct {
	PollMS int `yaml:"poll_ms"` // Max wait for input per tick
	TickMS int `yaml:"tick_ms"` // Sleep after each tick
}

// PollTimeout returns the input poll window.
func (t TimingConfig) PollTimeout() time.Duration {
	return time.Duration(t.PollMS) * time.Millisecond
}

// TickInterval returns the fixed sleep between ticks.
func (t TimingConfig) TickInterval() time.Duration {
	return time.Duration(t.TickMS) * time.Millisecond
}

// StartConfig defines the snake's initial body and heading.
type StartConfig struct {
	Direction string        `yaml:"direction"` // "up", "down", "left" or "right"
	Body      []PointConfig `yaml:"body"`      // Head first
}

// PointConfig is a grid cell in YAML form.
type PointConfig struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// GlyphConfig defines the single-rune markers drawn for each element.
type GlyphConfig struct {
	Horizontal string `yaml:"horizontal"` // Top and bottom border
	Vertical   string `yaml:"vertical"`   // Left and right border
	Snake      string `yaml:"snake"`
	Food       string `yaml:"food"`
}

// ColorConfig names the foreground color of each element (see core.ParseColor).
type ColorConfig struct {
	Border string `yaml:"border"`
	Snake  string `yaml:"snake"`
	Food   string `yaml:"food"`
}
