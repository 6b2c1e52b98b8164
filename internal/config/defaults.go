package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the hardcoded Snake configuration.
// It mirrors defaults/snake.yaml and is used if the embedded file fails to parse.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Grid: GridConfig{
			Width:  20,
			Height: 10,
		},
		Timing: TimingConfig{
			PollMS: 100,
			TickMS: 100,
		},
		Start: StartConfig{
			Direction: "right",
			Body: []PointConfig{
				{X: 5, Y: 5},
				{X: 5, Y: 4},
				{X: 5, Y: 3},
			},
		},
		Glyphs: GlyphConfig{
			Horizontal: "-",
			Vertical:   "|",
			Snake:      "■",
			Food:       "■",
		},
		Colors: ColorConfig{
			Border: "gray",
			Snake:  "bright_green",
			Food:   "bright_red",
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
