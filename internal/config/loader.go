package config

import (
	"bytes"
	"errors"
	"fmt"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Load parses and validates the embedded Snake configuration.
func Load() (SnakeConfig, error) {
	cfg, err := Parse(defaultSnakeYAML)
	if err != nil {
		return SnakeConfig{}, fmt.Errorf("config: embedded defaults: %w", err)
	}
	return cfg, nil
}

// Parse decodes and validates a Snake configuration document.
// Unknown keys are rejected.
func Parse(data []byte) (SnakeConfig, error) {
	var cfg SnakeConfig

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("config: cannot parse: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks that the configuration describes a playable game.
func (c SnakeConfig) Validate() error {
	var errs []error

	if c.Grid.Width <= 0 || c.Grid.Height <= 0 {
		errs = append(errs, fmt.Errorf("grid must be positive, got %dx%d", c.Grid.Width, c.Grid.Height))
	}
	if c.Timing.PollMS < 0 || c.Timing.TickMS < 0 {
		errs = append(errs, fmt.Errorf("timing must not be negative, got poll=%d tick=%d", c.Timing.PollMS, c.Timing.TickMS))
	}

	switch c.Start.Direction {
	case "up", "down", "left", "right":
	default:
		errs = append(errs, fmt.Errorf("unknown start direction %q", c.Start.Direction))
	}
	if len(c.Start.Body) == 0 {
		errs = append(errs, errors.New("start body must have at least one segment"))
	}
	for i, p := range c.Start.Body {
		if p.X < 0 || p.X >= c.Grid.Width || p.Y < 0 || p.Y >= c.Grid.Height {
			errs = append(errs, fmt.Errorf("start body segment %d at (%d, %d) is outside the grid", i, p.X, p.Y))
		}
	}

	glyphs := map[string]string{
		"horizontal": c.Glyphs.Horizontal,
		"vertical":   c.Glyphs.Vertical,
		"snake":      c.Glyphs.Snake,
		"food":       c.Glyphs.Food,
	}
	for name, g := range glyphs {
		if utf8.RuneCountInString(g) != 1 {
			errs = append(errs, fmt.Errorf("glyph %s must be a single character, got %q", name, g))
		}
	}

	colors := map[string]string{
		"border": c.Colors.Border,
		"snake":  c.Colors.Snake,
		"food":   c.Colors.Food,
	}
	for name, col := range colors {
		if _, ok := core.ParseColor(col); !ok {
			errs = append(errs, fmt.Errorf("unknown %s color %q", name, col))
		}
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: invalid: %w", err)
	}
	return nil
}

// Rune returns the first rune of a validated glyph string.
func Rune(glyph string) rune {
	r, _ := utf8.DecodeRuneInString(glyph)
	return r
}
