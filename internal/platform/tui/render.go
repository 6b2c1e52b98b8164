// Package tui provides the terminal driver for the snake game: raw-mode
// keyboard input, key bindings and the ANSI frame writer.
package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// colorCodes maps core.Color to ANSI palette indexes.
var colorCodes = map[core.Color]lipgloss.Color{
	core.ColorRed:           lipgloss.Color("1"),
	core.ColorGreen:         lipgloss.Color("2"),
	core.ColorYellow:        lipgloss.Color("3"),
	core.ColorBlue:          lipgloss.Color("4"),
	core.ColorMagenta:       lipgloss.Color("5"),
	core.ColorCyan:          lipgloss.Color("6"),
	core.ColorWhite:         lipgloss.Color("7"),
	core.ColorBrightRed:     lipgloss.Color("9"),
	core.ColorBrightGreen:   lipgloss.Color("10"),
	core.ColorBrightYellow:  lipgloss.Color("11"),
	core.ColorBrightBlue:    lipgloss.Color("12"),
	core.ColorBrightMagenta: lipgloss.Color("13"),
	core.ColorBrightCyan:    lipgloss.Color("14"),
	core.ColorBrightWhite:   lipgloss.Color("15"),
	core.ColorOrange:        lipgloss.Color("208"),
	core.ColorGray:          lipgloss.Color("245"),
}

const gameOverText = "Game Over!"

// Renderer writes frames to a terminal using absolute cursor positioning.
// It does not emit newlines, so it works with output post-processing
// disabled (raw mode).
type Renderer struct {
	w      io.Writer
	styles map[core.Color]lipgloss.Style
	help   help.Model
	keys   KeyMap
	rows   int
}

// NewRenderer creates a renderer writing to w. The color profile is
// detected from w; a non-terminal writer gets plain text.
func NewRenderer(w io.Writer, keys KeyMap) *Renderer {
	lg := lipgloss.NewRenderer(w)

	styles := make(map[core.Color]lipgloss.Style, len(colorCodes)+1)
	styles[core.ColorDefault] = lg.NewStyle()
	for c, code := range colorCodes {
		styles[c] = lg.NewStyle().Foreground(code)
	}

	return &Renderer{
		w:      w,
		styles: styles,
		help:   help.New(),
		keys:   keys,
	}
}

// Draw clears the terminal and paints frame starting at the top-left
// corner, followed by the controls hint on the line below.
func (r *Renderer) Draw(frame *core.Screen) error {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(frame.Width()*frame.Height()*4 + 64)

	sb.WriteString(ansi.EraseEntireScreen)
	for y := range frame.Height() {
		sb.WriteString(ansi.CursorPosition(1, y+1))
		r.writeRow(&sb, frame, y)
	}
	sb.WriteString(ansi.CursorPosition(1, frame.Height()+1))
	sb.WriteString(r.help.ShortHelpView(r.keys.ShortHelp()))

	r.rows = frame.Height() + 1
	if _, err := io.WriteString(r.w, sb.String()); err != nil {
		return fmt.Errorf("tui: draw frame: %w", err)
	}
	return nil
}

// GameOver prints the game-over notice below the last frame.
func (r *Renderer) GameOver() error {
	notice := ansi.CursorPosition(1, r.rows+1) + gameOverText + "\r\n"
	if _, err := io.WriteString(r.w, notice); err != nil {
		return fmt.Errorf("tui: game over notice: %w", err)
	}
	return nil
}

// writeRow groups adjacent cells with the same color to minimize ANSI
// escape sequences.
func (r *Renderer) writeRow(sb *strings.Builder, frame *core.Screen, y int) {
	x := 0
	for x < frame.Width() {
		startColor := frame.GetCell(x, y).Color

		var run strings.Builder
		for x < frame.Width() {
			cell := frame.GetCell(x, y)
			if cell.Color != startColor {
				break
			}
			run.WriteRune(cell.Rune)
			x++
		}

		style, ok := r.styles[startColor]
		if !ok {
			style = r.styles[core.ColorDefault]
		}
		sb.WriteString(style.Render(run.String()))
	}
}
