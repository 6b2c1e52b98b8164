package tui

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/tui-snake/internal/core"
)

var errWrite = errors.New("write failed")

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errWrite }

func testFrame() *core.Screen {
	frame := core.NewScreen(4, 3)
	frame.DrawHLine(0, 0, 4, '-', core.ColorGray)
	frame.DrawHLine(0, 2, 4, '-', core.ColorGray)
	frame.SetColor(1, 1, '■', core.ColorBrightGreen)
	frame.SetColor(2, 1, '■', core.ColorBrightRed)
	return frame
}

func TestRendererDraw(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, DefaultKeyMap())

	if err := r.Draw(testFrame()); err != nil {
		t.Fatalf("Draw() error = %v", err)
	}
	out := buf.String()

	if !strings.HasPrefix(out, ansi.EraseEntireScreen) {
		t.Errorf("output should start by clearing the screen, got %q", out)
	}
	for row := 1; row <= 4; row++ {
		if !strings.Contains(out, ansi.CursorPosition(1, row)) {
			t.Errorf("missing cursor move to row %d", row)
		}
	}
	if strings.Contains(out, "\n") {
		t.Error("frame output must not rely on newlines")
	}

	plain := ansi.Strip(out)
	if !strings.HasPrefix(plain, "---- ■■ ----") {
		t.Errorf("plain output = %q, want frame rows first", plain)
	}
	if !strings.Contains(plain, "quit") {
		t.Errorf("plain output = %q, want controls hint", plain)
	}
}

func TestRendererRedrawClears(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, DefaultKeyMap())

	for range 2 {
		if err := r.Draw(testFrame()); err != nil {
			t.Fatalf("Draw() error = %v", err)
		}
	}
	if got := strings.Count(buf.String(), ansi.EraseEntireScreen); got != 2 {
		t.Errorf("screen cleared %d times, want 2", got)
	}
}

func TestRendererGameOver(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, DefaultKeyMap())

	if err := r.Draw(testFrame()); err != nil {
		t.Fatalf("Draw() error = %v", err)
	}
	buf.Reset()

	if err := r.GameOver(); err != nil {
		t.Fatalf("GameOver() error = %v", err)
	}
	// Three frame rows plus the hint line, so the notice goes on row 5.
	want := ansi.CursorPosition(1, 5) + "Game Over!\r\n"
	if got := buf.String(); got != want {
		t.Errorf("GameOver() wrote %q, want %q", got, want)
	}
}

func TestRendererWriteErrors(t *testing.T) {
	r := NewRenderer(failingWriter{}, DefaultKeyMap())

	if err := r.Draw(testFrame()); !errors.Is(err, errWrite) {
		t.Errorf("Draw() error = %v, want %v", err, errWrite)
	}
	if err := r.GameOver(); !errors.Is(err, errWrite) {
		t.Errorf("GameOver() error = %v, want %v", err, errWrite)
	}
}
