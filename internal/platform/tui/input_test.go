package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestDecodeKeys(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"csi up", "\x1b[A", []string{"up"}},
		{"csi down", "\x1b[B", []string{"down"}},
		{"csi right", "\x1b[C", []string{"right"}},
		{"csi left", "\x1b[D", []string{"left"}},
		{"ss3 arrows", "\x1bOA\x1bOD", []string{"up", "left"}},
		{"lone escape", "\x1b", []string{"esc"}},
		{"escape then rune", "\x1bq", []string{"esc", "q"}},
		{"ctrl+c", "\x03", []string{"ctrl+c"}},
		{"runes", "wasd", []string{"w", "a", "s", "d"}},
		{"mixed", "\x1b[Cx\x1b[B", []string{"right", "x", "down"}},
		{"modified arrow dropped", "\x1b[1;5A", nil},
		{"unknown csi dropped", "\x1b[2~q", []string{"q"}},
		{"truncated csi dropped", "\x1b[1;", nil},
		{"csi prefix only", "\x1b[", nil},
		{"ss3 prefix only", "\x1bO", nil},
		{"utf8 rune", "é", []string{"é"}},
		{"empty", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := decodeKeys([]byte(tt.input))
			if len(got) != len(tt.want) {
				t.Fatalf("decodeKeys(%q) = %v, want %v", tt.input, got, tt.want)
			}
			for i, msg := range got {
				if msg.String() != tt.want[i] {
					t.Errorf("key %d = %q, want %q", i, msg.String(), tt.want[i])
				}
			}
		})
	}
}

func TestSplitArrowDoesNotQuit(t *testing.T) {
	q := keyQueue{keys: DefaultKeyMap()}

	for _, chunk := range []string{"\x1b[", "\x1bO"} {
		q.push(decodeKeys([]byte(chunk)))
		if action, ok := q.next(); ok {
			t.Errorf("chunk %q produced %v, want nothing", chunk, action)
		}
	}
}

func TestDecodeKeysTypes(t *testing.T) {
	got := decodeKeys([]byte("\x1b[A\x1b\x03"))
	want := []tea.KeyType{tea.KeyUp, tea.KeyEscape, tea.KeyCtrlC}
	if len(got) != len(want) {
		t.Fatalf("got %d keys, want %d", len(got), len(want))
	}
	for i, msg := range got {
		if msg.Type != want[i] {
			t.Errorf("key %d type = %v, want %v", i, msg.Type, want[i])
		}
	}
}
