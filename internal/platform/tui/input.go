package tui

import (
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
)

const keyEscape = 0x1b

// arrowKeys maps the final byte of an unmodified CSI or SS3 sequence
// (ESC [ A, ESC O A, ...) to its key.
var arrowKeys = map[byte]tea.KeyType{
	'A': tea.KeyUp,
	'B': tea.KeyDown,
	'C': tea.KeyRight,
	'D': tea.KeyLeft,
}

// decodeKeys parses raw terminal input into key messages.
// A lone ESC (not followed by '[' or 'O') is the Escape key.
// Unrecognized and cut-off escape sequences are dropped whole.
func decodeKeys(data []byte) []tea.KeyMsg {
	var keys []tea.KeyMsg

	for i := 0; i < len(data); {
		b := data[i]

		switch {
		case b == keyEscape:
			if i+1 < len(data) && (data[i+1] == '[' || data[i+1] == 'O') {
				end := i + 2
				for end < len(data) && !isFinalByte(data[end]) {
					end++
				}
				if end == len(data) {
					// Truncated sequence
					return keys
				}
				if kt, ok := arrowKeys[data[end]]; ok && end == i+2 {
					keys = append(keys, tea.KeyMsg{Type: kt})
				}
				i = end + 1
				continue
			}
			keys = append(keys, tea.KeyMsg{Type: tea.KeyEscape})
			i++

		case b < 0x20 || b == 0x7f:
			// Control characters share their byte value with tea's key types (ETX is ctrl+c).
			keys = append(keys, tea.KeyMsg{Type: tea.KeyType(b)})
			i++

		default:
			r, size := utf8.DecodeRune(data[i:])
			if r != utf8.RuneError {
				keys = append(keys, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
			}
			i += size
		}
	}
	return keys
}

// isFinalByte reports whether b terminates a CSI/SS3 sequence.
func isFinalByte(b byte) bool {
	return b >= 0x40 && b <= 0x7e
}
