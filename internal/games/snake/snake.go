package snake

import (
	"github.com/vovakirdan/tui-snake/internal/core"
)

// Direction represents the snake's movement direction.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// ParseDirection converts a config name ("up", "down", "left", "right") to a Direction.
func ParseDirection(name string) (Direction, bool) {
	switch name {
	case "up":
		return DirUp, true
	case "down":
		return DirDown, true
	case "left":
		return DirLeft, true
	case "right":
		return DirRight, true
	default:
		return DirRight, false
	}
}

// Delta returns the one-cell offset of a step in this direction.
// Up is toward row 0.
func (d Direction) Delta() core.Point {
	switch d {
	case DirUp:
		return core.Point{X: 0, Y: -1}
	case DirDown:
		return core.Point{X: 0, Y: 1}
	case DirLeft:
		return core.Point{X: -1, Y: 0}
	case DirRight:
		return core.Point{X: 1, Y: 0}
	default:
		return core.Point{}
	}
}

// Opposite returns the 180° reverse of d.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Grid is the playable area. Valid cells are [0,Width) x [0,Height).
type Grid struct {
	Width  int
	Height int
}

// Contains reports whether p is a playable cell.
func (g Grid) Contains(p core.Point) bool {
	return core.NewRect(0, 0, g.Width, g.Height).ContainsPoint(p)
}

// Snake is an ordered body of cells (head at index 0) and a heading.
type Snake struct {
	body      []core.Point
	direction Direction
}

// NewSnake creates a snake from a head-first body. The body must not be empty.
func NewSnake(body []core.Point, dir Direction) *Snake {
	if len(body) == 0 {
		panic("snake: empty body")
	}
	b := make([]core.Point, len(body))
	copy(b, body)
	return &Snake{body: b, direction: dir}
}

// Head returns the front cell.
func (s *Snake) Head() core.Point {
	return s.body[0]
}

// Len returns the number of body segments.
func (s *Snake) Len() int {
	return len(s.body)
}

// Body returns a copy of the segments, head first.
func (s *Snake) Body() []core.Point {
	b := make([]core.Point, len(s.body))
	copy(b, s.body)
	return b
}

// Direction returns the current heading.
func (s *Snake) Direction() Direction {
	return s.direction
}

// Turn sets the heading unless d reverses it.
// Returns true if the heading changed.
func (s *Snake) Turn(d Direction) bool {
	if d == s.direction || d == s.direction.Opposite() {
		return false
	}
	s.direction = d
	return true
}

// MoveForward steps the head one cell in the current direction and drops
// the tail, keeping the length unchanged. Stepping off the top or left edge
// leaves a negative coordinate that Collision reports as a wall hit.
func (s *Snake) MoveForward() {
	newHead := s.Head().Add(s.direction.Delta())
	copy(s.body[1:], s.body[:len(s.body)-1])
	s.body[0] = newHead
}

// Grow appends a copy of the tail cell. The extra segment separates from
// the tail on the next move.
func (s *Snake) Grow() {
	s.body = append(s.body, s.body[len(s.body)-1])
}

// Collision reports whether the head is outside the grid or on another segment.
func (s *Snake) Collision(g Grid) bool {
	head := s.Head()
	if !g.Contains(head) {
		return true
	}
	for _, seg := range s.body[1:] {
		if seg == head {
			return true
		}
	}
	return false
}
