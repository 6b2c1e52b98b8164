package snake

import (
	"github.com/vovakirdan/tui-snake/internal/core"
)

// Snapshot captures the complete game state for determinism testing and logging.
type Snapshot struct {
	Tick     uint64
	Status   core.Status
	SnakeLen int
	Head     core.Point
	Dir      Direction
	Food     core.Point
	Body     []core.Point
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:     g.tick,
		Status:   g.status,
		SnakeLen: g.snake.Len(),
		Head:     g.snake.Head(),
		Dir:      g.snake.Direction(),
		Food:     g.food.Position(),
		Body:     g.snake.Body(),
	}
}
