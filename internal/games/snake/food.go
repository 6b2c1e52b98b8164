package snake

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// RandomSource supplies uniform integers in [0, n).
// *math/rand.Rand satisfies it.
type RandomSource interface {
	Intn(n int) int
}

// NewRandomSource returns a seeded source. A zero seed uses the current time.
func NewRandomSource(seed int64) RandomSource {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Food is a single cell the snake can eat.
type Food struct {
	rng      RandomSource
	grid     Grid
	position core.Point
}

// NewFood places food on a random cell of the grid.
func NewFood(rng RandomSource, grid Grid) *Food {
	f := &Food{rng: rng, grid: grid}
	f.Spawn()
	return f
}

// Spawn moves the food to a new random cell. The snake is not consulted,
// so the food may land on it; the same cell may also come up again.
func (f *Food) Spawn() {
	x := f.rng.Intn(f.grid.Width)
	y := f.rng.Intn(f.grid.Height)
	f.position = core.Point{X: x, Y: y}
}

// Position returns the food cell.
func (f *Food) Position() core.Point {
	return f.position
}
