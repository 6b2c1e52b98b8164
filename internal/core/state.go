package core

// Status is the lifecycle state of a game.
// Running is the only non-terminal state.
type Status int

const (
	StatusRunning   Status = iota
	StatusQuit             // Player pressed a quit key
	StatusCollision        // Head hit a wall or the body
)

// Terminated reports whether the game has stopped.
func (s Status) Terminated() bool {
	return s != StatusRunning
}

func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusQuit:
		return "quit"
	case StatusCollision:
		return "collision"
	default:
		return "unknown"
	}
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	Status Status
	Turned bool // Direction changed this tick
	Ate    bool // Head reached the food this tick
}
