package agents

import "math"

// Search limits for the fixed-depth players. Movetime is a fallback budget in
// milliseconds, used only when the play loop supplies no deadline.
type Limits struct {
	Depth    int
	Movetime int
}

const (
	DefaultDepthLimit    int = math.MaxInt
	DefaultMovetimeLimit int = -1
)

func DefaultLimits() *Limits {
	return &Limits{
		Depth:    DefaultDepthLimit,
		Movetime: DefaultMovetimeLimit,
	}
}

// Set the maximum depth of the search
func (l *Limits) SetDepth(depth int) *Limits {
	l.Depth = depth
	return l
}

// Set the maximum time, in milliseconds, the player may think per move
func (l *Limits) SetMovetime(movetime int) *Limits {
	l.Movetime = movetime
	return l
}
