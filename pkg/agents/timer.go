package agents

import "time"

// Safety margin subtracted from every deadline, so a search that checks the
// clock between nodes still returns before the play loop's budget runs out.
const TimerMargin = 10 * time.Millisecond

type timer struct {
	deadline time.Time
}

// Build a move timer from the play loop's deadline, falling back to the
// player's own Movetime limit when no deadline was given.
func newTimer(deadline time.Time, limits *Limits) timer {
	if deadline.IsZero() && limits.Movetime != DefaultMovetimeLimit {
		deadline = time.Now().Add(time.Duration(limits.Movetime) * time.Millisecond)
	}
	if !deadline.IsZero() {
		deadline = deadline.Add(-TimerMargin)
	}
	return timer{deadline: deadline}
}

func (t timer) IsSet() bool {
	return !t.deadline.IsZero()
}

// Check if this timer has ended
func (t timer) IsEnd() bool {
	return t.IsSet() && !time.Now().Before(t.deadline)
}
