package arena

import "github.com/knightsmove/isolation/pkg/isolation"

// Wins per competitor within one tallying scope (a round or the whole
// tournament). The sum of all values equals the number of games played in
// that scope, as long as no game aborted.
type WinCounts map[Competitor]int

func (w WinCounts) Add(c Competitor, n int) {
	w[c] += n
}

// Merge folds other into w, adding counts key by key
func (w WinCounts) Merge(other WinCounts) {
	for c, n := range other {
		w[c] += n
	}
}

func (w WinCounts) Total() int {
	total := 0
	for _, n := range w {
		total += n
	}
	return total
}

func (w WinCounts) Clone() WinCounts {
	clone := make(WinCounts, len(w))
	for c, n := range w {
		clone[c] = n
	}
	return clone
}

// Losses per reason within one tallying scope
type LossReasonCounts map[isolation.LossReason]int

func (l LossReasonCounts) Add(r isolation.LossReason, n int) {
	l[r] += n
}

func (l LossReasonCounts) Merge(other LossReasonCounts) {
	for r, n := range other {
		l[r] += n
	}
}

func (l LossReasonCounts) Total() int {
	total := 0
	for _, n := range l {
		total += n
	}
	return total
}

// WinRate of wins over games, 0 for an empty scope
func WinRate(wins, games int) float64 {
	if games == 0 {
		return 0
	}
	return float64(wins) / float64(games)
}
