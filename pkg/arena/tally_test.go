package arena

import (
	"testing"

	"github.com/knightsmove/isolation/pkg/isolation"
)

func TestWinCountsMerge(t *testing.T) {
	a := newTestCompetitor("A")
	b := newTestCompetitor("B")

	w1 := WinCounts{a: 2, b: 1}
	w2 := WinCounts{a: 1}

	w1.Merge(w2)
	if w1[a] != 3 || w1[b] != 1 {
		t.Errorf("merge result %v, want A:3 B:1", w1)
	}
	if w1.Total() != 4 {
		t.Errorf("total %d, want 4", w1.Total())
	}
}

func TestWinCountsCloneIsIndependent(t *testing.T) {
	a := newTestCompetitor("A")

	orig := WinCounts{a: 1}
	clone := orig.Clone()
	clone.Add(a, 5)

	if orig[a] != 1 {
		t.Errorf("mutating the clone changed the original: %v", orig)
	}
}

func TestLossReasonCountsMerge(t *testing.T) {
	l1 := LossReasonCounts{isolation.LossTimeout: 1}
	l2 := LossReasonCounts{isolation.LossTimeout: 2, isolation.LossForfeit: 1}

	l1.Merge(l2)
	if l1[isolation.LossTimeout] != 3 || l1[isolation.LossForfeit] != 1 {
		t.Errorf("merge result %v", l1)
	}
	if l1.Total() != 4 {
		t.Errorf("total %d, want 4", l1.Total())
	}
}

func TestWinRate(t *testing.T) {
	if got := WinRate(3, 4); got != 0.75 {
		t.Errorf("WinRate(3, 4) = %v, want 0.75", got)
	}
	if got := WinRate(0, 0); got != 0 {
		t.Errorf("WinRate(0, 0) = %v, want 0", got)
	}
}
