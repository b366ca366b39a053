package arena

import (
	"maps"
	"testing"

	"github.com/knightsmove/isolation/pkg/isolation"
)

func TestFairMatchFootprintsEqual(t *testing.T) {
	a := newTestCompetitor("A")
	b := newTestCompetitor("B")

	fm, opening, err := NewFairMatch(a, b, nil, 7, 7)
	if err != nil {
		t.Fatal(err)
	}
	if len(opening) != 2 {
		t.Fatalf("expected a sampled opening of 2 moves, got %d", len(opening))
	}

	if !maps.Equal(fm.Games[0].Footprint(), fm.Games[1].Footprint()) {
		t.Error("both halves of a fair match must share the occupied-cell footprint")
	}
}

func TestFairMatchSwapsInitiative(t *testing.T) {
	a := newTestCompetitor("A")
	b := newTestCompetitor("B")

	fm, _, err := NewFairMatch(a, b, nil, 7, 7)
	if err != nil {
		t.Fatal(err)
	}

	if fm.Games[0].First() != a || fm.Games[0].Second() != b {
		t.Error("competitor A must move first in the first game")
	}
	if fm.Games[1].First() != b || fm.Games[1].Second() != a {
		t.Error("competitor B must move first in the second game")
	}
	if fm.Games[0].First() != fm.Games[1].Second() || fm.Games[0].Second() != fm.Games[1].First() {
		t.Error("initiative must be an exact swap between the two games")
	}
}

func TestFairMatchKeepsSuppliedOpening(t *testing.T) {
	a := newTestCompetitor("A")
	b := newTestCompetitor("B")

	supplied := OpeningMoves{{Row: 0, Col: 0}, {Row: 3, Col: 3}}
	fm, opening, err := NewFairMatch(a, b, supplied, 7, 7)
	if err != nil {
		t.Fatal(err)
	}

	if opening[0] != supplied[0] || opening[1] != supplied[1] {
		t.Errorf("supplied opening %v was changed to %v", supplied, opening)
	}

	want := map[isolation.Move]bool{{Row: 0, Col: 0}: true, {Row: 3, Col: 3}: true}
	for _, g := range fm.Games {
		if !maps.Equal(g.Footprint(), want) {
			t.Errorf("footprint %v does not match the supplied opening", g.Footprint())
		}
	}
}

func TestFairMatchRejectsIllegalOpening(t *testing.T) {
	a := newTestCompetitor("A")
	b := newTestCompetitor("B")

	_, _, err := NewFairMatch(a, b, OpeningMoves{{Row: 0, Col: 0}, {Row: 0, Col: 0}}, 7, 7)
	if err == nil {
		t.Fatal("an opening repeating a cell must be rejected")
	}
}

func TestGameOpponentOf(t *testing.T) {
	a := newTestCompetitor("A")
	b := newTestCompetitor("B")

	fm, _, err := NewFairMatch(a, b, nil, 7, 7)
	if err != nil {
		t.Fatal(err)
	}

	for _, g := range fm.Games {
		if g.OpponentOf(a) != b || g.OpponentOf(b) != a {
			t.Error("OpponentOf must return the other competitor")
		}
	}
}
