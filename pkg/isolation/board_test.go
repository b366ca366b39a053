package isolation

import (
	"testing"
	"time"
)

// A player that always takes the first legal move
type stubPlayer struct {
	name string
}

func (p *stubPlayer) Move(b *Board, _ time.Time) (Move, error) {
	moves := b.LegalMoves()
	if len(moves) == 0 {
		return NoMove, nil
	}
	return moves[0], nil
}

func newTestBoard(width, height int) (*Board, *stubPlayer, *stubPlayer) {
	p1 := &stubPlayer{name: "p1"}
	p2 := &stubPlayer{name: "p2"}
	return NewBoard(p1, p2, width, height), p1, p2
}

func TestEmptyBoardLegalMoves(t *testing.T) {
	b, _, _ := newTestBoard(7, 7)

	if got := len(b.LegalMoves()); got != 49 {
		t.Fatalf("expected 49 opening moves, got %d", got)
	}
}

func TestApplyMoveBlocksAndTogglesTurn(t *testing.T) {
	b, p1, p2 := newTestBoard(7, 7)

	if b.ActivePlayer() != p1 {
		t.Fatal("player1 should have the first move")
	}

	if err := b.ApplyMove(Move{3, 3}); err != nil {
		t.Fatal(err)
	}

	if b.ActivePlayer() != p2 {
		t.Error("turn should pass to player2 after player1 moves")
	}
	if !b.Occupied()[Move{3, 3}] {
		t.Error("applied move should block the cell")
	}
	if got := len(b.LegalMoves()); got != 48 {
		t.Errorf("player2 should have 48 opening moves, got %d", got)
	}
}

func TestKnightMoves(t *testing.T) {
	b, p1, _ := newTestBoard(7, 7)

	// Both players open, then player1 moves from the corner
	if err := b.ApplyMove(Move{0, 0}); err != nil {
		t.Fatal(err)
	}
	if err := b.ApplyMove(Move{6, 6}); err != nil {
		t.Fatal(err)
	}

	moves := b.LegalMovesFor(p1)
	want := map[Move]bool{{1, 2}: true, {2, 1}: true}
	if len(moves) != len(want) {
		t.Fatalf("corner knight moves: got %v, want %v", moves, want)
	}
	for _, m := range moves {
		if !want[m] {
			t.Errorf("unexpected knight move %v from (0,0)", m)
		}
	}
}

func TestApplyIllegalMove(t *testing.T) {
	b, _, _ := newTestBoard(7, 7)

	if err := b.ApplyMove(Move{2, 2}); err != nil {
		t.Fatal(err)
	}

	// Same cell again, and out of bounds
	if err := b.ApplyMove(Move{2, 2}); err == nil {
		t.Error("expected ErrIllegalMove for an occupied cell")
	}
	if err := b.ApplyMove(Move{7, 0}); err == nil {
		t.Error("expected ErrIllegalMove for an out-of-bounds cell")
	}
}

func TestCopyIsIndependent(t *testing.T) {
	b, _, _ := newTestBoard(5, 5)
	if err := b.ApplyMove(Move{0, 0}); err != nil {
		t.Fatal(err)
	}

	c := b.Copy()
	if err := c.ApplyMove(Move{4, 4}); err != nil {
		t.Fatal(err)
	}

	if b.Occupied()[Move{4, 4}] {
		t.Error("mutating the copy changed the original board")
	}
	if b.MoveCount() == c.MoveCount() {
		t.Error("copy should track its own move count")
	}
}

func TestWinnerAndLoser(t *testing.T) {
	b, p1, p2 := newTestBoard(1, 1)

	// Player1 takes the only cell, leaving player2 stranded
	if err := b.ApplyMove(Move{0, 0}); err != nil {
		t.Fatal(err)
	}

	if !b.IsLoser(p2) {
		t.Error("player2 should be the loser with no cells left")
	}
	if !b.IsWinner(p1) {
		t.Error("player1 should be the winner")
	}
}
