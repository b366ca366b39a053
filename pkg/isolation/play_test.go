package isolation

import (
	"errors"
	"testing"
	"time"
)

type forfeitPlayer struct{}

func (forfeitPlayer) Move(*Board, time.Time) (Move, error) {
	return NoMove, nil
}

type timeoutPlayer struct{}

func (timeoutPlayer) Move(*Board, time.Time) (Move, error) {
	return NoMove, ErrTimeout
}

type brokenPlayer struct{}

func (brokenPlayer) Move(*Board, time.Time) (Move, error) {
	return NoMove, errors.New("boom")
}

func TestPlayRunsToOutOfMoves(t *testing.T) {
	b, p1, p2 := newTestBoard(3, 3)

	winner, loser, reason, err := b.Play(time.Second)
	if err != nil {
		t.Fatal(err)
	}
	if reason != LossOutOfMoves {
		t.Errorf("expected out-of-moves loss, got %v", reason)
	}
	if winner == loser {
		t.Error("winner and loser must differ")
	}
	if (winner != Player(p1) && winner != Player(p2)) || (loser != Player(p1) && loser != Player(p2)) {
		t.Error("winner and loser must be the registered players")
	}
}

func TestPlayForfeit(t *testing.T) {
	quitter := forfeitPlayer{}
	other := &stubPlayer{name: "other"}
	b := NewBoard(quitter, other, 5, 5)

	winner, loser, reason, err := b.Play(time.Second)
	if err != nil {
		t.Fatal(err)
	}
	if reason != LossForfeit {
		t.Errorf("expected forfeit, got %v", reason)
	}
	if loser != Player(quitter) || winner != Player(other) {
		t.Error("the forfeiting player must lose")
	}
}

func TestPlayTimeout(t *testing.T) {
	slow := timeoutPlayer{}
	other := &stubPlayer{name: "other"}
	b := NewBoard(other, slow, 5, 5)

	winner, loser, reason, err := b.Play(time.Second)
	if err != nil {
		t.Fatal(err)
	}
	if reason != LossTimeout {
		t.Errorf("expected timeout, got %v", reason)
	}
	if loser != Player(slow) || winner != Player(other) {
		t.Error("the timing-out player must lose")
	}
}

func TestPlayAbortsOnPlayerError(t *testing.T) {
	b := NewBoard(brokenPlayer{}, &stubPlayer{name: "other"}, 5, 5)

	_, _, _, err := b.Play(time.Second)
	if err == nil {
		t.Fatal("a player error must abort the game")
	}
}

func TestLossReasonStrings(t *testing.T) {
	cases := map[LossReason]string{
		LossOutOfMoves: "out of moves",
		LossTimeout:    "timeout",
		LossForfeit:    "forfeit",
	}
	for reason, want := range cases {
		if got := reason.String(); got != want {
			t.Errorf("LossReason(%d).String() = %q, want %q", reason, got, want)
		}
	}
}
