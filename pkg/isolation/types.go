package isolation

import (
	"errors"
	"fmt"
)

// Type defines for the board
type Move struct {
	Row, Col int8
}

// Sentinel returned by players that have nothing to play. A player that
// hands NoMove back to the play loop while legal moves remain forfeits.
var NoMove = Move{-1, -1}

func (m Move) String() string {
	return fmt.Sprintf("(%d,%d)", m.Row, m.Col)
}

// Why a finished game was lost, from the loser's perspective
type LossReason uint8

const (
	// The loser ran out of legal moves, the normal end of an Isolation game
	LossOutOfMoves LossReason = iota

	// The loser's move function signalled it exhausted its time budget
	LossTimeout

	// The loser returned an illegal move (or NoMove) while legal moves remained
	LossForfeit
)

func (lr LossReason) String() string {
	switch lr {
	case LossOutOfMoves:
		return "out of moves"
	case LossTimeout:
		return "timeout"
	case LossForfeit:
		return "forfeit"
	}
	return "unknown"
}

var (
	ErrIllegalMove  = errors.New("illegal move")
	ErrNoLegalMoves = errors.New("no legal moves")

	// Returned by a Player whose search could not produce any move within
	// its time budget. The play loop turns it into a LossTimeout outcome.
	ErrTimeout = errors.New("search timed out")
)
