package isolation

import (
	"errors"
	"fmt"
	"slices"
	"time"
)

// Play runs the game to completion, alternating between the registered
// players. Each move the active player gets a copy of the board and a
// deadline moveTime from now.
//
// The game ends when the active player
//   - has no legal moves left (LossOutOfMoves),
//   - reports ErrTimeout from its search (LossTimeout), or
//   - returns a move outside the legal set (LossForfeit).
//
// Any other error from a player is a defect and aborts play.
func (b *Board) Play(moveTime time.Duration) (winner, loser Player, reason LossReason, err error) {
	for {
		moves := b.LegalMoves()
		if len(moves) == 0 {
			return b.InactivePlayer(), b.ActivePlayer(), LossOutOfMoves, nil
		}

		current := b.ActivePlayer()
		move, merr := current.Move(b.Copy(), time.Now().Add(moveTime))

		if merr != nil {
			if errors.Is(merr, ErrTimeout) {
				return b.InactivePlayer(), current, LossTimeout, nil
			}
			return nil, nil, 0, fmt.Errorf("play move %d: %w", b.moveCount+1, merr)
		}

		if !slices.Contains(moves, move) {
			return b.InactivePlayer(), current, LossForfeit, nil
		}

		if aerr := b.ApplyMove(move); aerr != nil {
			return nil, nil, 0, fmt.Errorf("play move %d: %w", b.moveCount+1, aerr)
		}
	}
}
