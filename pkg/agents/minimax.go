package agents

import (
	"time"

	"github.com/knightsmove/isolation/pkg/isolation"
)

// MinimaxPlayer searches the game tree to a fixed depth with plain minimax
// and evaluates the horizon with its score function.
type MinimaxPlayer struct {
	Score  ScoreFn
	Limits *Limits
}

const defaultMinimaxDepth = 3

func NewMinimaxPlayer(score ScoreFn) *MinimaxPlayer {
	return &MinimaxPlayer{
		Score:  score,
		Limits: DefaultLimits().SetDepth(defaultMinimaxDepth),
	}
}

// Move returns the root move with the best minimax value. If the clock runs
// out mid-search, the best fully evaluated root move so far is returned;
// ErrTimeout only when not even one root move completed.
func (p *MinimaxPlayer) Move(b *isolation.Board, deadline time.Time) (isolation.Move, error) {
	t := newTimer(deadline, p.Limits)
	me := b.ActivePlayer()

	best := isolation.NoMove
	bestScore := 0.0
	for _, m := range b.LegalMoves() {
		child := b.Copy()
		if err := child.ApplyMove(m); err != nil {
			return isolation.NoMove, err
		}

		v, err := p.minValue(child, me, p.Limits.Depth-1, t)
		if err != nil {
			if best == isolation.NoMove {
				return isolation.NoMove, err
			}
			break
		}
		if best == isolation.NoMove || v > bestScore {
			best, bestScore = m, v
		}
	}
	return best, nil
}

func (p *MinimaxPlayer) minValue(b *isolation.Board, me isolation.Player, depth int, t timer) (float64, error) {
	if t.IsEnd() {
		return 0, isolation.ErrTimeout
	}

	moves := b.LegalMoves()
	if depth <= 0 || len(moves) == 0 {
		return p.Score(b, me), nil
	}

	best := 0.0
	for i, m := range moves {
		child := b.Copy()
		if err := child.ApplyMove(m); err != nil {
			return 0, err
		}

		v, err := p.maxValue(child, me, depth-1, t)
		if err != nil {
			return 0, err
		}
		if i == 0 || v < best {
			best = v
		}
	}
	return best, nil
}

func (p *MinimaxPlayer) maxValue(b *isolation.Board, me isolation.Player, depth int, t timer) (float64, error) {
	if t.IsEnd() {
		return 0, isolation.ErrTimeout
	}

	moves := b.LegalMoves()
	if depth <= 0 || len(moves) == 0 {
		return p.Score(b, me), nil
	}

	best := 0.0
	for i, m := range moves {
		child := b.Copy()
		if err := child.ApplyMove(m); err != nil {
			return 0, err
		}

		v, err := p.minValue(child, me, depth-1, t)
		if err != nil {
			return 0, err
		}
		if i == 0 || v > best {
			best = v
		}
	}
	return best, nil
}
