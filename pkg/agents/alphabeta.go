package agents

import (
	"math"
	"time"

	"github.com/knightsmove/isolation/pkg/isolation"
)

// AlphaBetaPlayer runs iterative deepening alpha-beta search within its time
// budget, returning the best move of the deepest fully completed iteration.
type AlphaBetaPlayer struct {
	Score  ScoreFn
	Limits *Limits
}

const defaultAlphaBetaMovetime = 150

func NewAlphaBetaPlayer(score ScoreFn) *AlphaBetaPlayer {
	return &AlphaBetaPlayer{
		Score:  score,
		Limits: DefaultLimits().SetMovetime(defaultAlphaBetaMovetime),
	}
}

func (p *AlphaBetaPlayer) Move(b *isolation.Board, deadline time.Time) (isolation.Move, error) {
	t := newTimer(deadline, p.Limits)

	// Depth can never exceed the number of cells
	maxDepth := min(p.Limits.Depth, b.Width()*b.Height())

	best := isolation.NoMove
	for depth := 1; depth <= maxDepth; depth++ {
		move, err := p.searchRoot(b, depth, t)
		if err != nil {
			break
		}
		best = move
	}

	if best == isolation.NoMove && t.IsEnd() {
		return isolation.NoMove, isolation.ErrTimeout
	}
	return best, nil
}

func (p *AlphaBetaPlayer) searchRoot(b *isolation.Board, depth int, t timer) (isolation.Move, error) {
	me := b.ActivePlayer()
	alpha := math.Inf(-1)
	beta := math.Inf(1)

	best := isolation.NoMove
	for _, m := range b.LegalMoves() {
		child := b.Copy()
		if err := child.ApplyMove(m); err != nil {
			return isolation.NoMove, err
		}

		v, err := p.alphabeta(child, me, depth-1, alpha, beta, false, t)
		if err != nil {
			return isolation.NoMove, err
		}
		if best == isolation.NoMove || v > alpha {
			best, alpha = m, v
		}
	}
	return best, nil
}

func (p *AlphaBetaPlayer) alphabeta(b *isolation.Board, me isolation.Player, depth int,
	alpha, beta float64, maximizing bool, t timer) (float64, error) {

	if t.IsEnd() {
		return 0, isolation.ErrTimeout
	}

	moves := b.LegalMoves()
	if depth <= 0 || len(moves) == 0 {
		return p.Score(b, me), nil
	}

	if maximizing {
		v := math.Inf(-1)
		for _, m := range moves {
			child := b.Copy()
			if err := child.ApplyMove(m); err != nil {
				return 0, err
			}

			s, err := p.alphabeta(child, me, depth-1, alpha, beta, false, t)
			if err != nil {
				return 0, err
			}
			v = max(v, s)
			if v >= beta {
				break
			}
			alpha = max(alpha, v)
		}
		return v, nil
	}

	v := math.Inf(1)
	for _, m := range moves {
		child := b.Copy()
		if err := child.ApplyMove(m); err != nil {
			return 0, err
		}

		s, err := p.alphabeta(child, me, depth-1, alpha, beta, true, t)
		if err != nil {
			return 0, err
		}
		v = min(v, s)
		if v <= alpha {
			break
		}
		beta = min(beta, v)
	}
	return v, nil
}
