package agents

import (
	"math"

	"github.com/knightsmove/isolation/pkg/isolation"
)

// Evaluation of a position from the given player's perspective, higher is
// better. Decided positions score +-Inf.
type ScoreFn func(b *isolation.Board, p isolation.Player) float64

// Terminal check shared by all heuristics. Returns (score, true) when the
// position is already decided for p.
func terminalScore(b *isolation.Board, p isolation.Player) (float64, bool) {
	if b.IsLoser(p) {
		return math.Inf(-1), true
	}
	if b.IsWinner(p) {
		return math.Inf(1), true
	}
	return 0, false
}

// Number of moves open to the player
func OpenMoveScore(b *isolation.Board, p isolation.Player) float64 {
	if s, done := terminalScore(b, p); done {
		return s
	}
	return float64(len(b.LegalMovesFor(p)))
}

// Negated squared distance from the center of the board, prefers staying central
func CenterScore(b *isolation.Board, p isolation.Player) float64 {
	if s, done := terminalScore(b, p); done {
		return s
	}

	loc, placed := b.Location(p)
	if !placed {
		return 0
	}

	cr := float64(b.Height()-1) / 2
	cc := float64(b.Width()-1) / 2
	dr := cr - float64(loc.Row)
	dc := cc - float64(loc.Col)
	return -(dr*dr + dc*dc)
}

// Difference between own and opponent mobility
func ImprovedScore(b *isolation.Board, p isolation.Player) float64 {
	if s, done := terminalScore(b, p); done {
		return s
	}

	opp := b.FirstPlayer()
	if opp == p {
		opp = b.SecondPlayer()
	}
	return float64(len(b.LegalMovesFor(p)) - len(b.LegalMovesFor(opp)))
}
