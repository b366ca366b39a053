package arena

import (
	"fmt"
	"time"

	"github.com/knightsmove/isolation/pkg/isolation"
)

// Game binds one board to its two competitors. The board is owned exclusively
// by this Game; it is played to completion exactly once.
type Game struct {
	board  *isolation.Board
	first  Competitor
	second Competitor
}

// Competitor with the first move
func (g *Game) First() Competitor { return g.first }

// Competitor with the second move
func (g *Game) Second() Competitor { return g.second }

// The competitor in this game that is not c
func (g *Game) OpponentOf(c Competitor) Competitor {
	if g.first == c {
		return g.second
	}
	return g.first
}

// The board's occupied-cell footprint
func (g *Game) Footprint() map[isolation.Move]bool {
	return g.board.Occupied()
}

// Play runs the game to completion and maps the winning and losing player
// objects back to their competitors.
func (g *Game) Play(moveTime time.Duration) (winner, loser Competitor, reason isolation.LossReason, err error) {
	w, _, reason, err := g.board.Play(moveTime)
	if err != nil {
		return Competitor{}, Competitor{}, 0, fmt.Errorf("game %s vs %s: %w", g.first, g.second, err)
	}

	if w == g.first.Player {
		return g.first, g.second, reason, nil
	}
	return g.second, g.first, reason, nil
}

// FairMatch is two games built from the same opening moves with initiative
// swapped: competitor A moves first in Games[0], competitor B in Games[1].
type FairMatch struct {
	Games [2]*Game
}

// NewFairMatch builds both halves of a fair match between a and b on fresh
// width x height boards. When opening is empty a new one is sampled; when the
// caller supplies one it is returned unchanged. The identical opening is
// applied move-for-move to both boards, so at creation time the two games
// differ only in which competitor holds the initiative.
func NewFairMatch(a, b Competitor, opening OpeningMoves, width, height int) (*FairMatch, OpeningMoves, error) {
	if len(opening) == 0 {
		var err error
		opening, err = SampleOpening(width, height)
		if err != nil {
			return nil, nil, err
		}
	}

	fm := &FairMatch{Games: [2]*Game{
		{board: isolation.NewBoard(a.Player, b.Player, width, height), first: a, second: b},
		{board: isolation.NewBoard(b.Player, a.Player, width, height), first: b, second: a},
	}}

	for _, m := range opening {
		for _, g := range fm.Games {
			if err := g.board.ApplyMove(m); err != nil {
				return nil, nil, fmt.Errorf("fair match opening: %w", err)
			}
		}
	}
	return fm, opening, nil
}
