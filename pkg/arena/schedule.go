package arena

import (
	"fmt"
	"iter"
)

// ScheduleFairRound prepares one round: the anchor competitor against every
// opponent, each pairing playing the SAME matchCount fair matches. The
// openings are sampled exactly once up front and reused for every opponent,
// which is what makes the round fair: the i-th game in every opponent's
// sequence starts from an identical position, only the opponent varies.
//
// One round's schedule: a lazy sequence of per-opponent game slices
type ScheduleSeq = iter.Seq2[[]*Game, error]

// The sequence yields one slice of 2*matchCount games per opponent, in
// opponent order, building each opponent's games only when reached. A non-nil
// error terminates the sequence; no further items follow it.
func ScheduleFairRound(anchor Competitor, opponents []Competitor, matchCount, width, height int) ScheduleSeq {
	return func(yield func([]*Game, error) bool) {
		openings := make([]OpeningMoves, matchCount)
		for i := range openings {
			opening, err := SampleOpening(width, height)
			if err != nil {
				yield(nil, fmt.Errorf("schedule round: %w", err))
				return
			}
			openings[i] = opening
		}

		for _, opponent := range opponents {
			games := make([]*Game, 0, 2*matchCount)
			for _, opening := range openings {
				fm, _, err := NewFairMatch(anchor, opponent, opening, width, height)
				if err != nil {
					yield(nil, fmt.Errorf("schedule %s vs %s: %w", anchor, opponent, err))
					return
				}
				games = append(games, fm.Games[0], fm.Games[1])
			}

			if !yield(games, nil) {
				return
			}
		}
	}
}
