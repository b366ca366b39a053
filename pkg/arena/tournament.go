package arena

import (
	"errors"
	"fmt"
)

// Final tournament statistics for the test agents. Read-only once returned;
// the driver never touches it again.
type Result struct {
	TestAgents  []Competitor
	Wins        WinCounts
	LossReasons LossReasonCounts

	// Games every test agent played: 2 * matchCount * number of anchors
	GamesPerAgent int
}

func (r *Result) WinRate(c Competitor) float64 {
	return WinRate(r.Wins[c], r.GamesPerAgent)
}

var ErrNoCompetitors = errors.New("no competitors")

// RunFairTournament plays one fair round per anchor: every test agent faces
// the anchor in the same randomly drawn matches, so within a round the test
// agents are compared under bit-for-bit identical conditions. Different
// rounds draw fresh openings.
//
// The anchors are reference points, not subjects: their wins are dropped from
// each round's tally before it is merged into the tournament totals. Any
// round failure aborts the whole tournament with no result, partial
// statistics are never reported.
func RunFairTournament(anchors, testAgents []Competitor, cfg Config, listener Listener) (*Result, error) {
	cfg = cfg.withDefaults()
	if listener == nil {
		listener = NopListener{}
	}
	if len(anchors) == 0 || len(testAgents) == 0 {
		return nil, fmt.Errorf("run tournament: %w", ErrNoCompetitors)
	}

	totalWins := make(WinCounts, len(testAgents))
	totalReasons := make(LossReasonCounts)

	listener.OnTournamentStart(anchors, testAgents, cfg.MatchCount)

	for i, anchor := range anchors {
		listener.OnRoundStart(i, anchor)

		wins, reasons, err := PlayFairRound(anchor, testAgents, cfg, listener)
		if err != nil {
			return nil, fmt.Errorf("round %d (%s): %w", i+1, anchor, err)
		}

		listener.OnRoundDone(i, anchor, wins, reasons)

		// The anchor's own wins are not test-agent data
		delete(wins, anchor)
		totalWins.Merge(wins)
		totalReasons.Merge(reasons)
	}

	gamesPerAgent := 2 * cfg.MatchCount * len(anchors)
	if totalWins.Total() > gamesPerAgent*len(testAgents) {
		return nil, fmt.Errorf("tournament: %d wins for at most %d games: %w",
			totalWins.Total(), gamesPerAgent*len(testAgents), ErrTallyMismatch)
	}

	result := &Result{
		TestAgents:    testAgents,
		Wins:          totalWins,
		LossReasons:   totalReasons,
		GamesPerAgent: gamesPerAgent,
	}
	listener.OnTournamentDone(result)
	return result, nil
}
