package arena

import "github.com/knightsmove/isolation/pkg/isolation"

// Outcome of a single finished game, delivered to listeners as it happens
type GameRecord struct {
	Anchor    Competitor
	Opponent  Competitor
	GameIndex int // index within the opponent's 2*matchCount sequence
	Winner    Competitor
	Loser     Competitor
	Reason    isolation.LossReason
}

// Listener receives progress callbacks from the tournament driver. With the
// parallel driver, callbacks are serialized, so implementations need no
// locking of their own.
type Listener interface {
	OnTournamentStart(anchors, testAgents []Competitor, matchCount int)
	OnRoundStart(round int, anchor Competitor)
	OnGameFinished(rec GameRecord)
	OnRoundDone(round int, anchor Competitor, wins WinCounts, reasons LossReasonCounts)
	OnTournamentDone(result *Result)
}

// NopListener ignores every callback
type NopListener struct{}

func (NopListener) OnTournamentStart([]Competitor, []Competitor, int)        {}
func (NopListener) OnRoundStart(int, Competitor)                             {}
func (NopListener) OnGameFinished(GameRecord)                                {}
func (NopListener) OnRoundDone(int, Competitor, WinCounts, LossReasonCounts) {}
func (NopListener) OnTournamentDone(*Result)                                 {}
