package arena

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

// Tournament parameters. Zero values fall back to the classic setup:
// 7x7 board, 5 fair matches per pairing, 150ms per move.
type Config struct {
	Width      int
	Height     int
	MatchCount int
	MoveTime   time.Duration

	// Play each opponent's game sequence in its own goroutine. Games within
	// one sequence stay ordered; the fairness invariants are unaffected since
	// every game owns its board and the shared openings are read-only.
	Parallel bool
}

const (
	DefaultWidth      = 7
	DefaultHeight     = 7
	DefaultMatchCount = 5
	DefaultMoveTime   = 150 * time.Millisecond
)

func (c Config) withDefaults() Config {
	if c.Width == 0 {
		c.Width = DefaultWidth
	}
	if c.Height == 0 {
		c.Height = DefaultHeight
	}
	if c.MatchCount == 0 {
		c.MatchCount = DefaultMatchCount
	}
	if c.MoveTime == 0 {
		c.MoveTime = DefaultMoveTime
	}
	return c
}

var ErrTallyMismatch = errors.New("win tally does not match games played")

// PlayFairRound pits every opponent against the same anchor in the same fair
// matches and plays them all to completion. The returned win counts include
// the anchor and carry an entry for every opponent, even those that never
// won. Any game failure aborts the round: a partial round has no fairness
// guarantee, so nothing is returned.
func PlayFairRound(anchor Competitor, opponents []Competitor, cfg Config, listener Listener) (WinCounts, LossReasonCounts, error) {
	cfg = cfg.withDefaults()
	if listener == nil {
		listener = NopListener{}
	}

	wins := make(WinCounts, len(opponents)+1)
	wins[anchor] = 0
	for _, opp := range opponents {
		wins[opp] = 0
	}
	reasons := make(LossReasonCounts)

	schedule := ScheduleFairRound(anchor, opponents, cfg.MatchCount, cfg.Width, cfg.Height)

	var err error
	if cfg.Parallel {
		err = playScheduleParallel(anchor, schedule, cfg, listener, wins, reasons)
	} else {
		err = playSchedule(anchor, schedule, cfg, listener, wins, reasons)
	}
	if err != nil {
		return nil, nil, err
	}

	if want := 2 * cfg.MatchCount * len(opponents); wins.Total() != want {
		return nil, nil, fmt.Errorf("round %s: %d wins for %d games: %w",
			anchor, wins.Total(), want, ErrTallyMismatch)
	}
	return wins, reasons, nil
}

func playSchedule(anchor Competitor, schedule ScheduleSeq, cfg Config, listener Listener,
	wins WinCounts, reasons LossReasonCounts) error {

	for games, err := range schedule {
		if err != nil {
			return err
		}
		for i, g := range games {
			winner, loser, reason, err := g.Play(cfg.MoveTime)
			if err != nil {
				return err
			}

			wins.Add(winner, 1)
			reasons.Add(reason, 1)
			listener.OnGameFinished(GameRecord{
				Anchor:    anchor,
				Opponent:  g.OpponentOf(anchor),
				GameIndex: i,
				Winner:    winner,
				Loser:     loser,
				Reason:    reason,
			})
		}
	}
	return nil
}

// Parallel variant: one goroutine per opponent sequence. Tallies are folded
// under a mutex, which also serializes listener callbacks.
func playScheduleParallel(anchor Competitor, schedule ScheduleSeq, cfg Config, listener Listener,
	wins WinCounts, reasons LossReasonCounts) error {

	var mu sync.Mutex
	group := errgroup.Group{}

	for games, err := range schedule {
		if err != nil {
			return err
		}

		group.Go(func() error {
			localWins := make(WinCounts)
			localReasons := make(LossReasonCounts)
			records := make([]GameRecord, 0, len(games))

			for i, g := range games {
				winner, loser, reason, err := g.Play(cfg.MoveTime)
				if err != nil {
					return err
				}

				localWins.Add(winner, 1)
				localReasons.Add(reason, 1)
				records = append(records, GameRecord{
					Anchor:    anchor,
					Opponent:  g.OpponentOf(anchor),
					GameIndex: i,
					Winner:    winner,
					Loser:     loser,
					Reason:    reason,
				})
			}

			mu.Lock()
			defer mu.Unlock()
			wins.Merge(localWins)
			reasons.Merge(localReasons)
			for _, rec := range records {
				listener.OnGameFinished(rec)
			}
			return nil
		})
	}
	return group.Wait()
}
