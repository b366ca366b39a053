package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/knightsmove/isolation/pkg/agents"
	"github.com/knightsmove/isolation/pkg/arena"
)

var description = `Benchmarks heuristic evaluation functions for Isolation by
playing fixed-depth search agents in a fair round-robin tournament: every test
agent faces the same reference agent in the same randomly drawn matches, with
initiative swapped between both halves of each match. Variation due to
starting position and first-move advantage cancels out, so differences in win
rate can be attributed to the evaluation functions.`

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "arena:", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		width    int
		height   int
		matches  int
		movetime int
		depth    int
		parallel bool
	)

	cmd := &cobra.Command{
		Use:   "arena",
		Short: "Run a fair Isolation tournament between evaluation functions",
		Long:  description,
		Args:  cobra.ExactArgs(0),

		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := arena.Config{
				Width:      width,
				Height:     height,
				MatchCount: matches,
				MoveTime:   time.Duration(movetime) * time.Millisecond,
				Parallel:   parallel,
			}

			anchors := []arena.Competitor{
				arena.NewCompetitor(agents.NewRandomPlayer(), "Random"),
				arena.NewCompetitor(minimax(agents.OpenMoveScore, depth), "MM_Open"),
				arena.NewCompetitor(minimax(agents.CenterScore, depth), "MM_Center"),
				arena.NewCompetitor(minimax(agents.ImprovedScore, depth), "MM_Improved"),
				arena.NewCompetitor(agents.NewAlphaBetaPlayer(agents.OpenMoveScore), "AB_Open"),
				arena.NewCompetitor(agents.NewAlphaBetaPlayer(agents.CenterScore), "AB_Center"),
				arena.NewCompetitor(agents.NewAlphaBetaPlayer(agents.ImprovedScore), "AB_Improved"),
			}

			// The agents under comparison: identical strategies in fresh
			// instances, any spread between their rows is residual noise
			testAgents := []arena.Competitor{
				arena.NewCompetitor(agents.NewAlphaBetaPlayer(agents.ImprovedScore), "AB_Improved"),
				arena.NewCompetitor(agents.NewAlphaBetaPlayer(agents.ImprovedScore), "AB_Improved"),
				arena.NewCompetitor(agents.NewAlphaBetaPlayer(agents.ImprovedScore), "AB_Improved"),
				arena.NewCompetitor(agents.NewAlphaBetaPlayer(agents.ImprovedScore), "AB_Improved"),
			}

			fmt.Fprintln(cmd.OutOrStdout(), description)

			_, err := arena.RunFairTournament(anchors, testAgents, cfg,
				arena.NewTableListener(cmd.OutOrStdout()))
			return err
		},
	}

	cmd.Flags().IntVar(&width, "width", arena.DefaultWidth, "board width")
	cmd.Flags().IntVar(&height, "height", arena.DefaultHeight, "board height")
	cmd.Flags().IntVar(&matches, "matches", arena.DefaultMatchCount, "fair matches per pairing (2 games each)")
	cmd.Flags().IntVar(&movetime, "movetime", int(arena.DefaultMoveTime/time.Millisecond), "time budget per move in milliseconds")
	cmd.Flags().IntVar(&depth, "depth", 3, "search depth for the fixed-depth minimax agents")
	cmd.Flags().BoolVar(&parallel, "parallel", false, "play each opponent's games in parallel")
	return cmd
}

func minimax(score agents.ScoreFn, depth int) *agents.MinimaxPlayer {
	p := agents.NewMinimaxPlayer(score)
	p.Limits.SetDepth(depth)
	return p
}
