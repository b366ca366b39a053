package arena

import (
	"fmt"
	"math/rand"

	"github.com/knightsmove/isolation/pkg/isolation"
)

// The two opening moves shared by both halves of a fair match. Read-only
// once sampled.
type OpeningMoves []isolation.Move

// Package RNG for opening sampling, created on first use so tests can pin the
// seed through isolation.SetSeedGeneratorFn first. Opening sampling is part of
// the single-threaded scheduling path and needs no locking.
var openingRand *rand.Rand

func openingRNG() *rand.Rand {
	if openingRand == nil {
		openingRand = rand.New(rand.NewSource(isolation.SeedGeneratorFn()))
	}
	return openingRand
}

// SampleOpening draws two random legal opening moves on a fresh, empty,
// unregistered board of the given dimensions. The first move is applied
// before the second is drawn, so the second pick accounts for the first.
func SampleOpening(width, height int) (OpeningMoves, error) {
	b := isolation.NewBoard(nil, nil, width, height)
	r := openingRNG()

	opening := make(OpeningMoves, 0, 2)
	for i := 0; i < 2; i++ {
		moves := b.LegalMoves()
		if len(moves) == 0 {
			return nil, fmt.Errorf("sample opening on %dx%d board: %w",
				width, height, isolation.ErrNoLegalMoves)
		}

		m := moves[r.Intn(len(moves))]
		if err := b.ApplyMove(m); err != nil {
			return nil, fmt.Errorf("sample opening: %w", err)
		}
		opening = append(opening, m)
	}
	return opening, nil
}
