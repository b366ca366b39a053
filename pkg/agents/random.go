package agents

import (
	"math/rand"
	"sync"
	"time"

	"github.com/knightsmove/isolation/pkg/isolation"
)

// RandomPlayer picks a legal move uniformly at random. The mutex keeps it
// safe to share one instance across parallel rounds.
type RandomPlayer struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

func NewRandomPlayer() *RandomPlayer {
	return &RandomPlayer{
		rnd: rand.New(rand.NewSource(isolation.SeedGeneratorFn())),
	}
}

func (p *RandomPlayer) Move(b *isolation.Board, _ time.Time) (isolation.Move, error) {
	moves := b.LegalMoves()
	if len(moves) == 0 {
		return isolation.NoMove, nil
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	return moves[p.rnd.Intn(len(moves))], nil
}
