package isolation

import (
	"fmt"
	"strings"
	"time"
)

// A player of Isolation, registered with a Board. The board passes a copy of
// itself to the player, so the player may freely mutate it during search.
// The deadline bounds the search for this single move; returning ErrTimeout
// (wrapped or bare) loses the game by timeout, any other error aborts play.
type Player interface {
	Move(b *Board, deadline time.Time) (Move, error)
}

// Relative jumps a placed player may make, same L-shape as a chess knight
var knightJumps = [8]Move{
	{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2},
	{1, -2}, {1, 2}, {2, -1}, {2, 1},
}

// Board holds the state of one game of Isolation: a width x height grid of
// cells that become permanently blocked as they are visited, and two
// registered players that alternate moves. The zero-indexed player moved
// first. Players may be nil for boards used only to sample openings.
type Board struct {
	width, height int
	blocked       []bool
	players       [2]Player
	loc           [2]Move
	active        int
	moveCount     int
}

// Create a new empty board, player1 has the first move
func NewBoard(player1, player2 Player, width, height int) *Board {
	return &Board{
		width:   width,
		height:  height,
		blocked: make([]bool, width*height),
		players: [2]Player{player1, player2},
		loc:     [2]Move{NoMove, NoMove},
	}
}

func (b *Board) Width() int  { return b.width }
func (b *Board) Height() int { return b.height }

// Number of moves applied to this board since creation
func (b *Board) MoveCount() int { return b.moveCount }

func (b *Board) ActivePlayer() Player   { return b.players[b.active] }
func (b *Board) InactivePlayer() Player { return b.players[b.active^1] }

// The player registered with the first move
func (b *Board) FirstPlayer() Player { return b.players[0] }

// The player registered with the second move
func (b *Board) SecondPlayer() Player { return b.players[1] }

// Current location of the given player, false if not yet placed
func (b *Board) Location(p Player) (Move, bool) {
	idx, ok := b.indexOf(p)
	if !ok || b.loc[idx] == NoMove {
		return NoMove, false
	}
	return b.loc[idx], true
}

func (b *Board) indexOf(p Player) (int, bool) {
	if b.players[0] == p {
		return 0, true
	}
	if b.players[1] == p {
		return 1, true
	}
	return 0, false
}

func (b *Board) inBounds(m Move) bool {
	return m.Row >= 0 && int(m.Row) < b.height && m.Col >= 0 && int(m.Col) < b.width
}

func (b *Board) isOpen(m Move) bool {
	return b.inBounds(m) && !b.blocked[int(m.Row)*b.width+int(m.Col)]
}

// Generate all legal moves for the active player
func (b *Board) LegalMoves() []Move {
	return b.legalMovesAt(b.active)
}

// Generate all legal moves for the given registered player. Returns an empty
// slice for players this board does not know about.
func (b *Board) LegalMovesFor(p Player) []Move {
	idx, ok := b.indexOf(p)
	if !ok {
		return nil
	}
	return b.legalMovesAt(idx)
}

func (b *Board) legalMovesAt(idx int) []Move {
	ml := NewMoveList(b.width * b.height)

	// A player not yet on the board may open anywhere
	if b.loc[idx] == NoMove {
		for r := int8(0); int(r) < b.height; r++ {
			for c := int8(0); int(c) < b.width; c++ {
				if b.isOpen(Move{r, c}) {
					ml.Append(r, c)
				}
			}
		}
		return ml.Slice()
	}

	from := b.loc[idx]
	for _, d := range knightJumps {
		to := Move{from.Row + d.Row, from.Col + d.Col}
		if b.isOpen(to) {
			ml.Append(to.Row, to.Col)
		}
	}
	return ml.Slice()
}

// Apply a move for the active player, blocking the target cell and handing
// the turn to the other player. The move must be legal in the current position.
func (b *Board) ApplyMove(m Move) error {
	ml := MoveList{moves: b.LegalMoves()}
	if !ml.Contains(m) {
		return fmt.Errorf("apply %v: %w", m, ErrIllegalMove)
	}

	b.blocked[int(m.Row)*b.width+int(m.Col)] = true
	b.loc[b.active] = m
	b.active ^= 1
	b.moveCount++
	return nil
}

// The set of cells rendered illegal so far, the board's footprint
func (b *Board) Occupied() map[Move]bool {
	occ := make(map[Move]bool)
	for r := int8(0); int(r) < b.height; r++ {
		for c := int8(0); int(c) < b.width; c++ {
			if b.blocked[int(r)*b.width+int(c)] {
				occ[Move{r, c}] = true
			}
		}
	}
	return occ
}

// Whether the given player is to move and has no moves left
func (b *Board) IsLoser(p Player) bool {
	return b.ActivePlayer() == p && len(b.LegalMoves()) == 0
}

// Whether the given player's opponent is to move and has no moves left
func (b *Board) IsWinner(p Player) bool {
	return b.InactivePlayer() == p && len(b.LegalMoves()) == 0
}

// Deep copy of the board sharing the registered player objects
func (b *Board) Copy() *Board {
	nb := *b
	nb.blocked = make([]bool, len(b.blocked))
	copy(nb.blocked, b.blocked)
	return &nb
}

func (b *Board) String() string {
	sb := strings.Builder{}
	for r := int8(0); int(r) < b.height; r++ {
		for c := int8(0); int(c) < b.width; c++ {
			m := Move{r, c}
			switch {
			case b.loc[0] == m:
				sb.WriteString("1 ")
			case b.loc[1] == m:
				sb.WriteString("2 ")
			case b.blocked[int(r)*b.width+int(c)]:
				sb.WriteString("x ")
			default:
				sb.WriteString(". ")
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
