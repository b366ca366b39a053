package isolation

import "slices"

type MoveList struct {
	moves []Move
}

// Make a new move list struct, sized for the given board
func NewMoveList(capacity int) *MoveList {
	return &MoveList{moves: make([]Move, 0, capacity)}
}

// Reset the movelist, keeps the backing array
func (ml *MoveList) Clear() {
	ml.moves = ml.moves[:0]
}

// Get the actual slice of valid moves
func (ml *MoveList) Slice() []Move {
	return ml.moves
}

func (ml *MoveList) Size() int {
	return len(ml.moves)
}

// Appends a new move to the list of moves
func (ml *MoveList) Append(row, col int8) {
	ml.moves = append(ml.moves, Move{Row: row, Col: col})
}

func (ml *MoveList) Contains(m Move) bool {
	return slices.Contains(ml.moves, m)
}
