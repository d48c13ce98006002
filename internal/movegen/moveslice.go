// Package movegen enumerates pseudo-legal moves for a position: per-piece
// attack-bitboard moves, pawn pushes/captures/promotions, en-passant and
// fully legality-checked castling. Legality against leaving one's own king
// in check is left to the caller (search), per the generator's contract.
package movegen

import (
	"strings"

	. "github.com/corvid/corvid/internal/types"
)

// MaxMoves bounds the number of pseudo-legal moves any chess position can
// have; used to preallocate move lists so generation never reallocates.
const MaxMoves = 128

// MoveList is a small slice of moves. Each generation call allocates a new
// one with MaxMoves of capacity, so appending to it never reallocates.
type MoveList struct {
	moves []Move
}

// NewMoveList returns an empty list with MaxMoves of backing capacity.
func NewMoveList() *MoveList {
	return &MoveList{moves: make([]Move, 0, MaxMoves)}
}

// Add appends m.
func (ml *MoveList) Add(m Move) {
	ml.moves = append(ml.moves, m)
}

// Clear empties the list without releasing its backing array.
func (ml *MoveList) Clear() {
	ml.moves = ml.moves[:0]
}

// Len returns the number of moves currently held.
func (ml *MoveList) Len() int {
	return len(ml.moves)
}

// At returns the i-th move.
func (ml *MoveList) At(i int) Move {
	return ml.moves[i]
}

// Slice exposes the underlying moves for range iteration.
func (ml *MoveList) Slice() []Move {
	return ml.moves
}

func (ml *MoveList) String() string {
	var sb strings.Builder
	for i, m := range ml.moves {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(m.String())
	}
	return sb.String()
}
