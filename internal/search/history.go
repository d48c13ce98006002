package search

import . "github.com/corvid/corvid/internal/types"

// historyMax bounds the magnitude of a history table entry so long
// searches can't overflow the gravity update below (spec §3 History).
const historyMax = 16384

// historyTable is the 12x64 (piece, destination square) quiet-move score
// used by the move picker to float well-performing quiets toward the
// front of the list without a costly re-sort (spec §3 History, §4.7).
type historyTable struct {
	score [int(PieceLength)][int(SqLength)]int32
}

func newHistoryTable() *historyTable {
	return &historyTable{}
}

// update applies the "gravity" rule: h += bonus - h*|bonus|/HMAX, which
// both rewards the move and pulls every entry back toward zero so stale
// history decays rather than accumulating forever.
func (h *historyTable) update(p Piece, to Square, bonus int32) {
	v := &h.score[p][to]
	*v += bonus - (*v)*abs32(bonus)/historyMax
}

func (h *historyTable) get(p Piece, to Square) int32 {
	return h.score[p][to]
}

func (h *historyTable) clear() {
	*h = historyTable{}
}

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}

// historyBonus is the depth-scaled reward applied to the move that caused
// a beta cutoff (spec §4.8 step 6: "update history with a depth-scaled
// bonus").
func historyBonus(depth int) int32 {
	b := int32(depth * depth)
	if b > historyMax {
		b = historyMax
	}
	return b
}
