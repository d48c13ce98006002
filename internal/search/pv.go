package search

import . "github.com/corvid/corvid/internal/types"

// pvTable is a triangular principal-variation table indexed by ply: row
// ply holds the best line found from that ply down (spec §4.8 "Principal
// variation: a triangular table indexed by ply").
type pvTable struct {
	line   [MaxDepth + 1][MaxDepth + 1]Move
	length [MaxDepth + 1]int
}

func newPvTable() *pvTable {
	return &pvTable{}
}

// update records m as the best move at ply and prepends it to the child
// line collected one ply deeper, on an exact (alpha-raising) result.
func (pv *pvTable) update(ply int, m Move) {
	pv.line[ply][0] = m
	childLen := pv.length[ply+1]
	copy(pv.line[ply][1:1+childLen], pv.line[ply+1][:childLen])
	pv.length[ply] = childLen + 1
}

// reset empties the line collected at ply; rows below it are left as they
// are. alphaBeta calls it for ply+1 before searching each child, and
// iterative deepening for ply 0 before each iteration.
func (pv *pvTable) reset(ply int) {
	pv.length[ply] = 0
}

// Root returns the full principal variation collected at the root.
func (pv *pvTable) Root() []Move {
	return append([]Move(nil), pv.line[0][:pv.length[0]]...)
}
