package search

import . "github.com/corvid/corvid/internal/types"

// killerTable holds, per ply, the two most recent quiet moves that caused
// a beta cutoff there. The move picker tries these (after captures and
// promotions) on the theory that a move good enough to refute one line is
// often good against a sibling line too (spec §3 Killers, §4.7).
type killerTable struct {
	moves [MaxDepth + 1][2]Move
}

func newKillerTable() *killerTable {
	return &killerTable{}
}

// store pushes m into ply's killer pair, FIFO, suppressing a duplicate of
// the existing first slot.
func (k *killerTable) store(ply int, m Move) {
	if ply < 0 || ply > MaxDepth {
		return
	}
	if k.moves[ply][0] == m {
		return
	}
	k.moves[ply][1] = k.moves[ply][0]
	k.moves[ply][0] = m
}

func (k *killerTable) first(ply int) Move {
	if ply < 0 || ply > MaxDepth {
		return MoveNone
	}
	return k.moves[ply][0]
}

func (k *killerTable) second(ply int) Move {
	if ply < 0 || ply > MaxDepth {
		return MoveNone
	}
	return k.moves[ply][1]
}

func (k *killerTable) clear() {
	*k = killerTable{}
}
