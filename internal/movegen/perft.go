package movegen

import "github.com/corvid/corvid/internal/position"

// Perft walks every legal move sequence to depth plies and returns the
// node count — the standard correctness benchmark for a move generator
// (spec §9's "deterministic exhaustive enumeration").
func Perft(pos *position.Position, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	var nodes uint64
	for _, m := range GenerateAll(pos).Slice() {
		if !pos.IsLegalMove(m) {
			continue
		}
		pos.DoMove(m)
		nodes += Perft(pos, depth-1)
		pos.UndoMove()
	}
	return nodes
}

// Divide runs Perft one ply per legal root move, useful for isolating a
// move-generation bug against a reference engine's per-move breakdown.
func Divide(pos *position.Position, depth int) map[string]uint64 {
	result := make(map[string]uint64)
	for _, m := range GenerateAll(pos).Slice() {
		if !pos.IsLegalMove(m) {
			continue
		}
		pos.DoMove(m)
		result[m.String()] = Perft(pos, depth-1)
		pos.UndoMove()
	}
	return result
}
