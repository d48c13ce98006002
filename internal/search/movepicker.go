package search

import (
	"github.com/corvid/corvid/internal/movegen"
	"github.com/corvid/corvid/internal/position"
	. "github.com/corvid/corvid/internal/types"
)

// Move-ordering score bands (spec §4.7): smaller is better, so the
// move picker is a stable min-selection over these bands. There is no band
// for the TT move: the caller tries it before building the picker, and the
// picker skips it. Captures score at most -9_995, so promotions sort after
// every capture and before the killers.
const (
	promotionScore = 0
	killer1Score   = 10_000
	killer2Score   = 10_001
	quietBase      = 20_000
)

// movePicker yields moves from a single pseudo-legal move list in staged
// order: TT move first (handled by the caller), then by ascending score
// here — captures by MVV/LVA, non-capture promotions, killers, quiets by
// history (spec §4.7).
type movePicker struct {
	moves  []Move
	scores []int32
	next   int
}

// newMovePicker scores every move in ml against pos/ply/killers/history.
// ttMove is excluded from scoring entirely (and from re-emission) since
// the caller has already tried it.
func newMovePicker(pos *position.Position, ml *movegen.MoveList, ply int, ttMove Move, killers *killerTable, history *historyTable) *movePicker {
	n := ml.Len()
	mp := &movePicker{
		moves:  make([]Move, 0, n),
		scores: make([]int32, 0, n),
	}
	k1, k2 := killers.first(ply), killers.second(ply)
	for _, m := range ml.Slice() {
		if m == ttMove {
			continue
		}
		mp.moves = append(mp.moves, m)
		mp.scores = append(mp.scores, scoreMove(pos, m, k1, k2, history))
	}
	return mp
}

func scoreMove(pos *position.Position, m Move, k1, k2 Move, history *historyTable) int32 {
	victim := pos.PieceAt(m.To())
	isCapture := victim != PieceNone || m.MoveType() == EnPassant
	if isCapture {
		attacker := pos.PieceAt(m.From())
		victimType := victim.TypeOf()
		if m.MoveType() == EnPassant {
			victimType = Pawn
		}
		mvv := int32(PieceWeights[victimType])
		lva := int32(attacker.TypeOf())
		return -mvv*100 + lva
	}
	if m.MoveType() == Promotion {
		return promotionScore
	}
	switch m {
	case k1:
		return killer1Score
	case k2:
		return killer2Score
	}
	return quietBase - history.get(pos.PieceAt(m.From()), m.To())
}

// Next performs one step of selection sort, returning the best-scored
// remaining move, or (MoveNone, false) once the list is exhausted. This
// keeps the common case — an early beta cutoff — from paying for a full
// sort of moves it never looks at.
func (mp *movePicker) Next() (Move, bool) {
	if mp.next >= len(mp.moves) {
		return MoveNone, false
	}
	best := mp.next
	for i := mp.next + 1; i < len(mp.moves); i++ {
		if mp.scores[i] < mp.scores[best] {
			best = i
		}
	}
	mp.moves[mp.next], mp.moves[best] = mp.moves[best], mp.moves[mp.next]
	mp.scores[mp.next], mp.scores[best] = mp.scores[best], mp.scores[mp.next]
	m := mp.moves[mp.next]
	mp.next++
	return m, true
}
