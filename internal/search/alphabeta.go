package search

import (
	"github.com/corvid/corvid/internal/evaluator"
	"github.com/corvid/corvid/internal/movegen"
	"github.com/corvid/corvid/internal/position"
	"github.com/corvid/corvid/internal/tt"
	. "github.com/corvid/corvid/internal/types"
)

// alphaBeta is the fail-hard negamax driver (spec §4.8). It returns the
// score from the side-to-move's point of view at the node entered with
// (depth, ply, alpha, beta).
func (s *Search) alphaBeta(pos *position.Position, depth, ply int, alpha, beta Value, st stopper) Value {
	if st.shouldStop(s.nodes) {
		s.stopFlag.Store(true)
		return 0
	}

	if ply > 0 && (pos.IsFiftyMoveDraw() || pos.IsRepetitionDraw(1)) {
		return 0
	}

	mover := pos.SideToMove()
	inCheck := pos.IsInCheck(mover)

	if depth <= 0 {
		if inCheck {
			depth = 1
		} else {
			return s.quiescence(pos, alpha, beta, ply, st)
		}
	}

	if ply > s.seldepth {
		s.seldepth = ply
	}

	key := pos.ZobristKey()
	origAlpha := alpha
	ttMove := MoveNone
	if entry, found := s.table.Probe(key); found {
		ttMove = entry.Move()
		if entry.Depth() >= depth {
			value := tt.FromStorage(entry.Value(), ply)
			switch entry.Bound() {
			case tt.Exact:
				return value
			case tt.Lower:
				if value >= beta {
					return beta
				}
			case tt.Upper:
				if value <= alpha {
					return alpha
				}
			}
		}
	}

	ml := movegen.GenerateAll(pos)
	if ttMove != MoveNone && !containsMove(ml, ttMove) {
		ttMove = MoveNone
	}

	legalMoves := 0
	bestMove := MoveNone

	tryMove := func(m Move) (Value, bool) {
		pos.DoMove(m)
		if pos.IsInCheck(mover) {
			pos.UndoMove()
			return 0, false
		}
		legalMoves++
		s.nodes++
		// Reset the child's PV slot fresh for every sibling so a deep,
		// ultimately-rejected subtree can't leave stale moves behind for
		// the next candidate to inherit when it becomes the new best.
		s.pv.reset(ply + 1)
		v := -s.alphaBeta(pos, depth-1, ply+1, -beta, -alpha, st)
		pos.UndoMove()
		return v, true
	}

	if ttMove != MoveNone {
		if v, ok := tryMove(ttMove); ok {
			if v >= beta {
				s.recordCutoff(key, depth, beta, ttMove, ply, pos)
				return beta
			}
			if v > alpha {
				alpha = v
				bestMove = ttMove
				s.pv.update(ply, ttMove)
			}
		}
	}

	if alpha < beta || legalMoves == 0 {
		picker := newMovePicker(pos, ml, ply, ttMove, s.killers, s.history)
		for {
			m, ok := picker.Next()
			if !ok {
				break
			}
			v, legal := tryMove(m)
			if !legal {
				continue
			}
			if s.stopFlag.Load() {
				return 0
			}
			if v >= beta {
				s.recordCutoff(key, depth, beta, m, ply, pos)
				return beta
			}
			if v > alpha {
				alpha = v
				bestMove = m
				s.pv.update(ply, m)
			}
		}
	}

	if legalMoves == 0 {
		if inCheck {
			return -MateValue + Value(ply)
		}
		return 0
	}

	bound := tt.Upper
	if alpha > origAlpha {
		bound = tt.Exact
	}
	s.table.Store(key, depth, tt.ToStorage(alpha, ply), bound, bestMove, ValueZero)

	return alpha
}

// recordCutoff stores the beta-cutoff bound and, for a quiet move, rewards
// it in the killer/history tables (spec §4.8 step 6). pos must be in the
// pre-move position (i.e. already undone) so PieceAt(m.To()) reflects
// whether m was a capture.
func (s *Search) recordCutoff(key position.Key, depth int, beta Value, m Move, ply int, pos *position.Position) {
	s.table.Store(key, depth, tt.ToStorage(beta, ply), tt.Lower, m, ValueZero)
	if pos.PieceAt(m.To()) != PieceNone || m.MoveType() == EnPassant || m.MoveType() == Promotion {
		return
	}
	s.killers.store(ply, m)
	s.history.update(pos.PieceAt(m.From()), m.To(), historyBonus(depth))
}

// quiescence searches only captures, en-passant and promotions to avoid
// the horizon effect at the end of the main search (spec §4.8).
func (s *Search) quiescence(pos *position.Position, alpha, beta Value, ply int, st stopper) Value {
	if st.shouldStop(s.nodes) {
		s.stopFlag.Store(true)
		return 0
	}
	s.nodes++
	if ply > s.seldepth {
		s.seldepth = ply
	}

	standPat := evaluator.Evaluate(pos)
	if standPat >= beta {
		return beta
	}
	if standPat > alpha {
		alpha = standPat
	}

	mover := pos.SideToMove()
	ml := movegen.GenerateNonQuiets(pos)
	picker := newMovePicker(pos, ml, ply, MoveNone, s.killers, s.history)
	for {
		m, ok := picker.Next()
		if !ok {
			break
		}
		pos.DoMove(m)
		if pos.IsInCheck(mover) {
			pos.UndoMove()
			continue
		}
		v := -s.quiescence(pos, -beta, -alpha, ply+1, st)
		pos.UndoMove()

		if s.stopFlag.Load() {
			return 0
		}
		if v >= beta {
			return beta
		}
		if v > alpha {
			alpha = v
		}
	}
	return alpha
}

func containsMove(ml *movegen.MoveList, m Move) bool {
	for _, x := range ml.Slice() {
		if x == m {
			return true
		}
	}
	return false
}
