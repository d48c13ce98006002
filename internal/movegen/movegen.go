package movegen

import (
	"github.com/corvid/corvid/internal/attacks"
	"github.com/corvid/corvid/internal/position"
	. "github.com/corvid/corvid/internal/types"
)

// GenerateAll returns every pseudo-legal move for the side to move:
// captures, quiets, promotions, en-passant and (fully-legal-at-generation)
// castling. Whether a move leaves the mover's own king in check is left
// for the caller to resolve via Position.IsLegalMove.
func GenerateAll(pos *position.Position) *MoveList {
	ml := NewMoveList()
	generatePawnMoves(pos, ml, true, true)
	generatePieceMoves(pos, ml, true, true)
	generateKingMoves(pos, ml, true, true)
	generateCastling(pos, ml)
	return ml
}

// GenerateNonQuiets returns captures, en-passant captures and promotions
// only — the move set quiescence search expands.
func GenerateNonQuiets(pos *position.Position) *MoveList {
	ml := NewMoveList()
	generatePawnMoves(pos, ml, true, false)
	generatePieceMoves(pos, ml, true, false)
	generateKingMoves(pos, ml, true, false)
	return ml
}

func generatePawnMoves(pos *position.Position, ml *MoveList, captures, quiets bool) {
	us := pos.SideToMove()
	them := us.Flip()
	occupied := pos.OccupiedAll()
	oppPieces := pos.ColorBb(them)

	promRank := Rank8
	doubleStartRank := Rank2
	if us == Black {
		promRank = Rank1
		doubleStartRank = Rank7
	}

	pawns := pos.PiecesBb(us, Pawn)
	for pawns != BbZero {
		from := pawns.PopLsb()

		if captures {
			caps := attacks.PawnAttacks(from, us) & oppPieces
			for caps != BbZero {
				to := caps.PopLsb()
				addPawnMove(ml, from, to, to.RankOf() == promRank)
			}
			if ep := pos.EnPassantSquare(); ep != SqNone && attacks.PawnAttacks(from, us).Has(ep) {
				ml.Add(NewEnPassantMove(from, ep))
			}
		}

		if quiets {
			one := from.To(us.MoveDirection())
			if one != SqNone && !occupied.Has(one) {
				addPawnMove(ml, from, one, one.RankOf() == promRank)
				if from.RankOf() == doubleStartRank {
					two := one.To(us.MoveDirection())
					if two != SqNone && !occupied.Has(two) {
						ml.Add(NewMove(from, two))
					}
				}
			}
		} else if captures {
			// a non-capturing promotion still counts as a non-quiet move
			one := from.To(us.MoveDirection())
			if one != SqNone && one.RankOf() == promRank && !occupied.Has(one) {
				addPawnMove(ml, from, one, true)
			}
		}
	}
}

func addPawnMove(ml *MoveList, from, to Square, isPromotion bool) {
	if !isPromotion {
		ml.Add(NewMove(from, to))
		return
	}
	ml.Add(NewPromotionMove(from, to, Queen))
	ml.Add(NewPromotionMove(from, to, Rook))
	ml.Add(NewPromotionMove(from, to, Bishop))
	ml.Add(NewPromotionMove(from, to, Knight))
}

func generatePieceMoves(pos *position.Position, ml *MoveList, captures, quiets bool) {
	us := pos.SideToMove()
	occ := pos.OccupiedAll()
	ownPieces := pos.ColorBb(us)
	oppPieces := pos.ColorBb(us.Flip())

	for pt := Knight; pt <= Queen; pt++ {
		pieces := pos.PiecesBb(us, pt)
		for pieces != BbZero {
			from := pieces.PopLsb()
			targets := attacks.Get(pt, from, occ) &^ ownPieces

			if captures {
				caps := targets & oppPieces
				for caps != BbZero {
					to := caps.PopLsb()
					ml.Add(NewMove(from, to))
				}
			}
			if quiets {
				q := targets &^ occ
				for q != BbZero {
					to := q.PopLsb()
					ml.Add(NewMove(from, to))
				}
			}
		}
	}
}

func generateKingMoves(pos *position.Position, ml *MoveList, captures, quiets bool) {
	us := pos.SideToMove()
	kingBb := pos.PiecesBb(us, King)
	if kingBb == BbZero {
		return
	}
	from := kingBb.Lsb()
	ownPieces := pos.ColorBb(us)
	oppPieces := pos.ColorBb(us.Flip())
	occ := pos.OccupiedAll()
	targets := attacks.KingAttacks(from) &^ ownPieces

	if captures {
		caps := targets & oppPieces
		for caps != BbZero {
			to := caps.PopLsb()
			ml.Add(NewMove(from, to))
		}
	}
	if quiets {
		q := targets &^ occ
		for q != BbZero {
			to := q.PopLsb()
			ml.Add(NewMove(from, to))
		}
	}
}

// generateCastling emits castling moves that pass the generation-time
// legality checks spec'd in §4.4: the required right, the intervening
// squares empty, and neither the king's origin, the square it crosses nor
// its destination attacked, so every castling move it emits is legal.
func generateCastling(pos *position.Position, ml *MoveList) {
	us := pos.SideToMove()
	by := us.Flip()
	rights := pos.CastlingRights()
	occ := pos.OccupiedAll()

	if us == White {
		if rights.Has(WhiteKingside) &&
			occ&(SqF1.Bb()|SqG1.Bb()) == BbZero &&
			!pos.IsAttacked(SqE1, by) && !pos.IsAttacked(SqF1, by) && !pos.IsAttacked(SqG1, by) {
			ml.Add(NewCastlingMove(SqE1, SqG1))
		}
		if rights.Has(WhiteQueenside) &&
			occ&(SqB1.Bb()|SqC1.Bb()|SqD1.Bb()) == BbZero &&
			!pos.IsAttacked(SqE1, by) && !pos.IsAttacked(SqD1, by) && !pos.IsAttacked(SqC1, by) {
			ml.Add(NewCastlingMove(SqE1, SqC1))
		}
		return
	}

	if rights.Has(BlackKingside) &&
		occ&(SqF8.Bb()|SqG8.Bb()) == BbZero &&
		!pos.IsAttacked(SqE8, by) && !pos.IsAttacked(SqF8, by) && !pos.IsAttacked(SqG8, by) {
		ml.Add(NewCastlingMove(SqE8, SqG8))
	}
	if rights.Has(BlackQueenside) &&
		occ&(SqB8.Bb()|SqC8.Bb()|SqD8.Bb()) == BbZero &&
		!pos.IsAttacked(SqE8, by) && !pos.IsAttacked(SqD8, by) && !pos.IsAttacked(SqC8, by) {
		ml.Add(NewCastlingMove(SqE8, SqC8))
	}
}

// GenerateLegalMoves is a convenience wrapper for callers (SAN parsing,
// tests) that want fully-legal moves without managing the do/undo filter
// themselves; the search hot path uses GenerateAll and filters each move
// with its own do/check/undo to avoid the extra allocation.
func GenerateLegalMoves(pos *position.Position) *MoveList {
	pseudo := GenerateAll(pos)
	legal := NewMoveList()
	for _, m := range pseudo.Slice() {
		if pos.IsLegalMove(m) {
			legal.Add(m)
		}
	}
	return legal
}
