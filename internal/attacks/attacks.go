// Package attacks computes squares threatened by pieces: precomputed
// leaper tables for pawns/knights/kings and magic-bitboard lookups for
// sliding bishops/rooks/queens, plus the reverse query (attackers of a
// square) used throughout move generation and check detection.
package attacks

import (
	. "github.com/corvid/corvid/internal/types"
)

// Occupancy is the minimal read-only view of a board attacks needs: per
// piece-type-and-color bitboards and total occupancy. position.Board
// implements this structurally without attacks ever importing position,
// keeping this package a leaf.
type Occupancy interface {
	PiecesBb(c Color, pt PieceType) Bitboard
	OccupiedAll() Bitboard
}

// Get returns the pseudo-attack set of a piece of type pt standing on sq,
// given the board's total occupancy (ignored for pawn/knight/king).
func Get(pt PieceType, sq Square, occupied Bitboard) Bitboard {
	switch pt {
	case Knight:
		return KnightAttacks(sq)
	case King:
		return KingAttacks(sq)
	case Bishop:
		return BishopAttacks(sq, occupied)
	case Rook:
		return RookAttacks(sq, occupied)
	case Queen:
		return QueenAttacks(sq, occupied)
	default:
		return BbZero
	}
}

// AttackersOf returns every square occupied by a piece of color `by` that
// attacks sq, i.e. the union over piece types of (piece bitboard ∩
// pseudo-attacks from sq for that type) — the reverse-attack trick: ask
// "what would a piece of this type on sq attack" and intersect with where
// the real pieces are.
func AttackersOf(b Occupancy, sq Square, by Color) Bitboard {
	occ := b.OccupiedAll()
	return (PawnAttacks(sq, by.Flip()) & b.PiecesBb(by, Pawn)) |
		(KnightAttacks(sq) & b.PiecesBb(by, Knight)) |
		(KingAttacks(sq) & b.PiecesBb(by, King)) |
		(RookAttacks(sq, occ) & (b.PiecesBb(by, Rook) | b.PiecesBb(by, Queen))) |
		(BishopAttacks(sq, occ) & (b.PiecesBb(by, Bishop) | b.PiecesBb(by, Queen)))
}

// IsAttacked reports whether sq is attacked by any piece of color `by`.
func IsAttacked(b Occupancy, sq Square, by Color) bool {
	return AttackersOf(b, sq, by) != BbZero
}

// IsInCheck reports whether color's king is currently attacked.
func IsInCheck(b Occupancy, color Color) bool {
	kingSq := b.PiecesBb(color, King).Lsb()
	if kingSq == SqNone {
		return false
	}
	return IsAttacked(b, kingSq, color.Flip())
}
