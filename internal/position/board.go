// Package position implements the chess board and position state machine:
// piece placement, castling rights, en-passant, move counters and the
// Zobrist key, with reversible make/unmake and FEN (de)serialization.
package position

import (
	. "github.com/corvid/corvid/internal/types"
)

// Board holds raw piece placement: one bitboard per piece, one per color,
// and a mailbox for O(1) piece-at-square lookups. Board alone says nothing
// about whose move it is or what rights remain — that is Position's job.
type Board struct {
	pieces  [PieceLength]Bitboard
	colors  [ColorLength]Bitboard
	mailbox [SqLength]Piece
}

func newEmptyBoard() Board {
	b := Board{}
	for sq := SqA1; sq < SqNone; sq++ {
		b.mailbox[sq] = PieceNone
	}
	return b
}

// Put places p on sq. sq must be empty; callers clear it first if not.
func (b *Board) Put(p Piece, sq Square) {
	b.pieces[p] = b.pieces[p].Push(sq)
	b.colors[p.ColorOf()] = b.colors[p.ColorOf()].Push(sq)
	b.mailbox[sq] = p
}

// Remove clears whichever piece occupies sq. No-op if sq is empty.
func (b *Board) Remove(sq Square) {
	p := b.mailbox[sq]
	if p == PieceNone {
		return
	}
	b.pieces[p] = b.pieces[p].Pop(sq)
	b.colors[p.ColorOf()] = b.colors[p.ColorOf()].Pop(sq)
	b.mailbox[sq] = PieceNone
}

// PieceAt returns the piece occupying sq, or PieceNone.
func (b *Board) PieceAt(sq Square) Piece {
	return b.mailbox[sq]
}

// PieceBb returns the bitboard of every square holding piece p.
func (b *Board) PieceBb(p Piece) Bitboard {
	return b.pieces[p]
}

// PiecesBb returns the bitboard of pieces of type pt owned by color c.
// Satisfies attacks.Occupancy.
func (b *Board) PiecesBb(c Color, pt PieceType) Bitboard {
	return b.pieces[MakePiece(c, pt)]
}

// ColorBb returns every square occupied by color c.
func (b *Board) ColorBb(c Color) Bitboard {
	return b.colors[c]
}

// OccupiedAll returns every occupied square. Satisfies attacks.Occupancy.
func (b *Board) OccupiedAll() Bitboard {
	return b.colors[White] | b.colors[Black]
}
