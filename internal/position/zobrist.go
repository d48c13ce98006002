package position

import (
	. "github.com/corvid/corvid/internal/types"
)

// Key is the Zobrist hash used for repetition detection and transposition
// table keying.
type Key uint64

// xorShift64 is a minimal seedable PRNG used only to deterministically
// generate the Zobrist key tables at package init; not used anywhere on
// the search hot path.
type xorShift64 struct{ x uint64 }

func (r *xorShift64) next() uint64 {
	r.x ^= r.x << 13
	r.x ^= r.x >> 7
	r.x ^= r.x << 17
	return r.x
}

const zobristSeed uint64 = 0x9E3779B97F4A7C15

var zobrist struct {
	pieceSquare [PieceLength][SqLength]Key
	sideToMove  Key
	castling    [16]Key
	enPassant   [FileLength]Key
}

func initZobrist() {
	rng := xorShift64{x: zobristSeed}
	for p := WhitePawn; p < PieceLength; p++ {
		for sq := SqA1; sq < SqNone; sq++ {
			zobrist.pieceSquare[p][sq] = Key(rng.next())
		}
	}
	zobrist.sideToMove = Key(rng.next())
	for i := range zobrist.castling {
		zobrist.castling[i] = Key(rng.next())
	}
	for f := FileA; f < FileLength; f++ {
		zobrist.enPassant[f] = Key(rng.next())
	}
}

func init() {
	initZobrist()
}

func zobristPieceSquare(p Piece, sq Square) Key {
	return zobrist.pieceSquare[p][sq]
}

func zobristCastling(c CastlingRights) Key {
	return zobrist.castling[c]
}

func zobristEnPassant(f File) Key {
	return zobrist.enPassant[f]
}
