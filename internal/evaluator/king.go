package evaluator

import (
	"github.com/corvid/corvid/internal/position"
	. "github.com/corvid/corvid/internal/types"
)

const (
	pawnShieldClose = 12
	pawnShieldFar   = 6
)

type shieldMasks struct{ close, far Bitboard }

var pawnShields [ColorLength][SqLength]shieldMasks

func init() {
	for sq := SqA1; sq < SqNone; sq++ {
		r := sq.RankOf()
		f := sq.FileOf()

		buildFor := func(c Color) shieldMasks {
			var closeRank, farRank Rank
			haveClose, haveFar := false, false
			if c == White {
				if r < Rank8 {
					closeRank, haveClose = r+1, true
				}
				if r < Rank7 {
					farRank, haveFar = r+2, true
				}
			} else {
				if r > Rank1 {
					closeRank, haveClose = r-1, true
				}
				if r > Rank2 {
					farRank, haveFar = r-2, true
				}
			}
			var m shieldMasks
			for _, df := range [3]int{-1, 0, 1} {
				nf := int(f) + df
				if nf < 0 || nf > int(FileH) {
					continue
				}
				if haveClose {
					m.close = m.close.Push(SquareOf(File(nf), closeRank))
				}
				if haveFar {
					m.far = m.far.Push(SquareOf(File(nf), farRank))
				}
			}
			return m
		}

		pawnShields[White][sq] = buildFor(White)
		pawnShields[Black][sq] = buildFor(Black)
	}
}

// kingShield applies only when the king has left the central files, same
// as the pawn-storm-facing flank check every simple evaluator makes.
func kingShield(c Color, pos *position.Position) Score {
	kingBb := pos.PiecesBb(c, King)
	if kingBb == BbZero {
		return Score{}
	}
	sq := kingBb.Lsb()
	f := sq.FileOf()
	if f >= FileD && f <= FileE {
		return Score{}
	}

	masks := pawnShields[c][sq]
	pawns := pos.PiecesBb(c, Pawn)
	closePawns := Value((pawns & masks.close).PopCount())
	farPawns := Value((pawns & masks.far).PopCount())
	return Score{Mg: closePawns*pawnShieldClose + farPawns*pawnShieldFar}
}
