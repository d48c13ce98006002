package evaluator

import (
	"github.com/corvid/corvid/internal/position"
	. "github.com/corvid/corvid/internal/types"
)

func material(c Color, pos *position.Position) Score {
	var total Value
	for pt := Pawn; pt <= King; pt++ {
		count := Value(pos.PiecesBb(c, pt).PopCount())
		total += count * PieceWeights[pt]
	}
	return Score{Mg: total, Eg: total}
}

func psqt(c Color, pos *position.Position) Score {
	var s Score
	for i, pt := range []PieceType{Pawn, Knight, Bishop, Rook, Queen} {
		table := psqtNonKing[i]
		for bb := pos.PiecesBb(c, pt); bb != BbZero; {
			sq := bb.PopLsb()
			v := table[psqtSquare(c, sq)]
			s.Mg += v
			s.Eg += v
		}
	}
	if kingBb := pos.PiecesBb(c, King); kingBb != BbZero {
		sq := psqtSquare(c, kingBb.Lsb())
		s.Mg += kingPsqtMg[sq]
		s.Eg += kingPsqtEg[sq]
	}
	return s
}
