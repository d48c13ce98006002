package evaluator

import (
	"github.com/corvid/corvid/internal/attacks"
	"github.com/corvid/corvid/internal/position"
	. "github.com/corvid/corvid/internal/types"
)

var mobilityWeights = map[PieceType]Score{
	Knight: {Mg: 4, Eg: 4},
	Bishop: {Mg: 4, Eg: 4},
	Rook:   {Mg: 2, Eg: 3},
	Queen:  {Mg: 1, Eg: 2},
}

func mobility(c Color, pos *position.Position) Score {
	own := pos.ColorBb(c)
	occ := pos.OccupiedAll()
	var s Score
	for pt := Knight; pt <= Queen; pt++ {
		w := mobilityWeights[pt]
		for bb := pos.PiecesBb(c, pt); bb != BbZero; {
			sq := bb.PopLsb()
			count := Value((attacks.Get(pt, sq, occ) &^ own).PopCount())
			s.Mg += count * w.Mg
			s.Eg += count * w.Eg
		}
	}
	return s
}
