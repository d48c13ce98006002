// Package evaluator computes a tapered static evaluation of a position:
// material, piece-square tables, mobility, pawn structure and king safety,
// blended between middlegame and endgame weights by the remaining
// non-pawn material, then flipped to the mover's point of view.
package evaluator

import (
	"github.com/corvid/corvid/internal/position"
	. "github.com/corvid/corvid/internal/types"
)

// Evaluate returns the static score of pos from the side-to-move's point
// of view: positive favors the mover.
func Evaluate(pos *position.Position) Value {
	white := sideScore(White, pos)
	black := sideScore(Black, pos)
	total := white.Sub(black)

	phase := gamePhase(pos)
	v := total.Taper(phase)

	if pos.SideToMove() == Black {
		return -v
	}
	return v
}

func sideScore(c Color, pos *position.Position) Score {
	return material(c, pos).
		Add(psqt(c, pos)).
		Add(mobility(c, pos)).
		Add(pawnStructure(c, pos)).
		Add(kingShield(c, pos))
}

// gamePhase is the non-pawn-material phase, clamped to GamePhaseMax; a
// full set of minor/major pieces on the board gives 24, bare kings give 0.
func gamePhase(pos *position.Position) int {
	phase := 0
	for _, c := range [ColorLength]Color{White, Black} {
		phase += pos.PiecesBb(c, Knight).PopCount()
		phase += pos.PiecesBb(c, Bishop).PopCount()
		phase += pos.PiecesBb(c, Rook).PopCount() * 2
		phase += pos.PiecesBb(c, Queen).PopCount() * 4
	}
	if phase > GamePhaseMax {
		phase = GamePhaseMax
	}
	return phase
}
