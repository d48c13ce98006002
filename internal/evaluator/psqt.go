package evaluator

import (
	. "github.com/corvid/corvid/internal/types"
)

// psqtTable holds one value per square for a single piece type, indexed by
// Square (a1=0 .. h8=63) from White's point of view; a Black piece's value
// is looked up at the vertically mirrored square (sq ^ 56).
type psqtTable [64]Value

var psqtNonKing = [5]psqtTable{
	pawnPsqt, knightPsqt, bishopPsqt, rookPsqt, queenPsqt,
}

var pawnPsqt = psqtTable{
	0, 0, 0, 0, 0, 0, 0, 0,
	10, 10, 10, -30, -30, 10, 10, 10,
	10, 10, 10, 30, 40, 10, 10, 10,
	10, 10, 20, 40, 50, 10, 10, 10,
	30, 30, 30, 50, 60, 30, 30, 30,
	50, 50, 50, 60, 70, 50, 50, 50,
	70, 70, 70, 70, 80, 70, 70, 70,
	0, 0, 0, 0, 0, 0, 0, 0,
}

var knightPsqt = psqtTable{
	-25, -15, -15, -15, -15, -15, -15, -25,
	-15, -10, -10, -10, -10, -10, -10, -15,
	-15, -10, 15, 15, 15, 15, -10, -15,
	-15, -10, 15, 15, 15, 15, -10, -15,
	-15, -10, 15, 15, 15, 15, -10, -15,
	-15, -10, 15, 15, 15, 15, -10, -15,
	-15, -10, -10, -10, -10, -10, -10, -15,
	-25, -15, -15, -15, -15, -15, -15, -25,
}

var bishopPsqt = psqtTable{
	-25, -10, -10, -10, -10, -10, -10, -25,
	-15, 10, 5, 10, 10, 5, 10, -15,
	5, 5, 5, 15, 15, 5, 5, 5,
	5, 5, 10, 25, 25, 10, 5, 5,
	-15, 10, 10, 30, 30, 10, 10, -15,
	-15, 0, 0, 5, 5, 0, 0, -15,
	-20, 0, 0, 0, 0, 0, 0, -20,
	-25, 0, 0, 0, 0, 0, 0, -25,
}

var rookPsqt = psqtTable{
	0, 0, 5, 15, 15, 15, 0, 0,
	0, 0, 5, 5, 5, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0,
	20, 20, 20, 30, 30, 20, 20, 20,
	0, 0, 0, 0, 0, 0, 0, 0,
}

var queenPsqt = psqtTable{
	-20, -20, -10, -10, -10, -10, -20, -20,
	-15, -10, -5, -5, -5, -5, -10, -15,
	-10, -5, -5, -5, -5, -5, -5, -10,
	-10, -5, 15, 25, 25, 15, -5, -10,
	-10, -5, 15, 25, 25, 15, -5, -10,
	-10, -5, 15, 15, 15, 15, -5, -10,
	-15, -10, -5, -5, -5, -5, -10, -15,
	-20, -20, -10, -10, -10, -10, -20, -20,
}

var kingPsqtMg = psqtTable{
	20, 30, 40, 0, 0, 10, 40, 20,
	20, 20, 0, 0, 0, 0, 20, 20,
	-10, -20, -20, -20, -20, -20, -20, -10,
	-20, -30, -30, -40, -40, -30, -30, -20,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
}

var kingPsqtEg = psqtTable{
	-50, -40, -30, -20, -20, -30, -40, -50,
	-40, -20, 0, 10, 10, 0, -20, -40,
	-30, 0, 20, 30, 30, 20, 0, -30,
	-20, 10, 30, 40, 40, 30, 10, -20,
	-20, 10, 30, 40, 40, 30, 10, -20,
	-30, 0, 20, 30, 30, 20, 0, -30,
	-40, -20, 0, 10, 10, 0, -20, -40,
	-50, -40, -30, -20, -20, -30, -40, -50,
}

// psqtSquare returns the table index to use for a piece of color c standing
// on sq: the tables above are authored from White's perspective, so Black
// looks up the vertically mirrored square.
func psqtSquare(c Color, sq Square) Square {
	if c == White {
		return sq
	}
	return Square(uint8(sq) ^ 56)
}
