package evaluator

import (
	"github.com/corvid/corvid/internal/position"
	. "github.com/corvid/corvid/internal/types"
)

const (
	doubledMg  = -12
	doubledEg  = -8
	isolatedMg = -10
	isolatedEg = -8
)

// passedMg/passedEg are indexed by color then by the pawn's rank (0..7)
// from the mover's own numbering (rank 0 = its back rank).
var passedMg = [ColorLength][8]Value{
	{0, 0, 5, 10, 20, 35, 60, 0},
	{0, 0, 5, 10, 20, 35, 60, 0},
}
var passedEg = [ColorLength][8]Value{
	{0, 5, 10, 20, 35, 60, 90, 0},
	{0, 5, 10, 20, 35, 60, 90, 0},
}

var adjacentFiles [FileLength]Bitboard
var squaresInFront [ColorLength][SqLength]Bitboard

func init() {
	for f := FileA; f < FileLength; f++ {
		var mask Bitboard
		if f > FileA {
			mask |= (f - 1).Bb()
		}
		if f < FileH {
			mask |= (f + 1).Bb()
		}
		adjacentFiles[f] = mask
	}
	for sq := SqA1; sq < SqNone; sq++ {
		r := sq.RankOf()
		var ahead, behind Bitboard
		for rr := r + 1; rr.IsValid(); rr++ {
			ahead |= rr.Bb()
		}
		for i := Rank1; i < r; i++ {
			behind |= i.Bb()
		}
		squaresInFront[White][sq] = ahead
		squaresInFront[Black][sq] = behind
	}
}

func pawnStructure(c Color, pos *position.Position) Score {
	d := doubled(c, pos)
	i := isolated(c, pos)
	p := passed(c, pos)
	return d.Add(i).Add(p)
}

func doubled(c Color, pos *position.Position) Score {
	pawns := pos.PiecesBb(c, Pawn)
	var s Score
	for f := FileA; f < FileLength; f++ {
		count := (pawns & f.Bb()).PopCount()
		if count > 1 {
			extra := Value(count - 1)
			s.Mg += extra * doubledMg
			s.Eg += extra * doubledEg
		}
	}
	return s
}

func isolated(c Color, pos *position.Position) Score {
	pawns := pos.PiecesBb(c, Pawn)
	var s Score
	for f := FileA; f < FileLength; f++ {
		onFile := pawns & f.Bb()
		if onFile == BbZero {
			continue
		}
		if pawns&adjacentFiles[f] == BbZero {
			count := Value(onFile.PopCount())
			s.Mg += count * isolatedMg
			s.Eg += count * isolatedEg
		}
	}
	return s
}

func passed(c Color, pos *position.Position) Score {
	ourPawns := pos.PiecesBb(c, Pawn)
	theirPawns := pos.PiecesBb(c.Flip(), Pawn)
	var s Score
	for bb := ourPawns; bb != BbZero; {
		sq := bb.PopLsb()
		f := sq.FileOf()
		blockers := theirPawns & (f.Bb() | adjacentFiles[f])
		if blockers&squaresInFront[c][sq] == BbZero {
			r := sq.RankOf()
			rankIdx := r
			if c == Black {
				rankIdx = 7 - r
			}
			s.Mg += passedMg[c][rankIdx]
			s.Eg += passedEg[c][rankIdx]
		}
	}
	return s
}
