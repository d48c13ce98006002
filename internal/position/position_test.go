package position

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/corvid/corvid/internal/types"
)

func TestPositionCreation(t *testing.T) {
	p := NewPosition()
	assert.Equal(t, SqA1.Bb()|SqH1.Bb(), p.PiecesBb(White, Rook))
	assert.Equal(t, SqA8.Bb()|SqH8.Bb(), p.PiecesBb(Black, Rook))
	assert.Equal(t, SqB1.Bb()|SqG1.Bb(), p.PiecesBb(White, Knight))
	assert.Equal(t, SqE1.Bb(), p.PiecesBb(White, King))
	assert.Equal(t, White, p.SideToMove())
	assert.Equal(t, AnyCastle, p.CastlingRights())
	assert.Equal(t, SqNone, p.EnPassantSquare())
	assert.Equal(t, 0, p.HalfMoveClock())
	assert.Equal(t, StartFen, p.FEN())

	fen := "r3k2r/1ppn3p/2q1q1n1/4P3/2q1Pp2/6R1/pbp2PPP/1R4K1 b kq e3 0 14"
	p2, err := NewPositionFen(fen)
	assert.NoError(t, err)
	assert.Equal(t, Black, p2.SideToMove())
	assert.Equal(t, BlackKingside|BlackQueenside, p2.CastlingRights())
	assert.Equal(t, SqE3, p2.EnPassantSquare())
	assert.Equal(t, 0, p2.HalfMoveClock())
	assert.Equal(t, fen, p2.FEN())
}

func TestPositionFenRoundTrip(t *testing.T) {
	fens := []string{
		StartFen,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"4k3/8/8/8/8/8/8/4K2R w K - 0 1",
	}
	for _, fen := range fens {
		p, err := NewPositionFen(fen)
		assert.NoError(t, err)
		assert.Equal(t, fen, p.FEN())
	}
}

func TestPositionInvalidFen(t *testing.T) {
	_, err := NewPositionFen("not a fen")
	assert.Error(t, err)
}

func TestPosition_DoUndoMove(t *testing.T) {
	p := NewPosition()
	startFen := p.FEN()
	startKey := p.ZobristKey()

	p.DoMove(NewMove(SqE2, SqE4))
	p.DoMove(NewMove(SqD7, SqD5))
	p.DoMove(NewMove(SqE4, SqD5))
	p.DoMove(NewMove(SqD8, SqD5))
	p.DoMove(NewMove(SqB1, SqC3))

	assert.NotEqual(t, startKey, p.ZobristKey())

	p.UndoMove()
	p.UndoMove()
	p.UndoMove()
	p.UndoMove()
	p.UndoMove()

	assert.Equal(t, startFen, p.FEN())
	assert.Equal(t, startKey, p.ZobristKey())
}

func TestPosition_DoUndoCastling(t *testing.T) {
	p, err := NewPositionFen("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	assert.NoError(t, err)
	startFen := p.FEN()
	startKey := p.ZobristKey()

	p.DoMove(NewCastlingMove(SqE1, SqG1))
	assert.Equal(t, WhiteRook, p.PieceAt(SqF1))
	assert.Equal(t, WhiteKing, p.PieceAt(SqG1))
	assert.Equal(t, PieceNone, p.PieceAt(SqH1))
	assert.Equal(t, BlackKingside|BlackQueenside, p.CastlingRights())

	p.UndoMove()
	assert.Equal(t, startFen, p.FEN())
	assert.Equal(t, startKey, p.ZobristKey())
}

func TestPosition_DoUndoEnPassant(t *testing.T) {
	p, err := NewPositionFen("rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3")
	assert.NoError(t, err)
	startFen := p.FEN()
	startKey := p.ZobristKey()

	p.DoMove(NewEnPassantMove(SqE5, SqD6))
	assert.Equal(t, WhitePawn, p.PieceAt(SqD6))
	assert.Equal(t, PieceNone, p.PieceAt(SqD5))
	assert.Equal(t, PieceNone, p.PieceAt(SqE5))

	p.UndoMove()
	assert.Equal(t, startFen, p.FEN())
	assert.Equal(t, startKey, p.ZobristKey())
}

func TestPosition_DoUndoPromotion(t *testing.T) {
	p, err := NewPositionFen("8/P7/8/8/8/8/8/k6K w - - 0 1")
	assert.NoError(t, err)
	startFen := p.FEN()
	startKey := p.ZobristKey()

	p.DoMove(NewPromotionMove(SqA7, SqA8, Queen))
	assert.Equal(t, WhiteQueen, p.PieceAt(SqA8))

	p.UndoMove()
	assert.Equal(t, startFen, p.FEN())
	assert.Equal(t, startKey, p.ZobristKey())
}

func TestPositionFiftyMoveDraw(t *testing.T) {
	p, err := NewPositionFen("8/8/8/8/8/k7/8/K7 w - - 99 60")
	assert.NoError(t, err)
	assert.False(t, p.IsFiftyMoveDraw())
	p.DoMove(NewMove(SqA1, SqB1))
	assert.True(t, p.IsFiftyMoveDraw())
}

func TestPositionIsInCheck(t *testing.T) {
	p, err := NewPositionFen("rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	assert.NoError(t, err)
	assert.True(t, p.IsInCheck(White))
	assert.False(t, p.IsInCheck(Black))
}
