package movegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corvid/corvid/internal/position"
	. "github.com/corvid/corvid/internal/types"
)

func TestGenerateAllStartPosition(t *testing.T) {
	p := position.NewPosition()
	ml := GenerateAll(p)
	assert.Equal(t, 20, ml.Len())
}

func TestGenerateNonQuietsOnlyProducesCapturesAndPromotions(t *testing.T) {
	p, err := position.NewPositionFen("8/P7/8/4p3/3P4/8/8/k6K w - - 0 1")
	require.NoError(t, err)
	for _, m := range GenerateNonQuiets(p).Slice() {
		isCapture := p.PieceAt(m.To()) != PieceNone
		assert.True(t, isCapture || m.MoveType() == Promotion || m.MoveType() == EnPassant)
	}
}

func TestCastlingNotGeneratedWhenPathAttacked(t *testing.T) {
	p, err := position.NewPositionFen("4k3/8/8/8/8/5n2/8/4K2R w K - 0 1")
	require.NoError(t, err)
	for _, m := range GenerateAll(p).Slice() {
		assert.NotEqual(t, Castling, m.MoveType())
	}
}

func TestCastlingGeneratedWhenClear(t *testing.T) {
	p, err := position.NewPositionFen("4k3/8/8/8/8/8/8/4K2R w K - 0 1")
	require.NoError(t, err)
	found := false
	for _, m := range GenerateAll(p).Slice() {
		if m.MoveType() == Castling {
			found = true
		}
	}
	assert.True(t, found)
}
