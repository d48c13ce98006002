package search

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/corvid/corvid/internal/movegen"
	"github.com/corvid/corvid/internal/position"
	"github.com/corvid/corvid/internal/tt"
	. "github.com/corvid/corvid/internal/types"
)

// neverStop never interrupts a search; used to isolate alphaBeta/quiescence
// correctness from time-control behavior.
type neverStop struct{}

func (neverStop) shouldStop(uint64) bool { return false }

func TestAlphaBetaFindsMateInOne(t *testing.T) {
	s := NewSearch(4)
	pos, err := position.NewPositionFen("6k1/5ppp/8/8/8/8/5PPP/R5K1 w - - 0 1")
	assert.NoError(t, err)
	v := s.alphaBeta(pos, 2, 0, -ValueInf, ValueInf, neverStop{})
	assert.True(t, IsMateScore(v))
	assert.Equal(t, "a1a8", s.pv.Root()[0].String())
}

func TestAlphaBetaReturnsZeroOnStalemate(t *testing.T) {
	s := NewSearch(4)
	pos, err := position.NewPositionFen("7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	assert.NoError(t, err)
	v := s.alphaBeta(pos, 1, 0, -ValueInf, ValueInf, neverStop{})
	assert.EqualValues(t, 0, v)
}

func TestAlphaBetaStoresExactEntryInTT(t *testing.T) {
	s := NewSearch(4)
	pos := position.NewPosition()
	_ = s.alphaBeta(pos, 2, 0, -ValueInf, ValueInf, neverStop{})
	entry, found := s.table.Probe(pos.ZobristKey())
	assert.True(t, found)
	assert.Equal(t, tt.Exact, entry.Bound())
	assert.NotEqual(t, MoveNone, entry.Move())
}

func TestQuiescenceStandsPatAboveBeta(t *testing.T) {
	s := NewSearch(4)
	pos := position.NewPosition()
	v := s.quiescence(pos, -ValueInf, -ValueInf+1, 0, neverStop{})
	assert.GreaterOrEqual(t, v, -ValueInf+1)
}

func TestContainsMove(t *testing.T) {
	pos := position.NewPosition()
	ml := movegen.GenerateAll(pos)
	assert.True(t, containsMove(ml, ml.At(0)))
}
