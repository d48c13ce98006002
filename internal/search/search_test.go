package search

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/corvid/corvid/internal/position"
	. "github.com/corvid/corvid/internal/types"
)

func TestGoDepth1FindsALegalMove(t *testing.T) {
	s := NewSearch(4)
	pos := position.NewPosition()
	result := s.Go(pos, Limits{Depth: 1})
	assert.NotEqual(t, MoveNone, result.BestMove)
}

func TestGoMateInOne(t *testing.T) {
	s := NewSearch(4)
	pos, err := position.NewPositionFen("6k1/5ppp/8/8/8/8/5PPP/R5K1 w - - 0 1")
	assert.NoError(t, err)
	result := s.Go(pos, Limits{Depth: 3})
	assert.Equal(t, "a1a8", result.BestMove.String())
}

func TestGoStalemateReturnsNoBestMove(t *testing.T) {
	s := NewSearch(4)
	pos, err := position.NewPositionFen("7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	assert.NoError(t, err)
	result := s.Go(pos, Limits{Depth: 2})
	assert.Equal(t, MoveNone, result.BestMove)
}

func TestNewGameClearsTranspositionTable(t *testing.T) {
	s := NewSearch(4)
	pos := position.NewPosition()
	s.Go(pos, Limits{Depth: 2})
	assert.Greater(t, s.Hashfull(), -1)
	s.NewGame()
	assert.Equal(t, 0, s.Hashfull())
}

func TestResizeHash(t *testing.T) {
	s := NewSearch(4)
	s.ResizeHash(8)
	assert.Equal(t, 0, s.Hashfull())
}

func TestStopSearchUnblocks(t *testing.T) {
	s := NewSearch(4)
	pos := position.NewPosition()
	s.StartSearch(pos, Limits{Infinite: true})
	time.Sleep(20 * time.Millisecond)
	s.StopSearch()
	assert.False(t, s.IsSearching())
}

func TestMovetimeRespectsHardDeadline(t *testing.T) {
	s := NewSearch(4)
	pos := position.NewPosition()
	start := time.Now()
	s.Go(pos, Limits{TimeControl: true, MoveTime: 50 * time.Millisecond})
	elapsed := time.Since(start)
	assert.Less(t, elapsed, 2*time.Second)
}

func TestMateDistance(t *testing.T) {
	assert.Equal(t, 0, mateDistance(0))
	assert.Equal(t, 1, mateDistance(MateValue-1))
	assert.Equal(t, -1, mateDistance(-(MateValue - 1)))
}
