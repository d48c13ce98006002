package tt

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/corvid/corvid/internal/types"
)

func TestResizeIsPowerOfTwo(t *testing.T) {
	table := New(1)
	n := table.Capacity()
	assert.Greater(t, n, 0)
	assert.Equal(t, 0, n&(n-1))
}

func TestStoreAndProbeRoundTrip(t *testing.T) {
	table := New(1)
	key := Key(0x1234)
	table.Store(key, 5, Value(37), Exact, NewMove(SqE2, SqE4), Value(10))

	e, found := table.Probe(key)
	assert.True(t, found)
	assert.Equal(t, Value(37), e.Value())
	assert.Equal(t, 5, e.Depth())
	assert.Equal(t, Exact, e.Bound())
	assert.Equal(t, NewMove(SqE2, SqE4), e.Move())
}

func TestProbeMissOnDifferentKey(t *testing.T) {
	table := New(1)
	table.Store(Key(1), 1, Value(0), Exact, MoveNone, Value(0))
	_, found := table.Probe(Key(2))
	assert.False(t, found)
}

func TestDepthPreferredReplacement(t *testing.T) {
	table := New(1)
	// Two keys that collide on the same slot (differ only above the mask).
	keyA := Key(1)
	keyB := Key(table.mask + 1 + 1)

	table.Store(keyA, 10, Value(1), Exact, MoveNone, Value(0))
	// A shallower-depth write from the same generation must not evict it.
	table.Store(keyB, 3, Value(2), Exact, MoveNone, Value(0))
	e, found := table.Probe(keyA)
	assert.True(t, found)
	assert.Equal(t, Value(1), e.Value())

	// Once the generation advances, a new position is free to overwrite.
	table.NewGeneration()
	table.Store(keyB, 3, Value(2), Exact, MoveNone, Value(0))
	e, found = table.Probe(keyB)
	assert.True(t, found)
	assert.Equal(t, Value(2), e.Value())
}

func TestMateScoreStorageAdapters(t *testing.T) {
	mate := MateValue - 3
	stored := ToStorage(mate, 7)
	assert.Equal(t, mate+7, stored)
	assert.Equal(t, mate, FromStorage(stored, 7))

	notMate := Value(120)
	assert.Equal(t, notMate, ToStorage(notMate, 7))
	assert.Equal(t, notMate, FromStorage(notMate, 7))
}
