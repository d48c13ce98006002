package evaluator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corvid/corvid/internal/position"
)

func TestStartPositionEvaluatesToZero(t *testing.T) {
	p := position.NewPosition()
	assert.Equal(t, 0, int(Evaluate(p)))
}

func TestEvaluationSignFlipSymmetry(t *testing.T) {
	fen := "r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq - 2 3"
	mirrored := "rnbqkb1r/pppp1ppp/5n2/4p3/4P3/2N5/PPPP1PPP/R1BQKBNR b KQkq - 2 3"

	p1, err := position.NewPositionFen(fen)
	require.NoError(t, err)
	p2, err := position.NewPositionFen(mirrored)
	require.NoError(t, err)

	assert.Equal(t, Evaluate(p1), Evaluate(p2))
}

func TestMoreMaterialIsGood(t *testing.T) {
	p, err := position.NewPositionFen("4kbnr/8/8/8/8/8/4P3/4KBNR w - - 0 1")
	require.NoError(t, err)
	assert.Positive(t, Evaluate(p))
}

func TestQueenWorthsMoreThanRook(t *testing.T) {
	p, err := position.NewPositionFen("7r/8/8/8/8/8/8/3QK1k1 w - - 0 1")
	require.NoError(t, err)
	assert.Positive(t, Evaluate(p))
}

func TestDoubledAndIsolatedPawnsArePenalized(t *testing.T) {
	doubledAndIsolated, err := position.NewPositionFen("4k3/8/8/8/8/P7/P7/4K3 w - - 0 1")
	require.NoError(t, err)
	healthy, err := position.NewPositionFen("4k3/8/8/8/8/1P6/P7/4K3 w - - 0 1")
	require.NoError(t, err)

	penalized := pawnStructure(White, doubledAndIsolated)
	clean := pawnStructure(White, healthy)
	assert.Less(t, penalized.Mg, clean.Mg)
	assert.Less(t, penalized.Eg, clean.Eg)
}
