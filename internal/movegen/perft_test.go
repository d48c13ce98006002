package movegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corvid/corvid/internal/position"
	. "github.com/corvid/corvid/internal/types"
)

// perft cases are the standard chess programming wiki reference positions
// and node counts; depth is capped in -short mode since the full spec
// depths run into the hundreds of millions of nodes.
var perftCases = []struct {
	name     string
	fen      string
	depth    int
	nodes    uint64
	fullDepth int
	fullNodes uint64
}{
	{"startpos", position.StartFen, 4, 197281, 6, 119060324},
	{"kiwipete", "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", 4, 4085603, 5, 193690690},
	{"position3", "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", 5, 674624, 7, 178633661},
	{"position4", "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1", 4, 422333, 6, 706045033},
	{"position5", "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8", 4, 2103487, 5, 89941194},
	{"position6", "r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1 w - - 0 10", 4, 3894594, 5, 164075551},
}

func TestPerft(t *testing.T) {
	for _, tc := range perftCases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := position.NewPositionFen(tc.fen)
			require.NoError(t, err)

			depth, nodes := tc.depth, tc.nodes
			if !testing.Short() {
				depth, nodes = tc.fullDepth, tc.fullNodes
			}
			assert.Equal(t, nodes, Perft(p, depth))
		})
	}
}

func TestFoolsMateHasNoLegalMoves(t *testing.T) {
	p, err := position.NewPositionFen("rnb1kbnr/pppp1ppp/4p3/8/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 0 1")
	require.NoError(t, err)
	assert.Equal(t, 0, GenerateLegalMoves(p).Len())
}

func TestEnPassantGeneratesExactlyTwoMoves(t *testing.T) {
	p, err := position.NewPositionFen("8/8/8/3PpP2/8/8/8/8 w - e6 0 1")
	require.NoError(t, err)
	count := 0
	for _, m := range GenerateAll(p).Slice() {
		if m.MoveType() == EnPassant {
			count++
		}
	}
	assert.Equal(t, 2, count)
}
