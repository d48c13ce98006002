package search

import (
	"time"

	. "github.com/corvid/corvid/internal/types"
)

// Result is the outcome of a StartSearch/Go call: the move to play, the
// full PV that produced it, and bookkeeping for the UCI `bestmove` line.
type Result struct {
	BestMove   Move
	PonderMove Move
	Pv         []Move
	SearchTime time.Duration
	Nodes      uint64
	Depth      int
}
