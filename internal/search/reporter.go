package search

import (
	"time"

	. "github.com/corvid/corvid/internal/types"
)

// Report is pushed to the front-end after each completed iterative-
// deepening iteration (spec §6 "emitted to front-end"). PV is in root-to-
// leaf order; EvalCp is from the root side-to-move's point of view.
type Report struct {
	Depth       int
	SeldDepth   int
	Nodes       uint64
	Elapsed     time.Duration
	TTUsed      int
	TTCapacity  int
	PV          []Move
	EvalCp      Value
	Mate        bool
	MateIn      int
}

// Reporter is the one policy hole the search depends on (spec §4.9 design
// note): a sink for progress reports, implemented once for the UCI
// protocol printer and once as a test spy that just records calls.
type Reporter interface {
	Send(r Report)
}

// NopReporter discards every report; used when a caller doesn't care
// about progress, only the final best move.
type NopReporter struct{}

func (NopReporter) Send(Report) {}
