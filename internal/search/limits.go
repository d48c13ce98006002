package search

import (
	"time"
)

// Limits describes how a `go` request bounds the search: a fixed move
// time, a node or depth cap, per-side clocks for dynamic time management,
// or unconditional infinite/ponder search controlled entirely by `stop`
// (spec §6 UCI `go`).
type Limits struct {
	Infinite bool
	Ponder   bool

	Depth int
	Nodes uint64

	TimeControl bool
	WhiteTime   time.Duration
	BlackTime   time.Duration
	WhiteInc    time.Duration
	BlackInc    time.Duration
	MoveTime    time.Duration
	MovesToGo   int
}

// NewLimits returns an empty Limits (infinite, unbounded) ready for the
// caller to fill in.
func NewLimits() *Limits {
	return &Limits{}
}

// HasDepthCap reports whether iterative deepening must stop at Depth.
func (l *Limits) HasDepthCap() bool {
	return l.Depth > 0
}
