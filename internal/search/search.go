// Package search implements iterative-deepening alpha-beta search with a
// quiescence extension, transposition table, killer/history move ordering
// and stability-scaled time management (spec §4.8, §4.9).
package search

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/op/go-logging"
	"golang.org/x/sync/semaphore"

	"github.com/corvid/corvid/internal/evaluator"
	myLogging "github.com/corvid/corvid/internal/logging"
	"github.com/corvid/corvid/internal/position"
	"github.com/corvid/corvid/internal/tt"
	. "github.com/corvid/corvid/internal/types"
)

// Search owns one game's transposition table and the per-run move
// ordering state. Not safe for concurrent Go()/StartSearch() calls — the
// front-end serializes searches (spec §5: "ordering between searches is
// serialized").
type Search struct {
	log      *logging.Logger
	reporter Reporter
	table    *tt.Table

	isRunning *semaphore.Weighted
	stopFlag  atomic.Bool

	killers *killerTable
	history *historyTable
	pv      *pvTable

	nodes     uint64
	seldepth  int
	startTime time.Time
	bud       budget
	stab      stability

	lastResult *Result
}

// NewSearch creates a Search backed by a fresh, sizeMB-megabyte
// transposition table and a NopReporter.
func NewSearch(sizeMB int) *Search {
	return &Search{
		log:       myLogging.GetLog(),
		reporter:  NopReporter{},
		table:     tt.New(sizeMB),
		isRunning: semaphore.NewWeighted(1),
		killers:   newKillerTable(),
		history:   newHistoryTable(),
		pv:        newPvTable(),
	}
}

// SetReporter installs the sink for progress Reports; nil restores the
// NopReporter.
func (s *Search) SetReporter(r Reporter) {
	if r == nil {
		r = NopReporter{}
	}
	s.reporter = r
}

// ResizeHash rebuilds the transposition table for a new Hash size at once,
// discarding every stored entry; the change does not wait for the next
// ucinewgame.
func (s *Search) ResizeHash(sizeMB int) {
	s.table.Resize(sizeMB)
}

// Hashfull reports the transposition table's per-mille occupancy, for the
// UCI "info ... hashfull" field.
func (s *Search) Hashfull() int {
	return s.table.Hashfull()
}

// NewGame clears the transposition table and per-search move-ordering
// state for a new game (spec §5 Shared state).
func (s *Search) NewGame() {
	s.table.Clear()
	s.killers.clear()
	s.history.clear()
}

// IsSearching reports whether a search is currently running.
func (s *Search) IsSearching() bool {
	if !s.isRunning.TryAcquire(1) {
		return true
	}
	s.isRunning.Release(1)
	return false
}

// WaitWhileSearching blocks until any running search completes.
func (s *Search) WaitWhileSearching() {
	_ = s.isRunning.Acquire(context.Background(), 1)
	s.isRunning.Release(1)
}

// LastResult returns the most recently completed search's Result, or nil
// if none has completed yet.
func (s *Search) LastResult() *Result {
	return s.lastResult
}

// StopSearch raises the sticky stop flag and blocks until the running
// search has unwound and emitted its result (spec §5 Cancellation).
func (s *Search) StopSearch() {
	s.stopFlag.Store(true)
	s.WaitWhileSearching()
}

// StartSearch clones pos (so the caller's copy stays free for concurrent
// `stop`/`position` handling, spec §5) and runs iterative deepening on the
// clone in a new goroutine, reporting each completed iteration through the
// installed Reporter and storing the final Result for LastResult.
func (s *Search) StartSearch(pos *position.Position, limits Limits) {
	if !s.isRunning.TryAcquire(1) {
		s.log.Warning("search already running, ignoring StartSearch")
		return
	}
	clone := pos.Clone()
	go func() {
		defer s.isRunning.Release(1)
		result := s.run(clone, &limits)
		s.lastResult = result
	}()
}

// Go runs a search synchronously on pos and returns the Result; intended
// for tests and the perft/bench-style CLI entry points that don't need
// StartSearch's goroutine/stop-channel machinery.
func (s *Search) Go(pos *position.Position, limits Limits) *Result {
	if !s.isRunning.TryAcquire(1) {
		s.log.Warning("search already running")
		return &Result{}
	}
	defer s.isRunning.Release(1)
	result := s.run(pos, &limits)
	s.lastResult = result
	return result
}

func (s *Search) run(pos *position.Position, limits *Limits) *Result {
	s.stopFlag.Store(false)
	s.startTime = time.Now()
	s.nodes = 0
	s.seldepth = 0
	s.pv = newPvTable()
	s.table.NewGeneration()

	ourTime, ourInc := limits.WhiteTime, limits.WhiteInc
	if pos.SideToMove() == Black {
		ourTime, ourInc = limits.BlackTime, limits.BlackInc
	}
	s.bud = computeBudget(limits, ourTime, ourInc)
	if limits.Infinite || limits.Ponder {
		s.bud = budget{}
	}
	s.stab = stability{}

	result := s.iterativeDeepening(pos, limits)
	result.SearchTime = time.Since(s.startTime)
	result.Nodes = s.nodes
	return result
}

// Stop requests the currently running search abort as soon as its next
// poll point (spec §5).
func (s *Search) Stop() {
	s.stopFlag.Store(true)
}

// iterativeDeepening drives depth 1..cap, keeping the best completed
// iteration's result whenever a deeper one is interrupted (spec §4.8).
func (s *Search) iterativeDeepening(pos *position.Position, limits *Limits) *Result {
	maxDepth := MaxDepth
	if limits.HasDepthCap() && limits.Depth < maxDepth {
		maxDepth = limits.Depth
	}

	result := &Result{}

	for depth := 1; depth <= maxDepth; depth++ {
		s.pv.reset(0)
		st := &deadlineStopper{start: s.startTime, hard: s.bud.hard, externalStop: &s.stopFlag}

		eval := s.alphaBeta(pos, depth, 0, -ValueInf, ValueInf, st)

		if s.stopFlag.Load() {
			break
		}

		pvLine := s.pv.Root()
		best := MoveNone
		if len(pvLine) > 0 {
			best = pvLine[0]
		}
		if best == MoveNone {
			break
		}

		result.BestMove = best
		result.Pv = pvLine
		result.Depth = depth
		if len(pvLine) > 1 {
			result.PonderMove = pvLine[1]
		}

		s.reporter.Send(Report{
			Depth:      depth,
			SeldDepth:  s.seldepth,
			Nodes:      s.nodes,
			Elapsed:    time.Since(s.startTime),
			TTUsed:     0,
			TTCapacity: s.table.Capacity(),
			PV:         pvLine,
			EvalCp:     eval,
			Mate:       IsMateScore(eval),
			MateIn:     mateDistance(eval),
		})

		if limits.Nodes > 0 && s.nodes >= limits.Nodes {
			break
		}
		if !limits.Infinite && !limits.Ponder && s.bud.soft > 0 {
			factor := s.stab.factor(uint32(best), int32(eval))
			if softElapsed(s.startTime, s.bud.soft, factor) {
				break
			}
		}
	}

	return result
}

// mateDistance converts a mate-threshold value into the user-facing
// "mate in N (full moves)" figure, signed by who is mating.
func mateDistance(v Value) int {
	if !IsMateScore(v) {
		return 0
	}
	pliesToMate := int(MateValue - abs(v))
	movesToMate := (pliesToMate + 1) / 2
	if v < 0 {
		return -movesToMate
	}
	return movesToMate
}

func abs(v Value) Value {
	if v < 0 {
		return -v
	}
	return v
}

// quiescenceEval is the leaf static evaluation quiescence stands pat on.
func quiescenceEval(pos *position.Position) Value {
	return evaluator.Evaluate(pos)
}
