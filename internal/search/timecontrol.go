package search

import (
	"sync/atomic"
	"time"
)

// pollInterval is how often (in nodes) alpha-beta polls the stopper for a
// hard deadline / stop signal (spec §4.9: "polled only every 256th node").
const pollInterval = 256

// budget holds the soft/hard deadlines computed from a Limits before a
// search starts (spec §4.9).
type budget struct {
	soft time.Duration
	hard time.Duration
}

// computeBudget derives the soft/hard time budget for the side to move
// from the clock Limits, following the fixed/dynamic split in spec §4.9.
func computeBudget(l *Limits, ourTime, ourInc time.Duration) budget {
	if !l.TimeControl {
		return budget{}
	}
	if l.MoveTime > 0 {
		return budget{soft: l.MoveTime, hard: l.MoveTime}
	}

	reserve := ourTime / 20
	if reserve < 50*time.Millisecond {
		reserve = 50 * time.Millisecond
	}
	max := ourTime - reserve
	if max < 0 {
		max = 0
	}

	soft := ourTime/30 + (3*ourInc)/4
	if soft > max {
		soft = max
	}
	hard := 3 * soft
	if hard > max {
		hard = max
	}
	return budget{soft: soft, hard: hard}
}

// stopper is the interface alpha-beta polls to decide whether to abandon
// the iteration it is in (spec §4.9, §5 Cancellation). It is deliberately
// tiny so a test can supply a fake that trips after N calls.
type stopper interface {
	shouldStop(nodes uint64) bool
}

// deadlineStopper aborts a search when the hard deadline has elapsed or a
// sticky external stop request has been raised.
type deadlineStopper struct {
	start        time.Time
	hard         time.Duration // zero means no hard deadline (infinite/ponder)
	externalStop *atomic.Bool
}

func (d *deadlineStopper) shouldStop(nodes uint64) bool {
	if nodes%pollInterval != 0 {
		return false
	}
	if d.externalStop != nil && d.externalStop.Load() {
		return true
	}
	if d.hard > 0 && time.Since(d.start) >= d.hard {
		return true
	}
	return false
}

// stability tracks the root best-move/eval stability across iterations to
// scale the soft deadline (spec §4.9): an unchanged best move lets the
// soft budget stretch up to 2x; a volatile eval shrinks or stretches it by
// up to 0.5x/1.5x.
type stability struct {
	sameMoveStreak int
	lastBestMove   uint32
	haveLastMove   bool
	lastEval       int32
	haveLastEval   bool
}

// factor returns the soft-deadline multiplier for the iteration that just
// produced bestMove/eval, given the raw move/eval seen in the previous
// iteration.
func (s *stability) factor(bestMove uint32, eval int32) float64 {
	moveFactor := 1.0
	if s.haveLastMove {
		if bestMove == s.lastBestMove {
			s.sameMoveStreak++
		} else {
			s.sameMoveStreak = 0
		}
	}
	s.haveLastMove = true
	s.lastBestMove = bestMove
	if s.sameMoveStreak > 0 {
		moveFactor = 1.0 + float64(s.sameMoveStreak)*0.25
		if moveFactor > 2.0 {
			moveFactor = 2.0
		}
	}

	evalFactor := 1.0
	if s.haveLastEval {
		delta := eval - s.lastEval
		if delta < 0 {
			delta = -delta
		}
		switch {
		case delta == 0:
			evalFactor = 0.5
		case delta > 50:
			evalFactor = 1.5
		default:
			evalFactor = 0.5 + float64(delta)/100.0
		}
	}
	s.haveLastEval = true
	s.lastEval = eval

	return moveFactor * evalFactor
}

// softElapsed reports whether the scaled soft deadline has elapsed, given
// the base soft duration and this iteration's stability factor.
func softElapsed(start time.Time, soft time.Duration, factor float64) bool {
	if soft <= 0 {
		return false
	}
	scaled := time.Duration(float64(soft) * factor)
	return time.Since(start) >= scaled
}
