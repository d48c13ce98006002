// Package assert provides a cheap, build-tag gated assertion used to flag
// programmer errors (states the move generator must never produce) without
// paying for the check in release builds.
package assert

import "fmt"

// DEBUG toggles assertions on. Built with `-tags debug` to enable.
const DEBUG = debugEnabled

// Assert panics with a formatted message if cond is false. Only called
// from call sites guarded by `if assert.DEBUG`, so it compiles away
// entirely (dead code elimination) in release builds.
func Assert(cond bool, format string, args ...interface{}) {
	if !cond {
		panic(fmt.Sprintf(format, args...))
	}
}
