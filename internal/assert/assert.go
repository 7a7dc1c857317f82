//go:build !release

// Package assert provides debug-build precondition checks.
//
// Callers use it to guard indexing and positional preconditions that are
// documented as undefined behavior when violated. In default builds a failed
// check panics with a formatted message; under the release build tag every
// check compiles to a no-op.
package assert

import "fmt"

// Assert panics if cond is false, formatting the message with args.
//
// Assert is a no-op when compiled with the release build tag.
func Assert(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf("assertion failed: "+format, args...))
	}
}
