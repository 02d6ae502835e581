//go:build debug

// Package assert checks internal invariants. Checks only run in builds tagged
// debug; production builds compile them to no-ops.
package assert

import "fmt"

// Invariant panics when ok is false. Use it for conditions the code itself
// guarantees, never for validating caller input.
//
//	assert.Invariant(status >= 400, "error envelopes carry an error status")
func Invariant(ok bool, msg string) {
	if !ok {
		panic(fmt.Sprintf("INVARIANT VIOLATION: %s", msg))
	}
}

// Invariantf is Invariant with a formatted message.
func Invariantf(ok bool, format string, args ...any) {
	if !ok {
		panic("INVARIANT VIOLATION: " + fmt.Sprintf(format, args...))
	}
}
