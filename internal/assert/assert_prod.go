//go:build !debug

// Package assert checks internal invariants. Checks only run in builds tagged
// debug; production builds compile them to no-ops.
package assert

// Invariant is a no-op in production builds.
func Invariant(bool, string) {}

// Invariantf is a no-op in production builds.
func Invariantf(bool, string, ...any) {}
