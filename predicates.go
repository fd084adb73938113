// predicates.go — minimal, stdlib-aligned predicates for xgx-fault core.
//
// Scope:
//   - Zero-policy helpers that answer common questions about a failure tree.
//   - Interop-first: Is/AsFault ride on errors.Is / errors.As, which traverse
//     Unwrap() []error (fault.go), so they observe native causes and foreign
//     chains alike.
//
// Out of scope (by design):
//   - HTTP/status mapping, retry backoff policy, logging. Those layers sit on
//     top of the accessors (accessor.go) and define their own kinds.
package xgxfault

import "errors"

// Is reports whether target appears anywhere in f's tree, including foreign
// causes and their chains. Nil-safe wrapper over errors.Is.
func Is(f *Fault, target error) bool {
	if f == nil || target == nil {
		return false
	}
	return errors.Is(f, target)
}

// AsFault extracts the first *Fault found in an arbitrary error's unwrap
// graph. It lets generic error-handling code bridge back into the tree after
// a fault crossed a foreign wrapping boundary.
func AsFault(err error) (*Fault, bool) {
	if err == nil {
		return nil, false
	}
	var f *Fault
	if errors.As(err, &f) {
		return f, true
	}
	return nil, false
}
