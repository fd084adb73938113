// location.go — capture-site tokens for xgx-fault core.
//
// Design goals:
//   - One token per context layer: a Fault records WHERE it was built, not a
//     full backtrace. Layered wrapping already reconstructs the propagation
//     path, so a single file:line per layer is both cheaper and more readable.
//   - Minimal policy: constructors capture by default; *At variants accept a
//     caller-supplied Location for environments that pre-compute sites.
package xgxfault

import (
	"fmt"
	"runtime"
)

// Location identifies the call site a Fault layer was captured at.
// The zero value means "unknown" (e.g. a leaf bridged from a foreign error).
type Location struct {
	File string
	Line int
}

// IsZero reports whether no capture site is recorded.
func (l Location) IsZero() bool { return l.File == "" && l.Line == 0 }

// String renders the conventional "file:line" form, or "unknown" for the
// zero value.
func (l Location) String() string {
	if l.IsZero() {
		return "unknown"
	}
	return fmt.Sprintf("%s:%d", l.File, l.Line)
}

// Caller captures the location of the caller, skipping 'skip' additional
// frames.
//
// Skip model for a typical call chain:
//
//	New → Caller → runtime.Caller
//
// The +1 below accounts for Caller itself, so Caller(0) records the line of
// the code that invoked Caller. Constructors pass 1 to record their caller.
func Caller(skip int) Location {
	_, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return Location{}
	}
	return Location{File: file, Line: line}
}
