// doc.go — package documentation for xgx-fault
//
// Package xgxfault provides a tiny, policy-free failure-tree core: one value
// type (Fault) that carries a layered human-readable explanation, typed
// machine-readable attachments at every layer, and a cause structure that may
// branch. It is designed to be:
//   - Ergonomic at call sites (small surface, clear semantics)
//   - Interoperable with the stdlib (errors.Is/As, fmt.Formatter)
//   - Policy-free (no HTTP/logging/retry rules in core)
//
// # Model
//
// A Fault is one context layer: a message, the location it was captured at,
// the attachments contributed at that layer, and zero or more child causes.
// Wrapping never edits the inner layers; it produces a NEW outer Fault that
// owns the existing tree:
//
//	leaf := xgxfault.New("disk full").Attach(RetryNo)
//	err  := xgxfault.Wrap("write failed", leaf).Attach(RetryYes)
//
// Several independent failures fan in under one parent:
//
//	err := xgxfault.WrapAll("validation failed", ageFault, nameFault)
//
// # Attachments & Accessors
//
// Attachments are opaque values stored per layer under their dynamic type
// identity. Consumers retrieve them without knowing which layer contributed
// them:
//
//   - Attachment[T](f): first match in canonical order (outer layers win
//     over deeper causes — the closer annotation overrides the deeper one).
//   - Attachments[T](f): every match across the tree, in canonical order.
//   - Single / Multi: build reusable accessors closing over a reduce func.
//
// Canonical order is the pre-order depth-first walk: the outermost context
// first, fan-in siblings in declaration order, root causes last. The same
// order drives formatting.
//
// # Immutability
//
// All fluent methods are non-mutating (copy-on-write): they return a new
// *Fault and never alter the receiver or any node already sealed into a
// tree. A fully built tree is therefore safe to hand to another goroutine
// for read-only consumption without synchronization. This is also how the
// sealing contract holds: attaching to a node that is already someone
// else's cause yields a new detached value and leaves the tree untouched.
//
// # Formatting
//
// xgxfault implements fmt.Formatter:
//   - %v, %s → concise, single-line Error() (messages joined by ": ",
//     fan-in siblings by "; ")
//   - %+v    → verbose, multi-line Debug() (locations, attachment dumps,
//     indentation by tree depth)
//   - %q     → quoted Error()
//
// # Interop
//
//   - Fault implements error and Unwrap() []error, so errors.Is/As traverse
//     the whole tree, including foreign causes.
//   - FromError/WrapError bridge arbitrary errors in; multi-errors
//     (Unwrap() []error, hashicorp-style WrappedErrors) fan in as causes.
//
// # Minimal Surface, Clear Semantics
//
// The v1 surface is intentionally small:
//   - New / Wrap / WrapAll (+ *At variants taking an explicit Location)
//   - Attach / AttachOverride / Context
//   - Attachment / Attachments / Has / Single / Multi
//   - Walk / Leaves / RootCause
//   - FromError / WrapError / Group
package xgxfault
