// attach.go — per-layer heterogeneous attachment store for xgx-fault core.
//
// Design:
//   - Internal representation: append-only []attachment (deterministic order).
//   - Keyed by dynamic type identity (reflect.Type); the store never inspects
//     value structure, only identity. Typed extraction lives in accessor.go.
//   - Builders are non-mutating: "mutation" always allocates a fresh slice so
//     copy-on-write holds even when the original had spare capacity.
//
// Rationale:
//   - A slice (not a map) preserves attachment order; one layer may carry the
//     same kind twice with different values, and order is observable through
//     the Multi accessor policy and the Debug rendering.
package xgxfault

import "reflect"

// attachment is one opaque value plus its identity token.
type attachment struct {
	typ reflect.Type
	val any
}

// attachments is the internal immutable store of one Fault layer.
// Treat it as append-only; never modify elements in place once published.
type attachments []attachment

// emptyAttachments is a canonical empty store.
var emptyAttachments = make(attachments, 0)

// attOf boxes a value with its identity token. Callers guard against nil.
func attOf(val any) attachment {
	return attachment{typ: reflect.TypeOf(val), val: val}
}

// attCloneAppend returns a NEW slice with dst's contents followed by add.
// It always allocates a fresh backing array to avoid aliasing via append.
func attCloneAppend(dst attachments, add ...attachment) attachments {
	n := len(dst)
	m := len(add)
	if m == 0 {
		if n == 0 {
			return emptyAttachments
		}
		out := make(attachments, n)
		copy(out, dst)
		return out
	}
	out := make(attachments, n+m)
	copy(out, dst)
	copy(out[n:], add)
	return out
}

// attCloneOverride returns a NEW slice where the FIRST entry of add's type is
// replaced with add, any LATER entries of the same type are dropped, and add
// is appended if no entry of its type existed. Entries of other types keep
// their positions and relative order.
func attCloneOverride(dst attachments, add attachment) attachments {
	out := make(attachments, 0, len(dst)+1)
	replaced := false
	for _, a := range dst {
		if a.typ == add.typ {
			if replaced {
				continue // duplicate of the same type, drop
			}
			out = append(out, add)
			replaced = true
			continue
		}
		out = append(out, a)
	}
	if !replaced {
		out = append(out, add)
	}
	return out
}
