// accessor.go — typed attachment retrieval and accessor builders for xgx-fault.
//
// Overview
//   Attachments are stored type-erased (attach.go); this file is the typed
//   read side. Retrieval runs the canonical walk (traverse.go) and matches on
//   exact dynamic type identity, so consumers never name the producing layer.
//
// Policies
//   - Single: first match in canonical order. Outer layers take precedence
//     over deeper causes — a closer-to-the-surface annotation overrides a
//     deeper one. Later matches are discarded.
//   - Multi: every match across the whole tree, in canonical order.
//
// Both policies are total: absence yields the zero result ((zero, false),
// nil slice, or whatever the reduce function makes of it), never an error.
//
// Caveats
//   - Matching uses exact dynamic type identity. Interfaces, aliases or
//     convertible types are not accepted automatically; the stored value's
//     type must be T itself.
package xgxfault

import (
	"fmt"
	"reflect"
)

// Attachment returns the first attachment of type T in canonical order
// (Single policy). Returns (zero, false) if f is nil or no layer carries a T.
func Attachment[T any](f *Fault) (T, bool) {
	var out T
	if f == nil {
		return out, false
	}
	target := reflect.TypeOf((*T)(nil)).Elem()
	found := false
	Walk(f, func(n *Fault) bool {
		for _, a := range n.atts {
			if a.typ == target {
				out = a.val.(T)
				found = true
				return false
			}
		}
		return true
	})
	return out, found
}

// Attachments returns every attachment of type T across the tree, in
// canonical order (Multi policy): outer layers first, fan-in siblings in
// declaration order, multiple values within one layer in attachment order.
// Returns nil if f is nil or no layer carries a T.
func Attachments[T any](f *Fault) []T {
	if f == nil {
		return nil
	}
	target := reflect.TypeOf((*T)(nil)).Elem()
	var out []T
	Walk(f, func(n *Fault) bool {
		for _, a := range n.atts {
			if a.typ == target {
				out = append(out, a.val.(T))
			}
		}
		return true
	})
	return out
}

// Has reports whether any layer of the tree carries an attachment of type T.
func Has[T any](f *Fault) bool {
	_, ok := Attachment[T](f)
	return ok
}

// MustAttachment returns the first attachment of type T or panics if absent.
//
// Use sparingly — it is intended for test code or contexts where absence is a
// programming error rather than a runtime condition.
func MustAttachment[T any](f *Fault) T {
	v, ok := Attachment[T](f)
	if !ok {
		var zero T
		panic(fmt.Errorf("xgxfault.MustAttachment[%T]: no attachment of that type", zero))
	}
	return v
}

// -----------------------------------------------------------------------------
// Declarative accessors
// -----------------------------------------------------------------------------

// Single builds a reusable accessor under the Single policy: the reduce
// function receives the first T in canonical order (or the zero T and false
// when the tree carries none) and maps it to the accessor's result type.
//
// Example:
//
//	var Retryable = xgxfault.Single(func(r Retry, ok bool) bool {
//		return ok && r == RetryYes
//	})
func Single[T, R any](reduce func(val T, ok bool) R) func(*Fault) R {
	return func(f *Fault) R {
		v, ok := Attachment[T](f)
		return reduce(v, ok)
	}
}

// Multi builds a reusable accessor under the Multi policy: the reduce
// function receives every T across the tree in canonical order (nil when the
// tree carries none) and maps the whole sequence to the accessor's result.
//
// Example:
//
//	var FieldNames = xgxfault.Multi(func(fs []FieldName) []string {
//		out := make([]string, len(fs))
//		for i, f := range fs {
//			out[i] = string(f)
//		}
//		return out
//	})
func Multi[T, R any](reduce func(vals []T) R) func(*Fault) R {
	return func(f *Fault) R {
		return reduce(Attachments[T](f))
	}
}
