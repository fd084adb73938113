// fault.go — the failure-tree node and its constructors for xgx-fault core.
//
// Scope (tiny core):
//   - One concrete type, Fault: message + capture site + per-layer attachment
//     store + ordered child causes (+ an optional foreign error at a leaf).
//   - NON-MUTATING fluent methods: every operation returns a fresh value and
//     never edits a node that is already sealed into a tree.
//   - Keep policy out (no logging/HTTP/JSON/retry policy here).
//
// Ownership model:
//   - Wrap/WrapAll take the given trees as the new node's causes. Because no
//     operation mutates an existing node, sealing needs no runtime check:
//     attaching to an already-wrapped node produces a new detached value and
//     the tree it was sealed into is unaffected.
//   - Causes are only ever freshly built or handed over whole, so the causes
//     relation is acyclic and finite by construction.
package xgxfault

// Fault is one context layer of a failure tree. The zero value is usable but
// renders as "unknown error"; prefer the constructors.
type Fault struct {
	msg    string
	loc    Location
	atts   attachments
	causes []*Fault
	ext    error // foreign underlying cause, set by the interop bridge
}

// New creates a leaf Fault with no causes, capturing the caller's location.
func New(msg string) *Fault {
	return NewAt(msg, Caller(1))
}

// NewAt is New with a caller-supplied Location.
func NewAt(msg string, loc Location) *Fault {
	return &Fault{msg: msg, loc: loc, atts: emptyAttachments}
}

// Wrap creates a new Fault with cause as its sole child, capturing the
// caller's location. This is the "add context while propagating" operation.
// A nil cause yields a leaf.
func Wrap(msg string, cause *Fault) *Fault {
	return WrapAt(msg, Caller(1), cause)
}

// WrapAt is Wrap with a caller-supplied Location.
func WrapAt(msg string, loc Location, cause *Fault) *Fault {
	if cause == nil {
		return NewAt(msg, loc)
	}
	return &Fault{msg: msg, loc: loc, atts: emptyAttachments, causes: []*Fault{cause}}
}

// WrapAll creates a new Fault fanning in several independent trees as its
// causes, in the given order, capturing the caller's location. Nil entries
// are skipped; with no non-nil causes it yields a leaf.
func WrapAll(msg string, causes ...*Fault) *Fault {
	return WrapAllAt(msg, Caller(1), causes...)
}

// WrapAllAt is WrapAll with a caller-supplied Location.
func WrapAllAt(msg string, loc Location, causes ...*Fault) *Fault {
	kids := make([]*Fault, 0, len(causes))
	for _, c := range causes {
		if c != nil {
			kids = append(kids, c)
		}
	}
	if len(kids) == 0 {
		return NewAt(msg, loc)
	}
	return &Fault{msg: msg, loc: loc, atts: emptyAttachments, causes: kids}
}

// -----------------------------------------------------------------------------
// Fluent operations (copy-on-write)
// -----------------------------------------------------------------------------

// Attach stores val in this layer's attachment store under its dynamic type
// identity and returns a NEW Fault. Existing attachments of the same type are
// kept; the store is append-only. Attaching nil is a no-op.
//
// Attach never touches child layers: an annotation always lands on the layer
// you hold, not on a sealed cause.
func (f *Fault) Attach(val any) *Fault {
	if f == nil || val == nil {
		return f
	}
	n := f.clone()
	n.atts = attCloneAppend(n.atts, attOf(val))
	return n
}

// AttachOverride stores val like Attach but replaces any existing attachment
// of the same dynamic type in the returned value (later duplicates of that
// type are dropped). Returns a NEW Fault.
func (f *Fault) AttachOverride(val any) *Fault {
	if f == nil || val == nil {
		return f
	}
	n := f.clone()
	n.atts = attCloneOverride(n.atts, attOf(val))
	return n
}

// Context wraps f in a new outer layer carrying msg, capturing the caller's
// location. On a nil receiver it creates a fresh leaf.
func (f *Fault) Context(msg string) *Fault {
	if f == nil {
		return NewAt(msg, Caller(1))
	}
	return WrapAt(msg, Caller(1), f)
}

// clone copies the node. The attachment store is defensively copied to
// preserve copy-on-write guarantees; causes are shared, they are immutable
// once linked and no operation ever appends to a published slice.
func (f *Fault) clone() *Fault {
	n := *f
	if len(f.atts) > 0 {
		copied := make(attachments, len(f.atts))
		copy(copied, f.atts)
		n.atts = copied
	} else {
		n.atts = emptyAttachments
	}
	return &n
}

// -----------------------------------------------------------------------------
// Read-only structure access
// -----------------------------------------------------------------------------

// Message returns this layer's display message.
func (f *Fault) Message() string {
	if f == nil {
		return ""
	}
	return f.msg
}

// Location returns the capture site of this layer.
func (f *Fault) Location() Location {
	if f == nil {
		return Location{}
	}
	return f.loc
}

// Causes returns a copy of this layer's child causes, in stored order.
func (f *Fault) Causes() []*Fault {
	if f == nil || len(f.causes) == 0 {
		return nil
	}
	out := make([]*Fault, len(f.causes))
	copy(out, f.causes)
	return out
}

// External returns the foreign underlying error bridged at this layer, if any.
func (f *Fault) External() error {
	if f == nil {
		return nil
	}
	return f.ext
}

// Unwrap exposes the causes (children first, then the foreign cause) so that
// stdlib traversal via errors.Is/As observes the full tree.
func (f *Fault) Unwrap() []error {
	if f == nil {
		return nil
	}
	out := make([]error, 0, len(f.causes)+1)
	for _, c := range f.causes {
		out = append(out, c)
	}
	if f.ext != nil {
		out = append(out, f.ext)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// Interface conformance guards (keep in the file that defines the type).
var (
	_ error = (*Fault)(nil)
	_ interface{ Unwrap() []error } = (*Fault)(nil)
)
