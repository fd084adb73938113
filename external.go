// external.go — bridging arbitrary errors into and out of the failure tree.
//
// Purpose
//   - Wrap externally-defined failure values as leaf causes, so one tree can
//     carry both native layers and foreign errors.
//   - Preserve perfect interop with the Go standard library: Fault implements
//     error and Unwrap() []error (fault.go), so errors.Is/As traverse the
//     whole tree including foreign chains.
//
// Background
//   - Go error traversal hinges on the Unwrap forms: Unwrap() error and,
//     since Go 1.20, Unwrap() []error (errors.Join, multi-%w). hashicorp's
//     go-multierror predates the multi form and exposes WrappedErrors()
//     instead; the bridge recognizes both so foreign aggregates fan in as
//     proper sibling causes.
package xgxfault

// multi-unwrap interfaces: the stdlib form plus the hashicorp form.
type multiUnwrapper interface{ Unwrap() []error }
type wrappedErrors interface{ WrappedErrors() []error }

// FromError converts any error into a *Fault without adding a context layer.
//   - nil → nil (contrast WrapError(msg, nil), which creates a fresh leaf)
//   - *Fault → returned as-is (identity preserved)
//   - multi-error (Unwrap() []error or WrappedErrors() []error) → a
//     message-less fan-in node whose causes bridge each child
//   - other error → a leaf carrying it as the foreign underlying cause
func FromError(err error) *Fault {
	if err == nil {
		return nil
	}
	if f, ok := err.(*Fault); ok {
		return f
	}
	if kids := fanOut(err); len(kids) > 0 {
		return &Fault{atts: emptyAttachments, causes: kids}
	}
	return &Fault{atts: emptyAttachments, ext: err}
}

// WrapError adds a context layer with msg over any error, capturing the
// caller's location.
//   - nil → a fresh leaf with just the message
//   - *Fault → wrapped as the sole cause
//   - multi-error → its children fan in as sibling causes under the new layer
//   - other error → a single layer carrying msg with err as foreign cause
//     (no intermediate node, matching the shape of a native leaf built at
//     the failure site)
func WrapError(msg string, err error) *Fault {
	loc := Caller(1)
	if err == nil {
		return NewAt(msg, loc)
	}
	if f, ok := err.(*Fault); ok {
		return WrapAt(msg, loc, f)
	}
	if kids := fanOut(err); len(kids) > 0 {
		return &Fault{msg: msg, loc: loc, atts: emptyAttachments, causes: kids}
	}
	return &Fault{msg: msg, loc: loc, atts: emptyAttachments, ext: err}
}

// fanOut returns bridged children for foreign multi-errors, or nil when err
// is not an aggregate. Nil children are skipped defensively.
func fanOut(err error) []*Fault {
	var children []error
	switch m := err.(type) {
	case multiUnwrapper:
		children = m.Unwrap()
	case wrappedErrors:
		children = m.WrappedErrors()
	default:
		return nil
	}
	kids := make([]*Fault, 0, len(children))
	for _, c := range children {
		if f := FromError(c); f != nil {
			kids = append(kids, f)
		}
	}
	return kids
}
