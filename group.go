// group.go — fan-in collection of independent faults for xgx-fault core.
//
// Goals:
//   - Support the aggregate-failure pattern (e.g. validating independent
//     fields): collect every failure, then wrap them once under a shared
//     parent whose causes preserve declaration order.
//   - Mirror the core's nil discipline: nil faults are ignored, an empty
//     group produces no fault at all.
//
// The zero Group is ready to use.
package xgxfault

// Group accumulates independent failures for fan-in wrapping.
//
//	var g xgxfault.Group
//	g.Add(validateID(d.ID))
//	g.Add(validateName(d.Name))
//	if f := g.Wrap("validation failed"); f != nil {
//		return f
//	}
type Group struct {
	faults []*Fault
}

// Add appends f to the group. Nil is a no-op, so callers can feed fallible
// helpers straight in.
func (g *Group) Add(f *Fault) {
	if f != nil {
		g.faults = append(g.faults, f)
	}
}

// AddError bridges an arbitrary error into the group via FromError.
// Nil is a no-op.
func (g *Group) AddError(err error) {
	g.Add(FromError(err))
}

// Len returns the number of collected faults.
func (g *Group) Len() int { return len(g.faults) }

// Faults returns a copy of the collected faults in insertion order.
func (g *Group) Faults() []*Fault {
	if len(g.faults) == 0 {
		return nil
	}
	out := make([]*Fault, len(g.faults))
	copy(out, g.faults)
	return out
}

// Wrap seals the collected faults under a new parent carrying msg, capturing
// the caller's location. Returns nil when nothing was collected; a single
// collected fault becomes the sole cause, several fan in, siblings in
// insertion order.
func (g *Group) Wrap(msg string) *Fault {
	if len(g.faults) == 0 {
		return nil
	}
	return WrapAllAt(msg, Caller(1), g.faults...)
}

// Fault returns the collected failures without adding a context layer:
// nil for an empty group, the fault itself when only one was collected
// (identity preserved), or a message-less fan-in parent for several.
func (g *Group) Fault() *Fault {
	switch len(g.faults) {
	case 0:
		return nil
	case 1:
		return g.faults[0]
	default:
		return WrapAllAt("", Caller(1), g.faults...)
	}
}
