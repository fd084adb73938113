// format.go — Display/Debug rendering and fmt.Formatter for xgx-fault core.
//
// Behavior:
//
//	%s, %v   → Display: concise single line. Messages joined outer-to-inner
//	           with ": ", fan-in siblings joined with "; ", foreign causes
//	           appended last. "unknown error" for a completely empty fault.
//	%+v      → Debug: verbose multi-line, indentation reflecting tree depth:
//	             msg="write failed"
//	               at /path/io.go:42
//	               attach mypkg.Retry = yes
//	               caused by:
//	                 msg="disk full"
//	                   at /path/io.go:40
//	%q       → quoted Display.
//
// Rationale:
//   - Both forms run the canonical traversal engine (traverse.go), the same
//     walk that drives the accessors, so rendering order and retrieval order
//     can never diverge. The post hook places foreign causes after a node's
//     subtree, matching Unwrap() order.
//   - Attachment values are dumped via go-spew with pointer addresses off and
//     map keys sorted, so Debug output is deterministic and safe on
//     recursive or pointer-heavy attachment values.
//   - Keep core free of logging/HTTP/JSON policy; only fmt formatting.
package xgxfault

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/davecgh/go-spew/spew"
)

// unknownMsg is the Display fallback for a fault with no message, no causes
// and no foreign cause.
const unknownMsg = "unknown error"

// dumpConf renders attachment values deterministically.
var dumpConf = spew.ConfigState{
	Indent:                  " ",
	SortKeys:                true,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
}

// Error returns the Display rendering: each layer's message in traversal
// order, outer context first, root causes last.
func (f *Fault) Error() string {
	if f == nil {
		return ""
	}
	s := displayOf(f)
	if s == "" {
		return unknownMsg
	}
	return s
}

// Debug returns the verbose multi-line rendering with capture sites and
// attachment dumps, indented by tree depth.
func (f *Fault) Debug() string {
	if f == nil {
		return ""
	}
	return debugOf(f)
}

// Format implements fmt.Formatter.
func (f *Fault) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			_, _ = io.WriteString(s, f.Debug())
			return
		}
		_, _ = io.WriteString(s, f.Error())
	case 's':
		_, _ = io.WriteString(s, f.Error())
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", f.Error())
	default:
		_, _ = io.WriteString(s, f.Error())
	}
}

// displayOf renders the tree as a single line by running the canonical walk.
// The separator before a segment depends on where the walk moved: descending
// joins with ": " (context over cause), staying level or climbing back out
// joins with "; " (the next fan-in sibling branch). Layers with no message
// contribute nothing, so empty aggregates collapse away rather than producing
// dangling separators. Foreign causes render in the post hook, one level
// below their layer, after that layer's subtree.
func displayOf(f *Fault) string {
	var sb strings.Builder
	prevDepth := 0
	wrote := false

	seg := func(text string, depth int) {
		if wrote {
			if depth > prevDepth {
				sb.WriteString(": ")
			} else {
				sb.WriteString("; ")
			}
		}
		sb.WriteString(text)
		wrote = true
		prevDepth = depth
	}

	walk(f,
		func(n *Fault, depth int) bool {
			if n.msg != "" {
				seg(n.msg, depth)
			}
			return true
		},
		func(n *Fault, depth int) {
			if n.ext != nil {
				seg(n.ext.Error(), depth+1)
			}
		})
	return sb.String()
}

// debugOf renders the tree verbosely by running the canonical walk. Each
// level indents four spaces; the "caused by:" connective sits at the parent's
// detail level, fan-in siblings indented equally. Foreign causes render their
// whole unwrap chain in the post hook, after the layer's subtree.
func debugOf(f *Fault) string {
	lines := make([]string, 0, 8)

	walk(f,
		func(n *Fault, depth int) bool {
			indent := strings.Repeat("    ", depth)
			if depth > 0 {
				lines = append(lines, strings.Repeat("    ", depth-1)+"  caused by:")
			}
			lines = append(lines, indent+fmt.Sprintf("msg=%q", n.msg))
			lines = append(lines, indent+"  at "+n.loc.String())
			for _, a := range n.atts {
				lines = append(lines, indent+"  attach "+a.typ.String()+" = "+dumpConf.Sprintf("%v", a.val))
			}
			return true
		},
		func(n *Fault, depth int) {
			indent := strings.Repeat("    ", depth)
			for err := n.ext; err != nil; err = errors.Unwrap(err) {
				lines = append(lines, indent+"  caused by: "+err.Error())
			}
		})
	return strings.Join(lines, "\n")
}

// Interface conformance guard.
var _ fmt.Formatter = (*Fault)(nil)
