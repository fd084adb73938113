// traverse.go — canonical walk over a failure tree for xgx-fault core.
//
// Traversal semantics:
//   - Walk: pre-order depth-first (visit, then children in stored order,
//     left to right). Stops early if the visitor returns false.
//   - This single order is canonical: it defines Single-accessor precedence
//     (outer layers before deeper causes), Multi-accessor result order, and
//     the rendering order of both text forms (format.go runs the same
//     engine via the post-order hook).
//   - The walk is read-only and restartable: it never mutates the tree and
//     repeated runs visit the identical sequence.
//
// Notes:
//   - Construction only links freshly built, immutable nodes, so the tree is
//     acyclic and finite; traversal is total for every constructible tree.
//   - The engine is iterative with one frame per *path* level (not per
//     pending sibling), so arbitrarily wide fan-in costs O(depth) stack.
package xgxfault

// walkFrame tracks one path level of the iterative engine.
type walkFrame struct {
	n     *Fault
	depth int
	next  int // next child index; -1 until the node itself is visited
}

// walk is the engine behind Walk and the renderers: iterative pre-order with
// an optional post hook fired once a node's whole subtree has been visited.
// pre returning false aborts the traversal.
func walk(f *Fault, pre func(*Fault, int) bool, post func(*Fault, int)) {
	if f == nil || pre == nil {
		return
	}
	stack := make([]walkFrame, 0, 8)
	stack = append(stack, walkFrame{n: f, next: -1})

	for len(stack) > 0 {
		top := &stack[len(stack)-1]

		if top.next < 0 {
			top.next = 0
			if !pre(top.n, top.depth) {
				return
			}
		}

		// Skip nil children defensively, then descend into the next one.
		for top.next < len(top.n.causes) && top.n.causes[top.next] == nil {
			top.next++
		}
		if top.next < len(top.n.causes) {
			child := top.n.causes[top.next]
			top.next++
			stack = append(stack, walkFrame{n: child, depth: top.depth + 1, next: -1})
			continue
		}

		if post != nil {
			post(top.n, top.depth)
		}
		stack = stack[:len(stack)-1]
	}
}

// Walk traverses the tree rooted at f depth-first and calls visit for each
// node in PRE-ORDER (node before its causes, causes left to right). If visit
// returns false, traversal stops. Nil root or visitor is a no-op.
func Walk(f *Fault, visit func(*Fault) bool) {
	if visit == nil {
		return
	}
	walk(f, func(n *Fault, _ int) bool { return visit(n) }, nil)
}

// Leaves returns the cause-less nodes of the tree in traversal order.
// For a simple chain that is the single innermost node; for fan-in trees it
// is every independent underlying failure, siblings in declaration order.
func Leaves(f *Fault) []*Fault {
	if f == nil {
		return nil
	}
	out := make([]*Fault, 0, 4)
	Walk(f, func(n *Fault) bool {
		if len(n.causes) == 0 {
			out = append(out, n)
		}
		return true
	})
	return out
}

// RootCause returns the first leaf in traversal order (the deepest node along
// the first cause path), or nil for a nil tree.
func RootCause(f *Fault) *Fault {
	var root *Fault
	Walk(f, func(n *Fault) bool {
		if len(n.causes) == 0 {
			root = n
			return false
		}
		return true
	})
	return root
}
