package tree

import "iter"

// EdgeKind distinguishes entering a node from leaving it during Traverse.
type EdgeKind uint8

const (
	EdgeStart EdgeKind = iota // Node entered, before its children
	EdgeEnd                   // Node left, after its children
)

// String returns "start" or "end".
func (k EdgeKind) String() string {
	if k == EdgeEnd {
		return "end"
	}
	return "start"
}

// Edge is one step of a depth-first traversal.
type Edge struct {
	Kind EdgeKind
	Node NodeID
}

// Traverse returns an iterator over the Start and End edges of the subtree
// rooted at id. Every node yields exactly one Start and one End; a node's End
// comes after the edges of all its descendants.
//
// The walk follows sibling links instead of recursing, so arbitrarily deep
// trees do not grow the goroutine stack.
func (t *Tree[T]) Traverse(id NodeID) iter.Seq[Edge] {
	return func(yield func(Edge) bool) {
		if !t.Valid(id) {
			return
		}
		e := Edge{Kind: EdgeStart, Node: id}
		for {
			if !yield(e) {
				return
			}
			n := &t.nodes[e.Node]
			switch {
			case e.Kind == EdgeStart && n.firstChild != NoNode:
				e = Edge{Kind: EdgeStart, Node: n.firstChild}
			case e.Kind == EdgeStart:
				e.Kind = EdgeEnd
			case e.Node == id:
				return
			case n.nextSibling != NoNode:
				e = Edge{Kind: EdgeStart, Node: n.nextSibling}
			default:
				e = Edge{Kind: EdgeEnd, Node: n.parent}
			}
		}
	}
}

// Depth returns the number of ancestors of id.
func (t *Tree[T]) Depth(id NodeID) int {
	d := 0
	for range t.Ancestors(id) {
		d++
	}
	return d
}
