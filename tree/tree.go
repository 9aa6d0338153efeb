package tree

import (
	"errors"
	"fmt"
	"iter"
)

// Errors returned by Tree operations.
var (
	// ErrInvalidNode is returned for a NodeID that does not belong to the tree.
	ErrInvalidNode = errors.New("tree: invalid node")

	// ErrAlreadyAttached is returned by Append when the child already has a parent.
	ErrAlreadyAttached = errors.New("tree: node already attached")

	// ErrCycle is returned by Append when the child is the parent or one of its ancestors.
	ErrCycle = errors.New("tree: append would create a cycle")

	// ErrBorrowed is returned when a node is accessed while an Update on it is in progress.
	ErrBorrowed = errors.New("tree: node is mutably borrowed")
)

// NodeID is a handle to a node inside a Tree.
type NodeID int32

// NoNode is the NodeID used for a missing parent, child or sibling.
const NoNode NodeID = -1

// node is the arena slot for one tree node.
type node[T any] struct {
	payload T

	parent      NodeID
	firstChild  NodeID
	lastChild   NodeID
	prevSibling NodeID
	nextSibling NodeID
	childCount  int

	writing bool
}

// Tree is an arena of nodes carrying payloads of type T.
//
// The zero value is an empty tree ready to use.
type Tree[T any] struct {
	nodes   []node[T]
	writers int
	version uint64
}

// New creates an empty tree.
func New[T any]() *Tree[T] {
	return &Tree[T]{}
}

// NewWithCapacity creates an empty tree with room for n nodes.
func NewWithCapacity[T any](n int) *Tree[T] {
	return &Tree[T]{nodes: make([]node[T], 0, n)}
}

// NewNode wraps payload in a standalone node with no parent and no children.
func (t *Tree[T]) NewNode(payload T) NodeID {
	id := NodeID(len(t.nodes))
	t.nodes = append(t.nodes, node[T]{
		payload:     payload,
		parent:      NoNode,
		firstChild:  NoNode,
		lastChild:   NoNode,
		prevSibling: NoNode,
		nextSibling: NoNode,
	})
	t.version++
	return id
}

// Len returns the number of nodes in the arena.
func (t *Tree[T]) Len() int {
	return len(t.nodes)
}

// Version returns a counter that changes on every structural or payload mutation.
// Callers use it to detect that a cached result derived from the tree is stale.
func (t *Tree[T]) Version() uint64 {
	return t.version
}

// Valid reports whether id refers to a node of this tree.
func (t *Tree[T]) Valid(id NodeID) bool {
	return id >= 0 && int(id) < len(t.nodes)
}

// Borrowed reports whether any node is currently inside an Update callback.
func (t *Tree[T]) Borrowed() bool {
	return t.writers > 0
}

func (t *Tree[T]) check(id NodeID) error {
	if !t.Valid(id) {
		return fmt.Errorf("%w: %d", ErrInvalidNode, id)
	}
	return nil
}

// Append makes child the last child of parent.
//
// The child must be a standalone node: Append fails with ErrAlreadyAttached if
// it already has a parent, and with ErrCycle if child is parent itself or one
// of parent's ancestors. Nodes are never re-parented.
func (t *Tree[T]) Append(parent, child NodeID) error {
	if err := t.check(parent); err != nil {
		return err
	}
	if err := t.check(child); err != nil {
		return err
	}
	if t.nodes[parent].writing || t.nodes[child].writing {
		return ErrBorrowed
	}
	if t.nodes[child].parent != NoNode {
		return fmt.Errorf("%w: node %d has parent %d", ErrAlreadyAttached, child, t.nodes[child].parent)
	}
	for a := parent; a != NoNode; a = t.nodes[a].parent {
		if a == child {
			return fmt.Errorf("%w: node %d is an ancestor of %d", ErrCycle, child, parent)
		}
	}

	p := &t.nodes[parent]
	c := &t.nodes[child]
	c.parent = parent
	c.prevSibling = p.lastChild
	c.nextSibling = NoNode
	if p.lastChild != NoNode {
		t.nodes[p.lastChild].nextSibling = child
	} else {
		p.firstChild = child
	}
	p.lastChild = child
	p.childCount++
	t.version++
	return nil
}

// Parent returns the parent of id. The second result is false for a root
// node or an invalid id.
func (t *Tree[T]) Parent(id NodeID) (NodeID, bool) {
	if !t.Valid(id) {
		return NoNode, false
	}
	p := t.nodes[id].parent
	return p, p != NoNode
}

// Root walks parent links up from id and returns the topmost ancestor.
func (t *Tree[T]) Root(id NodeID) NodeID {
	if !t.Valid(id) {
		return NoNode
	}
	for t.nodes[id].parent != NoNode {
		id = t.nodes[id].parent
	}
	return id
}

// FirstChild returns the first child of id, or NoNode.
func (t *Tree[T]) FirstChild(id NodeID) NodeID {
	if !t.Valid(id) {
		return NoNode
	}
	return t.nodes[id].firstChild
}

// LastChild returns the last child of id, or NoNode.
func (t *Tree[T]) LastChild(id NodeID) NodeID {
	if !t.Valid(id) {
		return NoNode
	}
	return t.nodes[id].lastChild
}

// NextSibling returns the sibling after id, or NoNode.
func (t *Tree[T]) NextSibling(id NodeID) NodeID {
	if !t.Valid(id) {
		return NoNode
	}
	return t.nodes[id].nextSibling
}

// PrevSibling returns the sibling before id, or NoNode.
func (t *Tree[T]) PrevSibling(id NodeID) NodeID {
	if !t.Valid(id) {
		return NoNode
	}
	return t.nodes[id].prevSibling
}

// ChildCount returns the number of direct children of id.
func (t *Tree[T]) ChildCount(id NodeID) int {
	if !t.Valid(id) {
		return 0
	}
	return t.nodes[id].childCount
}

// Children returns an iterator over the direct children of id in insertion
// order. Each call to the returned sequence starts a fresh traversal.
func (t *Tree[T]) Children(id NodeID) iter.Seq[NodeID] {
	return func(yield func(NodeID) bool) {
		if !t.Valid(id) {
			return
		}
		for c := t.nodes[id].firstChild; c != NoNode; c = t.nodes[c].nextSibling {
			if !yield(c) {
				return
			}
		}
	}
}

// Ancestors returns an iterator over the parent chain of id, nearest first.
// The node itself is not included.
func (t *Tree[T]) Ancestors(id NodeID) iter.Seq[NodeID] {
	return func(yield func(NodeID) bool) {
		if !t.Valid(id) {
			return
		}
		for a := t.nodes[id].parent; a != NoNode; a = t.nodes[a].parent {
			if !yield(a) {
				return
			}
		}
	}
}

// Descendants returns an iterator over id and all nodes below it in pre-order.
func (t *Tree[T]) Descendants(id NodeID) iter.Seq[NodeID] {
	return func(yield func(NodeID) bool) {
		for e := range t.Traverse(id) {
			if e.Kind == EdgeStart && !yield(e.Node) {
				return
			}
		}
	}
}

// Get returns a copy of the payload of id.
func (t *Tree[T]) Get(id NodeID) (T, error) {
	var zero T
	if err := t.check(id); err != nil {
		return zero, err
	}
	if t.nodes[id].writing {
		return zero, fmt.Errorf("%w: node %d", ErrBorrowed, id)
	}
	return t.nodes[id].payload, nil
}

// Set replaces the payload of id.
func (t *Tree[T]) Set(id NodeID, payload T) error {
	return t.Update(id, func(p *T) { *p = payload })
}

// Update calls fn with exclusive access to the payload of id.
//
// fn edits a working copy that is stored back when it returns, so the pointer
// must not be retained. While fn runs, any Get, Update or Append involving id
// returns ErrBorrowed.
func (t *Tree[T]) Update(id NodeID, fn func(*T)) error {
	if err := t.check(id); err != nil {
		return err
	}
	if t.nodes[id].writing {
		return fmt.Errorf("%w: node %d", ErrBorrowed, id)
	}
	t.nodes[id].writing = true
	t.writers++
	defer func() {
		t.nodes[id].writing = false
		t.writers--
	}()

	p := t.nodes[id].payload
	fn(&p)
	t.nodes[id].payload = p
	t.version++
	return nil
}
