// Package tree provides a generic retained node tree backed by an arena.
//
// Nodes are addressed by [NodeID] handles into the arena rather than by
// pointers, so the parent back-reference never participates in ownership:
// every node lives exactly as long as the [Tree] that created it.
//
// A node is created standalone with [Tree.NewNode] and attached with
// [Tree.Append]. Append rejects a child that already has a parent and a
// child that would become its own ancestor, so the structure is acyclic by
// construction. Nodes are never detached.
//
// # Access discipline
//
// [Tree.Get] returns a copy of a payload. [Tree.Update] grants scoped
// single-writer access through a callback; while the callback runs the node
// is marked as borrowed and any nested Get, Update or Append touching it
// fails with [ErrBorrowed]. Consumers that walk the whole tree (such as a
// layout pass) check [Tree.Borrowed] before starting.
//
// A Tree is not safe for concurrent use.
package tree
