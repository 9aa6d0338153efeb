package tree

import (
	"errors"
	"slices"
	"testing"
)

// build creates root -> (a -> (a1, a2), b) and returns the ids.
func build(t *testing.T) (tr *Tree[string], root, a, a1, a2, b NodeID) {
	t.Helper()
	tr = New[string]()
	root = tr.NewNode("root")
	a = tr.NewNode("a")
	a1 = tr.NewNode("a1")
	a2 = tr.NewNode("a2")
	b = tr.NewNode("b")
	for _, e := range [][2]NodeID{{root, a}, {a, a1}, {a, a2}, {root, b}} {
		if err := tr.Append(e[0], e[1]); err != nil {
			t.Fatalf("Append(%d, %d) = %v", e[0], e[1], err)
		}
	}
	return tr, root, a, a1, a2, b
}

func TestNewNode(t *testing.T) {
	tr := New[int]()
	id := tr.NewNode(42)

	if got := tr.Len(); got != 1 {
		t.Errorf("Len() = %d, want 1", got)
	}
	if p, ok := tr.Parent(id); ok || p != NoNode {
		t.Errorf("Parent() = (%d, %v), want (NoNode, false)", p, ok)
	}
	if got := tr.ChildCount(id); got != 0 {
		t.Errorf("ChildCount() = %d, want 0", got)
	}
	v, err := tr.Get(id)
	if err != nil || v != 42 {
		t.Errorf("Get() = (%d, %v), want (42, nil)", v, err)
	}
}

func TestAppendOrder(t *testing.T) {
	tr, root, a, a1, a2, b := build(t)

	if got := slices.Collect(tr.Children(root)); !slices.Equal(got, []NodeID{a, b}) {
		t.Errorf("Children(root) = %v, want %v", got, []NodeID{a, b})
	}
	if got := slices.Collect(tr.Children(a)); !slices.Equal(got, []NodeID{a1, a2}) {
		t.Errorf("Children(a) = %v, want %v", got, []NodeID{a1, a2})
	}
	if p, ok := tr.Parent(a2); !ok || p != a {
		t.Errorf("Parent(a2) = (%d, %v), want (%d, true)", p, ok, a)
	}
	if tr.FirstChild(a) != a1 || tr.LastChild(a) != a2 {
		t.Errorf("FirstChild/LastChild(a) = %d/%d, want %d/%d", tr.FirstChild(a), tr.LastChild(a), a1, a2)
	}
	if tr.NextSibling(a1) != a2 || tr.PrevSibling(a2) != a1 {
		t.Error("sibling links between a1 and a2 are wrong")
	}
	if tr.NextSibling(b) != NoNode || tr.PrevSibling(a) != NoNode {
		t.Error("edge siblings should be NoNode")
	}
	if got := tr.ChildCount(root); got != 2 {
		t.Errorf("ChildCount(root) = %d, want 2", got)
	}
}

func TestChildrenRestartable(t *testing.T) {
	tr, root, _, _, _, _ := build(t)

	seq := tr.Children(root)
	first := slices.Collect(seq)
	second := slices.Collect(seq)
	if !slices.Equal(first, second) {
		t.Errorf("second traversal %v differs from first %v", second, first)
	}

	// Early break must not disturb later traversals.
	for range seq {
		break
	}
	if got := slices.Collect(seq); len(got) != 2 {
		t.Errorf("traversal after break yielded %d nodes, want 2", len(got))
	}
}

func TestAppendRejectsAttachedChild(t *testing.T) {
	tr, _, a, a1, _, b := build(t)

	err := tr.Append(b, a1)
	if !errors.Is(err, ErrAlreadyAttached) {
		t.Fatalf("Append(attached) = %v, want ErrAlreadyAttached", err)
	}
	if p, _ := tr.Parent(a1); p != a {
		t.Errorf("rejected Append re-parented node: parent = %d, want %d", p, a)
	}
	if got := tr.ChildCount(b); got != 0 {
		t.Errorf("ChildCount(b) = %d after rejected Append, want 0", got)
	}
}

func TestAppendRejectsCycle(t *testing.T) {
	tr, root, a, a1, _, _ := build(t)

	tests := []struct {
		name          string
		parent, child NodeID
	}{
		{"self", root, root},
		{"root under grandchild", a1, root},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tr.Append(tt.parent, tt.child); !errors.Is(err, ErrCycle) {
				t.Errorf("Append(%d, %d) = %v, want ErrCycle", tt.parent, tt.child, err)
			}
		})
	}
	if got := tr.Root(a); got != root {
		t.Errorf("Root(a) = %d, want %d", got, root)
	}
}

func TestInvalidNode(t *testing.T) {
	tr := New[int]()
	id := tr.NewNode(1)

	if err := tr.Append(id, 7); !errors.Is(err, ErrInvalidNode) {
		t.Errorf("Append(bad child) = %v, want ErrInvalidNode", err)
	}
	if err := tr.Append(-3, id); !errors.Is(err, ErrInvalidNode) {
		t.Errorf("Append(bad parent) = %v, want ErrInvalidNode", err)
	}
	if _, err := tr.Get(99); !errors.Is(err, ErrInvalidNode) {
		t.Errorf("Get(99) = %v, want ErrInvalidNode", err)
	}
	if got := slices.Collect(tr.Children(99)); len(got) != 0 {
		t.Errorf("Children(99) = %v, want empty", got)
	}
}

func TestUpdate(t *testing.T) {
	tr := New[int]()
	id := tr.NewNode(1)
	v0 := tr.Version()

	if err := tr.Update(id, func(p *int) { *p += 10 }); err != nil {
		t.Fatalf("Update() = %v", err)
	}
	if got, _ := tr.Get(id); got != 11 {
		t.Errorf("Get() after Update = %d, want 11", got)
	}
	if tr.Version() == v0 {
		t.Error("Version() unchanged after Update")
	}
	if tr.Borrowed() {
		t.Error("Borrowed() = true after Update returned")
	}
}

func TestUpdateSingleWriter(t *testing.T) {
	tr := New[int]()
	id := tr.NewNode(1)
	other := tr.NewNode(2)

	var nestedUpdate, nestedGet, nestedAppend, otherGet error
	var borrowed bool
	err := tr.Update(id, func(p *int) {
		borrowed = tr.Borrowed()
		nestedUpdate = tr.Update(id, func(*int) {})
		_, nestedGet = tr.Get(id)
		nestedAppend = tr.Append(id, other)
		_, otherGet = tr.Get(other)
		*p = 5
	})
	if err != nil {
		t.Fatalf("Update() = %v", err)
	}
	if !borrowed {
		t.Error("Borrowed() = false inside Update")
	}
	if !errors.Is(nestedUpdate, ErrBorrowed) {
		t.Errorf("nested Update = %v, want ErrBorrowed", nestedUpdate)
	}
	if !errors.Is(nestedGet, ErrBorrowed) {
		t.Errorf("nested Get = %v, want ErrBorrowed", nestedGet)
	}
	if !errors.Is(nestedAppend, ErrBorrowed) {
		t.Errorf("nested Append = %v, want ErrBorrowed", nestedAppend)
	}
	if otherGet != nil {
		t.Errorf("Get of a different node inside Update = %v, want nil", otherGet)
	}
	if got, _ := tr.Get(id); got != 5 {
		t.Errorf("Get() = %d, want 5", got)
	}
}

func TestUpdateReleasesOnPanic(t *testing.T) {
	tr := New[int]()
	id := tr.NewNode(1)

	func() {
		defer func() { _ = recover() }()
		_ = tr.Update(id, func(p *int) {
			*p = 99
			panic("boom")
		})
	}()

	if tr.Borrowed() {
		t.Error("Borrowed() = true after panicking Update")
	}
	if got, err := tr.Get(id); err != nil || got != 1 {
		t.Errorf("Get() = (%d, %v), want (1, nil): panicking Update must not commit", got, err)
	}
}

func TestSet(t *testing.T) {
	tr := New[string]()
	id := tr.NewNode("x")
	if err := tr.Set(id, "y"); err != nil {
		t.Fatalf("Set() = %v", err)
	}
	if got, _ := tr.Get(id); got != "y" {
		t.Errorf("Get() = %q, want %q", got, "y")
	}
}

func TestAncestorsAndDepth(t *testing.T) {
	tr, root, a, a1, _, _ := build(t)

	if got := slices.Collect(tr.Ancestors(a1)); !slices.Equal(got, []NodeID{a, root}) {
		t.Errorf("Ancestors(a1) = %v, want %v", got, []NodeID{a, root})
	}
	if got := tr.Depth(a1); got != 2 {
		t.Errorf("Depth(a1) = %d, want 2", got)
	}
	if got := tr.Depth(root); got != 0 {
		t.Errorf("Depth(root) = %d, want 0", got)
	}
}

func TestVersionChanges(t *testing.T) {
	tr := New[int]()
	v := tr.Version()
	a := tr.NewNode(0)
	if tr.Version() == v {
		t.Error("NewNode did not change Version")
	}
	b := tr.NewNode(0)
	v = tr.Version()
	if err := tr.Append(a, b); err != nil {
		t.Fatal(err)
	}
	if tr.Version() == v {
		t.Error("Append did not change Version")
	}
	v = tr.Version()
	_ = tr.Append(a, b) // rejected
	if tr.Version() != v {
		t.Error("rejected Append changed Version")
	}
}

func TestZeroValueTree(t *testing.T) {
	var tr Tree[int]
	id := tr.NewNode(3)
	if got, err := tr.Get(id); err != nil || got != 3 {
		t.Errorf("Get() on zero-value tree = (%d, %v), want (3, nil)", got, err)
	}
}
