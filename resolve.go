package flexrect

import (
	"fmt"
	"math"

	"github.com/gogpu/flexrect/tree"
)

// overflowEpsilon absorbs rounding when children exactly fill their parent.
const overflowEpsilon = 1e-9

// Resolve lays out the subtree rooted at root inside a width x height
// viewport and returns one Rect per node.
//
// The viewport acts as the root's exact size; the root's own Width and
// Height are ignored, its max and min limits still apply. Every other node
// starts from an even share of the space its parent has left on the
// parent's axis, (available - consumed) / (siblings - index), and the full
// parent size on the cross axis. Its exact Width/Height then replace that
// share, then max limits clamp down, then min limits clamp up. Nodes are
// placed one after another along the parent's axis starting at the
// parent's top-left corner. Children may overflow their parent; that is not
// an error.
//
// The returned list is in post-order: every node follows all of its
// descendants. Z values order painting independently of list position: a
// node's descendants have higher Z than the node and lower Z than the node's
// next sibling. Use DisplayList.ByZ for a back-to-front ordering.
//
// Every level of nesting divides the Z range again, so with the default
// range strict ordering holds for about fifty levels. Deeper nodes may share
// their parent's Z or reach the end of the range; Resolve still returns them
// and logs a warning.
//
// Resolve does not modify the tree. It fails fast on an invalid viewport, a
// root that has a parent, or a tree with an Update in progress.
func Resolve[T any](t *tree.Tree[Constraints[T]], root tree.NodeID, width, height float64, opts ...ResolveOption) (DisplayList[T], error) {
	if !validLength(width) || !validLength(height) {
		Logger().Warn("flexrect: rejected viewport", "width", width, "height", height)
		return nil, fmt.Errorf("%w: %vx%v", ErrInvalidViewport, width, height)
	}

	o := defaultResolveOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !(o.zMin < o.zMax) || math.IsInf(o.zMin, 0) || math.IsInf(o.zMax, 0) {
		return nil, fmt.Errorf("%w: [%v, %v)", ErrInvalidZRange, o.zMin, o.zMax)
	}
	log := o.logger
	if log == nil {
		log = Logger()
	}

	if t.Borrowed() {
		log.Warn("flexrect: resolve on borrowed tree")
		return nil, fmt.Errorf("flexrect: resolve: %w", tree.ErrBorrowed)
	}
	c, err := t.Get(root)
	if err != nil {
		return nil, fmt.Errorf("flexrect: resolve: %w", err)
	}
	if p, ok := t.Parent(root); ok {
		return nil, fmt.Errorf("%w: node %d has parent %d", ErrNotRoot, root, p)
	}

	r := &resolver[T]{
		tree: t,
		out:  make(DisplayList[T], 0, t.Len()),
	}
	w, h := c.clamp(width, height)
	if err := r.place(root, &c, 0, 0, w, h, o.zMin, o.zMax, 0, 1); err != nil {
		return nil, fmt.Errorf("flexrect: resolve: %w", err)
	}

	log.Debug("flexrect: resolved",
		"nodes", len(r.out),
		"width", width,
		"height", height,
		"overflowing", r.overflowing)
	if r.collapsed > 0 {
		log.Warn("flexrect: z range exhausted",
			"nodes", r.collapsed,
			"zmin", o.zMin,
			"zmax", o.zMax)
	}
	return r.out, nil
}

// ResolveRoot is Resolve with the viewport taken from the root's own Width
// and Height. It fails with ErrRootSizeUnset if either is missing.
func ResolveRoot[T any](t *tree.Tree[Constraints[T]], root tree.NodeID, opts ...ResolveOption) (DisplayList[T], error) {
	c, err := t.Get(root)
	if err != nil {
		return nil, fmt.Errorf("flexrect: resolve: %w", err)
	}
	w, okW := c.Width.Get()
	h, okH := c.Height.Get()
	if !okW || !okH {
		return nil, fmt.Errorf("%w: node %d (width %s, height %s)", ErrRootSizeUnset, root, c.Width, c.Height)
	}
	return Resolve(t, root, w, h, opts...)
}

func validLength(v float64) bool {
	return v >= 0 && !math.IsInf(v, 1) // NaN fails v >= 0
}

// resolver carries the state of one layout pass.
type resolver[T any] struct {
	tree *tree.Tree[Constraints[T]]
	out  DisplayList[T]

	// overflowing counts parents whose children extend past them on the main axis.
	overflowing int

	// collapsed counts nodes whose Z is not strictly inside the range their
	// parent handed down, which happens once float64 runs out of precision.
	collapsed int
}

// place emits the subtree of id, which has already been sized to w x h and
// positioned at (x, y). index and count locate id among its siblings and
// [zMin, zMax) is the paint-order range its parent handed down.
func (r *resolver[T]) place(id tree.NodeID, c *Constraints[T], x, y, w, h, zMin, zMax float64, index, count int) error {
	seg := (zMax - zMin) / float64(count+1)
	z := zMin + seg*float64(index+1)
	if !(zMin < z && z < zMax) {
		r.collapsed++
	}

	n := r.tree.ChildCount(id)
	avail := w
	if c.Axis == Column {
		avail = h
	}

	consumed := 0.0
	i := 0
	for child := range r.tree.Children(id) {
		cc, err := r.tree.Get(child)
		if err != nil {
			return err
		}

		cw, ch := w, h
		share := (avail - consumed) / float64(n-i)
		if c.Axis == Row {
			cw = share
		} else {
			ch = share
		}
		cw, ch = cc.size(cw, ch)

		cx, cy := x, y
		if c.Axis == Row {
			cx += consumed
			consumed += cw
		} else {
			cy += consumed
			consumed += ch
		}

		if err := r.place(child, &cc, cx, cy, cw, ch, z, z+seg, i, n); err != nil {
			return err
		}
		i++
	}
	if consumed > avail+overflowEpsilon {
		r.overflowing++
	}

	r.out = append(r.out, NewRect(x, y, w, h, z, c.Payload))
	return nil
}
