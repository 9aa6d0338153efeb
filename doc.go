// Package flexrect lays out a tree of rectangular UI nodes into a flat,
// z-ordered display list.
//
// # Overview
//
// Every node of a [tree.Tree] carries [Constraints]: an axis along which it
// splits space among its children, optional exact, minimum and maximum
// sizes, and an opaque payload. [Resolve] walks the tree once and produces a
// [DisplayList] with one positioned [Rect] per node.
//
// # Quick Start
//
//	t := tree.New[flexrect.Constraints[flexrect.DebugColor]]()
//	root := t.NewNode(flexrect.Empty(flexrect.Column, flexrect.Blue()))
//	header := t.NewNode(flexrect.Constraints[flexrect.DebugColor]{
//	    Height:  flexrect.Px(48),
//	    Payload: flexrect.Red(),
//	})
//	body := t.NewNode(flexrect.Empty(flexrect.Row, flexrect.Green()))
//	_ = t.Append(root, header)
//	_ = t.Append(root, body)
//
//	list, err := flexrect.Resolve(t, root, 800, 600)
//
// # Layout rules
//
// The viewport is the root's size. Each child first receives an even share
// of the space its parent has not yet handed out along the parent's axis and
// the parent's full size across it. Exact Width/Height then replace that
// share, max limits clamp it down, and min limits clamp it up. Children are
// placed one after another from the parent's top-left corner and may
// overflow it.
//
// # Paint order
//
// The list is emitted in post-order, children before their parent. Paint
// order is carried by [Rect.Z] instead: the root gets the middle of [0, 1)
// and every node splits its own interval among its children, so a subtree
// always paints above its parent and below the parent's next sibling.
// [DisplayList.ByZ] returns the back-to-front order.
//
// Each level divides the interval again, so with float64 values strict
// ordering holds for roughly fifty levels of nesting.
//
// # Windows
//
// [Screen] wraps a tree for a UI loop: it turns each [WindowState] into a
// display list, reports whether anything changed since the previous frame,
// and caches the lists of recently seen window sizes.
//
// # Renderers
//
// [Rect.Vertices] yields two triangles per rectangle. Package render packs
// a display list into a GPU vertex buffer; package preview paints it into an
// image.
//
// # Logging
//
// flexrect logs through [log/slog] and is silent by default; see [SetLogger].
package flexrect
