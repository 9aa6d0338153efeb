package flexrect

import (
	"fmt"
	"strconv"
)

// Axis specifies how a node distributes space among its children.
type Axis uint8

const (
	Row    Axis = iota // Children share the width, placed left-to-right
	Column             // Children share the height, placed top-to-bottom
)

// String returns "row" or "column".
func (a Axis) String() string {
	switch a {
	case Row:
		return "row"
	case Column:
		return "column"
	default:
		return "Axis(" + strconv.Itoa(int(a)) + ")"
	}
}

// ParseAxis converts "row" or "column" to an Axis.
func ParseAxis(s string) (Axis, error) {
	switch s {
	case "row", "Row", "":
		return Row, nil
	case "column", "Column", "col":
		return Column, nil
	}
	return Row, fmt.Errorf("flexrect: unknown axis %q", s)
}

// Dim is an optional length. The zero value is unset, meaning unconstrained.
type Dim struct {
	v   float64
	set bool
}

// Px returns a Dim set to v.
func Px(v float64) Dim {
	return Dim{v: v, set: true}
}

// Unset returns an unset Dim.
func Unset() Dim {
	return Dim{}
}

// Get returns the value and whether it is set.
func (d Dim) Get() (float64, bool) {
	return d.v, d.set
}

// IsSet reports whether d carries a value.
func (d Dim) IsSet() bool {
	return d.set
}

// Or returns the value of d, or fallback when d is unset.
func (d Dim) Or(fallback float64) float64 {
	if d.set {
		return d.v
	}
	return fallback
}

// String formats d as a number, or "unset".
func (d Dim) String() string {
	if !d.set {
		return "unset"
	}
	return strconv.FormatFloat(d.v, 'g', -1, 64)
}

// Constraints is the per-node layout record.
//
// Width and Height pin the node to an exact size on that axis and override
// the share its parent would otherwise give it. Max and min limits are
// applied afterwards, max first, so a min larger than max wins.
// Payload is carried through to the emitted Rect unchanged.
type Constraints[T any] struct {
	MinWidth  Dim
	MinHeight Dim
	MaxWidth  Dim
	MaxHeight Dim
	Width     Dim
	Height    Dim

	// Axis declares how this node splits space among its own children.
	Axis Axis

	Payload T
}

// Empty returns unconstrained Constraints with the given axis and payload.
func Empty[T any](axis Axis, payload T) Constraints[T] {
	return Constraints[T]{Axis: axis, Payload: payload}
}

// Sized returns Empty constraints pinned to width x height.
// Root nodes laid out with ResolveRoot must be created this way.
func Sized[T any](width, height float64, axis Axis, payload T) Constraints[T] {
	return Constraints[T]{Width: Px(width), Height: Px(height), Axis: axis, Payload: payload}
}

// clamp applies max then min to w and h.
func (c *Constraints[T]) clamp(w, h float64) (float64, float64) {
	return clampDim(w, c.MaxWidth, c.MinWidth), clampDim(h, c.MaxHeight, c.MinHeight)
}

// size applies the exact override, then clamp.
func (c *Constraints[T]) size(w, h float64) (float64, float64) {
	w = c.Width.Or(w)
	h = c.Height.Or(h)
	return c.clamp(w, h)
}

func clampDim(v float64, maxV, minV Dim) float64 {
	if m, ok := maxV.Get(); ok && v > m {
		v = m
	}
	if m, ok := minV.Get(); ok && v < m {
		v = m
	}
	return v
}
