package flexrect

import "math"

// Corner indexes the corner arrays of a Rect.
type Corner uint8

const (
	TopLeft Corner = iota
	TopRight
	BottomLeft
	BottomRight
)

// Rect is a resolved rectangle of the display list.
//
// The four corners are kept as parallel X and Y arrays so that translation
// and rotation update all corners in one pass. After a rotation the corners
// stay labelled by their original identity: X[TopLeft] is wherever the
// former top-left corner ended up.
type Rect[T any] struct {
	X [4]float64
	Y [4]float64

	// Z orders painting: higher values paint over lower ones. It lies in
	// [0, 1) and has no meaning as a 3D depth.
	Z float64

	// Payload is copied from the originating node's Constraints.
	Payload T
}

// NewRectEdges creates a rectangle from its edge coordinates.
func NewRectEdges[T any](top, bottom, left, right, z float64, payload T) Rect[T] {
	return Rect[T]{
		X:       [4]float64{left, right, left, right},
		Y:       [4]float64{top, top, bottom, bottom},
		Z:       z,
		Payload: payload,
	}
}

// NewRect creates a rectangle from its top-left corner and size.
// It is equivalent to NewRectEdges(top, top+height, left, left+width, ...).
func NewRect[T any](left, top, width, height, z float64, payload T) Rect[T] {
	return NewRectEdges(top, top+height, left, left+width, z, payload)
}

// Corner returns the position of corner c.
func (r Rect[T]) Corner(c Corner) Point {
	return Point{X: r.X[c], Y: r.Y[c]}
}

// Left returns the x coordinate of the top-left corner.
func (r Rect[T]) Left() float64 { return r.X[TopLeft] }

// Top returns the y coordinate of the top-left corner.
func (r Rect[T]) Top() float64 { return r.Y[TopLeft] }

// Right returns the x coordinate of the top-right corner.
func (r Rect[T]) Right() float64 { return r.X[TopRight] }

// Bottom returns the y coordinate of the bottom-left corner.
func (r Rect[T]) Bottom() float64 { return r.Y[BottomLeft] }

// Width returns the length of the top edge.
// Before any rotation this is right minus left.
func (r Rect[T]) Width() float64 {
	return r.Corner(TopLeft).Distance(r.Corner(TopRight)) * sign(r.X[TopRight]-r.X[TopLeft])
}

// Height returns the length of the left edge.
// Before any rotation this is bottom minus top.
func (r Rect[T]) Height() float64 {
	return r.Corner(TopLeft).Distance(r.Corner(BottomLeft)) * sign(r.Y[BottomLeft]-r.Y[TopLeft])
}

// sign keeps inverted extents negative so that degenerate rectangles
// round-trip through Width and Height.
func sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}

// Center returns the midpoint of the top-left to bottom-right diagonal.
func (r Rect[T]) Center() Point {
	return r.Corner(TopLeft).Midpoint(r.Corner(BottomRight))
}

// Bounds returns the axis-aligned bounding box of the four corners.
func (r Rect[T]) Bounds() (minX, minY, maxX, maxY float64) {
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	for i := range 4 {
		minX = math.Min(minX, r.X[i])
		maxX = math.Max(maxX, r.X[i])
		minY = math.Min(minY, r.Y[i])
		maxY = math.Max(maxY, r.Y[i])
	}
	return minX, minY, maxX, maxY
}

// Empty reports whether the rectangle covers no area.
func (r Rect[T]) Empty() bool {
	return r.Width() <= 0 || r.Height() <= 0
}

// SetWidth moves the right edge so the rectangle is width wide,
// keeping the left edge fixed.
//
// Only meaningful on an unrotated rectangle: after RotateAboutCenter the
// corners no longer line up with the axes and the result is skewed.
func (r *Rect[T]) SetWidth(width float64) {
	r.X[TopRight] = r.X[TopLeft] + width
	r.X[BottomRight] = r.X[BottomLeft] + width
}

// SetHeight moves the bottom edge so the rectangle is height tall,
// keeping the top edge fixed.
//
// Only meaningful on an unrotated rectangle, see SetWidth.
func (r *Rect[T]) SetHeight(height float64) {
	r.Y[BottomLeft] = r.Y[TopLeft] + height
	r.Y[BottomRight] = r.Y[TopRight] + height
}
