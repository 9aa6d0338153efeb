package flexrect

import (
	"cmp"
	"math"
	"slices"
)

// DisplayList is the flat sequence of rectangles produced by a layout pass.
// Index 0 is handed to the renderer first.
type DisplayList[T any] []Rect[T]

// ByZ returns a copy of the list sorted by ascending Z, the back-to-front
// order for renderers that paint without a depth test. Rectangles with
// equal Z keep their relative order.
func (l DisplayList[T]) ByZ() DisplayList[T] {
	out := slices.Clone(l)
	slices.SortStableFunc(out, func(a, b Rect[T]) int {
		return cmp.Compare(a.Z, b.Z)
	})
	return out
}

// Clone returns a copy of the list. Payloads are copied by value.
func (l DisplayList[T]) Clone() DisplayList[T] {
	return slices.Clone(l)
}

// AppendVertices appends the two triangles of every rectangle to dst.
func (l DisplayList[T]) AppendVertices(dst []Vertex) []Vertex {
	dst = slices.Grow(dst, len(l)*VerticesPerRect)
	for i := range l {
		v := l[i].Vertices()
		dst = append(dst, v[:]...)
	}
	return dst
}

// Vertices returns the two triangles of every rectangle, six vertices each.
func (l DisplayList[T]) Vertices() []Vertex {
	return l.AppendVertices(nil)
}

// Bounds returns the bounding box of all rectangles.
// ok is false for an empty list.
func (l DisplayList[T]) Bounds() (minX, minY, maxX, maxY float64, ok bool) {
	if len(l) == 0 {
		return 0, 0, 0, 0, false
	}
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	for i := range l {
		x0, y0, x1, y1 := l[i].Bounds()
		minX = math.Min(minX, x0)
		minY = math.Min(minY, y0)
		maxX = math.Max(maxX, x1)
		maxY = math.Max(maxY, y1)
	}
	return minX, minY, maxX, maxY, true
}
