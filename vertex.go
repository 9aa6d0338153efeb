package flexrect

import "image/color"

// Vertex is one corner of a rectangle as handed to a renderer.
type Vertex struct {
	Position [2]float32
	Z        float32
}

// quadCorners lists the corners of the two triangles covering a rectangle:
// TL, TR, BL then TR, BR, BL. Both triangles share the same winding.
var quadCorners = [6]Corner{TopLeft, TopRight, BottomLeft, TopRight, BottomRight, BottomLeft}

// VerticesPerRect is the number of vertices Vertices emits per rectangle.
const VerticesPerRect = len(quadCorners)

// Vertices converts the rectangle into two triangles.
func (r Rect[T]) Vertices() [VerticesPerRect]Vertex {
	var out [VerticesPerRect]Vertex
	z := float32(r.Z)
	for i, c := range quadCorners {
		out[i] = Vertex{
			Position: [2]float32{float32(r.X[c]), float32(r.Y[c])},
			Z:        z,
		}
	}
	return out
}

// ColorFunc extracts a fill color from a payload.
// A nil result means the rectangle has no color of its own.
type ColorFunc[T any] func(T) color.Color

// PayloadColor returns the payload itself when it implements color.Color,
// otherwise nil. It is the default ColorFunc of the renderer packages.
func PayloadColor[T any](payload T) color.Color {
	if c, ok := any(payload).(color.Color); ok {
		return c
	}
	return nil
}
