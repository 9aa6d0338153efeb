// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"encoding/binary"
	"image/color"
	"math"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/flexrect"
)

// VertexStride is the byte stride per vertex in the rectangle pipeline:
// position (vec2<f32>) + depth (f32) + color (vec4<f32>) = 8 + 4 + 16 = 28.
const VertexStride = 28

// UniformSize is the size of the viewport uniform written by Uniforms.
const UniformSize = 16

// VertexLayout returns the vertex buffer layout for the rectangle pipeline.
func VertexLayout() []gputypes.VertexBufferLayout {
	return []gputypes.VertexBufferLayout{
		{
			ArrayStride: VertexStride,
			StepMode:    gputypes.VertexStepModeVertex,
			Attributes: []gputypes.VertexAttribute{
				{Format: gputypes.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0},  // position
				{Format: gputypes.VertexFormatFloat32, Offset: 8, ShaderLocation: 1},    // depth
				{Format: gputypes.VertexFormatFloat32x4, Offset: 12, ShaderLocation: 2}, // color
			},
		},
	}
}

// Primitive returns the primitive state: a plain triangle list without
// culling, since rotated rectangles may flip their winding on screen.
func Primitive() gputypes.PrimitiveState {
	return gputypes.PrimitiveState{
		Topology: gputypes.PrimitiveTopologyTriangleList,
		CullMode: gputypes.CullModeNone,
	}
}

// ColorTarget returns the color target state for a surface of the given
// format, blending premultiplied colors over what is already there.
func ColorTarget(format gputypes.TextureFormat) gputypes.ColorTargetState {
	premulBlend := gputypes.BlendStatePremultiplied()
	return gputypes.ColorTargetState{
		Format:    format,
		Blend:     &premulBlend,
		WriteMask: gputypes.ColorWriteMaskAll,
	}
}

// Uniforms returns the viewport uniform for a width x height surface.
func Uniforms(width, height float32) []byte {
	buf := make([]byte, UniformSize)
	binary.LittleEndian.PutUint32(buf[0:4], math.Float32bits(width))
	binary.LittleEndian.PutUint32(buf[4:8], math.Float32bits(height))
	return buf
}

// Encode returns the vertex data for list, six vertices per rectangle in
// back-to-front order. colorOf picks each rectangle's fill; nil means
// flexrect.PayloadColor. Rectangles without a color are written fully
// transparent so that vertex i always belongs to rectangle i/6 of list.ByZ().
func Encode[T any](list flexrect.DisplayList[T], colorOf flexrect.ColorFunc[T]) []byte {
	return AppendEncoded(nil, list, colorOf)
}

// AppendEncoded is Encode writing into dst, reusing its capacity.
// It returns dst extended by the encoded vertices.
func AppendEncoded[T any](dst []byte, list flexrect.DisplayList[T], colorOf flexrect.ColorFunc[T]) []byte {
	if colorOf == nil {
		colorOf = flexrect.PayloadColor[T]
	}

	start := len(dst)
	needed := start + len(list)*flexrect.VerticesPerRect*VertexStride
	if cap(dst) < needed {
		grown := make([]byte, needed)
		copy(grown, dst)
		dst = grown
	} else {
		dst = dst[:needed]
	}

	offset := start
	for _, r := range list.ByZ() {
		rgba := premultiplied(colorOf(r.Payload))
		for _, v := range r.Vertices() {
			writeVertex(dst[offset:], v, rgba)
			offset += VertexStride
		}
	}

	flexrect.Logger().Debug("render: encoded display list",
		"rects", len(list),
		"bytes", needed-start)
	return dst
}

// premultiplied converts c to premultiplied float components.
// A nil color yields transparent black.
func premultiplied(c color.Color) [4]float32 {
	if c == nil {
		return [4]float32{}
	}
	r, g, b, a := c.RGBA()
	return [4]float32{
		float32(r) / 0xffff,
		float32(g) / 0xffff,
		float32(b) / 0xffff,
		float32(a) / 0xffff,
	}
}

func writeVertex(buf []byte, v flexrect.Vertex, color [4]float32) {
	binary.LittleEndian.PutUint32(buf[0:4], math.Float32bits(v.Position[0]))
	binary.LittleEndian.PutUint32(buf[4:8], math.Float32bits(v.Position[1]))
	binary.LittleEndian.PutUint32(buf[8:12], math.Float32bits(v.Z))
	binary.LittleEndian.PutUint32(buf[12:16], math.Float32bits(color[0]))
	binary.LittleEndian.PutUint32(buf[16:20], math.Float32bits(color[1]))
	binary.LittleEndian.PutUint32(buf[20:24], math.Float32bits(color[2]))
	binary.LittleEndian.PutUint32(buf[24:28], math.Float32bits(color[3]))
}

// DecodeVertex reads the vertex at index i of data written by Encode.
func DecodeVertex(data []byte, i int) (v flexrect.Vertex, color [4]float32) {
	buf := data[i*VertexStride : (i+1)*VertexStride]
	v.Position[0] = math.Float32frombits(binary.LittleEndian.Uint32(buf[0:4]))
	v.Position[1] = math.Float32frombits(binary.LittleEndian.Uint32(buf[4:8]))
	v.Z = math.Float32frombits(binary.LittleEndian.Uint32(buf[8:12]))
	for j := range color {
		color[j] = math.Float32frombits(binary.LittleEndian.Uint32(buf[12+4*j : 16+4*j]))
	}
	return v, color
}
