// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package render packs flexrect display lists for a GPU renderer.
//
// flexrect does not draw. A host application that owns a GPU device uses this
// package to describe and fill the vertex buffer of a single pipeline that
// paints every rectangle of a display list as two triangles.
//
// # Key Principle
//
// The host creates the device, the pipeline and the buffers. This package
// only supplies the pieces that depend on the display list format: the
// vertex layout, the primitive state, a color target with premultiplied
// blending, the WGSL shader and the vertex bytes.
//
// # Vertex format
//
// Each vertex is VertexStride bytes, little-endian:
//
//	offset  0  position  float32x2  layout pixels, origin top-left
//	offset  8  depth     float32    Rect.Z
//	offset 12  color     float32x4  premultiplied RGBA
//
// # Usage
//
//	list, _ := flexrect.Resolve(t, root, w, h)
//	data := render.Encode(list, nil)
//	spirv, err := render.CompileShader()
//	// create the pipeline with render.VertexLayout(), render.Primitive()
//	// and render.ColorTarget(surfaceFormat); bind render.Uniforms(w, h).
//
// Encode writes rectangles back to front, so the pipeline needs no depth
// buffer.
package render
