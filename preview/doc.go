// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package preview paints flexrect display lists into images on the CPU.
//
// It is a debugging aid: every rectangle is filled with the color its
// payload maps to, back to front, with anti-aliased edges so that rotated
// rectangles look right. There is no text and no styling.
//
//	list, _ := flexrect.Resolve(t, root, 800, 600)
//	img, err := preview.Rasterize(list, 800, 600, nil,
//	    preview.WithBackground(color.White))
package preview
