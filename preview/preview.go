// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package preview

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/vector"

	"github.com/gogpu/flexrect"
)

// ErrEmptyImage is returned when the requested image has no pixels.
var ErrEmptyImage = errors.New("preview: image size must be positive")

// outline is the order in which corners are visited to trace a rectangle.
var outline = [4]flexrect.Corner{flexrect.TopLeft, flexrect.TopRight, flexrect.BottomRight, flexrect.BottomLeft}

// Option configures Rasterize.
type Option func(*options)

type options struct {
	background color.Color
	scale      float64
}

func defaultOptions() options {
	return options{
		background: color.Transparent,
		scale:      1,
	}
}

// WithBackground fills the image with c before painting. The default is
// transparent.
func WithBackground(c color.Color) Option {
	return func(o *options) {
		if c != nil {
			o.background = c
		}
	}
}

// WithScale multiplies layout coordinates by s, for example 2 for a HiDPI
// preview. Non-positive values are ignored.
func WithScale(s float64) Option {
	return func(o *options) {
		if s > 0 {
			o.scale = s
		}
	}
}

// Rasterize paints list into a new width x height image.
//
// Rectangles are painted in ascending Z order with source-over compositing.
// colorOf maps payloads to fill colors; nil means flexrect.PayloadColor.
// Rectangles whose color is nil are skipped.
func Rasterize[T any](list flexrect.DisplayList[T], width, height int, colorOf flexrect.ColorFunc[T], opts ...Option) (*image.RGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrEmptyImage, width, height)
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if colorOf == nil {
		colorOf = flexrect.PayloadColor[T]
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.Draw(img, img.Bounds(), image.NewUniform(o.background), image.Point{}, xdraw.Src)

	r := vector.NewRasterizer(width, height)
	painted := 0
	for _, rect := range list.ByZ() {
		c := colorOf(rect.Payload)
		if c == nil {
			continue
		}
		r.Reset(width, height)
		trace(r, &rect, o.scale)
		r.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{})
		painted++
	}

	flexrect.Logger().Debug("preview: rasterized display list",
		"rects", len(list),
		"painted", painted,
		"width", width,
		"height", height)
	return img, nil
}

// trace adds the outline of rect to r.
func trace[T any](r *vector.Rasterizer, rect *flexrect.Rect[T], scale float64) {
	for i, c := range outline {
		p := rect.Corner(c).Mul(scale)
		if i == 0 {
			r.MoveTo(float32(p.X), float32(p.Y))
		} else {
			r.LineTo(float32(p.X), float32(p.Y))
		}
	}
	r.ClosePath()
}

// Thumbnail returns src scaled down to fit inside maxWidth x maxHeight,
// keeping its aspect ratio. Images that already fit are copied unscaled.
func Thumbnail(src image.Image, maxWidth, maxHeight int) (*image.RGBA, error) {
	if maxWidth <= 0 || maxHeight <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrEmptyImage, maxWidth, maxHeight)
	}
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return nil, fmt.Errorf("%w: source is %dx%d", ErrEmptyImage, w, h)
	}

	scale := min(1, float64(maxWidth)/float64(w), float64(maxHeight)/float64(h))
	dw := max(1, int(float64(w)*scale+0.5))
	dh := max(1, int(float64(h)*scale+0.5))

	dst := image.NewRGBA(image.Rect(0, 0, dw, dh))
	if dw == w && dh == h {
		xdraw.Copy(dst, image.Point{}, src, b, xdraw.Src, nil)
		return dst, nil
	}
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, b, xdraw.Src, nil)
	return dst, nil
}
