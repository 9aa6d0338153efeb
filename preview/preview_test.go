// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package preview

import (
	"errors"
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/gogpu/flexrect"
)

var (
	red   = color.RGBAModel.Convert(flexrect.Red()).(color.RGBA)
	green = color.RGBAModel.Convert(flexrect.Green()).(color.RGBA)
	blue  = color.RGBAModel.Convert(flexrect.Blue()).(color.RGBA)
)

func TestRasterizePaintsByZ(t *testing.T) {
	// Post-order lists the child before its parent; Z puts it on top.
	list := flexrect.DisplayList[flexrect.DebugColor]{
		flexrect.NewRect(0, 0, 5, 10, 0.75, flexrect.Red()),
		flexrect.NewRect(0, 0, 10, 10, 0.5, flexrect.Blue()),
	}
	img, err := Rasterize(list, 12, 10, nil, WithBackground(color.White))
	if err != nil {
		t.Fatalf("Rasterize() = %v", err)
	}

	tests := []struct {
		name string
		x, y int
		want color.RGBA
	}{
		{"child over parent", 2, 5, red},
		{"parent", 7, 5, blue},
		{"background", 11, 5, color.RGBA{255, 255, 255, 255}},
	}
	for _, tt := range tests {
		if got := img.RGBAAt(tt.x, tt.y); got != tt.want {
			t.Errorf("%s: pixel (%d, %d) = %v, want %v", tt.name, tt.x, tt.y, got, tt.want)
		}
	}
}

func TestRasterizeResolved(t *testing.T) {
	list := flexrect.DisplayList[flexrect.DebugColor]{
		flexrect.NewRect(0, 0, 20, 10, 0.5+0.5/3, flexrect.Red()),
		flexrect.NewRect(0, 10, 20, 10, 0.5+1.0/3, flexrect.Green()),
		flexrect.NewRect(0, 0, 20, 20, 0.5, flexrect.Blue()),
	}
	img, err := Rasterize(list, 20, 20, nil)
	if err != nil {
		t.Fatal(err)
	}
	if got := img.RGBAAt(10, 5); got != red {
		t.Errorf("top half = %v, want red", got)
	}
	if got := img.RGBAAt(10, 15); got != green {
		t.Errorf("bottom half = %v, want green", got)
	}
}

func TestRasterizeSkipsUncolored(t *testing.T) {
	list := flexrect.DisplayList[string]{flexrect.NewRect(0, 0, 4, 4, 0.5, "label")}
	img, err := Rasterize(list, 4, 4, nil)
	if err != nil {
		t.Fatal(err)
	}
	if got := img.RGBAAt(1, 1); got != (color.RGBA{}) {
		t.Errorf("pixel = %v, want transparent", got)
	}

	img, err = Rasterize(list, 4, 4, func(string) color.Color { return red })
	if err != nil {
		t.Fatal(err)
	}
	if got := img.RGBAAt(1, 1); got != red {
		t.Errorf("pixel with color func = %v, want red", got)
	}
}

func TestRasterizeScale(t *testing.T) {
	list := flexrect.DisplayList[flexrect.DebugColor]{flexrect.NewRect(0, 0, 2, 2, 0.5, flexrect.Red())}
	img, err := Rasterize(list, 8, 8, nil, WithScale(2))
	if err != nil {
		t.Fatal(err)
	}
	if got := img.RGBAAt(3, 3); got != red {
		t.Errorf("pixel (3, 3) = %v, want red at scale 2", got)
	}
	if got := img.RGBAAt(5, 5); got != (color.RGBA{}) {
		t.Errorf("pixel (5, 5) = %v, want transparent", got)
	}
}

func TestRasterizeRotated(t *testing.T) {
	r := flexrect.NewRect(10, 10, 20, 20, 0.5, flexrect.Red())
	r.RotateAboutCenter(math.Pi / 4)
	img, err := Rasterize(flexrect.DisplayList[flexrect.DebugColor]{r}, 40, 40, nil)
	if err != nil {
		t.Fatal(err)
	}
	if got := img.RGBAAt(20, 20); !nearlyRed(got) {
		t.Errorf("center = %v, want red", got)
	}
	// The unrotated corner region is now outside the diamond.
	if got := img.RGBAAt(11, 11); got.A != 0 {
		t.Errorf("former corner = %v, want transparent", got)
	}
	// The tip of the diamond reaches beyond the original left edge.
	if got := img.RGBAAt(7, 20); !nearlyRed(got) {
		t.Errorf("left tip = %v, want red", got)
	}
}

// nearlyRed tolerates rounding in the coverage of anti-aliased edges.
func nearlyRed(c color.RGBA) bool {
	return c.R >= red.R-5 && c.G == 0 && c.B == 0 && c.A >= 250
}

func TestRasterizeErrors(t *testing.T) {
	for _, size := range [][2]int{{0, 10}, {10, 0}, {-1, -1}} {
		_, err := Rasterize(flexrect.DisplayList[int]{}, size[0], size[1], nil)
		if !errors.Is(err, ErrEmptyImage) {
			t.Errorf("Rasterize(%dx%d) = %v, want ErrEmptyImage", size[0], size[1], err)
		}
	}
}

func TestThumbnail(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 100, 50))

	tests := []struct {
		name         string
		maxW, maxH   int
		wantW, wantH int
	}{
		{"fits width", 20, 20, 20, 10},
		{"fits height", 100, 5, 10, 5},
		{"already fits", 200, 200, 100, 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Thumbnail(src, tt.maxW, tt.maxH)
			if err != nil {
				t.Fatal(err)
			}
			if b := got.Bounds(); b.Dx() != tt.wantW || b.Dy() != tt.wantH {
				t.Errorf("Thumbnail() = %dx%d, want %dx%d", b.Dx(), b.Dy(), tt.wantW, tt.wantH)
			}
		})
	}

	if _, err := Thumbnail(src, 0, 10); !errors.Is(err, ErrEmptyImage) {
		t.Errorf("Thumbnail(0x10) = %v, want ErrEmptyImage", err)
	}
}
