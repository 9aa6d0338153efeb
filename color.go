package flexrect

import (
	"fmt"
	"image/color"
)

// DebugColor is an 8-bit, non-premultiplied RGBA color used to tint nodes
// while developing a layout. It implements color.Color, so it can be used
// directly as a Constraints payload and picked up by PayloadColor.
type DebugColor struct {
	R, G, B, A uint8
}

// RGBA implements color.Color.
func (c DebugColor) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}

// Blue returns an opaque blue.
func Blue() DebugColor { return DebugColor{R: 0, G: 0, B: 240, A: 255} }

// Red returns an opaque red.
func Red() DebugColor { return DebugColor{R: 240, G: 0, B: 0, A: 255} }

// Green returns an opaque green.
func Green() DebugColor { return DebugColor{R: 0, G: 240, B: 0, A: 255} }

// Yellow returns an opaque yellow.
func Yellow() DebugColor { return DebugColor{R: 255, G: 255, B: 0, A: 255} }

// String formats the color as #rrggbbaa.
func (c DebugColor) String() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// ParseHex parses a color in one of the forms "RGB", "RGBA", "RRGGBB" or
// "RRGGBBAA", with or without a leading '#'. Missing alpha means opaque.
func ParseHex(hex string) (DebugColor, error) {
	s := hex
	if s != "" && s[0] == '#' {
		s = s[1:]
	}

	var v [4]uint32
	v[3] = 255
	var ok bool
	switch len(s) {
	case 3, 4: // RGB, RGBA
		for i := range len(s) {
			if v[i], ok = parseHex(s[i : i+1]); !ok {
				return DebugColor{}, fmt.Errorf("flexrect: invalid hex color %q", hex)
			}
			v[i] *= 17
		}
	case 6, 8: // RRGGBB, RRGGBBAA
		for i := range len(s) / 2 {
			if v[i], ok = parseHex(s[2*i : 2*i+2]); !ok {
				return DebugColor{}, fmt.Errorf("flexrect: invalid hex color %q", hex)
			}
		}
	default:
		return DebugColor{}, fmt.Errorf("flexrect: invalid hex color %q", hex)
	}

	return DebugColor{R: uint8(v[0]), G: uint8(v[1]), B: uint8(v[2]), A: uint8(v[3])}, nil
}

// parseHex decodes one or two hex digits.
func parseHex(s string) (uint32, bool) {
	var val uint32
	for i := 0; i < len(s); i++ {
		c := s[i]
		val *= 16
		switch {
		case '0' <= c && c <= '9':
			val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			val += uint32(c - 'A' + 10)
		default:
			return 0, false
		}
	}
	return val, true
}
