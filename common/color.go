package common

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is a linear RGBA color with components in [0, 1].
type Color struct {
	R, G, B, A float32
}

// ColorFromHex builds an opaque Color from a 0xRRGGBB integer, the form
// three.js style scene descriptions use.
//
// Parameters:
//   - hex: packed 24-bit RGB value
//
// Returns:
//   - Color: the color with alpha 1
func ColorFromHex(hex uint32) Color {
	return Color{
		R: float32((hex>>16)&0xff) / 255,
		G: float32((hex>>8)&0xff) / 255,
		B: float32(hex&0xff) / 255,
		A: 1,
	}
}

// ParseColor parses "#rrggbb", "0xrrggbb", "rrggbb" or the 8-digit forms with a
// trailing alpha byte.
//
// Parameters:
//   - s: the color string
//
// Returns:
//   - Color: the parsed color
//   - error: error if the string is not a valid hex color
func ParseColor(s string) (Color, error) {
	h := strings.TrimSpace(s)
	h = strings.TrimPrefix(h, "#")
	h = strings.TrimPrefix(strings.TrimPrefix(h, "0x"), "0X")
	if len(h) != 6 && len(h) != 8 {
		return Color{}, fmt.Errorf("invalid color %q: expected 6 or 8 hex digits", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	if len(h) == 6 {
		return ColorFromHex(uint32(v)), nil
	}
	c := ColorFromHex(uint32(v >> 8))
	c.A = float32(v&0xff) / 255
	return c, nil
}

// Vec4 returns the color as an RGBA array for GPU upload.
func (c Color) Vec4() [4]float32 {
	return [4]float32{c.R, c.G, c.B, c.A}
}
