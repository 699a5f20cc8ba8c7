package tmx

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is an RGBA color parsed from a TMX hex attribute.
type Color struct {
	R, G, B, A uint8
}

// ParseColor parses "#RRGGBB" or "#AARRGGBB" (leading '#' optional) into a
// Color. Strings with fewer than six hex digits fail with
// ErrInvalidColorFormat; callers are expected to fall back to the zero Color.
func ParseColor(s string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 && len(hex) != 8 {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColorFormat, s)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColorFormat, s)
	}

	c := Color{A: 0xff}
	if len(hex) == 8 {
		c.A = uint8(v >> 24)
	}
	c.R = uint8(v >> 16)
	c.G = uint8(v >> 8)
	c.B = uint8(v)
	return c, nil
}

// parseOptionalColor returns nil for empty or malformed color strings, per
// the recover-with-default policy for cosmetic attributes.
func parseOptionalColor(s string) *Color {
	if s == "" {
		return nil
	}
	c, err := ParseColor(s)
	if err != nil {
		return nil
	}
	return &c
}
