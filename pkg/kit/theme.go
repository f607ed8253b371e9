package kit

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// Color is stored as ARGB (0xAARRGGBB).
type Color uint32

// RGBA8 constructs a Color from red, green, blue, alpha bytes.
func RGBA8(r, g, b, a uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// RGB constructs an opaque Color from red, green, blue bytes.
func RGB(r, g, b uint8) Color {
	return RGBA8(r, g, b, 0xFF)
}

// Hex formats the color as #aarrggbb.
func (c Color) Hex() string {
	return fmt.Sprintf("#%08x", uint32(c))
}

// ParseColor resolves a color string: #rgb, #rrggbb, or #aarrggbb hex forms,
// or an SVG 1.1 color name ("rebeccapurple", "steelblue", ...).
func ParseColor(s string) (Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return 0, fmt.Errorf("empty color")
	}
	if strings.HasPrefix(s, "#") {
		return parseHexColor(s[1:])
	}
	if c, ok := colornames.Map[s]; ok {
		return RGBA8(c.R, c.G, c.B, c.A), nil
	}
	return 0, fmt.Errorf("unknown color name %q", s)
}

func parseHexColor(hex string) (Color, error) {
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid hex color %q: %w", "#"+hex, err)
	}
	switch len(hex) {
	case 3:
		r := uint8(v >> 8 & 0xF)
		g := uint8(v >> 4 & 0xF)
		b := uint8(v & 0xF)
		return RGB(r<<4|r, g<<4|g, b<<4|b), nil
	case 6:
		return Color(0xFF000000 | uint32(v)), nil
	case 8:
		return Color(v), nil
	}
	return 0, fmt.Errorf("invalid hex color %q: want 3, 6 or 8 digits", "#"+hex)
}

// Theme holds the shared palette components resolve defaults from. Provide it
// on a context with component.Provide; descendants see it through
// component.Shared.
type Theme struct {
	Background Color
	Foreground Color
	Accent     Color
	Disabled   Color
}

// DefaultTheme returns the built-in light palette.
func DefaultTheme() Theme {
	return Theme{
		Background: RGB(0xFF, 0xFF, 0xFF),
		Foreground: RGB(0x1A, 0x1A, 0x1A),
		Accent:     RGBA8(colornames.Steelblue.R, colornames.Steelblue.G, colornames.Steelblue.B, 0xFF),
		Disabled:   RGBA8(colornames.Gray.R, colornames.Gray.G, colornames.Gray.B, 0xFF),
	}
}
