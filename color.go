package prettui

import (
	"errors"
	"strings"
)

// ColorType distinguishes between color representations.
type ColorType uint8

const (
	// ColorDefault represents the terminal's default color (no color set).
	ColorDefault ColorType = iota
	// ColorANSI represents an ANSI 256 palette color (0-255).
	ColorANSI
	// ColorRGB represents a true color (24-bit RGB).
	ColorRGB
)

// Color represents a terminal color with support for default, ANSI 256, and
// true color. Zero value represents the terminal default color.
type Color struct {
	typ ColorType
	// For ANSI: r holds the palette index (0-255)
	// For RGB: r, g, b hold the color components
	r, g, b uint8
}

// DefaultColor returns a Color representing the terminal's default color.
func DefaultColor() Color {
	return Color{typ: ColorDefault}
}

// ANSIColor returns a Color from the ANSI 256 palette.
func ANSIColor(index uint8) Color {
	return Color{typ: ColorANSI, r: index}
}

// RGBColor returns a true color (24-bit RGB) Color.
func RGBColor(r, g, b uint8) Color {
	return Color{typ: ColorRGB, r: r, g: g, b: b}
}

// Named colors from the basic 16-color ANSI palette. The "dark" variants
// are the normal-intensity colors 0-7; the plain names map to the bright
// range 8-15, matching how most terminal themes render them.
var (
	Black       = ANSIColor(0)
	DarkRed     = ANSIColor(1)
	DarkGreen   = ANSIColor(2)
	DarkYellow  = ANSIColor(3)
	DarkBlue    = ANSIColor(4)
	DarkMagenta = ANSIColor(5)
	DarkCyan    = ANSIColor(6)
	Grey        = ANSIColor(7)
	DarkGrey    = ANSIColor(8)
	Red         = ANSIColor(9)
	Green       = ANSIColor(10)
	Yellow      = ANSIColor(11)
	Blue        = ANSIColor(12)
	Magenta     = ANSIColor(13)
	Cyan        = ANSIColor(14)
	White       = ANSIColor(15)
)

// HexColor parses a hex color string and returns a Color.
// Supported formats: "#RRGGBB" and "#RGB".
func HexColor(hex string) (Color, error) {
	hex = strings.TrimPrefix(hex, "#")

	switch len(hex) {
	case 6:
		// #RRGGBB
		r, err := parseHexByte(hex[0:2])
		if err != nil {
			return Color{}, err
		}
		g, err := parseHexByte(hex[2:4])
		if err != nil {
			return Color{}, err
		}
		b, err := parseHexByte(hex[4:6])
		if err != nil {
			return Color{}, err
		}
		return RGBColor(r, g, b), nil
	case 3:
		// #RGB -> expand to #RRGGBB
		r, err := parseHexNibble(hex[0])
		if err != nil {
			return Color{}, err
		}
		g, err := parseHexNibble(hex[1])
		if err != nil {
			return Color{}, err
		}
		b, err := parseHexNibble(hex[2])
		if err != nil {
			return Color{}, err
		}
		// Expand nibble to byte: 0xF -> 0xFF
		return RGBColor(r<<4|r, g<<4|g, b<<4|b), nil
	default:
		return Color{}, errors.New("invalid hex color format: expected #RGB or #RRGGBB")
	}
}

// parseHexByte parses a two-character hex string into a byte.
func parseHexByte(s string) (uint8, error) {
	if len(s) != 2 {
		return 0, errors.New("invalid hex byte")
	}
	high, err := parseHexNibble(s[0])
	if err != nil {
		return 0, err
	}
	low, err := parseHexNibble(s[1])
	if err != nil {
		return 0, err
	}
	return high<<4 | low, nil
}

// parseHexNibble parses a single hex character into a nibble (0-15).
func parseHexNibble(c byte) (uint8, error) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', nil
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, nil
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, nil
	default:
		return 0, errors.New("invalid hex character")
	}
}

// Type returns the ColorType of this color.
func (c Color) Type() ColorType {
	return c.typ
}

// IsDefault reports whether this is the terminal default color.
func (c Color) IsDefault() bool {
	return c.typ == ColorDefault
}

// ANSI returns the palette index for an ANSI color.
// Only meaningful when Type() == ColorANSI.
func (c Color) ANSI() uint8 {
	return c.r
}

// RGB returns the color components for an RGB color.
// Only meaningful when Type() == ColorRGB.
func (c Color) RGB() (r, g, b uint8) {
	return c.r, c.g, c.b
}

// Equal reports whether two colors are identical.
func (c Color) Equal(other Color) bool {
	return c == other
}
