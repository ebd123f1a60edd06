package prettui

import (
	"strconv"
	"unicode/utf8"
)

// escBuilder efficiently builds ANSI escape sequences.
// It uses a pre-allocated buffer to minimize allocations.
type escBuilder struct {
	buf []byte
}

// newEscBuilder creates a new escape sequence builder with the given initial capacity.
func newEscBuilder(capacity int) *escBuilder {
	return &escBuilder{
		buf: make([]byte, 0, capacity),
	}
}

// Reset clears the buffer for reuse.
func (e *escBuilder) Reset() {
	e.buf = e.buf[:0]
}

// Bytes returns the built escape sequence.
func (e *escBuilder) Bytes() []byte {
	return e.buf
}

// Len returns the current length of the buffer.
func (e *escBuilder) Len() int {
	return len(e.buf)
}

// writeCSI writes the Control Sequence Introducer (ESC [).
func (e *escBuilder) writeCSI() {
	e.buf = append(e.buf, '\x1b', '[')
}

// writeInt writes an integer to the buffer.
func (e *escBuilder) writeInt(n int) {
	e.buf = strconv.AppendInt(e.buf, int64(n), 10)
}

// MoveTo moves the cursor to the specified position.
// col and row are 0-indexed; ANSI sequences use 1-indexed positions.
func (e *escBuilder) MoveTo(col, row int) {
	e.writeCSI()
	e.writeInt(row + 1)
	e.buf = append(e.buf, ';')
	e.writeInt(col + 1)
	e.buf = append(e.buf, 'H')
}

// HideCursor makes the cursor invisible.
func (e *escBuilder) HideCursor() {
	e.writeCSI()
	e.buf = append(e.buf, '?', '2', '5', 'l')
}

// ShowCursor makes the cursor visible.
func (e *escBuilder) ShowCursor() {
	e.writeCSI()
	e.buf = append(e.buf, '?', '2', '5', 'h')
}

// QueryCursorPosition writes a DSR (Device Status Report) request.
// The terminal replies on stdin with ESC [ row ; col R.
func (e *escBuilder) QueryCursorPosition() {
	e.writeCSI()
	e.buf = append(e.buf, '6', 'n')
}

// ResetStyle resets all text attributes and colors to default.
func (e *escBuilder) ResetStyle() {
	e.writeCSI()
	e.buf = append(e.buf, '0', 'm')
}

// SetForeground sets only the foreground color, leaving attributes alone.
func (e *escBuilder) SetForeground(c Color) {
	if c.IsDefault() {
		e.writeCSI()
		e.buf = append(e.buf, '3', '9', 'm')
		return
	}
	e.writeCSI()
	e.appendColor(c, true)
	e.buf = append(e.buf, 'm')
}

// SetStyle sets the text style based on the given Style.
// It always starts from a reset so stale attributes cannot leak through.
func (e *escBuilder) SetStyle(s Style) {
	e.writeCSI()
	e.buf = append(e.buf, '0')

	if s.HasAttr(AttrBold) {
		e.buf = append(e.buf, ';', '1')
	}
	if s.HasAttr(AttrDim) {
		e.buf = append(e.buf, ';', '2')
	}
	if s.HasAttr(AttrItalic) {
		e.buf = append(e.buf, ';', '3')
	}
	if s.HasAttr(AttrUnderline) {
		e.buf = append(e.buf, ';', '4')
	}
	if s.HasAttr(AttrReverse) {
		e.buf = append(e.buf, ';', '7')
	}

	if !s.Fg.IsDefault() {
		e.buf = append(e.buf, ';')
		e.appendColor(s.Fg, true)
	}
	if !s.Bg.IsDefault() {
		e.buf = append(e.buf, ';')
		e.appendColor(s.Bg, false)
	}

	e.buf = append(e.buf, 'm')
}

// appendColor appends the SGR parameters for a color (without CSI or final 'm').
// fg indicates whether this is a foreground (true) or background (false) color.
func (e *escBuilder) appendColor(c Color, fg bool) {
	switch c.Type() {
	case ColorANSI:
		idx := int(c.ANSI())
		if idx < 16 {
			// Basic color codes for colors 0-15.
			// Foreground: 30-37 (normal), 90-97 (bright)
			// Background: 40-47 (normal), 100-107 (bright)
			base := 30
			if !fg {
				base = 40
			}
			if idx >= 8 {
				base += 60
				idx -= 8
			}
			e.writeInt(base + idx)
			return
		}
		// 256-color palette: 38;5;n or 48;5;n
		if fg {
			e.writeInt(38)
		} else {
			e.writeInt(48)
		}
		e.buf = append(e.buf, ';', '5', ';')
		e.writeInt(idx)
	case ColorRGB:
		r, g, b := c.RGB()
		if fg {
			e.writeInt(38)
		} else {
			e.writeInt(48)
		}
		e.buf = append(e.buf, ';', '2', ';')
		e.writeInt(int(r))
		e.buf = append(e.buf, ';')
		e.writeInt(int(g))
		e.buf = append(e.buf, ';')
		e.writeInt(int(b))
	}
}

// WriteRune appends a rune as UTF-8 text.
func (e *escBuilder) WriteRune(r rune) {
	e.buf = utf8.AppendRune(e.buf, r)
}

// WriteString appends literal text.
func (e *escBuilder) WriteString(s string) {
	e.buf = append(e.buf, s...)
}
