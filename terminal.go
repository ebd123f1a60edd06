package prettui

// Terminal abstracts the terminal operations the selection list needs for
// rendering and mode control. Implementations write ANSI sequences to a
// real terminal or record operations for testing.
//
// Output operations buffer until Flush so a repaint reaches the terminal
// as one write. Flush must be called before blocking on the next key read.
type Terminal interface {
	// Size returns the terminal dimensions (columns, rows).
	Size() (width, height int)

	// CursorPosition reports the current cursor position (0-indexed).
	// On a real terminal this requires raw mode to be active, since the
	// reply arrives unbuffered on the input stream.
	CursorPosition() (col, row int, err error)

	// MoveTo moves the cursor to the specified position (0-indexed).
	MoveTo(col, row int)

	// SetForeground selects the foreground color for subsequent prints.
	SetForeground(c Color)

	// SetStyle selects the full style for subsequent prints.
	SetStyle(s Style)

	// Reset restores default colors and attributes.
	Reset()

	// Print writes literal text at the cursor position.
	Print(s string)

	// HideCursor makes the cursor invisible.
	HideCursor()

	// ShowCursor makes the cursor visible.
	ShowCursor()

	// Flush writes all buffered output to the terminal.
	Flush() error

	// EnterRawMode puts the terminal into raw mode for unbuffered,
	// unechoed character input.
	EnterRawMode() error

	// ExitRawMode restores the terminal to its previous mode.
	// Safe to call when raw mode is not active.
	ExitRawMode() error
}
