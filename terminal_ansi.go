package prettui

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/term"
)

// ErrNotTerminal is returned when interactive facilities are used while
// stdin or stdout is not attached to a terminal.
var ErrNotTerminal = errors.New("prettui: not a terminal")

// ANSITerminal implements Terminal using ANSI escape sequences.
// It works with any terminal emulator that supports ANSI codes.
type ANSITerminal struct {
	in       *os.File
	out      *os.File
	esc      *escBuilder
	rawState *term.State
}

// Ensure ANSITerminal implements Terminal.
var _ Terminal = (*ANSITerminal)(nil)

// NewANSITerminal creates an ANSI terminal over the given input and output
// files, typically os.Stdin and os.Stdout.
func NewANSITerminal(in, out *os.File) *ANSITerminal {
	return &ANSITerminal{
		in:  in,
		out: out,
		esc: newEscBuilder(4096),
	}
}

// IsTerminal reports whether both input and output are attached to a terminal.
func (t *ANSITerminal) IsTerminal() bool {
	return term.IsTerminal(int(t.in.Fd())) && term.IsTerminal(int(t.out.Fd()))
}

// Size returns the terminal dimensions.
// Returns a default of 80x24 if the size cannot be determined.
func (t *ANSITerminal) Size() (width, height int) {
	w, h, err := term.GetSize(int(t.out.Fd()))
	if err != nil {
		return 80, 24
	}
	return w, h
}

// CursorPosition queries the terminal for the cursor position using a DSR
// request and parses the ESC [ row ; col R reply from the input stream.
// Raw mode must be active, otherwise the reply would be line-buffered and
// echoed.
func (t *ANSITerminal) CursorPosition() (col, row int, err error) {
	t.esc.QueryCursorPosition()
	if err := t.Flush(); err != nil {
		return 0, 0, err
	}

	// Reply: ESC [ row ; col R (1-indexed). Discard anything before ESC in
	// case stray bytes are pending.
	var (
		buf    [1]byte
		inCSI  bool
		params [2]int
		idx    int
	)
	for {
		if _, err := t.in.Read(buf[:]); err != nil {
			return 0, 0, fmt.Errorf("read cursor position: %w", err)
		}
		b := buf[0]
		switch {
		case !inCSI:
			if b == '[' {
				inCSI = true
			}
		case b >= '0' && b <= '9':
			params[idx] = params[idx]*10 + int(b-'0')
		case b == ';':
			if idx == 0 {
				idx = 1
			}
		case b == 'R':
			return params[1] - 1, params[0] - 1, nil
		default:
			// Unexpected byte, start over
			inCSI = false
			params[0], params[1] = 0, 0
			idx = 0
		}
	}
}

// MoveTo moves the cursor to the specified position (0-indexed).
func (t *ANSITerminal) MoveTo(col, row int) {
	t.esc.MoveTo(col, row)
}

// SetForeground selects the foreground color for subsequent prints.
func (t *ANSITerminal) SetForeground(c Color) {
	t.esc.SetForeground(c)
}

// SetStyle selects the full style for subsequent prints.
func (t *ANSITerminal) SetStyle(s Style) {
	t.esc.SetStyle(s)
}

// Reset restores default colors and attributes.
func (t *ANSITerminal) Reset() {
	t.esc.ResetStyle()
}

// Print writes literal text at the cursor position.
func (t *ANSITerminal) Print(s string) {
	t.esc.WriteString(s)
}

// HideCursor makes the cursor invisible.
func (t *ANSITerminal) HideCursor() {
	t.esc.HideCursor()
}

// ShowCursor makes the cursor visible.
func (t *ANSITerminal) ShowCursor() {
	t.esc.ShowCursor()
}

// Flush writes all buffered output to the terminal.
func (t *ANSITerminal) Flush() error {
	if t.esc.Len() == 0 {
		return nil
	}
	_, err := t.out.Write(t.esc.Bytes())
	t.esc.Reset()
	if err != nil {
		return fmt.Errorf("terminal write: %w", err)
	}
	return nil
}

// EnterRawMode puts the terminal into raw mode.
func (t *ANSITerminal) EnterRawMode() error {
	state, err := term.MakeRaw(int(t.in.Fd()))
	if err != nil {
		return fmt.Errorf("enter raw mode: %w", err)
	}
	t.rawState = state
	return nil
}

// ExitRawMode restores the terminal to its previous mode.
func (t *ANSITerminal) ExitRawMode() error {
	if t.rawState == nil {
		return nil
	}
	state := t.rawState
	t.rawState = nil
	if err := term.Restore(int(t.in.Fd()), state); err != nil {
		return fmt.Errorf("exit raw mode: %w", err)
	}
	return nil
}
