package prettui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// mockCell holds one screen cell of the mock terminal.
type mockCell struct {
	r     rune
	style Style
}

// MockTerminal is a recording implementation of Terminal for testing.
// It maintains a cell grid so tests can assert on what was painted where,
// and counts mode transitions and flushes.
type MockTerminal struct {
	width, height int
	cells         []mockCell
	cursorCol     int
	cursorRow     int
	style         Style
	cursorHidden  bool
	inRawMode     bool

	rawEnters int
	rawExits  int
	flushes   int
	flushErr  error
	cursorErr error
	scrolled  int
}

// Ensure MockTerminal implements Terminal.
var _ Terminal = (*MockTerminal)(nil)

// NewMockTerminal creates a mock terminal with the given dimensions.
// The grid starts blank with the cursor at the origin.
func NewMockTerminal(width, height int) *MockTerminal {
	m := &MockTerminal{
		width:  width,
		height: height,
		cells:  make([]mockCell, width*height),
	}
	m.clearAll()
	return m
}

func (m *MockTerminal) clearAll() {
	for i := range m.cells {
		m.cells[i] = mockCell{r: ' '}
	}
}

// SetCursorPosition seeds the cursor location, e.g. to simulate prior
// program output before a selection session starts.
func (m *MockTerminal) SetCursorPosition(col, row int) {
	m.cursorCol = col
	m.cursorRow = row
}

// FailCursorPosition makes subsequent CursorPosition calls return err.
func (m *MockTerminal) FailCursorPosition(err error) {
	m.cursorErr = err
}

// FailFlush makes subsequent Flush calls return err.
func (m *MockTerminal) FailFlush(err error) {
	m.flushErr = err
}

// Size returns the terminal dimensions.
func (m *MockTerminal) Size() (width, height int) {
	return m.width, m.height
}

// CursorPosition reports the current cursor position.
func (m *MockTerminal) CursorPosition() (col, row int, err error) {
	if m.cursorErr != nil {
		return 0, 0, m.cursorErr
	}
	return m.cursorCol, m.cursorRow, nil
}

// MoveTo moves the cursor to the specified position.
func (m *MockTerminal) MoveTo(col, row int) {
	m.cursorCol = col
	m.cursorRow = row
}

// SetForeground selects the foreground color for subsequent prints.
func (m *MockTerminal) SetForeground(c Color) {
	m.style.Fg = c
}

// SetStyle selects the full style for subsequent prints.
func (m *MockTerminal) SetStyle(s Style) {
	m.style = s
}

// Reset restores default colors and attributes.
func (m *MockTerminal) Reset() {
	m.style = NewStyle()
}

// Print writes text at the cursor position, emulating LF scrolling at the
// bottom row the way a real terminal does.
func (m *MockTerminal) Print(s string) {
	for _, r := range s {
		if r == '\n' {
			if m.cursorRow == m.height-1 {
				m.scrollUp()
			} else {
				m.cursorRow++
			}
			continue
		}
		if r == '\r' {
			m.cursorCol = 0
			continue
		}
		w := runewidth.RuneWidth(r)
		if m.cursorCol >= 0 && m.cursorCol < m.width && m.cursorRow >= 0 && m.cursorRow < m.height {
			m.cells[m.cursorRow*m.width+m.cursorCol] = mockCell{r: r, style: m.style}
		}
		m.cursorCol += w
	}
}

// scrollUp shifts the grid one row upward, blanking the bottom row.
func (m *MockTerminal) scrollUp() {
	copy(m.cells, m.cells[m.width:])
	for i := (m.height - 1) * m.width; i < len(m.cells); i++ {
		m.cells[i] = mockCell{r: ' '}
	}
	m.scrolled++
}

// HideCursor makes the cursor invisible.
func (m *MockTerminal) HideCursor() {
	m.cursorHidden = true
}

// ShowCursor makes the cursor visible.
func (m *MockTerminal) ShowCursor() {
	m.cursorHidden = false
}

// Flush records the flush; the mock applies prints immediately.
func (m *MockTerminal) Flush() error {
	m.flushes++
	return m.flushErr
}

// EnterRawMode records entering raw mode.
func (m *MockTerminal) EnterRawMode() error {
	m.inRawMode = true
	m.rawEnters++
	return nil
}

// ExitRawMode records leaving raw mode.
func (m *MockTerminal) ExitRawMode() error {
	m.inRawMode = false
	m.rawExits++
	return nil
}

// Row returns the text content of a row with trailing spaces trimmed.
func (m *MockTerminal) Row(row int) string {
	if row < 0 || row >= m.height {
		return ""
	}
	var b strings.Builder
	for col := 0; col < m.width; col++ {
		b.WriteRune(m.cells[row*m.width+col].r)
	}
	return strings.TrimRight(b.String(), " ")
}

// CellStyle returns the style the given cell was painted with.
func (m *MockTerminal) CellStyle(col, row int) Style {
	if col < 0 || col >= m.width || row < 0 || row >= m.height {
		return NewStyle()
	}
	return m.cells[row*m.width+col].style
}

// Screen returns the full grid as newline-joined rows, for debugging.
func (m *MockTerminal) Screen() string {
	rows := make([]string, m.height)
	for y := 0; y < m.height; y++ {
		rows[y] = m.Row(y)
	}
	return strings.Join(rows, "\n")
}

// InRawMode reports whether the mock is currently in raw mode.
func (m *MockTerminal) InRawMode() bool {
	return m.inRawMode
}

// RawEnters returns how many times raw mode was entered.
func (m *MockTerminal) RawEnters() int {
	return m.rawEnters
}

// RawExits returns how many times raw mode was exited.
func (m *MockTerminal) RawExits() int {
	return m.rawExits
}

// Flushes returns how many times Flush was called.
func (m *MockTerminal) Flushes() int {
	return m.flushes
}

// Scrolled returns how many rows the viewport scrolled.
func (m *MockTerminal) Scrolled() int {
	return m.scrolled
}

// CursorHidden reports whether the cursor is currently hidden.
func (m *MockTerminal) CursorHidden() bool {
	return m.cursorHidden
}
