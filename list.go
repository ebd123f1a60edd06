package prettui

import (
	"errors"
	"fmt"
	"os"
)

// ListConfig controls the layout and visual behavior of the selection list.
// Build one from DefaultListConfig and chain the With methods.
type ListConfig struct {
	// ItemsPerRow is the number of items displayed per row.
	ItemsPerRow int
	// RowsPerPage is the number of rows displayed per page.
	RowsPerPage int
	// CellWidth is the width of each cell in terminal columns.
	CellWidth int
	// NormalFg is the foreground color for non-highlighted items.
	NormalFg Color
	// HighlightFg is the foreground color for the highlighted item.
	HighlightFg Color
}

// DefaultListConfig returns the default configuration:
// 3 items per row, 5 rows per page, 20-column cells, white text with a
// yellow highlight.
func DefaultListConfig() ListConfig {
	return ListConfig{
		ItemsPerRow: 3,
		RowsPerPage: 5,
		CellWidth:   20,
		NormalFg:    White,
		HighlightFg: Yellow,
	}
}

// WithItemsPerRow sets the number of items per row.
func (c ListConfig) WithItemsPerRow(n int) ListConfig {
	c.ItemsPerRow = n
	return c
}

// WithRowsPerPage sets the number of rows per page.
func (c ListConfig) WithRowsPerPage(n int) ListConfig {
	c.RowsPerPage = n
	return c
}

// WithCellWidth sets the cell width in terminal columns.
func (c ListConfig) WithCellWidth(n int) ListConfig {
	c.CellWidth = n
	return c
}

// WithNormalFg sets the normal foreground color.
func (c ListConfig) WithNormalFg(col Color) ListConfig {
	c.NormalFg = col
	return c
}

// WithHighlightFg sets the highlight foreground color.
func (c ListConfig) WithHighlightFg(col Color) ListConfig {
	c.HighlightFg = col
	return c
}

// pageCapacity returns the number of items per page.
func (c ListConfig) pageCapacity() int {
	return c.ItemsPerRow * c.RowsPerPage
}

// cellTextWidth returns the columns available for item text in a cell,
// after the 2-digit number and ". " separator.
const cellNumberWidth = 4

func (c ListConfig) cellTextWidth() int {
	return c.CellWidth - cellNumberWidth
}

// validate checks the layout invariants.
func (c ListConfig) validate() error {
	if c.ItemsPerRow <= 0 {
		return errors.New("prettui: items per row must be positive")
	}
	if c.RowsPerPage <= 0 {
		return errors.New("prettui: rows per page must be positive")
	}
	if c.CellWidth <= cellNumberWidth {
		return fmt.Errorf("prettui: cell width must be greater than %d", cellNumberWidth)
	}
	return nil
}

// ChooseFromList displays a selectable, paginated list in the terminal and
// blocks until the user confirms or cancels a choice.
//
// Navigation: arrow keys move by item and row, PageUp/PageDown by page.
// Typing digits builds a 1-based item number shown on an echo line below
// the list; Backspace edits it. Enter confirms either the typed number or
// the highlighted item; Escape cancels.
//
// Items are rendered with fmt.Sprint. Returns (index, true, nil) when a
// selection is made, (0, false, nil) when the user cancels or items is
// empty, and a non-nil error only for terminal I/O failures — the terminal
// is restored before returning in every case.
func ChooseFromList[T any](items []T, cfg ListConfig) (int, bool, error) {
	if len(items) == 0 {
		return 0, false, nil
	}
	if err := cfg.validate(); err != nil {
		return 0, false, err
	}

	term := NewANSITerminal(os.Stdin, os.Stdout)
	if !term.IsTerminal() {
		return 0, false, ErrNotTerminal
	}

	labels := make([]string, len(items))
	for i, item := range items {
		labels[i] = fmt.Sprint(item)
	}

	s := newSession(term, nil, labels, cfg)
	return s.run()
}
