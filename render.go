package prettui

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Painting for the selection list. Every pass is anchored at the origin
// column and the display start row captured when the session began.

// renderPage repaints the current page: a clear pass over every cell slot,
// a draw pass for the items on this page, and the digit echo line. The
// clear pass runs first so stale cells from a previous page and stale echo
// text can never survive.
func (s *session) renderPage() error {
	capacity := s.cfg.pageCapacity()
	start := pageStart(s.selected, capacity)

	// Clear previous content
	blank := strings.Repeat(" ", s.cfg.CellWidth)
	for idx := 0; idx < capacity; idx++ {
		colOff, rowOff := cellPos(idx, s.cfg.ItemsPerRow, s.cfg.CellWidth)
		s.term.MoveTo(s.originCol+colOff, s.startRow+rowOff)
		s.term.Print(blank)
	}

	// Draw items
	for idx := 0; idx < capacity; idx++ {
		global := start + idx
		if global >= len(s.items) {
			break
		}
		colOff, rowOff := cellPos(idx, s.cfg.ItemsPerRow, s.cfg.CellWidth)
		s.term.MoveTo(s.originCol+colOff, s.startRow+rowOff)
		if global == s.selected {
			s.term.SetForeground(s.cfg.HighlightFg)
		} else {
			s.term.SetForeground(s.cfg.NormalFg)
		}
		s.term.Print(s.cellText(global))
	}

	// Draw digit input echo line
	inputRow := s.startRow + s.cfg.RowsPerPage
	s.term.MoveTo(s.originCol, inputRow)
	s.term.Print(blank)
	s.term.MoveTo(s.originCol, inputRow)
	if s.digits != "" {
		s.term.SetForeground(White)
		s.term.Print("Input: " + s.digits)
	}
	s.term.Reset()
	s.term.MoveTo(s.originCol, inputRow)

	return s.term.Flush()
}

// clearRegion erases everything the list painted, leaving the cursor at
// the start of the echo line. Runs once when the session ends.
func (s *session) clearRegion() error {
	capacity := s.cfg.pageCapacity()
	blank := strings.Repeat(" ", s.cfg.CellWidth)
	for idx := 0; idx < capacity; idx++ {
		colOff, rowOff := cellPos(idx, s.cfg.ItemsPerRow, s.cfg.CellWidth)
		s.term.MoveTo(s.originCol+colOff, s.startRow+rowOff)
		s.term.Print(blank)
	}

	inputRow := s.startRow + s.cfg.RowsPerPage
	s.term.MoveTo(s.originCol, inputRow)
	s.term.Print(blank)
	s.term.Reset()
	s.term.MoveTo(s.originCol, inputRow)

	return s.term.Flush()
}

// cellText formats one item as a fixed-width cell: a right-aligned 2-digit
// 1-based number, a ". " separator, and the item text fitted to the rest
// of the cell.
func (s *session) cellText(global int) string {
	return fmt.Sprintf("%2d. %s", global+1, fitToWidth(s.items[global], s.cfg.cellTextWidth()))
}

// fitToWidth truncates and pads text to exactly width terminal columns,
// accounting for wide runes so a cell can never overflow its neighbor.
func fitToWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.FillRight(runewidth.Truncate(text, width, ""), width)
}
