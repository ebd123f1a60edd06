package prettui

// Pure layout arithmetic for the selection list. No I/O happens here; the
// session decides when to apply the results to the terminal.

// pageStart computes the first item index of the page containing selected.
// The result is always a multiple of pageCapacity and satisfies
// pageStart <= selected < pageStart+pageCapacity.
func pageStart(selected, pageCapacity int) int {
	return (selected / pageCapacity) * pageCapacity
}

// cellPos computes the column and row offsets of a page-local cell index
// relative to the list origin.
func cellPos(local, itemsPerRow, cellWidth int) (colOffset, rowOffset int) {
	rowOffset = local / itemsPerRow
	colOffset = (local % itemsPerRow) * cellWidth
	return colOffset, rowOffset
}

// requiredRows returns the vertical space the list needs: one row per page
// row plus one for the digit-input echo line.
func requiredRows(rowsPerPage int) int {
	return rowsPerPage + 1
}

// missingRows returns how many rows of space are missing below currentRow
// in a terminal of the given height. Zero or negative means the list fits
// without scrolling.
func missingRows(currentRow, terminalHeight, required int) int {
	return required - (terminalHeight - currentRow)
}
