package prettui

import (
	"fmt"
	"strconv"
	"strings"
)

// session owns the state of one interactive selection: the raw-mode
// lifecycle, the terminal origin captured at entry, the selected index,
// and the pending digit buffer. State is mutated only inside run's event
// loop and discarded when it returns.
type session struct {
	term   Terminal
	events EventReader
	items  []string
	cfg    ListConfig

	selected  int
	digits    string
	originCol int
	startRow  int
}

func newSession(term Terminal, events EventReader, items []string, cfg ListConfig) *session {
	if events == nil {
		if t, ok := term.(*ANSITerminal); ok {
			events = NewEventReader(t.in)
		}
	}
	return &session{
		term:   term,
		events: events,
		items:  items,
		cfg:    cfg,
	}
}

// run drives the event loop until the user confirms or cancels.
// Raw mode is released on every exit path, including I/O failures.
func (s *session) run() (idx int, ok bool, err error) {
	if err = s.term.EnterRawMode(); err != nil {
		return 0, false, err
	}
	defer func() {
		if rerr := s.term.ExitRawMode(); rerr != nil && err == nil {
			idx, ok = 0, false
			err = rerr
		}
	}()

	// The origin anchors every subsequent paint. It is captured once;
	// recomputing it later would make redraws drift.
	col, row, perr := s.term.CursorPosition()
	if perr != nil {
		return 0, false, perr
	}
	s.originCol = col

	if s.startRow, err = s.ensureSpace(row); err != nil {
		return 0, false, err
	}

	if err = s.renderPage(); err != nil {
		return 0, false, err
	}

	total := len(s.items)
	capacity := s.cfg.pageCapacity()

	for {
		ev, rerr := s.events.ReadEvent()
		if rerr != nil {
			// Best effort: leave the screen clean even on a failed read.
			_ = s.clearRegion()
			return 0, false, fmt.Errorf("read key event: %w", rerr)
		}

		switch {
		case ev.IsDigit():
			s.digits += string(ev.Rune)

		case ev.Key == KeyBackspace && s.digits != "":
			s.digits = s.digits[:len(s.digits)-1]

		case ev.Key == KeyLeft && s.selected > 0:
			s.digits = ""
			s.selected--

		case ev.Key == KeyRight && s.selected+1 < total:
			s.digits = ""
			s.selected++

		case ev.Key == KeyUp && s.selected >= s.cfg.ItemsPerRow:
			s.digits = ""
			s.selected -= s.cfg.ItemsPerRow

		case ev.Key == KeyDown && s.selected+s.cfg.ItemsPerRow < total:
			s.digits = ""
			s.selected += s.cfg.ItemsPerRow

		case ev.Key == KeyPageUp && s.selected >= capacity:
			s.digits = ""
			s.selected -= capacity

		case ev.Key == KeyPageDown && s.selected+capacity < total:
			s.digits = ""
			s.selected += capacity

		case ev.Key == KeyEnter:
			choice, confirmed := s.resolveChoice()
			if confirmed {
				if err = s.clearRegion(); err != nil {
					return 0, false, err
				}
				return choice, true, nil
			}
			// Out-of-range or unparsable digit entry: the keystroke is
			// absorbed and the buffer kept, matching the navigation
			// no-ops below. Falls through to the repaint.

		case ev.Key == KeyEscape:
			if err = s.clearRegion(); err != nil {
				return 0, false, err
			}
			return 0, false, nil
		}

		if err = s.renderPage(); err != nil {
			return 0, false, err
		}
	}
}

// resolveChoice resolves an Enter press. With a pending digit buffer the
// entry is taken as a 1-based item number; an invalid one confirms
// nothing. With an empty buffer the highlighted item is confirmed.
func (s *session) resolveChoice() (int, bool) {
	if s.digits == "" {
		return s.selected, true
	}
	n, err := strconv.Atoi(s.digits)
	if err != nil || n < 1 || n > len(s.items) {
		return 0, false
	}
	return n - 1, true
}

// ensureSpace makes sure the viewport has room for the whole page plus the
// echo line below the cursor, scrolling by emitting newlines when it does
// not. Returns the row the list will paint from. Called once per session.
func (s *session) ensureSpace(currentRow int) (int, error) {
	_, height := s.term.Size()
	required := requiredRows(s.cfg.RowsPerPage)

	missing := missingRows(currentRow, height, required)
	if missing <= 0 {
		return currentRow, nil
	}

	s.term.Print(strings.Repeat("\n", missing))
	if err := s.term.Flush(); err != nil {
		return 0, err
	}

	// The viewport scrolled; anchor the list so it ends exactly at the
	// bottom of the screen.
	_, newRow, err := s.term.CursorPosition()
	if err != nil {
		return 0, err
	}
	start := newRow - required
	if start < 0 {
		start = 0
	}
	return start, nil
}
