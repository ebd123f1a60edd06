package prettui

import (
	"os"
	"testing"
)

// pipeTerminal builds an ANSITerminal over pipes so tests can script the
// input stream and capture the output stream.
func pipeTerminal(t *testing.T) (*ANSITerminal, *os.File, *os.File) {
	t.Helper()
	inR, inW, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe() error = %v", err)
	}
	outR, outW, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe() error = %v", err)
	}
	t.Cleanup(func() {
		inR.Close()
		inW.Close()
		outR.Close()
		outW.Close()
	})
	return NewANSITerminal(inR, outW), inW, outR
}

func TestANSITerminalCursorPosition(t *testing.T) {
	tests := map[string]struct {
		reply   string
		wantCol int
		wantRow int
	}{
		"origin":            {reply: "\x1b[1;1R", wantCol: 0, wantRow: 0},
		"multi digit":       {reply: "\x1b[12;45R", wantCol: 44, wantRow: 11},
		"junk before reply": {reply: "zz\x1b[3;2R", wantCol: 1, wantRow: 2},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			term, inW, outR := pipeTerminal(t)
			if _, err := inW.WriteString(tt.reply); err != nil {
				t.Fatalf("write reply: %v", err)
			}

			col, row, err := term.CursorPosition()
			if err != nil {
				t.Fatalf("CursorPosition() error = %v", err)
			}
			if col != tt.wantCol || row != tt.wantRow {
				t.Errorf("CursorPosition() = (%d, %d), want (%d, %d)", col, row, tt.wantCol, tt.wantRow)
			}

			// The DSR request went out before the reply was read.
			buf := make([]byte, 16)
			n, err := outR.Read(buf)
			if err != nil {
				t.Fatalf("read output: %v", err)
			}
			if got := string(buf[:n]); got != "\x1b[6n" {
				t.Errorf("query sequence = %q, want %q", got, "\x1b[6n")
			}
		})
	}
}

func TestANSITerminalCursorPositionReadError(t *testing.T) {
	term, inW, _ := pipeTerminal(t)
	inW.Close() // reply never arrives

	if _, _, err := term.CursorPosition(); err == nil {
		t.Error("CursorPosition() error = nil, want read failure")
	}
}

func TestANSITerminalBuffersUntilFlush(t *testing.T) {
	term, _, outR := pipeTerminal(t)

	term.MoveTo(4, 9)
	term.SetForeground(Yellow)
	term.Print("hi")
	term.Reset()

	// Nothing reaches the output until Flush.
	if err := term.Flush(); err != nil {
		t.Fatalf("Flush() error = %v", err)
	}

	buf := make([]byte, 64)
	n, err := outR.Read(buf)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if got, want := string(buf[:n]), "\x1b[10;5H\x1b[93mhi\x1b[0m"; got != want {
		t.Errorf("flushed %q, want %q", got, want)
	}

	// A second Flush with an empty buffer writes nothing.
	if err := term.Flush(); err != nil {
		t.Fatalf("empty Flush() error = %v", err)
	}
}

func TestANSITerminalFlushAfterClosedOutput(t *testing.T) {
	term, _, outR := pipeTerminal(t)
	outR.Close()
	// Closing the read end alone does not fail the write; close ours too.
	term.out.Close()

	term.Print("x")
	if err := term.Flush(); err == nil {
		t.Error("Flush() error = nil, want write failure")
	}
}

func TestANSITerminalSizeFallback(t *testing.T) {
	term, _, _ := pipeTerminal(t)

	// A pipe has no window size; the terminal falls back to 80x24.
	w, h := term.Size()
	if w != 80 || h != 24 {
		t.Errorf("Size() = %dx%d, want 80x24", w, h)
	}
}

func TestANSITerminalIsTerminal(t *testing.T) {
	term, _, _ := pipeTerminal(t)
	if term.IsTerminal() {
		t.Error("IsTerminal() = true for a pipe")
	}
}

func TestANSITerminalExitRawModeWithoutEnter(t *testing.T) {
	term, _, _ := pipeTerminal(t)
	if err := term.ExitRawMode(); err != nil {
		t.Errorf("ExitRawMode() without prior enter error = %v", err)
	}
}
