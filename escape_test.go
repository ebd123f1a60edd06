package prettui

import "testing"

func TestEscBuilderSequences(t *testing.T) {
	tests := map[string]struct {
		build func(*escBuilder)
		want  string
	}{
		"move to origin": {
			build: func(e *escBuilder) { e.MoveTo(0, 0) },
			want:  "\x1b[1;1H",
		},
		"move is one-indexed on the wire": {
			build: func(e *escBuilder) { e.MoveTo(4, 9) },
			want:  "\x1b[10;5H",
		},
		"hide cursor": {
			build: func(e *escBuilder) { e.HideCursor() },
			want:  "\x1b[?25l",
		},
		"show cursor": {
			build: func(e *escBuilder) { e.ShowCursor() },
			want:  "\x1b[?25h",
		},
		"cursor position query": {
			build: func(e *escBuilder) { e.QueryCursorPosition() },
			want:  "\x1b[6n",
		},
		"reset style": {
			build: func(e *escBuilder) { e.ResetStyle() },
			want:  "\x1b[0m",
		},
		"foreground default": {
			build: func(e *escBuilder) { e.SetForeground(DefaultColor()) },
			want:  "\x1b[39m",
		},
		"foreground basic color": {
			build: func(e *escBuilder) { e.SetForeground(DarkRed) },
			want:  "\x1b[31m",
		},
		"foreground bright color": {
			build: func(e *escBuilder) { e.SetForeground(Yellow) },
			want:  "\x1b[93m",
		},
		"foreground 256 palette": {
			build: func(e *escBuilder) { e.SetForeground(ANSIColor(208)) },
			want:  "\x1b[38;5;208m",
		},
		"foreground rgb": {
			build: func(e *escBuilder) { e.SetForeground(RGBColor(255, 128, 0)) },
			want:  "\x1b[38;2;255;128;0m",
		},
		"style with attributes": {
			build: func(e *escBuilder) { e.SetStyle(NewStyle().Bold().Underline()) },
			want:  "\x1b[0;1;4m",
		},
		"style with colors": {
			build: func(e *escBuilder) { e.SetStyle(NewStyle().Foreground(White).Background(DarkBlue)) },
			want:  "\x1b[0;97;44m",
		},
		"style resets before applying": {
			build: func(e *escBuilder) { e.SetStyle(NewStyle()) },
			want:  "\x1b[0m",
		},
		"literal text": {
			build: func(e *escBuilder) { e.WriteString("ok"); e.WriteRune('é') },
			want:  "oké",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			e := newEscBuilder(64)
			tt.build(e)
			if got := string(e.Bytes()); got != tt.want {
				t.Errorf("built %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEscBuilderReset(t *testing.T) {
	e := newEscBuilder(16)
	e.MoveTo(0, 0)
	if e.Len() == 0 {
		t.Fatal("buffer empty after write")
	}
	e.Reset()
	if e.Len() != 0 {
		t.Errorf("Len() after Reset = %d, want 0", e.Len())
	}
	e.WriteString("x")
	if got := string(e.Bytes()); got != "x" {
		t.Errorf("buffer after Reset+write = %q, want %q", got, "x")
	}
}
