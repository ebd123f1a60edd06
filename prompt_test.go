package prettui

import (
	"errors"
	"io"
	"regexp"
	"strings"
	"testing"
)

func boolPtr(b bool) *bool    { return &b }
func int64Ptr(n int64) *int64 { return &n }

func TestConfirm(t *testing.T) {
	tests := map[string]struct {
		input string
		cfg   ConfirmConfig
		want  bool
	}{
		"yes":                 {input: "y\n", want: true},
		"yes word":            {input: "yes\n", want: true},
		"no":                  {input: "n\n", want: false},
		"no word":             {input: "no\n", want: false},
		"uppercase folds":     {input: "Y\n", want: true},
		"mixed case folds":    {input: "YES\n", want: true},
		"empty takes default": {input: "\n", cfg: ConfirmConfig{Default: boolPtr(true)}, want: true},
		"empty default false": {input: "\n", cfg: ConfirmConfig{Default: boolPtr(false)}, want: false},
		"explicit beats default": {
			input: "n\n", cfg: ConfirmConfig{Default: boolPtr(true)}, want: false,
		},
		"retries until valid": {input: "maybe\nwhat\ny\n", want: true},
		"case sensitive accepts lower": {
			input: "y\n", cfg: ConfirmConfig{CaseSensitive: true}, want: true,
		},
		"case sensitive rejects upper then accepts": {
			input: "Y\nn\n", cfg: ConfirmConfig{CaseSensitive: true}, want: false,
		},
		"surrounding whitespace trimmed": {input: "  yes  \n", want: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var out, errOut strings.Builder
			got, err := confirm(&out, &errOut, lineReader(tt.input), "Proceed?", tt.cfg, DefaultInputConfig())
			if err != nil {
				t.Fatalf("confirm() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("confirm() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestConfirmIndicator(t *testing.T) {
	tests := map[string]struct {
		cfg  ConfirmConfig
		want string
	}{
		"no default":    {want: "[y/n]"},
		"default true":  {cfg: ConfirmConfig{Default: boolPtr(true)}, want: "[Y/n]"},
		"default false": {cfg: ConfirmConfig{Default: boolPtr(false)}, want: "[y/N]"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var out, errOut strings.Builder
			if _, err := confirm(&out, &errOut, lineReader("y\n"), "Proceed?", tt.cfg, DefaultInputConfig()); err != nil {
				t.Fatalf("confirm() error = %v", err)
			}
			if plain := stripANSI(out.String()); !strings.Contains(plain, tt.want) {
				t.Errorf("prompt %q missing indicator %s", plain, tt.want)
			}
		})
	}
}

func TestConfirmEOF(t *testing.T) {
	var out, errOut strings.Builder
	_, err := confirm(&out, &errOut, lineReader(""), "Proceed?", ConfirmConfig{}, DefaultInputConfig())
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("confirm() error = %v, want io.ErrUnexpectedEOF", err)
	}
}

func TestReadMatching(t *testing.T) {
	hex := regexp.MustCompile(`^[0-9a-f]+$`)

	tests := map[string]struct {
		input   string
		cfg     RegexConfig
		want    string
		wantErr error
	}{
		"first try": {
			input: "deadbeef\n", cfg: DefaultRegexConfig(), want: "deadbeef",
		},
		"retry then match": {
			input: "NOPE\nff00\n", cfg: DefaultRegexConfig(), want: "ff00",
		},
		"attempts exhausted": {
			input: "x\ny\nz\n", cfg: RegexConfig{MaxAttempts: 3}, wantErr: ErrTooManyAttempts,
		},
		"unlimited attempts": {
			input: "x\ny\nz\nw\nv\nabc\n", cfg: RegexConfig{MaxAttempts: 0}, want: "abc",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var out, errOut strings.Builder
			got, err := readMatching(&out, &errOut, lineReader(tt.input), "Enter hex", hex, tt.cfg, DefaultInputConfig())
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("readMatching() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("readMatching() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("readMatching() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestReadMatchingShowsPattern(t *testing.T) {
	pattern := regexp.MustCompile(`^[a-z]+$`)
	var out, errOut strings.Builder
	cfg := DefaultRegexConfig()
	cfg.ShowPattern = true

	if _, err := readMatching(&out, &errOut, lineReader("abc\n"), "Name", pattern, cfg, DefaultInputConfig()); err != nil {
		t.Fatalf("readMatching() error = %v", err)
	}
	if plain := stripANSI(out.String()); !strings.Contains(plain, "^[a-z]+$") {
		t.Errorf("prompt %q does not show the pattern", plain)
	}
}

func TestReadMatchingCustomErrorMessage(t *testing.T) {
	pattern := regexp.MustCompile(`^\d+$`)
	var out, errOut strings.Builder
	cfg := RegexConfig{ErrorMessage: "digits only", MaxAttempts: 2}

	_, err := readMatching(&out, &errOut, lineReader("a\nb\n"), "ID", pattern, cfg, DefaultInputConfig())
	if !errors.Is(err, ErrTooManyAttempts) {
		t.Fatalf("readMatching() error = %v, want ErrTooManyAttempts", err)
	}
	if !strings.Contains(err.Error(), "digits only") {
		t.Errorf("error %q missing custom message", err)
	}
	if plain := stripANSI(errOut.String()); !strings.Contains(plain, "digits only") {
		t.Errorf("retry output %q missing custom message", plain)
	}
}

func TestReadNumber(t *testing.T) {
	tests := map[string]struct {
		input   string
		cfg     NumberConfig
		want    int64
		wantErr error
	}{
		"plain number": {
			input: "42\n", cfg: DefaultNumberConfig(), want: 42,
		},
		"negative number": {
			input: "-7\n", cfg: DefaultNumberConfig(), want: -7,
		},
		"within bounds": {
			input: "5\n",
			cfg:   NumberConfig{Min: int64Ptr(1), Max: int64Ptr(10), MaxAttempts: 3},
			want:  5,
		},
		"bounds are inclusive": {
			input: "10\n",
			cfg:   NumberConfig{Min: int64Ptr(1), Max: int64Ptr(10), MaxAttempts: 3},
			want:  10,
		},
		"below min retries": {
			input: "0\n3\n",
			cfg:   NumberConfig{Min: int64Ptr(1), MaxAttempts: 3},
			want:  3,
		},
		"above max retries": {
			input: "11\n9\n",
			cfg:   NumberConfig{Max: int64Ptr(10), MaxAttempts: 3},
			want:  9,
		},
		"not a number retries": {
			input: "abc\n7\n", cfg: DefaultNumberConfig(), want: 7,
		},
		"attempts exhausted": {
			input:   "a\nb\nc\n",
			cfg:     NumberConfig{MaxAttempts: 3},
			wantErr: ErrTooManyAttempts,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var out, errOut strings.Builder
			got, err := readNumber(&out, &errOut, lineReader(tt.input), "Count", tt.cfg, DefaultInputConfig())
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("readNumber() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("readNumber() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("readNumber() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestReadNumberRangeHint(t *testing.T) {
	tests := map[string]struct {
		cfg  NumberConfig
		want string
	}{
		"both bounds": {cfg: NumberConfig{Min: int64Ptr(1), Max: int64Ptr(99)}, want: "(1-99)"},
		"min only":    {cfg: NumberConfig{Min: int64Ptr(0)}, want: "(>= 0)"},
		"max only":    {cfg: NumberConfig{Max: int64Ptr(5)}, want: "(<= 5)"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var out, errOut strings.Builder
			if _, err := readNumber(&out, &errOut, lineReader("3\n"), "Pick", tt.cfg, DefaultInputConfig()); err != nil {
				t.Fatalf("readNumber() error = %v", err)
			}
			if plain := stripANSI(out.String()); !strings.Contains(plain, tt.want) {
				t.Errorf("prompt %q missing range hint %s", plain, tt.want)
			}
		})
	}
}
