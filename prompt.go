package prettui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"
)

// ErrTooManyAttempts is returned by validating prompts when the retry
// budget is exhausted.
var ErrTooManyAttempts = errors.New("prettui: too many invalid attempts")

// ConfirmConfig controls yes/no confirmation prompts.
type ConfirmConfig struct {
	// Default is the choice taken when the user presses Enter without
	// input: true shows [Y/n], false shows [y/N], nil shows [y/n] and
	// keeps asking.
	Default *bool
	// CaseSensitive requires 'y'/'yes'/'n'/'no' to match case literally.
	CaseSensitive bool
}

// RegexConfig controls pattern-validated input prompts.
type RegexConfig struct {
	// ErrorMessage is shown on mismatch. Empty uses a generic message.
	ErrorMessage string
	// MaxAttempts is the retry budget; 0 means unlimited.
	MaxAttempts int
	// ShowPattern includes the regex pattern in the prompt.
	ShowPattern bool
}

// DefaultRegexConfig returns a RegexConfig with three attempts and no
// pattern hint.
func DefaultRegexConfig() RegexConfig {
	return RegexConfig{MaxAttempts: 3}
}

// NumberConfig controls numeric input prompts.
type NumberConfig struct {
	// Min is the minimum allowed value, if set.
	Min *int64
	// Max is the maximum allowed value, if set.
	Max *int64
	// ErrorMessage is shown on invalid or out-of-range input.
	ErrorMessage string
	// MaxAttempts is the retry budget; 0 means unlimited.
	MaxAttempts int
}

// DefaultNumberConfig returns a NumberConfig with three attempts and no
// bounds.
func DefaultNumberConfig() NumberConfig {
	return NumberConfig{MaxAttempts: 3}
}

// Confirm asks a yes/no question and returns the answer. It keeps asking
// until it reads y/yes/n/no or, when a default is configured, an empty
// line.
func Confirm(message string, cfg ConfirmConfig, in InputConfig) (bool, error) {
	return confirm(os.Stdout, os.Stderr, stdin, message, cfg, in)
}

func confirm(w, errW io.Writer, r *bufio.Reader, message string, cfg ConfirmConfig, in InputConfig) (bool, error) {
	indicator := "[y/n]"
	if cfg.Default != nil {
		if *cfg.Default {
			indicator = "[Y/n]"
		} else {
			indicator = "[y/N]"
		}
	}

	for {
		prompt := fmt.Sprintf("%s %s %s: ", strings.TrimSpace(in.Prefix), message, indicator)
		if err := printStyled(w, prompt, in); err != nil {
			return false, err
		}

		line, err := readPromptLine(r)
		if err != nil {
			return false, err
		}

		if line == "" && cfg.Default != nil {
			return *cfg.Default, nil
		}

		val := line
		if !cfg.CaseSensitive {
			val = strings.ToLower(val)
		}

		switch val {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		default:
			printError(errW, "Please enter 'y' or 'n'", in)
		}
	}
}

// ReadMatching reads a line matching the given pattern, retrying up to
// cfg.MaxAttempts times before failing with ErrTooManyAttempts.
func ReadMatching(message string, pattern *regexp.Regexp, cfg RegexConfig, in InputConfig) (string, error) {
	return readMatching(os.Stdout, os.Stderr, stdin, message, pattern, cfg, in)
}

func readMatching(w, errW io.Writer, r *bufio.Reader, message string, pattern *regexp.Regexp, cfg RegexConfig, in InputConfig) (string, error) {
	attempts := 0
	for {
		hint := ""
		if cfg.ShowPattern {
			hint = fmt.Sprintf(" (pattern: %s)", pattern.String())
		}
		prompt := fmt.Sprintf("%s %s%s: ", strings.TrimSpace(in.Prefix), message, hint)
		if err := printStyled(w, prompt, in); err != nil {
			return "", err
		}

		line, err := readPromptLine(r)
		if err != nil {
			return "", err
		}

		if pattern.MatchString(line) {
			return line, nil
		}

		attempts++
		if cfg.MaxAttempts > 0 && attempts >= cfg.MaxAttempts {
			return "", attemptsError(cfg.ErrorMessage, "input does not match pattern")
		}
		msg := cfg.ErrorMessage
		if msg == "" {
			msg = "Input does not match pattern"
		}
		printError(errW, msg, in)
	}
}

// ReadNumber reads an integer within the configured bounds, retrying up to
// cfg.MaxAttempts times before failing with ErrTooManyAttempts.
func ReadNumber(message string, cfg NumberConfig, in InputConfig) (int64, error) {
	return readNumber(os.Stdout, os.Stderr, stdin, message, cfg, in)
}

func readNumber(w, errW io.Writer, r *bufio.Reader, message string, cfg NumberConfig, in InputConfig) (int64, error) {
	attempts := 0
	for {
		prompt := fmt.Sprintf("%s %s%s: ", strings.TrimSpace(in.Prefix), message, rangeHint(cfg))
		if err := printStyled(w, prompt, in); err != nil {
			return 0, err
		}

		line, err := readPromptLine(r)
		if err != nil {
			return 0, err
		}

		num, perr := strconv.ParseInt(line, 10, 64)
		if perr == nil && inBounds(num, cfg) {
			return num, nil
		}

		attempts++
		if cfg.MaxAttempts > 0 && attempts >= cfg.MaxAttempts {
			return 0, attemptsError(cfg.ErrorMessage, "invalid number input")
		}
		msg := cfg.ErrorMessage
		if msg == "" {
			msg = "Invalid number"
		}
		printError(errW, msg, in)
	}
}

// rangeHint formats the bounds for display in the prompt.
func rangeHint(cfg NumberConfig) string {
	switch {
	case cfg.Min != nil && cfg.Max != nil:
		return fmt.Sprintf(" (%d-%d)", *cfg.Min, *cfg.Max)
	case cfg.Min != nil:
		return fmt.Sprintf(" (>= %d)", *cfg.Min)
	case cfg.Max != nil:
		return fmt.Sprintf(" (<= %d)", *cfg.Max)
	default:
		return ""
	}
}

func inBounds(n int64, cfg NumberConfig) bool {
	if cfg.Min != nil && n < *cfg.Min {
		return false
	}
	if cfg.Max != nil && n > *cfg.Max {
		return false
	}
	return true
}

func attemptsError(custom, fallback string) error {
	msg := custom
	if msg == "" {
		msg = fallback
	}
	return fmt.Errorf("%w: %s", ErrTooManyAttempts, msg)
}

// readPromptLine reads and trims one line; EOF with no input is an error.
func readPromptLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line == "" {
			return "", fmt.Errorf("read input: %w", io.ErrUnexpectedEOF)
		}
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("read input: %w", err)
		}
	}
	return strings.TrimSpace(line), nil
}

// printStyled writes a prompt using the InputConfig styling.
func printStyled(w io.Writer, text string, in InputConfig) error {
	esc := newEscBuilder(128)
	if in.IndentLevel > 0 {
		esc.WriteString(strings.Repeat(" ", in.IndentLevel))
	}
	esc.SetForeground(in.PromptColor)
	esc.WriteString(text)
	esc.ResetStyle()
	_, err := w.Write(esc.Bytes())
	return err
}

// printError writes a retry message styled with InputTextColor.
func printError(w io.Writer, message string, in InputConfig) {
	esc := newEscBuilder(128)
	esc.SetForeground(in.InputTextColor)
	esc.WriteString("Error: " + message)
	esc.ResetStyle()
	esc.WriteString("\n")
	w.Write(esc.Bytes()) //nolint:errcheck // best-effort diagnostics
}
