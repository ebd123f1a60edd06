package prettui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/term"
)

// stdin is shared across all readers in the package so a line buffered by
// one call is not lost to the next.
var stdin = bufio.NewReader(os.Stdin)

// InputConfig controls the appearance of interactive line readers.
type InputConfig struct {
	// Prefix is text displayed before the prompt (e.g. a label).
	Prefix string
	// Prompt is the prompt string shown before reading input.
	Prompt string
	// PrefixColor is the color for the prefix text.
	PrefixColor Color
	// PromptColor is the color for the prompt text.
	PromptColor Color
	// InputTextColor is the color for the user's typed text.
	InputTextColor Color
	// MaxCharsPerLine is the wrap width used by prompts that wrap.
	MaxCharsPerLine int
	// IndentLevel is the number of spaces printed before the prompt.
	IndentLevel int
}

// DefaultInputConfig returns the default input configuration: a ">> "
// prompt, blue prefix, white prompt and input text, 80-column wrap, no
// indentation.
func DefaultInputConfig() InputConfig {
	return InputConfig{
		Prompt:          ">> ",
		PrefixColor:     Blue,
		PromptColor:     White,
		InputTextColor:  White,
		MaxCharsPerLine: 80,
	}
}

// ReadInput reads a single line from stdin with the configured styling.
// EOF before any input is an error.
func ReadInput(cfg InputConfig) (string, error) {
	return readInput(os.Stdout, stdin, cfg)
}

func readInput(w io.Writer, r *bufio.Reader, cfg InputConfig) (string, error) {
	esc := newEscBuilder(128)
	appendPromptHeader(esc, cfg)
	esc.SetForeground(cfg.InputTextColor)
	if _, err := w.Write(esc.Bytes()); err != nil {
		return "", err
	}

	line, err := r.ReadString('\n')

	esc.Reset()
	esc.ResetStyle()
	if _, werr := w.Write(esc.Bytes()); werr != nil {
		return "", werr
	}

	if err != nil {
		if errors.Is(err, io.EOF) && line == "" {
			return "", fmt.Errorf("read input: %w", io.ErrUnexpectedEOF)
		}
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("read input: %w", err)
		}
	}
	return trimLineEnding(line), nil
}

// ReadMultiline reads lines from stdin until a line equal to terminator
// (after trimming whitespace) is entered. The prompt is shown once;
// subsequent lines have no prompt. Returns the lines joined by newlines.
func ReadMultiline(cfg InputConfig, terminator string) (string, error) {
	return readMultiline(os.Stdout, stdin, cfg, terminator)
}

func readMultiline(w io.Writer, r *bufio.Reader, cfg InputConfig, terminator string) (string, error) {
	esc := newEscBuilder(128)
	if cfg.IndentLevel > 0 {
		esc.WriteString(strings.Repeat(" ", cfg.IndentLevel))
	}
	if cfg.Prefix != "" {
		esc.SetForeground(cfg.PrefixColor)
		esc.WriteString(cfg.Prefix)
	}
	esc.SetForeground(cfg.PromptColor)
	esc.WriteString(fmt.Sprintf("%s (end with '%s' on new line)\n", cfg.Prompt, terminator))
	esc.ResetStyle()
	if _, err := w.Write(esc.Bytes()); err != nil {
		return "", err
	}

	var lines []string
	for {
		line, err := r.ReadString('\n')
		if line != "" {
			text := trimLineEnding(line)
			if strings.TrimSpace(text) == terminator {
				break
			}
			lines = append(lines, text)
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return "", fmt.Errorf("read multiline input: %w", err)
		}
	}
	return strings.Join(lines, "\n"), nil
}

// ReadSecret reads a line from the terminal without echoing it, for
// passwords and tokens. The prompt is styled like ReadInput.
func ReadSecret(cfg InputConfig) (string, error) {
	esc := newEscBuilder(128)
	appendPromptHeader(esc, cfg)
	esc.ResetStyle()
	if _, err := os.Stdout.Write(esc.Bytes()); err != nil {
		return "", err
	}

	secret, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("read secret: %w", err)
	}
	return string(secret), nil
}

// appendPromptHeader appends indent, styled prefix, and styled prompt.
func appendPromptHeader(esc *escBuilder, cfg InputConfig) {
	if cfg.IndentLevel > 0 {
		esc.WriteString(strings.Repeat(" ", cfg.IndentLevel))
	}
	if cfg.Prefix != "" {
		esc.SetForeground(cfg.PrefixColor)
		esc.WriteString(cfg.Prefix)
	}
	esc.SetForeground(cfg.PromptColor)
	esc.WriteString(cfg.Prompt)
}

// trimLineEnding strips a trailing LF or CRLF.
func trimLineEnding(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}

// wrapText word-wraps text into lines no wider than maxWidth terminal
// columns. Words wider than maxWidth get a line of their own.
func wrapText(text string, maxWidth int) []string {
	var lines []string
	var current strings.Builder
	currentWidth := 0

	for _, word := range strings.Fields(text) {
		w := runewidth.StringWidth(word)
		if currentWidth > 0 && currentWidth+1+w > maxWidth {
			lines = append(lines, current.String())
			current.Reset()
			currentWidth = 0
		}
		if currentWidth > 0 {
			current.WriteByte(' ')
			currentWidth++
		}
		current.WriteString(word)
		currentWidth += w
	}
	if currentWidth > 0 {
		lines = append(lines, current.String())
	}
	return lines
}
