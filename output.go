package prettui

import (
	"io"
	"os"
	"strings"
)

// OutputConfig controls how WriteOutput formats messages.
type OutputConfig struct {
	// Prefix is text displayed before each message (e.g. a module name).
	Prefix string
	// PrefixColor is the color for the prefix and the log level tag.
	PrefixColor Color
	// TextColor is the color for the message body.
	TextColor Color
	// LogLevel is an optional tag (e.g. "INFO", "WARN") displayed before
	// the message. Empty means no tag.
	LogLevel string
	// IndentLevel is the number of spaces printed before each line.
	IndentLevel int
	// MaxCharsPerLine is the wrap width in terminal columns.
	MaxCharsPerLine int
}

// DefaultOutputConfig returns the default output configuration: no prefix,
// green prefix color, white text, no log level tag, no indentation, and an
// 80-column wrap.
func DefaultOutputConfig() OutputConfig {
	return OutputConfig{
		PrefixColor:     Green,
		TextColor:       White,
		MaxCharsPerLine: 80,
	}
}

// WriteOutput writes a styled, wrapped message to stdout. The message is
// word-wrapped at MaxCharsPerLine; each line gets the configured
// indentation, prefix, and optional log level tag.
func WriteOutput(cfg OutputConfig, message string) error {
	return writeOutput(os.Stdout, cfg, message)
}

func writeOutput(w io.Writer, cfg OutputConfig, message string) error {
	esc := newEscBuilder(256)

	for _, line := range wrapText(message, cfg.MaxCharsPerLine) {
		if cfg.IndentLevel > 0 {
			esc.WriteString(strings.Repeat(" ", cfg.IndentLevel))
		}
		if cfg.Prefix != "" {
			esc.SetForeground(cfg.PrefixColor)
			esc.WriteString(cfg.Prefix)
		}
		if cfg.LogLevel != "" {
			esc.SetForeground(cfg.PrefixColor)
			esc.WriteString("[" + cfg.LogLevel + "] ")
		}
		esc.SetForeground(cfg.TextColor)
		esc.WriteString(line)
		esc.ResetStyle()
		esc.WriteString("\n")
	}

	_, err := w.Write(esc.Bytes())
	return err
}
