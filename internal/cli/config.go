package cli

import (
	"io"

	"github.com/fernandofreitas03/textfmt/internal/config"
	"github.com/fernandofreitas03/textfmt/internal/errors"
)

type Config struct {
	Preferences config.Backend
	Stdin       io.Reader
	Stdout      io.Writer
	Stderr      io.Writer
	StdoutIsTTY bool
	StderrIsTTY bool
}

func (c Config) Validate() error {
	if c.Preferences == nil {
		return errors.New("missing preferences backend")
	}

	if c.Stdin == nil {
		return errors.New("missing Stdin")
	}

	if c.Stdout == nil {
		return errors.New("missing Stdout")
	}

	if c.Stderr == nil {
		return errors.New("missing Stderr")
	}

	return nil
}

type FormatConfig struct {
	// Text is the text to format. When empty, FilePath is read instead; when
	// that is also empty, text is read from Stdin.
	Text     string
	FilePath string

	// Width is the maximum line width. Zero means unset, in which case the
	// stored preference applies, then DefaultWidth.
	Width int

	// DefaultWidth is the width detected from the caller's terminal. It is
	// honored only when Stdout is a TTY; piped output falls back to the
	// package default instead.
	DefaultWidth int

	Justify         bool
	JustifyLastLine bool

	Json         bool
	SaveDefaults bool
}

func (c FormatConfig) Validate() error {
	if c.Text != "" && c.FilePath != "" {
		return errors.New("text cannot be provided both inline and with --file")
	}

	if c.Width < 0 {
		return errors.NewInputError("width must be a positive integer, got %d", c.Width)
	}

	return nil
}
