package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fernandofreitas03/textfmt/internal/config"
	"github.com/fernandofreitas03/textfmt/internal/errors"
	"github.com/fernandofreitas03/textfmt/internal/text"
)

type FormatResult struct {
	Formatted string   `json:"formatted"`
	Lines     []string `json:"lines"`
}

// Format wraps (and optionally justifies) text and writes the result to
// Stdout, either as plain lines or as an indented JSON document.
func (s Service) Format(cfg FormatConfig) error {
	err := cfg.Validate()
	if err != nil {
		return errors.Wrap(err, "validation failed")
	}

	prefs, err := config.LoadPreferences(s.Preferences)
	if err != nil {
		return err
	}

	width := cfg.Width
	if width == 0 {
		width = prefs.Width
	}
	if width == 0 && s.StdoutIsTTY {
		// The auto-detected terminal width only applies when the output is
		// actually going to that terminal.
		width = cfg.DefaultWidth
	}
	if width == 0 {
		width = text.DefaultWidth
	}

	justify := cfg.Justify || prefs.Justify

	input, err := s.readInput(cfg)
	if err != nil {
		return err
	}

	lines, formatted, err := text.Format(input, text.Options{
		Width:           width,
		Justify:         justify,
		JustifyLastLine: cfg.JustifyLastLine,
	})
	if err != nil {
		return err
	}

	if cfg.SaveDefaults {
		err := config.SavePreferences(s.Preferences, config.Preferences{Width: width, Justify: justify})
		if err != nil {
			return err
		}

		if s.StderrIsTTY {
			fmt.Fprintf(s.Stderr, "Saved default width %d (justify: %t).\n", width, justify)
		}
	}

	if cfg.Json {
		if lines == nil {
			lines = []string{}
		}

		encoded, err := json.MarshalIndent(FormatResult{Formatted: formatted, Lines: lines}, "", "  ")
		if err != nil {
			return errors.Wrap(err, "unable to JSON encode the result")
		}

		fmt.Fprintln(s.Stdout, string(encoded))
	} else if len(lines) > 0 {
		fmt.Fprintln(s.Stdout, formatted)
	}

	return nil
}

func (s Service) readInput(cfg FormatConfig) (string, error) {
	if cfg.Text != "" {
		return cfg.Text, nil
	}

	if cfg.FilePath != "" {
		contents, err := os.ReadFile(cfg.FilePath)
		if err != nil {
			return "", errors.Wrapf(err, "unable to read %q", cfg.FilePath)
		}
		return string(contents), nil
	}

	contents, err := io.ReadAll(s.Stdin)
	if err != nil {
		return "", errors.Wrap(err, "unable to read from stdin")
	}
	return string(contents), nil
}
