// Package text implements greedy line breaking and full justification of
// plain text. Widths are measured in code points; words are never split or
// hyphenated.
package text

import (
	"strings"

	"github.com/fernandofreitas03/textfmt/internal/errors"
)

// DefaultWidth is the line width used when a caller does not specify one.
const DefaultWidth = 80

type Options struct {
	// Width is the maximum line width in code points. It must be at least 1.
	Width int

	// Justify widens inter-word gaps so every line except the last renders at
	// exactly Width code points.
	Justify bool

	// JustifyLastLine additionally justifies the final line, which is
	// otherwise always left ragged.
	JustifyLastLine bool
}

// Format breaks s into lines no wider than opts.Width, optionally justified.
// It returns the individual lines and the newline-joined result. Text that is
// empty or contains only whitespace yields no lines and an empty string.
//
// Lines with a single word are never padded, so a word longer than opts.Width
// is emitted verbatim on its own overflowing line.
func Format(s string, opts Options) (lines []string, formatted string, err error) {
	if opts.Width < 1 {
		return nil, "", errors.NewInputError("width must be a positive integer, got %d", opts.Width)
	}

	words := SplitWords(s)
	if len(words) == 0 {
		return nil, "", nil
	}

	wrapped := WrapWords(words, opts.Width)
	lines = make([]string, len(wrapped))
	for i, lineWords := range wrapped {
		lastLine := i == len(wrapped)-1
		if opts.Justify && (!lastLine || opts.JustifyLastLine) {
			lines[i] = JustifyWords(lineWords, opts.Width)
		} else {
			lines[i] = strings.Join(lineWords, " ")
		}
	}

	return lines, strings.Join(lines, "\n"), nil
}
