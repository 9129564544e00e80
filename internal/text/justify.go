package text

import (
	"strings"
	"unicode/utf8"
)

// JustifyWords renders words as a single line whose length is exactly width
// code points, by widening the gaps between words. The total padding is
// distributed as evenly as possible; when it does not divide evenly, the
// leftmost gaps each receive one extra space. Padding is only ever inserted
// between words, never before the first or after the last.
//
// A single word has no gaps to stretch and is returned unpadded, as is any
// word sequence whose natural single-spaced length already exceeds width.
func JustifyWords(words []string, width int) string {
	if len(words) == 0 {
		return ""
	}
	if len(words) == 1 {
		return words[0]
	}

	wordsLen := 0
	for _, word := range words {
		wordsLen += utf8.RuneCountInString(word)
	}

	gaps := len(words) - 1
	padding := width - wordsLen
	if padding <= gaps {
		return strings.Join(words, " ")
	}

	base := padding / gaps
	extra := padding % gaps

	var b strings.Builder
	for i, word := range words {
		b.WriteString(word)
		if i < gaps {
			spaces := base
			if i < extra {
				spaces++
			}
			b.WriteString(strings.Repeat(" ", spaces))
		}
	}

	return b.String()
}
