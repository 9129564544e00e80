package text

import (
	"strings"
	"unicode/utf8"
)

// SplitWords breaks s into words on any run of whitespace. Empty tokens
// produced by consecutive whitespace are discarded; word order is preserved.
func SplitWords(s string) []string {
	return strings.Fields(s)
}

// WrapWords packs words into lines of at most width code points, counting the
// single spaces that join them, greedily from left to right. The first word
// of a line is always placed regardless of its length, so a word longer than
// width occupies a line of its own at its natural length.
func WrapWords(words []string, width int) [][]string {
	var lines [][]string
	var current []string
	length := 0

	for _, word := range words {
		wordLen := utf8.RuneCountInString(word)
		if len(current) == 0 {
			current = []string{word}
			length = wordLen
			continue
		}
		if length+1+wordLen <= width {
			current = append(current, word)
			length += 1 + wordLen
			continue
		}
		lines = append(lines, current)
		current = []string{word}
		length = wordLen
	}

	if len(current) > 0 {
		lines = append(lines, current)
	}

	return lines
}
