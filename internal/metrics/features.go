// Package metrics computes basic local text features for recorded turns.
// Counts only; raw content is never retained here.
package metrics

import (
	"strings"
	"unicode/utf8"
)

// TurnFeatures holds byte, rune, word, and line counts for one turn's content.
type TurnFeatures struct {
	Bytes int
	Runes int
	Words int
	Lines int
}

// CountTurn computes and returns the text features for one turn's content.
func CountTurn(content string) TurnFeatures {
	return TurnFeatures{
		Bytes: len(content),
		Runes: utf8.RuneCountInString(content),
		Words: countWords(content),
		Lines: countLines(content),
	}
}

// countWords counts words split on Unicode whitespace.
func countWords(s string) int {
	return len(strings.Fields(s))
}

// countLines returns 0 for empty strings; otherwise 1 plus the number of '\n' runes.
func countLines(s string) int {
	if s == "" {
		return 0
	}
	return 1 + strings.Count(s, "\n")
}
