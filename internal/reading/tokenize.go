// Package reading provides the core RSVP (Rapid Serial Visual Presentation)
// engine: tokenization, pivot-letter placement, display timing, and the
// playback state machine. It performs no rendering and owns no timers;
// front ends drive the engine and own the scheduling primitive.
package reading

import (
	"strings"
	"unicode/utf8"
)

// Tokenize splits raw text into words. Control characters (U+0000-U+001F,
// U+007F-U+009F) are mapped to spaces so they never appear inside a token
// and never glue neighboring lines together, then the text is split on any
// run of whitespace. Empty or all-whitespace input yields an empty slice,
// never an error.
func Tokenize(raw string) []string {
	cleaned := strings.Map(func(r rune) rune {
		if r <= 0x1F || (r >= 0x7F && r <= 0x9F) {
			return ' '
		}
		return r
	}, raw)
	return strings.Fields(cleaned)
}

// PivotSplit is the three-way split of a word around its pivot letter.
type PivotSplit struct {
	Left  string
	Pivot string
	Right string
}

// PivotIndex returns the rune index of the letter to highlight for a word.
// The breakpoints are a fixed table tuned for fixation, not a formula:
// length 1 maps to 0, 2-5 to 1, 6-9 to 2, 10-13 to 3, 14 and up to 4.
// The word must be non-empty.
func PivotIndex(word string) int {
	switch length := utf8.RuneCountInString(word); {
	case length <= 1:
		return 0
	case length <= 5:
		return 1
	case length <= 9:
		return 2
	case length <= 13:
		return 3
	default:
		return 4
	}
}

// SplitPivot splits a word into the text before, at, and after its pivot
// letter. An empty word returns all-empty fields.
func SplitPivot(word string) PivotSplit {
	runes := []rune(word)
	if len(runes) == 0 {
		return PivotSplit{}
	}
	idx := PivotIndex(word)
	return PivotSplit{
		Left:  string(runes[:idx]),
		Pivot: string(runes[idx : idx+1]),
		Right: string(runes[idx+1:]),
	}
}
