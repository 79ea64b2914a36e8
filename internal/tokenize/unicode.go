package tokenize

import (
	"unicode"

	"github.com/rivo/uniseg"
)

// UnicodeSegment splits on Unicode word-boundary rules (UAX #29). Every
// segment is emitted: words, punctuation, and whitespace runs each become
// their own token.
type UnicodeSegment struct{}

func (UnicodeSegment) Words(line string) []string {
	var tokens []string
	state := -1
	var segment string
	for rest := line; rest != ""; {
		segment, rest, state = uniseg.FirstWordInString(rest, state)
		tokens = append(tokens, segment)
	}
	return tokens
}

// UnicodeWord is UnicodeSegment restricted to word-like segments: only
// segments containing at least one letter or digit survive. Punctuation and
// whitespace between words are dropped, not emitted as empty tokens.
type UnicodeWord struct{}

func (UnicodeWord) Words(line string) []string {
	var tokens []string
	state := -1
	var segment string
	for rest := line; rest != ""; {
		segment, rest, state = uniseg.FirstWordInString(rest, state)
		if isWordSegment(segment) {
			tokens = append(tokens, segment)
		}
	}
	return tokens
}

func isWordSegment(segment string) bool {
	for _, r := range segment {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			return true
		}
	}
	return false
}
