package tokenize

import (
	"regexp"
	"strings"
)

// wordCharPattern is the character class a boundary scanner treats as
// word-internal. RE2's \b is ASCII-only, so the class is spelled out to keep
// boundary detection Unicode-aware: letters, digits, and underscore.
const wordCharPattern = `^[\p{L}\p{N}_]`

// RegexBoundary is a two-class scanner. It walks the line rune by rune and
// classifies each rune as word or boundary; consecutive runes of the same
// class coalesce into one token. A rune is a boundary when the word-character
// class rejects it and it does not appear in the excluded set, which lets
// callers keep specific punctuation (apostrophes, emoji) word-internal.
//
// Scan partitions the input: Joined(Scan(line)) == line for every line.
type RegexBoundary struct {
	excluded string
	wordChar *regexp.Regexp
}

// NewRegexBoundary builds a boundary scanner. Runes in excluded are treated
// as word characters even when the boundary class would split on them.
func NewRegexBoundary(excluded string) RegexBoundary {
	return RegexBoundary{
		excluded: excluded,
		wordChar: regexp.MustCompile(wordCharPattern),
	}
}

func (t RegexBoundary) isBoundary(r rune) bool {
	if strings.ContainsRune(t.excluded, r) {
		return false
	}
	return !t.wordChar.MatchString(string(r))
}

// Scan returns the full typed token stream: alternating word and boundary
// runs in input order.
func (t RegexBoundary) Scan(line string) []Token {
	var tokens []Token
	start := 0
	current := Word
	pending := false

	flush := func(end int) {
		if pending && end > start {
			tokens = append(tokens, Token{Kind: current, Text: line[start:end]})
		}
	}

	for i, r := range line {
		kind := Word
		if t.isBoundary(r) {
			kind = Boundary
		}
		if !pending || kind != current {
			flush(i)
			start = i
			current = kind
			pending = true
		}
	}
	flush(len(line))
	return tokens
}

// Words returns only the word tokens from the typed stream.
func (t RegexBoundary) Words(line string) []string {
	var words []string
	for _, tok := range t.Scan(line) {
		if tok.Kind == Word {
			words = append(words, tok.Text)
		}
	}
	return words
}

// Boundaries returns only the boundary tokens from the typed stream.
func (t RegexBoundary) Boundaries(line string) []string {
	var runs []string
	for _, tok := range t.Scan(line) {
		if tok.Kind == Boundary {
			runs = append(runs, tok.Text)
		}
	}
	return runs
}
