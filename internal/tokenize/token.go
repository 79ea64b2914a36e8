package tokenize

import "strings"

// Kind classifies a typed token produced by the boundary scanner.
type Kind int

const (
	// Word is a maximal run of word characters.
	Word Kind = iota
	// Boundary is a maximal run of separator characters between words.
	Boundary
)

// Token is one typed span of a scanned line. The full typed stream of a line
// partitions the input: concatenating the Text of every token, in order,
// reproduces the line exactly.
type Token struct {
	Kind Kind
	Text string
}

// Joined concatenates the text of every token in order. Used to verify the
// round-trip property of the boundary scanner.
func Joined(tokens []Token) string {
	var b strings.Builder
	for _, t := range tokens {
		b.WriteString(t.Text)
	}
	return b.String()
}
