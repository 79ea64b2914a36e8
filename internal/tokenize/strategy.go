package tokenize

import "strings"

// Strategy splits one line into an ordered sequence of tokens. Implementations
// carry only their configuration, are immutable after construction, and never
// fail: an empty line yields an empty slice.
type Strategy interface {
	Words(line string) []string
}

// SplitLiteral splits wherever its pattern occurs as a literal substring.
// Consecutive separators are not collapsed, so adjacent occurrences produce
// empty tokens. An empty pattern returns the whole line as a single token.
type SplitLiteral struct {
	pattern string
}

// NewSplitLiteral builds a literal-string splitter for the given pattern.
func NewSplitLiteral(pattern string) SplitLiteral {
	return SplitLiteral{pattern: pattern}
}

func (s SplitLiteral) Words(line string) []string {
	if line == "" {
		return nil
	}
	if s.pattern == "" {
		return []string{line}
	}
	return strings.Split(line, s.pattern)
}

// Whitespace splits on runs of whitespace, collapsing consecutive separators
// and discarding leading and trailing empties.
type Whitespace struct{}

func (Whitespace) Words(line string) []string {
	return strings.Fields(line)
}
