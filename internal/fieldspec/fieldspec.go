package fieldspec

import "regexp"

// Spec is one parsed element of the field-selection language. Indices
// resolves it against a token list into 0-based positions; the result may be
// empty but resolution never fails. The set of implementations is closed.
type Spec interface {
	Indices(tokens []string) []int
}

// spanIndices expands 1-based bounds into 0-based indices. Ascending when
// a <= b, descending otherwise (so a spec like 5-1 reverses fields 1..5).
// Positions outside 1..n are dropped.
func spanIndices(a, b, n int) []int {
	var out []int
	step := 1
	if a > b {
		step = -1
	}
	for v := a; ; v += step {
		if v >= 1 && v <= n {
			out = append(out, v-1)
		}
		if v == b {
			break
		}
	}
	return out
}

// Index selects a single 1-based position.
type Index struct {
	N int
}

func (s Index) Indices(tokens []string) []int {
	return spanIndices(s.N, s.N, len(tokens))
}

// Last selects the Nth position from the end; Last{1} is the final token.
// When N exceeds the token count the computed position is non-positive and
// drops out in the bounds filter.
type Last struct {
	N int
}

func (s Last) Indices(tokens []string) []int {
	pos := len(tokens) + 1 - s.N
	return spanIndices(pos, pos, len(tokens))
}

// OpenRange selects from Start through the end of the line.
type OpenRange struct {
	Start int
}

func (s OpenRange) Indices(tokens []string) []int {
	return spanIndices(s.Start, len(tokens), len(tokens))
}

// ClosedRange selects the inclusive range Start..End. Start above End emits
// the positions in decreasing order.
type ClosedRange struct {
	Start, End int
}

func (s ClosedRange) Indices(tokens []string) []int {
	return spanIndices(s.Start, s.End, len(tokens))
}

// HeaderRegex selects the positions of header tokens matching its pattern.
// It must be frozen by ResolveHeader before per-line resolution; resolving it
// directly matches whatever token list it is given.
type HeaderRegex struct {
	Pattern *regexp.Regexp
}

func (s HeaderRegex) Indices(tokens []string) []int {
	return matchIndices(s.Pattern, tokens)
}

// DataRegex selects the positions of the current line's tokens matching its
// pattern, re-evaluated against every line.
type DataRegex struct {
	Pattern *regexp.Regexp
}

func (s DataRegex) Indices(tokens []string) []int {
	return matchIndices(s.Pattern, tokens)
}

func matchIndices(re *regexp.Regexp, tokens []string) []int {
	var out []int
	for i, token := range tokens {
		if re.MatchString(token) {
			out = append(out, spanIndices(i+1, i+1, len(tokens))...)
		}
	}
	return out
}

// ResolveHeader freezes a parsed spec list against the header line's tokens.
// Every HeaderRegex is replaced by the literal Index specs it matched, in
// left-to-right header order; all other specs pass through unchanged. The
// returned list contains no HeaderRegex and is safe to reuse for every data
// line without re-resolution.
func ResolveHeader(specs []Spec, header []string) []Spec {
	resolved := make([]Spec, 0, len(specs))
	for _, spec := range specs {
		hr, ok := spec.(HeaderRegex)
		if !ok {
			resolved = append(resolved, spec)
			continue
		}
		for _, idx := range hr.Indices(header) {
			resolved = append(resolved, Index{N: idx + 1})
		}
	}
	return resolved
}
