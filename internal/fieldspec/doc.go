// Package fieldspec implements a small field-selection language over token
// positions, in the spirit of cut(1) field lists.
//
// A spec source string is a comma-separated list of items:
//
//	N       literal 1-based position
//	-N      Nth position from the end (-1 is the final token)
//	N-      open range from N to the end of the line
//	N-M     closed range; M may be below N to emit positions in reverse
//	r<pat>  positions of header tokens matching the pattern
//	R<pat>  positions of the current line's tokens matching the pattern
//
// Regex patterns may be wrapped in slashes (r/a,b/) so they can contain
// commas without splitting the list. A quoted pattern ends at the next slash
// and therefore cannot contain a literal /; leave such patterns unquoted — an
// unquoted pattern may contain slashes freely but ends at the next comma.
//
// Parsed specs resolve against a concrete token list into 0-based indices.
// Resolution is total: out-of-range positions are silently dropped, never
// rejected, so a short line simply selects fewer fields. Header specs are
// frozen once against the first line of input by ResolveHeader; data-regex
// specs re-match against every line.
package fieldspec
