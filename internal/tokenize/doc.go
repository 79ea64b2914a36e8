// Package tokenize turns lines of text into ordered token lists.
//
// A Tokenizer pairs one word-splitting strategy with post-processing rules:
//   - optionally lowercase the whole line before splitting
//   - split with the chosen strategy
//   - optionally trim whitespace from every token
//   - optionally discard tokens matching a filter expression
//
// The order above is fixed. Lowercasing happens before splitting because it
// can change what a case-sensitive strategy considers a boundary, and trimming
// happens before filtering so the filter sees already-trimmed text.
//
// Strategies form a closed set selected by tag through New. All of them are
// total: any input line, including the empty string, produces a token list
// without error. Tokenizers are immutable after construction and safe for
// concurrent use.
package tokenize
