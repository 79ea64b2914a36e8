package tokenize

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrUnknownStrategy reports an unrecognized strategy tag in a Spec.
var ErrUnknownStrategy = errors.New("unknown tokenizer strategy")

// Spec is the declarative description of a tokenizer: a strategy tag, one
// optional init parameter whose meaning depends on the strategy (split pattern
// for splitstr, excluded boundary characters for regex-boundary, ignored
// otherwise), the two post-processing flags, and an optional filter pattern.
type Spec struct {
	Strategy string
	Param    string
	Downcase bool
	Trim     bool
	Filter   string
}

// DefaultSpec returns a spec selecting the whitespace strategy with all
// post-processing disabled.
func DefaultSpec() Spec {
	return Spec{Strategy: "whitespace"}
}

// Tokenizer is a resolved pipeline: one strategy plus post-processing rules.
// It is stateless between calls; Tokens is a pure function of its input line.
type Tokenizer struct {
	strategy Strategy
	downcase bool
	trim     bool
	filter   *regexp.Regexp
}

// New resolves a Spec into a ready-to-use Tokenizer. It fails if the strategy
// tag is unrecognized or the filter pattern does not compile; both are
// configuration errors detected before any line is processed.
func New(spec Spec) (*Tokenizer, error) {
	strategy, err := strategyFor(spec.Strategy, spec.Param)
	if err != nil {
		return nil, err
	}

	var filter *regexp.Regexp
	if spec.Filter != "" {
		filter, err = regexp.Compile(spec.Filter)
		if err != nil {
			return nil, fmt.Errorf("compile token filter: %w", err)
		}
	}

	return &Tokenizer{
		strategy: strategy,
		downcase: spec.Downcase,
		trim:     spec.Trim,
		filter:   filter,
	}, nil
}

func strategyFor(tag, param string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(tag)) {
	case "splitstr", "ss":
		return NewSplitLiteral(param), nil
	case "unicode-segment", "us":
		return UnicodeSegment{}, nil
	case "unicode-word", "uw":
		return UnicodeWord{}, nil
	case "whitespace", "ws", "":
		return Whitespace{}, nil
	case "regex-boundary", "rb":
		return NewRegexBoundary(param), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, tag)
	}
}

// Tokens runs the full pipeline on one line. Steps apply in fixed order:
// downcase the whole line, split, trim each token, drop filter matches.
func (t *Tokenizer) Tokens(line string) []string {
	if t.downcase {
		line = cases.Lower(language.Und).String(line)
	}
	tokens := t.strategy.Words(line)
	if t.trim {
		for i, token := range tokens {
			tokens[i] = strings.TrimSpace(token)
		}
	}
	if t.filter != nil {
		kept := tokens[:0]
		for _, token := range tokens {
			if !t.filter.MatchString(token) {
				kept = append(kept, token)
			}
		}
		tokens = kept
	}
	return tokens
}
