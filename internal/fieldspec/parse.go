package fieldspec

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// rangePattern captures the non-trivial item forms: open/closed ranges and
// from-the-end positions. Plain positions and r/R items are handled before it
// applies.
var rangePattern = regexp.MustCompile(`^(?P<start>\d+)-(?P<end>\d+)?$|^-(?P<last>\d+)$`)

// Parse converts a list of spec source strings into Specs. Each source string
// may itself hold a comma-separated list. Malformed items and regex patterns
// that do not compile are configuration errors; parsing fails before any line
// is processed.
func Parse(sources []string) ([]Spec, error) {
	var specs []Spec
	for _, source := range sources {
		items, err := splitItems(source)
		if err != nil {
			return nil, err
		}
		for _, item := range items {
			spec, err := parseItem(item)
			if err != nil {
				return nil, err
			}
			specs = append(specs, spec)
		}
	}
	return specs, nil
}

// splitItems splits a source string on commas, honoring r/.../ and R/.../
// slash quoting so patterns may contain commas.
func splitItems(source string) ([]string, error) {
	var items []string
	rest := strings.TrimSpace(source)
	for rest != "" {
		item, remainder, err := nextItem(rest)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
		rest = remainder
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("empty field spec %q", source)
	}
	return items, nil
}

func nextItem(s string) (item, rest string, err error) {
	if len(s) >= 2 && (s[0] == 'r' || s[0] == 'R') && s[1] == '/' {
		end := strings.IndexByte(s[2:], '/')
		if end < 0 {
			return "", "", fmt.Errorf("unterminated pattern in field spec %q", s)
		}
		item = s[:end+3]
		rest = s[end+3:]
		if rest != "" {
			if rest[0] != ',' {
				return "", "", fmt.Errorf("expected ',' after pattern in field spec %q", s)
			}
			rest = rest[1:]
		}
		return item, rest, nil
	}

	if i := strings.IndexByte(s, ','); i >= 0 {
		return strings.TrimSpace(s[:i]), s[i+1:], nil
	}
	return strings.TrimSpace(s), "", nil
}

func parseItem(item string) (Spec, error) {
	if item == "" {
		return nil, fmt.Errorf("empty item in field spec list")
	}

	if item[0] == 'r' || item[0] == 'R' {
		pattern := strings.TrimPrefix(strings.TrimSuffix(item[1:], "/"), "/")
		if pattern == "" {
			return nil, fmt.Errorf("empty pattern in field spec %q", item)
		}
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("compile field spec pattern %q: %w", pattern, err)
		}
		if item[0] == 'r' {
			return HeaderRegex{Pattern: re}, nil
		}
		return DataRegex{Pattern: re}, nil
	}

	if m := rangePattern.FindStringSubmatch(item); m != nil {
		start := m[rangePattern.SubexpIndex("start")]
		end := m[rangePattern.SubexpIndex("end")]
		last := m[rangePattern.SubexpIndex("last")]
		switch {
		case last != "":
			n, err := parsePosition(last, item)
			if err != nil {
				return nil, err
			}
			return Last{N: n}, nil
		case end != "":
			a, err := parsePosition(start, item)
			if err != nil {
				return nil, err
			}
			b, err := parsePosition(end, item)
			if err != nil {
				return nil, err
			}
			return ClosedRange{Start: a, End: b}, nil
		default:
			a, err := parsePosition(start, item)
			if err != nil {
				return nil, err
			}
			return OpenRange{Start: a}, nil
		}
	}

	n, err := parsePosition(item, item)
	if err != nil {
		return nil, err
	}
	return Index{N: n}, nil
}

// parsePosition parses a 1-based position. Zero is accepted here and dropped
// during resolution, matching the permissive out-of-range policy.
func parsePosition(text, item string) (int, error) {
	n, err := strconv.Atoi(text)
	if err != nil {
		return 0, fmt.Errorf("invalid position in field spec %q: %w", item, err)
	}
	return n, nil
}
