package fieldspec

import (
	"regexp"
	"slices"
	"testing"
)

func tokens(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = string(rune('a' + i))
	}
	return out
}

func TestIndexOneBasedConsistency(t *testing.T) {
	toks := tokens(5)

	for n := 1; n <= len(toks); n++ {
		got := Index{N: n}.Indices(toks)
		if !slices.Equal(got, []int{n - 1}) {
			t.Errorf("Index{%d} = %v, want [%d]", n, got, n-1)
		}
	}

	for _, n := range []int{0, len(toks) + 1} {
		if got := (Index{N: n}).Indices(toks); len(got) != 0 {
			t.Errorf("Index{%d} = %v, want empty", n, got)
		}
	}
}

func TestClosedRangeReversal(t *testing.T) {
	toks := tokens(5)

	tests := []struct {
		name string
		spec ClosedRange
		want []int
	}{
		{"ascending", ClosedRange{Start: 1, End: 5}, []int{0, 1, 2, 3, 4}},
		{"descending", ClosedRange{Start: 5, End: 1}, []int{4, 3, 2, 1, 0}},
		{"partial descending", ClosedRange{Start: 3, End: 2}, []int{2, 1}},
		{"clamped above", ClosedRange{Start: 4, End: 9}, []int{3, 4}},
		{"entirely out of range", ClosedRange{Start: 6, End: 9}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.spec.Indices(toks)
			if !slices.Equal(got, tt.want) {
				t.Fatalf("Indices = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestOpenRange(t *testing.T) {
	toks := tokens(5)

	tests := []struct {
		name string
		spec OpenRange
		want []int
	}{
		{"interior start", OpenRange{Start: 3}, []int{2, 3, 4}},
		{"start at first token", OpenRange{Start: 1}, []int{0, 1, 2, 3, 4}},
		{"start at last token", OpenRange{Start: 5}, []int{4}},
		// A start past the end makes the span descend back to the token
		// count, so after clamping only the final token survives.
		{"start just past end", OpenRange{Start: 6}, []int{4}},
		{"start far past end", OpenRange{Start: 9}, []int{4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.spec.Indices(toks)
			if !slices.Equal(got, tt.want) {
				t.Fatalf("OpenRange{%d} = %v, want %v", tt.spec.Start, got, tt.want)
			}
		})
	}
}

func TestLast(t *testing.T) {
	toks := tokens(4)

	tests := []struct {
		n    int
		want []int
	}{
		{1, []int{3}},
		{4, []int{0}},
		{5, nil},
	}

	for _, tt := range tests {
		got := Last{N: tt.n}.Indices(toks)
		if !slices.Equal(got, tt.want) {
			t.Errorf("Last{%d} = %v, want %v", tt.n, got, tt.want)
		}
	}
}

func TestZeroTokenLine(t *testing.T) {
	specs := []Spec{
		Index{N: 1},
		Last{N: 1},
		OpenRange{Start: 1},
		ClosedRange{Start: 1, End: 3},
		DataRegex{Pattern: regexp.MustCompile(`.`)},
	}

	for _, spec := range specs {
		if got := spec.Indices(nil); len(got) != 0 {
			t.Errorf("%T on empty line = %v, want empty", spec, got)
		}
	}
}

func TestDataRegexPerLine(t *testing.T) {
	spec := DataRegex{Pattern: regexp.MustCompile(`^\d+$`)}

	if got := spec.Indices([]string{"7", "x", "9"}); !slices.Equal(got, []int{0, 2}) {
		t.Fatalf("numeric line = %v, want [0 2]", got)
	}
	if got := spec.Indices([]string{"a", "b"}); len(got) != 0 {
		t.Fatalf("non-numeric line = %v, want empty", got)
	}
}

func TestResolveHeaderFreezesMatches(t *testing.T) {
	header := []string{"id", "name", "email"}
	specs := []Spec{
		Index{N: 1},
		HeaderRegex{Pattern: regexp.MustCompile(`^e`)},
		Last{N: 1},
	}

	resolved := ResolveHeader(specs, header)

	want := []Spec{Index{N: 1}, Index{N: 3}, Last{N: 1}}
	if len(resolved) != len(want) {
		t.Fatalf("resolved %d specs, want %d: %v", len(resolved), len(want), resolved)
	}
	for i := range want {
		if resolved[i] != want[i] {
			t.Errorf("resolved[%d] = %v, want %v", i, resolved[i], want[i])
		}
	}

	// Frozen Index specs select the header column's position on any data
	// line, regardless of that line's content.
	data := []string{"1", "bob", "bob@x.com"}
	var sel Selection
	got := sel.Apply(resolved, data)
	if !slices.Equal(got, []int{0, 2, 2}) {
		t.Fatalf("Apply on data line = %v, want [0 2 2]", got)
	}
	if data[got[1]] != "bob@x.com" {
		t.Fatalf("selected %q, want email column", data[got[1]])
	}
}

func TestResolveHeaderNoMatches(t *testing.T) {
	specs := []Spec{HeaderRegex{Pattern: regexp.MustCompile(`^zzz`)}}
	resolved := ResolveHeader(specs, []string{"id", "name"})
	if len(resolved) != 0 {
		t.Fatalf("resolved = %v, want empty", resolved)
	}
}
