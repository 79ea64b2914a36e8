package fieldspec

import "sort"

// Selection holds the post-processing switches applied to the concatenated
// per-spec indices of one line.
type Selection struct {
	Unique     bool
	Sorted     bool
	Complement bool
}

// Apply resolves every spec against one line's tokens and post-processes the
// combined result. Steps run in fixed order: concatenate in spec declaration
// order (duplicates preserved), first-seen dedup, ascending sort, complement
// against the line's own index range. Sort runs after dedup; complement runs
// last and always emits ascending indices.
func (sel Selection) Apply(specs []Spec, tokens []string) []int {
	var indices []int
	for _, spec := range specs {
		indices = append(indices, spec.Indices(tokens)...)
	}

	if sel.Unique {
		indices = dedupFirstSeen(indices)
	}
	if sel.Sorted {
		sort.Ints(indices)
	}
	if sel.Complement {
		indices = complement(indices, len(tokens))
	}
	return indices
}

// dedupFirstSeen keeps the first occurrence of each index, preserving order.
func dedupFirstSeen(indices []int) []int {
	seen := make(map[int]struct{}, len(indices))
	out := indices[:0]
	for _, idx := range indices {
		if _, ok := seen[idx]; ok {
			continue
		}
		seen[idx] = struct{}{}
		out = append(out, idx)
	}
	return out
}

// complement returns 0..n minus the given set, in ascending order.
func complement(indices []int, n int) []int {
	selected := make(map[int]struct{}, len(indices))
	for _, idx := range indices {
		selected[idx] = struct{}{}
	}
	var out []int
	for i := 0; i < n; i++ {
		if _, ok := selected[i]; !ok {
			out = append(out, i)
		}
	}
	return out
}
