package utils

// DistinctFilter remembers strings it has seen and rejects exact repeats.
// Comparison is case-sensitive: "me" and "Me" are different strings.
type DistinctFilter struct {
	seen map[string]struct{}
}

// NewDistinctFilter creates an empty filter.
func NewDistinctFilter() *DistinctFilter {
	return &DistinctFilter{seen: make(map[string]struct{})}
}

// ShouldInclude reports whether s is new, and records it.
func (f *DistinctFilter) ShouldInclude(s string) bool {
	if _, ok := f.seen[s]; ok {
		return false
	}
	f.seen[s] = struct{}{}
	return true
}

// Len returns how many distinct strings were recorded.
func (f *DistinctFilter) Len() int {
	return len(f.seen)
}
