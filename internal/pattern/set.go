package pattern

import (
	"fmt"

	"github.com/biopatml/biopatml-go/internal/sequence"
)

// Set is a first-match-wins alternation over sub-patterns. Members are
// tried in declaration order against the full input. Motif members are
// evaluated under the set's threshold instead of their own; the threshold
// is passed per call and the stored motif is never modified.
type Set struct {
	Patterns  []Pattern
	Threshold float64
}

// NewSet creates an alternation with the given motif threshold in [0, 1].
// At least one pattern is required and none may be nil; the pattern slice
// is copied.
func NewSet(threshold float64, patterns ...Pattern) (*Set, error) {
	if len(patterns) == 0 {
		return nil, fmt.Errorf("set requires at least one pattern")
	}
	if threshold < 0 || threshold > 1 {
		return nil, fmt.Errorf("set threshold %v must be within [0, 1]", threshold)
	}
	for i, p := range patterns {
		if p == nil {
			return nil, fmt.Errorf("set pattern %d is nil", i)
		}
	}

	set := &Set{
		Patterns:  make([]Pattern, len(patterns)),
		Threshold: threshold,
	}
	copy(set.Patterns, patterns)
	return set, nil
}

// Match reports whether any member matches s, stopping at the first that
// does. Non-motif members match under their own semantics.
func (st *Set) Match(s *sequence.Sequence) bool {
	for _, p := range st.Patterns {
		if m, ok := p.(*Motif); ok {
			if m.MatchWithThreshold(s, st.Threshold) {
				return true
			}
			continue
		}
		if p.Match(s) {
			return true
		}
	}
	return false
}
