package pattern

import (
	"fmt"

	"github.com/biopatml/biopatml-go/internal/sequence"
)

// Series is an ordered run of motifs separated by bounded gaps. The first
// motif must match at the start of the sequence; each following motif must
// match after a spacer whose length falls within the preceding gap's bounds.
type Series struct {
	Motifs []*Motif
	Gaps   []Gap
}

// NewSeries creates a series from motifs interleaved with gaps. At least
// one motif is required, with exactly one gap between each adjacent pair;
// both slices are copied.
func NewSeries(motifs []*Motif, gaps []Gap) (*Series, error) {
	if len(motifs) == 0 {
		return nil, fmt.Errorf("series requires at least one motif")
	}
	if len(gaps) != len(motifs)-1 {
		return nil, fmt.Errorf("series with %d motifs requires %d gaps, got %d",
			len(motifs), len(motifs)-1, len(gaps))
	}
	for i, m := range motifs {
		if m == nil {
			return nil, fmt.Errorf("series motif %d is nil", i)
		}
	}
	for i, g := range gaps {
		if err := checkBounds(g.Min, g.Max); err != nil {
			return nil, fmt.Errorf("series gap %d: %w", i, err)
		}
	}

	s := &Series{
		Motifs: make([]*Motif, len(motifs)),
		Gaps:   make([]Gap, len(gaps)),
	}
	copy(s.Motifs, motifs)
	copy(s.Gaps, gaps)
	return s, nil
}

// Match reports whether the series matches starting at the first symbol
// of s, for some admissible choice of gap lengths.
func (sr *Series) Match(s *sequence.Sequence) bool {
	return matchComponents(sr.Motifs, sr.Gaps, s.Bases)
}

// matchComponents is the gap-backtracking matcher shared by Series and
// Repeat. Motif index and sequence offset fully determine the outcome of a
// subproblem, so results are memoized to keep backtracking over wide gap
// ranges from revisiting the same suffix.
func matchComponents(motifs []*Motif, gaps []Gap, bases string) bool {
	type state struct {
		index  int
		offset int
	}
	memo := make(map[state]bool)

	var match func(index, offset int) bool
	match = func(index, offset int) bool {
		key := state{index, offset}
		if hit, ok := memo[key]; ok {
			return hit
		}

		m := motifs[index]
		ok := m.matchBases(bases[offset:], m.Threshold)
		if ok && index < len(motifs)-1 {
			ok = false
			for g := gaps[index].Min; g <= gaps[index].Max; g++ {
				next := offset + len(m.Literal) + g
				// The next motif needs a non-empty remainder.
				if next >= len(bases) {
					break
				}
				if match(index+1, next) {
					ok = true
					break
				}
			}
		}

		memo[key] = ok
		return ok
	}

	return match(0, 0)
}
