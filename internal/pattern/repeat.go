package pattern

import (
	"fmt"

	"github.com/biopatml/biopatml-go/internal/sequence"
)

// Repeat is a single motif repeated a fixed number of times with the same
// gap bounds between occurrences. Construction expands the repeat into the
// alternating motif and gap components consumed by the series matcher, so a
// repeat of count n carries n motif clones and n-1 gaps.
type Repeat struct {
	Motifs []*Motif
	Gaps   []Gap
	Count  int
}

// NewRepeat expands motif repeated count times (count >= 1), separated by
// gap. The motif is cloned per occurrence so the repeat owns its components
// outright.
func NewRepeat(motif *Motif, gap Gap, count int) (*Repeat, error) {
	if motif == nil {
		return nil, fmt.Errorf("repeat motif is nil")
	}
	if count < 1 {
		return nil, fmt.Errorf("repeat count %d must be at least 1", count)
	}
	if err := checkBounds(gap.Min, gap.Max); err != nil {
		return nil, fmt.Errorf("repeat gap: %w", err)
	}

	r := &Repeat{
		Motifs: make([]*Motif, count),
		Gaps:   make([]Gap, count-1),
		Count:  count,
	}
	for i := range r.Motifs {
		clone := *motif
		r.Motifs[i] = &clone
	}
	for i := range r.Gaps {
		r.Gaps[i] = gap
	}
	return r, nil
}

// Match reports whether count occurrences of the motif, each separated by
// an admissible gap, appear in order from the first symbol of s.
func (r *Repeat) Match(s *sequence.Sequence) bool {
	return matchComponents(r.Motifs, r.Gaps, s.Bases)
}
