package pattern

import (
	"fmt"

	"github.com/biopatml/biopatml-go/internal/sequence"
)

// Gap is a bounded-length spacer between consecutive motifs in a Series or
// Repeat. Gap symbols are unconstrained; only the length matters. A Gap is
// not a Pattern and cannot be matched standalone.
type Gap struct {
	Min int
	Max int
}

// NewGap creates a gap with inclusive length bounds 0 <= min <= max.
func NewGap(min, max int) (Gap, error) {
	if err := checkBounds(min, max); err != nil {
		return Gap{}, fmt.Errorf("gap: %w", err)
	}
	return Gap{Min: min, Max: max}, nil
}

// Any is an unconstrained region of bounded length. As a Pattern it
// collapses to a length test; Windows enumerates the concrete spans.
type Any struct {
	Min int
	Max int
}

// NewAny creates an unconstrained region with inclusive length bounds
// 0 <= min <= max.
func NewAny(min, max int) (*Any, error) {
	if err := checkBounds(min, max); err != nil {
		return nil, fmt.Errorf("any: %w", err)
	}
	return &Any{Min: min, Max: max}, nil
}

// Match reports whether s admits at least one window, which holds exactly
// when s carries at least Min symbols.
func (a *Any) Match(s *sequence.Sequence) bool {
	return s.Len() >= a.Min
}

// Window is a half-open [Start, End) span of a sequence.
type Window struct {
	Start int
	End   int
}

// Windows enumerates every contiguous span of s whose length lies within
// [Min, Max], ordered by ascending start and, within a start, ascending
// length. Match(s) is true exactly when the enumeration is non-empty.
func (a *Any) Windows(s *sequence.Sequence) []Window {
	var windows []Window
	for start := 0; start+a.Min <= s.Len(); start++ {
		for length := a.Min; length <= a.Max; length++ {
			if start+length > s.Len() {
				break
			}
			windows = append(windows, Window{Start: start, End: start + length})
		}
	}
	return windows
}

func checkBounds(min, max int) error {
	if min < 0 {
		return fmt.Errorf("minimum length %d cannot be negative", min)
	}
	if max < min {
		return fmt.Errorf("maximum length %d cannot be less than minimum %d", max, min)
	}
	return nil
}
