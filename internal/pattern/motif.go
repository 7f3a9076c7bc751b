package pattern

import (
	"fmt"
	"strings"

	"github.com/biopatml/biopatml-go/internal/sequence"
)

// Motif is a literal run of symbols matched against the start of a sequence
// with wildcard tolerance and a fractional similarity threshold. Wildcards
// in the literal match any sequence symbol; wildcards in the sequence carry
// no special meaning. Comparison is case-insensitive.
type Motif struct {
	Literal   string
	Threshold float64
	Alpha     sequence.Alphabet
}

// NewMotif creates a motif over alphabet a. The literal must be a non-empty
// run of symbols valid for a (wildcards included), and threshold is the
// minimum fraction of literal positions that must match, in [0, 1]. A
// threshold of 1.0 demands a perfect wildcard-aware match.
func NewMotif(a sequence.Alphabet, literal string, threshold float64) (*Motif, error) {
	if len(literal) == 0 {
		return nil, fmt.Errorf("motif literal cannot be empty")
	}
	if !sequence.CheckAlphabet(a, literal) {
		return nil, fmt.Errorf("motif literal %q is not a valid %s pattern", literal, a)
	}
	if threshold < 0 || threshold > 1 {
		return nil, fmt.Errorf("motif threshold %v must be within [0, 1]", threshold)
	}

	return &Motif{
		Literal:   strings.ToUpper(literal),
		Threshold: threshold,
		Alpha:     a,
	}, nil
}

// Match reports whether the motif matches the leading symbols of s under
// the motif's own threshold. The literal is consumed from the left; a fully
// consumed literal counts as a complete match even when s continues.
func (m *Motif) Match(s *sequence.Sequence) bool {
	return m.MatchWithThreshold(s, m.Threshold)
}

// MatchWithThreshold matches under an effective threshold instead of the
// stored one. The motif itself is left untouched; Set alternation uses this
// to impose its threshold on motif members.
func (m *Motif) MatchWithThreshold(s *sequence.Sequence, threshold float64) bool {
	return m.matchBases(s.Bases, threshold)
}

// Score returns the fraction of literal positions matched by the leading
// symbols of s, in [0, 1].
func (m *Motif) Score(s *sequence.Sequence) float64 {
	return m.scoreBases(s.Bases)
}

func (m *Motif) matchBases(bases string, threshold float64) bool {
	// Fast path for a perfect match over equal lengths.
	if threshold == 1.0 && len(bases) == len(m.Literal) {
		for i := 0; i < len(m.Literal); i++ {
			if !symbolMatches(m.Literal[i], bases[i]) {
				return false
			}
		}
		return true
	}
	return m.scoreBases(bases) >= threshold
}

// scoreBases walks the literal and the sequence in lock step and stops at
// the first mismatch or when either side runs out. Matched positions are
// counted against the literal length, so a fully consumed literal scores
// 1.0 regardless of how much sequence remains.
func (m *Motif) scoreBases(bases string) float64 {
	limit := len(m.Literal)
	if len(bases) < limit {
		limit = len(bases)
	}

	matched := 0
	for i := 0; i < limit; i++ {
		if !symbolMatches(m.Literal[i], bases[i]) {
			break
		}
		matched++
	}
	return float64(matched) / float64(len(m.Literal))
}

// symbolMatches reports whether a literal symbol accepts a sequence symbol.
// A wildcard literal accepts anything; otherwise the symbols must be equal
// up to case.
func symbolMatches(lit, sym byte) bool {
	if sequence.IsWildcard(lit) {
		return true
	}
	if sym >= 'a' && sym <= 'z' {
		sym -= 'a' - 'A'
	}
	return lit == sym
}
