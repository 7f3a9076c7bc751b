// Package pattern implements a declarative pattern language over symbolic
// biological sequences. Leaf patterns describe concrete runs of symbols
// (Motif), unconstrained regions of bounded length (Any) and regular
// expressions (Regex, optionally compiled from Prosite-style notation).
// Composite patterns arrange motifs into gapped series (Series), fixed
// repetitions (Repeat) and first-match alternations (Set).
//
// Patterns are validated once at construction and never mutated by
// matching; Match is a pure function of the pattern and the sequence.
// The scan primitives Locate, LocateAll and Exists slide a pattern across
// a sequence and report the offsets where it holds.
package pattern

import (
	"github.com/biopatml/biopatml-go/internal/sequence"
)

// Pattern is a matchable pattern: Motif, Regex, Any, Series, Repeat or Set.
// Gap is deliberately not a Pattern; it is a spacer consumed by Series and
// Repeat and cannot be matched on its own.
type Pattern interface {
	// Match reports whether the pattern matches s. Leaf and composite
	// patterns anchor at the first symbol of s (Regex is the exception
	// and matches anywhere), so callers scan by re-matching on suffixes.
	Match(s *sequence.Sequence) bool
}
