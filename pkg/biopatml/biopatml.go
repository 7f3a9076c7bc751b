// Package biopatml provides a high-level API for pattern matching over
// biological sequences.
//
// This package exposes the core BioPatML functionality through a simple,
// easy-to-use API: sequences over DNA, RNA and protein alphabets, leaf and
// composite patterns, and scan primitives that locate pattern matches.
//
// Example usage:
//
//	seq, err := biopatml.NewSequence("ACGTACGT")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	motif, err := biopatml.NewMotif(biopatml.DNA, "ACGT", 1.0)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if pos, ok := biopatml.Locate(seq, motif); ok {
//	    fmt.Printf("match at offset %d\n", pos)
//	}
package biopatml

import (
	"fmt"

	"github.com/biopatml/biopatml-go/internal/pattern"
	"github.com/biopatml/biopatml-go/internal/sequence"
)

// Re-export types for convenience
type (
	Sequence = sequence.Sequence
	Alphabet = sequence.Alphabet
	Pattern  = pattern.Pattern
	Motif    = pattern.Motif
	Regex    = pattern.Regex
	Any      = pattern.Any
	Window   = pattern.Window
	Gap      = pattern.Gap
	Series   = pattern.Series
	Repeat   = pattern.Repeat
	Set      = pattern.Set
)

// Constants
const (
	DNA     = sequence.DNA
	RNA     = sequence.RNA
	Protein = sequence.Protein
)

// NewSequence creates a new DNA sequence.
func NewSequence(bases string) (*Sequence, error) {
	return sequence.New(bases)
}

// NewSequenceWithAlphabet creates a new sequence over the given alphabet.
func NewSequenceWithAlphabet(bases string, a Alphabet) (*Sequence, error) {
	return sequence.NewWithAlphabet(bases, a)
}

// NewSequenceWithID creates a new DNA sequence with an identifier.
func NewSequenceWithID(bases, id string) (*Sequence, error) {
	return sequence.WithID(bases, id)
}

// NewRNASequence creates a new RNA sequence.
func NewRNASequence(bases string) (*Sequence, error) {
	return sequence.NewWithAlphabet(bases, sequence.RNA)
}

// NewProteinSequence creates a new protein sequence.
func NewProteinSequence(bases string) (*Sequence, error) {
	return sequence.NewWithAlphabet(bases, sequence.Protein)
}

// NewMotif creates a literal motif pattern with a similarity threshold.
func NewMotif(a Alphabet, literal string, threshold float64) (*Motif, error) {
	return pattern.NewMotif(a, literal, threshold)
}

// NewAny creates an unconstrained region pattern with length bounds.
func NewAny(min, max int) (*Any, error) {
	return pattern.NewAny(min, max)
}

// NewGap creates a bounded spacer for use in series and repeats.
func NewGap(min, max int) (Gap, error) {
	return pattern.NewGap(min, max)
}

// NewRegex creates a regular expression pattern.
func NewRegex(expr string) (*Regex, error) {
	return pattern.NewRegex(expr)
}

// NewProsite compiles a Prosite-style pattern into a regular expression
// pattern.
func NewProsite(tokens string) (*Regex, error) {
	return pattern.NewProsite(tokens)
}

// NewSeries creates an ordered series of motifs separated by gaps.
func NewSeries(motifs []*Motif, gaps []Gap) (*Series, error) {
	return pattern.NewSeries(motifs, gaps)
}

// NewRepeat creates a motif repeated count times with a uniform gap.
func NewRepeat(motif *Motif, gap Gap, count int) (*Repeat, error) {
	return pattern.NewRepeat(motif, gap, count)
}

// NewSet creates a first-match-wins alternation over patterns.
func NewSet(threshold float64, patterns ...Pattern) (*Set, error) {
	return pattern.NewSet(threshold, patterns...)
}

// Locate returns the first offset at which p matches seq.
func Locate(seq *Sequence, p Pattern) (int, bool) {
	return pattern.Locate(seq, p)
}

// LocateAll returns every offset at which p matches seq, ascending.
func LocateAll(seq *Sequence, p Pattern) []int {
	return pattern.LocateAll(seq, p)
}

// Exists reports whether p matches anywhere in seq.
func Exists(seq *Sequence, p Pattern) bool {
	return pattern.Exists(seq, p)
}

// Version returns the BioPatML version.
func Version() string {
	return "1.0.0"
}

// Info returns information about BioPatML.
func Info() string {
	return fmt.Sprintf(`BioPatML v%s - Biological Sequence Pattern Matching Library

A Go implementation of the BioPatML pattern language.

Features:
  - DNA/RNA/protein sequence handling with validation
  - Motif matching with wildcards and similarity thresholds
  - Unconstrained regions with length bounds
  - Regular expression and Prosite-style patterns
  - Gapped series, fixed repeats and pattern alternations
  - Sequence scanning with first, all and existence queries
  - Complement, reverse complement and transcription helpers

For more information, see: https://github.com/biopatml/biopatml-go
`, Version())
}
