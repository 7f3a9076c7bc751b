// Package sequence provides alphabet-validated symbolic sequences: the
// read-only collaborator the pattern engine matches against.
//
// A sequence is an ordered run of symbols drawn from one of three alphabets
// (DNA, RNA, Protein). Symbols are validated once, at construction; matching
// code never re-validates. Wildcard symbols ('x'/'n', either case) are valid
// members of every alphabet.
package sequence

import (
	"fmt"
	"strings"
)

// Sequence is a validated run of symbols tagged with the alphabet it was
// validated against. Bases are normalized to upper case at construction and
// are read-only to the pattern engine.
type Sequence struct {
	Bases       string
	ID          string
	Description string
	Alpha       Alphabet
}

// New creates a DNA sequence with validation.
func New(bases string) (*Sequence, error) {
	return NewWithAlphabet(bases, DNA)
}

// NewWithAlphabet creates a sequence from a symbol run and an alphabet tag.
func NewWithAlphabet(bases string, a Alphabet) (*Sequence, error) {
	normalized := strings.ToUpper(bases)

	if len(normalized) == 0 {
		return nil, &EmptySequenceError{}
	}

	if err := ValidateSymbols(a, normalized); err != nil {
		return nil, err
	}

	return &Sequence{
		Bases: normalized,
		Alpha: a,
	}, nil
}

// WithID creates a DNA sequence with an identifier.
func WithID(bases, id string) (*Sequence, error) {
	if len(id) == 0 {
		return nil, fmt.Errorf("ID cannot be empty")
	}

	seq, err := New(bases)
	if err != nil {
		return nil, err
	}

	seq.ID = id
	return seq, nil
}

// WithMetadata creates a sequence with full metadata.
func WithMetadata(bases, id, description string, a Alphabet) (*Sequence, error) {
	seq, err := NewWithAlphabet(bases, a)
	if err != nil {
		return nil, err
	}

	seq.ID = id
	seq.Description = description
	return seq, nil
}

// Len returns the number of symbols in the sequence.
func (s *Sequence) Len() int {
	return len(s.Bases)
}

// String returns the stringified view of the symbols.
func (s *Sequence) String() string {
	return s.Bases
}

// BaseAt returns the symbol at a specific index, or false if out of bounds.
func (s *Sequence) BaseAt(index int) (byte, bool) {
	if index < 0 || index >= len(s.Bases) {
		return 0, false
	}
	return s.Bases[index], true
}

// Subsequence returns the half-open span [start, end) as a new sequence
// carrying the receiver's metadata. The underlying symbols are shared, not
// copied.
func (s *Sequence) Subsequence(start, end int) (*Sequence, error) {
	if start < 0 {
		return nil, fmt.Errorf("start index must be non-negative")
	}
	if end <= start {
		return nil, fmt.Errorf("end must be greater than start")
	}
	if end > len(s.Bases) {
		return nil, fmt.Errorf("end must not exceed sequence length")
	}

	return &Sequence{
		Bases:       s.Bases[start:end],
		ID:          s.ID,
		Description: s.Description,
		Alpha:       s.Alpha,
	}, nil
}

// Suffix returns the sequence starting at start. It is the scanning window
// primitive: start must lie in [0, Len).
func (s *Sequence) Suffix(start int) *Sequence {
	return &Sequence{
		Bases:       s.Bases[start:],
		ID:          s.ID,
		Description: s.Description,
		Alpha:       s.Alpha,
	}
}

// Complement tables for the nucleotide alphabets, covering the IUPAC
// ambiguity codes. Wildcards complement to themselves.
var dnaComplement = map[byte]byte{
	'A': 'T', 'C': 'G', 'G': 'C', 'T': 'A',
	'R': 'Y', 'Y': 'R', 'S': 'S', 'W': 'W',
	'K': 'M', 'M': 'K', 'B': 'V', 'D': 'H',
	'H': 'D', 'V': 'B', 'N': 'N', 'X': 'X',
}

var rnaComplement = map[byte]byte{
	'A': 'U', 'C': 'G', 'G': 'C', 'U': 'A',
	'R': 'Y', 'Y': 'R', 'S': 'S', 'W': 'W',
	'K': 'M', 'M': 'K', 'B': 'V', 'D': 'H',
	'H': 'D', 'V': 'B', 'N': 'N', 'X': 'X',
}

// Complement returns the complement of a nucleotide sequence.
func (s *Sequence) Complement() (*Sequence, error) {
	var table map[byte]byte
	switch s.Alpha {
	case DNA:
		table = dnaComplement
	case RNA:
		table = rnaComplement
	default:
		return nil, fmt.Errorf("complement only available for nucleotide sequences")
	}

	comp := make([]byte, len(s.Bases))
	for i := 0; i < len(s.Bases); i++ {
		if c, ok := table[s.Bases[i]]; ok {
			comp[i] = c
		} else {
			comp[i] = s.Bases[i]
		}
	}

	return &Sequence{
		Bases:       string(comp),
		ID:          s.ID,
		Description: s.Description,
		Alpha:       s.Alpha,
	}, nil
}

// Reverse returns the sequence read back to front.
func (s *Sequence) Reverse() *Sequence {
	rev := make([]byte, len(s.Bases))
	for i := 0; i < len(s.Bases); i++ {
		rev[i] = s.Bases[len(s.Bases)-1-i]
	}

	return &Sequence{
		Bases:       string(rev),
		ID:          s.ID,
		Description: s.Description,
		Alpha:       s.Alpha,
	}
}

// ReverseComplement returns the reverse complement of a nucleotide sequence.
// Scanning it locates minus-strand occurrences of a pattern.
func (s *Sequence) ReverseComplement() (*Sequence, error) {
	comp, err := s.Complement()
	if err != nil {
		return nil, err
	}
	return comp.Reverse(), nil
}

// Transcribe converts a DNA sequence to RNA, replacing T with U.
func (s *Sequence) Transcribe() (*Sequence, error) {
	if s.Alpha != DNA {
		return nil, fmt.Errorf("can only transcribe DNA")
	}

	return &Sequence{
		Bases:       strings.ReplaceAll(s.Bases, "T", "U"),
		ID:          s.ID,
		Description: s.Description,
		Alpha:       RNA,
	}, nil
}

// HasWildcard reports whether the sequence contains a wildcard symbol.
func (s *Sequence) HasWildcard() bool {
	return strings.ContainsAny(s.Bases, "NX")
}

// CountWildcards counts the wildcard symbols in the sequence.
func (s *Sequence) CountWildcards() int {
	count := 0
	for i := 0; i < len(s.Bases); i++ {
		if IsWildcard(s.Bases[i]) {
			count++
		}
	}
	return count
}

// IsValid re-checks every symbol against the sequence's alphabet.
func (s *Sequence) IsValid() bool {
	return CheckAlphabet(s.Alpha, s.Bases)
}

// Equal reports whether two sequences carry the same symbols and alphabet.
func (s *Sequence) Equal(other *Sequence) bool {
	if other == nil {
		return false
	}
	return s.Bases == other.Bases && s.Alpha == other.Alpha
}
