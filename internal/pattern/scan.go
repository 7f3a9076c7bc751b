package pattern

import (
	"github.com/biopatml/biopatml-go/internal/sequence"
)

// Locate slides p across s and returns the smallest offset at which p
// matches the remaining suffix, with ok reporting whether any offset did.
// A nil pattern is a caller error and panics.
func Locate(s *sequence.Sequence, p Pattern) (pos int, ok bool) {
	if p == nil {
		panic("pattern: supplied pattern is invalid")
	}
	for i := 0; i < s.Len(); i++ {
		if p.Match(s.Suffix(i)) {
			return i, true
		}
	}
	return -1, false
}

// Exists reports whether p matches at any offset of s.
func Exists(s *sequence.Sequence, p Pattern) bool {
	_, ok := Locate(s, p)
	return ok
}

// LocateAll returns every offset at which p matches the remaining suffix,
// in ascending order. A nil pattern panics as in Locate.
func LocateAll(s *sequence.Sequence, p Pattern) []int {
	if p == nil {
		panic("pattern: supplied pattern is invalid")
	}
	var offsets []int
	for i := 0; i < s.Len(); i++ {
		if p.Match(s.Suffix(i)) {
			offsets = append(offsets, i)
		}
	}
	return offsets
}
