package sequence

// Alphabet identifies the symbol set a sequence or pattern literal is drawn
// from. It is chosen once, at construction time.
type Alphabet int

const (
	// DNA covers the four deoxyribonucleotides plus the IUPAC ambiguity codes.
	DNA Alphabet = iota
	// RNA covers the four ribonucleotides plus the IUPAC ambiguity codes.
	RNA
	// Protein covers the twenty standard amino acids.
	Protein
)

func (a Alphabet) String() string {
	switch a {
	case DNA:
		return "DNA"
	case RNA:
		return "RNA"
	case Protein:
		return "Protein"
	default:
		return "Unknown"
	}
}

// Valid symbols per alphabet. The nucleotide tables include the IUPAC
// ambiguity codes; wildcards are admitted by IsValid regardless of alphabet,
// so N and X need not appear here.
var (
	validDNASymbols     = symbolSet("ACGTRYSWKMBDHV")
	validRNASymbols     = symbolSet("ACGURYSWKMBDHV")
	validProteinSymbols = symbolSet("ACDEFGHIKLMNPQRSTVWY")
)

func symbolSet(symbols string) map[byte]bool {
	set := make(map[byte]bool, len(symbols))
	for i := 0; i < len(symbols); i++ {
		set[symbols[i]] = true
	}
	return set
}

func (a Alphabet) symbols() map[byte]bool {
	switch a {
	case RNA:
		return validRNASymbols
	case Protein:
		return validProteinSymbols
	default:
		return validDNASymbols
	}
}

// IsWildcard reports whether sym is a wildcard symbol. Wildcards ('x' and
// 'n', either case) are valid members of every alphabet and, inside a motif
// literal, match any sequence symbol.
func IsWildcard(sym byte) bool {
	switch sym {
	case 'x', 'X', 'n', 'N':
		return true
	}
	return false
}

// IsValid reports whether sym is a wildcard or a member of alphabet a.
// Comparison is case-insensitive.
func IsValid(a Alphabet, sym byte) bool {
	if IsWildcard(sym) {
		return true
	}
	return a.symbols()[upper(sym)]
}

// CheckAlphabet reports whether every symbol passes IsValid for a. Pattern
// constructors use it to reject malformed literals; matching never
// re-validates.
func CheckAlphabet(a Alphabet, symbols string) bool {
	for i := 0; i < len(symbols); i++ {
		if !IsValid(a, symbols[i]) {
			return false
		}
	}
	return true
}

func upper(b byte) byte {
	if b >= 'a' && b <= 'z' {
		b -= 'a' - 'A'
	}
	return b
}
