package sequence

import "fmt"

// SequenceError is the base error type for sequence and literal validation.
type SequenceError interface {
	error
	IsSequenceError()
}

// EmptySequenceError is returned when a sequence has no symbols.
type EmptySequenceError struct{}

func (e *EmptySequenceError) Error() string {
	return "sequence must have at least one symbol"
}

func (e *EmptySequenceError) IsSequenceError() {}

// InvalidSymbolError is returned when a symbol is not a wildcard and not a
// member of the alphabet it was validated against.
type InvalidSymbolError struct {
	Alpha    Alphabet
	Position int
	Found    byte
}

func (e *InvalidSymbolError) Error() string {
	return fmt.Sprintf("invalid %s symbol %q at position %d", e.Alpha, e.Found, e.Position)
}

func (e *InvalidSymbolError) IsSequenceError() {}

// ValidateSymbols checks every symbol against alphabet a and reports the
// first offender with its position. Wildcard symbols always pass.
func ValidateSymbols(a Alphabet, symbols string) error {
	for i := 0; i < len(symbols); i++ {
		if !IsValid(a, symbols[i]) {
			return &InvalidSymbolError{Alpha: a, Position: i, Found: symbols[i]}
		}
	}
	return nil
}
