package sequence

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlphabetString(t *testing.T) {
	assert.Equal(t, "DNA", DNA.String())
	assert.Equal(t, "RNA", RNA.String())
	assert.Equal(t, "Protein", Protein.String())
	assert.Equal(t, "Unknown", Alphabet(99).String())
}

func TestIsWildcard(t *testing.T) {
	for _, sym := range []byte{'x', 'X', 'n', 'N'} {
		assert.True(t, IsWildcard(sym), "symbol %q", sym)
	}
	for _, sym := range []byte{'a', 'A', 'u', '-', '1'} {
		assert.False(t, IsWildcard(sym), "symbol %q", sym)
	}
}

func TestIsValid(t *testing.T) {
	tests := []struct {
		name  string
		alpha Alphabet
		sym   byte
		want  bool
	}{
		{"DNA core symbol", DNA, 'A', true},
		{"DNA lowercase", DNA, 't', true},
		{"DNA ambiguity code", DNA, 'R', true},
		{"DNA rejects U", DNA, 'U', false},
		{"DNA wildcard n", DNA, 'n', true},
		{"DNA wildcard X", DNA, 'X', true},
		{"RNA accepts U", RNA, 'U', true},
		{"RNA rejects T", RNA, 'T', false},
		{"protein residue", Protein, 'W', true},
		{"protein rejects O", Protein, 'O', false},
		{"protein wildcard", Protein, 'x', true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValid(tt.alpha, tt.sym))
		})
	}
}

func TestCheckAlphabet(t *testing.T) {
	tests := []struct {
		name    string
		alpha   Alphabet
		symbols string
		want    bool
	}{
		{"plain DNA", DNA, "ACGT", true},
		{"DNA with wildcards", DNA, "ACxNGT", true},
		{"DNA with invalid digit", DNA, "AC1T", false},
		{"empty run is vacuously valid", DNA, "", true},
		{"RNA run", RNA, "acguacgu", true},
		{"protein run", Protein, "MKVLITGATGFIG", true},
		{"protein with gap char", Protein, "MKV-L", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CheckAlphabet(tt.alpha, tt.symbols))
		})
	}
}

func TestValidateSymbols(t *testing.T) {
	t.Run("reports first offender with position", func(t *testing.T) {
		err := ValidateSymbols(DNA, "ACG7T")
		require.Error(t, err)

		symErr, ok := err.(*InvalidSymbolError)
		require.True(t, ok)
		assert.Equal(t, 3, symErr.Position)
		assert.Equal(t, byte('7'), symErr.Found)
		assert.Equal(t, DNA, symErr.Alpha)
	})

	t.Run("clean run", func(t *testing.T) {
		assert.NoError(t, ValidateSymbols(Protein, "MKXVN"))
	})
}
