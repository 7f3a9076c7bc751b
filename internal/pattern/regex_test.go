package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegex(t *testing.T) {
	tests := []struct {
		name    string
		expr    string
		wantErr bool
	}{
		{"plain literal", "ACGT", false},
		{"character class", "AC[GT]T", false},
		{"bounded repeat", "A.T{2,3}", false},
		{"unclosed group", "AC(GT", true},
		{"dangling quantifier", "{2,3}", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewRegex(tt.expr)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expr, r.Expr)
			}
		})
	}
}

func TestRegexMatch(t *testing.T) {
	tests := []struct {
		name  string
		expr  string
		bases string
		want  bool
	}{
		{"match at start", "ACG", "ACGT", true},
		{"match mid sequence", "GTA", "ACGTACGT", true},
		{"no occurrence", "AAA", "ACGT", false},
		{"class alternatives", "AC[GT]", "ACTT", true},
		{"anchored to start", "^ACG", "TACG", false},
		{"bounded repeat", "AT{2,3}", "GGATTG", true},
		{"repeat too short", "AT{2,3}", "GGATG", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewRegex(tt.expr)
			require.NoError(t, err)
			assert.Equal(t, tt.want, r.Match(mustSeq(t, tt.bases)))
		})
	}
}

func TestRegexCaseInsensitive(t *testing.T) {
	// Expression and sequence are both lower-cased before matching.
	r, err := NewRegex("AcG[Tt]")
	require.NoError(t, err)

	assert.True(t, r.Match(mustSeq(t, "ACGT")))
	assert.True(t, r.Match(mustSeq(t, "acgt")))
}
