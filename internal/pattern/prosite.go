package pattern

import (
	"fmt"
	"strings"

	"github.com/biopatml/biopatml-go/internal/sequence"
)

// NewProsite compiles a Prosite-style pattern into a Regex. Tokens are
// separated by '-' and classified in order:
//
//	[..]      character class, passed through unchanged
//	{..}      exclusion set over DNA symbols, emitted as [^..]
//	S(n[,m])  bounded repeat of a DNA run, parentheses emitted as braces
//	x or n    single-symbol wildcard, emitted as '.'
//	other     literal DNA run, passed through
//
// Token fragments are concatenated and handed to NewRegex, so matching
// inherits Regex semantics. A token that fails to classify aborts
// construction.
func NewProsite(tokens string) (*Regex, error) {
	var expr strings.Builder
	for _, tok := range strings.Split(tokens, "-") {
		frag, err := prositeFragment(tok)
		if err != nil {
			return nil, err
		}
		expr.WriteString(frag)
	}
	return NewRegex(expr.String())
}

func prositeFragment(tok string) (string, error) {
	switch {
	case strings.Contains(tok, "["):
		return tok, nil

	case strings.Contains(tok, "{"):
		inner := strings.NewReplacer("{", "", "}", "").Replace(tok)
		if !sequence.CheckAlphabet(sequence.DNA, inner) {
			return "", fmt.Errorf("invalid Prosite pattern: bad exclusion %q", tok)
		}
		return "[^" + inner + "]", nil

	case strings.Contains(tok, "("):
		run := tok[:strings.Index(tok, "(")]
		if !sequence.CheckAlphabet(sequence.DNA, run) {
			return "", fmt.Errorf("invalid Prosite pattern: bad repeat %q", tok)
		}
		return strings.NewReplacer("(", "{", ")", "}").Replace(tok), nil

	case strings.EqualFold(tok, "x") || strings.EqualFold(tok, "n"):
		return ".", nil

	default:
		if !sequence.CheckAlphabet(sequence.DNA, tok) {
			return "", fmt.Errorf("invalid Prosite pattern: bad token %q", tok)
		}
		return tok, nil
	}
}
