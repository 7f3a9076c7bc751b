package pattern

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/biopatml/biopatml-go/internal/sequence"
)

// Regex is a leaf pattern that delegates to Go's regular expression engine.
// The expression and the scanned sequence are both lower-cased, so matching
// is case-insensitive, and a match anywhere in the sequence counts.
type Regex struct {
	Expr string
	re   *regexp.Regexp
}

// NewRegex compiles expr at construction time so that a malformed
// expression fails up front rather than on first match.
func NewRegex(expr string) (*Regex, error) {
	re, err := regexp.Compile(strings.ToLower(expr))
	if err != nil {
		return nil, fmt.Errorf("regex pattern %q: %w", expr, err)
	}
	return &Regex{Expr: expr, re: re}, nil
}

// Match reports whether the expression matches anywhere in s.
func (r *Regex) Match(s *sequence.Sequence) bool {
	return r.re.MatchString(strings.ToLower(s.Bases))
}
