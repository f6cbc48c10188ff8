package token

import (
	"log/slog"

	"golang.org/x/text/cases"
)

// Comparison is the outcome of comparing two raw tokens.
type Comparison struct {
	Equal bool
	// Literal is set when at least one side did not parse and the result
	// comes from comparing the raw text.
	Literal bool
}

// Compare compares two raw tokens by meaning: same kind, case-insensitively
// equal names and, for statuses and limits, identical value strings ("" and
// "0" differ). When either side fails to parse the raw strings are compared
// case-insensitively after whitespace normalization and Literal is set.
func Compare(a, b string) Comparison {
	ta, okA := Parse(a)
	tb, okB := Parse(b)
	if !okA || !okB {
		return Comparison{
			Equal:   fold(NormalizeWhitespace(a)) == fold(NormalizeWhitespace(b)),
			Literal: true,
		}
	}
	return Comparison{Equal: Same(ta, tb)}
}

// Equal reports whether a and b denote the same token. Comparisons that fall
// back to literal text are logged at debug level.
func Equal(a, b string) bool {
	c := Compare(a, b)
	if c.Literal {
		slog.Debug("token comparison fell back to literal text", "a", a, "b", b, "equal", c.Equal)
	}
	return c.Equal
}

// Same reports whether two parsed tokens are equal by meaning.
func Same(a, b Token) bool {
	if a.Kind != b.Kind {
		return false
	}
	if fold(NormalizeWhitespace(a.Name)) != fold(NormalizeWhitespace(b.Name)) {
		return false
	}
	if a.HasValue() {
		return a.Value == b.Value
	}
	return true
}

func fold(s string) string {
	return cases.Fold().String(s)
}
