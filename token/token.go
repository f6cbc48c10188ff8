// Package token parses and formats the curly-brace tokens embedded in
// challenge free text.
//
// Four forms are recognised:
//
//	{name}          power (plain tag)
//	{!name}         weakness
//	{name-<digits>} status, digits may be empty
//	{name:<digits>} limit, digits may be empty
//
// Names are whitespace-normalized. Classification never fails loudly: text
// that does not parse is reported with ok == false so callers can keep it as
// literal content.
package token

import (
	"strings"
)

// Kind classifies a token.
type Kind uint8

const (
	// KindPower is a plain descriptive tag.
	KindPower Kind = iota
	// KindWeakness is a named vulnerability marker.
	KindWeakness
	// KindStatus is a named effect with an optional numeric tier.
	KindStatus
	// KindLimit is a named threshold with an optional numeric level.
	KindLimit
)

var kindNames = [...]string{
	KindPower:    "power",
	KindWeakness: "weakness",
	KindStatus:   "status",
	KindLimit:    "limit",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// ParseKind returns the kind with the given name.
func ParseKind(name string) (Kind, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "power", "tag":
		return KindPower, true
	case "weakness":
		return KindWeakness, true
	case "status":
		return KindStatus, true
	case "limit":
		return KindLimit, true
	}
	return 0, false
}

// Token is a classified token. Value is only meaningful for statuses and
// limits and holds ASCII digits or nothing.
type Token struct {
	Kind  Kind
	Name  string
	Value string
}

// HasValue reports whether the kind carries a value slot.
func (t Token) HasValue() bool {
	return t.Kind == KindStatus || t.Kind == KindLimit
}

// String returns the canonical text form of the token.
func (t Token) String() string {
	switch t.Kind {
	case KindWeakness:
		return FormatWeakness(t.Name)
	case KindStatus:
		return FormatStatus(t.Name, t.Value)
	case KindLimit:
		return FormatLimit(t.Name, t.Value)
	default:
		return FormatPower(t.Name)
	}
}

// Parse classifies raw, which may or may not be wrapped in one pair of braces.
func Parse(raw string) (Token, bool) {
	inner, ok := stripOuterBraces(raw)
	if !ok {
		return Token{}, false
	}
	return classify(inner)
}

func stripOuterBraces(raw string) (string, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", false
	}
	if len(s) > 2 && s[0] == '{' && s[len(s)-1] == '}' {
		return s[1 : len(s)-1], true
	}
	return s, true
}

// NormalizeWhitespace collapses runs of whitespace to a single space and
// trims both ends.
func NormalizeWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// FormatPower returns {name}.
func FormatPower(name string) string {
	return "{" + NormalizeWhitespace(name) + "}"
}

// FormatWeakness returns {!name}.
func FormatWeakness(name string) string {
	return "{!" + NormalizeWhitespace(name) + "}"
}

// FormatStatus returns {name-value}. An empty value yields {name-}.
func FormatStatus(name, value string) string {
	return "{" + NormalizeWhitespace(name) + "-" + value + "}"
}

// FormatLimit returns {name:value}. An empty value yields {name:}.
func FormatLimit(name, value string) string {
	return "{" + NormalizeWhitespace(name) + ":" + value + "}"
}

// Format returns the canonical text for the given kind.
func Format(kind Kind, name, value string) string {
	return Token{Kind: kind, Name: name, Value: value}.String()
}

// EnsureFormatted returns raw in canonical form. Input that parses keeps its
// parsed kind, which may differ from fallback when the text happens to look
// like a status, limit or weakness. Input that does not parse is formatted as
// fallback, with value used for statuses and limits.
func EnsureFormatted(raw string, fallback Kind, value string) string {
	if tok, ok := Parse(raw); ok {
		return tok.String()
	}
	return Format(fallback, raw, value)
}
