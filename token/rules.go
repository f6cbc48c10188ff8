package token

import "strings"

// rule inspects the inner content of a token. matched reports whether the
// rule applies; when it does, ok reports whether it produced a valid token.
// A matched rule ends classification even when ok is false.
type rule func(inner string) (tok Token, matched, ok bool)

// lineBreaks end a line for the separator rules.
const lineBreaks = "\n\r\u2028\u2029"

// rules are tried in order and the first matching rule wins.
var rules = []rule{
	weaknessRule,
	separatorRule(KindStatus, '-'),
	separatorRule(KindLimit, ':'),
	powerRule,
}

func classify(inner string) (Token, bool) {
	if strings.ContainsAny(inner, "{}") {
		return Token{}, false
	}
	for _, r := range rules {
		tok, matched, ok := r(inner)
		if matched {
			return tok, ok
		}
	}
	return Token{}, false
}

func weaknessRule(inner string) (Token, bool, bool) {
	if !strings.HasPrefix(inner, "!") {
		return Token{}, false, false
	}
	name := NormalizeWhitespace(inner[1:])
	if name == "" {
		return Token{}, true, false
	}
	return Token{Kind: KindWeakness, Name: name}, true, true
}

// separatorRule splits inner at the last occurrence of sep. The rule applies
// only when everything after sep is ASCII digits, possibly none, and the name
// is a single line, so "sharp-tools" is not a status while "a-b-3" is status
// "a-b" with value "3".
func separatorRule(kind Kind, sep byte) rule {
	return func(inner string) (Token, bool, bool) {
		i := strings.LastIndexByte(inner, sep)
		if i < 0 || strings.ContainsAny(inner[:i], lineBreaks) {
			return Token{}, false, false
		}
		value := inner[i+1:]
		if !isDigits(value) {
			return Token{}, false, false
		}
		name := NormalizeWhitespace(inner[:i])
		if name == "" {
			return Token{}, true, false
		}
		return Token{Kind: kind, Name: name, Value: value}, true, true
	}
}

func powerRule(inner string) (Token, bool, bool) {
	name := NormalizeWhitespace(inner)
	if name == "" {
		return Token{}, true, false
	}
	return Token{Kind: KindPower, Name: name}, true, true
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
