package token

import "bytes"

// Match reports whether src starts with a complete token such as "{name-3}".
// The braces must enclose at least one byte and no other brace. On success
// it returns the token and the number of bytes consumed.
func Match(src []byte) (Token, int, bool) {
	if len(src) < 3 || src[0] != '{' {
		return Token{}, 0, false
	}
	end := bytes.IndexAny(src[1:], "{}")
	if end <= 0 || src[1+end] != '}' {
		return Token{}, 0, false
	}
	tok, ok := classify(string(src[1 : 1+end]))
	if !ok {
		return Token{}, 0, false
	}
	return tok, end + 2, true
}

// Segment is a piece of free text: either literal text or a token.
type Segment struct {
	Text  string
	Token Token
	// IsToken is set when the segment is a token; Text then holds the source
	// text of the token.
	IsToken bool
}

// Segments splits text into literal runs and tokens. A '{' that does not
// start a token is kept as literal text.
func Segments(text string) []Segment {
	var out []Segment
	src := []byte(text)
	start := 0
	for i := 0; i < len(src); {
		if src[i] != '{' {
			i++
			continue
		}
		tok, n, ok := Match(src[i:])
		if !ok {
			i++
			continue
		}
		if i > start {
			out = append(out, Segment{Text: text[start:i]})
		}
		out = append(out, Segment{Text: text[i : i+n], Token: tok, IsToken: true})
		i += n
		start = i
	}
	if start < len(src) {
		out = append(out, Segment{Text: text[start:]})
	}
	return out
}

// Entry is a tag list item together with its parsed form.
type Entry struct {
	Raw   string
	Token Token
}

// Split partitions a tag list into statuses and the remaining parsed tokens,
// keeping list order. Entries that do not parse are dropped.
func Split(raw []string) (statuses, tags []Entry) {
	for _, r := range raw {
		tok, ok := Parse(r)
		if !ok {
			continue
		}
		if tok.Kind == KindStatus {
			statuses = append(statuses, Entry{Raw: r, Token: tok})
			continue
		}
		tags = append(tags, Entry{Raw: r, Token: tok})
	}
	return statuses, tags
}
