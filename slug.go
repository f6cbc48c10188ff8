package challenge

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const defaultSlug = "challenge"

// Slug returns a lowercase ASCII file-name-safe form of s: accents are
// stripped, runs of other characters become '-'. An empty result yields
// "challenge".
func Slug(s string) string {
	t := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)))
	folded, _, err := transform.String(t, strings.ToLower(strings.TrimSpace(s)))
	if err != nil {
		folded = strings.ToLower(s)
	}
	var b strings.Builder
	dash := false
	for _, r := range folded {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if dash && b.Len() > 0 {
				b.WriteByte('-')
			}
			dash = false
			b.WriteRune(r)
			continue
		}
		dash = true
	}
	if b.Len() == 0 {
		return defaultSlug
	}
	return b.String()
}

// Filename returns the export file name for c.
func Filename(c Challenge) string {
	return Slug(c.Name) + ".toml"
}
