package termui

import (
	"strings"

	"pkt.systems/challenge/token"
)

// Highlight paints every token in text with its kind's style and leaves
// the surrounding text in the Text style.
func Highlight(text string, styles Styles) string {
	var b strings.Builder
	for _, seg := range token.Segments(text) {
		if seg.IsToken {
			b.WriteString(styles.ForKind(seg.Token.Kind).Paint(seg.Text))
			continue
		}
		b.WriteString(styles.Text.Paint(seg.Text))
	}
	return b.String()
}
