package markup

import (
	"regexp"

	"github.com/microcosm-cc/bluemonday"
)

var tokenClass = regexp.MustCompile(`^litm-(tag|weakness|status|limit) brumes-(power|weakness|status|limit)$`)

// tokenDataAttrs are the data attributes written by Span.
var tokenDataAttrs = []string{
	"data-tag-name",
	"data-status-name",
	"data-status-value",
	"data-limit-name",
	"data-limit-value",
}

// newPolicy returns the user-generated-content policy extended with the
// token span vocabulary. Scripts, styles, event handlers and unsafe URLs are
// removed.
func newPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowElements("span")
	p.AllowAttrs("class").Matching(tokenClass).OnElements("span")
	p.AllowAttrs(tokenDataAttrs...).OnElements("span")
	return p
}
