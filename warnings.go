package challenge

import (
	"fmt"
	"strings"

	"pkt.systems/challenge/token"
)

// Warnings returns advisory messages for a normalized document. They never
// make a document invalid.
func Warnings(c Challenge) []string {
	return WarningsWithRoles(c, KnownRoles)
}

// WarningsWithRoles is Warnings with a caller-supplied known-role list.
func WarningsWithRoles(c Challenge, knownRoles []string) []string {
	var warnings []string

	known := make(map[string]struct{}, len(knownRoles))
	for _, r := range knownRoles {
		known[strings.ToLower(strings.TrimSpace(r))] = struct{}{}
	}
	var unknown []string
	for _, r := range c.Roles {
		if _, ok := known[strings.ToLower(strings.TrimSpace(r))]; !ok {
			unknown = append(unknown, r)
		}
	}
	if len(unknown) > 0 {
		warnings = append(warnings, fmt.Sprintf("Unknown role(s): %s.", strings.Join(unknown, ", ")))
	}

	var bad, limits []string
	for _, raw := range c.TagsAndStatuses {
		tok, ok := token.Parse(raw)
		switch {
		case !ok:
			bad = append(bad, raw)
		case tok.Kind == token.KindLimit:
			limits = append(limits, raw)
		}
	}
	if len(bad) > 0 {
		warnings = append(warnings, fmt.Sprintf("Some tokens aren't recognized as {!weakness}, {status-<n>} or {tag}: %s.", strings.Join(bad, ", ")))
	}
	if len(limits) > 0 {
		warnings = append(warnings, fmt.Sprintf("Limit-like tokens were found in Tags & Statuses and will be ignored by some tools: %s. Consider moving them to the Limits section.", strings.Join(limits, ", ")))
	}

	var noOutcome []string
	for _, l := range c.Limits {
		if l.IsProgress && (l.OnMax == nil || strings.TrimSpace(*l.OnMax) == "") {
			noOutcome = append(noOutcome, l.Name)
		}
	}
	if len(noOutcome) > 0 {
		warnings = append(warnings, fmt.Sprintf("Progress limit(s) without \"on_max\": %s.", strings.Join(noOutcome, ", ")))
	}

	return warnings
}
