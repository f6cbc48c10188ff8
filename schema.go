package challenge

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Validate checks v against the challenge schema and returns the normalized
// document. v may be a decoded TOML tree (map[string]any), a Challenge or a
// *Challenge; typed documents are checked with the same rules as decoded
// ones.
//
// Normalization floors and clamps rating to [1,5] and limit levels to [1,6],
// fills absent lists with empty ones, turns blank optional strings into nil,
// and defaults might levels to adventure and limit levels to 1.
//
// On failure the error is a *ValidationError listing every violation and the
// returned document is the zero value.
func Validate(v any) (Challenge, error) {
	var tree any
	switch doc := v.(type) {
	case Challenge:
		tree = doc.tree()
	case *Challenge:
		if doc == nil {
			return Challenge{}, &ValidationError{Issues: []FieldError{{Message: "document is nil"}}}
		}
		tree = doc.tree()
	default:
		tree = v
	}

	c := &checker{}
	out := c.challenge(tree)
	if len(c.issues) > 0 {
		return Challenge{}, &ValidationError{Issues: c.issues}
	}
	return out, nil
}

type checker struct {
	issues []FieldError
}

func (c *checker) fail(path, format string, args ...any) {
	c.issues = append(c.issues, FieldError{Path: path, Message: fmt.Sprintf(format, args...)})
}

func join(path string, key any) string {
	if path == "" {
		return fmt.Sprint(key)
	}
	return fmt.Sprintf("%s.%v", path, key)
}

func (c *checker) challenge(v any) Challenge {
	m, ok := asTable(v)
	if !ok {
		c.fail("", "expected a table, got %s", describe(v))
		return Challenge{}
	}
	out := Challenge{
		Name:                strings.TrimSpace(c.str(m, "name", "")),
		Description:         c.str(m, "description", ""),
		Rating:              c.clampedInt(m, "rating", "", MinRating, MaxRating, MinRating),
		Roles:               c.strList(m, "roles", ""),
		TagsAndStatuses:     c.strList(m, "tags_and_statuses", ""),
		Mights:              []Might{},
		Limits:              []Limit{},
		Threats:             []Threat{},
		GeneralConsequences: c.strList(m, "general_consequences", ""),
		SpecialFeatures:     []SpecialFeature{},
	}
	for i, item := range c.tables(m, "mights", "") {
		out.Mights = append(out.Mights, c.might(item, join("mights", i)))
	}
	for i, item := range c.tables(m, "limits", "") {
		out.Limits = append(out.Limits, c.limit(item, join("limits", i)))
	}
	for i, item := range c.tables(m, "threats", "") {
		out.Threats = append(out.Threats, c.threat(item, join("threats", i)))
	}
	for i, item := range c.tables(m, "special_features", "") {
		out.SpecialFeatures = append(out.SpecialFeatures, c.specialFeature(item, join("special_features", i)))
	}
	if raw, ok := m["meta"]; ok && raw != nil {
		out.Meta = c.meta(raw, "meta")
	}
	return out
}

func (c *checker) might(m map[string]any, path string) Might {
	out := Might{
		Name:          c.requiredName(m, path, "Might"),
		Level:         MightAdventure,
		Vulnerability: c.optStr(m, "vulnerability", path),
	}
	raw := strings.ToLower(strings.TrimSpace(c.str(m, "level", path)))
	if raw == "" {
		return out
	}
	for _, level := range MightLevels {
		if raw == string(level) {
			out.Level = level
			return out
		}
	}
	c.fail(join(path, "level"), "invalid might level %q: expected origin, adventure or greatness", raw)
	return out
}

func (c *checker) limit(m map[string]any, path string) Limit {
	return Limit{
		Name:       c.requiredName(m, path, "Limit"),
		Level:      c.clampedInt(m, "level", path, MinLimitLevel, MaxLimitLevel, MinLimitLevel),
		IsImmune:   c.boolean(m, "is_immune", path),
		IsProgress: c.boolean(m, "is_progress", path),
		OnMax:      c.optStr(m, "on_max", path),
	}
}

func (c *checker) threat(m map[string]any, path string) Threat {
	return Threat{
		Name:         c.requiredName(m, path, "Threat"),
		Description:  c.str(m, "description", path),
		Consequences: c.strList(m, "consequences", path),
	}
}

func (c *checker) specialFeature(m map[string]any, path string) SpecialFeature {
	return SpecialFeature{
		Name:        c.requiredName(m, path, "Special feature"),
		Description: c.str(m, "description", path),
	}
}

func (c *checker) meta(v any, path string) *Meta {
	m, ok := asTable(v)
	if !ok {
		c.fail(path, "expected a table, got %s", describe(v))
		return nil
	}
	out := &Meta{
		Source:   c.optStr(m, "source", path),
		SourceID: c.optStr(m, "source_id", path),
		Authors:  []string{},
	}
	if raw := c.optStr(m, "publication_type", path); raw != nil {
		pt := PublicationType(strings.ToLower(*raw))
		if isPublicationType(pt) {
			out.PublicationType = &pt
		} else {
			c.fail(join(path, "publication_type"), "invalid publication type %q: expected official, third_party, cauldron or homebrew", *raw)
		}
	}
	for i, author := range c.strList(m, "authors", path) {
		author = strings.TrimSpace(author)
		if author == "" {
			c.fail(join(join(path, "authors"), i), "author cannot be empty")
			continue
		}
		out.Authors = append(out.Authors, author)
	}
	if raw, ok := m["page"]; ok && raw != nil {
		if n, ok := c.integer(raw, join(path, "page")); ok {
			if n < 1 {
				c.fail(join(path, "page"), "page must be at least 1, got %d", n)
			} else {
				page := int(n)
				out.Page = &page
			}
		}
	}
	return out
}

func isPublicationType(pt PublicationType) bool {
	for _, known := range PublicationTypes {
		if pt == known {
			return true
		}
	}
	return false
}

func (c *checker) requiredName(m map[string]any, path, what string) string {
	name := strings.TrimSpace(c.str(m, "name", path))
	if name == "" {
		if _, isString := m["name"].(string); isString || m["name"] == nil {
			c.fail(join(path, "name"), "%s name is required", what)
		}
	}
	return name
}

func (c *checker) str(m map[string]any, key, path string) string {
	raw, ok := m[key]
	if !ok || raw == nil {
		return ""
	}
	s, ok := raw.(string)
	if !ok {
		c.fail(join(path, key), "expected string, got %s", describe(raw))
		return ""
	}
	return s
}

func (c *checker) optStr(m map[string]any, key, path string) *string {
	s := strings.TrimSpace(c.str(m, key, path))
	if s == "" {
		return nil
	}
	return &s
}

func (c *checker) boolean(m map[string]any, key, path string) bool {
	raw, ok := m[key]
	if !ok || raw == nil {
		return false
	}
	b, ok := raw.(bool)
	if !ok {
		c.fail(join(path, key), "expected boolean, got %s", describe(raw))
		return false
	}
	return b
}

func (c *checker) strList(m map[string]any, key, path string) []string {
	out := []string{}
	raw, ok := m[key]
	if !ok || raw == nil {
		return out
	}
	items, ok := asList(raw)
	if !ok {
		c.fail(join(path, key), "expected array, got %s", describe(raw))
		return out
	}
	for i, item := range items {
		s, ok := item.(string)
		if !ok {
			c.fail(join(join(path, key), i), "expected string, got %s", describe(item))
			continue
		}
		out = append(out, s)
	}
	return out
}

func (c *checker) tables(m map[string]any, key, path string) []map[string]any {
	raw, ok := m[key]
	if !ok || raw == nil {
		return nil
	}
	if tables, ok := raw.([]map[string]any); ok {
		return tables
	}
	items, ok := asList(raw)
	if !ok {
		c.fail(join(path, key), "expected array of tables, got %s", describe(raw))
		return nil
	}
	out := make([]map[string]any, 0, len(items))
	for i, item := range items {
		t, ok := asTable(item)
		if !ok {
			c.fail(join(join(path, key), i), "expected table, got %s", describe(item))
			continue
		}
		out = append(out, t)
	}
	return out
}

// clampedInt reads a number, floors it and clamps it to [lo, hi]. Absent
// values yield def.
func (c *checker) clampedInt(m map[string]any, key, path string, lo, hi, def int) int {
	raw, ok := m[key]
	if !ok || raw == nil {
		return def
	}
	if s, ok := raw.(string); ok && strings.TrimSpace(s) == "" {
		return def
	}
	f, ok := c.number(raw, join(path, key))
	if !ok {
		return def
	}
	f = math.Floor(f)
	switch {
	case f < float64(lo):
		return lo
	case f > float64(hi):
		return hi
	}
	return int(f)
}

func (c *checker) number(raw any, path string) (float64, bool) {
	var f float64
	switch n := raw.(type) {
	case int:
		f = float64(n)
	case int64:
		f = float64(n)
	case float64:
		f = n
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			c.fail(path, "expected number, got %q", n)
			return 0, false
		}
		f = parsed
	default:
		c.fail(path, "expected number, got %s", describe(raw))
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		c.fail(path, "expected finite number")
		return 0, false
	}
	return f, true
}

func (c *checker) integer(raw any, path string) (int64, bool) {
	f, ok := c.number(raw, path)
	if !ok {
		return 0, false
	}
	if f != math.Trunc(f) || f > math.MaxInt32 || f < math.MinInt32 {
		c.fail(path, "expected integer, got %v", f)
		return 0, false
	}
	return int64(f), true
}

func asTable(v any) (map[string]any, bool) {
	m, ok := v.(map[string]any)
	return m, ok
}

func asList(v any) ([]any, bool) {
	switch items := v.(type) {
	case []any:
		return items, true
	case []string:
		out := make([]any, len(items))
		for i, s := range items {
			out[i] = s
		}
		return out, true
	}
	return nil, false
}

func describe(v any) string {
	switch v.(type) {
	case nil:
		return "nothing"
	case string:
		return "string"
	case bool:
		return "boolean"
	case int, int64, float64:
		return "number"
	case []any, []string:
		return "array"
	case map[string]any:
		return "table"
	}
	return fmt.Sprintf("%T", v)
}
