package challenge

// tree converts c to the generic form produced by the TOML decoder so typed
// and decoded documents share one set of validation rules.
func (c Challenge) tree() map[string]any {
	m := map[string]any{
		"name":                 c.Name,
		"description":          c.Description,
		"rating":               c.Rating,
		"roles":                stringList(c.Roles),
		"tags_and_statuses":    stringList(c.TagsAndStatuses),
		"general_consequences": stringList(c.GeneralConsequences),
	}

	mights := make([]any, 0, len(c.Mights))
	for _, mt := range c.Mights {
		t := map[string]any{"name": mt.Name, "level": string(mt.Level)}
		putString(t, "vulnerability", mt.Vulnerability)
		mights = append(mights, t)
	}
	m["mights"] = mights

	limits := make([]any, 0, len(c.Limits))
	for _, l := range c.Limits {
		t := map[string]any{
			"name":        l.Name,
			"level":       l.Level,
			"is_immune":   l.IsImmune,
			"is_progress": l.IsProgress,
		}
		putString(t, "on_max", l.OnMax)
		limits = append(limits, t)
	}
	m["limits"] = limits

	threats := make([]any, 0, len(c.Threats))
	for _, th := range c.Threats {
		threats = append(threats, map[string]any{
			"name":         th.Name,
			"description":  th.Description,
			"consequences": stringList(th.Consequences),
		})
	}
	m["threats"] = threats

	features := make([]any, 0, len(c.SpecialFeatures))
	for _, sf := range c.SpecialFeatures {
		features = append(features, map[string]any{
			"name":        sf.Name,
			"description": sf.Description,
		})
	}
	m["special_features"] = features

	if c.Meta != nil {
		t := map[string]any{"authors": stringList(c.Meta.Authors)}
		if c.Meta.PublicationType != nil {
			t["publication_type"] = string(*c.Meta.PublicationType)
		}
		putString(t, "source", c.Meta.Source)
		putString(t, "source_id", c.Meta.SourceID)
		if c.Meta.Page != nil {
			t["page"] = *c.Meta.Page
		}
		m["meta"] = t
	}
	return m
}

func stringList(items []string) []any {
	out := make([]any, len(items))
	for i, s := range items {
		out[i] = s
	}
	return out
}

func putString(m map[string]any, key string, s *string) {
	if s != nil {
		m[key] = *s
	}
}
