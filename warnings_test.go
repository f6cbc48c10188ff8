package challenge

import (
	"strings"
	"testing"
)

func TestWarningsCleanDocument(t *testing.T) {
	t.Parallel()
	c := New()
	c.Roles = []string{"Brute", "leader"}
	c.TagsAndStatuses = []string{"{huge}", "{!fire}", "{angry-2}"}
	c.Limits = []Limit{{Name: "Harm", Level: 3, IsProgress: true, OnMax: strPtr("It flees.")}}
	if got := Warnings(c); len(got) != 0 {
		t.Fatalf("unexpected warnings %v", got)
	}
}

func TestWarningsReportEachCondition(t *testing.T) {
	t.Parallel()
	c := New()
	c.Roles = []string{"Brute", "Sniper", "Gremlin"}
	c.TagsAndStatuses = []string{"{ok}", "{}", "{harm:3}", "{!}"}
	c.Limits = []Limit{
		{Name: "Banish", Level: 2, IsProgress: true},
		{Name: "Harm", Level: 2, IsProgress: false},
		{Name: "Convince", Level: 2, IsProgress: true, OnMax: strPtr("  ")},
	}
	got := Warnings(c)
	want := []string{
		"Unknown role(s): Sniper, Gremlin.",
		"Some tokens aren't recognized as {!weakness}, {status-<n>} or {tag}: {}, {!}.",
		"Limit-like tokens were found in Tags & Statuses and will be ignored by some tools: {harm:3}. Consider moving them to the Limits section.",
		`Progress limit(s) without "on_max": Banish, Convince.`,
	}
	if len(got) != len(want) {
		t.Fatalf("warnings = %q", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("warning %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestWarningsWithRoles(t *testing.T) {
	t.Parallel()
	c := New()
	c.Roles = []string{"Sniper"}
	if got := WarningsWithRoles(c, append([]string{"sniper"}, KnownRoles...)); len(got) != 0 {
		t.Fatalf("unexpected warnings %v", got)
	}
	got := WarningsWithRoles(c, nil)
	if len(got) != 1 || !strings.Contains(got[0], "Sniper") {
		t.Fatalf("expected unknown role warning, got %v", got)
	}
}
