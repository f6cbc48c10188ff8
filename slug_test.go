package challenge

import "testing"

func TestSlug(t *testing.T) {
	t.Parallel()
	cases := map[string]string{
		"Mountain Ogre":          "mountain-ogre",
		"  Crème Brûlée Golem! ": "creme-brulee-golem",
		"--Ash & Bone--":         "ash-bone",
		"Ça ne va pas 2":         "ca-ne-va-pas-2",
		"":                       "challenge",
		"!!!":                    "challenge",
		"日本":                     "challenge",
	}
	for in, want := range cases {
		if got := Slug(in); got != want {
			t.Fatalf("Slug(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestFilename(t *testing.T) {
	t.Parallel()
	c := New()
	if got := Filename(c); got != "challenge.toml" {
		t.Fatalf("Filename = %q", got)
	}
	c.Name = "The Wailing Wisp"
	if got := Filename(c); got != "the-wailing-wisp.toml" {
		t.Fatalf("Filename = %q", got)
	}
}
