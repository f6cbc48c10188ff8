package token

import "testing"

func TestMatch(t *testing.T) {
	t.Parallel()
	tok, n, ok := Match([]byte("{poisoned-2} and more"))
	if !ok {
		t.Fatalf("expected match")
	}
	if n != len("{poisoned-2}") {
		t.Fatalf("consumed %d bytes", n)
	}
	if tok != (Token{Kind: KindStatus, Name: "poisoned", Value: "2"}) {
		t.Fatalf("unexpected token %+v", tok)
	}

	for _, src := range []string{"{", "{}", "{unclosed", "{a{b}", "x{a}", "{!}", "{ }"} {
		if _, _, ok := Match([]byte(src)); ok {
			t.Fatalf("Match(%q) should fail", src)
		}
	}
}

func TestSegments(t *testing.T) {
	t.Parallel()
	segs := Segments("Hits {hard-3} with {!fire} {unclosed and {} {x:}")
	var tokens []string
	var literal string
	for _, s := range segs {
		if s.IsToken {
			tokens = append(tokens, s.Token.String())
			continue
		}
		literal += s.Text
	}
	want := []string{"{hard-3}", "{!fire}", "{x:}"}
	if len(tokens) != len(want) {
		t.Fatalf("tokens = %v, want %v", tokens, want)
	}
	for i := range want {
		if tokens[i] != want[i] {
			t.Fatalf("tokens = %v, want %v", tokens, want)
		}
	}
	if literal != "Hits  with  {unclosed and {} " {
		t.Fatalf("unexpected literal text %q", literal)
	}
	if Segments("") != nil {
		t.Fatalf("expected no segments for empty text")
	}
}

func TestSplit(t *testing.T) {
	t.Parallel()
	statuses, tags := Split([]string{"{scared-2}", "{claws}", "{}", "{!fire}", "{harm:3}", "{dazed-}"})
	if len(statuses) != 2 || statuses[0].Raw != "{scared-2}" || statuses[1].Token.Name != "dazed" {
		t.Fatalf("unexpected statuses %+v", statuses)
	}
	if len(tags) != 3 || tags[0].Raw != "{claws}" || tags[1].Token.Kind != KindWeakness || tags[2].Token.Kind != KindLimit {
		t.Fatalf("unexpected tags %+v", tags)
	}
}
