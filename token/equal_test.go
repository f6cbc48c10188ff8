package token

import "testing"

func TestCompare(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		a, b    string
		equal   bool
		literal bool
	}{
		{name: "case insensitive name", a: "{Tag}", b: "{tag}", equal: true},
		{name: "whitespace", a: "{big   teeth}", b: "big teeth", equal: true},
		{name: "empty value is not zero", a: "{x-}", b: "{x-0}", equal: false},
		{name: "value compared as string", a: "{x-01}", b: "{x-1}", equal: false},
		{name: "same status", a: "{Burning-2}", b: "{ burning  -2}", equal: true},
		{name: "kind differs", a: "{x-1}", b: "{x:1}", equal: false},
		{name: "weakness vs power", a: "{!x}", b: "{x}", equal: false},
		{name: "limit", a: "{HARM:3}", b: "{harm:3}", equal: true},
		{name: "unicode folding", a: "{STRASSE}", b: "{straße}", equal: true},
		{name: "literal fallback equal", a: "{!}", b: "{!} ", equal: true, literal: true},
		{name: "literal fallback includes braces", a: "{-3}", b: "-3", equal: false, literal: true},
		{name: "one side malformed", a: "{tag}", b: "{}", equal: false, literal: true},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := Compare(tc.a, tc.b)
			if got.Equal != tc.equal || got.Literal != tc.literal {
				t.Fatalf("Compare(%q, %q) = %+v, want equal=%v literal=%v", tc.a, tc.b, got, tc.equal, tc.literal)
			}
			if Equal(tc.a, tc.b) != tc.equal {
				t.Fatalf("Equal(%q, %q) disagrees with Compare", tc.a, tc.b)
			}
		})
	}
}

func TestSameIgnoresValueForPowers(t *testing.T) {
	t.Parallel()
	a := Token{Kind: KindPower, Name: "x", Value: "1"}
	b := Token{Kind: KindPower, Name: "X"}
	if !Same(a, b) {
		t.Fatalf("expected powers to compare by name only")
	}
}

func TestEqual(t *testing.T) {
	t.Parallel()
	if !Equal("{Fire}", "{fire}") {
		t.Fatalf("expected equal")
	}
	if Equal("{fire-1}", "{fire-2}") {
		t.Fatalf("expected different values to differ")
	}
	if !Equal("a{b", "A{B") {
		t.Fatalf("expected literal fallback to fold case")
	}
}
