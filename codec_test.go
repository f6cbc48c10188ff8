package challenge

import (
	"bytes"
	"errors"
	"reflect"
	"strings"
	"testing"
)

const ogreTOML = `
name = "Mountain Ogre"
description = "A hulking brute with {huge club} and a temper."
rating = 9
roles = ["Brute", "Defender"]
tags_and_statuses = ["{huge}", "{!fire}", "{angry-2}"]
general_consequences = ["Someone gets {bruised-2}."]

[[mights]]
name = "Giant"
level = "greatness"
vulnerability = "{!small spaces}"

[[limits]]
name = "Harm"
level = 9
is_immune = false

[[limits]]
name = "Calm down"
level = 3
is_progress = true
on_max = "The ogre wanders off."

[[threats]]
name = "Smash"
description = "Brings the club down."
consequences = ["{hurt-3}", "Knock an item away."]

[[special_features]]
name = "Thick skin"
description = "Ignore the first {hurt} status each scene."

[meta]
publication_type = "homebrew"
source = "My notebook"
authors = ["Ann", "Bo"]
page = 4
`

func TestImportNormalizes(t *testing.T) {
	t.Parallel()
	res, err := Import([]byte(ogreTOML))
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	c := res.Challenge
	if c.Rating != 5 {
		t.Fatalf("rating = %d, want 5", c.Rating)
	}
	if c.Limits[0].Level != 6 || c.Limits[1].OnMax == nil || *c.Limits[1].OnMax != "The ogre wanders off." {
		t.Fatalf("unexpected limits %+v", c.Limits)
	}
	if c.Mights[0].Level != MightGreatness || c.Mights[0].Vulnerability == nil {
		t.Fatalf("unexpected mights %+v", c.Mights)
	}
	if c.Meta == nil || *c.Meta.PublicationType != PublicationHomebrew || *c.Meta.Page != 4 || len(c.Meta.Authors) != 2 {
		t.Fatalf("unexpected meta %+v", c.Meta)
	}
	if len(res.Warnings) != 0 {
		t.Fatalf("unexpected warnings %v", res.Warnings)
	}
}

func TestImportClampsRating(t *testing.T) {
	t.Parallel()
	for src, want := range map[string]int{"rating = 9": 5, "rating = 0": 1, "": 1, "rating = 2.5": 2} {
		res, err := Import([]byte(src))
		if err != nil {
			t.Fatalf("Import(%q): %v", src, err)
		}
		if res.Challenge.Rating != want {
			t.Fatalf("Import(%q) rating = %d, want %d", src, res.Challenge.Rating, want)
		}
	}
}

func TestImportWarningsDoNotBlock(t *testing.T) {
	t.Parallel()
	res, err := Import([]byte(`name = "Wisp"
tags_and_statuses = ["{x:3}"]
`))
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	if len(res.Warnings) != 1 || !strings.Contains(res.Warnings[0], "x") || !strings.Contains(res.Warnings[0], "Limits section") {
		t.Fatalf("unexpected warnings %q", res.Warnings)
	}
	if res.Challenge.Name != "Wisp" || len(res.Challenge.TagsAndStatuses) != 1 || res.Challenge.TagsAndStatuses[0] != "{x:3}" {
		t.Fatalf("document not intact: %+v", res.Challenge)
	}
}

func TestImportSyntaxError(t *testing.T) {
	t.Parallel()
	_, err := Import([]byte("not = [valid"))
	var se *SyntaxError
	if !errors.As(err, &se) {
		t.Fatalf("expected *SyntaxError, got %T %v", err, err)
	}
	var ve *ValidationError
	if errors.As(err, &ve) {
		t.Fatalf("syntax error reported as validation error")
	}
	if se.Line != 1 {
		t.Fatalf("line = %d, want 1", se.Line)
	}
	if se.Error() != se.Unwrap().Error() {
		t.Fatalf("syntax error message was rewritten: %q", se.Error())
	}
}

func TestImportValidationError(t *testing.T) {
	t.Parallel()
	_, err := Import([]byte(`
[[limits]]
level = 2

[[mights]]
name = "Giant"
level = "cosmic"
`))
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if len(ve.Field("limits.0.name")) != 1 || len(ve.Field("mights.0.level")) != 1 {
		t.Fatalf("unexpected issues %v", ve.Issues)
	}
	if !strings.Contains(err.Error(), "limits.0.name: Limit name is required") {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

func TestImportRejectsBinary(t *testing.T) {
	t.Parallel()
	if _, err := Import([]byte("name = \"x\"\x00")); !errors.Is(err, ErrBinaryInput) {
		t.Fatalf("expected ErrBinaryInput, got %v", err)
	}
	if _, err := Import([]byte{0xff, 0xfe}); !errors.Is(err, ErrInvalidUTF8) {
		t.Fatalf("expected ErrInvalidUTF8, got %v", err)
	}
}

func TestImportAcceptsBOM(t *testing.T) {
	t.Parallel()
	res, err := Import(append([]byte{0xEF, 0xBB, 0xBF}, []byte(`name = "Bom"`)...))
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	if res.Challenge.Name != "Bom" {
		t.Fatalf("unexpected name %q", res.Challenge.Name)
	}
}

func TestImportWithKnownRoles(t *testing.T) {
	t.Parallel()
	src := []byte(`roles = ["Sniper"]`)
	res, err := Import(src)
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	if len(res.Warnings) != 1 {
		t.Fatalf("expected role warning, got %v", res.Warnings)
	}
	res, err = Import(src, WithKnownRoles([]string{"Sniper"}))
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	if len(res.Warnings) != 0 {
		t.Fatalf("unexpected warnings %v", res.Warnings)
	}
}

func TestExportRoundTripsNormalizedDocument(t *testing.T) {
	t.Parallel()
	doc := New()
	doc.Name = "Test"
	doc.Limits = []Limit{{Name: "Harm", Level: 9, IsImmune: false}}

	normalized, err := Validate(doc)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if normalized.Limits[0].Level != 6 {
		t.Fatalf("level = %d, want 6", normalized.Limits[0].Level)
	}
	data, err := Export(doc)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	res, err := Import(data)
	if err != nil {
		t.Fatalf("Import: %v\n%s", err, data)
	}
	if !reflect.DeepEqual(res.Challenge, normalized) {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v\n%s", res.Challenge, normalized, data)
	}
}

func TestExportRoundTripsFullDocument(t *testing.T) {
	t.Parallel()
	first, err := Import([]byte(ogreTOML))
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	data, err := Export(first.Challenge)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	for _, want := range []string{"[[limits]]", "[[mights]]", "[[threats]]", "[[special_features]]", "[meta]"} {
		if !strings.Contains(string(data), want) {
			t.Fatalf("missing %q in export:\n%s", want, data)
		}
	}
	second, err := Import(data)
	if err != nil {
		t.Fatalf("re-import: %v\n%s", err, data)
	}
	if !reflect.DeepEqual(first.Challenge, second.Challenge) {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", second.Challenge, first.Challenge)
	}
}

func TestExportPreservesTrickyText(t *testing.T) {
	t.Parallel()
	doc := New()
	doc.Name = `Quote "Q" 'Ogre'`
	doc.Description = "Line one\nLine two with \\backslash and {tag}\n\n- list"
	doc.SpecialFeatures = []SpecialFeature{{Name: "Ünïcode", Description: "# Heading\r\n\ttabbed"}}
	data, err := Export(doc)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	res, err := Import(data)
	if err != nil {
		t.Fatalf("Import: %v\n%s", err, data)
	}
	if res.Challenge.Description != doc.Description || res.Challenge.Name != doc.Name {
		t.Fatalf("text changed in round trip: %+v", res.Challenge)
	}
	if res.Challenge.SpecialFeatures[0] != doc.SpecialFeatures[0] {
		t.Fatalf("special feature changed: %+v", res.Challenge.SpecialFeatures[0])
	}
}

func TestExportRejectsInvalidDocument(t *testing.T) {
	t.Parallel()
	doc := New()
	doc.Limits = []Limit{{Name: "  ", Level: 2}}
	doc.Mights = []Might{{Name: "Giant", Level: "cosmic"}}
	_, err := Export(doc)
	var ee *ExportError
	if !errors.As(err, &ee) {
		t.Fatalf("expected *ExportError, got %v", err)
	}
	var ve *ValidationError
	if !errors.As(err, &ve) || len(ve.Issues) != 2 {
		t.Fatalf("expected wrapped validation issues, got %v", err)
	}
	if !strings.Contains(err.Error(), "cannot export") || !strings.Contains(err.Error(), "limits.0.name") {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

func TestImportReader(t *testing.T) {
	t.Parallel()
	res, err := ImportReader(strings.NewReader(`name = "Reader"`))
	if err != nil {
		t.Fatalf("ImportReader: %v", err)
	}
	if res.Challenge.Name != "Reader" {
		t.Fatalf("unexpected name %q", res.Challenge.Name)
	}
}

func TestExportTo(t *testing.T) {
	t.Parallel()
	doc := New()
	doc.Name = "Writer"
	var buf bytes.Buffer
	if err := ExportTo(&buf, doc); err != nil {
		t.Fatalf("ExportTo: %v", err)
	}
	want, err := Export(doc)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Fatalf("ExportTo and Export disagree:\n%s\n%s", buf.Bytes(), want)
	}
}
