package challenge

import "testing"

func TestLookupSource(t *testing.T) {
	t.Parallel()
	src, ok := LookupSource("core-narrator")
	if !ok {
		t.Fatalf("expected core-narrator in catalog")
	}
	if src.PublicationType != PublicationOfficial || len(src.Authors) != 1 {
		t.Fatalf("unexpected source %+v", src)
	}
	if _, ok := LookupSource("missing"); ok {
		t.Fatalf("unexpected match for unknown id")
	}
}

func TestSourcesReturnsCopies(t *testing.T) {
	t.Parallel()
	first := Sources()
	first[0].Authors[0] = "changed"
	if Sources()[0].Authors[0] == "changed" {
		t.Fatalf("catalog was modified through returned slice")
	}
}

func TestAttribution(t *testing.T) {
	t.Parallel()
	c := New()
	if _, ok := c.Attribution(); ok {
		t.Fatalf("unexpected attribution without meta")
	}
	c.Meta = &Meta{SourceID: strPtr("zamanora-core")}
	src, ok := c.Attribution()
	if !ok || src.PublicationType != PublicationThirdParty {
		t.Fatalf("unexpected attribution %+v %v", src, ok)
	}
}
