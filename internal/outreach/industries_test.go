package outreach

import "testing"

func TestIndustryProfileFor(t *testing.T) {
	for _, industry := range []string{"technology", "Technology", "  FINANCE  ", "healthcare", "marketing", "consulting", "education"} {
		if _, ok := IndustryProfileFor(industry); !ok {
			t.Errorf("expected profile for %q", industry)
		}
	}
	if _, ok := IndustryProfileFor("basket weaving"); ok {
		t.Error("unexpected profile for unknown industry")
	}
	if _, ok := IndustryProfileFor(""); ok {
		t.Error("unexpected profile for empty industry")
	}
}

func TestIndustriesCount(t *testing.T) {
	if got := len(Industries()); got != 6 {
		t.Errorf("len(Industries()) = %d, want 6", got)
	}
}
