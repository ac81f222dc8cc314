package dna

import "testing"

func TestSanitizeDropsAndUppercases(t *testing.T) {
	got := Sanitize("  atg-C\nxN5t ")
	if got != "ATGCNT" {
		t.Fatalf("Sanitize = %q, want ATGCNT", got)
	}
	if Sanitize("!!12..") != "" {
		t.Error("expected empty result for input with no bases")
	}
}

func TestRevComp(t *testing.T) {
	if got := RevComp("ATGC"); got != "GCAT" {
		t.Fatalf("RevComp(ATGC) = %q, want GCAT", got)
	}
	if got := RevComp("GAANTC"); got != "GANTTC" {
		t.Fatalf("RevComp(GAANTC) = %q, want GANTTC", got)
	}
	if RevComp("") != "" {
		t.Error("RevComp of empty should be empty")
	}
}

// Reverse complement must be an involution.
func TestRevCompRoundTrip(t *testing.T) {
	for _, s := range []string{"A", "ATGC", "GAATTC", "NNNATCG", "TTTTGGGGCCCCAAAA"} {
		if got := RevComp(RevComp(s)); got != s {
			t.Errorf("RevComp(RevComp(%q)) = %q", s, got)
		}
	}
}
