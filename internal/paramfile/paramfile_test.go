package paramfile

import (
	"os"
	"path/filepath"
	"testing"

	"primerdesign-core/design"
)

func TestParseOverlaysDefaults(t *testing.T) {
	p, err := Parse([]byte("purpose: sequencing\nopt_tm: 60\nseq_spacing: 100\nspecific_ends: true\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Purpose != design.Sequencing {
		t.Errorf("purpose = %q, want SEQUENCING", p.Purpose)
	}
	if p.OptTm != 60 {
		t.Errorf("opt tm = %g, want 60", p.OptTm)
	}
	if p.SeqSpacing != 100 {
		t.Errorf("seq spacing = %d, want 100", p.SeqSpacing)
	}
	if !p.SpecificEnds {
		t.Error("specific_ends not applied")
	}
	// Untouched keys keep the request defaults.
	def := design.DefaultParameters()
	if p.MinTm != def.MinTm || p.MaxLength != def.MaxLength || p.MaxResults != def.MaxResults {
		t.Error("absent profile keys must inherit defaults")
	}
}

func TestParseRejectsUnknownPurpose(t *testing.T) {
	if _, err := Parse([]byte("purpose: cloning\n")); err == nil {
		t.Error("expected error for unknown purpose")
	}
	if _, err := Parse([]byte("seq_strand: middle\n")); err == nil {
		t.Error("expected error for unknown strand")
	}
	if _, err := Parse([]byte("purpose: [unclosed")); err == nil {
		t.Error("expected error for malformed yaml")
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.yaml")
	if err := os.WriteFile(path, []byte("min_gc: 40\nmax_gc: 70\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	p, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.MinGC != 40 || p.MaxGC != 70 {
		t.Errorf("gc bounds = %g/%g, want 40/70", p.MinGC, p.MaxGC)
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
