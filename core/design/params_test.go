package design

import "testing"

func TestDefaultProfiles(t *testing.T) {
	req := DefaultParameters()
	if req.MinTm != 50 || req.OptTm != 55 || req.MaxTm != 65 {
		t.Errorf("request Tm profile = %g/%g/%g, want 50/55/65", req.MinTm, req.OptTm, req.MaxTm)
	}
	if req.MinLength != 18 || req.OptLength != 20 || req.MaxLength != 21 {
		t.Errorf("length profile = %d/%d/%d, want 18/20/21", req.MinLength, req.OptLength, req.MaxLength)
	}
	if req.MinGC != 30 || req.OptGC != 45 || req.MaxGC != 60 {
		t.Errorf("gc profile = %g/%g/%g, want 30/45/60", req.MinGC, req.OptGC, req.MaxGC)
	}
	if req.BpFromStart != 35 || req.BpFromStop != 35 || req.ParsedLength != 35 {
		t.Error("search block defaults must all be 35")
	}
	if req.MaxSelfAnneal != 24 || req.MaxSelfEndAnneal != 12 ||
		req.MaxPairAnneal != 24 || req.MaxPairEndAnneal != 12 {
		t.Error("annealing ceiling defaults changed")
	}
	if req.SeqSpacing != 250 || req.DNAConc != 50 || req.SaltConc != 50 || req.MaxResults != 500 {
		t.Error("spacing/concentration/cap defaults changed")
	}

	// The overview profile differs from the request profile in Tm only.
	ov := OverviewDefaults()
	if ov.MinTm != 52 || ov.OptTm != 56 || ov.MaxTm != 60 {
		t.Errorf("overview Tm profile = %g/%g/%g, want 52/56/60", ov.MinTm, ov.OptTm, ov.MaxTm)
	}
	ov.MinTm, ov.OptTm, ov.MaxTm = req.MinTm, req.OptTm, req.MaxTm
	if ov != req {
		t.Error("overview profile should match the request profile outside Tm")
	}
}

func TestValidateOrdering(t *testing.T) {
	p := DefaultParameters()
	if err := p.Validate(); err != nil {
		t.Fatalf("defaults must validate: %v", err)
	}

	bad := p
	bad.OptLength = 17 // below MinLength
	if err := bad.Validate(); err == nil {
		t.Error("expected error for inverted length bounds")
	}

	bad = p
	bad.MinTm, bad.MaxTm = 70, 50
	if err := bad.Validate(); err == nil {
		t.Error("expected error for inverted tm bounds")
	}

	bad = p
	bad.OptGC = 80 // above MaxGC
	if err := bad.Validate(); err == nil {
		t.Error("expected error for inverted gc bounds")
	}

	bad = p
	bad.MaxResults = 0
	if err := bad.Validate(); err == nil {
		t.Error("expected error for zero result cap")
	}

	bad = p
	bad.Purpose = Sequencing
	bad.SeqSpacing = 0
	if err := bad.Validate(); err == nil {
		t.Error("expected error for zero sequencing spacing")
	}
}
