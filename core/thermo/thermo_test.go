package thermo

import "testing"

func TestGCPercent(t *testing.T) {
	cases := []struct {
		seq  string
		want float64
	}{
		{"", 0},
		{"ATAT", 0},
		{"GGCC", 100},
		{"ATGC", 50},
		{"ATGCATGCATGCATGCAT", 100.0 * 8 / 18},
	}
	for _, c := range cases {
		if got := GCPercent(c.seq); got != c.want {
			t.Errorf("GCPercent(%q) = %v, want %v", c.seq, got, c.want)
		}
	}
}

// Equal-length sequences with more G/C never score lower.
func TestGCPercentMonotonic(t *testing.T) {
	if GCPercent("GGAA") <= GCPercent("GAAA") {
		t.Error("GC percent should grow with G/C count at fixed length")
	}
}

func TestHasGCClamp(t *testing.T) {
	cases := []struct {
		seq  string
		want bool
	}{
		{"", false},
		{"G", false},
		{"AG", true},
		{"GA", true},
		{"ATGCAA", false},
		{"ATATAC", true},
	}
	for _, c := range cases {
		if got := HasGCClamp(c.seq); got != c.want {
			t.Errorf("HasGCClamp(%q) = %v, want %v", c.seq, got, c.want)
		}
	}
}

// 13 nt uses the Wallace rule, 14 nt switches to the log-linear formula.
func TestMeltingTempFormulaBoundary(t *testing.T) {
	// 7 G + 6 A: 2*6 + 4*7 = 40.
	if got := MeltingTemp("GGGGGGGAAAAAA", 50, 50); got != 40.0 {
		t.Errorf("Wallace Tm = %v, want 40.0", got)
	}
	// 7 G + 7 A at 50 mM salt:
	// 81.5 + 16.6*log10(0.05) + 0.41*50 - 675/14 = 32.188... -> 32.2
	if got := MeltingTemp("GGGGGGGAAAAAAA", 50, 50); got != 32.2 {
		t.Errorf("log-linear Tm = %v, want 32.2", got)
	}
}

func TestMeltingTempLonger(t *testing.T) {
	// 18-mer, GC 44.444%: 81.5 - 21.5971 + 18.2222 - 37.5 = 40.625 -> 40.6
	if got := MeltingTemp("ATGCATGCATGCATGCAT", 50, 50); got != 40.6 {
		t.Errorf("Tm = %v, want 40.6", got)
	}
}

func TestMeltingTempTooShort(t *testing.T) {
	if MeltingTemp("", 50, 50) != 0 || MeltingTemp("A", 50, 50) != 0 {
		t.Error("sequences under 2 nt must melt at 0")
	}
}
