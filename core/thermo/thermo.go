// Package thermo estimates thermodynamic properties of primer sequences:
// GC content, 3' GC clamp, and melting temperature.
//
// The wired Tm estimate is intentionally the simple closed-form one (Wallace
// rule under 14 nt, a log-linear GC/salt formula at 14 nt and above). A full
// nearest-neighbor model lives in nn.go but is not consulted by the design
// scoring; swapping it in would change every downstream Tm and score.
package thermo

import "math"

// GCPercent returns (G+C)/len as a percentage. Empty input scores 0.
func GCPercent(seq string) float64 {
	if len(seq) == 0 {
		return 0
	}
	gc := 0
	for i := 0; i < len(seq); i++ {
		if seq[i] == 'G' || seq[i] == 'C' {
			gc++
		}
	}
	return float64(gc) / float64(len(seq)) * 100
}

// HasGCClamp reports whether either of the last two bases is G or C.
// Sequences shorter than 2 nt have no clamp.
func HasGCClamp(seq string) bool {
	n := len(seq)
	if n < 2 {
		return false
	}
	for _, b := range []byte{seq[n-1], seq[n-2]} {
		if b == 'G' || b == 'C' {
			return true
		}
	}
	return false
}

// MeltingTemp estimates the duplex melting temperature in °C, rounded to one
// decimal place.
//
// Under 14 nt the Wallace rule applies: 2·(A+T) + 4·(G+C). From 14 nt the
// log-linear form applies: 81.5 + 16.6·log10(salt/1000) + 0.41·GC% − 675/len.
// saltConc is in mM; dnaConc (nM) is accepted for interface completeness but
// does not enter either formula. Sequences under 2 nt melt at 0.
func MeltingTemp(seq string, dnaConc, saltConc float64) float64 {
	_ = dnaConc
	n := len(seq)
	if n < 2 {
		return 0
	}
	if n < 14 {
		at, gc := 0, 0
		for i := 0; i < n; i++ {
			switch seq[i] {
			case 'A', 'T':
				at++
			case 'G', 'C':
				gc++
			}
		}
		return round1(float64(2*at + 4*gc))
	}
	tm := 81.5 + 16.6*math.Log10(saltConc/1000.0) + 0.41*GCPercent(seq) - 675.0/float64(n)
	return round1(tm)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
