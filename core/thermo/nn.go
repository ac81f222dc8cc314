// Nearest-neighbor duplex thermodynamics (SantaLucia unified parameters).
// Units: ΔH in kcal/mol, ΔS in cal/(K·mol), Tm in °C.
//
// Retained from the original parameter set but never consulted by the design
// path: the filters and scores use MeltingTemp for compatibility.
package thermo

import (
	"errors"
	"math"
)

// Gas constant in cal/(K·mol).
const rCal = 1.9872

type nnParams struct {
	dH float64 // kcal/mol
	dS float64 // cal/(K·mol)
}

// Watson-Crick propagation parameters at 1 M Na+, keyed by the top-strand
// dinucleotide 5'→3'. SantaLucia & Hicks (2004), Table 1.
var nnStack = map[string]nnParams{
	"AA": {-7.6, -21.3}, "TT": {-7.6, -21.3},
	"AT": {-7.2, -20.4},
	"TA": {-7.2, -21.3},
	"CA": {-8.5, -22.7}, "TG": {-8.5, -22.7},
	"GT": {-8.4, -22.4}, "AC": {-8.4, -22.4},
	"CT": {-7.8, -21.0}, "AG": {-7.8, -21.0},
	"GA": {-8.2, -22.2}, "TC": {-8.2, -22.2},
	"CG": {-10.6, -27.2},
	"GC": {-9.8, -24.4},
	"GG": {-8.0, -19.9}, "CC": {-8.0, -19.9},
}

// Initiation, terminal AT and symmetry corrections (1 M Na+).
var (
	nnInitDH, nnInitDS = +0.2, -5.7
	termATdH, termATdS = +2.2, +6.9
	symmetryDS         = -1.4
)

// NearestNeighborTm computes the two-state nearest-neighbor Tm of seq against
// its perfect complement. dnaConc is the total strand concentration in nM,
// saltConc the monovalent cation concentration in mM. It returns Tm in °C
// together with the summed ΔH (kcal/mol) and salt-corrected ΔS (cal/K·mol).
// Only A/C/G/T sequences of length ≥ 2 are supported.
func NearestNeighborTm(seq string, dnaConc, saltConc float64) (tmC, dH, dS float64, err error) {
	n := len(seq)
	if n < 2 {
		return 0, 0, 0, errors.New("nn: sequence too short")
	}
	if dnaConc <= 0 || saltConc <= 0 {
		return 0, 0, 0, errors.New("nn: concentrations must be positive")
	}

	dH = nnInitDH
	dS = nnInitDS
	for i := 0; i < n-1; i++ {
		p, ok := nnStack[seq[i:i+2]]
		if !ok {
			return 0, 0, 0, errors.New("nn: invalid base (need A/C/G/T)")
		}
		dH += p.dH
		dS += p.dS
	}
	if seq[0] == 'A' || seq[0] == 'T' {
		dH += termATdH
		dS += termATdS
	}
	if seq[n-1] == 'A' || seq[n-1] == 'T' {
		dH += termATdH
		dS += termATdS
	}

	selfCompl := isSelfComplementary(seq)
	if selfCompl {
		dS += symmetryDS
	}

	// Salt correction: ΔS([Na+]) = ΔS(1M) + 0.368·(N−1)·ln[Na+].
	na := saltConc / 1000.0
	dS += 0.368 * float64(n-1) * math.Log(na)

	ct := dnaConc * 1e-9
	x := 4.0
	if selfCompl {
		x = 1.0
	}
	tmK := (dH * 1000.0) / (dS + rCal*math.Log(ct/x))
	return tmK - 273.15, dH, dS, nil
}

func isSelfComplementary(seq string) bool {
	n := len(seq)
	for i := 0; i < n; i++ {
		var c byte
		switch seq[n-1-i] {
		case 'A':
			c = 'T'
		case 'T':
			c = 'A'
		case 'G':
			c = 'C'
		case 'C':
			c = 'G'
		default:
			return false
		}
		if seq[i] != c {
			return false
		}
	}
	return true
}
