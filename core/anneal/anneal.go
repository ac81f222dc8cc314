// Package anneal scores the tendency of two oligos to anneal to each other
// with a sliding-window complementarity heuristic. Self-annealing is the same
// computation with both arguments equal.
//
// The score approximates the strongest contiguous complementary duplex, not a
// free-energy estimate: aligned G·C pairs contribute 4, A·T pairs 2, and a
// mismatch breaks the run. The maximum run over every slide offset is
// returned.
package anneal

// pad fills the 3' tail of the shorter sequence so both align over the same
// length. 'X' pairs with nothing.
const filler = 'X'

func weight(a, b byte) int {
	switch a {
	case 'G':
		if b == 'C' {
			return 4
		}
	case 'C':
		if b == 'G' {
			return 4
		}
	case 'A':
		if b == 'T' {
			return 2
		}
	case 'T':
		if b == 'A' {
			return 2
		}
	}
	return 0
}

func padded(seq1, seq2 string) (string, string) {
	for len(seq1) < len(seq2) {
		seq1 += string(rune(filler))
	}
	for len(seq2) < len(seq1) {
		seq2 += string(rune(filler))
	}
	return seq1, seq2
}

// Score returns the maximum contiguous complementarity run between seq1 and
// seq2 over all slide offsets. Deterministic and symmetric for self-scoring.
func Score(seq1, seq2 string) int {
	s1, s2 := padded(seq1, seq2)
	n := len(s2)
	best := 0
	for off := 0; off < n; off++ {
		run := 0
		for i := 0; i+off < n; i++ {
			if w := weight(s1[i+off], s2[i]); w > 0 {
				run += w
				if run > best {
					best = run
				}
			} else {
				run = 0
			}
		}
	}
	return best
}

// EndScore is the 3'-anchored variant: at each offset the run ends at the
// first mismatch after pairing has begun, modeling false-extension risk from
// 3'-end complementarity.
func EndScore(seq1, seq2 string) int {
	s1, s2 := padded(seq1, seq2)
	n := len(s2)
	best := 0
	for off := 0; off < n; off++ {
		run := 0
		for i := 0; i+off < n; i++ {
			w := weight(s1[i+off], s2[i])
			if w == 0 {
				if run > 0 {
					break
				}
				continue
			}
			run += w
			if run > best {
				best = run
			}
		}
	}
	return best
}
