// Package dna holds the small sequence utilities shared by the design core:
// input sanitization and reverse complementation over the A/C/G/T/N alphabet.
package dna

var complement [256]byte

func init() {
	complement['A'] = 'T'
	complement['C'] = 'G'
	complement['G'] = 'C'
	complement['T'] = 'A'
	complement['N'] = 'N'
}

// Sanitize uppercases raw and drops every character outside A/C/G/T/N.
// Dropped characters are removed, not replaced, so downstream length checks
// see only usable bases. An empty result is valid.
func Sanitize(raw string) string {
	out := make([]byte, 0, len(raw))
	for i := 0; i < len(raw); i++ {
		b := raw[i]
		if b >= 'a' && b <= 'z' {
			b -= 'a' - 'A'
		}
		switch b {
		case 'A', 'C', 'G', 'T', 'N':
			out = append(out, b)
		}
	}
	return string(out)
}

// RevComp returns the reverse complement of a sanitized sequence.
// Unknown bytes complement to 'N'.
func RevComp(seq string) string {
	n := len(seq)
	if n == 0 {
		return ""
	}
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		c := complement[seq[n-1-i]]
		if c == 0 {
			c = 'N'
		}
		out[i] = c
	}
	return string(out)
}
