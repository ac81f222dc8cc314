package design

// Oligomer is a generated substring with its 0-based offset in the block it
// came from.
type Oligomer struct {
	Seq    string
	Offset int
}

// Generate enumerates primer-sized substrings of block in deterministic order
// (length ascending, then offset ascending).
//
// With specificEnds every candidate anchors at offset 0: one substring per
// length in [minLen, maxLen] that fits. Without it every start offset is
// emitted per length, a full sliding window.
func Generate(block string, minLen, maxLen int, specificEnds bool) []Oligomer {
	var out []Oligomer
	for l := minLen; l <= maxLen; l++ {
		if l < 1 || l > len(block) {
			continue
		}
		if specificEnds {
			out = append(out, Oligomer{Seq: block[:l]})
			continue
		}
		for off := 0; off+l <= len(block); off++ {
			out = append(out, Oligomer{Seq: block[off : off+l], Offset: off})
		}
	}
	return out
}
