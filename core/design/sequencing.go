package design

import (
	"primerdesign-core/anneal"
	"primerdesign-core/dna"
	"primerdesign-core/thermo"
)

// selectSequencing picks one primer per window per requested strand. Windows
// of ParsedLength step along the strand by SeqSpacing; within a window every
// substring is generated, filtered on GC range and self-annealing, and the
// lowest sequencingScore survivor wins (first found on ties). Windows with no
// survivor are skipped. Ranks increment per accepted primer, independently
// per strand.
func selectSequencing(seq string, p Parameters) (coding, nonCoding []Candidate) {
	if p.SeqStrand == CodingStrand || p.SeqStrand == BothStrands {
		coding = walkStrand(seq, p, CodingStrand)
	}
	if p.SeqStrand == NonCodingStrand || p.SeqStrand == BothStrands {
		nonCoding = walkStrand(dna.RevComp(seq), p, NonCodingStrand)
	}
	return coding, nonCoding
}

func walkStrand(strandSeq string, p Parameters, strand Strand) []Candidate {
	var picked []Candidate
	for start := 0; start+p.ParsedLength <= len(strandSeq); start += p.SeqSpacing {
		window := strandSeq[start : start+p.ParsedLength]
		best, ok := bestInWindow(window, p)
		if !ok {
			continue
		}
		// Map back to 1-based original coordinates. The non-coding strand is
		// the reverse complement, so its offsets count from the sequence end.
		best.Position = start + best.Position + 1
		best.Strand = strand
		best.Rank = len(picked) + 1
		picked = append(picked, best)
	}
	return picked
}

func bestInWindow(window string, p Parameters) (Candidate, bool) {
	var best Candidate
	bestScore := 0.0
	found := false
	for _, o := range Generate(window, p.MinLength, p.MaxLength, false) {
		gc := thermo.GCPercent(o.Seq)
		if gc < p.MinGC || gc > p.MaxGC {
			continue
		}
		self := anneal.Score(o.Seq, o.Seq)
		if self > p.MaxSelfAnneal {
			continue
		}
		c := Candidate{
			Seq:           o.Seq,
			Length:        len(o.Seq),
			GCPercent:     gc,
			Tm:            thermo.MeltingTemp(o.Seq, p.DNAConc, p.SaltConc),
			SelfAnneal:    self,
			SelfEndAnneal: anneal.EndScore(o.Seq, o.Seq),
			Position:      o.Offset,
		}
		if s := sequencingScore(p, c); !found || s < bestScore {
			best, bestScore, found = c, s, true
		}
	}
	return best, found
}
