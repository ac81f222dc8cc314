package design

import (
	"math"

	"primerdesign-core/thermo"
)

// pairScore is the combined quality of a forward/reverse pair; lower wins.
// Distances from the Tm/GC optima count in full, annealing scores are
// de-weighted (full scores by 10, 3'-end scores by 5).
func pairScore(p Parameters, fwd, rev Candidate, pairAnneal, pairEndAnneal int) float64 {
	s := math.Abs(p.OptTm-fwd.Tm) + math.Abs(p.OptTm-rev.Tm)
	s += math.Abs(p.OptGC-fwd.GCPercent) + math.Abs(p.OptGC-rev.GCPercent)
	s += float64(fwd.SelfAnneal)/10 + float64(rev.SelfAnneal)/10 + float64(pairAnneal)/10
	s += float64(fwd.SelfEndAnneal)/5 + float64(rev.SelfEndAnneal)/5 + float64(pairEndAnneal)/5
	return s
}

// sequencingScore ranks one sequencing candidate inside its window: distance
// from the GC optimum, plus a flat penalty for a missing 3' GC clamp.
func sequencingScore(p Parameters, c Candidate) float64 {
	s := math.Abs(p.OptGC-c.GCPercent) / 10
	if !thermo.HasGCClamp(c.Seq) {
		s++
	}
	return s
}
