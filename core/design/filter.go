package design

import (
	"primerdesign-core/anneal"
	"primerdesign-core/thermo"
)

// Names used in stage-keyed failure messages.
const (
	stageGC         = "GC"
	stageTm         = "Tm"
	stageSelfAnneal = "self-annealing"
)

// filterCandidates runs the sequential GC → Tm → self-anneal pipeline over
// generated oligomers, evaluating properties as each stage needs them.
// Survivors come back fully populated, with Position computed from their
// block offset via pos (1-based). If a stage eliminates every candidate the
// empty stage name is returned instead of survivors, along with the counts
// accumulated up to and including that stage.
func filterCandidates(oligos []Oligomer, p Parameters, strand Strand, pos func(Oligomer) int) ([]Candidate, FilterCounts, string) {
	var counts FilterCounts

	byGC := make([]Candidate, 0, len(oligos))
	for _, o := range oligos {
		gc := thermo.GCPercent(o.Seq)
		if gc < p.MinGC || gc > p.MaxGC {
			continue
		}
		byGC = append(byGC, Candidate{
			Seq:       o.Seq,
			Length:    len(o.Seq),
			GCPercent: gc,
			Position:  pos(o),
			Strand:    strand,
		})
	}
	counts.GC = len(byGC)
	if counts.GC == 0 {
		return nil, counts, stageGC
	}

	byTm := byGC[:0]
	for _, c := range byGC {
		c.Tm = thermo.MeltingTemp(c.Seq, p.DNAConc, p.SaltConc)
		if c.Tm < p.MinTm || c.Tm > p.MaxTm {
			continue
		}
		byTm = append(byTm, c)
	}
	counts.Tm = len(byTm)
	if counts.Tm == 0 {
		return nil, counts, stageTm
	}

	out := make([]Candidate, 0, len(byTm))
	for _, c := range byTm {
		c.SelfAnneal = anneal.Score(c.Seq, c.Seq)
		c.SelfEndAnneal = anneal.EndScore(c.Seq, c.Seq)
		if c.SelfAnneal > p.MaxSelfAnneal || c.SelfEndAnneal > p.MaxSelfEndAnneal {
			continue
		}
		out = append(out, c)
	}
	counts.SelfAnneal = len(out)
	if counts.SelfAnneal == 0 {
		return nil, counts, stageSelfAnneal
	}
	return out, counts, ""
}
