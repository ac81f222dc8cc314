// Package design computes PCR primer pairs and sequencing primers for a raw
// DNA template under length, melting-temperature, GC-content and annealing
// constraints. One call is one pure, in-memory pass: no I/O, no retained
// state, safe to run from concurrent goroutines.
package design

import (
	"fmt"

	"primerdesign-core/dna"
)

// Design sanitizes rawSeq and runs the search requested by p. All failures,
// including invalid parameters, are reported through the Result so the caller
// can see which constraint to relax.
func Design(rawSeq string, p Parameters) Result {
	if err := p.Validate(); err != nil {
		return failed(p.Purpose, Diagnostics{}, fmt.Sprintf("invalid parameters: %v", err))
	}

	seq := dna.Sanitize(rawSeq)
	if len(seq) < p.MinLength {
		return failed(p.Purpose, Diagnostics{},
			fmt.Sprintf("sequence too short: %d nt after sanitization, need at least %d", len(seq), p.MinLength))
	}

	if p.Purpose == Sequencing {
		return designSequencing(seq, p)
	}
	return designPCR(seq, p)
}

func designPCR(seq string, p Parameters) Result {
	var diag Diagnostics

	fwdBlock := clipBlock(seq, p.BpFromStart)
	fwd, counts, stage := filterCandidates(
		Generate(fwdBlock, p.MinLength, p.MaxLength, p.SpecificEnds),
		p, CodingStrand,
		func(o Oligomer) int { return o.Offset + 1 },
	)
	diag.Forward = counts
	if stage != "" {
		return failed(PCR, diag, fmt.Sprintf("no forward primer candidates after %s filter", stage))
	}

	revBlock := clipBlock(dna.RevComp(seq), p.BpFromStop)
	rev, counts, stage := filterCandidates(
		Generate(revBlock, p.MinLength, p.MaxLength, p.SpecificEnds),
		p, NonCodingStrand,
		func(o Oligomer) int { return o.Offset + 1 },
	)
	diag.Reverse = counts
	if stage != "" {
		return failed(PCR, diag, fmt.Sprintf("no reverse primer candidates after %s filter", stage))
	}

	pairs, warnings := matchPairs(fwd, rev, len(seq), p)
	if len(pairs) == 0 {
		return failed(PCR, diag, "no pairs satisfy the pair-annealing constraints")
	}

	best := pairs[0]
	return Result{
		Succeeded:       true,
		Purpose:         PCR,
		BestPair:        &best,
		Pairs:           pairs,
		PairCount:       len(pairs),
		AmplifiedRegion: amplifiedRegion(seq, best),
		Diagnostics:     diag,
		Warnings:        warnings,
	}
}

func designSequencing(seq string, p Parameters) Result {
	coding, nonCoding := selectSequencing(seq, p)
	if len(coding) == 0 && len(nonCoding) == 0 {
		return failed(Sequencing, Diagnostics{}, "no window produced a valid sequencing primer")
	}
	return Result{
		Succeeded:        true,
		Purpose:          Sequencing,
		CodingPrimers:    coding,
		NonCodingPrimers: nonCoding,
	}
}

func clipBlock(seq string, n int) string {
	if n > len(seq) {
		n = len(seq)
	}
	return seq[:n]
}

// amplifiedRegion is the template from the best pair's forward 5' end through
// its reverse primer's 5' end.
func amplifiedRegion(seq string, best PairCandidate) string {
	start := best.Forward.Position - 1
	end := len(seq) - best.Reverse.Position + 1
	if start < 0 || end > len(seq) || start >= end {
		return ""
	}
	return seq[start:end]
}
