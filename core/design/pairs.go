package design

import (
	"fmt"
	"sort"

	"primerdesign-core/anneal"
)

// matchPairs walks the Cartesian product of filtered forward and reverse
// candidates in generation order (forward outer, reverse inner), rejects
// pairs over the pair-annealing ceilings, scores the rest and caps the
// accepted list at MaxResults. Accepted pairs come back sorted ascending by
// score with ranks 1..N; the sort is stable so equal scores keep product
// order.
func matchPairs(fwd, rev []Candidate, seqLen int, p Parameters) ([]PairCandidate, []string) {
	var pairs []PairCandidate
	var warnings []string

	truncated := false
outer:
	for _, f := range fwd {
		for _, r := range rev {
			pa := anneal.Score(f.Seq, r.Seq)
			if pa > p.MaxPairAnneal {
				continue
			}
			pe := anneal.EndScore(f.Seq, r.Seq)
			if pe > p.MaxPairEndAnneal {
				continue
			}
			pairs = append(pairs, PairCandidate{
				Forward:       f,
				Reverse:       r,
				PairAnneal:    pa,
				PairEndAnneal: pe,
				ProductLength: productLength(seqLen, f, r),
				Score:         pairScore(p, f, r, pa, pe),
			})
			if len(pairs) >= p.MaxResults {
				truncated = true
				break outer
			}
		}
	}
	if truncated {
		warnings = append(warnings,
			fmt.Sprintf("result truncated at %d pairs; tighten constraints or raise the cap", p.MaxResults))
	}

	sort.SliceStable(pairs, func(i, j int) bool { return pairs[i].Score < pairs[j].Score })
	for i := range pairs {
		pairs[i].Rank = i + 1
	}
	return pairs, warnings
}

// productLength spans from the forward primer's 5' end to the reverse
// primer's 5' end. Forward positions count 1-based from the sequence start,
// reverse positions 1-based from the sequence end, so the span is
// len − fwd − rev + 2; with both primers anchored at their block boundaries
// (specific ends) this is the full sequence length.
func productLength(seqLen int, f, r Candidate) int {
	return seqLen - f.Position - r.Position + 2
}
